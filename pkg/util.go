package pkg

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/qnkhuat/chessterm/pkg/gui"
)

// InitLog sends the standard logger to dest with prefix on every line.
func InitLog(dest, prefix string) {
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	log.SetOutput(f)
	log.SetPrefix(prefix)
}

// Config is the optional JSON file read by the terminal client.
type Config struct {
	Theme   string         `json:"theme"`
	Themes  []gui.ThemeHex `json:"themes"`
	Engine  string         `json:"engine"`
	Flipped bool           `json:"flipped"`
}

func DefaultConfig() Config {
	return Config{
		Theme:  gui.ThemeBasic.Name,
		Engine: "notnil",
	}
}

// LoadConfig reads the config at path over the defaults. An empty path
// returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ResolveTheme returns the theme named in the config.
func (c Config) ResolveTheme() (gui.Theme, error) {
	return gui.ImportThemes(c.Theme, c.Themes)
}
