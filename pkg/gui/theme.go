package gui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

var ErrNoTheme = errors.New("theme: no theme found")

// Terminal safe color palette is available here
// Themes should be limited to the colors defined in this reference
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

// Theme is used for dynamically coloring the board
type Theme struct {
	Name            string
	SquareDark      tcell.Color
	SquareLight     tcell.Color
	SquareSelected  tcell.Color
	SquareCandidate tcell.Color
	SquarePrevious  tcell.Color
	White           tcell.Color
	Black           tcell.Color
	Rank            tcell.Color
	File            tcell.Color
	Status          tcell.Color
}

// ThemeHex is the form a Theme takes in a config file
type ThemeHex struct {
	Name            string `json:"name"`
	SquareDark      string `json:"squareDark"`
	SquareLight     string `json:"squareLight"`
	SquareSelected  string `json:"squareSelected"`
	SquareCandidate string `json:"squareCandidate"`
	SquarePrevious  string `json:"squarePrevious"`
	White           string `json:"white"`
	Black           string `json:"black"`
	Rank            string `json:"rank"`
	File            string `json:"file"`
	Status          string `json:"status"`
}

// fmtHex returns a one character hex for the ColorDefault
// and otherwise it returns a standard hex. This keeps ColorDefault
// from being read back as black
func fmtHex(c tcell.Color) string {
	v := c.Hex()
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		Name:            t.Name,
		SquareDark:      fmtHex(t.SquareDark),
		SquareLight:     fmtHex(t.SquareLight),
		SquareSelected:  fmtHex(t.SquareSelected),
		SquareCandidate: fmtHex(t.SquareCandidate),
		SquarePrevious:  fmtHex(t.SquarePrevious),
		White:           fmtHex(t.White),
		Black:           fmtHex(t.Black),
		Rank:            fmtHex(t.Rank),
		File:            fmtHex(t.File),
		Status:          fmtHex(t.Status),
	}
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() Theme {
	return Theme{
		Name:            t.Name,
		SquareDark:      tcell.GetColor(t.SquareDark),
		SquareLight:     tcell.GetColor(t.SquareLight),
		SquareSelected:  tcell.GetColor(t.SquareSelected),
		SquareCandidate: tcell.GetColor(t.SquareCandidate),
		SquarePrevious:  tcell.GetColor(t.SquarePrevious),
		White:           tcell.GetColor(t.White),
		Black:           tcell.GetColor(t.Black),
		Rank:            tcell.GetColor(t.Rank),
		File:            tcell.GetColor(t.File),
		Status:          tcell.GetColor(t.Status),
	}
}

// ImportThemes returns the theme called want. Themes from the config take
// precedence over the built-in ones.
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}
	for _, t := range BuiltinThemes {
		if t.Name == want {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("%q: %w", want, ErrNoTheme)
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	Name:            "basic",
	SquareDark:      tcell.Color180,
	SquareLight:     tcell.Color223,
	SquareSelected:  tcell.Color226,
	SquareCandidate: tcell.Color150,
	SquarePrevious:  tcell.Color186,
	White:           tcell.Color231,
	Black:           tcell.Color232,
	Rank:            tcell.Color247,
	File:            tcell.Color247,
	Status:          tcell.ColorDefault,
}

// ThemeTerminal sticks to the 16 base colors
var ThemeTerminal = Theme{
	Name:            "terminal",
	SquareDark:      tcell.ColorGreen,
	SquareLight:     tcell.ColorBlue,
	SquareSelected:  tcell.ColorRed,
	SquareCandidate: tcell.ColorYellow,
	SquarePrevious:  tcell.ColorTeal,
	White:           tcell.ColorWhite,
	Black:           tcell.ColorBlack,
	Rank:            tcell.ColorDefault,
	File:            tcell.ColorDefault,
	Status:          tcell.ColorDefault,
}

var BuiltinThemes = []Theme{ThemeBasic, ThemeTerminal}
