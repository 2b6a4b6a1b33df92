package pkg

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	gossh "golang.org/x/crypto/ssh"
)

func init() {
	log.SetOutput(io.Discard)
}

func TestEnsureHostKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys", "host")

	first, err := EnsureHostKey(path)
	if err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("key file not written: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("key file mode = %v; want 0600", info.Mode().Perm())
	}
	if got := first.PublicKey().Type(); got != gossh.KeyAlgoED25519 {
		t.Errorf("key type = %s; want ed25519", got)
	}

	second, err := EnsureHostKey(path)
	if err != nil {
		t.Fatal(err)
	}
	if gossh.FingerprintSHA256(first.PublicKey()) != gossh.FingerprintSHA256(second.PublicKey()) {
		t.Error("second load produced a different key")
	}
}

func TestEnsureHostKeyRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host")
	if err := os.WriteFile(path, []byte("not a key"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := EnsureHostKey(path); err == nil {
		t.Error("garbage key accepted")
	}
}

func TestNewServer(t *testing.T) {
	s, err := NewServer(ServerConfig{
		Binary:      "/bin/true",
		HostKeyPath: filepath.Join(t.TempDir(), "host"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if s.Addr != SshPort {
		t.Errorf("Addr = %q; want %q", s.Addr, SshPort)
	}
	if s.IdleTimeout != ServerIdleTimeout {
		t.Errorf("IdleTimeout = %v; want %v", s.IdleTimeout, ServerIdleTimeout)
	}
	if s.Fingerprint == "" {
		t.Error("empty host key fingerprint")
	}
}
