package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"robo-rebellion/internal/generate"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadOrCreateHostKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")

	first, err := loadOrCreateHostKey(path, discardLogger())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("key not persisted: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("key file mode = %v; want 0600", perm)
	}

	second, err := loadOrCreateHostKey(path, discardLogger())
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	a := first.PublicKey().Marshal()
	b := second.PublicKey().Marshal()
	if !bytes.Equal(a, b) {
		t.Error("reloaded key differs from the generated one")
	}
	if got := second.PublicKey().Type(); got != "ssh-ed25519" {
		t.Errorf("key type = %q; want ssh-ed25519", got)
	}
}

func TestLoadOrCreateHostKeyRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")
	if err := os.WriteFile(path, []byte("not a key"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := loadOrCreateHostKey(path, discardLogger()); err == nil {
		t.Fatal("expected an error for an unparsable key")
	}
	data, _ := os.ReadFile(path)
	if string(data) != "not a key" {
		t.Error("corrupted key file was overwritten")
	}
}

func TestBaseConfig(t *testing.T) {
	cfg, err := baseConfig("")
	if err != nil {
		t.Fatalf("baseConfig(\"\"): %v", err)
	}
	if cfg.Width != generate.DefaultConfig().Width {
		t.Errorf("width = %d; want default", cfg.Width)
	}

	path := filepath.Join(t.TempDir(), "dungeon.yaml")
	if err := os.WriteFile(path, []byte("width: 80\nroom_count: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = baseConfig(path)
	if err != nil {
		t.Fatalf("baseConfig(%s): %v", path, err)
	}
	if cfg.Width != 80 || cfg.RoomCount != 4 || cfg.Height != 50 {
		t.Errorf("cfg = %+v; want width 80, 4 rooms, default height", cfg)
	}

	if _, err := baseConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should be an error")
	}
}
