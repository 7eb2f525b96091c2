package genlog

import (
	"bufio"
	"encoding/json"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"robo-rebellion/internal/generate"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func generated(seed int64) *generate.Dungeon {
	cfg := generate.DefaultConfig()
	cfg.Seed = seed
	cfg.Rand = rand.New(rand.NewSource(seed))
	return generate.Generate(&cfg)
}

func TestDataDirXDGEnvOverride(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	dir, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir returned error: %v", err)
	}
	want := filepath.Join(tmp, "robo-rebellion")
	if dir != want {
		t.Errorf("dir = %q; want %q", dir, want)
	}
}

func TestDataDirDefaultFallback(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "") // force the fallback path

	dir, err := DataDir()
	if err != nil {
		t.Skip("skipping: no user home directory available in test environment")
	}
	suffix := filepath.Join(".local", "share", "robo-rebellion")
	if !strings.HasSuffix(dir, suffix) {
		t.Errorf("dir %q does not end with %q", dir, suffix)
	}
}

func TestNewEntry(t *testing.T) {
	d := generated(5)
	e := NewEntry(d, "cli")
	if _, err := uuid.Parse(e.ID); err != nil {
		t.Errorf("ID %q is not a UUID: %v", e.ID, err)
	}
	if e.Seed != 5 || e.Placed != len(d.Rooms) || e.Requested != 10 || e.Source != "cli" {
		t.Errorf("unexpected entry %+v", e)
	}
	if e.Boss == "" {
		t.Error("boss type should be recorded")
	}
	if NewEntry(d, "cli").ID == e.ID {
		t.Error("each entry should get a fresh id")
	}
}

func TestRecordAppends(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)
	r := NewRecorder("", quietLogger())

	for seed := int64(0); seed < 3; seed++ {
		r.Record(generated(seed), "test")
	}

	f, err := os.Open(filepath.Join(tmp, "robo-rebellion", FileName))
	if err != nil {
		t.Fatalf("log file not created: %v", err)
	}
	defer f.Close()

	var seeds []int64
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e Entry
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			t.Fatalf("bad log line %q: %v", sc.Text(), err)
		}
		seeds = append(seeds, e.Seed)
	}
	if len(seeds) != 3 || seeds[0] != 0 || seeds[2] != 2 {
		t.Errorf("logged seeds %v; want [0 1 2]", seeds)
	}
}

func TestRecordUnwritableDirIsSwallowed(t *testing.T) {
	// A regular file where the directory should be makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	r := NewRecorder(filepath.Join(blocker, "sub"), quietLogger())
	e := r.Record(generated(1), "test")
	if e.ID == "" {
		t.Error("Record should still return the entry")
	}
}

func TestNilRecorder(t *testing.T) {
	var r *Recorder
	if e := r.Record(generated(2), "test"); e.Seed != 2 {
		t.Errorf("nil recorder entry seed = %d; want 2", e.Seed)
	}
}
