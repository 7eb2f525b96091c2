// Package genlog keeps an append-only JSONL history of generation runs so
// room shortfalls and loop counts can be inspected after the fact.
package genlog

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"robo-rebellion/internal/generate"
)

// FileName is the log file inside the data directory.
const FileName = "generations.jsonl"

// Entry records statistics for one generated dungeon.
type Entry struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	Source       string    `json:"source"`
	Seed         int64     `json:"seed"`
	Width        int       `json:"width"`
	Height       int       `json:"height"`
	Requested    int       `json:"requested"`
	Placed       int       `json:"placed"`
	Corridors    int       `json:"corridors"`
	LoopAttempts int       `json:"loop_attempts"`
	LoopsAdded   int       `json:"loops_added"`
	Enemies      int       `json:"enemies"`
	Loot         int       `json:"loot"`
	Boss         string    `json:"boss,omitempty"`
}

// NewEntry summarises d under a fresh run id.
func NewEntry(d *generate.Dungeon, source string) Entry {
	e := Entry{
		ID:           uuid.NewString(),
		Timestamp:    time.Now().UTC(),
		Source:       source,
		Seed:         d.Seed,
		Width:        d.Width,
		Height:       d.Height,
		Requested:    d.Requested,
		Placed:       len(d.Rooms),
		Corridors:    len(d.Corridors),
		LoopAttempts: d.LoopAttempts,
		LoopsAdded:   d.LoopsAdded,
		Enemies:      len(d.Enemies),
		Loot:         len(d.Loot),
	}
	if d.Boss != nil {
		e.Boss = d.Boss.Type
	}
	return e
}

// Recorder appends entries to the log. Safe for concurrent use.
// A nil *Recorder only builds entries.
type Recorder struct {
	mu     sync.Mutex
	dir    string
	logger *slog.Logger
}

// NewRecorder writes into dir; an empty dir means DataDir().
func NewRecorder(dir string, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{dir: dir, logger: logger}
}

// Record builds the entry for d and appends it as one JSON line.
// Errors are logged but never returned.
func (r *Recorder) Record(d *generate.Dungeon, source string) Entry {
	e := NewEntry(d, source)
	if r == nil {
		return e
	}
	if e.Placed < e.Requested {
		r.logger.Info("rooms not placed", "id", e.ID, "requested", e.Requested, "placed", e.Placed)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	dir := r.dir
	if dir == "" {
		var err error
		if dir, err = DataDir(); err != nil {
			r.logger.Warn("generation log: cannot determine data dir", "error", err)
			return e
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		r.logger.Warn("generation log: cannot create data dir", "error", err)
		return e
	}
	f, err := os.OpenFile(filepath.Join(dir, FileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		r.logger.Warn("generation log: cannot open file", "error", err)
		return e
	}
	defer f.Close()
	data, err := json.Marshal(e)
	if err != nil {
		r.logger.Warn("generation log: cannot marshal JSON", "error", err)
		return e
	}
	data = append(data, '\n')
	if _, err := f.Write(data); err != nil {
		r.logger.Warn("generation log: write failed", "error", err)
	}
	return e
}

// DataDir follows the XDG Base Directory spec: $XDG_DATA_HOME/robo-rebellion,
// defaulting to ~/.local/share/robo-rebellion.
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "robo-rebellion"), nil
}
