// Package api serves generated dungeons over HTTP. Every request builds a
// fresh dungeon from the server's base config plus request overrides, so a
// seed always maps to the same layout.
package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"robo-rebellion/internal/codec"
	"robo-rebellion/internal/generate"
	"robo-rebellion/internal/genlog"
)

// Request limits keep a single call from allocating an unbounded grid.
const (
	MaxDimension = 500
	MaxRoomCount = 200
)

// Handler routes dungeon requests.
type Handler struct {
	base     generate.Config
	recorder *genlog.Recorder
	logger   *slog.Logger
	router   *mux.Router

	// Seeds supplies the seed when a request names none.
	Seeds func() int64
}

// New builds a Handler. recorder may be nil.
func New(base generate.Config, recorder *genlog.Recorder, logger *slog.Logger) *Handler {
	h := &Handler{
		base:     base,
		recorder: recorder,
		logger:   logger,
		Seeds:    func() int64 { return time.Now().UnixNano() },
	}
	h.base.Rand = nil

	r := mux.NewRouter()
	r.Use(h.logRequests)
	r.HandleFunc("/healthz", h.healthz).Methods(http.MethodGet)
	r.HandleFunc("/api/dungeon", h.dungeon).Methods(http.MethodGet)
	r.HandleFunc("/api/dungeon/{seed:-?[0-9]+}", h.dungeon).Methods(http.MethodGet)
	r.HandleFunc("/api/dungeon/{seed:-?[0-9]+}/start", h.start).Methods(http.MethodGet)
	r.HandleFunc("/api/dungeon/{seed:-?[0-9]+}/rooms/{index:[0-9]+}", h.room).Methods(http.MethodGet)
	h.router = r
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// RoomView is one room with everything spawned in it.
type RoomView struct {
	Index   int               `json:"index" msgpack:"index"`
	Room    codec.Room        `json:"room" msgpack:"room"`
	Enemies []codec.Placement `json:"enemies" msgpack:"enemies"`
	Loot    []codec.Placement `json:"loot" msgpack:"loot"`
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok")) //nolint:errcheck
}

func (h *Handler) dungeon(w http.ResponseWriter, r *http.Request) {
	d, ok := h.generate(w, r)
	if !ok {
		return
	}
	entry := h.recorder.Record(d, "http")
	out := codec.FromDungeon(d)
	out.ID = entry.ID
	w.Header().Set("X-Generation-Id", entry.ID)
	h.write(w, r, http.StatusOK, out)
}

func (h *Handler) start(w http.ResponseWriter, r *http.Request) {
	d, ok := h.generate(w, r)
	if !ok {
		return
	}
	p, ok := d.PlayerStart()
	if !ok {
		h.writeError(w, r, http.StatusNotFound, "dungeon has no rooms")
		return
	}
	h.write(w, r, http.StatusOK, p)
}

func (h *Handler) room(w http.ResponseWriter, r *http.Request) {
	d, ok := h.generate(w, r)
	if !ok {
		return
	}
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil || index < 0 || index >= len(d.Rooms) {
		h.writeError(w, r, http.StatusNotFound, fmt.Sprintf("room %s not found", mux.Vars(r)["index"]))
		return
	}
	h.write(w, r, http.StatusOK, RoomView{
		Index:   index,
		Room:    codec.FromRoom(&d.Rooms[index]),
		Enemies: codec.Placements(d.EnemiesInRoom(index)),
		Loot:    codec.Placements(d.LootInRoom(index)),
	})
}

// generate runs the generator for r, writing a 400 and returning false on
// bad parameters.
func (h *Handler) generate(w http.ResponseWriter, r *http.Request) (*generate.Dungeon, bool) {
	cfg, err := h.configFor(r)
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return nil, false
	}
	d := generate.Generate(&cfg)
	h.logger.Debug("generated dungeon", "seed", d.Seed, "rooms", len(d.Rooms), "requested", d.Requested)
	return d, true
}

// configFor overlays path and query parameters on the base config.
func (h *Handler) configFor(r *http.Request) (generate.Config, error) {
	cfg := h.base
	if h.base.Biomes != nil {
		cfg.Biomes = append([]string{}, h.base.Biomes...)
	}
	q := r.URL.Query()

	seed := mux.Vars(r)["seed"]
	if seed == "" {
		seed = q.Get("seed")
	}
	if seed == "" {
		cfg.Seed = h.Seeds()
	} else {
		v, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid seed %q", seed)
		}
		cfg.Seed = v
	}

	ints := []struct {
		name  string
		dst   *int
		limit int
	}{
		{"width", &cfg.Width, MaxDimension},
		{"height", &cfg.Height, MaxDimension},
		{"roomCount", &cfg.RoomCount, MaxRoomCount},
		{"roomSizeMin", &cfg.RoomSizeMin, MaxDimension},
		{"roomSizeMax", &cfg.RoomSizeMax, MaxDimension},
		{"corridorWidth", &cfg.CorridorWidth, MaxDimension},
	}
	for _, p := range ints {
		raw := q.Get(p.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q", p.name, raw)
		}
		if v < 0 || v > p.limit {
			return cfg, fmt.Errorf("%s must be between 0 and %d", p.name, p.limit)
		}
		*p.dst = v
	}

	if q.Has("biomes") {
		cfg.Biomes = []string{}
		for _, b := range strings.Split(q.Get("biomes"), ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.Biomes = append(cfg.Biomes, b)
			}
		}
	}
	return cfg, nil
}

// formatFor picks MessagePack when the client asks for it by Accept header
// or ?format=, JSON otherwise.
func formatFor(r *http.Request) codec.Format {
	if f, err := codec.ParseFormat(r.URL.Query().Get("format")); err == nil && f == codec.FormatMsgpack {
		return f
	}
	if strings.Contains(r.Header.Get("Accept"), codec.FormatMsgpack.ContentType()) {
		return codec.FormatMsgpack
	}
	return codec.FormatJSON
}

func (h *Handler) write(w http.ResponseWriter, r *http.Request, status int, v any) {
	f := formatFor(r)
	w.Header().Set("Content-Type", f.ContentType())
	w.WriteHeader(status)
	if err := codec.Encode(w, f, v); err != nil {
		h.logger.Warn("write response", "path", r.URL.Path, "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	h.write(w, r, status, map[string]string{"error": msg})
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		h.logger.Info("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
