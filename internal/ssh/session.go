// Package ssh serves dungeon reports to SSH clients. The remote command
// picks the seed and output format:
//
//	ssh -p 2222 host            # random seed, room table
//	ssh -p 2222 host 42         # seed 42
//	ssh -p 2222 host 42 json    # seed 42 as JSON
package ssh

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	gossh "github.com/gliderlabs/ssh"

	"robo-rebellion/internal/codec"
	"robo-rebellion/internal/generate"
	"robo-rebellion/internal/genlog"
	"robo-rebellion/internal/report"
)

// maxArgs bounds the remote command; anything longer is rejected.
const maxArgs = 2

// allowedFormats lists the output names accepted on the command line.
var allowedFormats = map[string]bool{
	"text":    true,
	"json":    true,
	"msgpack": true,
}

// Request is a parsed remote command.
type Request struct {
	Seed    int64
	HasSeed bool
	Format  string
}

// ParseArgs reads "[seed] [format]" in either order.
func ParseArgs(args []string) (Request, error) {
	req := Request{Format: "text"}
	if len(args) > maxArgs {
		return req, fmt.Errorf("too many arguments: %d", len(args))
	}
	for _, arg := range args {
		arg = strings.ToLower(strings.TrimSpace(arg))
		if allowedFormats[arg] {
			req.Format = arg
			continue
		}
		seed, err := strconv.ParseInt(arg, 10, 64)
		if err != nil || req.HasSeed {
			return req, fmt.Errorf("unexpected argument %q", arg)
		}
		req.Seed, req.HasSeed = seed, true
	}
	return req, nil
}

// Handler generates one dungeon per SSH session.
type Handler struct {
	base     generate.Config
	recorder *genlog.Recorder
	logger   *slog.Logger

	// Seeds supplies the seed when the command names none.
	Seeds func() int64
}

// NewHandler builds a Handler. recorder may be nil.
func NewHandler(base generate.Config, recorder *genlog.Recorder, logger *slog.Logger) *Handler {
	base.Rand = nil
	return &Handler{
		base:     base,
		recorder: recorder,
		logger:   logger,
		Seeds:    func() int64 { return time.Now().UnixNano() },
	}
}

// Serve is the gliderlabs SSH handler for one connection.
func (h *Handler) Serve(s gossh.Session) {
	_, _, hasPTY := s.Pty()
	err := h.Run(s, s.Command(), hasPTY)
	if err != nil {
		h.logger.Warn("ssh session", "user", s.User(), "remote", s.RemoteAddr().String(), "error", err)
		fmt.Fprintf(s.Stderr(), "error: %v\n", err)
		_ = s.Exit(1)
		return
	}
	_ = s.Exit(0)
}

// ErrBadRequest marks errors caused by the remote command.
var ErrBadRequest = errors.New("bad request")

// Run generates the dungeon named by args and writes it to w. color enables
// ANSI tinting of the text report.
func (h *Handler) Run(w io.Writer, args []string, color bool) error {
	req, err := ParseArgs(args)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadRequest, err)
	}

	cfg := h.base
	if cfg.Biomes != nil {
		cfg.Biomes = append([]string{}, cfg.Biomes...)
	}
	cfg.Seed = req.Seed
	if !req.HasSeed {
		cfg.Seed = h.Seeds()
	}
	d := generate.Generate(&cfg)
	entry := h.recorder.Record(d, "ssh")
	h.logger.Info("ssh dungeon", "id", entry.ID, "seed", d.Seed, "rooms", len(d.Rooms), "format", req.Format)

	if req.Format != "text" {
		f, err := codec.ParseFormat(req.Format)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBadRequest, err)
		}
		out := codec.FromDungeon(d)
		out.ID = entry.ID
		return codec.Encode(w, f, out)
	}
	return report.Write(w, d, report.Options{Color: color})
}
