// robo-rebellion-server serves freshly generated dungeons over SSH and HTTP.
// Build:
//
//	go build -o robo-rebellion-server ./cmd/server
//
// Usage:
//
//	./robo-rebellion-server [-port 2222] [-http :8080] [-key server_host_key] [-config dungeon.yaml]
//
// Then:
//
//	ssh -p 2222 localhost 42
//	curl localhost:8080/api/dungeon/42
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"robo-rebellion/internal/api"
	"robo-rebellion/internal/config"
	"robo-rebellion/internal/generate"
	"robo-rebellion/internal/genlog"
	internalssh "robo-rebellion/internal/ssh"

	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	httpAddr := flag.String("http", ":8080", "HTTP listen address (empty disables the API)")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	configFile := flag.String("config", "", "YAML file with the base dungeon config")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	base, err := baseConfig(*configFile)
	if err != nil {
		logger.Error("config", "error", err)
		os.Exit(1)
	}
	signer, err := loadOrCreateHostKey(*keyFile, logger)
	if err != nil {
		logger.Error("host key", "error", err)
		os.Exit(1)
	}
	recorder := genlog.NewRecorder("", logger)

	errc := make(chan error, 2)
	if *httpAddr != "" {
		srv := &http.Server{
			Addr:              *httpAddr,
			Handler:           api.New(base, recorder, logger),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("HTTP API listening", "addr", *httpAddr)
			errc <- fmt.Errorf("http: %w", srv.ListenAndServe())
		}()
	}

	sessions := internalssh.NewHandler(base, recorder, logger)
	srv := &gossh.Server{
		Addr:        fmt.Sprintf(":%d", *port),
		Handler:     sessions.Serve,
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Any client may connect; the server only hands out generated maps.
		HostSigners: []gossh.Signer{signer},
	}
	go func() {
		logger.Info("SSH server listening", "port", *port)
		logger.Info(fmt.Sprintf("try: ssh -p %d -o StrictHostKeyChecking=no localhost 42", *port))
		errc <- fmt.Errorf("ssh: %w", srv.ListenAndServe())
	}()

	logger.Error("server stopped", "error", <-errc)
	os.Exit(1)
}

// baseConfig loads path, or returns the defaults when path is empty.
func baseConfig(path string) (generate.Config, error) {
	if path == "" {
		return generate.DefaultConfig(), nil
	}
	return config.Load(path)
}

// ─── host key ───────────────────────────────────────────────────────────────

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent. A present but
// unparsable file is an error so a corrupted key is never silently replaced.
func loadOrCreateHostKey(path string, logger *slog.Logger) (gossh.Signer, error) {
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		signer, err := xssh.ParsePrivateKey(data)
		if err != nil {
			return nil, fmt.Errorf("parse host key %s: %w", path, err)
		}
		logger.Info("loaded host key", "path", path)
		return signer, nil
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("read host key %s: %w", path, err)
	}

	logger.Info("generating new ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for next run (non-fatal if it fails).
	pemBlock, err := xssh.MarshalPrivateKey(key, "robo-rebellion server")
	if err == nil {
		err = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600)
	}
	if err != nil {
		logger.Warn("host key not saved", "path", path, "error", err)
	}
	return signer, nil
}
