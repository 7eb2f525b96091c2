// robo-rebellion generates a dungeon and prints it.
//
//	robo-rebellion -seed 42
//	robo-rebellion -config dungeon.yaml -format json
//	robo-rebellion -rooms 20 -width 80 -height 40 -color
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"robo-rebellion/internal/codec"
	"robo-rebellion/internal/config"
	"robo-rebellion/internal/generate"
	"robo-rebellion/internal/genlog"
	"robo-rebellion/internal/report"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, returning the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("robo-rebellion", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFile := fs.String("config", "", "YAML file with generation settings")
	seed := fs.Int64("seed", 0, "random seed")
	width := fs.Int("width", 0, "grid width in cells")
	height := fs.Int("height", 0, "grid height in cells")
	rooms := fs.Int("rooms", 0, "number of rooms to attempt")
	format := fs.String("format", "text", "output format: text, json or msgpack")
	color := fs.Bool("color", false, "tint the text report by biome")
	logRun := fs.Bool("log", false, "append a summary to the generation log")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := generate.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}
	// Only flags given on the command line override the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "rooms":
			cfg.RoomCount = *rooms
		}
	})

	var enc *codec.Format
	if *format != "text" {
		f, err := codec.ParseFormat(*format)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 2
		}
		enc = &f
	}

	d := generate.Generate(&cfg)

	var id string
	if *logRun {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		id = genlog.NewRecorder("", logger).Record(d, "cli").ID
	}

	var err error
	if enc != nil {
		out := codec.FromDungeon(d)
		out.ID = id
		err = codec.Encode(stdout, *enc, out)
	} else {
		err = report.Write(stdout, d, report.Options{Color: *color})
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
