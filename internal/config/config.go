// Package config loads dungeon generation settings from YAML files.
// Keys that are absent keep the generator defaults; keys that are present
// are used as written, zero included.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"robo-rebellion/internal/generate"
)

// File mirrors the on-disk layout. Pointer fields distinguish "absent"
// from an explicit zero.
type File struct {
	Seed          *int64   `yaml:"seed"`
	Width         *int     `yaml:"width"`
	Height        *int     `yaml:"height"`
	RoomSizeMin   *int     `yaml:"room_size_min"`
	RoomSizeMax   *int     `yaml:"room_size_max"`
	RoomCount     *int     `yaml:"room_count"`
	CorridorWidth *int     `yaml:"corridor_width"`
	Biomes        []string `yaml:"biomes"`
}

// Load reads path and returns the default config overlaid with its values.
func Load(path string) (generate.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return generate.Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return generate.Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML document. Unknown keys are rejected. An empty
// document yields the defaults.
func Parse(r io.Reader) (generate.Config, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return generate.Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	cfg := generate.DefaultConfig()
	f.Apply(&cfg)
	return cfg, nil
}

// Apply copies every present field of f onto cfg.
func (f *File) Apply(cfg *generate.Config) {
	setInt := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	if f.Seed != nil {
		cfg.Seed = *f.Seed
	}
	setInt(&cfg.Width, f.Width)
	setInt(&cfg.Height, f.Height)
	setInt(&cfg.RoomSizeMin, f.RoomSizeMin)
	setInt(&cfg.RoomSizeMax, f.RoomSizeMax)
	setInt(&cfg.RoomCount, f.RoomCount)
	setInt(&cfg.CorridorWidth, f.CorridorWidth)
	if f.Biomes != nil {
		cfg.Biomes = append([]string{}, f.Biomes...)
	}
}
