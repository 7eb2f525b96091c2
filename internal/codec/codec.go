// Package codec turns a generated dungeon into the wire form consumed by
// the game client and encodes it as JSON or MessagePack.
package codec

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"robo-rebellion/internal/gamemap"
	"robo-rebellion/internal/generate"
)

// Room is the wire form of generate.Room. Biome is null until assigned.
type Room struct {
	X           int           `json:"x" msgpack:"x"`
	Y           int           `json:"y" msgpack:"y"`
	Width       int           `json:"width" msgpack:"width"`
	Height      int           `json:"height" msgpack:"height"`
	Center      gamemap.Point `json:"center" msgpack:"center"`
	Connections []int         `json:"connections" msgpack:"connections"`
	Biome       *string       `json:"biome" msgpack:"biome"`
	IsSafeRoom  bool          `json:"isSafeRoom" msgpack:"isSafeRoom"`
	IsBossRoom  bool          `json:"isBossRoom" msgpack:"isBossRoom"`
}

// Corridor is the wire form of generate.Corridor.
type Corridor struct {
	Points []gamemap.Point `json:"points" msgpack:"points"`
	Width  int             `json:"width" msgpack:"width"`
}

// Placement is an enemy, loot or boss record.
type Placement struct {
	X         int    `json:"x" msgpack:"x"`
	Y         int    `json:"y" msgpack:"y"`
	Type      string `json:"type" msgpack:"type"`
	RoomIndex int    `json:"roomIndex" msgpack:"roomIndex"`
}

// Dungeon is the full generation output.
type Dungeon struct {
	ID        string      `json:"id,omitempty" msgpack:"id,omitempty"`
	Seed      int64       `json:"seed" msgpack:"seed"`
	Requested int         `json:"requested" msgpack:"requested"`
	Grid      [][]int     `json:"grid" msgpack:"grid"`
	Rooms     []Room      `json:"rooms" msgpack:"rooms"`
	Corridors []Corridor  `json:"corridors" msgpack:"corridors"`
	SafeRoom  *Room       `json:"safeRoom" msgpack:"safeRoom"`
	Enemies   []Placement `json:"enemies" msgpack:"enemies"`
	Loot      []Placement `json:"loot" msgpack:"loot"`
	Boss      *Placement  `json:"boss" msgpack:"boss"`
}

// FromDungeon builds the wire form of d. Collections are never null.
func FromDungeon(d *generate.Dungeon) Dungeon {
	out := Dungeon{
		Seed:      d.Seed,
		Requested: d.Requested,
		Grid:      d.Grid.Ints(),
		Rooms:     make([]Room, len(d.Rooms)),
		Corridors: make([]Corridor, len(d.Corridors)),
		Enemies:   Placements(d.Enemies),
		Loot:      Placements(d.Loot),
	}
	for i := range d.Rooms {
		out.Rooms[i] = FromRoom(&d.Rooms[i])
	}
	for i, c := range d.Corridors {
		c := c // per-iteration copy: Points[:] must not alias the loop variable
		out.Corridors[i] = Corridor{Points: c.Points[:], Width: c.Width}
	}
	if d.SafeRoom >= 0 {
		safe := out.Rooms[d.SafeRoom]
		out.SafeRoom = &safe
	}
	if d.Boss != nil {
		b := Placement(*d.Boss)
		out.Boss = &b
	}
	return out
}

// FromRoom converts a single room.
func FromRoom(r *generate.Room) Room {
	room := Room{
		X:           r.X,
		Y:           r.Y,
		Width:       r.W,
		Height:      r.H,
		Center:      r.Center,
		Connections: append([]int{}, r.Connections...),
		IsSafeRoom:  r.IsSafeRoom,
		IsBossRoom:  r.IsBossRoom,
	}
	if r.Biome != "" {
		biome := r.Biome
		room.Biome = &biome
	}
	return room
}

// Placements converts placement records, returning an empty slice for none.
func Placements(ps []generate.Placement) []Placement {
	out := make([]Placement, len(ps))
	for i, p := range ps {
		out[i] = Placement(p)
	}
	return out
}

// Format selects an encoding.
type Format uint8

const (
	FormatJSON Format = iota
	FormatMsgpack
)

// ParseFormat maps a user-supplied name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "msgpack", "messagepack":
		return FormatMsgpack, nil
	}
	return FormatJSON, fmt.Errorf("unknown format %q", s)
}

// ContentType returns the MIME type for f.
func (f Format) ContentType() string {
	if f == FormatMsgpack {
		return "application/msgpack"
	}
	return "application/json"
}

func (f Format) String() string {
	if f == FormatMsgpack {
		return "msgpack"
	}
	return "json"
}

// Encode writes v to w in format f.
func Encode(w io.Writer, f Format, v any) error {
	switch f {
	case FormatMsgpack:
		if err := msgpack.NewEncoder(w).Encode(v); err != nil {
			return fmt.Errorf("encode msgpack: %w", err)
		}
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	}
	return nil
}

// Decode reads a value in format f from r into v.
func Decode(r io.Reader, f Format, v any) error {
	switch f {
	case FormatMsgpack:
		if err := msgpack.NewDecoder(r).Decode(v); err != nil {
			return fmt.Errorf("decode msgpack: %w", err)
		}
	default:
		if err := json.NewDecoder(r).Decode(v); err != nil {
			return fmt.Errorf("decode json: %w", err)
		}
	}
	return nil
}
