package report

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"robo-rebellion/assets"
	"robo-rebellion/internal/gamemap"
	"robo-rebellion/internal/generate"
)

func generated(seed int64, rooms int) *generate.Dungeon {
	cfg := generate.DefaultConfig()
	cfg.RoomCount = rooms
	cfg.Rand = rand.New(rand.NewSource(seed))
	return generate.Generate(&cfg)
}

func TestWriteListsEveryRoom(t *testing.T) {
	d := generated(4, 10)
	var b strings.Builder
	if err := Write(&b, d, Options{}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := b.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// summary + header + rooms + start + boss
	if want := 2 + len(d.Rooms) + 2; len(lines) != want {
		t.Fatalf("got %d lines; want %d:\n%s", len(lines), want, out)
	}
	if !strings.HasPrefix(lines[1], "#") || !strings.Contains(lines[1], "Biome") {
		t.Errorf("header line = %q", lines[1])
	}
	if !strings.Contains(out, assets.GlyphSafeRoom) {
		t.Error("safe room marker missing")
	}
	if !strings.Contains(out, "Boss: "+d.Boss.Type) {
		t.Error("boss line missing")
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("escape codes emitted without Color")
	}
}

func TestWriteColor(t *testing.T) {
	d := generated(4, 5)
	var b strings.Builder
	if err := Write(&b, d, Options{Color: true}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(b.String(), "\x1b[38;2;") {
		t.Error("expected truecolor escapes with Color")
	}
}

func TestWriteEmptyDungeon(t *testing.T) {
	d := generated(1, 0)
	var b strings.Builder
	if err := Write(&b, d, Options{}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := strings.TrimRight(b.String(), "\n")
	if strings.Count(out, "\n") != 0 {
		t.Errorf("empty dungeon should print only the summary, got:\n%s", out)
	}
}

func TestSummaryShortfall(t *testing.T) {
	cfg := generate.DefaultConfig()
	cfg.Width = 8
	cfg.Rand = rand.New(rand.NewSource(1))
	d := generate.Generate(&cfg)
	s := Summary(d)
	if !strings.Contains(s, "0/10 rooms") || !strings.Contains(s, "[10 not placed]") {
		t.Errorf("Summary = %q", s)
	}
}

func TestColumnWidthsCountEmojiAsDouble(t *testing.T) {
	rows := [][]string{{"0", "(1,1) 5x5", "🏭 Factory", "1", "0", "1", ""}}
	widths := columnWidths(rows)
	if widths[2] != 10 {
		t.Errorf("biome column width = %d; want 10", widths[2])
	}
}

func TestBiomeColor(t *testing.T) {
	if BiomeColor(assets.BiomeFactory) != BiomeColors[assets.BiomeFactory] {
		t.Error("known biome should use its palette entry")
	}
	if BiomeColor("Moon Base") != ColorDefault {
		t.Error("unknown biome should use the default color")
	}
}

func TestPaint(t *testing.T) {
	got := paint("x", tcell.NewRGBColor(1, 2, 3))
	if got != "\x1b[38;2;1;2;3mx\x1b[0m" {
		t.Errorf("paint = %q", got)
	}
	if paint("x", tcell.ColorDefault) != "x" {
		t.Error("ColorDefault should not be painted")
	}
}

func TestWriteFlagsUnreachableRooms(t *testing.T) {
	d := &generate.Dungeon{
		Width: 40, Height: 20, Requested: 3, SafeRoom: 0,
		Rooms: []generate.Room{
			{Index: 0, Rect: gamemap.Rect{X: 2, Y: 2, W: 5, H: 5}, Center: gamemap.Point{X: 4, Y: 4}, Connections: []int{1}, IsSafeRoom: true},
			{Index: 1, Rect: gamemap.Rect{X: 12, Y: 2, W: 5, H: 5}, Center: gamemap.Point{X: 14, Y: 4}, Connections: []int{0}},
			{Index: 2, Rect: gamemap.Rect{X: 30, Y: 10, W: 5, H: 5}, Center: gamemap.Point{X: 32, Y: 12}},
		},
	}
	var b strings.Builder
	if err := Write(&b, d, Options{}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(b.String(), "Unreachable from start: 1 rooms") {
		t.Errorf("missing unreachable line:\n%s", b.String())
	}
}
