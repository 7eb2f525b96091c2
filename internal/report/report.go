// Package report formats a generated dungeon as a room table for terminals:
// one line per room with its bounds, biome, links and spawn counts. It does
// not draw the grid.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"robo-rebellion/assets"
	"robo-rebellion/internal/generate"
)

// Options controls report output.
type Options struct {
	Color bool // emit ANSI truecolor escapes
}

// column widths are measured in terminal cells, so emoji count as two.
var headers = []string{"#", "Rect", "Biome", "Links", "Foes", "Loot", ""}

// Write prints the summary line and the room table for d.
func Write(w io.Writer, d *generate.Dungeon, opts Options) error {
	var b strings.Builder
	b.WriteString(Summary(d))
	b.WriteByte('\n')

	if len(d.Rooms) > 0 {
		rows := make([][]string, len(d.Rooms))
		for i := range d.Rooms {
			rows[i] = roomRow(d, i)
		}
		widths := columnWidths(rows)

		writeRow(&b, headers, widths, ColorHeader, opts)
		for i, row := range rows {
			writeRow(&b, row, widths, rowColor(&d.Rooms[i]), opts)
		}
	}

	if p, ok := d.PlayerStart(); ok {
		fmt.Fprintf(&b, "Start: (%d,%d)\n", p.X, p.Y)
		from := max(d.SafeRoom, 0)
		if n := len(d.Rooms) - d.Reachable(from).Size(); n > 0 {
			fmt.Fprintf(&b, "Unreachable from start: %d rooms\n", n)
		}
	}
	if d.Boss != nil {
		line := fmt.Sprintf("%s Boss: %s in room %d at (%d,%d)", assets.GlyphBoss, d.Boss.Type, d.Boss.RoomIndex, d.Boss.X, d.Boss.Y)
		if opts.Color {
			line = paint(line, ColorBoss)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Summary is a one-line overview including any room shortfall.
func Summary(d *generate.Dungeon) string {
	s := fmt.Sprintf("Dungeon %dx%d seed %d: %d/%d rooms, %d corridors (%d/%d loops), %d enemies, %d loot",
		d.Width, d.Height, d.Seed, len(d.Rooms), d.Requested, len(d.Corridors),
		d.LoopsAdded, d.LoopAttempts, len(d.Enemies), len(d.Loot))
	if n := d.Shortfall(); n > 0 {
		s += fmt.Sprintf(" [%d not placed]", n)
	}
	return s
}

func roomRow(d *generate.Dungeon, i int) []string {
	room := &d.Rooms[i]
	biome := room.Biome
	if biome == "" {
		biome = "-"
	}
	if g, ok := assets.BiomeGlyphs[room.Biome]; ok {
		biome = g + " " + biome
	}

	links := make([]string, len(room.Connections))
	for j, c := range room.Connections {
		links[j] = strconv.Itoa(c)
	}

	var marks []string
	if room.IsSafeRoom {
		marks = append(marks, assets.GlyphSafeRoom)
	}
	if room.IsBossRoom {
		marks = append(marks, assets.GlyphBoss)
	}

	return []string{
		strconv.Itoa(i),
		fmt.Sprintf("(%d,%d) %dx%d", room.X, room.Y, room.W, room.H),
		biome,
		strings.Join(links, ","),
		strconv.Itoa(len(d.EnemiesInRoom(i))),
		strconv.Itoa(len(d.LootInRoom(i))),
		strings.Join(marks, " "),
	}
}

func columnWidths(rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	return widths
}

func writeRow(b *strings.Builder, cells []string, widths []int, color tcell.Color, opts Options) {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = runewidth.FillRight(cell, widths[i])
	}
	line := strings.TrimRight(strings.Join(padded, "  "), " ")
	if opts.Color {
		line = paint(line, color)
	}
	b.WriteString(line)
	b.WriteByte('\n')
}

func rowColor(room *generate.Room) tcell.Color {
	if room.IsBossRoom {
		return ColorBoss
	}
	return BiomeColor(room.Biome)
}
