package report

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"robo-rebellion/assets"
)

// BiomeColors tints each biome's row in the room table.
var BiomeColors = map[string]tcell.Color{
	assets.BiomeFactory:    tcell.NewRGBColor(230, 140, 60),
	assets.BiomeServerCore: tcell.NewRGBColor(90, 170, 255),
	assets.BiomeJunkyard:   tcell.NewRGBColor(170, 160, 110),
	assets.BiomeSafeZone:   tcell.NewRGBColor(110, 220, 120),
}

// Fallback tints for rows without a biome color and for highlights.
var (
	ColorDefault = tcell.ColorSilver
	ColorBoss    = tcell.NewRGBColor(240, 70, 70)
	ColorHeader  = tcell.ColorWhite
)

// BiomeColor returns the tint for biome, or ColorDefault.
func BiomeColor(biome string) tcell.Color {
	if c, ok := BiomeColors[biome]; ok {
		return c
	}
	return ColorDefault
}

// paint wraps s in a 24-bit ANSI foreground escape for c.
func paint(s string, c tcell.Color) string {
	r, g, b := c.RGB()
	if r < 0 {
		return s
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, s)
}
