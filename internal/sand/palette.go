package sand

import (
	"image/color"

	"mad-sand/internal/core"
)

// Palette lists the grain colors a press can pick from.
var Palette = []Color{
	{R: 241, G: 196, B: 15},  // mustard
	{R: 217, G: 103, B: 4},   // burnt orange
	{R: 196, G: 69, B: 54},   // brick
	{R: 242, G: 233, B: 206}, // cream
	{R: 73, G: 133, B: 109},  // mint
	{R: 52, G: 73, B: 94},    // slate
	{R: 149, G: 165, B: 166}, // light grey
	{R: 253, G: 227, B: 167}, // beige
	{R: 184, G: 233, B: 134}, // light green
	{R: 123, G: 36, B: 28},   // dark brown
	{R: 241, G: 148, B: 138}, // salmon
	{R: 130, G: 224, B: 170}, // aqua
}

// RandomColor picks a palette entry.
func RandomColor(rng core.Rand) Color {
	return Palette[rng.IntN(len(Palette))]
}

// RGBA converts the grain color to an opaque color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
