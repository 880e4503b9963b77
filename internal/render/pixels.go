package render

import (
	"image/color"

	"cellm/internal/bio"
)

// Background is the color of dead cells unless the rules color state 0.
var Background = color.RGBA{R: 222, G: 222, B: 222, A: 255}

// fallback colors states that the render section leaves uncolored.
var fallback = []color.RGBA{
	{R: 32, G: 32, B: 32, A: 255},
	{R: 200, G: 60, B: 50, A: 255},
	{R: 50, G: 110, B: 200, A: 255},
	{R: 60, G: 160, B: 80, A: 255},
	{R: 220, G: 170, B: 40, A: 255},
	{R: 140, G: 70, B: 170, A: 255},
}

// Palette returns one color per state. Index 0 is the background.
func Palette(rr bio.RenderRules, nstates int) []color.RGBA {
	if nstates < 1 {
		nstates = 1
	}
	palette := make([]color.RGBA, nstates)
	palette[0] = Background
	for s := 1; s < nstates; s++ {
		palette[s] = fallback[(s-1)%len(fallback)]
	}
	for _, s := range rr.ColoredStates() {
		if s < 0 || s >= nstates {
			continue
		}
		palette[s], _ = rr.Color(s)
	}
	return palette
}

// fillStateRGBA converts cell states into RGBA pixels using a palette. States
// past the end of the palette take its last color. When the palette is empty
// the buffer is cleared to transparent black.
func fillStateRGBA(buf []byte, cells []int, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := c
		if idx > last || idx < 0 {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
