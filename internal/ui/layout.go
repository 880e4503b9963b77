package ui

import (
	"fmt"

	"cellm/internal/core"
)

// hudLines flattens a snapshot into the rows the HUD prints. Group names
// become headers and parameters are indented below them.
func hudLines(s core.ParameterSnapshot) []string {
	var lines []string
	for _, g := range s.Groups {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, g.Name)
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("  %-12s %s", p.Label, p.Value))
		}
	}
	return lines
}

// segment is an axis-aligned line in screen pixels.
type segment struct {
	x, y, w, h int
}

// gridSegments returns the lines separating cells of a w*h grid drawn at
// cell pixels per cell, including the outer border. A cell size below 3
// yields no lines since they would cover the cells.
func gridSegments(size core.Size, cell int) []segment {
	if size.W <= 0 || size.H <= 0 || cell < 3 {
		return nil
	}
	width, height := size.W*cell, size.H*cell
	segs := make([]segment, 0, size.W+size.H+2)
	for x := 0; x <= size.W; x++ {
		px := x * cell
		if px == width {
			px--
		}
		segs = append(segs, segment{x: px, y: 0, w: 1, h: height})
	}
	for y := 0; y <= size.H; y++ {
		py := y * cell
		if py == height {
			py--
		}
		segs = append(segs, segment{x: 0, y: py, w: width, h: 1})
	}
	return segs
}
