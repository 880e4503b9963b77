package engine

import "cellm/internal/core"

// neighborOffsets maps a neighbor index to its offset, clockwise from east
// with y growing downward:
//
//	3 2 1
//	4 * 0
//	5 6 7
var neighborOffsets = [8]core.Point{
	{X: 1, Y: 0},
	{X: 1, Y: -1},
	{X: 0, Y: -1},
	{X: -1, Y: -1},
	{X: -1, Y: 0},
	{X: -1, Y: 1},
	{X: 0, Y: 1},
	{X: 1, Y: 1},
}

// neighbor is one slot of a cell's neighborhood. ok is false off the grid.
type neighbor struct {
	pos   core.Point
	state int
	ok    bool
}

func neighborOf(g *core.StateGrid, p core.Point, n int) neighbor {
	off := neighborOffsets[n]
	x, y := p.X+off.X, p.Y+off.Y
	if !g.InBounds(x, y) {
		return neighbor{}
	}
	return neighbor{pos: core.Point{X: x, Y: y}, state: g.At(x, y), ok: true}
}

func neighborhood(g *core.StateGrid, p core.Point) [8]neighbor {
	var ns [8]neighbor
	for i := range ns {
		ns[i] = neighborOf(g, p, i)
	}
	return ns
}

func countMatching(g *core.StateGrid, p core.Point, state int) int {
	count := 0
	for _, n := range neighborhood(g, p) {
		if n.ok && n.state == state {
			count++
		}
	}
	return count
}
