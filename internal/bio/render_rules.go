package bio

import (
	"image/color"
	"sort"
)

const (
	DefaultCellSize   = 10
	DefaultGridWidth  = 64
	DefaultGridHeight = 64
)

// StatePoint places a state on the grid before the first tick.
type StatePoint struct {
	X, Y  int
	State int
}

// RenderRules is the render section of a rule file.
type RenderRules struct {
	CellSize   int
	GridWidth  int
	GridHeight int
	Colors     map[int]uint32
	Seeds      []StatePoint
}

// NewRenderRules returns the settings used when a file has no render section.
func NewRenderRules() RenderRules {
	return RenderRules{
		CellSize:   DefaultCellSize,
		GridWidth:  DefaultGridWidth,
		GridHeight: DefaultGridHeight,
		Colors:     map[int]uint32{},
	}
}

// SetColor assigns a 0xRRGGBBAA color to a state.
func (rr *RenderRules) SetColor(state int, rgba uint32) {
	if rr.Colors == nil {
		rr.Colors = map[int]uint32{}
	}
	rr.Colors[state] = rgba
}

// Color returns the configured color for a state.
func (rr RenderRules) Color(state int) (color.RGBA, bool) {
	c, ok := rr.Colors[state]
	if !ok {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(c >> 24), G: uint8(c >> 16), B: uint8(c >> 8), A: uint8(c)}, true
}

// ColoredStates returns the states with a configured color in ascending order.
func (rr RenderRules) ColoredStates() []int {
	states := make([]int, 0, len(rr.Colors))
	for s := range rr.Colors {
		states = append(states, s)
	}
	sort.Ints(states)
	return states
}

// AddStatePoint appends a seed point.
func (rr *RenderRules) AddStatePoint(sp StatePoint) {
	rr.Seeds = append(rr.Seeds, sp)
}
