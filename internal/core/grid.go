package core

// StateGrid stores a 2D grid of integer cell states in row-major order.
type StateGrid struct {
	W, H int
	data []int
}

// NewStateGrid allocates a grid with the given dimensions.
func NewStateGrid(w, h int) *StateGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &StateGrid{W: w, H: h, data: make([]int, w*h)}
}

// Cells exposes the backing slice so callers can read values directly.
func (g *StateGrid) Cells() []int { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *StateGrid) Index(x, y int) int { return y*g.W + x }

// Point returns the coordinates for a linear slice index.
func (g *StateGrid) Point(idx int) Point { return Point{X: idx % g.W, Y: idx / g.W} }

// InBounds reports whether (x, y) lies on the grid.
func (g *StateGrid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// Clamp pins the coordinates to the grid edges. There is no wraparound.
func (g *StateGrid) Clamp(x, y int) (int, int) {
	if x < 0 {
		x = 0
	} else if x >= g.W {
		x = g.W - 1
	}
	if y < 0 {
		y = 0
	} else if y >= g.H {
		y = g.H - 1
	}
	return x, y
}

// At returns the state at (x, y). Callers must check bounds first.
func (g *StateGrid) At(x, y int) int { return g.data[y*g.W+x] }

// Set writes the state at (x, y). Callers must check bounds first.
func (g *StateGrid) Set(x, y, state int) { g.data[y*g.W+x] = state }

// Clear fills the grid with zeros.
func (g *StateGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
