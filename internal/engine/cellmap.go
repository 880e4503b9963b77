package engine

import (
	"sort"

	"cellm/internal/core"
)

// CellMap tracks the occupied cells of the grid. Dead cells are never stored.
type CellMap struct {
	cells map[core.Point]int
}

// NewCellMap returns an empty map.
func NewCellMap() *CellMap {
	return &CellMap{cells: map[core.Point]int{}}
}

// Set records state at p, dropping the entry when state is dead.
func (m *CellMap) Set(p core.Point, state int) {
	if state == 0 {
		delete(m.cells, p)
		return
	}
	m.cells[p] = state
}

// Get returns the state recorded at p.
func (m *CellMap) Get(p core.Point) (int, bool) {
	s, ok := m.cells[p]
	return s, ok
}

// Len returns the number of occupied cells.
func (m *CellMap) Len() int { return len(m.cells) }

// Points returns the occupied cells in row-major order.
func (m *CellMap) Points() []core.Point {
	pts := make([]core.Point, 0, len(m.cells))
	for p := range m.cells {
		pts = append(pts, p)
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i].Less(pts[j]) })
	return pts
}

// Clear removes every entry.
func (m *CellMap) Clear() {
	for p := range m.cells {
		delete(m.cells, p)
	}
}
