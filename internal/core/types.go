package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Point is a cell coordinate. Y grows downward.
type Point struct {
	X int
	Y int
}

// Less orders points row-major, the order cells are committed in.
func (p Point) Less(o Point) bool {
	if p.Y != o.Y {
		return p.Y < o.Y
	}
	return p.X < o.X
}
