package bio

// Direction is the move glyph written in a rule file.
type Direction byte

const (
	DirStay   Direction = '_'
	DirAbsorb Direction = '@'
	DirLeft   Direction = 'l'
	DirRight  Direction = 'r'
	DirUp     Direction = 'u'
	DirDown   Direction = 'd'
)

// Move describes where a cell goes after its rule fires. A random move picks
// an empty adjacent cell; every other move is a constant offset.
type Move struct {
	Random bool
	Dir    Direction
}

// ConstMove returns a constant move in the given direction.
func ConstMove(d Direction) Move { return Move{Dir: d} }

// RandomMove returns a move to a random empty neighbor.
func RandomMove() Move { return Move{Random: true, Dir: '^'} }

// Offset returns the one-cell translation of a constant move. Stay and absorb
// leave the cell where it is.
func (m Move) Offset() (dx, dy int) {
	if m.Random {
		return 0, 0
	}
	switch m.Dir {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	}
	return 0, 0
}

func (m Move) String() string {
	if m.Random {
		return "^"
	}
	if m.Dir == 0 {
		return string(DirStay)
	}
	return string(m.Dir)
}
