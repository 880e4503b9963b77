package engine

import "fmt"

// UnknownStateError reports a state the rule set does not declare. X and Y
// are negative when the state was not found on the grid.
type UnknownStateError struct {
	State int
	X, Y  int
}

func (e *UnknownStateError) Error() string {
	if e.X < 0 || e.Y < 0 {
		return fmt.Sprintf("unknown state %d", e.State)
	}
	return fmt.Sprintf("unknown state %d at (%d, %d)", e.State, e.X, e.Y)
}

// OutOfBoundsError reports a write outside the grid.
type OutOfBoundsError struct {
	X, Y int
	W, H int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("cell (%d, %d) is outside the %dx%d grid", e.X, e.Y, e.W, e.H)
}
