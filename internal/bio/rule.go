package bio

import (
	"fmt"
	"strings"
)

// AllNeighbors lists every neighbor offset, clockwise from east.
var AllNeighbors = []int{0, 1, 2, 3, 4, 5, 6, 7}

// Rule is one line of a rule file. It applies to cells holding Owner. Either
// Neighbors lists explicit offsets that are checked for NeighborState, or
// AnyNeighbor is set and all eight offsets are counted against AnyCount.
type Rule struct {
	Owner         int
	Neighbors     []int
	NeighborState int
	AnyNeighbor   bool
	AnyCount      int
	AnyExact      bool
	Next          int
	Offspring     int
	Move          Move
}

// NewRule returns a blank rule with the default any-neighbor count.
func NewRule() Rule {
	return Rule{AnyCount: 1, Move: ConstMove(DirStay)}
}

// Threshold reports whether count matching neighbors satisfies an
// any-neighbor rule.
func (r *Rule) Threshold(count int) bool {
	if r.AnyExact {
		return count == r.AnyCount
	}
	return count >= r.AnyCount
}

// String renders the rule in the same order it is written in source.
func (r Rule) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d ", r.Owner)
	switch {
	case r.AnyNeighbor:
		op := "^"
		if r.AnyExact {
			op = "="
		}
		fmt.Fprintf(&b, "%s%d", op, r.AnyCount)
	case len(r.Neighbors) == len(AllNeighbors) && sameOffsets(r.Neighbors, AllNeighbors):
		b.WriteString("*")
	default:
		for i, n := range r.Neighbors {
			if i > 0 {
				b.WriteString("&")
			}
			fmt.Fprintf(&b, "%d", n)
		}
	}
	fmt.Fprintf(&b, ".%d ", r.NeighborState)
	if r.Offspring == 0 {
		b.WriteString("_")
	} else {
		fmt.Fprintf(&b, "%d", r.Offspring)
	}
	fmt.Fprintf(&b, " %s %d", r.Move, r.Next)
	return b.String()
}

func sameOffsets(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
