package bio

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildGroupsByOwnerInOrder(t *testing.T) {
	first := NewRule()
	first.Owner = 1
	first.Next = 2
	second := NewRule()
	second.Owner = 1
	second.Next = 1
	other := NewRule()
	other.Owner = 2

	rs, err := Build([]Rule{first, other, second}, 3)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	bucket, ok := rs.StateRules(1)
	if !ok || len(bucket) != 2 {
		t.Fatalf("expected 2 rules for state 1, got %d (ok=%v)", len(bucket), ok)
	}
	if bucket[0].Next != 2 || bucket[1].Next != 1 {
		t.Fatal("bucket did not preserve insertion order")
	}
	bucket, ok = rs.StateRules(2)
	if !ok || len(bucket) != 1 {
		t.Fatalf("expected 1 rule for state 2, got %d (ok=%v)", len(bucket), ok)
	}
	if rs.Len() != 3 || rs.States() != 3 {
		t.Fatalf("Len=%d States=%d", rs.Len(), rs.States())
	}
}

func TestStateRulesDistinguishesUnknownFromEmpty(t *testing.T) {
	r := NewRule()
	r.Owner = 1
	rs, err := Build([]Rule{r}, 4)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		caption string
		state   int
		ok      bool
		count   int
	}{
		{caption: "state with rules", state: 1, ok: true, count: 1},
		{caption: "state without rules", state: 3, ok: true, count: 0},
		{caption: "dead state", state: 0, ok: false},
		{caption: "beyond declared states", state: 4, ok: false},
		{caption: "negative state", state: -2, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			rules, ok := rs.StateRules(tt.state)
			if ok != tt.ok || len(rules) != tt.count {
				t.Fatalf("StateRules(%d) = %d rules, ok=%v", tt.state, len(rules), ok)
			}
		})
	}
}

func TestBuildRejectsOutOfRangeOwner(t *testing.T) {
	for _, owner := range []int{0, 3, 9} {
		r := NewRule()
		r.Owner = owner
		_, err := Build([]Rule{r}, 3)
		var rangeErr *StateRangeError
		if !errors.As(err, &rangeErr) {
			t.Fatalf("owner %d: expected StateRangeError, got %v", owner, err)
		}
		if rangeErr.State != owner {
			t.Fatalf("owner %d: error reports state %d", owner, rangeErr.State)
		}
	}
}

func TestRuleString(t *testing.T) {
	all := NewRule()
	all.Owner = 1
	all.Neighbors = append([]int(nil), AllNeighbors...)
	all.NeighborState = 2
	all.Move = ConstMove(DirLeft)
	all.Next = 3

	exact := NewRule()
	exact.Owner = 2
	exact.AnyNeighbor = true
	exact.AnyExact = true
	exact.AnyCount = 3
	exact.NeighborState = 1
	exact.Offspring = 4
	exact.Move = RandomMove()
	exact.Next = 1

	linked := NewRule()
	linked.Owner = 1
	linked.Neighbors = []int{0, 4}
	linked.NeighborState = 1
	linked.Next = 2

	tests := []struct {
		rule Rule
		want string
	}{
		{all, "1 *.2 _ l 3"},
		{exact, "2 =3.1 4 ^ 1"},
		{linked, "1 0&4.1 _ _ 2"},
	}
	for _, tt := range tests {
		if got := tt.rule.String(); got != tt.want {
			t.Fatalf("String() = %q, expected %q", got, tt.want)
		}
	}

	var b strings.Builder
	rs, _ := Build([]Rule{all, exact}, 3)
	rs.Dump(&b)
	if !strings.Contains(b.String(), "(1,0) 2 =3.1 4 ^ 1") {
		t.Fatalf("Dump missing second bucket:\n%s", b.String())
	}
}

func TestThreshold(t *testing.T) {
	r := NewRule()
	r.AnyNeighbor = true
	r.AnyCount = 3

	r.AnyExact = true
	for count, want := range map[int]bool{2: false, 3: true, 4: false} {
		if r.Threshold(count) != want {
			t.Fatalf("exact threshold with %d neighbors = %v", count, !want)
		}
	}
	r.AnyExact = false
	for count, want := range map[int]bool{2: false, 3: true, 8: true} {
		if r.Threshold(count) != want {
			t.Fatalf("at-least threshold with %d neighbors = %v", count, !want)
		}
	}
}

func TestMoveOffset(t *testing.T) {
	tests := []struct {
		move   Move
		dx, dy int
	}{
		{ConstMove(DirLeft), -1, 0},
		{ConstMove(DirRight), 1, 0},
		{ConstMove(DirUp), 0, -1},
		{ConstMove(DirDown), 0, 1},
		{ConstMove(DirStay), 0, 0},
		{ConstMove(DirAbsorb), 0, 0},
		{RandomMove(), 0, 0},
	}
	for _, tt := range tests {
		dx, dy := tt.move.Offset()
		if dx != tt.dx || dy != tt.dy {
			t.Fatalf("%v offset = (%d,%d), expected (%d,%d)", tt.move, dx, dy, tt.dx, tt.dy)
		}
	}
}

func TestRenderRulesColor(t *testing.T) {
	rr := NewRenderRules()
	rr.SetColor(2, 0x11223344)
	rr.SetColor(1, 0xff0000ff)
	c, ok := rr.Color(2)
	if !ok || c.R != 0x11 || c.G != 0x22 || c.B != 0x33 || c.A != 0x44 {
		t.Fatalf("Color(2) = %+v, ok=%v", c, ok)
	}
	if _, ok := rr.Color(5); ok {
		t.Fatal("Color reported a color for an unset state")
	}
	if states := rr.ColoredStates(); len(states) != 2 || states[0] != 1 || states[1] != 2 {
		t.Fatalf("ColoredStates = %v", states)
	}
}
