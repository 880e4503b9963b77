package lang

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"cellm/internal/bio"
)

func parseSource(t *testing.T, src string) (*Result, error) {
	t.Helper()
	toks, err := Scan([]byte(src))
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	return Parse(toks)
}

func TestParseRules(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		check   func(t *testing.T, r bio.Rule)
	}{
		{
			caption: "all-neighbors rule with a constant move",
			src:     "states 4\n2 *.3 _ l 1\n",
			check: func(t *testing.T, r bio.Rule) {
				if r.Owner != 2 || r.NeighborState != 3 || r.Offspring != 0 || r.Next != 1 {
					t.Fatalf("unexpected rule %+v", r)
				}
				if !slices.Equal(r.Neighbors, []int{0, 1, 2, 3, 4, 5, 6, 7}) {
					t.Fatalf("expected all eight offsets, got %v", r.Neighbors)
				}
				if r.AnyNeighbor || r.Move.Random || r.Move.Dir != bio.DirLeft {
					t.Fatalf("unexpected qualifier or move %+v", r)
				}
			},
		},
		{
			caption: "at-least qualifier with a count",
			src:     "states 3\n1 ^3.2 _ _ 2",
			check: func(t *testing.T, r bio.Rule) {
				if !r.AnyNeighbor || r.AnyExact || r.AnyCount != 3 || r.NeighborState != 2 {
					t.Fatalf("unexpected qualifier %+v", r)
				}
				if len(r.Neighbors) != 0 {
					t.Fatalf("any-neighbor rule must not list offsets, got %v", r.Neighbors)
				}
			},
		},
		{
			caption: "exact qualifier without a count defaults to one",
			src:     "states 3\n1 =.2 2 ^ 2",
			check: func(t *testing.T, r bio.Rule) {
				if !r.AnyNeighbor || !r.AnyExact || r.AnyCount != 1 {
					t.Fatalf("unexpected qualifier %+v", r)
				}
				if r.Offspring != 2 || !r.Move.Random {
					t.Fatalf("unexpected offspring or move %+v", r)
				}
			},
		},
		{
			caption: "single explicit neighbor",
			src:     "states 2\n1 6.0 _ d 0",
			check: func(t *testing.T, r bio.Rule) {
				if !slices.Equal(r.Neighbors, []int{6}) || r.NeighborState != 0 || r.Move.Dir != bio.DirDown {
					t.Fatalf("unexpected rule %+v", r)
				}
			},
		},
		{
			caption: "linked explicit neighbors",
			src:     "states 3\n1 0&2&4.1 _ @ 2",
			check: func(t *testing.T, r bio.Rule) {
				if !slices.Equal(r.Neighbors, []int{0, 2, 4}) || r.Move.Dir != bio.DirAbsorb {
					t.Fatalf("unexpected rule %+v", r)
				}
			},
		},
		{
			caption: "tabs and extra spaces are insignificant",
			src:     "states 3\n\t1  *.1\t_ r   2  \n",
			check: func(t *testing.T, r bio.Rule) {
				if r.Owner != 1 || r.Move.Dir != bio.DirRight || r.Next != 2 {
					t.Fatalf("unexpected rule %+v", r)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			res, err := parseSource(t, tt.src)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(res.Rules) != 1 {
				t.Fatalf("expected 1 rule, got %d", len(res.Rules))
			}
			tt.check(t, res.Rules[0])
		})
	}
}

func TestParseAllNeighborsForAnyStates(t *testing.T) {
	for owner := 1; owner < 5; owner++ {
		for state := 0; state < 5; state++ {
			for next := 0; next < 5; next++ {
				src := "states 5\n" + itoa(owner) + " *." + itoa(state) + " _ l " + itoa(next) + "\n"
				res, err := parseSource(t, src)
				if err != nil {
					t.Fatalf("%q: %v", src, err)
				}
				r := res.Rules[0]
				if r.Owner != owner || r.NeighborState != state || r.Next != next || r.Offspring != 0 {
					t.Fatalf("%q parsed as %+v", src, r)
				}
				if !slices.Equal(r.Neighbors, bio.AllNeighbors) || r.Move != bio.ConstMove(bio.DirLeft) {
					t.Fatalf("%q parsed as %+v", src, r)
				}
			}
		}
	}
}

func itoa(v int) string { return string(rune('0' + v)) }

func TestParseSystem(t *testing.T) {
	src := `# Conway's life with a render section
states 3

2 ^3.1 _ _ 1   # birth
1 =2.1 _ _ 1
1 =3.1 _ _ 1
1 ^.1 _ _ 2

render
8 40 30
1 ffcc00ff
2 dededeff
@ 3 4 1
@ 0 0 1
`
	res, err := parseSource(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.States != 3 || len(res.Rules) != 4 {
		t.Fatalf("expected 3 states and 4 rules, got %d and %d", res.States, len(res.Rules))
	}
	rr := res.Render
	if rr.CellSize != 8 || rr.GridWidth != 40 || rr.GridHeight != 30 {
		t.Fatalf("unexpected sizes %d %d %d", rr.CellSize, rr.GridWidth, rr.GridHeight)
	}
	if rr.Colors[1] != 0xffcc00ff || rr.Colors[2] != 0xdededeff {
		t.Fatalf("unexpected colors %x", rr.Colors)
	}
	want := []bio.StatePoint{{X: 3, Y: 4, State: 1}, {X: 0, Y: 0, State: 1}}
	if !slices.Equal(rr.Seeds, want) {
		t.Fatalf("unexpected seeds %v", rr.Seeds)
	}
}

func TestParseWithoutRenderUsesDefaults(t *testing.T) {
	res, err := parseSource(t, "states 2\n1 *.1 _ _ 0")
	if err != nil {
		t.Fatal(err)
	}
	if res.Render.CellSize != bio.DefaultCellSize || res.Render.GridWidth != bio.DefaultGridWidth {
		t.Fatalf("unexpected defaults %+v", res.Render)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		cause   *SyntaxError
		line    int
		cur     string
	}{
		{caption: "missing states header", src: "1 *.1 _ _ 1", cause: synErrNoStates, line: 1, cur: "1"},
		{caption: "zero states", src: "states 0\n", cause: synErrStateCount, line: 1, cur: "0"},
		{caption: "rule owned by the dead state", src: "states 2\n0 *.1 _ _ 1", cause: synErrDeadOwner, line: 2, cur: "0"},
		{caption: "owner beyond declared states", src: "states 2\n2 *.1 _ _ 1", cause: synErrStateRange, line: 2, cur: "2"},
		{caption: "next state beyond declared states", src: "states 2\n1 *.1 _ _ 5", cause: synErrStateRange, line: 2, cur: "5"},
		{caption: "neighbor index out of range", src: "states 2\n1 8.1 _ _ 1", cause: synErrNeighborIndex, line: 2, cur: "8"},
		{caption: "any count above eight", src: "states 2\n1 ^9.1 _ _ 1", cause: synErrAnyCount, line: 2, cur: "9"},
		{caption: "missing neighbor qualifier", src: "states 2\n1 _ _ _ 1", cause: synErrNoNeighbor, line: 2, cur: "_"},
		{caption: "missing dot", src: "states 2\n1 *1 _ _ 1", cause: synErrUnexpectedKind, line: 2, cur: "1"},
		{caption: "bad offspring", src: "states 2\n1 *.1 l _ 1", cause: synErrNoOffspring, line: 2, cur: "l"},
		{caption: "bad move", src: "states 2\n1 *.1 _ = 1", cause: synErrNoMove, line: 2, cur: "="},
		{caption: "missing next state", src: "states 2\n1 *.1 _ l\n", cause: synErrUnexpectedKind, line: 2, cur: `\n`},
		{caption: "hex where a decimal is required", src: "states 2\n1 *.1 _ _ 1f", cause: synErrDecimal, line: 2, cur: "1f"},
		{caption: "two rules on one line", src: "states 3\n1 *.1 _ _ 1 2 *.1 _ _ 1", cause: synErrUnexpectedKind, line: 2, cur: "2"},
		{caption: "stray tokens after the rules", src: "states 2\n1 *.1 _ _ 1\n@", cause: synErrTrailing, line: 3, cur: "@"},
		{caption: "non-positive render size", src: "states 2\nrender\n0 10 10", cause: synErrRenderSize, line: 3, cur: "0"},
		{caption: "missing render size", src: "states 2\nrender\n8 10\n", cause: synErrRenderSize, line: 3, cur: `\n`},
		{caption: "color wider than 32 bits", src: "states 2\nrender\n8 10 10\n1 ffffffffff", cause: synErrColor, line: 4, cur: "ffffffffff"},
		{caption: "seed outside the grid", src: "states 2\nrender\n8 10 10\n@ 10 2 1", cause: synErrSeedOutsideGrid, line: 4, cur: "10"},
		{caption: "junk in the render section", src: "states 2\nrender\n8 10 10\n*", cause: synErrRenderLine, line: 4, cur: "*"},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			_, err := parseSource(t, tt.src)
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected ParseError, got %v", err)
			}
			if !errors.Is(err, tt.cause) {
				t.Fatalf("expected cause %v, got %v", tt.cause, perr.Cause)
			}
			if perr.Line != tt.line || perr.Cur != tt.cur {
				t.Fatalf("expected %q on line %d, got %q on line %d", tt.cur, tt.line, perr.Cur, perr.Line)
			}
		})
	}
}

func TestParseErrorDiagnostic(t *testing.T) {
	_, err := parseSource(t, "states 2\n1 *1 _ _ 1")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if perr.Prev != "*" || perr.Cur != "1" || perr.Next != "_" {
		t.Fatalf("unexpected context %q %q %q", perr.Prev, perr.Cur, perr.Next)
	}
	if !perr.Mismatch || perr.Expected != KindDot || perr.Found != KindNumber {
		t.Fatalf("unexpected expectation %v/%v", perr.Expected, perr.Found)
	}
	msg := perr.Error()
	for _, part := range []string{"line 2", "expected Dot, found Number", "at token 5"} {
		if !strings.Contains(msg, part) {
			t.Fatalf("diagnostic %q does not mention %q", msg, part)
		}
	}
}

func TestParseErrorAtEdges(t *testing.T) {
	_, err := Parse([]Token{{Kind: KindNumber, Lexeme: "1", Line: 1}})
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if perr.Prev != "BOF" || perr.Next != "EOF" {
		t.Fatalf("expected BOF/EOF placeholders, got %q/%q", perr.Prev, perr.Next)
	}
}

func TestCompile(t *testing.T) {
	prog, err := Compile([]byte("states 3\n1 *.2 _ _ 2\n1 ^2.1 _ _ 0\n2 =.1 1 ^ 2\n"))
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if prog.States != 3 || prog.Rules.Len() != 3 {
		t.Fatalf("unexpected program: %d states, %d rules", prog.States, prog.Rules.Len())
	}
	if rules, _ := prog.Rules.StateRules(1); len(rules) != 2 {
		t.Fatalf("expected 2 rules for state 1, got %d", len(rules))
	}

	if _, err := Compile([]byte("states 2\n1 !")); err == nil {
		t.Fatal("expected scan error")
	}
}
