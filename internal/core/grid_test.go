package core

import "testing"

func TestStateGridClamp(t *testing.T) {
	g := NewStateGrid(8, 6)
	tests := []struct {
		x, y   int
		wx, wy int
	}{
		{-1, 3, 0, 3},
		{3, -4, 3, 0},
		{8, 2, 7, 2},
		{2, 6, 2, 5},
		{4, 4, 4, 4},
	}
	for _, tt := range tests {
		x, y := g.Clamp(tt.x, tt.y)
		if x != tt.wx || y != tt.wy {
			t.Fatalf("Clamp(%d,%d) = (%d,%d), expected (%d,%d)", tt.x, tt.y, x, y, tt.wx, tt.wy)
		}
	}
}

func TestStateGridIndexRoundTrip(t *testing.T) {
	g := NewStateGrid(5, 4)
	g.Set(3, 2, 7)
	idx := g.Index(3, 2)
	if g.Cells()[idx] != 7 {
		t.Fatalf("expected state 7 at index %d, got %d", idx, g.Cells()[idx])
	}
	if p := g.Point(idx); p != (Point{X: 3, Y: 2}) {
		t.Fatalf("Point(%d) = %+v", idx, p)
	}
	if g.InBounds(5, 0) || g.InBounds(0, 4) || g.InBounds(-1, 0) {
		t.Fatal("InBounds accepted an off-grid coordinate")
	}
	g.Clear()
	if g.At(3, 2) != 0 {
		t.Fatal("Clear left a non-zero cell")
	}
}

func TestPointLessIsRowMajor(t *testing.T) {
	if !(Point{X: 9, Y: 0}).Less(Point{X: 0, Y: 1}) {
		t.Fatal("row 0 must sort before row 1")
	}
	if !(Point{X: 1, Y: 2}).Less(Point{X: 2, Y: 2}) {
		t.Fatal("columns must sort ascending within a row")
	}
}
