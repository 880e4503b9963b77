package core

import (
	"slices"
	"testing"
)

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	if !slices.Equal(a.Perm(16), b.Perm(16)) {
		t.Fatal("same seed produced different permutations")
	}
	for i := 0; i < 32; i++ {
		if a.IntN(100) != b.IntN(100) {
			t.Fatal("same seed produced different draws")
		}
	}
	if a.IntN(0) != 0 {
		t.Fatal("IntN(0) must return 0")
	}
	vals := []int{3, 5, 9}
	for i := 0; i < 32; i++ {
		if !slices.Contains(vals, a.Pick(vals)) {
			t.Fatal("Pick returned a value outside the candidates")
		}
	}
}
