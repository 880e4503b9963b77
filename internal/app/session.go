package app

import (
	"fmt"
	"io"
	"strings"

	"cellm/internal/engine"
)

// Setup describes how a fresh grid is populated.
type Setup struct {
	Fill int
	Gen  []int
}

// Populate clears the grid, then applies the fill state, the random seeding
// and the render section's seed points in that order.
func Populate(p *engine.Processor, s Setup) error {
	p.Clear()
	if s.Fill != 0 {
		if err := p.Fill(s.Fill); err != nil {
			return fmt.Errorf("cannot fill the grid: %w", err)
		}
	}
	if len(s.Gen) > 0 {
		if err := p.SeedRandom(s.Gen); err != nil {
			return fmt.Errorf("cannot seed the grid: %w", err)
		}
	}
	return p.ApplySeeds()
}

// RunHeadless advances p by steps generations, writing one summary line for
// the starting grid and one per generation.
func RunHeadless(p *engine.Processor, steps int, w io.Writer) error {
	writeSummary(w, p)
	for i := 0; i < steps; i++ {
		if err := p.Step(); err != nil {
			return fmt.Errorf("generation %d: %w", p.Generation(), err)
		}
		writeSummary(w, p)
	}
	return nil
}

func writeSummary(w io.Writer, p *engine.Processor) {
	counts := p.Counts()
	var b strings.Builder
	for s := 1; s < p.RuleSet().States(); s++ {
		fmt.Fprintf(&b, " %d=%d", s, counts[s])
	}
	fmt.Fprintf(w, "generation %d: %d cells, %d rules fired,%s\n", p.Generation(), p.Population(), p.Fired(), b.String())
}
