package engine

import (
	"fmt"
	"io"
	"log"

	"cellm/internal/bio"
	"cellm/internal/core"
)

// Config controls the grid size, randomness and logging of a Processor.
// Zero dimensions fall back to the render rules.
type Config struct {
	Width  int
	Height int
	Seed   int64
	Logger *log.Logger
}

// Processor owns the grid and applies a rule set to it one generation at a
// time.
type Processor struct {
	rules  *bio.RuleSet
	render bio.RenderRules
	grid   *core.StateGrid
	cells  *CellMap
	rng    *core.RNG
	log    *log.Logger

	generation int
	fired      int
}

// pending is a rule selected for a cell during evaluation.
type pending struct {
	pos  core.Point
	rule *bio.Rule
}

// New returns a Processor with an empty grid.
func New(rs *bio.RuleSet, rr bio.RenderRules, cfg Config) *Processor {
	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = rr.GridWidth
	}
	if h <= 0 {
		h = rr.GridHeight
	}
	grid := core.NewStateGrid(w, h)
	rr.GridWidth, rr.GridHeight = grid.W, grid.H
	if rr.CellSize <= 0 {
		rr.CellSize = bio.DefaultCellSize
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Processor{
		rules:  rs,
		render: rr,
		grid:   grid,
		cells:  NewCellMap(),
		rng:    core.NewRNG(cfg.Seed),
		log:    logger,
	}
}

// Size reports the grid dimensions.
func (p *Processor) Size() core.Size { return core.Size{W: p.grid.W, H: p.grid.H} }

// RenderRules returns the render settings with the effective grid size.
func (p *Processor) RenderRules() bio.RenderRules { return p.render }

// RuleSet returns the rules being applied.
func (p *Processor) RuleSet() *bio.RuleSet { return p.rules }

// Generation returns the number of completed steps.
func (p *Processor) Generation() int { return p.generation }

// Fired returns how many rules executed during the last step.
func (p *Processor) Fired() int { return p.fired }

// Population returns the number of non-dead cells.
func (p *Processor) Population() int { return p.cells.Len() }

// Cells exposes the dense grid in row-major order. Callers must not modify it.
func (p *Processor) Cells() []int { return p.grid.Cells() }

// State returns the state at (x, y); ok is false off the grid.
func (p *Processor) State(x, y int) (int, bool) {
	if !p.grid.InBounds(x, y) {
		return 0, false
	}
	return p.grid.At(x, y), true
}

// Each calls fn for every occupied cell in row-major order.
func (p *Processor) Each(fn func(pos core.Point, state int)) {
	for _, pos := range p.cells.Points() {
		state, _ := p.cells.Get(pos)
		fn(pos, state)
	}
}

// Counts returns the number of cells holding each non-dead state.
func (p *Processor) Counts() map[int]int {
	counts := map[int]int{}
	for _, state := range p.cells.cells {
		counts[state]++
	}
	return counts
}

// SetCell writes a state at (x, y).
func (p *Processor) SetCell(state, x, y int) error {
	if !p.grid.InBounds(x, y) {
		return &OutOfBoundsError{X: x, Y: y, W: p.grid.W, H: p.grid.H}
	}
	if err := p.checkState(state); err != nil {
		return err
	}
	p.set(core.Point{X: x, Y: y}, state)
	return nil
}

// Fill sets every cell to state.
func (p *Processor) Fill(state int) error {
	if err := p.checkState(state); err != nil {
		return err
	}
	for y := 0; y < p.grid.H; y++ {
		for x := 0; x < p.grid.W; x++ {
			p.set(core.Point{X: x, Y: y}, state)
		}
	}
	return nil
}

// Clear kills every cell and restarts the generation counter.
func (p *Processor) Clear() {
	p.grid.Clear()
	p.cells.Clear()
	p.generation = 0
	p.fired = 0
}

// SeedRandom sets a random quarter of the grid's cells. States are drawn
// uniformly from candidates, or from every live state when candidates is empty.
func (p *Processor) SeedRandom(candidates []int) error {
	states := candidates
	if len(states) == 0 {
		for s := 1; s < p.rules.States(); s++ {
			states = append(states, s)
		}
	}
	for _, s := range states {
		if err := p.checkState(s); err != nil {
			return err
		}
	}
	if len(states) == 0 {
		return nil
	}
	total := p.grid.W * p.grid.H
	for _, idx := range p.rng.Perm(total)[:total/4] {
		p.set(p.grid.Point(idx), p.rng.Pick(states))
	}
	return nil
}

// ApplySeeds writes the seed points declared by the render section.
func (p *Processor) ApplySeeds() error {
	for _, sp := range p.render.Seeds {
		if err := p.SetCell(sp.State, sp.X, sp.Y); err != nil {
			return fmt.Errorf("cannot apply seed point: %w", err)
		}
	}
	return nil
}

// Step advances one generation. Every rule is evaluated against the grid as
// it stood before the step; the selected rules are then committed in
// row-major order. Nothing is written when an occupied cell holds a state
// the rule set does not declare.
func (p *Processor) Step() error {
	selected, err := p.evaluate()
	if err != nil {
		return err
	}
	fired := 0
	for _, sel := range selected {
		if p.commit(sel) {
			fired++
		}
	}
	p.log.Printf("generation %d: executing %d rules (%d selected)", p.generation, fired, len(selected))
	p.generation++
	p.fired = fired
	return nil
}

func (p *Processor) evaluate() ([]pending, error) {
	var selected []pending
	for _, pos := range p.cells.Points() {
		state := p.grid.At(pos.X, pos.Y)
		rules, ok := p.rules.StateRules(state)
		if !ok {
			return nil, &UnknownStateError{State: state, X: pos.X, Y: pos.Y}
		}
		// The last applicable rule in bucket order wins.
		var chosen *bio.Rule
		for i := range rules {
			if p.applies(pos, &rules[i]) {
				chosen = &rules[i]
			}
		}
		if chosen != nil {
			selected = append(selected, pending{pos: pos, rule: chosen})
		}
	}
	return selected, nil
}

func (p *Processor) applies(pos core.Point, r *bio.Rule) bool {
	if r.AnyNeighbor {
		return r.Threshold(countMatching(p.grid, pos, r.NeighborState))
	}
	for _, n := range r.Neighbors {
		nb := neighborOf(p.grid, pos, n)
		if nb.ok && nb.state == r.NeighborState {
			return true
		}
	}
	return false
}

// commit executes a selected rule unless an earlier commit of this step
// already changed the cell.
func (p *Processor) commit(sel pending) bool {
	if p.grid.At(sel.pos.X, sel.pos.Y) != sel.rule.Owner {
		return false
	}
	p.set(sel.pos, sel.rule.Offspring)
	p.set(p.destination(sel.pos, sel.rule.Move), sel.rule.Next)
	return true
}

func (p *Processor) destination(pos core.Point, m bio.Move) core.Point {
	if m.Random {
		return p.randomDestination(pos)
	}
	dx, dy := m.Offset()
	x, y := p.grid.Clamp(pos.X+dx, pos.Y+dy)
	return core.Point{X: x, Y: y}
}

// randomDestination tries the neighbors in random order and returns the first
// empty one. A cell with no empty neighbor stays where it is.
func (p *Processor) randomDestination(pos core.Point) core.Point {
	for _, n := range p.rng.Perm(len(neighborOffsets)) {
		nb := neighborOf(p.grid, pos, n)
		if nb.ok && nb.state == 0 {
			return nb.pos
		}
	}
	return pos
}

func (p *Processor) set(pos core.Point, state int) {
	p.grid.Set(pos.X, pos.Y, state)
	p.cells.Set(pos, state)
}

func (p *Processor) checkState(state int) error {
	if state < 0 || state >= p.rules.States() {
		return &UnknownStateError{State: state, X: -1, Y: -1}
	}
	return nil
}
