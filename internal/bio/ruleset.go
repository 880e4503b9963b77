package bio

import (
	"fmt"
	"io"
)

// StateRangeError reports a rule owned by a state the rule set cannot hold.
type StateRangeError struct {
	State   int
	NStates int
}

func (e *StateRangeError) Error() string {
	if e.State == 0 {
		return "rules for state 0 (dead state) are not permitted"
	}
	return fmt.Sprintf("state %d is outside the declared range 1..%d", e.State, e.NStates-1)
}

// RuleSet groups rules by owner state. Bucket i holds the rules of state i+1
// in the order they were written; the dead state owns no bucket.
type RuleSet struct {
	buckets [][]Rule
	nstates int
}

// Build partitions rules into per-state buckets.
func Build(rules []Rule, nstates int) (*RuleSet, error) {
	if nstates < 1 {
		nstates = 1
	}
	rs := &RuleSet{buckets: make([][]Rule, nstates-1), nstates: nstates}
	for _, r := range rules {
		if r.Owner < 1 || r.Owner >= nstates {
			return nil, &StateRangeError{State: r.Owner, NStates: nstates}
		}
		rs.buckets[r.Owner-1] = append(rs.buckets[r.Owner-1], r)
	}
	return rs, nil
}

// StateRules returns the rules owned by state. The boolean is false when the
// state has no bucket at all, which differs from a bucket with no rules.
func (rs *RuleSet) StateRules(state int) ([]Rule, bool) {
	idx := state - 1
	if idx < 0 || idx >= len(rs.buckets) {
		return nil, false
	}
	return rs.buckets[idx], true
}

// States returns the declared number of states, including the dead state.
func (rs *RuleSet) States() int { return rs.nstates }

// Len returns the total number of rules.
func (rs *RuleSet) Len() int {
	n := 0
	for _, b := range rs.buckets {
		n += len(b)
	}
	return n
}

// Dump writes every bucket, one rule per line.
func (rs *RuleSet) Dump(w io.Writer) {
	fmt.Fprintf(w, "%d state rule set:\n", rs.nstates)
	for i, bucket := range rs.buckets {
		for j, r := range bucket {
			fmt.Fprintf(w, "  (%d,%d) %s\n", i, j, r)
		}
	}
}
