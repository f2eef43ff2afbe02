package dfa

// Minimize Returns the minimal automaton accepting the same language, using coupled
// partition refinement over states (blocks) and transitions (cords). The input must be
// deterministic and should be pruned first; dead states are not removed here.
//
// States of the result are canonical representatives of the input's equivalence
// classes, so the state type is preserved. The input is not modified.
func Minimize[S, L comparable](a *DFA[S, L], opts ...Option) *DFA[S, L] {
	o := newOptions(opts...)

	if a.transitions.Len() == 0 {
		// Fastmatch for common case
		var accepting []S
		if a.IsAccept(a.initial) {
			accepting = []S{a.initial}
		}
		return New[S, L](a.initial, accepting, nil)
	}

	edges := a.transitions
	blocks := NewPartition(a.States())
	for _, s := range a.accepting {
		blocks.Mark(s)
	}
	blocks.Split()

	cords := NewPartition(sequence(edges.Len()))
	byLabel := make(map[L][]int)
	arrivals := make(map[S][]int)
	for i, t := range edges.All() {
		byLabel[t.Second] = append(byLabel[t.Second], i)
		arrivals[t.Third] = append(arrivals[t.Third], i)
	}
	for _, label := range a.labels() {
		for _, i := range byLabel[label] {
			cords.Mark(i)
		}
		cords.Split()
	}

	o.logger.Debug("minimize: seeded partitions",
		"states", len(blocks.elements),
		"transitions", edges.Len(),
		"blocks", blocks.Len(),
		"cords", cords.Len())

	for c, b := 0, 1; c < cords.Len(); {
		// States with a transition in cord c are split from those without.
		for _, i := range cords.Owned(c) {
			blocks.Mark(edges.At(i).First)
		}
		blocks.Split()
		c++

		// Transitions entering a new block are split from the rest of their cord.
		for ; b < blocks.Len(); b++ {
			for _, s := range blocks.Owned(b) {
				for _, i := range arrivals[s] {
					cords.Mark(i)
				}
			}
			cords.Split()
		}
	}

	result := quotient(a, blocks)
	o.logger.Debug("minimize: done",
		"blocks", blocks.Len(),
		"cords", cords.Len(),
		"transitions", result.NumTransitions())
	return result
}

// quotient Builds the automaton whose states are the canonical elements of each block.
// Only transitions leaving a canonical element are emitted, so none is emitted twice.
func quotient[S, L comparable](a *DFA[S, L], blocks *Partition[S]) *DFA[S, L] {
	canonical := func(s S) S {
		return blocks.Canonical(blocks.Owner(s))
	}

	outflow := a.transitions.ByFirst()
	transitions := make([]Transition[S, L], 0)
	for b := 0; b < blocks.Len(); b++ {
		rep := blocks.Canonical(b)
		for _, p := range outflow[rep] {
			transitions = append(transitions, Transition[S, L]{rep, p.Left, canonical(p.Right)})
		}
	}

	accepting := make([]S, 0)
	for _, s := range a.accepting {
		accepting = append(accepting, canonical(s))
	}
	return New(canonical(a.initial), accepting, transitions)
}

func sequence(n int) []int {
	ints := make([]int, n)
	for i := range ints {
		ints[i] = i
	}
	return ints
}
