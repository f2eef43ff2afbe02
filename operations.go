package dfa

import (
	"github.com/bits-and-blooms/bitset"
)

// Prune Removes every state that is unreachable from the initial state or that cannot reach
// an accept state, together with the transitions touching it. The language is unchanged.
//
// Returns false instead of an automaton when the initial state itself is removed, which
// means the automaton accepts no string at all.
func Prune[S, L comparable](a *DFA[S, L], opts ...Option) (*DFA[S, L], bool) {
	o := newOptions(opts...)

	index := newStateIndex(a)
	live := getLiveStates(a, index)
	if !live.Test(index.of(a.initial)) {
		o.logger.Debug("prune: initial state is dead, language is empty",
			"states", len(index.states))
		return nil, false
	}

	accepting := make([]S, 0, len(a.accepting))
	for _, s := range a.accepting {
		if live.Test(index.of(s)) {
			accepting = append(accepting, s)
		}
	}

	// filter out transitions touching dead states:
	transitions := make([]Transition[S, L], 0, a.transitions.Len())
	for t := range a.transitions.Values() {
		if live.Test(index.of(t.First)) && live.Test(index.of(t.Third)) {
			transitions = append(transitions, Transition[S, L]{t.First, t.Second, t.Third})
		}
	}

	o.logger.Debug("prune: removed dead states",
		"states", len(index.states),
		"live", live.Count(),
		"transitions", a.transitions.Len(),
		"kept", len(transitions))
	return New(a.initial, accepting, transitions), true
}

// IsEmpty Returns true if the given automaton accepts no strings.
func IsEmpty[S, L comparable](a *DFA[S, L]) bool {
	if a.IsAccept(a.initial) {
		return false
	}
	if len(a.accepting) == 0 || a.transitions.Len() == 0 {
		return true
	}

	index := newStateIndex(a)
	reachable := getLiveStatesFromInitial(a, index)
	for _, s := range a.accepting {
		if reachable.Test(index.of(s)) {
			return false
		}
	}
	return true
}

// stateIndex Numbers the states of an automaton densely so they can live in a bitset.
type stateIndex[S comparable] struct {
	states []S
	ids    map[S]uint
}

func newStateIndex[S, L comparable](a *DFA[S, L]) *stateIndex[S] {
	states := a.States()
	ids := make(map[S]uint, len(states))
	for i, s := range states {
		ids[s] = uint(i)
	}
	return &stateIndex[S]{states: states, ids: ids}
}

func (x *stateIndex[S]) of(s S) uint {
	return x.ids[s]
}

// getLiveStates Returns the states that are both reachable from the initial state and able
// to reach an accept state.
func getLiveStates[S, L comparable](a *DFA[S, L], index *stateIndex[S]) *bitset.BitSet {
	live := getLiveStatesFromInitial(a, index)
	return live.Intersection(getLiveStatesToAccept(a, index))
}

// getLiveStatesFromInitial Breadth first search over outgoing transitions, starting at the
// initial state. The initial state is always included.
func getLiveStatesFromInitial[S, L comparable](a *DFA[S, L], index *stateIndex[S]) *bitset.BitSet {
	outflow := a.transitions.ByFirst()
	return reach(index, []S{a.initial}, func(s S) []S {
		next := make([]S, 0, len(outflow[s]))
		for _, p := range outflow[s] {
			next = append(next, p.Right)
		}
		return next
	})
}

// getLiveStatesToAccept Breadth first search over incoming transitions, starting at every
// accept state.
func getLiveStatesToAccept[S, L comparable](a *DFA[S, L], index *stateIndex[S]) *bitset.BitSet {
	inflow := a.transitions.ByThird()
	return reach(index, a.accepting, func(s S) []S {
		prev := make([]S, 0, len(inflow[s]))
		for _, p := range inflow[s] {
			prev = append(prev, p.Left)
		}
		return prev
	})
}

func reach[S comparable](index *stateIndex[S], seeds []S, neighbours func(S) []S) *bitset.BitSet {
	seen := bitset.New(uint(len(index.states)))
	workList := make([]S, 0, len(seeds))
	for _, s := range seeds {
		if !seen.Test(index.of(s)) {
			seen.Set(index.of(s))
			workList = append(workList, s)
		}
	}

	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]
		for _, n := range neighbours(s) {
			if !seen.Test(index.of(n)) {
				seen.Set(index.of(n))
				workList = append(workList, n)
			}
		}
	}
	return seen
}

// SameLanguage Returns true if both automata accept exactly the same strings. Both must be
// deterministic; a missing transition is treated as a move to a rejecting sink.
func SameLanguage[S, L comparable](a1, a2 *DFA[S, L]) bool {
	out1 := a1.transitions.ByFirst()
	out2 := a2.transitions.ByFirst()
	move := func(out map[S][]Pair[L, S], s side[S], label L) side[S] {
		if s.dead {
			return s
		}
		if dest, ok := step(out, s.state, label); ok {
			return side[S]{state: dest}
		}
		return side[S]{dead: true}
	}
	accepts := func(a *DFA[S, L], s side[S]) bool {
		return !s.dead && a.IsAccept(s.state)
	}

	labels := a1.labels()
	seenLabel := make(map[L]struct{}, len(labels))
	for _, l := range labels {
		seenLabel[l] = struct{}{}
	}
	for _, l := range a2.labels() {
		if _, ok := seenLabel[l]; !ok {
			labels = append(labels, l)
		}
	}

	start := sidePair[S]{side[S]{state: a1.initial}, side[S]{state: a2.initial}}
	visited := map[sidePair[S]]struct{}{start: {}}
	workList := []sidePair[S]{start}
	for len(workList) > 0 {
		p := workList[0]
		workList = workList[1:]
		if accepts(a1, p.x) != accepts(a2, p.y) {
			return false
		}
		for _, l := range labels {
			next := sidePair[S]{move(out1, p.x, l), move(out2, p.y, l)}
			if next.x.dead && next.y.dead {
				continue
			}
			if _, ok := visited[next]; !ok {
				visited[next] = struct{}{}
				workList = append(workList, next)
			}
		}
	}
	return true
}

// side A state of one automaton in the product, or its implicit rejecting sink.
type side[S comparable] struct {
	state S
	dead  bool
}

type sidePair[S comparable] struct {
	x, y side[S]
}
