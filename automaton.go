// Package dfa prunes and minimizes deterministic finite automata over arbitrary
// comparable state and label types.
package dfa

import (
	"errors"
	"fmt"
)

// ErrNonDeterministic is wrapped by Validate when a state has two transitions with the same label.
var ErrNonDeterministic = errors.New("automaton is not deterministic")

// Transition A labelled edge between two states.
type Transition[S, L comparable] struct {
	Source S
	Label  L
	Dest   S
}

// DFA Represents a deterministic automaton: one initial state, a set of accept states and a
// relation of transitions. A DFA never changes once built; Prune and Minimize return new
// values. The initial state does not need to appear in any transition.
type DFA[S, L comparable] struct {
	initial S

	// Accept states in the order they were first given.
	accepting []S
	isAccept  map[S]struct{}

	// Holds source, label, dest for each transition.
	transitions *Table[S, L, S]
}

// New Build an automaton. Accept states are deduplicated, transitions are kept verbatim.
// Nothing checks that the transitions are deterministic; see Validate.
func New[S, L comparable](initial S, accepting []S, transitions []Transition[S, L]) *DFA[S, L] {
	a := &DFA[S, L]{
		initial:   initial,
		accepting: make([]S, 0, len(accepting)),
		isAccept:  make(map[S]struct{}, len(accepting)),
	}
	for _, s := range accepting {
		if _, ok := a.isAccept[s]; ok {
			continue
		}
		a.isAccept[s] = struct{}{}
		a.accepting = append(a.accepting, s)
	}

	tuples := make([]Triple[S, L, S], len(transitions))
	for i, t := range transitions {
		tuples[i] = Triple[S, L, S]{t.Source, t.Label, t.Dest}
	}
	a.transitions = NewTable(tuples)
	return a
}

// Initial Returns the initial state.
func (a *DFA[S, L]) Initial() S {
	return a.initial
}

// Accepting Returns the accept states.
func (a *DFA[S, L]) Accepting() []S {
	out := make([]S, len(a.accepting))
	copy(out, a.accepting)
	return out
}

// IsAccept Returns true if this state is an accept state.
func (a *DFA[S, L]) IsAccept(state S) bool {
	_, ok := a.isAccept[state]
	return ok
}

// Transitions Returns a copy of all transitions, in the order they were added.
func (a *DFA[S, L]) Transitions() []Transition[S, L] {
	out := make([]Transition[S, L], 0, a.transitions.Len())
	for t := range a.transitions.Values() {
		out = append(out, Transition[S, L]{t.First, t.Second, t.Third})
	}
	return out
}

// Table Returns the transition relation as (source, label, dest) triples.
func (a *DFA[S, L]) Table() *Table[S, L, S] {
	return a.transitions
}

// NumTransitions How many transitions this automaton has.
func (a *DFA[S, L]) NumTransitions() int {
	return a.transitions.Len()
}

// States Returns every state mentioned by the automaton: the initial state, then accept
// states, then transition endpoints, each once and in order of first appearance.
func (a *DFA[S, L]) States() []S {
	seen := make(map[S]struct{})
	states := make([]S, 0)
	add := func(s S) {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			states = append(states, s)
		}
	}

	add(a.initial)
	for _, s := range a.accepting {
		add(s)
	}
	for t := range a.transitions.Values() {
		add(t.First)
		add(t.Third)
	}
	return states
}

// NumStates How many states this automaton has.
func (a *DFA[S, L]) NumStates() int {
	return len(a.States())
}

// IsDeterministic Returns true if no state has two transitions leaving with the same label.
func (a *DFA[S, L]) IsDeterministic() bool {
	return a.Validate() == nil
}

// Validate Reports the first state that has more than one transition for a label.
func (a *DFA[S, L]) Validate() error {
	seen := make(map[Pair[S, L]]struct{}, a.transitions.Len())
	for t := range a.transitions.Values() {
		k := Pair[S, L]{t.First, t.Second}
		if _, ok := seen[k]; ok {
			return fmt.Errorf("%w: state %v has more than one transition labelled %v",
				ErrNonDeterministic, t.First, t.Second)
		}
		seen[k] = struct{}{}
	}
	return nil
}

// Step Performs lookup in transitions, assuming determinism. Returns false if there is no
// matching outgoing transition. Every call scans the relation; use Run for whole inputs.
func (a *DFA[S, L]) Step(state S, label L) (S, bool) {
	for t := range a.transitions.Values() {
		if t.First == state && t.Second == label {
			return t.Third, true
		}
	}
	var none S
	return none, false
}

// labels Returns the distinct labels in order of first appearance.
func (a *DFA[S, L]) labels() []L {
	seen := make(map[L]struct{})
	labels := make([]L, 0)
	for t := range a.transitions.Values() {
		if _, ok := seen[t.Second]; !ok {
			seen[t.Second] = struct{}{}
			labels = append(labels, t.Second)
		}
	}
	return labels
}

func (a *DFA[S, L]) String() string {
	return fmt.Sprintf("DFA{initial: %v, accepting: %v, transitions: %d}",
		a.initial, a.accepting, a.transitions.Len())
}
