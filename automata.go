package dfa

// MakeEmpty Returns a new automaton with the empty language.
func MakeEmpty[L comparable]() *DFA[int, L] {
	return New[int, L](0, nil, nil)
}

// MakeEmptyString Returns a new automaton that accepts only the empty string.
func MakeEmptyString[L comparable]() *DFA[int, L] {
	return New[int, L](0, []int{0}, nil)
}

// MakeString Returns a new automaton that accepts exactly the given sequence of labels.
// State i is reached after reading i labels.
func MakeString[L comparable](labels ...L) *DFA[int, L] {
	transitions := make([]Transition[int, L], len(labels))
	for i, l := range labels {
		transitions[i] = Transition[int, L]{i, l, i + 1}
	}
	return New(0, []int{len(labels)}, transitions)
}

// MakeAnyString Returns a new automaton that accepts all strings over the alphabet.
func MakeAnyString[L comparable](alphabet ...L) *DFA[int, L] {
	transitions := make([]Transition[int, L], len(alphabet))
	for i, l := range alphabet {
		transitions[i] = Transition[int, L]{0, l, 0}
	}
	return New(0, []int{0}, transitions)
}
