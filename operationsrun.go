package dfa

// Run Returns true if the automaton accepts input. A missing transition rejects.
func Run[S, L comparable](a *DFA[S, L], input []L) bool {
	outflow := a.transitions.ByFirst()
	state := a.initial
	for _, label := range input {
		next, ok := step(outflow, state, label)
		if !ok {
			return false
		}
		state = next
	}
	return a.IsAccept(state)
}

func step[S, L comparable](outflow map[S][]Pair[L, S], state S, label L) (S, bool) {
	for _, p := range outflow[state] {
		if p.Left == label {
			return p.Right, true
		}
	}
	var none S
	return none, false
}
