package dfa

import (
	"fmt"
	"math/rand"
	"strings"
)

func tr(source, label, dest int) Transition[int, int] {
	return Transition[int, int]{source, label, dest}
}

// State 5 is a dead sink; 0/1 and 2/3/4 are equivalent.
func sampleWithSink() *DFA[int, int] {
	return New(0, []int{2, 3, 4}, []Transition[int, int]{
		tr(0, 0, 1), tr(0, 1, 2),
		tr(1, 0, 0), tr(1, 1, 3),
		tr(2, 0, 4), tr(2, 1, 5),
		tr(3, 0, 4), tr(3, 1, 5),
		tr(4, 0, 4), tr(4, 1, 5),
		tr(5, 0, 5), tr(5, 1, 5),
	})
}

// Two branches (via 1 and via 3) that behave the same.
func sampleTwoBranches() *DFA[int, int] {
	return New(0, []int{2, 4}, []Transition[int, int]{
		tr(0, 0, 1), tr(1, 0, 2), tr(1, 1, 2), tr(2, 0, 2), tr(2, 1, 2),
		tr(0, 1, 3), tr(3, 0, 4), tr(3, 1, 4), tr(4, 0, 4), tr(4, 1, 4),
	})
}

// Accepts 0*10*; already minimal.
func sampleMinimal() *DFA[int, int] {
	return New(0, []int{0, 1}, []Transition[int, int]{
		tr(0, 0, 0), tr(0, 1, 1), tr(1, 0, 1),
	})
}

// randomDFA Builds a deterministic automaton where each (state, label) pair has a transition
// with probability 3/4.
func randomDFA(r *rand.Rand, numStates, numLabels int) *DFA[int, int] {
	transitions := make([]Transition[int, int], 0)
	for s := 0; s < numStates; s++ {
		for l := 0; l < numLabels; l++ {
			if r.Intn(4) != 0 {
				transitions = append(transitions, tr(s, l, r.Intn(numStates)))
			}
		}
	}
	r.Shuffle(len(transitions), func(i, j int) {
		transitions[i], transitions[j] = transitions[j], transitions[i]
	})

	accepting := make([]int, 0)
	for s := 0; s < numStates; s++ {
		if r.Intn(3) == 0 {
			accepting = append(accepting, s)
		}
	}
	return New(0, accepting, transitions)
}

// allStrings Every string over labels 0..numLabels-1 of length at most maxLen.
func allStrings(numLabels, maxLen int) [][]int {
	out := [][]int{{}}
	frontier := [][]int{{}}
	for n := 0; n < maxLen; n++ {
		next := make([][]int, 0, len(frontier)*numLabels)
		for _, s := range frontier {
			for l := 0; l < numLabels; l++ {
				w := make([]int, len(s)+1)
				copy(w, s)
				w[len(s)] = l
				next = append(next, w)
			}
		}
		out = append(out, next...)
		frontier = next
	}
	return out
}

// mooreClassCount Counts the equivalence classes of a partial DFA by naive iterated
// signature refinement.
func mooreClassCount(a *DFA[int, int], numLabels int) int {
	states := a.States()
	outflow := a.Table().ByFirst()

	class := make(map[int]int, len(states))
	seen := map[bool]bool{}
	for _, s := range states {
		if a.IsAccept(s) {
			class[s] = 1
		}
		seen[a.IsAccept(s)] = true
	}
	count := len(seen)

	for {
		signatures := make(map[string]int)
		next := make(map[int]int, len(states))
		for _, s := range states {
			var sb strings.Builder
			fmt.Fprint(&sb, class[s])
			for l := 0; l < numLabels; l++ {
				if d, ok := step(outflow, s, l); ok {
					fmt.Fprintf(&sb, ",%d", class[d])
				} else {
					sb.WriteString(",-")
				}
			}
			key := sb.String()
			id, ok := signatures[key]
			if !ok {
				id = len(signatures)
				signatures[key] = id
			}
			next[s] = id
		}
		if len(signatures) == count {
			return count
		}
		class = next
		count = len(signatures)
	}
}

// isomorphic Reports whether two deterministic automata, every state of which is reachable,
// are equal up to renaming of states.
func isomorphic[S, L comparable](a, b *DFA[S, L]) bool {
	if a.NumStates() != b.NumStates() || a.NumTransitions() != b.NumTransitions() {
		return false
	}
	outA := a.Table().ByFirst()
	outB := b.Table().ByFirst()

	forward := map[S]S{a.Initial(): b.Initial()}
	backward := map[S]S{b.Initial(): a.Initial()}
	workList := []S{a.Initial()}
	for len(workList) > 0 {
		x := workList[0]
		workList = workList[1:]
		y := forward[x]
		if a.IsAccept(x) != b.IsAccept(y) || len(outA[x]) != len(outB[y]) {
			return false
		}
		for _, p := range outA[x] {
			dy, ok := step(outB, y, p.Left)
			if !ok {
				return false
			}
			if mapped, ok := forward[p.Right]; ok {
				if mapped != dy {
					return false
				}
				continue
			}
			if _, ok := backward[dy]; ok {
				return false
			}
			forward[p.Right] = dy
			backward[dy] = p.Right
			workList = append(workList, p.Right)
		}
	}
	return len(forward) == a.NumStates()
}
