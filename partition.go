package dfa

import "fmt"

// Partition A refinable partition of a fixed universe. All elements live in one backing
// slice; every set owns a contiguous span of it. Marking an element swaps it into the
// marked prefix of its set, and Split cuts every touched set at the end of that prefix.
// The smaller of the two halves becomes the new set, which keeps the total work of a
// refinement run at O(m log n).
//
// Set identifiers are dense: 0 .. Len()-1. Initially there is a single set 0.
type Partition[T comparable] struct {
	elements []T

	// Position of each element in elements.
	locations map[T]int

	// Set id of each element. Only updated by Split.
	owners map[T]int

	// [start, end) span of each set in elements.
	spans []span

	// Size of the marked prefix of each set.
	marked []int

	// Sets with a non-empty marked prefix, waiting for Split.
	touched []int
}

type span struct {
	start, end int
}

// NewPartition Creates a partition with a single set holding every element. The slice is
// copied; its order has no meaning beyond picking the first canonical element.
func NewPartition[T comparable](elements []T) *Partition[T] {
	p := &Partition[T]{
		elements:  make([]T, len(elements)),
		locations: make(map[T]int, len(elements)),
		owners:    make(map[T]int, len(elements)),
		spans:     []span{{0, len(elements)}},
		marked:    []int{0},
	}
	copy(p.elements, elements)
	for i, e := range p.elements {
		if _, ok := p.locations[e]; ok {
			panic(fmt.Sprintf("partition: duplicate element %v", e))
		}
		p.locations[e] = i
		p.owners[e] = 0
	}
	return p
}

// Len Current number of sets.
func (p *Partition[T]) Len() int {
	return len(p.spans)
}

// Owned Returns the elements of a set. The slice aliases internal storage and is only
// valid until the next Mark.
func (p *Partition[T]) Owned(set int) []T {
	s := p.spans[set]
	return p.elements[s.start:s.end:s.end]
}

// Owner Returns the set that holds item as of the last Split.
func (p *Partition[T]) Owner(item T) int {
	owner, ok := p.owners[item]
	if !ok {
		panic(fmt.Sprintf("partition: %v is not an element", item))
	}
	return owner
}

// Canonical Returns the first element of a set. It only changes when elements of the set
// are marked.
func (p *Partition[T]) Canonical(set int) T {
	return p.elements[p.spans[set].start]
}

// Mark Distinguishes item within its set for the next Split. Marking the same item twice
// before a Split is a programming error and panics.
func (p *Partition[T]) Mark(item T) {
	owner := p.Owner(item)
	i := p.locations[item]
	j := p.spans[owner].start + p.marked[owner]
	if i < j {
		panic(fmt.Sprintf("partition: %v was already marked", item))
	}

	if i > j {
		// Swap into the marked prefix of the set.
		target := p.elements[j]
		p.elements[i], p.elements[j] = target, item
		p.locations[item] = j
		p.locations[target] = i
	}
	if p.marked[owner] == 0 {
		p.touched = append(p.touched, owner)
	}
	p.marked[owner]++
}

// Split Cuts every touched set into its marked and unmarked parts. Sets that were marked
// completely stay as they are.
func (p *Partition[T]) Split() {
	for len(p.touched) > 0 {
		s := p.touched[len(p.touched)-1]
		p.touched = p.touched[:len(p.touched)-1]

		start, end := p.spans[s].start, p.spans[s].end
		mid := start + p.marked[s]
		p.marked[s] = 0
		if mid == end {
			continue
		}

		created := len(p.spans)
		p.marked = append(p.marked, 0)
		if mid-start >= end-mid {
			// unmarked part is smaller (or equal)
			p.spans = append(p.spans, span{mid, end})
			p.spans[s] = span{start, mid}
		} else {
			p.spans = append(p.spans, span{start, mid})
			p.spans[s] = span{mid, end}
		}
		for _, e := range p.Owned(created) {
			p.owners[e] = created
		}
	}
}
