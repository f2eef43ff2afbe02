package dfa

import "iter"

// Triple One row of a ternary relation.
type Triple[A, B, C comparable] struct {
	First  A
	Second B
	Third  C
}

// Pair The two remaining coordinates of a Triple once it has been grouped by the third.
type Pair[X, Y comparable] struct {
	Left  X
	Right Y
}

// Table Stores an ordered sequence of triples. Duplicates are kept. The grouped views are
// recomputed on every call and never cached.
type Table[A, B, C comparable] struct {
	tuples []Triple[A, B, C]
}

// NewTable Build a table from triples. The slice is copied.
func NewTable[A, B, C comparable](tuples []Triple[A, B, C]) *Table[A, B, C] {
	t := &Table[A, B, C]{
		tuples: make([]Triple[A, B, C], len(tuples)),
	}
	copy(t.tuples, tuples)
	return t
}

// Len How many triples the table holds.
func (t *Table[A, B, C]) Len() int {
	return len(t.tuples)
}

// At Returns the i'th triple.
func (t *Table[A, B, C]) At(i int) Triple[A, B, C] {
	return t.tuples[i]
}

// All Iterates position and triple, in insertion order.
func (t *Table[A, B, C]) All() iter.Seq2[int, Triple[A, B, C]] {
	return func(yield func(int, Triple[A, B, C]) bool) {
		for i, tuple := range t.tuples {
			if !yield(i, tuple) {
				return
			}
		}
	}
}

// Values Iterates the triples by value, in insertion order.
func (t *Table[A, B, C]) Values() iter.Seq[Triple[A, B, C]] {
	return func(yield func(Triple[A, B, C]) bool) {
		for _, tuple := range t.tuples {
			if !yield(tuple) {
				return
			}
		}
	}
}

// ByFirst Groups the triples by their first coordinate. Each list keeps the relative order
// of the table.
func (t *Table[A, B, C]) ByFirst() map[A][]Pair[B, C] {
	return groupBy(t.tuples,
		func(r Triple[A, B, C]) A { return r.First },
		func(r Triple[A, B, C]) Pair[B, C] { return Pair[B, C]{r.Second, r.Third} })
}

// BySecond Groups the triples by their second coordinate.
func (t *Table[A, B, C]) BySecond() map[B][]Pair[A, C] {
	return groupBy(t.tuples,
		func(r Triple[A, B, C]) B { return r.Second },
		func(r Triple[A, B, C]) Pair[A, C] { return Pair[A, C]{r.First, r.Third} })
}

// ByThird Groups the triples by their third coordinate.
func (t *Table[A, B, C]) ByThird() map[C][]Pair[A, B] {
	return groupBy(t.tuples,
		func(r Triple[A, B, C]) C { return r.Third },
		func(r Triple[A, B, C]) Pair[A, B] { return Pair[A, B]{r.First, r.Second} })
}

func groupBy[T any, K comparable, V any](input []T, key func(T) K, value func(T) V) map[K][]V {
	output := make(map[K][]V)
	for _, t := range input {
		k := key(t)
		output[k] = append(output[k], value(t))
	}
	return output
}
