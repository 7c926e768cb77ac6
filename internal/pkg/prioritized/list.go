// Package prioritized provides a slice that stays sorted as items are added.
package prioritized

import "iter"

// List keeps its items ordered by a comparison function. Items that compare
// equal keep the order in which they were inserted.
type List[T any] struct {
	cmp   func(a, b T) int
	items []T
}

// New returns an empty List ordered by cmp, which must return a negative
// number when a sorts before b, zero when they are equal and a positive
// number otherwise.
func New[T any](cmp func(a, b T) int) *List[T] {
	return &List[T]{cmp: cmp}
}

// InsertOrAppend places item right after the last element that compares less
// than or equal to it. The scan starts at the tail, so appending already
// sorted input costs a single comparison per item.
func (l *List[T]) InsertOrAppend(item T) {
	for i := len(l.items) - 1; i >= 0; i-- {
		if l.cmp(l.items[i], item) <= 0 {
			l.insertAt(i+1, item)
			return
		}
	}
	// empty, or smaller than everything stored
	l.insertAt(0, item)
}

func (l *List[T]) insertAt(i int, item T) {
	var zero T
	l.items = append(l.items, zero)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = item
}

func (l *List[T]) Len() int { return len(l.items) }

// At returns the item at index i. It panics when i is out of range.
func (l *List[T]) At(i int) T { return l.items[i] }

// All yields index/item pairs in order.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range l.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Slice returns a copy of the ordered items.
func (l *List[T]) Slice() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}
