package query

import (
	"iter"
	"slices"
)

// Query is a lazy, read-only view over a sequence of T.
//
// Every method that narrows or reorders the query returns a *new* Query and
// leaves the receiver unchanged, so a base query can be shared and refined
// independently:
//
//	base   := query.FromSlice(items)
//	first  := base.Take(5)
//	others := base.Skip(5)
//
// The zero value is not usable; build queries with [From], [FromSlice] or
// [Empty].
type Query[T any] struct {
	seq iter.Seq[T]
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// From wraps seq. A nil seq yields an empty query.
func From[T any](seq iter.Seq[T]) *Query[T] {
	if seq == nil {
		return Empty[T]()
	}
	return &Query[T]{seq: seq}
}

// FromSlice creates a query over items. The slice is read at enumeration
// time and is not copied.
func FromSlice[T any](items []T) *Query[T] {
	return &Query[T]{seq: slices.Values(items)}
}

// Empty creates a query that yields nothing.
func Empty[T any]() *Query[T] {
	return &Query[T]{seq: func(func(T) bool) {}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Enumeration
// ─────────────────────────────────────────────────────────────────────────────

// All returns the underlying iterator. It may be ranged over any number of
// times.
func (q *Query[T]) All() iter.Seq[T] { return q.seq }

// ToSlice enumerates the query into a freshly allocated slice.
func (q *Query[T]) ToSlice() []T {
	out := []T{}
	for item := range q.seq {
		out = append(out, item)
	}
	return out
}

// Each calls fn(item, index) for every item.
func (q *Query[T]) Each(fn func(T, int)) {
	i := 0
	for item := range q.seq {
		fn(item, i)
		i++
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// Where returns a query with only the items for which fn returns true.
func (q *Query[T]) Where(fn func(T) bool) *Query[T] {
	seq := q.seq
	return &Query[T]{seq: func(yield func(T) bool) {
		for item := range seq {
			if fn(item) && !yield(item) {
				return
			}
		}
	}}
}

// Reject returns a query without the items for which fn returns true.
// It is the complement of [Query.Where].
func (q *Query[T]) Reject(fn func(T) bool) *Query[T] {
	return q.Where(func(item T) bool { return !fn(item) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Windows
// ─────────────────────────────────────────────────────────────────────────────

// Skip returns a query that drops the first n items. n <= 0 skips nothing.
func (q *Query[T]) Skip(n int) *Query[T] {
	if n <= 0 {
		return q
	}
	seq := q.seq
	return &Query[T]{seq: func(yield func(T) bool) {
		left := n
		for item := range seq {
			if left > 0 {
				left--
				continue
			}
			if !yield(item) {
				return
			}
		}
	}}
}

// Take returns a query that yields at most n items. n <= 0 yields nothing.
//
// The source is not read past the n-th item.
func (q *Query[T]) Take(n int) *Query[T] {
	if n <= 0 {
		return Empty[T]()
	}
	seq := q.seq
	return &Query[T]{seq: func(yield func(T) bool) {
		left := n
		for item := range seq {
			if !yield(item) {
				return
			}
			left--
			if left == 0 {
				return
			}
		}
	}}
}

// SkipWhile drops items while fn returns true, then yields the rest.
func (q *Query[T]) SkipWhile(fn func(T) bool) *Query[T] {
	seq := q.seq
	return &Query[T]{seq: func(yield func(T) bool) {
		skipping := true
		for item := range seq {
			if skipping && fn(item) {
				continue
			}
			skipping = false
			if !yield(item) {
				return
			}
		}
	}}
}

// TakeWhile yields items while fn returns true.
func (q *Query[T]) TakeWhile(fn func(T) bool) *Query[T] {
	seq := q.seq
	return &Query[T]{seq: func(yield func(T) bool) {
		for item := range seq {
			if !fn(item) || !yield(item) {
				return
			}
		}
	}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering & composition
// ─────────────────────────────────────────────────────────────────────────────

// OrderBy returns a query sorted by cmp, which follows the [slices.SortFunc]
// convention. The sort is stable.
func (q *Query[T]) OrderBy(cmp func(a, b T) int) *Query[T] {
	seq := q.seq
	return &Query[T]{seq: func(yield func(T) bool) {
		buf := slices.Collect(seq)
		slices.SortStableFunc(buf, cmp)
		for _, item := range buf {
			if !yield(item) {
				return
			}
		}
	}}
}

// Reverse returns a query that yields the items in reverse order.
func (q *Query[T]) Reverse() *Query[T] {
	seq := q.seq
	return &Query[T]{seq: func(yield func(T) bool) {
		buf := slices.Collect(seq)
		for _, item := range slices.Backward(buf) {
			if !yield(item) {
				return
			}
		}
	}}
}

// Concat returns a query that yields q's items followed by other's.
func (q *Query[T]) Concat(other *Query[T]) *Query[T] {
	a, b := q.seq, other.seq
	return &Query[T]{seq: func(yield func(T) bool) {
		for item := range a {
			if !yield(item) {
				return
			}
		}
		for item := range b {
			if !yield(item) {
				return
			}
		}
	}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Terminal operations
// ─────────────────────────────────────────────────────────────────────────────

// Count enumerates the query and returns the number of items.
func (q *Query[T]) Count() int {
	n := 0
	for range q.seq {
		n++
	}
	return n
}

// First returns the first item, optionally matching fns[0].
// Returns the zero value and false when no item qualifies.
func (q *Query[T]) First(fns ...func(T) bool) (T, bool) {
	for item := range q.seq {
		if len(fns) == 0 || fns[0](item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// FirstOrFail returns the first item matching fn, or [ErrNoMatchingItems].
func (q *Query[T]) FirstOrFail(fn func(T) bool) (T, error) {
	item, ok := q.First(fn)
	if !ok {
		return item, ErrNoMatchingItems
	}
	return item, nil
}

// Last returns the last item, optionally matching fns[0].
// Returns the zero value and false when no item qualifies.
func (q *Query[T]) Last(fns ...func(T) bool) (T, bool) {
	var found T
	matched := false
	for item := range q.seq {
		if len(fns) == 0 || fns[0](item) {
			found = item
			matched = true
		}
	}
	return found, matched
}

// LastOrFail returns the last item matching fn, or [ErrNoMatchingItems].
func (q *Query[T]) LastOrFail(fn func(T) bool) (T, error) {
	item, ok := q.Last(fn)
	if !ok {
		return item, ErrNoMatchingItems
	}
	return item, nil
}

// ElementAt returns the item at position index of the enumeration.
// Returns the zero value and false when index is out of range.
func (q *Query[T]) ElementAt(index int) (T, bool) {
	var zero T
	if index < 0 {
		return zero, false
	}
	return q.Skip(index).First()
}

// Any reports whether at least one item satisfies fn.
func (q *Query[T]) Any(fn func(T) bool) bool {
	_, ok := q.First(fn)
	return ok
}

// Contains is an alias for [Query.Any].
func (q *Query[T]) Contains(fn func(T) bool) bool { return q.Any(fn) }

// Every reports whether every item satisfies fn. An empty query returns true.
func (q *Query[T]) Every(fn func(T) bool) bool {
	for item := range q.seq {
		if !fn(item) {
			return false
		}
	}
	return true
}

// Chunk enumerates the query into consecutive groups of size. The last group
// may hold fewer than size items.
func (q *Query[T]) Chunk(size int) ([][]T, error) {
	if size <= 0 {
		return nil, ErrInvalidChunkSize
	}
	chunks := [][]T{}
	var cur []T
	for item := range q.seq {
		cur = append(cur, item)
		if len(cur) == size {
			chunks = append(chunks, cur)
			cur = nil
		}
	}
	if len(cur) > 0 {
		chunks = append(chunks, cur)
	}
	return chunks, nil
}
