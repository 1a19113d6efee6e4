package query

import "iter"

// This file contains package-level generic functions for operations that
// transform a Query[T] into a Query[U] or a non-query result.
//
// Go generics do not allow methods to introduce their own type parameters, so
// these operations must be stand-alone functions. They compose with method
// chains:
//
//	titles := query.Select(
//	    query.FromSlice(pages).Where(func(p *Page) bool { return p.Visible }),
//	    func(p *Page) string { return p.Title },
//	)

// Select lazily applies fn to every item.
//
//	names := query.Select(q, func(p *Page) string { return p.Name() })
func Select[T, U any](q *Query[T], fn func(T) U) *Query[U] {
	seq := q.seq
	return &Query[U]{seq: func(yield func(U) bool) {
		for item := range seq {
			if !yield(fn(item)) {
				return
			}
		}
	}}
}

// SelectMany lazily maps each item to a slice and flattens the results.
func SelectMany[T, U any](q *Query[T], fn func(T) []U) *Query[U] {
	seq := q.seq
	return &Query[U]{seq: func(yield func(U) bool) {
		for item := range seq {
			for _, v := range fn(item) {
				if !yield(v) {
					return
				}
			}
		}
	}}
}

// Reduce folds the query into a single value of type U.
//
//	total := query.Reduce(q, func(acc int, p *Page) int { return acc + p.Words }, 0)
func Reduce[T, U any](q *Query[T], fn func(U, T) U, initial U) U {
	result := initial
	for item := range q.seq {
		result = fn(result, item)
	}
	return result
}

// GroupBy groups items by the comparable key K extracted by fn. Items keep
// their enumeration order within each group.
func GroupBy[T any, K comparable](q *Query[T], fn func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for item := range q.seq {
		k := fn(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// KeyBy builds a map[K]T keyed by the value extracted by fn.
// When multiple items share the same key, the last one wins.
func KeyBy[T any, K comparable](q *Query[T], fn func(T) K) map[K]T {
	out := make(map[K]T)
	for item := range q.seq {
		out[fn(item)] = item
	}
	return out
}

// DistinctBy lazily drops items whose key, as extracted by fn, was already
// yielded. The first occurrence wins.
func DistinctBy[T any, K comparable](q *Query[T], fn func(T) K) *Query[T] {
	seq := q.seq
	return &Query[T]{seq: func(yield func(T) bool) {
		seen := make(map[K]struct{})
		for item := range seq {
			k := fn(item)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			if !yield(item) {
				return
			}
		}
	}}
}

// Zip lazily combines two queries element by element into Pairs.
// Stops at the shorter of the two.
func Zip[A, B any](a *Query[A], b *Query[B]) *Query[Pair[A, B]] {
	as, bs := a.seq, b.seq
	return &Query[Pair[A, B]]{seq: func(yield func(Pair[A, B]) bool) {
		next, stop := iter.Pull(bs)
		defer stop()
		for x := range as {
			y, ok := next()
			if !ok {
				return
			}
			if !yield(Pair[A, B]{First: x, Second: y}) {
				return
			}
		}
	}}
}
