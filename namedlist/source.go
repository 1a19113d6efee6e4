package namedlist

import (
	"fmt"
	"iter"
	"slices"
)

// Factory produces the items of a deferred source. It is called at most once
// per successful realization.
type Factory[T any] func() ([]T, error)

type sourceState uint8

const (
	unrealized sourceState = iota
	realized
)

// Source is a deferred sequence of items: it holds either a factory or the
// items the factory produced.
//
// A Source moves from unrealized to realized exactly once, on the first
// successful call to [Source.Realize], and never back. The factory is
// dropped as soon as it has produced its items.
//
// A Source is not safe for concurrent use.
type Source[T any] struct {
	state   sourceState
	factory Factory[T]
	items   []T
}

// NewSource creates an unrealized source backed by factory. A nil factory
// yields a source that is already realized and empty.
func NewSource[T any](factory Factory[T]) *Source[T] {
	if factory == nil {
		return SourceOf[T](nil)
	}
	return &Source[T]{state: unrealized, factory: factory}
}

// SourceSeq creates an unrealized source that drains seq on realization.
// A nil seq yields an empty, realized source.
func SourceSeq[T any](seq iter.Seq[T]) *Source[T] {
	if seq == nil {
		return SourceOf[T](nil)
	}
	return NewSource(func() ([]T, error) {
		return slices.Collect(seq), nil
	})
}

// SourceOf creates a realized source holding items. The slice is used as is.
func SourceOf[T any](items []T) *Source[T] {
	if items == nil {
		items = []T{}
	}
	return &Source[T]{state: realized, items: items}
}

// Realized reports whether the source has produced its items.
func (s *Source[T]) Realized() bool { return s.state == realized }

// Realize returns the source's items, calling the factory if it has not run
// successfully yet. The returned slice belongs to the source.
//
// A factory error is returned wrapped in [ErrSourceFailure] and leaves the
// source unrealized. Realize never retries on its own; the factory runs
// again only when a caller calls Realize again.
func (s *Source[T]) Realize() ([]T, error) {
	if s.state == realized {
		return s.items, nil
	}
	items, err := s.factory()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceFailure, err)
	}
	if items == nil {
		items = []T{}
	}
	s.items = items
	s.factory = nil
	s.state = realized
	return s.items, nil
}
