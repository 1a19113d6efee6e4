package query

import "errors"

// Sentinel errors returned by Query operations.
var (
	// ErrNoMatchingItems is returned by [Query.FirstOrFail] and
	// [Query.LastOrFail] when no item satisfies the predicate.
	ErrNoMatchingItems = errors.New("query: no items match the given condition")

	// ErrInvalidChunkSize is returned when [Query.Chunk] is called with
	// size <= 0.
	ErrInvalidChunkSize = errors.New("query: chunk size must be greater than 0")
)
