package namedlist

import "errors"

// Sentinel errors returned by List operations.
//
// Errors are returned wrapped with context; use [errors.Is] for comparisons:
//
//	if err := l.AddNamed("intro", p); errors.Is(err, namedlist.ErrDuplicateKey) {
//	    // another item already answers to "intro"
//	}
//
// A missing name or an empty window is never an error: lookups return the
// zero value together with false, and range queries yield nothing.
var (
	// ErrNameMismatch is returned by [List.AddNamed] and [List.Set] when the
	// supplied key differs from the item's own name.
	ErrNameMismatch = errors.New("namedlist: key does not match item name")

	// ErrIndexOutOfRange is returned by positional operations given a
	// position outside the list.
	ErrIndexOutOfRange = errors.New("namedlist: index out of range")

	// ErrDuplicateKey is returned by [List.AddNamed] when the name index
	// already maps the key to a different item. Positional writes and
	// [List.Set] overwrite silently instead.
	ErrDuplicateKey = errors.New("namedlist: duplicate key")

	// ErrSourceFailure wraps any error returned by a deferred source while
	// the list is being realized. The original error stays reachable through
	// [errors.Is] and [errors.As].
	ErrSourceFailure = errors.New("namedlist: source failed")
)
