package namedlist

import (
	"iter"

	"github.com/hasbyte1/go-namedlist/hashing"
)

// Shape returns an iterator over the folded name of every item in list
// order. Unnamed items yield the empty string.
//
// The iterator reads the list as it is when iteration starts.
func (l *List[T]) Shape() (iter.Seq[string], error) {
	if err := l.realize(); err != nil {
		return nil, err
	}
	return func(yield func(string) bool) {
		for _, item := range l.items {
			name := l.nameOf(item)
			if name != "" {
				name = l.opts.Fold(name)
			}
			if !yield(name) {
				return
			}
		}
	}, nil
}

// Fingerprint returns a digest of the list's [List.Shape].
//
// Two lists share a fingerprint exactly when they hold the same names in the
// same order under case-insensitive comparison, which makes the fingerprint
// a suitable cache key for anything derived from the list's structure. A nil
// h selects [hashing.DefaultHasher].
func (l *List[T]) Fingerprint(h hashing.Hasher) ([]byte, error) {
	shape, err := l.Shape()
	if err != nil {
		return nil, err
	}
	if h == nil {
		h = hashing.DefaultHasher()
	}
	return hashing.Fingerprint(h, shape), nil
}
