package namedlist

import "github.com/tidwall/btree"

// Index is a case-insensitive mapping from name to item.
//
// It is a pure lookup accelerator: it carries no ordering semantics of its
// own and is never the source of truth for the order of a [List]. When the
// same name is written twice the later write wins.
//
// The empty name is never indexed.
type Index[T comparable] struct {
	fold func(string) string
	tree *btree.Map[string, indexEntry[T]]
}

// indexEntry remembers the name as it was last written so that Keys can
// report it verbatim rather than in folded form.
type indexEntry[T comparable] struct {
	name string
	item T
}

// NewIndex creates an empty index comparing names through fold. A nil fold
// selects [UnicodeFold].
func NewIndex[T comparable](fold func(string) string) *Index[T] {
	if fold == nil {
		fold = UnicodeFold()
	}
	return &Index[T]{
		fold: fold,
		tree: new(btree.Map[string, indexEntry[T]]),
	}
}

// Put maps name to item, replacing any existing mapping for a name that
// folds to the same key.
func (ix *Index[T]) Put(name string, item T) {
	if name == "" {
		return
	}
	ix.tree.Set(ix.fold(name), indexEntry[T]{name: name, item: item})
}

// Get returns the item mapped to name.
// Returns the zero value and false when name is not indexed.
func (ix *Index[T]) Get(name string) (T, bool) {
	if name == "" {
		var zero T
		return zero, false
	}
	e, ok := ix.tree.Get(ix.fold(name))
	return e.item, ok
}

// Contains reports whether name is indexed.
func (ix *Index[T]) Contains(name string) bool {
	_, ok := ix.Get(name)
	return ok
}

// Remove deletes the mapping for name. It is a no-op if name is absent.
func (ix *Index[T]) Remove(name string) {
	if name == "" {
		return
	}
	ix.tree.Delete(ix.fold(name))
}

// RemoveItem deletes the mapping for name only when it currently points at
// item, and reports whether it did.
func (ix *Index[T]) RemoveItem(name string, item T) bool {
	got, ok := ix.Get(name)
	if !ok || got != item {
		return false
	}
	ix.tree.Delete(ix.fold(name))
	return true
}

// Len returns the number of indexed names.
func (ix *Index[T]) Len() int { return ix.tree.Len() }

// Keys returns a snapshot of the indexed names, each spelled as it was last
// written, ordered by folded name.
func (ix *Index[T]) Keys() []string {
	keys := make([]string, 0, ix.tree.Len())
	ix.tree.Scan(func(_ string, e indexEntry[T]) bool {
		keys = append(keys, e.name)
		return true
	})
	return keys
}

// Clear removes every mapping.
func (ix *Index[T]) Clear() {
	ix.tree = new(btree.Map[string, indexEntry[T]])
}

// Equal reports whether a and b name the same key under this index's fold.
func (ix *Index[T]) Equal(a, b string) bool {
	return ix.fold(a) == ix.fold(b)
}
