package namedlist

import (
	"fmt"
	"iter"
	"slices"
)

// Item is the constraint satisfied by values stored in a [List].
//
// Name returns the item's identifier. Names need not be unique and are
// compared case-insensitively; the empty string means the item has no name.
// The list never calls Name on the zero value of T (a nil pointer, say), and
// treats such items as unnamed.
type Item interface {
	comparable
	Name() string
}

// List is an insertion-ordered sequence of items that can also be addressed
// by name.
//
// Positional operations (At, Insert, RemoveAt, …) see the list as a slice.
// Name operations (TryGet, Set, RemoveNamed, …) see it as a case-insensitive
// dictionary from item name to item, backed by an [Index] that every
// mutation keeps in step with the sequence:
//
//   - every named member is reachable by its name;
//   - no name is indexed unless a member carries it;
//   - when several members share a name, the index holds the one written
//     most recently.
//
// A list may be deferred: built from a [Factory] or an iterator that is not
// run until an operation first needs the items. Every operation that reads
// or writes the sequence realizes the list first and returns the source's
// error, wrapped in [ErrSourceFailure], if that fails.
//
// The zero value is an empty list ready to use.
//
// A List is not safe for concurrent use. Callers sharing one across
// goroutines must hold a single lock around every operation, including the
// first one, which may run the factory.
type List[T Item] struct {
	opts  Options
	src   *Source[T] // nil once realized
	items []T
	index *Index[T]
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates an empty list.
func New[T Item]() *List[T] {
	l := &List[T]{opts: DefaultOptions(), items: []T{}}
	l.index = NewIndex[T](l.opts.Fold)
	return l
}

// From creates a list holding a copy of items. The name index is built on
// first access.
func From[T Item](items []T) *List[T] {
	return &List[T]{opts: DefaultOptions(), src: SourceOf(slices.Clone(items))}
}

// Lazy creates a deferred list whose items are produced by factory the first
// time an operation needs them. A factory that fails is not retried until
// the next operation.
func Lazy[T Item](factory Factory[T]) *List[T] {
	return &List[T]{opts: DefaultOptions(), src: NewSource(factory)}
}

// FromSeq creates a deferred list that drains seq the first time an
// operation needs the items.
func FromSeq[T Item](seq iter.Seq[T]) *List[T] {
	return &List[T]{opts: DefaultOptions(), src: SourceSeq(seq)}
}

// WithOptions replaces the list's options and returns l for chaining:
//
//	l := namedlist.Lazy(load).WithOptions(namedlist.Options{Logger: logger})
//
// Unset fields fall back to [DefaultOptions]. Changing Fold on a realized
// list rebuilds its index.
func (l *List[T]) WithOptions(opts Options) *List[T] {
	l.opts = opts.withDefaults()
	if l.src == nil && l.index != nil {
		l.reindex()
	}
	return l
}

// ─────────────────────────────────────────────────────────────────────────────
// Realization
// ─────────────────────────────────────────────────────────────────────────────

// Initialized reports whether the caller-supplied factory or iterator, if
// any, has already run. Lists built with [New] or [From] are always
// initialized.
func (l *List[T]) Initialized() bool {
	return l.src == nil || l.src.Realized()
}

// Realize forces the list to materialize its items and build its index.
// It is a no-op on a list that is already realized.
func (l *List[T]) Realize() error { return l.realize() }

func (l *List[T]) realize() error {
	if l.src == nil {
		if l.index == nil {
			l.opts = l.opts.withDefaults()
			l.reindex()
		}
		return nil
	}
	items, err := l.src.Realize()
	if err != nil {
		l.opts.Logger.Debug("namedlist: source failed", "error", err)
		return err
	}
	l.src = nil
	l.items = items
	l.reindex()
	l.opts.Logger.Debug("namedlist: realized", "count", len(l.items), "named", l.index.Len())
	return nil
}

// reindex rebuilds the index from the sequence. Later members overwrite
// earlier ones that share a name.
func (l *List[T]) reindex() {
	l.index = NewIndex[T](l.opts.Fold)
	for _, item := range l.items {
		l.index.Put(l.nameOf(item), item)
	}
}

// nameOf returns item's name, or "" for the zero value.
func (l *List[T]) nameOf(item T) string {
	var zero T
	if item == zero {
		return ""
	}
	return item.Name()
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutation primitives
//
// Every change to items goes through one of these so that the index is
// updated in the same step.
// ─────────────────────────────────────────────────────────────────────────────

func (l *List[T]) appendItem(item T) {
	l.items = append(l.items, item)
	l.index.Put(l.nameOf(item), item)
}

func (l *List[T]) insertItem(pos int, item T) {
	l.items = slices.Insert(l.items, pos, item)
	l.index.Put(l.nameOf(item), item)
}

func (l *List[T]) deleteAt(pos int) T {
	item := l.items[pos]
	l.items = slices.Delete(l.items, pos, pos+1)
	l.forget(item)
	return item
}

func (l *List[T]) replaceAt(pos int, item T) {
	old := l.items[pos]
	l.items[pos] = item
	l.forget(old)
	l.index.Put(l.nameOf(item), item)
}

// forget drops the index entry for an item that just left the sequence, but
// only when the entry points at that item. If other members still carry the
// name, the entry is handed to the last of them.
func (l *List[T]) forget(item T) {
	name := l.nameOf(item)
	if name == "" || !l.index.RemoveItem(name, item) {
		return
	}
	l.repair(name)
}

// repair re-points the index entry for name at the last member carrying it,
// if any.
func (l *List[T]) repair(name string) {
	for _, other := range slices.Backward(l.items) {
		if n := l.nameOf(other); n != "" && l.index.Equal(n, name) {
			l.index.Put(n, other)
			return
		}
	}
}

func (l *List[T]) checkIndex(pos, limit int) error {
	if pos < 0 || pos >= limit {
		return fmt.Errorf("%w: %d (length %d)", ErrIndexOutOfRange, pos, len(l.items))
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// List operations
// ─────────────────────────────────────────────────────────────────────────────

// Count returns the number of items.
func (l *List[T]) Count() (int, error) {
	if err := l.realize(); err != nil {
		return 0, err
	}
	return len(l.items), nil
}

// Add appends item and indexes it under its name.
func (l *List[T]) Add(item T) error {
	if err := l.realize(); err != nil {
		return err
	}
	l.appendItem(item)
	return nil
}

// Append is like [List.Add] but also returns the position item landed at.
func (l *List[T]) Append(item T) (int, error) {
	if err := l.Add(item); err != nil {
		return -1, err
	}
	return len(l.items) - 1, nil
}

// Insert places item at pos, shifting later items up. pos may equal the
// length of the list, which appends.
func (l *List[T]) Insert(pos int, item T) error {
	if err := l.realize(); err != nil {
		return err
	}
	if err := l.checkIndex(pos, len(l.items)+1); err != nil {
		return err
	}
	l.insertItem(pos, item)
	return nil
}

// RemoveAt removes the item at pos.
func (l *List[T]) RemoveAt(pos int) error {
	if err := l.realize(); err != nil {
		return err
	}
	if err := l.checkIndex(pos, len(l.items)); err != nil {
		return err
	}
	l.deleteAt(pos)
	return nil
}

// At returns the item at pos.
func (l *List[T]) At(pos int) (T, error) {
	var zero T
	if err := l.realize(); err != nil {
		return zero, err
	}
	if err := l.checkIndex(pos, len(l.items)); err != nil {
		return zero, err
	}
	return l.items[pos], nil
}

// SetAt replaces the item at pos and indexes the new item under its name.
func (l *List[T]) SetAt(pos int, item T) error {
	if err := l.realize(); err != nil {
		return err
	}
	if err := l.checkIndex(pos, len(l.items)); err != nil {
		return err
	}
	l.replaceAt(pos, item)
	return nil
}

// Remove removes the first occurrence of item and reports whether it was
// present.
func (l *List[T]) Remove(item T) (bool, error) {
	if err := l.realize(); err != nil {
		return false, err
	}
	pos := slices.Index(l.items, item)
	if pos < 0 {
		return false, nil
	}
	l.deleteAt(pos)
	return true, nil
}

// Clear removes every item.
func (l *List[T]) Clear() error {
	if err := l.realize(); err != nil {
		return err
	}
	l.items = []T{}
	l.index.Clear()
	return nil
}

// Contains reports whether item is in the list.
func (l *List[T]) Contains(item T) (bool, error) {
	pos, err := l.IndexOf(item)
	return pos >= 0, err
}

// IndexOf returns the position of the first occurrence of item, or -1.
func (l *List[T]) IndexOf(item T) (int, error) {
	if err := l.realize(); err != nil {
		return -1, err
	}
	return slices.Index(l.items, item), nil
}

// All returns an iterator over positions and items in list order.
//
// The iterator reads the list as it is when iteration starts.
func (l *List[T]) All() (iter.Seq2[int, T], error) {
	if err := l.realize(); err != nil {
		return nil, err
	}
	return func(yield func(int, T) bool) {
		for i, item := range l.items {
			if !yield(i, item) {
				return
			}
		}
	}, nil
}

// Each calls fn(item, index) for every item in list order.
func (l *List[T]) Each(fn func(T, int)) error {
	if err := l.realize(); err != nil {
		return err
	}
	for i, item := range l.items {
		fn(item, i)
	}
	return nil
}

// CopyTo copies the items into dst starting at offset and returns the
// number copied, which is less than the list length when dst is too short.
func (l *List[T]) CopyTo(dst []T, offset int) (int, error) {
	if err := l.realize(); err != nil {
		return 0, err
	}
	if offset < 0 || offset > len(dst) {
		return 0, fmt.Errorf("%w: offset %d (destination length %d)", ErrIndexOutOfRange, offset, len(dst))
	}
	return copy(dst[offset:], l.items), nil
}

// Clone returns an independent list holding the same items in the same
// order. The clone's index is built on its first access.
func (l *List[T]) Clone() (*List[T], error) {
	if err := l.realize(); err != nil {
		return nil, err
	}
	c := From(l.items)
	c.opts = l.opts
	return c, nil
}
