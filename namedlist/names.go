package namedlist

import (
	"fmt"
	"slices"
)

// ─────────────────────────────────────────────────────────────────────────────
// Name operations
// ─────────────────────────────────────────────────────────────────────────────

// AddNamed appends item under key.
//
// key must equal item's name exactly, otherwise [ErrNameMismatch] is
// returned. If the index already maps key (case-insensitively) to a
// different item, [ErrDuplicateKey] is returned. The list is unchanged on
// error.
func (l *List[T]) AddNamed(key string, item T) error {
	if err := l.realize(); err != nil {
		return err
	}
	if err := l.checkName(key, item); err != nil {
		return err
	}
	if existing, ok := l.index.Get(key); ok && existing != item {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}
	l.appendItem(item)
	return nil
}

// ContainsKey reports whether some item answers to name.
func (l *List[T]) ContainsKey(name string) (bool, error) {
	if err := l.realize(); err != nil {
		return false, err
	}
	return l.index.Contains(name), nil
}

// TryGet returns the item indexed under name.
// Returns the zero value and false when no item answers to name.
func (l *List[T]) TryGet(name string) (T, bool, error) {
	if err := l.realize(); err != nil {
		var zero T
		return zero, false, err
	}
	item, ok := l.index.Get(name)
	return item, ok, nil
}

// FindNamed returns the item indexed under name, or the zero value when no
// item answers to name.
func (l *List[T]) FindNamed(name string) (T, error) {
	item, _, err := l.TryGet(name)
	return item, err
}

// Keys returns a snapshot of the names currently indexed.
func (l *List[T]) Keys() ([]string, error) {
	if err := l.realize(); err != nil {
		return nil, err
	}
	return l.index.Keys(), nil
}

// Values returns a snapshot of the items in list order.
func (l *List[T]) Values() ([]T, error) {
	if err := l.realize(); err != nil {
		return nil, err
	}
	return slices.Clone(l.items), nil
}

// Set stores item under name.
//
// name must equal item's name exactly, otherwise [ErrNameMismatch] is
// returned. When no item carries the name, Set behaves like
// [List.AddNamed]; otherwise the first such item is replaced in place.
func (l *List[T]) Set(name string, item T) error {
	if err := l.realize(); err != nil {
		return err
	}
	if err := l.checkName(name, item); err != nil {
		return err
	}
	pos := l.findName(name)
	if pos < 0 {
		return l.AddNamed(name, item)
	}
	l.replaceAt(pos, item)
	return nil
}

// RemoveNamed removes the first item carrying name and reports whether one
// was removed.
//
// The index entry for name and the removed item are looked up separately.
// When several items share the name, the entry is handed to the last one
// left, so the index may keep answering to name afterwards.
func (l *List[T]) RemoveNamed(name string) (bool, error) {
	if err := l.realize(); err != nil {
		return false, err
	}
	l.index.Remove(name)
	pos := l.findName(name)
	if pos < 0 {
		return false, nil
	}
	l.items = slices.Delete(l.items, pos, pos+1)
	l.repair(name)
	return true, nil
}

// findName returns the position of the first item whose name matches name
// case-insensitively, or -1.
func (l *List[T]) findName(name string) int {
	if name == "" {
		return -1
	}
	return slices.IndexFunc(l.items, func(item T) bool {
		n := l.nameOf(item)
		return n != "" && l.index.Equal(n, name)
	})
}

func (l *List[T]) checkName(key string, item T) error {
	if name := l.nameOf(item); name != key {
		return fmt.Errorf("%w: %q != %q", ErrNameMismatch, key, name)
	}
	return nil
}
