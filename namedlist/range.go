package namedlist

import "github.com/hasbyte1/go-namedlist/query"

// FindRange returns a read-only window of at most take items starting after
// the first skip items. Negative arguments count as zero; a window past the
// end of the list is simply empty.
//
// The window is evaluated each time it is enumerated, against the list as it
// is at that moment, and can be enumerated any number of times.
//
//	page, err := l.FindRange(20, 10)
//	for item := range page.All() { … }
func (l *List[T]) FindRange(skip, take int) (*query.Query[T], error) {
	q, err := l.Query()
	if err != nil {
		return nil, err
	}
	return q.Skip(skip).Take(take), nil
}

// Query returns a composable, read-only query over the list. Nothing is
// copied up front: filters and orderings run when the query is enumerated.
func (l *List[T]) Query() (*query.Query[T], error) {
	if err := l.realize(); err != nil {
		return nil, err
	}
	return query.From(func(yield func(T) bool) {
		for _, item := range l.items {
			if !yield(item) {
				return
			}
		}
	}), nil
}
