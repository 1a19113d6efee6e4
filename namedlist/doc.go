// Package namedlist provides an insertion-ordered list that can also be
// addressed by item name.
//
// # Overview
//
// A [List] stores items in the order they were added, like a slice, and
// keeps a case-insensitive [Index] from each item's name to the item. Items
// name themselves through the [Item] constraint:
//
//	type Page struct{ Slug, Title string }
//
//	func (p *Page) Name() string { return p.Slug }
//
//	l := namedlist.New[*Page]()
//	_ = l.Add(&Page{Slug: "intro"})
//	p, _ := l.FindNamed("INTRO")
//
// Names are not required to be unique. When several items share a name the
// index answers with the most recently written one, and removing it hands
// the name to the last remaining item that carries it. Items with an empty
// name, and the zero value of the item type, are never indexed.
//
// # Deferred lists
//
// [Lazy] and [FromSeq] build lists whose contents are produced on first
// use. The factory runs at most once on success; a failure is returned from
// the triggering operation wrapped in [ErrSourceFailure] and the factory runs
// again on the next operation. [List.Initialized] reports whether it has run
// and [List.String] never runs it.
//
// # Queries
//
// [List.FindRange] and [List.Query] return a [query.Query] over the live
// list. Queries are lazy and restartable: they read the list each time they
// are enumerated.
//
//	page, _ := l.FindRange(20, 10)
//	titles := query.Select(page, func(p *Page) string { return p.Title }).ToSlice()
//
// # Configuration
//
// [Options] sets the logger used for debug records about realization and
// the fold function used for case-insensitive comparison. The zero value of
// every field selects its default.
//
// # Concurrency
//
// A List is not safe for concurrent use. The first operation on a deferred
// list may run its factory, so even reads must be serialized.
package namedlist
