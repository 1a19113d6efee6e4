// Package query provides a lazy, composable, read-only query handle over any
// Go iterator.
//
// # Overview
//
// The central type is [Query][T], a thin wrapper around an [iter.Seq] that
// exposes a chainable API modelled on the classic collection pipeline:
//
//	names := query.FromSlice(pages).
//	    Where(func(p *Page) bool { return p.Visible }).
//	    OrderBy(func(a, b *Page) int { return cmp.Compare(a.Title, b.Title) }).
//	    Take(10).
//	    ToSlice()
//
// # Laziness
//
// Intermediate operations (Where, Skip, Take, OrderBy, …) never touch the
// underlying source. Work happens only when a terminal operation (ToSlice,
// Count, First, Each, …) or a range loop over [Query.All] enumerates the
// query. A query can be enumerated any number of times; each enumeration
// re-reads its source, so a query built over a live container observes the
// container as it is at enumeration time.
//
// OrderBy and Reverse need the whole input before they can yield; they buffer
// it during enumeration, never up front.
//
// # Read-only
//
// A Query has no mutating methods and never writes back to its source. It is
// safe to hand a Query to code that must not modify the container it was
// derived from.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are package-level functions:
//
//	titles := query.Select(q, func(p *Page) string { return p.Title })
//
// Package-level functions: [Select], [SelectMany], [Reduce], [GroupBy],
// [KeyBy], [DistinctBy], [Zip].
package query
