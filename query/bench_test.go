package query_test

import (
	"cmp"
	"testing"

	"github.com/hasbyte1/go-namedlist/query"
)

// makeInts creates a Query[int] of size n for benchmarks.
func makeInts(n int) *query.Query[int] {
	items := make([]int, n)
	for i := range items {
		items[i] = n - i
	}
	return query.FromSlice(items)
}

func BenchmarkWhere(b *testing.B) {
	q := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Where(func(n int) bool { return n%2 == 0 }).Count()
	}
}

func BenchmarkSkipTake(b *testing.B) {
	q := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Skip(5_000).Take(20).ToSlice()
	}
}

func BenchmarkOrderBy(b *testing.B) {
	q := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.OrderBy(cmp.Compare[int]).First()
	}
}

func BenchmarkSelect(b *testing.B) {
	q := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		query.Select(q, func(n int) int { return n * 2 }).Count()
	}
}
