package query_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-namedlist/query"
)

type page struct {
	name    string
	section string
	words   int
}

func pages() *query.Query[page] {
	return query.FromSlice([]page{
		{"home", "root", 120},
		{"about", "root", 80},
		{"news", "blog", 300},
		{"archive", "blog", 40},
	})
}

func TestSelect(t *testing.T) {
	got := query.Select(ints(1, 2, 3), func(n int) string { return strconv.Itoa(n * n) }).ToSlice()
	assert.Equal(t, []string{"1", "4", "9"}, got)
}

func TestSelectIsLazy(t *testing.T) {
	calls := 0
	q := query.Select(ints(1, 2, 3), func(n int) int {
		calls++
		return n
	})
	assert.Zero(t, calls)
	_, _ = q.First()
	assert.Equal(t, 1, calls)
}

func TestSelectMany(t *testing.T) {
	got := query.SelectMany(query.FromSlice([]string{"a b", "c"}), strings.Fields).ToSlice()
	assert.Equal(t, []string{"a", "b", "c"}, got)

	first := query.SelectMany(query.FromSlice([]string{"a b", "c"}), strings.Fields).Take(1).ToSlice()
	assert.Equal(t, []string{"a"}, first)
}

func TestReduce(t *testing.T) {
	total := query.Reduce(pages(), func(acc int, p page) int { return acc + p.words }, 0)
	assert.Equal(t, 540, total)
}

func TestGroupBy(t *testing.T) {
	groups := query.GroupBy(pages(), func(p page) string { return p.section })
	names := map[string][]string{}
	for k, ps := range groups {
		for _, p := range ps {
			names[k] = append(names[k], p.name)
		}
	}
	want := map[string][]string{
		"root": {"home", "about"},
		"blog": {"news", "archive"},
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("GroupBy mismatch (-want +got):\n%s", diff)
	}
}

func TestKeyByLastWins(t *testing.T) {
	byWords := query.KeyBy(pages(), func(p page) string { return p.section })
	assert.Equal(t, "about", byWords["root"].name)
	assert.Equal(t, "archive", byWords["blog"].name)
}

func TestDistinctBy(t *testing.T) {
	got := query.DistinctBy(pages(), func(p page) string { return p.section }).ToSlice()
	assert.Equal(t, []page{{"home", "root", 120}, {"news", "blog", 300}}, got)
}

func TestZip(t *testing.T) {
	got := query.Zip(query.FromSlice([]string{"a", "b", "c"}), ints(1, 2)).ToSlice()
	assert.Equal(t, []query.Pair[string, int]{{"a", 1}, {"b", 2}}, got)
	assert.Equal(t, "(a, 1)", got[0].String())
}

func TestZipEarlyStop(t *testing.T) {
	pairs := query.Zip(ints(1, 2, 3), ints(4, 5, 6)).Take(1).ToSlice()
	assert.Equal(t, []query.Pair[int, int]{{1, 4}}, pairs)
}
