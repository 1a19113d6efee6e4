package namedlist_test

import (
	"errors"

	"github.com/hasbyte1/go-namedlist/namedlist"
)

// page is the item type used throughout the tests. Distinct pointers are
// distinct items even when they share a name.
type page struct {
	Key   string `json:"name" yaml:"name"`
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
}

func (p *page) Name() string { return p.Key }

func pg(name string) *page { return &page{Key: name} }

// counter is a factory that records how often it ran.
type counter struct {
	calls int
	items []*page
	fail  error
}

func (c *counter) factory() ([]*page, error) {
	c.calls++
	if c.fail != nil {
		err := c.fail
		c.fail = nil
		return nil, err
	}
	return c.items, nil
}

var errBoom = errors.New("boom")

func mustValues(l *namedlist.List[*page]) []*page {
	v, err := l.Values()
	if err != nil {
		panic(err)
	}
	return v
}

func mustKeys(l *namedlist.List[*page]) []string {
	k, err := l.Keys()
	if err != nil {
		panic(err)
	}
	return k
}
