package namedlist_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-namedlist/namedlist"
)

func TestString(t *testing.T) {
	l := namedlist.From([]*page{pg("intro"), nil, pg("faq")})
	assert.Equal(t, "namedlist[3]{intro, _, faq}", l.String())

	assert.Equal(t, "namedlist[0]{}", namedlist.New[*page]().String())
}

func TestString_DoesNotRunFactory(t *testing.T) {
	c := &counter{items: []*page{pg("a")}}
	l := namedlist.Lazy(c.factory)
	assert.Equal(t, "namedlist(deferred)", l.String())
	assert.Equal(t, 0, c.calls)

	require.NoError(t, l.Realize())
	assert.Equal(t, "namedlist[1]{a}", l.String())
}

func TestJSON(t *testing.T) {
	l := namedlist.From([]*page{{Key: "intro", Title: "Intro"}, {Key: "faq"}})
	data, err := json.Marshal(l)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"intro","title":"Intro"},{"name":"faq"}]`, string(data))

	var back namedlist.List[*page]
	require.NoError(t, json.Unmarshal(data, &back))
	if diff := cmp.Diff(mustValues(l), mustValues(&back)); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	got, err := back.FindNamed("INTRO")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Intro", got.Title)
}

func TestJSON_InStruct(t *testing.T) {
	var doc struct {
		Pages *namedlist.List[*page] `json:"pages"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"pages":[{"name":"a"},{"name":"b"}]}`), &doc))
	assert.Equal(t, []string{"a", "b"}, mustKeys(doc.Pages))
}

func TestJSON_Errors(t *testing.T) {
	var l namedlist.List[*page]
	assert.ErrorContains(t, l.UnmarshalJSON([]byte(`{"not":"a list"}`)), "namedlist: decode json")

	lazy := namedlist.Lazy((&counter{fail: errBoom}).factory)
	_, err := json.Marshal(lazy)
	assert.ErrorIs(t, err, namedlist.ErrSourceFailure)
}

func TestJSON_UnmarshalDiscardsPendingFactory(t *testing.T) {
	c := &counter{items: []*page{pg("old")}}
	l := namedlist.Lazy(c.factory)
	require.NoError(t, json.Unmarshal([]byte(`[{"name":"new"}]`), l))

	assert.True(t, l.Initialized())
	assert.Equal(t, []string{"new"}, mustKeys(l))
	assert.Equal(t, 0, c.calls)
}

func TestYAML(t *testing.T) {
	l := namedlist.From([]*page{{Key: "intro", Title: "Intro"}, {Key: "faq"}})
	data, err := yaml.Marshal(l)
	require.NoError(t, err)
	var raw []map[string]string
	require.NoError(t, yaml.Unmarshal(data, &raw))
	assert.Equal(t, []map[string]string{{"name": "intro", "title": "Intro"}, {"name": "faq"}}, raw)

	var back namedlist.List[*page]
	require.NoError(t, yaml.Unmarshal(data, &back))
	if diff := cmp.Diff(mustValues(l), mustValues(&back)); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestYAML_Errors(t *testing.T) {
	var l namedlist.List[*page]
	err := yaml.Unmarshal([]byte("name: not-a-sequence\n"), &l)
	assert.ErrorContains(t, err, "namedlist: decode yaml")
}
