package namedlist_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-namedlist/hashing"
	"github.com/hasbyte1/go-namedlist/namedlist"
)

func fingerprint(t *testing.T, l *namedlist.List[*page], h hashing.Hasher) []byte {
	t.Helper()
	fp, err := l.Fingerprint(h)
	require.NoError(t, err)
	return fp
}

func TestFingerprint_IgnoresCaseAndIdentity(t *testing.T) {
	a := namedlist.From([]*page{pg("Intro"), pg("FAQ")})
	b := namedlist.From([]*page{pg("intro"), pg("faq")})
	assert.Equal(t, fingerprint(t, a, nil), fingerprint(t, b, nil))
}

func TestFingerprint_OrderAndGaps(t *testing.T) {
	ab := fingerprint(t, namedlist.From([]*page{pg("a"), pg("b")}), nil)
	ba := fingerprint(t, namedlist.From([]*page{pg("b"), pg("a")}), nil)
	aGapB := fingerprint(t, namedlist.From([]*page{pg("a"), nil, pg("b")}), nil)

	assert.NotEqual(t, ab, ba)
	assert.NotEqual(t, ab, aGapB)
}

func TestFingerprint_TracksMutation(t *testing.T) {
	l := namedlist.From([]*page{pg("a")})
	before := fingerprint(t, l, nil)
	require.NoError(t, l.Add(pg("b")))
	assert.NotEqual(t, before, fingerprint(t, l, nil))
}

func TestFingerprint_Drivers(t *testing.T) {
	l := namedlist.From([]*page{pg("a")})
	assert.Equal(t, fingerprint(t, l, hashing.DefaultHasher()), fingerprint(t, l, nil))
	assert.Len(t, fingerprint(t, l, hashing.SHA256Hasher{}), 32)

	m, err := hashing.NewDefaultManager()
	require.NoError(t, err)
	h, err := m.Driver(hashing.DriverBlake2b512)
	require.NoError(t, err)
	assert.Len(t, fingerprint(t, l, h), 64)
}

func TestShape(t *testing.T) {
	l := namedlist.From([]*page{pg("Intro"), nil, pg("ÄRGER")})
	shape, err := l.Shape()
	require.NoError(t, err)
	assert.Equal(t, []string{"intro", "", "ärger"}, slices.Collect(shape))
}

func TestShape_MatchesManager(t *testing.T) {
	l := namedlist.From([]*page{pg("a"), pg("b")})
	m, err := hashing.NewDefaultManager()
	require.NoError(t, err)

	shape, err := l.Shape()
	require.NoError(t, err)
	fp, err := m.Fingerprint(shape)
	require.NoError(t, err)

	ok, err := m.Matches(fp, shape)
	require.NoError(t, err)
	assert.True(t, ok)

	sum := fingerprint(t, l, nil)
	assert.Equal(t, hashing.FormatFingerprint(hashing.DriverBlake2b256, sum), fp)
}
