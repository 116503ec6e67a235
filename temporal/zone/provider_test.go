package zone

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aparo/temporal/temporal/types"
)

func TestFixedProvider(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	p := fixedProvider{}

	for _, id := range []string{"", "UTC", "Z"} {
		z, err := p.GetZone(id)
		require.NoError(t, err)
		a.Same(UTC, z)
	}

	z, err := p.GetZone("+05:30")
	require.NoError(t, err)
	a.Equal(19_800_000, z.OffsetAt(0))

	_, err = p.GetZone("Atlantis/Lost")
	a.ErrorIs(err, ErrZone)
	_, err = p.GetZone("+99:00")
	a.ErrorIs(err, types.ErrConfig)

	a.Equal([]string{"UTC"}, p.AvailableIDs())
}

func TestMapProvider(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	z := eastern(t)
	p, err := NewMapProvider(z)
	require.NoError(t, err)

	got, err := p.GetZone("Test/Eastern")
	require.NoError(t, err)
	a.Same(z, got)

	utc, err := p.GetZone("UTC")
	require.NoError(t, err)
	a.Same(UTC, utc)

	// Fixed-offset ids still resolve.
	fixed, err := p.GetZone("-02:15")
	require.NoError(t, err)
	a.Equal(-8_100_000, fixed.OffsetAt(0))

	_, err = p.GetZone("Test/Unknown")
	a.ErrorIs(err, ErrZone)

	if diff := cmp.Diff([]string{"Test/Eastern", "UTC"}, p.AvailableIDs()); diff != "" {
		t.Errorf("AvailableIDs mismatch (-want +got):\n%s", diff)
	}

	_, err = NewMapProvider(nil)
	a.ErrorIs(err, ErrZone)
}

func TestProcessDefaults(t *testing.T) {
	// Mutates process-wide state; no t.Parallel.
	a := assert.New(t)

	a.Same(UTC, Default())
	z := eastern(t)
	require.NoError(t, SetDefault(z))
	defer func() { require.NoError(t, SetDefault(UTC)) }()
	a.Same(z, Default())
	a.ErrorIs(SetDefault(nil), types.ErrConfig)

	p, err := NewMapProvider(z)
	require.NoError(t, err)
	require.NoError(t, SetProvider(p))
	defer func() { require.NoError(t, SetProvider(fixedProvider{})) }()

	got, err := ForID("Test/Eastern")
	require.NoError(t, err)
	a.Same(z, got)

	a.ErrorIs(SetProvider(nil), types.ErrConfig)
	a.ErrorIs(SetProvider(noUTCProvider{}), types.ErrConfig)
}

type noUTCProvider struct{}

func (noUTCProvider) GetZone(string) (Zone, error) {
	return nil, ErrZone
}
func (noUTCProvider) AvailableIDs() []string { return nil }

func TestContextWithZone(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	z := eastern(t)
	ctx := ContextWithZone(context.Background(), z)
	a.Same(z, FromContext(ctx))

	// Absent or nil zones fall back to the process default.
	a.Equal(Default(), FromContext(context.Background()))
	a.Equal(Default(), FromContext(ContextWithZone(context.Background(), nil)))
}

const rulesYAML = `
zones:
  - id: Test/Eastern
    name: EST
    offset: "-05:00"
    transitions:
      - at: 1710054000000
        offset: "-04:00"
        standard: "-05:00"
        name: EDT
      - at: 1730613600000
        offset: "-05:00"
        name: EST
  - id: Test/Kathmandu
    name: NPT
    offset: "+05:45"
`

func TestLoadRules(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	p, err := LoadRules(strings.NewReader(rulesYAML))
	require.NoError(t, err)

	if diff := cmp.Diff([]string{"Test/Eastern", "Test/Kathmandu", "UTC"}, p.AvailableIDs()); diff != "" {
		t.Errorf("AvailableIDs mismatch (-want +got):\n%s", diff)
	}

	z, err := p.GetZone("Test/Eastern")
	require.NoError(t, err)
	// 1710054000000 is 2024-03-10T07:00:00Z.
	a.Equal(est, z.OffsetAt(1710054000000-1))
	a.Equal(edt, z.OffsetAt(1710054000000))
	a.Equal(est, z.StandardOffsetAt(1710054000000))
	a.Equal("EDT", z.NameKeyAt(1710054000000))
	a.Equal(est, z.OffsetAt(1730613600000))

	ktm, err := p.GetZone("Test/Kathmandu")
	require.NoError(t, err)
	a.True(ktm.IsFixed())
	a.Equal(int(5*types.MillisPerHour+45*types.MillisPerMinute), ktm.OffsetAt(0))

	for _, tc := range []struct {
		test string
		doc  string
	}{
		{"bad_yaml", ":"},
		{"bad_offset", "zones:\n  - id: X\n    offset: nope\n"},
		{"bad_transition", "zones:\n  - id: X\n    offset: \"+00:00\"\n    transitions:\n      - at: 1\n        offset: bad\n"},
		{"out_of_order", "zones:\n  - id: X\n    offset: \"+00:00\"\n    transitions:\n      - at: 10\n        offset: \"+01:00\"\n      - at: 5\n        offset: \"+00:00\"\n"},
	} {
		tc := tc
		t.Run(tc.test, func(t *testing.T) {
			t.Parallel()
			_, err := LoadRules(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, ErrZone)
		})
	}
}
