package serde

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jagill/geoserde/errs"
)

func TestFromWKT(t *testing.T) {
	tests := []struct {
		wkt  string
		want orb.Geometry
	}{
		{"POINT(1 2)", orb.Point{1, 2}},
		{"LINESTRING(0 0,10 0,10 10)", orb.LineString{{0, 0}, {10, 0}, {10, 10}}},
		{"MULTIPOINT((1 1),(2 2))", orb.MultiPoint{{1, 1}, {2, 2}}},
		{
			"POLYGON((0 0,10 0,10 10,0 10,0 0))",
			orb.Polygon{{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.wkt, func(t *testing.T) {
			data, err := FromWKT(tt.wkt)
			require.NoError(t, err)

			g, err := Deserialize(data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, g)
		})
	}
}

func TestFromWKT_ParseFailure(t *testing.T) {
	_, err := FromWKT("POINT OF NO RETURN")
	require.ErrorIs(t, err, errs.ErrWKBParse)
}

func TestWKBRoundTrip(t *testing.T) {
	g := orb.Polygon{{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}}

	raw, err := wkb.Marshal(g)
	require.NoError(t, err)

	native, err := FromWKB(raw)
	require.NoError(t, err)

	back, err := ToWKB(native)
	require.NoError(t, err)

	decoded, err := wkb.Unmarshal(back)
	require.NoError(t, err)
	assert.Equal(t, g, decoded)
}

func TestFromWKB_ParseFailure(t *testing.T) {
	_, err := FromWKB([]byte{0x01, 0x99, 0x99})
	require.ErrorIs(t, err, errs.ErrWKBParse)
}

func TestToWKT(t *testing.T) {
	data, err := Serialize(orb.Point{1, 2})
	require.NoError(t, err)

	s, err := ToWKT(data)
	require.NoError(t, err)
	assert.Equal(t, "POINT(1 2)", s)
}
