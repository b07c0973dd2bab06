package geoserde

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jagill/geoserde/envelope"
	"github.com/jagill/geoserde/format"
)

// End-to-end scenarios over the public API: serialized length, type dispatch
// from the first byte, and envelope recovery through the fast path.
func TestScenarios(t *testing.T) {
	tests := []struct {
		name     string
		g        orb.Geometry
		wantLen  int
		wantType format.GeometryType
		wantEnv  envelope.Envelope
	}{
		{
			"point",
			orb.Point{1.0, 2.0},
			17,
			format.TypePoint,
			envelope.New(1, 2, 1, 2),
		},
		{
			"point empty",
			EmptyPoint(),
			17,
			format.TypePoint,
			envelope.Empty(),
		},
		{
			"linestring",
			orb.LineString{{0, 0}, {10, 0}, {10, 10}},
			1 + 32 + 4 + 48,
			format.TypeLineString,
			envelope.New(0, 0, 10, 10),
		},
		{
			"multipoint",
			orb.MultiPoint{{1, 1}, {2, 2}},
			1 + 32 + 4 + 32,
			format.TypeMultiPoint,
			envelope.New(1, 1, 2, 2),
		},
		{
			"collection with empty point",
			orb.Collection{EmptyPoint(), orb.Point{3, 4}},
			1 + 32 + 4 + (4 + 17) + (4 + 17),
			format.TypeGeometryCollection,
			envelope.New(3, 4, 3, 4),
		},
		{
			"collection empty",
			orb.Collection{},
			1 + 32 + 4,
			format.TypeGeometryCollection,
			envelope.Empty(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Serialize(tt.g)
			require.NoError(t, err)
			assert.Len(t, data, tt.wantLen)

			gotType, err := GeometryTypeOf(data)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, gotType)

			env, err := DeserializeEnvelope(data)
			require.NoError(t, err)
			assert.True(t, tt.wantEnv.Equal(env), "want %+v, got %+v", tt.wantEnv, env)
		})
	}
}

func TestExtentOverScenarios(t *testing.T) {
	agg := NewExtentAggregator()

	for _, g := range []orb.Geometry{
		orb.Point{1.0, 2.0},
		orb.LineString{{0, 0}, {10, 0}, {10, 10}},
		orb.MultiPoint{{1, 1}, {2, 2}},
		orb.Collection{EmptyPoint(), orb.Point{3, 4}},
	} {
		data, err := Serialize(g)
		require.NoError(t, err)
		require.NoError(t, agg.Accumulate(data))
	}

	assert.True(t, envelope.New(0, 0, 10, 10).Equal(agg.Envelope()))

	result, err := agg.Finalize()
	require.NoError(t, err)
	require.NotNil(t, result)

	gotType, err := GeometryTypeOf(result)
	require.NoError(t, err)
	assert.Equal(t, format.TypeEnvelope, gotType)
}

func TestWKTBridge(t *testing.T) {
	data, err := FromWKT("LINESTRING(0 0,10 0,10 10)")
	require.NoError(t, err)
	require.Len(t, data, 85)

	g, err := Deserialize(data)
	require.NoError(t, err)
	assert.Equal(t, orb.LineString{{0, 0}, {10, 0}, {10, 10}}, g)
}

func TestEmptyPointRoundTrip(t *testing.T) {
	data, err := Serialize(EmptyPoint())
	require.NoError(t, err)

	g, err := Deserialize(data)
	require.NoError(t, err)

	p, ok := g.(orb.Point)
	require.True(t, ok)
	assert.True(t, IsEmptyPoint(p))
}
