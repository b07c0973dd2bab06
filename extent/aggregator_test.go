package extent

import (
	"math/rand"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jagill/geoserde/envelope"
	"github.com/jagill/geoserde/errs"
	"github.com/jagill/geoserde/serde"
)

func mustSerialize(t *testing.T, g orb.Geometry) []byte {
	t.Helper()

	data, err := serde.Serialize(g)
	require.NoError(t, err)

	return data
}

func testValues(t *testing.T) [][]byte {
	t.Helper()

	return [][]byte{
		mustSerialize(t, orb.Point{1, 2}),
		mustSerialize(t, serde.EmptyPoint()),
		mustSerialize(t, orb.LineString{{0, 0}, {10, 0}, {10, 10}}),
		mustSerialize(t, orb.MultiPoint{{1, 1}, {2, 2}}),
		mustSerialize(t, orb.Collection{serde.EmptyPoint(), orb.Point{3, 4}}),
		mustSerialize(t, orb.Collection{}),
	}
}

func TestAggregator_Fold(t *testing.T) {
	agg := NewAggregator()
	require.True(t, agg.IsEmpty())

	for _, v := range testValues(t) {
		require.NoError(t, agg.Accumulate(v))
	}

	require.False(t, agg.IsEmpty())
	assert.True(t, envelope.New(0, 0, 10, 10).Equal(agg.Envelope()))
}

func TestAggregator_EmptyInputsAreNoOps(t *testing.T) {
	agg := NewAggregator()

	require.NoError(t, agg.Accumulate(mustSerialize(t, serde.EmptyPoint())))
	require.NoError(t, agg.Accumulate(mustSerialize(t, orb.Collection{})))
	require.NoError(t, agg.Accumulate(mustSerialize(t, orb.MultiPolygon{})))

	assert.True(t, agg.IsEmpty())
	assert.True(t, agg.Envelope().IsEmpty())
}

func TestAggregator_Commutative(t *testing.T) {
	values := testValues(t)

	want := NewAggregator()
	for _, v := range values {
		require.NoError(t, want.Accumulate(v))
	}

	rng := rand.New(rand.NewSource(42))
	for range 10 {
		shuffled := make([][]byte, len(values))
		copy(shuffled, values)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		agg := NewAggregator()
		for _, v := range shuffled {
			require.NoError(t, agg.Accumulate(v))
		}

		assert.True(t, want.Envelope().Equal(agg.Envelope()))
	}
}

func TestAggregator_Associative(t *testing.T) {
	values := testValues(t)

	want := NewAggregator()
	for _, v := range values {
		require.NoError(t, want.Accumulate(v))
	}

	// Split into per-partition aggregators and merge in arbitrary groupings.
	for split := 1; split < len(values); split++ {
		left := NewAggregator()
		for _, v := range values[:split] {
			require.NoError(t, left.Accumulate(v))
		}

		right := NewAggregator()
		for _, v := range values[split:] {
			require.NoError(t, right.Accumulate(v))
		}

		left.Merge(right)
		assert.True(t, want.Envelope().Equal(left.Envelope()), "split at %d", split)
	}
}

func TestAggregator_Idempotent(t *testing.T) {
	v := mustSerialize(t, orb.Point{5, 6})

	agg := NewAggregator()
	for range 5 {
		require.NoError(t, agg.Accumulate(v))
	}

	assert.True(t, envelope.New(5, 6, 5, 6).Equal(agg.Envelope()))
}

func TestAggregator_MergeIdentity(t *testing.T) {
	agg := NewAggregator()
	require.NoError(t, agg.Accumulate(mustSerialize(t, orb.Point{1, 1})))

	agg.Merge(NewAggregator())
	assert.True(t, envelope.New(1, 1, 1, 1).Equal(agg.Envelope()))
}

func TestAggregator_Finalize(t *testing.T) {
	agg := NewAggregator()
	require.NoError(t, agg.Accumulate(mustSerialize(t, orb.LineString{{0, 0}, {2, 3}})))

	data, err := agg.Finalize()
	require.NoError(t, err)
	require.NotNil(t, data)
	require.Len(t, data, serde.EnvelopeRecordSize)

	env, err := serde.DeserializeEnvelope(data)
	require.NoError(t, err)
	assert.True(t, envelope.New(0, 0, 2, 3).Equal(env))
}

func TestAggregator_FinalizeEmptyIsNull(t *testing.T) {
	data, err := NewAggregator().Finalize()
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestAggregator_AccumulateMalformed(t *testing.T) {
	agg := NewAggregator()
	require.ErrorIs(t, agg.Accumulate([]byte{0xEE}), errs.ErrUnknownTag)
}
