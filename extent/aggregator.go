// Package extent implements the ST_Extent-style reduction over serialized
// geometry values.
//
// The aggregator folds bounding envelopes across a dataset using only the
// fast envelope path of the codec, so its cost per value is constant
// regardless of vertex count. The reduction is commutative, associative, and
// idempotent on identical inputs; empty inputs are no-ops.
package extent

import (
	"math"

	"github.com/jagill/geoserde/envelope"
	"github.com/jagill/geoserde/serde"
)

// Aggregator accumulates the envelope of a stream of serialized geometries.
//
// The zero value is not ready for use; create one with NewAggregator.
// An Aggregator is not safe for concurrent use; run one per partition and
// combine them with Merge.
type Aggregator struct {
	xMin float64
	yMin float64
	xMax float64
	yMax float64
}

// NewAggregator returns an aggregator in the identity state: no inputs seen.
func NewAggregator() *Aggregator {
	return &Aggregator{
		xMin: math.Inf(1),
		yMin: math.Inf(1),
		xMax: math.Inf(-1),
		yMax: math.Inf(-1),
	}
}

// Accumulate folds one serialized value into the aggregate via the
// envelope-only decoder. Values with an empty envelope leave the state
// unchanged. The only possible errors are decode errors on malformed input.
func (a *Aggregator) Accumulate(data []byte) error {
	env, err := serde.DeserializeEnvelope(data)
	if err != nil {
		return err
	}

	if env.IsEmpty() {
		return nil
	}

	a.xMin = math.Min(a.xMin, env.XMin)
	a.yMin = math.Min(a.yMin, env.YMin)
	a.xMax = math.Max(a.xMax, env.XMax)
	a.yMax = math.Max(a.yMax, env.YMax)

	return nil
}

// Merge combines another aggregator's state into this one componentwise.
// Merging the identity state is a no-op.
func (a *Aggregator) Merge(other *Aggregator) {
	a.xMin = math.Min(a.xMin, other.xMin)
	a.yMin = math.Min(a.yMin, other.yMin)
	a.xMax = math.Max(a.xMax, other.xMax)
	a.yMax = math.Max(a.yMax, other.yMax)
}

// IsEmpty reports whether no non-empty input has been accumulated.
func (a *Aggregator) IsEmpty() bool {
	return math.IsInf(a.xMin, 1) || math.IsInf(a.yMin, 1) ||
		math.IsInf(a.xMax, -1) || math.IsInf(a.yMax, -1)
}

// Envelope returns the aggregate as an envelope value.
func (a *Aggregator) Envelope() envelope.Envelope {
	if a.IsEmpty() {
		return envelope.Empty()
	}

	return envelope.New(a.xMin, a.yMin, a.xMax, a.yMax)
}

// Finalize emits the aggregate as a serialized envelope record, or nil when
// no non-empty input was seen — the SQL NULL of the surrounding engine.
func (a *Aggregator) Finalize() ([]byte, error) {
	if a.IsEmpty() {
		return nil, nil
	}

	return serde.Serialize(a.Envelope().Bound())
}
