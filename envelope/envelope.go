// Package envelope provides the axis-aligned minimum bounding rectangle value
// object used throughout the geometry codec.
//
// An Envelope is either empty or a finite rectangle {XMin, YMin, XMax, YMax}
// with XMin <= XMax and YMin <= YMax. The empty state is carried as NaN in
// every component, and any NaN component makes an envelope read as empty; this
// matches the wire representation, where an empty envelope round-trips to four
// NaN doubles.
package envelope

import (
	"math"

	"github.com/paulmach/orb"
)

// Envelope is the minimum bounding rectangle of a geometry.
type Envelope struct {
	XMin float64
	YMin float64
	XMax float64
	YMax float64
}

// Empty returns the empty envelope.
func Empty() Envelope {
	nan := math.NaN()
	return Envelope{XMin: nan, YMin: nan, XMax: nan, YMax: nan}
}

// New returns the envelope with the given bounds.
func New(xMin, yMin, xMax, yMax float64) Envelope {
	return Envelope{XMin: xMin, YMin: yMin, XMax: xMax, YMax: yMax}
}

// OfPoint returns the degenerate envelope of a single coordinate,
// or the empty envelope if either component is NaN.
func OfPoint(x, y float64) Envelope {
	if math.IsNaN(x) || math.IsNaN(y) {
		return Empty()
	}

	return Envelope{XMin: x, YMin: y, XMax: x, YMax: y}
}

// FromBound converts an orb.Bound to an Envelope.
func FromBound(b orb.Bound) Envelope {
	return Envelope{XMin: b.Min[0], YMin: b.Min[1], XMax: b.Max[0], YMax: b.Max[1]}
}

// IsEmpty reports whether the envelope is empty.
// NaN in any component propagates as empty.
func (e Envelope) IsEmpty() bool {
	return math.IsNaN(e.XMin) || math.IsNaN(e.YMin) || math.IsNaN(e.XMax) || math.IsNaN(e.YMax)
}

// Extend widens the envelope to cover other. Extending by an empty envelope
// has no effect; extending an empty envelope by a non-empty one takes the
// other's bounds.
func (e *Envelope) Extend(other Envelope) {
	if other.IsEmpty() {
		return
	}

	if e.IsEmpty() {
		*e = other
		return
	}

	e.XMin = math.Min(e.XMin, other.XMin)
	e.YMin = math.Min(e.YMin, other.YMin)
	e.XMax = math.Max(e.XMax, other.XMax)
	e.YMax = math.Max(e.YMax, other.YMax)
}

// ExtendXY widens the envelope to cover the coordinate (x, y).
// Coordinates with a NaN component are ignored.
func (e *Envelope) ExtendXY(x, y float64) {
	e.Extend(OfPoint(x, y))
}

// Intersects reports whether the two envelopes share any point.
// Empty envelopes intersect nothing.
func (e Envelope) Intersects(other Envelope) bool {
	if e.IsEmpty() || other.IsEmpty() {
		return false
	}

	return e.XMin <= other.XMax && other.XMin <= e.XMax &&
		e.YMin <= other.YMax && other.YMin <= e.YMax
}

// Equal reports whether two envelopes are the same rectangle.
// All empty envelopes compare equal to each other.
func (e Envelope) Equal(other Envelope) bool {
	if e.IsEmpty() || other.IsEmpty() {
		return e.IsEmpty() && other.IsEmpty()
	}

	return e.XMin == other.XMin && e.YMin == other.YMin &&
		e.XMax == other.XMax && e.YMax == other.YMax
}

// Bound converts the envelope to an orb.Bound.
// The empty envelope converts to a bound with NaN components.
func (e Envelope) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{e.XMin, e.YMin},
		Max: orb.Point{e.XMax, e.YMax},
	}
}

// Polygon materializes the envelope as a polygon whose exterior ring is the
// five-vertex closed rectangle, wound counterclockwise from (XMin, YMin).
// The empty envelope materializes as an empty polygon.
func (e Envelope) Polygon() orb.Polygon {
	if e.IsEmpty() {
		return orb.Polygon{}
	}

	return orb.Polygon{
		orb.Ring{
			{e.XMin, e.YMin},
			{e.XMax, e.YMin},
			{e.XMax, e.YMax},
			{e.XMin, e.YMax},
			{e.XMin, e.YMin},
		},
	}
}

// OfGeometry computes the envelope of a geometry by walking its vertices.
// Empty geometries, including the empty point (either coordinate NaN), have
// the empty envelope. Coordinates with a NaN component never contribute.
func OfGeometry(g orb.Geometry) Envelope {
	env := Empty()
	extendGeometry(&env, g)

	return env
}

func extendGeometry(env *Envelope, g orb.Geometry) {
	switch v := g.(type) {
	case orb.Point:
		env.ExtendXY(v[0], v[1])
	case orb.MultiPoint:
		extendPoints(env, v)
	case orb.LineString:
		extendPoints(env, v)
	case orb.Ring:
		extendPoints(env, v)
	case orb.MultiLineString:
		for _, ls := range v {
			extendPoints(env, ls)
		}
	case orb.Polygon:
		for _, ring := range v {
			extendPoints(env, ring)
		}
	case orb.MultiPolygon:
		for _, poly := range v {
			for _, ring := range poly {
				extendPoints(env, ring)
			}
		}
	case orb.Collection:
		for _, child := range v {
			extendGeometry(env, child)
		}
	case orb.Bound:
		env.Extend(FromBound(v))
	}
}

func extendPoints(env *Envelope, points []orb.Point) {
	for _, p := range points {
		env.ExtendXY(p[0], p[1])
	}
}
