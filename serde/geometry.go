// Package serde implements the binary serialization format for 2-D geometries.
//
// Every serialized value is a self-describing record: a one-byte type tag,
// followed for most types by the geometry's 32-byte envelope, followed by the
// vertex body. The envelope prefix is redundant with the vertices on purpose:
// it turns spatial pruning and extent aggregation into tag-and-skip operations
// that never materialize vertices (see DeserializeEnvelope).
//
// The format deviates from strict WKB where WKB is too strict: the empty
// point, which WKB cannot encode, serializes as a point record whose
// coordinates are both NaN, and survives nesting inside heterogeneous
// collections.
//
// Geometries are represented with github.com/paulmach/orb values. The codec
// is pure: every entry point consumes an immutable input and returns an owned
// output, with no shared state, so all functions are safe for concurrent use.
package serde

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/jagill/geoserde/errs"
	"github.com/jagill/geoserde/format"
)

// Record layout constants.
const (
	// PointRecordSize is the total size of a point record: tag + two doubles.
	PointRecordSize = 17
	// EnvelopeRecordSize is the total size of an envelope record: tag + four doubles.
	EnvelopeRecordSize = 33
	// boundsSize is the size of the envelope block inside prefixed records.
	boundsSize = 32
)

// EmptyPoint returns the empty point. The codec represents it as a point with
// both coordinates NaN, since orb has no dedicated empty-point value.
func EmptyPoint() orb.Point {
	return orb.Point{math.NaN(), math.NaN()}
}

// IsEmptyPoint reports whether p is the empty point.
// A NaN in either coordinate denotes "absent".
func IsEmptyPoint(p orb.Point) bool {
	return math.IsNaN(p[0]) || math.IsNaN(p[1])
}

// TypeOf classifies a geometry into one of the eight serialization variants.
// orb.Ring classifies as a polygon without holes. Geometries outside the
// closed set return errs.ErrUnsupportedGeometry.
func TypeOf(g orb.Geometry) (format.GeometryType, error) {
	switch g.(type) {
	case orb.Point:
		return format.TypePoint, nil
	case orb.MultiPoint:
		return format.TypeMultiPoint, nil
	case orb.LineString:
		return format.TypeLineString, nil
	case orb.MultiLineString:
		return format.TypeMultiLineString, nil
	case orb.Ring, orb.Polygon:
		return format.TypePolygon, nil
	case orb.MultiPolygon:
		return format.TypeMultiPolygon, nil
	case orb.Collection:
		return format.TypeGeometryCollection, nil
	case orb.Bound:
		return format.TypeEnvelope, nil
	default:
		return 0, fmt.Errorf("%T: %w", g, errs.ErrUnsupportedGeometry)
	}
}

// GeometryTypeOf returns the variant of a serialized value from its first
// byte alone, without decoding anything else.
func GeometryTypeOf(data []byte) (format.GeometryType, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("empty record: %w", errs.ErrUnexpectedEOF)
	}

	t := format.GeometryType(data[0])
	if !t.Valid() {
		return 0, fmt.Errorf("tag 0x%02x: %w", data[0], errs.ErrUnknownTag)
	}

	return t, nil
}
