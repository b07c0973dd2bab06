// Package geoserde provides a compact, self-describing binary serialization
// format for 2-D geometric objects, designed to be carried as an opaque byte
// slice per value inside analytic query engines.
//
// # Core Features
//
//   - Eight geometry variants: point, multi-point, line string, multi-line
//     string, polygon, multi-polygon, heterogeneous collection, and envelope
//   - Empty points round-trip, standalone and nested in collections, where
//     strict WKB cannot encode them at all
//   - Every non-point record carries its bounding envelope right after the
//     type tag, so envelope recovery is O(1) in value size
//   - Constant-time extent aggregation (ST_Extent) over serialized values
//   - Packed geometry blobs for columnar storage, with optional compression
//     (Zstd, S2, LZ4) and xxHash64 integrity checksums
//   - R-tree spatial indexing keyed by the envelope fast path
//
// # Basic Usage
//
// Serializing and deserializing geometries:
//
//	import (
//	    "github.com/jagill/geoserde"
//	    "github.com/paulmach/orb"
//	)
//
//	data, _ := geoserde.Serialize(orb.LineString{{0, 0}, {10, 0}, {10, 10}})
//
//	g, _ := geoserde.Deserialize(data)          // full decode
//	env, _ := geoserde.DeserializeEnvelope(data) // O(1), never reads vertices
//	t, _ := geoserde.GeometryTypeOf(data)        // first byte only
//
// Extent aggregation over a dataset:
//
//	agg := geoserde.NewExtentAggregator()
//	for _, value := range values {
//	    _ = agg.Accumulate(value)
//	}
//	result, _ := agg.Finalize() // serialized envelope record, or nil for NULL
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the serde and
// extent packages, simplifying the most common use cases. For packed columnar
// storage use the blob package, and for spatial pruning the index package.
package geoserde

import (
	"github.com/paulmach/orb"

	"github.com/jagill/geoserde/envelope"
	"github.com/jagill/geoserde/extent"
	"github.com/jagill/geoserde/format"
	"github.com/jagill/geoserde/serde"
)

// Serialize encodes a geometry into a fresh, owned byte buffer.
// See the serde package for the record grammar.
func Serialize(g orb.Geometry) ([]byte, error) {
	return serde.Serialize(g)
}

// Deserialize decodes a serialized value into a geometry.
func Deserialize(data []byte) (orb.Geometry, error) {
	return serde.Deserialize(data)
}

// DeserializeEnvelope recovers the bounding envelope of a serialized value
// without materializing vertices. Cost is constant in the value size.
func DeserializeEnvelope(data []byte) (envelope.Envelope, error) {
	return serde.DeserializeEnvelope(data)
}

// GeometryTypeOf returns the variant of a serialized value from its first
// byte alone.
func GeometryTypeOf(data []byte) (format.GeometryType, error) {
	return serde.GeometryTypeOf(data)
}

// EmptyPoint returns the empty point, represented with NaN coordinates.
func EmptyPoint() orb.Point {
	return serde.EmptyPoint()
}

// IsEmptyPoint reports whether p is the empty point.
func IsEmptyPoint(p orb.Point) bool {
	return serde.IsEmptyPoint(p)
}

// NewExtentAggregator returns an aggregator computing the envelope of the
// union of a stream of serialized values. See the extent package.
func NewExtentAggregator() *extent.Aggregator {
	return extent.NewAggregator()
}

// FromWKT parses Well-Known Text and encodes it as a native record.
func FromWKT(s string) ([]byte, error) {
	return serde.FromWKT(s)
}

// ToWKT decodes a native record and formats it as Well-Known Text.
func ToWKT(data []byte) (string, error) {
	return serde.ToWKT(data)
}

// FromWKB parses Well-Known Binary and encodes it as a native record.
func FromWKB(data []byte) ([]byte, error) {
	return serde.FromWKB(data)
}

// ToWKB decodes a native record and encodes it as little-endian WKB.
func ToWKB(data []byte) ([]byte, error) {
	return serde.ToWKB(data)
}
