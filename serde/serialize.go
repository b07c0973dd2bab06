package serde

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/jagill/geoserde/cursor"
	"github.com/jagill/geoserde/envelope"
	"github.com/jagill/geoserde/errs"
	"github.com/jagill/geoserde/format"
)

// Serialize encodes a geometry into a fresh, owned byte buffer.
//
// The record starts with the type tag. For every type except Point and
// Envelope the geometry's envelope follows as four doubles, computed once
// before the body is emitted. The body is a native vertex walk of the shape;
// collection entries are length-prefixed so a child can be skipped without
// parsing it, and omit the envelope block since the outer record already
// carries the aggregate envelope.
//
// An empty point encodes as tag + (NaN, NaN). An empty envelope is refused,
// top-level or nested, with errs.ErrEmptyEnvelope.
func Serialize(g orb.Geometry) ([]byte, error) {
	w := cursor.NewWriter()
	if err := writeRecord(w, g); err != nil {
		w.Release()
		return nil, err
	}

	return w.Detach(), nil
}

func writeRecord(w *cursor.Writer, g orb.Geometry) error {
	t, err := TypeOf(g)
	if err != nil {
		return err
	}

	w.WriteByte(byte(t))

	switch t {
	case format.TypePoint:
		writePointCoords(w, g.(orb.Point))
		return nil
	case format.TypeEnvelope:
		return writeEnvelopeBounds(w, g.(orb.Bound))
	default:
		writeBounds(w, envelope.OfGeometry(g))
		return writeBody(w, g)
	}
}

// writeInner emits a collection entry's tag and body. Inner geometries follow
// the same grammar as top-level records with the envelope block omitted.
func writeInner(w *cursor.Writer, g orb.Geometry) error {
	t, err := TypeOf(g)
	if err != nil {
		return err
	}

	w.WriteByte(byte(t))

	switch t {
	case format.TypePoint:
		writePointCoords(w, g.(orb.Point))
		return nil
	case format.TypeEnvelope:
		return writeEnvelopeBounds(w, g.(orb.Bound))
	default:
		return writeBody(w, g)
	}
}

func writeBody(w *cursor.Writer, g orb.Geometry) error {
	switch v := g.(type) {
	case orb.MultiPoint:
		writeCoordSeq(w, v)
	case orb.LineString:
		writeCoordSeq(w, v)
	case orb.MultiLineString:
		w.WriteInt32(int32(len(v)))
		for _, ls := range v {
			writeCoordSeq(w, ls)
		}
	case orb.Ring:
		writePolygonBody(w, orb.Polygon{v})
	case orb.Polygon:
		writePolygonBody(w, v)
	case orb.MultiPolygon:
		w.WriteInt32(int32(len(v)))
		for _, poly := range v {
			writePolygonBody(w, poly)
		}
	case orb.Collection:
		return writeCollectionBody(w, v)
	default:
		// writeBody is only reached for variants TypeOf already accepted.
		return fmt.Errorf("body for %T: %w", g, errs.ErrInternal)
	}

	return nil
}

// writePointCoords emits the two coordinates of a point record.
// A point with either coordinate absent encodes as (NaN, NaN).
func writePointCoords(w *cursor.Writer, p orb.Point) {
	if IsEmptyPoint(p) {
		empty := EmptyPoint()
		w.WriteFloat64(empty[0])
		w.WriteFloat64(empty[1])

		return
	}

	w.WriteFloat64(p[0])
	w.WriteFloat64(p[1])
}

func writeEnvelopeBounds(w *cursor.Writer, b orb.Bound) error {
	env := envelope.FromBound(b)
	if env.IsEmpty() {
		return errs.ErrEmptyEnvelope
	}

	writeBounds(w, env)

	return nil
}

func writeBounds(w *cursor.Writer, env envelope.Envelope) {
	w.WriteFloat64(env.XMin)
	w.WriteFloat64(env.YMin)
	w.WriteFloat64(env.XMax)
	w.WriteFloat64(env.YMax)
}

func writeCoordSeq(w *cursor.Writer, points []orb.Point) {
	w.WriteInt32(int32(len(points)))
	for _, p := range points {
		w.WriteFloat64(p[0])
		w.WriteFloat64(p[1])
	}
}

// writePolygonBody emits the exterior ring, the hole count, then each hole.
// An empty polygon has a zero-length exterior and no holes.
func writePolygonBody(w *cursor.Writer, poly orb.Polygon) {
	if len(poly) == 0 {
		w.WriteInt32(0) // exterior
		w.WriteInt32(0) // holes
		return
	}

	writeCoordSeq(w, poly[0])
	w.WriteInt32(int32(len(poly) - 1))
	for _, hole := range poly[1:] {
		writeCoordSeq(w, hole)
	}
}

// writeCollectionBody emits the entry count, then each child behind a 4-byte
// length reserved first and patched once the child body is complete. The
// length covers the child's tag and body, so readers can skip an entry in
// O(1) without parsing it.
func writeCollectionBody(w *cursor.Writer, c orb.Collection) error {
	w.WriteInt32(int32(len(c)))

	for _, child := range c {
		start := w.Len()
		w.WriteInt32(0) // length placeholder, patched below

		if err := writeInner(w, child); err != nil {
			return err
		}

		w.PatchInt32(start, int32(w.Len()-start-4))
	}

	return nil
}
