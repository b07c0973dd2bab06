package serde

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/jagill/geoserde/cursor"
	"github.com/jagill/geoserde/envelope"
	"github.com/jagill/geoserde/errs"
	"github.com/jagill/geoserde/format"
)

// Deserialize decodes a serialized value into a geometry.
//
// A decode either fully succeeds or returns an error and no geometry; partial
// results are never returned. Envelope records materialize as the polygon
// whose exterior ring is the five-vertex closed rectangle of the stored
// bounds (an empty polygon when any stored bound is NaN, which Serialize
// never writes).
// A point record with either coordinate NaN materializes as the empty point.
func Deserialize(data []byte) (orb.Geometry, error) {
	r := cursor.NewReader(data)

	t, err := readTag(r)
	if err != nil {
		return nil, err
	}

	switch t {
	case format.TypePoint:
		return readPoint(r)
	case format.TypeEnvelope:
		env, err := readBounds(r)
		if err != nil {
			return nil, err
		}

		return env.Polygon(), nil
	default:
		// The envelope prefix is redundant with the vertices; the full decode
		// walks the body and never looks at it.
		if err := r.Skip(boundsSize); err != nil {
			return nil, err
		}

		return readBody(r, t)
	}
}

func readTag(r *cursor.Reader) (format.GeometryType, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, err
	}

	t := format.GeometryType(b)
	if !t.Valid() {
		return 0, fmt.Errorf("tag 0x%02x: %w", b, errs.ErrUnknownTag)
	}

	return t, nil
}

func readPoint(r *cursor.Reader) (orb.Point, error) {
	x, err := r.ReadFloat64()
	if err != nil {
		return orb.Point{}, err
	}

	y, err := r.ReadFloat64()
	if err != nil {
		return orb.Point{}, err
	}

	p := orb.Point{x, y}
	if IsEmptyPoint(p) {
		return EmptyPoint(), nil
	}

	return p, nil
}

func readBounds(r *cursor.Reader) (envelope.Envelope, error) {
	var bounds [4]float64
	for i := range bounds {
		v, err := r.ReadFloat64()
		if err != nil {
			return envelope.Empty(), err
		}
		bounds[i] = v
	}

	env := envelope.New(bounds[0], bounds[1], bounds[2], bounds[3])
	if env.IsEmpty() {
		// Any NaN component reads as the empty envelope.
		return envelope.Empty(), nil
	}

	return env, nil
}

func readBody(r *cursor.Reader, t format.GeometryType) (orb.Geometry, error) {
	switch t {
	case format.TypeMultiPoint:
		points, err := readCoordSeq(r)
		if err != nil {
			return nil, err
		}

		return orb.MultiPoint(points), nil
	case format.TypeLineString:
		points, err := readCoordSeq(r)
		if err != nil {
			return nil, err
		}

		return orb.LineString(points), nil
	case format.TypeMultiLineString:
		return readMultiLineStringBody(r)
	case format.TypePolygon:
		return readPolygonBody(r)
	case format.TypeMultiPolygon:
		return readMultiPolygonBody(r)
	case format.TypeGeometryCollection:
		return readCollectionBody(r)
	default:
		// Point and envelope records have no body; dispatch never lands here.
		return nil, fmt.Errorf("body for tag %s: %w", t, errs.ErrInternal)
	}
}

// readCount reads a non-negative element count and sanity-checks it against
// the bytes remaining, so corrupt counts fail before any allocation.
// Each counted element occupies at least elemSize bytes.
func readCount(r *cursor.Reader, elemSize int) (int, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return 0, err
	}

	if n < 0 || int(n)*elemSize > r.Available() {
		return 0, fmt.Errorf("element count %d at %d: %w", n, r.Position()-4, errs.ErrUnexpectedEOF)
	}

	return int(n), nil
}

func readCoordSeq(r *cursor.Reader) ([]orb.Point, error) {
	n, err := readCount(r, 16)
	if err != nil {
		return nil, err
	}

	points := make([]orb.Point, 0, n)
	for range n {
		x, err := r.ReadFloat64()
		if err != nil {
			return nil, err
		}

		y, err := r.ReadFloat64()
		if err != nil {
			return nil, err
		}

		points = append(points, orb.Point{x, y})
	}

	return points, nil
}

func readMultiLineStringBody(r *cursor.Reader) (orb.MultiLineString, error) {
	n, err := readCount(r, 4)
	if err != nil {
		return nil, err
	}

	mls := make(orb.MultiLineString, 0, n)
	for range n {
		points, err := readCoordSeq(r)
		if err != nil {
			return nil, err
		}

		mls = append(mls, orb.LineString(points))
	}

	return mls, nil
}

// readPolygonBody reverses writePolygonBody: exterior ring, hole count, holes.
// A zero-length exterior with no holes reads back as the empty polygon.
func readPolygonBody(r *cursor.Reader) (orb.Polygon, error) {
	exterior, err := readCoordSeq(r)
	if err != nil {
		return nil, err
	}

	holes, err := readCount(r, 4)
	if err != nil {
		return nil, err
	}

	if len(exterior) == 0 && holes == 0 {
		return orb.Polygon{}, nil
	}

	poly := make(orb.Polygon, 0, holes+1)
	poly = append(poly, orb.Ring(exterior))
	for range holes {
		hole, err := readCoordSeq(r)
		if err != nil {
			return nil, err
		}

		poly = append(poly, orb.Ring(hole))
	}

	return poly, nil
}

func readMultiPolygonBody(r *cursor.Reader) (orb.MultiPolygon, error) {
	n, err := readCount(r, 8)
	if err != nil {
		return nil, err
	}

	mp := make(orb.MultiPolygon, 0, n)
	for range n {
		poly, err := readPolygonBody(r)
		if err != nil {
			return nil, err
		}

		mp = append(mp, poly)
	}

	return mp, nil
}

// readCollectionBody recovers each entry by reading its 4-byte inner length,
// the inner tag, and the inner body. Inner geometries never carry an envelope
// block. The bytes consumed by an entry must match its declared length
// exactly; a mismatch means the record is corrupt.
func readCollectionBody(r *cursor.Reader) (orb.Collection, error) {
	n, err := readCount(r, 5)
	if err != nil {
		return nil, err
	}

	c := make(orb.Collection, 0, n)
	for range n {
		child, err := readEntry(r)
		if err != nil {
			return nil, err
		}

		c = append(c, child)
	}

	return c, nil
}

func readEntry(r *cursor.Reader) (orb.Geometry, error) {
	length, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}

	if length < 1 || int(length) > r.Available() {
		return nil, fmt.Errorf("entry length %d at %d: %w", length, r.Position()-4, errs.ErrUnexpectedEOF)
	}

	start := r.Position()

	t, err := readTag(r)
	if err != nil {
		return nil, err
	}

	var child orb.Geometry
	switch t {
	case format.TypePoint:
		child, err = readPoint(r)
	case format.TypeEnvelope:
		var env envelope.Envelope
		env, err = readBounds(r)
		if err == nil {
			child = env.Polygon()
		}
	default:
		child, err = readBody(r, t)
	}

	if err != nil {
		return nil, err
	}

	if r.Position()-start != int(length) {
		return nil, fmt.Errorf("entry consumed %d of %d bytes: %w", r.Position()-start, length, errs.ErrUnexpectedEOF)
	}

	return child, nil
}
