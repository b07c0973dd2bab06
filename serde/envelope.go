package serde

import (
	"github.com/jagill/geoserde/cursor"
	"github.com/jagill/geoserde/envelope"
	"github.com/jagill/geoserde/format"
)

// DeserializeEnvelope recovers the bounding envelope of a serialized value
// without materializing vertices.
//
// Point records yield the degenerate (x, y, x, y) envelope, or the empty
// envelope when either coordinate is NaN. Every other record stores its
// envelope in the 32 bytes after the tag, so the cost is constant regardless
// of vertex count: at most 33 bytes are read and the body is never parsed or
// validated.
func DeserializeEnvelope(data []byte) (envelope.Envelope, error) {
	r := cursor.NewReader(data)

	t, err := readTag(r)
	if err != nil {
		return envelope.Empty(), err
	}

	if t == format.TypePoint {
		x, err := r.ReadFloat64()
		if err != nil {
			return envelope.Empty(), err
		}

		y, err := r.ReadFloat64()
		if err != nil {
			return envelope.Empty(), err
		}

		return envelope.OfPoint(x, y), nil
	}

	return readBounds(r)
}
