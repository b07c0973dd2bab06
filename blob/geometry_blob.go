package blob

import (
	"iter"

	"github.com/paulmach/orb"

	"github.com/jagill/geoserde/envelope"
	"github.com/jagill/geoserde/errs"
	"github.com/jagill/geoserde/extent"
	"github.com/jagill/geoserde/format"
	"github.com/jagill/geoserde/section"
	"github.com/jagill/geoserde/serde"
)

// GeometryBlob holds packed serialized geometry records with O(1) access to
// each record's bytes.
//
// A GeometryBlob is immutable and safe for concurrent read-only use.
type GeometryBlob struct {
	flag    section.Flag
	offsets []uint32 // count+1 offsets into payload
	payload []byte   // decompressed record payload
	data    []byte   // full encoded blob
}

// Bytes returns the encoded blob, suitable for storage or Decode.
func (b GeometryBlob) Bytes() []byte {
	return b.data
}

// Count returns the number of records in the blob.
func (b GeometryBlob) Count() int {
	if len(b.offsets) == 0 {
		return 0
	}

	return len(b.offsets) - 1
}

// Compression returns the payload compression type.
func (b GeometryBlob) Compression() format.CompressionType {
	return b.flag.Compression()
}

// At returns the serialized record at index i.
// The slice aliases the blob's payload and must not be modified.
func (b GeometryBlob) At(i int) ([]byte, bool) {
	if i < 0 || i >= b.Count() {
		return nil, false
	}

	return b.payload[b.offsets[i]:b.offsets[i+1]], true
}

// GeometryAt decodes the record at index i into a geometry.
func (b GeometryBlob) GeometryAt(i int) (orb.Geometry, error) {
	data, ok := b.At(i)
	if !ok {
		return nil, errs.ErrEntryOutOfRange
	}

	return serde.Deserialize(data)
}

// EnvelopeAt recovers the envelope of the record at index i via the fast
// path, without materializing vertices.
func (b GeometryBlob) EnvelopeAt(i int) (envelope.Envelope, error) {
	data, ok := b.At(i)
	if !ok {
		return envelope.Empty(), errs.ErrEntryOutOfRange
	}

	return serde.DeserializeEnvelope(data)
}

// All returns an iterator over (index, record bytes) pairs.
func (b GeometryBlob) All() iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		for i := range b.Count() {
			if !yield(i, b.payload[b.offsets[i]:b.offsets[i+1]]) {
				return
			}
		}
	}
}

// Extent folds the envelopes of every record in the blob via the fast path.
// An empty blob, or one holding only empty geometries, has the empty extent.
func (b GeometryBlob) Extent() (envelope.Envelope, error) {
	agg := extent.NewAggregator()
	for _, data := range b.All() {
		if err := agg.Accumulate(data); err != nil {
			return envelope.Empty(), err
		}
	}

	return agg.Envelope(), nil
}
