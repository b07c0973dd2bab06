package blob

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/jagill/geoserde/compress"
	"github.com/jagill/geoserde/errs"
	"github.com/jagill/geoserde/internal/hash"
	"github.com/jagill/geoserde/internal/options"
	"github.com/jagill/geoserde/internal/pool"
	"github.com/jagill/geoserde/section"
	"github.com/jagill/geoserde/serde"
)

// Encoder accumulates serialized geometry records and packs them into a
// GeometryBlob.
//
// Note: The Encoder is NOT thread-safe. Each encoder instance should be used
// by a single goroutine at a time.
//
// Note: The Encoder is NOT reusable. After calling Finish, a new encoder must
// be created for further encoding.
type Encoder struct {
	flag     section.Flag
	codec    compress.Codec
	offsets  []uint32
	payload  *pool.ByteBuffer
	finished bool
}

// NewEncoder creates a new Encoder with the given options.
//
// Defaults: no compression, checksum enabled, little-endian header and index.
//
// Returns:
//   - *Encoder: New encoder instance ready to accept geometries
//   - error: Invalid option error
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	e := &Encoder{
		flag:    section.NewFlag(),
		payload: pool.GetBlobBuffer(),
	}

	if err := options.Apply(e, opts...); err != nil {
		pool.PutBlobBuffer(e.payload)
		return nil, err
	}

	codec, err := compress.CreateCodec(e.flag.Compression(), "payload")
	if err != nil {
		pool.PutBlobBuffer(e.payload)
		return nil, err
	}
	e.codec = codec

	return e, nil
}

// Add serializes a geometry and appends the record to the blob.
func (e *Encoder) Add(g orb.Geometry) error {
	data, err := serde.Serialize(g)
	if err != nil {
		return err
	}

	return e.AddSerialized(data)
}

// AddSerialized appends an already serialized record to the blob.
// Only the type tag is validated; the body is treated as opaque bytes.
func (e *Encoder) AddSerialized(data []byte) error {
	if e.finished {
		return fmt.Errorf("add to finished encoder: %w", errs.ErrInternal)
	}

	if _, err := serde.GeometryTypeOf(data); err != nil {
		return err
	}

	if int64(e.payload.Len())+int64(len(data)) > math.MaxUint32 {
		return fmt.Errorf("payload exceeds 4GiB: %w", errs.ErrInvalidIndexSection)
	}

	e.offsets = append(e.offsets, uint32(e.payload.Len()))
	e.payload.MustWrite(data)

	return nil
}

// Count returns the number of records added so far.
func (e *Encoder) Count() int {
	return len(e.offsets)
}

// Finish compresses the payload, assembles the blob sections, and returns
// the packed GeometryBlob. The encoder cannot be used afterwards.
func (e *Encoder) Finish() (GeometryBlob, error) {
	if e.finished {
		return GeometryBlob{}, fmt.Errorf("finish called twice: %w", errs.ErrInternal)
	}
	e.finished = true

	count := len(e.offsets)
	raw := e.payload.Bytes()

	compressed, err := e.codec.Compress(raw)
	if err != nil {
		pool.PutBlobBuffer(e.payload)
		return GeometryBlob{}, err
	}

	header := section.Header{
		Flag:          e.flag,
		Count:         uint32(count),
		IndexOffset:   section.IndexOffsetOffset,
		PayloadOffset: section.IndexOffsetOffset + uint32(count+1)*section.OffsetEntrySize,
	}

	total := int(header.PayloadOffset) + len(compressed)
	if e.flag.HasChecksum() {
		total += section.ChecksumSize
	}

	engine := e.flag.GetEndianEngine()

	buf := make([]byte, 0, total)
	buf = append(buf, header.Bytes()...)
	for _, off := range e.offsets {
		buf = engine.AppendUint32(buf, off)
	}
	buf = engine.AppendUint32(buf, uint32(len(raw)))
	buf = append(buf, compressed...)

	if e.flag.HasChecksum() {
		sum := hash.Checksum(buf[section.HeaderSize:])
		buf = engine.AppendUint64(buf, sum)
	}

	// The pooled buffer may back the compressed slice (no-op codec), so the
	// blob keeps its own copy of the decompressed payload.
	payload := make([]byte, len(raw))
	copy(payload, raw)

	offsets := make([]uint32, count+1)
	copy(offsets, e.offsets)
	offsets[count] = uint32(len(raw))

	pool.PutBlobBuffer(e.payload)
	e.payload = nil

	return GeometryBlob{
		flag:    e.flag,
		offsets: offsets,
		payload: payload,
		data:    buf,
	}, nil
}
