package cursor

import (
	"math"

	"github.com/jagill/geoserde/endian"
	"github.com/jagill/geoserde/internal/pool"
)

// Writer builds a serialized record in a pooled, geometrically growing buffer.
//
// Writes always succeed; the buffer grows as needed. PatchInt32 backpatches a
// previously reserved length slot, which is how collection entries record the
// size of a child after its body has been emitted.
//
// A Writer must be finished with either Detach (to take ownership of the
// bytes) or Release (to discard them). It is not safe for concurrent use.
type Writer struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
}

// NewWriter creates a Writer backed by a pooled record buffer.
func NewWriter() *Writer {
	return &Writer{
		buf:    pool.GetRecordBuffer(),
		engine: endian.GetLittleEndianEngine(),
	}
}

// WriteByte appends a single byte.
func (w *Writer) WriteByte(b byte) {
	w.buf.B = append(w.buf.B, b)
}

// WriteInt32 appends a little-endian signed 32-bit integer.
func (w *Writer) WriteInt32(v int32) {
	w.buf.B = w.engine.AppendUint32(w.buf.B, uint32(v))
}

// WriteFloat64 appends a little-endian IEEE-754 double.
func (w *Writer) WriteFloat64(v float64) {
	w.buf.B = w.engine.AppendUint64(w.buf.B, math.Float64bits(v))
}

// Append appends raw bytes.
func (w *Writer) Append(data []byte) {
	w.buf.MustWrite(data)
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Bytes returns the bytes written so far. The slice is only valid until the
// next write; callers that need to keep the data should use Detach.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// PatchInt32 overwrites the 4 bytes at pos with a little-endian signed 32-bit
// integer. The slot must have been written earlier.
// Panics if pos is out of range; the codec always reserves the slot first.
func (w *Writer) PatchInt32(pos int, v int32) {
	w.engine.PutUint32(w.buf.Slice(pos, pos+4), uint32(v))
}

// Detach copies the written bytes into an exact-size owned slice, returns the
// backing buffer to the pool, and leaves the Writer unusable.
func (w *Writer) Detach() []byte {
	out := make([]byte, w.buf.Len())
	copy(out, w.buf.B)
	pool.PutRecordBuffer(w.buf)
	w.buf = nil

	return out
}

// Release returns the backing buffer to the pool without copying.
// Safe to call after Detach.
func (w *Writer) Release() {
	if w.buf == nil {
		return
	}

	pool.PutRecordBuffer(w.buf)
	w.buf = nil
}
