// Package cursor provides little-endian byte cursors for the geometry record
// codec: a random-access Reader over an immutable byte slice and a growable
// Writer with length backpatching.
//
// All multi-byte values are little-endian; that is the single byte order of
// the wire format and is not configurable.
package cursor

import (
	"fmt"
	"math"

	"github.com/jagill/geoserde/endian"
	"github.com/jagill/geoserde/errs"
)

// Reader is a scoped view over an immutable byte slice plus a mutable position.
//
// Every read advances the position; reads past the end of the slice return
// errs.ErrUnexpectedEOF and leave the position unchanged. The Reader never
// copies or modifies the underlying data.
type Reader struct {
	data   []byte
	pos    int
	engine endian.EndianEngine
}

// NewReader creates a Reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{
		data:   data,
		engine: endian.GetLittleEndianEngine(),
	}
}

// ReadByte reads a single byte and advances the position.
func (r *Reader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, fmt.Errorf("read byte at %d: %w", r.pos, errs.ErrUnexpectedEOF)
	}

	b := r.data[r.pos]
	r.pos++

	return b, nil
}

// ReadInt32 reads a little-endian signed 32-bit integer.
func (r *Reader) ReadInt32() (int32, error) {
	if r.pos+4 > len(r.data) {
		return 0, fmt.Errorf("read int32 at %d: %w", r.pos, errs.ErrUnexpectedEOF)
	}

	v := r.engine.Uint32(r.data[r.pos : r.pos+4])
	r.pos += 4

	return int32(v), nil
}

// ReadFloat64 reads a little-endian IEEE-754 double.
func (r *Reader) ReadFloat64() (float64, error) {
	if r.pos+8 > len(r.data) {
		return 0, fmt.Errorf("read float64 at %d: %w", r.pos, errs.ErrUnexpectedEOF)
	}

	bits := r.engine.Uint64(r.data[r.pos : r.pos+8])
	r.pos += 8

	return math.Float64frombits(bits), nil
}

// Skip advances the position by n bytes.
func (r *Reader) Skip(n int) error {
	if n < 0 || r.pos+n > len(r.data) {
		return fmt.Errorf("skip %d at %d: %w", n, r.pos, errs.ErrUnexpectedEOF)
	}

	r.pos += n

	return nil
}

// Seek moves the position to pos.
func (r *Reader) Seek(pos int) error {
	if pos < 0 || pos > len(r.data) {
		return fmt.Errorf("seek to %d: %w", pos, errs.ErrUnexpectedEOF)
	}

	r.pos = pos

	return nil
}

// Available returns the number of unread bytes.
func (r *Reader) Available() int {
	return len(r.data) - r.pos
}

// Position returns the current read position.
func (r *Reader) Position() int {
	return r.pos
}

// Slice returns the n bytes starting at pos without moving the cursor.
// The returned slice aliases the underlying data.
func (r *Reader) Slice(pos, n int) ([]byte, error) {
	if pos < 0 || n < 0 || pos+n > len(r.data) {
		return nil, fmt.Errorf("slice [%d:%d]: %w", pos, pos+n, errs.ErrUnexpectedEOF)
	}

	return r.data[pos : pos+n], nil
}
