package section

import (
	"github.com/jagill/geoserde/errs"
)

// Header represents the fixed-size header section at the start of a geometry blob.
type Header struct {
	// Count is the number of geometry records packed in the blob.
	Count uint32 // byte offset 4-7
	// IndexOffset is the byte offset to the start of the offset index section.
	IndexOffset uint32 // byte offset 8-11
	// PayloadOffset is the byte offset to the start of the (possibly
	// compressed) payload section. It records the offset after the index.
	PayloadOffset uint32 // byte offset 12-15

	// Flag is a packed field for various flags and the magic number.
	Flag Flag // byte offset 0-3

	// Bytes 16-31 are reserved and zero.
}

// NewHeader creates a new Header with default flags.
// The count and section offsets are set when the encoder finishes.
func NewHeader() *Header {
	return &Header{
		Flag:        NewFlag(),
		IndexOffset: IndexOffsetOffset,
	}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly 32 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 32 bytes, or flag validation errors
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// The Options field itself is always little-endian; it carries the
	// endianness bit for everything after it.
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.Reserved = data[2]
	h.Flag.CompressionType = data[3]

	engine := h.Flag.GetEndianEngine()

	h.Count = engine.Uint32(data[4:8])
	h.IndexOffset = engine.Uint32(data[8:12])
	h.PayloadOffset = engine.Uint32(data[12:16])

	return h.Flag.Validate()
}

// Bytes serializes the Header into a byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	engine := h.Flag.GetEndianEngine()

	// The Options field is always little-endian; it carries the endianness
	// bit for everything after it.
	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.Reserved
	b[3] = h.Flag.CompressionType
	engine.PutUint32(b[4:8], h.Count)
	engine.PutUint32(b[8:12], h.IndexOffset)
	engine.PutUint32(b[12:16], h.PayloadOffset)

	return b
}

// ParseHeader parses a Header from a byte slice that is at least HeaderSize bytes.
//
// Parameters:
//   - data: Byte slice containing the header (must be at least 32 bytes)
//
// Returns:
//   - Header: Parsed header struct
//   - error: ErrInvalidHeaderSize or flag validation errors
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
