package section

import (
	"github.com/jagill/geoserde/endian"
	"github.com/jagill/geoserde/errs"
	"github.com/jagill/geoserde/format"
)

// Flag represents the packed field for various flags in the blob header.
type Flag struct {
	// Options is a packed field for various options.
	// Bit 0 is the checksum flag, 1 means the blob carries a trailing xxHash64.
	// Bit 1 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bit 2-3 are reserved for future use, must be set to 0.
	// Bit 4-15 are the magic number identifying the blob format:
	//   - 0xEC10 (0b1110_1100_0001_0000): Geometry blob format v1
	Options uint16

	// Reserved must be zero.
	Reserved uint8

	// CompressionType is an enum indicating the payload compression.
	CompressionType uint8
}

var validCompressions = map[uint8]struct{}{
	uint8(format.CompressionNone): {},
	uint8(format.CompressionZstd): {},
	uint8(format.CompressionS2):   {},
	uint8(format.CompressionLZ4):  {},
}

// NewFlag creates a new Flag with default settings: little-endian, checksum
// enabled, no compression.
func NewFlag() Flag {
	flag := Flag{
		Options:         MagicGeometryV1Opt,
		CompressionType: uint8(format.CompressionNone),
	}
	flag.WithLittleEndian()
	flag.SetChecksum(true)

	return flag
}

// HasChecksum returns whether the blob carries a trailing checksum.
func (f Flag) HasChecksum() bool {
	return (f.Options & ChecksumMask) != 0
}

// SetChecksum enables or disables the trailing checksum.
func (f *Flag) SetChecksum(enabled bool) {
	if enabled {
		f.Options |= ChecksumMask
	} else {
		f.Options &^= ChecksumMask
	}
}

// IsLittleEndian returns whether the data is little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the data is big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// Compression returns the payload compression type.
func (f Flag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression sets the payload compression type.
func (f *Flag) SetCompression(compression format.CompressionType) {
	f.CompressionType = uint8(compression)
}

// IsValidMagicNumber checks if the magic number is valid.
func (f Flag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicGeometryV1Opt
}

// IsValidCompression checks if the compression type is valid.
func (f Flag) IsValidCompression() bool {
	_, ok := validCompressions[f.CompressionType]
	return ok
}

// Validate checks if the flag header contains valid values.
func (f Flag) Validate() error {
	if !f.IsValidMagicNumber() {
		return errs.ErrInvalidMagicNumber
	}

	if !f.IsValidCompression() {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}

// GetEndianEngine returns the appropriate endian engine based on the flag.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}
