package blob

import (
	"fmt"

	"github.com/jagill/geoserde/format"
	"github.com/jagill/geoserde/internal/options"
)

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*Encoder]

// WithCompression sets the payload compression codec.
//
// Compression applies to the payload section as a whole; the header and
// offset index are never compressed.
func WithCompression(compression format.CompressionType) EncoderOption {
	return options.New(func(e *Encoder) error {
		switch compression {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			e.flag.SetCompression(compression)
			return nil
		default:
			return fmt.Errorf("invalid payload compression: %s", compression)
		}
	})
}

// WithChecksum enables or disables the trailing xxHash64 checksum over the
// index and payload sections. Enabled by default.
func WithChecksum(enabled bool) EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.flag.SetChecksum(enabled)
	})
}

// WithLittleEndian sets little-endian byte order for the header and index.
// This is the default. Record payloads are always little-endian regardless.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.flag.WithLittleEndian()
	})
}

// WithBigEndian sets big-endian byte order for the header and index.
func WithBigEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.flag.WithBigEndian()
	})
}
