// Package compress provides compression and decompression codecs for packed
// geometry blob payloads.
//
// Compression applies to a blob's payload section as a unit, after the
// individual geometry records have been encoded; the blob header and offset
// index stay readable without decompression. Serialized geometry payloads
// carry long runs of doubles (coordinates and redundant envelope prefixes),
// which general-purpose codecs shrink well.
//
// Supported algorithms:
//   - None: no compression (fastest, largest)
//   - Zstd: excellent compression ratio, moderate speed
//   - S2: balanced compression and speed
//   - LZ4: fast decompression, moderate compression
package compress

import (
	"fmt"

	"github.com/jagill/geoserde/format"
)

// Compressor compresses a complete payload.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is owned by the caller; it is newly allocated except
	//     for NoOpCompressor, which returns the input slice itself
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses Compress.
//
// Thread Safety: Decompressor implementations must be safe for concurrent use
// or document their thread safety requirements clearly.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// The input must have been compressed with the same algorithm. The
	// decompressor validates the data format and returns an error if the data
	// is corrupted or uses an incompatible format.
	//
	// Memory management:
	//   - Returned slice is owned by the caller; it is newly allocated except
	//     for NoOpCompressor, which returns the input slice itself
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// SizedDecompressor is implemented by codecs that can exploit a known
// decompressed size. Blob payloads always know theirs: the offset index ends
// with the decompressed payload length, so the blob decoder prefers this path
// to skip adaptive buffer sizing.
type SizedDecompressor interface {
	// DecompressSized decompresses data whose decompressed size is exactly size.
	DecompressSized(data []byte, size int) ([]byte, error)
}

// DecompressSized decompresses with the sized path when codec supports it,
// falling back to plain Decompress otherwise.
func DecompressSized(codec Codec, data []byte, size int) ([]byte, error) {
	if sized, ok := codec.(SizedDecompressor); ok {
		return sized.DecompressSized(data, size)
	}

	return codec.Decompress(data)
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Compressor instance for the specified type
//   - error: Invalid compression type error
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
