//go:build !gozstd

package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Pooled zstd coders. klauspost/compress is designed for coder reuse: after a
// warmup both encoder and decoder operate without allocations, so pooling
// them takes the setup cost off the per-blob path. EncodeAll/DecodeAll are
// stateless, which makes pooled instances safe to share this way.
var (
	zstdEncoderPool = sync.Pool{
		New: func() any {
			encoder, err := zstd.NewWriter(nil,
				zstd.WithEncoderLevel(zstd.SpeedDefault),
				zstd.WithEncoderCRC(false), // blob carries its own checksum
			)
			if err != nil {
				panic(fmt.Sprintf("zstd encoder options rejected: %v", err))
			}
			return encoder
		},
	}

	zstdDecoderPool = sync.Pool{
		New: func() any {
			decoder, err := zstd.NewReader(nil,
				zstd.WithDecoderConcurrency(1),
				zstd.WithDecoderLowmem(false),
			)
			if err != nil {
				panic(fmt.Sprintf("zstd decoder options rejected: %v", err))
			}
			return decoder
		},
	}
)

var _ SizedDecompressor = (*ZstdCompressor)(nil)

// Compress compresses the input data with Zstandard.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	encoder := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	return encoder.EncodeAll(data, nil), nil
}

// Decompress decompresses Zstd-compressed data, validating the frame format.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	return c.decodeAll(data, nil)
}

// DecompressSized decompresses into a buffer preallocated to the known
// decompressed size, avoiding growth reallocations on large payloads.
func (c ZstdCompressor) DecompressSized(data []byte, size int) ([]byte, error) {
	return c.decodeAll(data, make([]byte, 0, size))
}

func (c ZstdCompressor) decodeAll(data, dst []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	out, err := decoder.DecodeAll(data, dst)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return out, nil
}
