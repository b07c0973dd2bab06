package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4Pool reuses lz4.Compressor instances; the compressor keeps an internal
// hash table that benefits from reuse across payloads.
var lz4Pool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor compresses blob payloads with LZ4 block compression.
// Fast decompression, moderate ratio; a good fit for hot geometry columns.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)
var _ SizedDecompressor = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data as a single LZ4 block.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4Pool.Get().(*lz4.Compressor)
	defer lz4Pool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// DecompressSized decompresses a payload whose exact decompressed size is
// known, as it is for blob payloads where the offset index records it. The
// output buffer is allocated once with no retries.
func (c LZ4Compressor) DecompressSized(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	buf := make([]byte, size)
	n, err := lz4.UncompressBlock(data, buf)
	if err != nil {
		return nil, err
	}

	return buf[:n], nil
}

// Decompress decompresses an LZ4 block of unknown decompressed size.
//
// LZ4 blocks do not record their decompressed size, so the output buffer is
// sized adaptively: start at 4x the compressed size, double on
// ErrInvalidSourceShortBuffer, and give up past a 128MB limit so corrupt
// input cannot exhaust memory. Callers that know the size (the blob decoder)
// should use DecompressSized instead.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	const maxSize = 128 * 1024 * 1024

	for bufSize := len(data) * 4; bufSize <= maxSize; bufSize *= 2 {
		out, err := c.DecompressSized(data, bufSize)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
				continue
			}

			return nil, err
		}

		return out, nil
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}
