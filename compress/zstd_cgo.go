//go:build gozstd

package compress

import (
	"github.com/valyala/gozstd"
)

var _ SizedDecompressor = (*ZstdCompressor)(nil)

// Compress compresses the input data using the cgo Zstandard bindings.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress decompresses Zstd-compressed data.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}

// DecompressSized decompresses into a buffer preallocated to the known size.
func (c ZstdCompressor) DecompressSized(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(make([]byte, 0, size), data)
}
