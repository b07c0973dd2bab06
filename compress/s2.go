package compress

import "github.com/klauspost/compress/s2"

// S2Compressor compresses blob payloads with S2, the Snappy-compatible
// format from klauspost/compress. Balanced ratio and speed.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)
var _ SizedDecompressor = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses the input data using S2 compression.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decompresses the input data using S2 decompression.
// S2 blocks record their decompressed length, so no sizing hint is needed.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}

// DecompressSized decompresses into a buffer preallocated to the known size.
func (c S2Compressor) DecompressSized(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(make([]byte, size), data)
}
