package compress

// ZstdCompressor provides Zstandard compression for geometry blob payloads.
//
// Zstd gives the best compression ratio of the supported codecs, at moderate
// speed. Use it for cold storage and archival of geometry columns, or when
// payloads travel over constrained links. Two implementations are provided:
// a pure-Go one (default) and a cgo one behind the gozstd build tag.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
