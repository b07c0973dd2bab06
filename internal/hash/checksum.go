package hash

import "github.com/cespare/xxhash/v2"

// Checksum computes the xxHash64 of the given bytes.
// It guards the index and payload sections of packed geometry blobs.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
