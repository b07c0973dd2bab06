package section

const (
	// Bit masks for the Options field
	ChecksumMask    = 0x0001 // Mask for checksum bit (bit 0)
	EndiannessMask  = 0x0002 // Mask for endianness bit (bit 1)
	MagicNumberMask = 0xFFF0 // Mask for magic number (bits 4-15)

	// Magic numbers (bits 4-15)
	MagicGeometryV1Opt = 0xEC10 // MagicGeometryV1Opt is the version 1 magic number for the geometry blob format.
)

// offset and section sizes in the blob
const (
	HeaderSize        = 32         // fixed header size in bytes
	IndexOffsetOffset = HeaderSize // byte offset where the offset index section starts
	OffsetEntrySize   = 4          // each index entry is one uint32 payload offset
	ChecksumSize      = 8          // trailing xxHash64 checksum when enabled
)
