package blob

import (
	"fmt"

	"github.com/jagill/geoserde/compress"
	"github.com/jagill/geoserde/errs"
	"github.com/jagill/geoserde/internal/hash"
	"github.com/jagill/geoserde/section"
)

// Decode parses and validates a packed geometry blob.
//
// The header is validated first (size, magic number, flags), then the
// trailing checksum when present, then the offset index, and finally the
// payload is decompressed. Offsets must start at zero, be strictly
// increasing, and end exactly at the decompressed payload length.
//
// Parameters:
//   - data: Encoded blob byte slice (from Encoder.Finish().Bytes() or storage)
//
// Returns:
//   - GeometryBlob: Decoded blob with O(1) access to every record
//   - error: Header, checksum, index, or decompression errors
func Decode(data []byte) (GeometryBlob, error) {
	header, err := section.ParseHeader(data)
	if err != nil {
		return GeometryBlob{}, err
	}

	engine := header.Flag.GetEndianEngine()

	end := len(data)
	if header.Flag.HasChecksum() {
		end -= section.ChecksumSize
		if end < section.HeaderSize {
			return GeometryBlob{}, errs.ErrInvalidHeaderSize
		}

		want := engine.Uint64(data[end:])
		if hash.Checksum(data[section.HeaderSize:end]) != want {
			return GeometryBlob{}, errs.ErrChecksumMismatch
		}
	}

	count := int(header.Count)
	indexStart := int(header.IndexOffset)
	payloadStart := int(header.PayloadOffset)

	if indexStart != section.HeaderSize ||
		payloadStart != indexStart+(count+1)*section.OffsetEntrySize ||
		payloadStart > end {
		return GeometryBlob{}, errs.ErrInvalidIndexSection
	}

	offsets := make([]uint32, count+1)
	for i := range offsets {
		offsets[i] = engine.Uint32(data[indexStart+i*section.OffsetEntrySize:])
	}

	codec, err := compress.GetCodec(header.Flag.Compression())
	if err != nil {
		return GeometryBlob{}, err
	}

	// The final index offset is the decompressed payload length, so the codec
	// can allocate the output buffer up front.
	payload, err := compress.DecompressSized(codec, data[payloadStart:end], int(offsets[count]))
	if err != nil {
		return GeometryBlob{}, fmt.Errorf("payload: %w", err)
	}

	if offsets[0] != 0 || offsets[count] != uint32(len(payload)) {
		return GeometryBlob{}, errs.ErrInvalidIndexSection
	}
	for i := 0; i < count; i++ {
		if offsets[i] >= offsets[i+1] {
			return GeometryBlob{}, errs.ErrInvalidIndexSection
		}
	}

	return GeometryBlob{
		flag:    header.Flag,
		offsets: offsets,
		payload: payload,
		data:    data,
	}, nil
}
