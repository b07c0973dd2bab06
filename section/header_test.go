package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jagill/geoserde/errs"
	"github.com/jagill/geoserde/format"
)

func TestHeader_RoundTrip(t *testing.T) {
	h := NewHeader()
	h.Count = 12
	h.IndexOffset = IndexOffsetOffset
	h.PayloadOffset = IndexOffsetOffset + 13*OffsetEntrySize
	h.Flag.SetCompression(format.CompressionS2)

	data := h.Bytes()
	require.Len(t, data, HeaderSize)

	parsed, err := ParseHeader(data)
	require.NoError(t, err)

	assert.Equal(t, h.Count, parsed.Count)
	assert.Equal(t, h.IndexOffset, parsed.IndexOffset)
	assert.Equal(t, h.PayloadOffset, parsed.PayloadOffset)
	assert.Equal(t, format.CompressionS2, parsed.Flag.Compression())
	assert.True(t, parsed.Flag.HasChecksum())
	assert.True(t, parsed.Flag.IsLittleEndian())
}

func TestHeader_RoundTripBigEndian(t *testing.T) {
	h := NewHeader()
	h.Flag.WithBigEndian()
	h.Count = 0x01020304

	parsed, err := ParseHeader(h.Bytes())
	require.NoError(t, err)

	assert.True(t, parsed.Flag.IsBigEndian())
	assert.Equal(t, uint32(0x01020304), parsed.Count)
}

func TestHeader_InvalidSize(t *testing.T) {
	_, err := ParseHeader(make([]byte, HeaderSize-1))
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
}

func TestHeader_InvalidMagic(t *testing.T) {
	h := NewHeader()
	data := h.Bytes()
	data[1] ^= 0xF0

	_, err := ParseHeader(data)
	require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)
}

func TestHeader_InvalidCompression(t *testing.T) {
	h := NewHeader()
	h.Flag.CompressionType = 0x0F

	_, err := ParseHeader(h.Bytes())
	require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)
}

func TestFlag_Defaults(t *testing.T) {
	flag := NewFlag()

	assert.True(t, flag.IsValidMagicNumber())
	assert.True(t, flag.IsLittleEndian())
	assert.True(t, flag.HasChecksum())
	assert.Equal(t, format.CompressionNone, flag.Compression())
	require.NoError(t, flag.Validate())
}

func TestFlag_ChecksumBit(t *testing.T) {
	flag := NewFlag()

	flag.SetChecksum(false)
	assert.False(t, flag.HasChecksum())

	flag.SetChecksum(true)
	assert.True(t, flag.HasChecksum())
	assert.True(t, flag.IsValidMagicNumber()) // magic bits untouched
}
