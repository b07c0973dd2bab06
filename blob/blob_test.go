package blob

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jagill/geoserde/envelope"
	"github.com/jagill/geoserde/errs"
	"github.com/jagill/geoserde/extent"
	"github.com/jagill/geoserde/format"
	"github.com/jagill/geoserde/section"
	"github.com/jagill/geoserde/serde"
)

func testGeometries() []orb.Geometry {
	return []orb.Geometry{
		orb.Point{1, 2},
		serde.EmptyPoint(),
		orb.LineString{{0, 0}, {10, 0}, {10, 10}},
		orb.MultiPoint{{1, 1}, {2, 2}},
		orb.Polygon{{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}}},
		orb.Collection{serde.EmptyPoint(), orb.Point{3, 4}},
	}
}

func packGeometries(t *testing.T, opts ...EncoderOption) GeometryBlob {
	t.Helper()

	encoder, err := NewEncoder(opts...)
	require.NoError(t, err)

	for _, g := range testGeometries() {
		require.NoError(t, encoder.Add(g))
	}

	packed, err := encoder.Finish()
	require.NoError(t, err)

	return packed
}

func TestBlob_RoundTripAllCompressions(t *testing.T) {
	compressions := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, compression := range compressions {
		t.Run(compression.String(), func(t *testing.T) {
			packed := packGeometries(t, WithCompression(compression))
			require.Equal(t, compression, packed.Compression())

			decoded, err := Decode(packed.Bytes())
			require.NoError(t, err)
			require.Equal(t, len(testGeometries()), decoded.Count())

			for i, g := range testGeometries() {
				want, err := serde.Serialize(g)
				require.NoError(t, err)

				got, ok := decoded.At(i)
				require.True(t, ok)
				assert.Equal(t, want, got, "entry %d", i)
			}
		})
	}
}

func TestBlob_GeometryAt(t *testing.T) {
	decoded, err := Decode(packGeometries(t).Bytes())
	require.NoError(t, err)

	g, err := decoded.GeometryAt(2)
	require.NoError(t, err)
	assert.Equal(t, orb.LineString{{0, 0}, {10, 0}, {10, 10}}, g)

	_, err = decoded.GeometryAt(decoded.Count())
	require.ErrorIs(t, err, errs.ErrEntryOutOfRange)
}

func TestBlob_EnvelopeAt(t *testing.T) {
	decoded, err := Decode(packGeometries(t).Bytes())
	require.NoError(t, err)

	env, err := decoded.EnvelopeAt(0)
	require.NoError(t, err)
	assert.True(t, envelope.New(1, 2, 1, 2).Equal(env))

	env, err = decoded.EnvelopeAt(1)
	require.NoError(t, err)
	assert.True(t, env.IsEmpty())
}

func TestBlob_ExtentMatchesAggregator(t *testing.T) {
	decoded, err := Decode(packGeometries(t, WithCompression(format.CompressionS2)).Bytes())
	require.NoError(t, err)

	agg := extent.NewAggregator()
	for _, data := range decoded.All() {
		require.NoError(t, agg.Accumulate(data))
	}

	ext, err := decoded.Extent()
	require.NoError(t, err)
	assert.True(t, agg.Envelope().Equal(ext))
	assert.True(t, envelope.New(0, 0, 10, 10).Equal(ext))
}

func TestBlob_Empty(t *testing.T) {
	encoder, err := NewEncoder()
	require.NoError(t, err)

	packed, err := encoder.Finish()
	require.NoError(t, err)
	require.Equal(t, 0, packed.Count())

	decoded, err := Decode(packed.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 0, decoded.Count())

	ext, err := decoded.Extent()
	require.NoError(t, err)
	assert.True(t, ext.IsEmpty())
}

func TestBlob_ChecksumDetectsCorruption(t *testing.T) {
	packed := packGeometries(t)

	data := make([]byte, len(packed.Bytes()))
	copy(data, packed.Bytes())
	data[section.HeaderSize] ^= 0xFF

	_, err := Decode(data)
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)
}

func TestBlob_ChecksumDisabled(t *testing.T) {
	packed := packGeometries(t, WithChecksum(false))

	decoded, err := Decode(packed.Bytes())
	require.NoError(t, err)
	assert.Equal(t, len(testGeometries()), decoded.Count())
}

func TestBlob_BigEndianHeader(t *testing.T) {
	packed := packGeometries(t, WithBigEndian())

	decoded, err := Decode(packed.Bytes())
	require.NoError(t, err)
	require.Equal(t, len(testGeometries()), decoded.Count())

	g, err := decoded.GeometryAt(0)
	require.NoError(t, err)
	assert.Equal(t, orb.Point{1, 2}, g)
}

func TestDecode_InvalidMagic(t *testing.T) {
	packed := packGeometries(t)

	data := make([]byte, len(packed.Bytes()))
	copy(data, packed.Bytes())
	data[1] ^= 0xF0 // clobber the magic bits

	_, err := Decode(data)
	require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)
}

func TestDecode_TooShort(t *testing.T) {
	_, err := Decode(make([]byte, section.HeaderSize-1))
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
}

func TestEncoder_AddSerializedValidatesTag(t *testing.T) {
	encoder, err := NewEncoder()
	require.NoError(t, err)

	require.ErrorIs(t, encoder.AddSerialized([]byte{0xFF}), errs.ErrUnknownTag)
	require.ErrorIs(t, encoder.AddSerialized(nil), errs.ErrUnexpectedEOF)
	assert.Equal(t, 0, encoder.Count())
}

func TestEncoder_InvalidCompressionOption(t *testing.T) {
	_, err := NewEncoder(WithCompression(format.CompressionType(0x9)))
	require.Error(t, err)
}
