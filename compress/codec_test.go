package compress

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jagill/geoserde/format"
)

// coordinatePayload builds a payload resembling packed geometry records:
// long runs of little-endian doubles.
func coordinatePayload(n int) []byte {
	buf := make([]byte, 0, n*16)
	for i := range n {
		x := math.Float64bits(float64(i) * 0.5)
		y := math.Float64bits(float64(i) * -0.25)
		for s := 0; s < 64; s += 8 {
			buf = append(buf, byte(x>>s))
		}
		for s := 0; s < 64; s += 8 {
			buf = append(buf, byte(y>>s))
		}
	}

	return buf
}

func TestCodecs_RoundTrip(t *testing.T) {
	payload := coordinatePayload(500)

	compressions := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, compression := range compressions {
		t.Run(compression.String(), func(t *testing.T) {
			codec, err := GetCodec(compression)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			assert.True(t, bytes.Equal(payload, decompressed))
		})
	}
}

// The blob decoder hands codecs the exact decompressed size from the offset
// index; the sized path must agree with the adaptive one.
func TestCodecs_DecompressSized(t *testing.T) {
	payload := coordinatePayload(500)

	compressions := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, compression := range compressions {
		t.Run(compression.String(), func(t *testing.T) {
			codec, err := GetCodec(compression)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			decompressed, err := DecompressSized(codec, compressed, len(payload))
			require.NoError(t, err)
			assert.True(t, bytes.Equal(payload, decompressed))
		})
	}
}

func TestCreateCodec_Invalid(t *testing.T) {
	_, err := CreateCodec(format.CompressionType(0x0F), "payload")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "payload")
}

func TestGetCodec_Invalid(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0))
	require.Error(t, err)
}

func TestNoOp_Passthrough(t *testing.T) {
	codec := NewNoOpCompressor()
	payload := []byte{1, 2, 3}

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	assert.Equal(t, payload, compressed)

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, payload, decompressed)
}

func TestZstd_RejectsCorruptInput(t *testing.T) {
	codec := NewZstdCompressor()

	_, err := codec.Decompress([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	require.Error(t, err)
}
