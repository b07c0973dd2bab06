package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		sum  uint64
	}{
		{"empty", nil, 0xef46db3751d8e999},
		{"short", []byte("test"), 0x4fdcca5ddb678139},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sum, Checksum(tt.data))
		})
	}
}

func TestChecksum_Deterministic(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4, 5, 6, 7}

	assert.Equal(t, Checksum(data), Checksum(data))
	assert.NotEqual(t, Checksum(data), Checksum(data[:7]))
}

func BenchmarkChecksum(b *testing.B) {
	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte(i)
	}
	b.ResetTimer()
	for b.Loop() {
		Checksum(data)
	}
}
