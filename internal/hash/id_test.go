package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
		{"long string", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, ID(tt.data))
		})
	}
}

func TestChecksum32(t *testing.T) {
	h := uint64(0x4fdcca5ddb678139)
	want := uint32(h>>32) ^ uint32(h)

	require.Equal(t, want, Checksum32([]byte("test")))
	require.NotEqual(t, Checksum32([]byte("test")), Checksum32([]byte("tesu")))
}

func BenchmarkChecksum32(b *testing.B) {
	data := []byte("fDpEShMz-qput fDpEShMz-qput")
	for i := 0; i < b.N; i++ {
		Checksum32(data)
	}
}
