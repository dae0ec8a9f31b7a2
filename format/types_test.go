package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVariant_String(t *testing.T) {
	require.Equal(t, "Sortable", VariantSortable.String())
	require.Equal(t, "Legacy", VariantLegacy.String())
	require.Equal(t, "Unknown", Variant(0).String())
}

func TestCompressionType_String(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(0xF).String())
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in   string
		want Variant
		ok   bool
	}{
		{"", VariantSortable, true},
		{"sortable", VariantSortable, true},
		{" Legacy ", VariantLegacy, true},
		{"base64", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseVariant(tt.in)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseCompression(t *testing.T) {
	tests := []struct {
		in   string
		want CompressionType
		ok   bool
	}{
		{"", CompressionNone, true},
		{"none", CompressionNone, true},
		{"ZSTD", CompressionZstd, true},
		{"s2", CompressionS2, true},
		{"lz4", CompressionLZ4, true},
		{"gzip", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseCompression(tt.in)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}
