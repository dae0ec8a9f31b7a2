package format

import "strings"

type (
	Variant         uint8
	CompressionType uint8
)

const (
	VariantSortable Variant = 0x1 // VariantSortable orders digits by ASCII value so encodings sort numerically.
	VariantLegacy   Variant = 0x2 // VariantLegacy orders digits 0-9, A-Z, a-z, then -_.~ for readable counting.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (v Variant) String() string {
	switch v {
	case VariantSortable:
		return "Sortable"
	case VariantLegacy:
		return "Legacy"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseVariant parses a case-insensitive variant name ("sortable" or "legacy").
func ParseVariant(name string) (Variant, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sortable", "":
		return VariantSortable, true
	case "legacy":
		return VariantLegacy, true
	default:
		return 0, false
	}
}

// ParseCompression parses a case-insensitive compression name ("none", "zstd", "s2" or "lz4").
func ParseCompression(name string) (CompressionType, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}
