package compress

import (
	"fmt"
	"time"

	"github.com/arloliu/hhc/format"
	"github.com/arloliu/hhc/internal/errs"
)

// Compressor compresses a payload body.
//
// The returned slice is owned by the caller; the input is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a body produced by the matching Compressor.
//
// It returns an error when data is corrupted or was produced by another algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes a single compression run.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64

	// CompressionTimeNs is the time taken to compress the data
	CompressionTimeNs int64
}

// CompressionRatio returns compressed size / original size, or 0 for empty input.
//
// Values below 1.0 mean the payload shrank.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage.
// It is negative when compression made the payload larger.
func (s CompressionStats) SpaceSavings() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec returns the codec for compressionType.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Compressor instance for the specified type
//   - error: ErrInvalidCompression for an unknown type
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s compression %s", errs.ErrInvalidCompression, target, compressionType)
	}
}

// Measure compresses data with the codec for compressionType and reports statistics.
func Measure(compressionType format.CompressionType, data []byte) ([]byte, CompressionStats, error) {
	codec, err := CreateCodec(compressionType, "measured")
	if err != nil {
		return nil, CompressionStats{}, err
	}

	start := time.Now()
	compressed, err := codec.Compress(data)
	elapsed := time.Since(start)
	if err != nil {
		return nil, CompressionStats{}, err
	}

	return compressed, CompressionStats{
		Algorithm:         compressionType,
		OriginalSize:      int64(len(data)),
		CompressedSize:    int64(len(compressed)),
		CompressionTimeNs: elapsed.Nanoseconds(),
	}, nil
}
