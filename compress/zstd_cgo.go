//go:build cgo && gozstd

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"
)

// zstdLevel matches the pure Go build's SpeedBestCompression closely enough for payloads.
const zstdLevel = 19

// Compress compresses data into a single zstd frame.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, zstdLevel), nil
}

// Decompress decodes zstd frames.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decompressed, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return decompressed, nil
}
