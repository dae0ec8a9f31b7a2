package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4.Compressor keeps a hash table that is worth reusing.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// maxLZ4Output bounds decompression of untrusted blocks.
const maxLZ4Output = 16 << 20

// LZ4Compressor provides LZ4 block compression.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data as one LZ4 block using a pooled compressor.
// The destination is sized with CompressBlockBound, so incompressible input
// is stored as literals rather than rejected.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decodes one LZ4 block.
//
// The block format does not record the original size, so the output buffer
// starts at 4x the input and doubles on ErrInvalidSourceShortBuffer, up to
// maxLZ4Output.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	for bufSize := len(data) * 4; ; bufSize *= 2 {
		if bufSize > maxLZ4Output {
			bufSize = maxLZ4Output
		}

		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) || bufSize == maxLZ4Output {
			return nil, err
		}
	}
}
