package compress

// ZstdCompressor provides Zstandard compression, the best ratio of the
// available codecs. Prefer it for payloads of a few hundred bytes or more.
//
// The default build uses the pure Go klauspost/compress implementation; building
// with cgo and the "gozstd" tag switches to valyala/gozstd. Both produce
// standard zstd frames and can decode each other's output.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
