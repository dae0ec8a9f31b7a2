// Package compress provides the compression codecs applied to binary payloads
// before they are turned into HHC strings.
//
// Every HHC digit carries about 6.04 bits, so shrinking a payload first
// shortens the resulting URL token proportionally. Four codecs are available:
//
//   - None: pass-through, best for short or already compressed data
//   - Zstd: best ratio (klauspost/compress, or valyala/gozstd with the
//     "gozstd" build tag and cgo enabled)
//   - S2: fast Snappy-compatible compression (klauspost/compress)
//   - LZ4: fast block compression (pierrec/lz4)
//
// Select a codec by type with CreateCodec:
//
//	codec, err := compress.CreateCodec(format.CompressionZstd, "payload")
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(data)
//
// # Thread Safety
//
// All codecs are stateless values backed by pooled encoders and are safe
// for concurrent use.
package compress
