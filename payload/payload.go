// Package payload turns arbitrary binary data into a single HHC token and back.
//
// A payload is framed, read as one big-endian integer and encoded with an HHC
// encoding (Sortable by default):
//
//	+--------+----------------------+-------------------+
//	| header | body (maybe packed)  | checksum (opt.)   |
//	| 1 byte | N bytes              | 4 bytes, BE       |
//	+--------+----------------------+-------------------+
//
// The header's low nibble holds the format.CompressionType of the body, and
// bit 0x80 marks a trailing checksum (xxHash64 of the body folded to 32 bits).
// Compression types start at 1, so the header is never zero and leading
// zero bytes of the body survive the integer round trip.
//
// Example:
//
//	token, err := payload.Encode(data, payload.WithCompression(format.CompressionZstd))
//	...
//	data, err = payload.Decode(token)
package payload

import (
	"fmt"

	"github.com/arloliu/hhc/codec"
	"github.com/arloliu/hhc/compress"
	"github.com/arloliu/hhc/endian"
	"github.com/arloliu/hhc/format"
	"github.com/arloliu/hhc/internal/errs"
	"github.com/arloliu/hhc/internal/hash"
)

const (
	headerSize      = 1
	checksumSize    = 4
	checksumFlag    = 0x80
	compressionMask = 0x0f
	reservedMask    = 0x70
)

// Encode frames data and returns it as an HHC token.
//
// Parameters:
//   - data: The bytes to encode; may be empty
//   - opts: WithCompression, WithChecksum, WithVariant
//
// Returns:
//   - string: The HHC token
//   - error: ErrInvalidCompression / ErrInvalidVariant for bad options, or a compression failure
func Encode(data []byte, opts ...Option) (string, error) {
	token, _, err := EncodeWithStats(data, opts...)
	return token, err
}

// EncodeWithStats is like Encode and also reports how the body compressed.
func EncodeWithStats(data []byte, opts ...Option) (string, compress.CompressionStats, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return "", compress.CompressionStats{}, err
	}

	enc, err := codec.ForVariant(cfg.variant)
	if err != nil {
		return "", compress.CompressionStats{}, err
	}

	body, stats, err := compress.Measure(cfg.compression, data)
	if err != nil {
		return "", compress.CompressionStats{}, fmt.Errorf("compress payload: %w", err)
	}

	header := byte(cfg.compression)
	if cfg.checksum {
		header |= checksumFlag
	}

	frame := make([]byte, 0, headerSize+len(body)+checksumSize)
	frame = append(frame, header)
	frame = append(frame, body...)
	if cfg.checksum {
		frame = endian.GetBigEndianEngine().AppendUint32(frame, hash.Checksum32(body))
	}

	return enc.Encode(endian.BytesToInt(frame)), stats, nil
}

// Decode parses a token produced by Encode.
//
// Only WithVariant is relevant; compression and checksum presence are read from
// the frame header.
//
// Returns:
//   - []byte: The original data
//   - error: ErrInvalidFormat for a malformed token, ErrInvalidPayload for a malformed
//     frame, ErrInvalidCompression for an unknown compression type, or ErrChecksumMismatch
func Decode(token string, opts ...Option) ([]byte, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	enc, err := codec.ForVariant(cfg.variant)
	if err != nil {
		return nil, err
	}

	n, err := enc.Decode(token)
	if err != nil {
		return nil, err
	}
	if n.Sign() <= 0 {
		return nil, fmt.Errorf("%w: missing frame header", errs.ErrInvalidPayload)
	}

	frame := endian.IntToBytes(n)
	header := frame[0]
	if header&reservedMask != 0 {
		return nil, fmt.Errorf("%w: reserved header bits set in 0x%02x", errs.ErrInvalidPayload, header)
	}

	ct := format.CompressionType(header & compressionMask)
	cc, err := compress.CreateCodec(ct, "payload")
	if err != nil {
		return nil, err
	}

	body := frame[headerSize:]
	if header&checksumFlag != 0 {
		if len(body) < checksumSize {
			return nil, fmt.Errorf("%w: frame too short for checksum", errs.ErrInvalidPayload)
		}
		split := len(body) - checksumSize
		want := endian.GetBigEndianEngine().Uint32(body[split:])
		body = body[:split]
		if got := hash.Checksum32(body); got != want {
			return nil, fmt.Errorf("%w: got 0x%08x, want 0x%08x", errs.ErrChecksumMismatch, got, want)
		}
	}

	data, err := cc.Decompress(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
	}

	return data, nil
}
