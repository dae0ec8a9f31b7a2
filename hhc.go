// Package hhc encodes integers into the most compact form that can be placed in
// a URL without escaping.
//
// HHC (hexahexacontadecimal) is base 66, the number of unreserved URL
// characters defined by RFC 3986. Arbitrarily large integers are supported.
//
// # Core Features
//
//   - Sortable encoding (the default): equal-width strings sort like the numbers they encode
//   - Legacy encoding: 0-9, A-Z, a-z, then -_.~, compatible with older data
//   - Width padding and "." / ".." avoidance for safe URL path segments
//   - Negative numbers with a ',' sign prefix that keeps sort order across zero
//   - Binary payload and identifier helpers in the payload and id packages
//
// # Basic Usage
//
//	n, _ := new(big.Int).SetString("302231454903657293676544", 10)
//	hhc.Encode(n)                                // "fDpEShMz-qput"
//	hhc.EncodeInt64(-67)                         // ",zz"
//	hhc.EncodeLegacy(big.NewInt(66))             // "10"
//	hhc.SortableEncode(big.NewInt(67), 3, false) // "-.."
//
//	n, err := hhc.Decode("fDpEShMz-qput")
//
// # Package Structure
//
// This package wraps the codec package for the common cases. Use codec
// directly for custom widths, alphabets or fixed-size integer decoding.
package hhc

import (
	"math/big"
	"strings"

	"github.com/arloliu/hhc/codec"
	"github.com/arloliu/hhc/endian"
)

// Encode returns the sortable HHC representation of n, avoiding "." and "..".
func Encode(n *big.Int) string {
	return codec.Sortable.Encode(n)
}

// Decode parses a sortable HHC string.
//
// Returns an error wrapping ErrInvalidFormat if s is empty, has a doubled sign,
// or contains a character outside the sortable alphabet.
func Decode(s string) (*big.Int, error) {
	return codec.Sortable.Decode(s)
}

// SortableEncode returns the sortable HHC representation of n left-padded to
// width characters (0 for no padding).
//
// Unless allowSpecial is true, the path segments "." and ".." are never
// produced; width must then be at least codec.MinSafeWidth to keep every
// output the same length. It panics if width is negative.
//
// Parameters:
//   - n: The value to encode
//   - width: Minimum output width, including the sign of negative values
//   - allowSpecial: Whether "." and ".." may be produced
//
// Returns:
//   - string: The encoded value
func SortableEncode(n *big.Int, width int, allowSpecial bool) string {
	return codec.Sortable.WithWidth(width).WithAllowSpecial(allowSpecial).Encode(n)
}

// EncodeInt64 is Encode for an int64.
func EncodeInt64(v int64) string {
	return codec.Sortable.EncodeInt64(v)
}

// DecodeInt64 is Decode for values that fit in an int64.
// Returns an error wrapping ErrOverflow when they do not.
func DecodeInt64(s string) (int64, error) {
	return codec.Sortable.DecodeInt64(s)
}

// EncodeLegacy returns the legacy HHC representation of n.
//
// The legacy encoding allows "." and ".." and does not sort numerically.
// New code should prefer Encode.
func EncodeLegacy(n *big.Int) string {
	return codec.Legacy.Encode(n)
}

// DecodeLegacy parses a legacy HHC string.
func DecodeLegacy(s string) (*big.Int, error) {
	return codec.Legacy.Decode(s)
}

// IntToBytes returns the minimal big-endian bytes of |n|; zero is a single zero byte.
func IntToBytes(n *big.Int) []byte {
	return endian.IntToBytes(n)
}

// BytesToInt interprets b as an unsigned big-endian integer.
func BytesToInt(b []byte) *big.Int {
	return endian.BytesToInt(b)
}

// URLQuote percent-encodes s for use in a URL.
//
// Unreserved characters (A-Z, a-z, 0-9, "-", ".", "_" and "~") and any byte
// listed in safe are kept; everything else, including "/", becomes %XX with
// uppercase hex. Unlike url.PathEscape, the sign prefix ',' of negative
// encodings is escaped.
//
// Example:
//
//	hhc.URLQuote(hhc.EncodeInt64(-67), "") // "%2Czz"
//	hhc.URLQuote("a b~/", "/")            // "a%20b~/"
func URLQuote(s string, safe string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !keepByte(s[i], safe) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	const upperhex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if keepByte(c, safe) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0f])
	}

	return b.String()
}

func keepByte(c byte, safe string) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '.', c == '_', c == '~':
		return true
	default:
		return strings.IndexByte(safe, c) >= 0
	}
}
