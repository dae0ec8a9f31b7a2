// Package codec implements HHC, a base-66 numeral system whose digits are the
// 66 unreserved URL characters.
//
// Any integer, of any size, encodes to the shortest possible URL-safe string,
// and decodes back exactly:
//
//	s := codec.Sortable.Encode(big.NewInt(6700)) // ".XW"
//	n, err := codec.Sortable.Decode(s)           // 6700, nil
//
// # Encodings
//
// An Encoding is a small value type bundling a digit alphabet with the
// rendering policy. Two are predefined:
//
//   - Sortable: digits in ASCII order ("-", ".", 0-9, A-Z, "_", a-z, "~").
//     Equal-length encodings sort the same way as the numbers they encode,
//     including negative numbers. The special path segments "." and ".."
//     are never produced unless explicitly allowed.
//   - Legacy: digits 0-9, A-Z, a-z, "-", "_", ".", "~". Counting looks
//     natural (66 is "10") but strings do not sort numerically. Kept for
//     compatibility with data produced by earlier versions.
//
// Derived encodings are created with the With* methods or NewEncoding:
//
//	fixed := codec.Sortable.WithWidth(5)
//	fixed.Encode(big.NewInt(67))  // "---.."
//	fixed.Encode(big.NewInt(-67)) // ",~~zz"
//
// # Negative numbers
//
// Negative values are prefixed with ',' which is not URL-safe, so callers
// placing such strings in URLs must percent-encode them. The Sortable
// encoding writes the magnitude of a negative number with the digit order
// reversed, which makes larger magnitudes sort first, so ascending string
// order matches ascending numeric order across zero. The Legacy encoding
// keeps its digit order for negative numbers.
//
// A sign followed only by the zero digit of the negative alphabet (",~" for
// Sortable, ",0" for Legacy) decodes to zero. A doubled sign is rejected.
//
// # Width and sortability
//
// Strings only sort numerically when they have equal length. With a width,
// the encoder left-pads with the zero digit; a negative number spends one
// character on its sign, so its magnitude is padded to width-1. The width
// must cover the largest value that will be encoded, and when special
// avoidance is active it must be at least 3, otherwise 1 and 67 would render
// one character wider than their neighbours.
//
// # Thread Safety
//
// Encodings are immutable; every method is safe for concurrent use.
package codec
