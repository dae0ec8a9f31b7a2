package codec

import (
	"fmt"
	"math"
	"math/big"

	"github.com/arloliu/hhc/alphabet"
	"github.com/arloliu/hhc/internal/errs"
	"github.com/arloliu/hhc/internal/pool"
)

const (
	// chunkDigits is the number of base-66 digits that always fit in a uint64.
	chunkDigits = 10
	// maxQuotedInput bounds how much of a rejected input is echoed in errors.
	maxQuotedInput = 64
)

// pow66[k] is 66^k for k in [0, chunkDigits].
var pow66 = func() [chunkDigits + 1]uint64 {
	var p [chunkDigits + 1]uint64
	p[0] = 1
	for i := 1; i <= chunkDigits; i++ {
		p[i] = p[i-1] * alphabet.Base
	}

	return p
}()

var chunkDivisor = new(big.Int).SetUint64(pow66[chunkDigits])

// Encode returns the HHC representation of n. It never fails.
//
// Parameters:
//   - n: The value to encode; nil is treated as zero
//
// Returns:
//   - string: The encoded value, padded and special-avoided per the encoding's policy
func (e Encoding) Encode(n *big.Int) string {
	if n == nil {
		return e.EncodeUint64(0)
	}
	if n.IsUint64() {
		return e.EncodeUint64(n.Uint64())
	}
	if n.IsInt64() {
		return e.EncodeInt64(n.Int64())
	}

	buf := pool.GetDigitBuffer()
	defer pool.PutDigitBuffer(buf)

	if n.Sign() < 0 {
		appendBig(buf, new(big.Int).Neg(n), e.negDigits)
		e.finishNegative(buf)
	} else {
		appendBig(buf, n, e.digits)
		e.finishNonNegative(buf)
	}
	buf.Reverse()

	return buf.String()
}

// EncodeUint64 returns the HHC representation of v without allocating a big.Int.
func (e Encoding) EncodeUint64(v uint64) string {
	buf := pool.GetDigitBuffer()
	defer pool.PutDigitBuffer(buf)

	appendUint64(buf, v, e.digits)
	e.finishNonNegative(buf)
	buf.Reverse()

	return buf.String()
}

// EncodeInt64 returns the HHC representation of v without allocating a big.Int.
func (e Encoding) EncodeInt64(v int64) string {
	if v >= 0 {
		return e.EncodeUint64(uint64(v))
	}

	buf := pool.GetDigitBuffer()
	defer pool.PutDigitBuffer(buf)

	// -(v+1)+1 avoids overflowing on math.MinInt64
	appendUint64(buf, uint64(-(v+1))+1, e.negDigits)
	e.finishNegative(buf)
	buf.Reverse()

	return buf.String()
}

// Decode parses an HHC string.
//
// Leading zero digits, whether from width padding or special avoidance, do not
// change the value.
//
// Parameters:
//   - s: The encoded string
//
// Returns:
//   - *big.Int: The decoded value
//   - error: ErrInvalidFormat if s is empty, is a lone or doubled sign, or contains
//     a character outside the alphabet
func (e Encoding) Decode(s string) (*big.Int, error) {
	neg, digits, start, err := e.split(s)
	if err != nil {
		return nil, err
	}

	n := new(big.Int)
	var chunk big.Int
	for pos := start; pos < len(s); pos += chunkDigits {
		end := min(pos+chunkDigits, len(s))
		v, err := parseChunk(s, pos, end, digits)
		if err != nil {
			return nil, err
		}
		if pos == start {
			n.SetUint64(v)
			continue
		}
		n.Mul(n, chunk.SetUint64(pow66[end-pos]))
		n.Add(n, chunk.SetUint64(v))
	}

	if neg {
		n.Neg(n)
	}

	return n, nil
}

// DecodeUint64 parses an HHC string into a uint64.
//
// Returns ErrOverflow if the value is negative or exceeds math.MaxUint64.
// A negative zero decodes to 0.
func (e Encoding) DecodeUint64(s string) (uint64, error) {
	neg, digits, start, err := e.split(s)
	if err != nil {
		return 0, err
	}

	mag, err := parseUint64(s, start, digits)
	if err != nil {
		return 0, err
	}
	if neg && mag != 0 {
		return 0, fmt.Errorf("%w: negative value %s", errs.ErrOverflow, quoteInput(s))
	}

	return mag, nil
}

// DecodeInt64 parses an HHC string into an int64.
//
// Returns ErrOverflow if the value is outside [math.MinInt64, math.MaxInt64].
func (e Encoding) DecodeInt64(s string) (int64, error) {
	neg, digits, start, err := e.split(s)
	if err != nil {
		return 0, err
	}

	mag, err := parseUint64(s, start, digits)
	if err != nil {
		return 0, err
	}

	switch {
	case !neg && mag > math.MaxInt64:
		return 0, fmt.Errorf("%w: %s exceeds int64", errs.ErrOverflow, quoteInput(s))
	case !neg:
		return int64(mag), nil
	case mag > 1<<63:
		return 0, fmt.Errorf("%w: %s exceeds int64", errs.ErrOverflow, quoteInput(s))
	case mag == 1<<63:
		return math.MinInt64, nil
	default:
		return -int64(mag), nil //nolint:gosec
	}
}

// split validates the sign prefix and picks the digit alphabet for the magnitude.
func (e Encoding) split(s string) (neg bool, digits *alphabet.Alphabet, start int, err error) {
	if s == "" {
		return false, nil, 0, fmt.Errorf("%w: empty string", errs.ErrInvalidFormat)
	}
	if s[0] != alphabet.Sign {
		return false, e.digits, 0, nil
	}
	if len(s) == 1 {
		return false, nil, 0, fmt.Errorf("%w: sign without digits", errs.ErrInvalidFormat)
	}
	if s[1] == alphabet.Sign {
		return false, nil, 0, fmt.Errorf("%w: doubled sign prefix in %s", errs.ErrInvalidFormat, quoteInput(s))
	}

	return true, e.negDigits, 1, nil
}

// appendUint64 writes the digits of v, least significant first.
func appendUint64(buf *pool.DigitBuffer, v uint64, digits *alphabet.Alphabet) {
	if v == 0 {
		_ = buf.WriteByte(digits.Zero())
		return
	}
	appendDigits(buf, v, digits, 0)
}

// appendBig writes the digits of a positive n, least significant first.
// Each division by 66^10 yields a full ten-digit chunk, expanded in uint64 arithmetic.
func appendBig(buf *pool.DigitBuffer, n *big.Int, digits *alphabet.Alphabet) {
	if n.IsUint64() {
		appendUint64(buf, n.Uint64(), digits)
		return
	}

	buf.Grow(n.BitLen()/6 + 2)

	q := new(big.Int).Set(n)
	r := new(big.Int)
	for !q.IsUint64() {
		q.QuoRem(q, chunkDivisor, r)
		appendDigits(buf, r.Uint64(), digits, chunkDigits)
	}
	appendDigits(buf, q.Uint64(), digits, 0)
}

// appendDigits writes at least minDigits digits of v, least significant first.
func appendDigits(buf *pool.DigitBuffer, v uint64, digits *alphabet.Alphabet, minDigits int) {
	for written := 0; v > 0 || written < minDigits; written++ {
		_ = buf.WriteByte(digits.Digit(int(v % alphabet.Base)))
		v /= alphabet.Base
	}
}

// parseChunk folds s[start:end] (at most chunkDigits characters) into a uint64.
func parseChunk(s string, start, end int, digits *alphabet.Alphabet) (uint64, error) {
	var v uint64
	for i := start; i < end; i++ {
		d := digits.Index(s[i])
		if d < 0 {
			return 0, invalidChar(s, i)
		}
		v = v*alphabet.Base + uint64(d)
	}

	return v, nil
}

func parseUint64(s string, start int, digits *alphabet.Alphabet) (uint64, error) {
	var v uint64
	for i := start; i < len(s); i++ {
		d := digits.Index(s[i])
		if d < 0 {
			return 0, invalidChar(s, i)
		}
		if v > (math.MaxUint64-uint64(d))/alphabet.Base {
			return 0, fmt.Errorf("%w: %s exceeds uint64", errs.ErrOverflow, quoteInput(s))
		}
		v = v*alphabet.Base + uint64(d)
	}

	return v, nil
}

func invalidChar(s string, pos int) error {
	return fmt.Errorf("%w: invalid character %q at position %d in %s", errs.ErrInvalidFormat, s[pos], pos, quoteInput(s))
}

func quoteInput(s string) string {
	if len(s) > maxQuotedInput {
		return fmt.Sprintf("%q...", s[:maxQuotedInput])
	}

	return fmt.Sprintf("%q", s)
}
