package codec

import (
	"github.com/arloliu/hhc/alphabet"
	"github.com/arloliu/hhc/internal/pool"
)

// MinSafeWidth is the smallest width that keeps special avoidance from
// widening an encoding past its neighbours.
const MinSafeWidth = 3

// isSpecial reports whether the digits form "." or "..", the current and parent
// directory path segments. Both are palindromes, so the check works on the
// least-significant-first buffer.
func isSpecial(b []byte) bool {
	switch len(b) {
	case 1:
		return b[0] == '.'
	case 2:
		return b[0] == '.' && b[1] == '.'
	default:
		return false
	}
}

// finishNonNegative applies special avoidance and then width padding to the
// unsigned digits in buf, which is still least significant first.
func (e Encoding) finishNonNegative(buf *pool.DigitBuffer) {
	zero := e.digits.Zero()
	if !e.allowSpecial && isSpecial(buf.B) {
		_ = buf.WriteByte(zero)
	}
	if e.width > 0 {
		buf.Fill(zero, e.width)
	}
}

// finishNegative pads the magnitude to width-1 and appends the sign. The sign
// prefix already keeps the result from being a special path segment.
func (e Encoding) finishNegative(buf *pool.DigitBuffer) {
	if e.width > 1 {
		buf.Fill(e.negDigits.Zero(), e.width-1)
	}
	_ = buf.WriteByte(alphabet.Sign)
}
