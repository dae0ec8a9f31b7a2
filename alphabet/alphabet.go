// Package alphabet defines the 66-character digit tables used by HHC encodings.
//
// An Alphabet is an immutable bijection between digit values 0..65 and single
// ASCII characters. Two alphabets are predefined:
//
//   - Sortable: characters ordered by ASCII value, so equal-length encodings
//     compare lexicographically in the same order as the numbers they encode.
//   - Legacy: 0-9, A-Z, a-z, then "-_.~", so counting reads naturally.
//
// Both alphabets consist of the RFC 3986 unreserved characters. The sign
// character ',' is reserved and can never be part of an alphabet.
//
// Alphabets are safe for concurrent use.
package alphabet

import (
	"fmt"

	"github.com/arloliu/hhc/internal/errs"
)

// Base is the radix of every HHC alphabet.
const Base = 66

// Sign is the reserved prefix marking a negative value.
const Sign = ','

const (
	// SortableChars is the sortable digit order: "-", ".", 0-9, A-Z, "_", a-z, "~".
	SortableChars = "-.0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ_abcdefghijklmnopqrstuvwxyz~"

	// LegacyChars is the legacy digit order: 0-9, A-Z, a-z, "-", "_", ".", "~".
	LegacyChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-_.~"
)

var (
	// Sortable is the ASCII-ordered alphabet.
	Sortable = MustNew(SortableChars)

	// Legacy is the readable-counting alphabet.
	Legacy = MustNew(LegacyChars)
)

// Alphabet is a validated digit table.
type Alphabet struct {
	encode [Base]byte
	decode [256]int8
}

// New creates an alphabet from a 66-character string whose i-th byte is the digit for value i.
//
// Parameters:
//   - chars: 66 distinct printable ASCII characters, not including the sign character
//
// Returns:
//   - *Alphabet: The validated alphabet
//   - error: ErrInvalidAlphabet when chars has the wrong length, repeats a character,
//     contains a non-printable or non-ASCII byte, or contains the sign character
func New(chars string) (*Alphabet, error) {
	if len(chars) != Base {
		return nil, fmt.Errorf("%w: length %d, want %d", errs.ErrInvalidAlphabet, len(chars), Base)
	}

	a := new(Alphabet)
	for i := range a.decode {
		a.decode[i] = -1
	}

	for i := 0; i < Base; i++ {
		c := chars[i]
		switch {
		case c < 0x21 || c > 0x7e:
			return nil, fmt.Errorf("%w: non-printable byte 0x%02x at position %d", errs.ErrInvalidAlphabet, c, i)
		case c == Sign:
			return nil, fmt.Errorf("%w: reserved sign character %q at position %d", errs.ErrInvalidAlphabet, c, i)
		case a.decode[c] != -1:
			return nil, fmt.Errorf("%w: duplicate character %q at position %d", errs.ErrInvalidAlphabet, c, i)
		}
		a.encode[i] = c
		a.decode[c] = int8(i) //nolint:gosec
	}

	return a, nil
}

// MustNew is like New but panics on an invalid alphabet.
// It simplifies safe initialization of package-level variables.
func MustNew(chars string) *Alphabet {
	a, err := New(chars)
	if err != nil {
		panic(err)
	}

	return a
}

// Reversed returns a new alphabet with the digit order reversed,
// so that the character for value i becomes the character for value 65-i.
func (a *Alphabet) Reversed() *Alphabet {
	r := new(Alphabet)
	for i := range r.decode {
		r.decode[i] = -1
	}
	for i := 0; i < Base; i++ {
		c := a.encode[Base-1-i]
		r.encode[i] = c
		r.decode[c] = int8(i) //nolint:gosec
	}

	return r
}

// Zero returns the character for digit value 0.
func (a *Alphabet) Zero() byte {
	return a.encode[0]
}

// Digit returns the character for the digit value v. It panics if v is not in [0, 65].
func (a *Alphabet) Digit(v int) byte {
	return a.encode[v]
}

// Index returns the digit value of c, or -1 when c is not part of the alphabet.
func (a *Alphabet) Index(c byte) int {
	return int(a.decode[c])
}

// Contains reports whether c is a digit of the alphabet.
func (a *Alphabet) Contains(c byte) bool {
	return a.decode[c] >= 0
}

// IsSorted reports whether digit characters increase strictly in ASCII order,
// which is the property that makes equal-width encodings sortable.
func (a *Alphabet) IsSorted() bool {
	for i := 1; i < Base; i++ {
		if a.encode[i-1] >= a.encode[i] {
			return false
		}
	}

	return true
}

// String returns the 66 digit characters in value order.
func (a *Alphabet) String() string {
	return string(a.encode[:])
}
