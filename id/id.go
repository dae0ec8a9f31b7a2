// Package id generates compact, URL-safe identifiers rendered in sortable HHC.
//
// Two kinds of identifiers are provided, each with a fixed width so that
// plain string comparison orders them numerically:
//
//   - Time-ordered IDs: a ULID (48-bit millisecond timestamp + 80 random bits)
//     as 22 HHC characters, 4 shorter than the canonical Crockford base32 form.
//     IDs created later sort after IDs created earlier.
//   - Key IDs: the xxHash64 of an arbitrary key as 11 HHC characters, useful
//     for deterministic short links and cache keys.
//
// Example:
//
//	s := id.New()             // e.g. "--t6~mSbsa0a0KZbRKoHdV"
//	t, _ := id.Time(s)        // creation time, millisecond precision
//	k := id.FromKey("/docs")  // always the same 11 characters for "/docs"
package id

import (
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/arloliu/hhc/codec"
	"github.com/arloliu/hhc/internal/collision"
	"github.com/arloliu/hhc/internal/errs"
	"github.com/arloliu/hhc/internal/hash"
)

const (
	// Width is the length of a time-ordered ID; 66^22 > 2^128.
	Width = 22
	// KeyWidth is the length of a key ID; 66^11 > 2^64.
	KeyWidth = 11
)

var (
	idEncoding  = codec.Sortable.WithWidth(Width)
	keyEncoding = codec.Sortable.WithWidth(KeyWidth)
)

// New returns a new time-ordered ID using the current time and ulid's default
// entropy source, which is safe for concurrent use.
func New() string {
	return FromULID(ulid.Make())
}

// NewWithTime returns a time-ordered ID for t, drawing randomness from entropy.
//
// Passing a ulid.Monotonic reader keeps IDs created within the same millisecond
// strictly increasing.
func NewWithTime(t time.Time, entropy io.Reader) (string, error) {
	u, err := ulid.New(ulid.Timestamp(t), entropy)
	if err != nil {
		return "", fmt.Errorf("generate ulid: %w", err)
	}

	return FromULID(u), nil
}

// FromULID renders u as a time-ordered ID.
func FromULID(u ulid.ULID) string {
	return idEncoding.Encode(new(big.Int).SetBytes(u[:]))
}

// Parse converts a time-ordered ID back into its ULID.
//
// Returns ErrInvalidID if s does not have Width characters, is not valid HHC,
// or encodes a value outside the 128-bit ULID range.
func Parse(s string) (ulid.ULID, error) {
	var u ulid.ULID
	if len(s) != Width {
		return u, fmt.Errorf("%w: length %d, want %d", errs.ErrInvalidID, len(s), Width)
	}

	n, err := idEncoding.Decode(s)
	if err != nil {
		return u, fmt.Errorf("%w: %w", errs.ErrInvalidID, err)
	}
	if n.Sign() < 0 || n.BitLen() > 8*len(u) {
		return u, fmt.Errorf("%w: %q is out of range", errs.ErrInvalidID, s)
	}
	n.FillBytes(u[:])

	return u, nil
}

// Time returns the creation time embedded in a time-ordered ID.
func Time(s string) (time.Time, error) {
	u, err := Parse(s)
	if err != nil {
		return time.Time{}, err
	}

	return ulid.Time(u.Time()), nil
}

// FromKey returns the key ID of key.
func FromKey(key string) string {
	return keyEncoding.EncodeUint64(hash.ID(key))
}

// FromKeys returns the key IDs of keys in order and reports whether two
// different keys share a key ID.
//
// Returns:
//   - []string: One key ID per key
//   - bool: True if a collision was found
//   - error: ErrInvalidKey for an empty key, ErrDuplicateKey for a repeated key
func FromKeys(keys []string) ([]string, bool, error) {
	tracker := collision.NewTracker()
	ids := make([]string, 0, len(keys))
	for _, key := range keys {
		h := hash.ID(key)
		if err := tracker.TrackKey(key, h); err != nil {
			return nil, false, fmt.Errorf("%w: %q", err, key)
		}
		ids = append(ids, keyEncoding.EncodeUint64(h))
	}

	return ids, tracker.HasCollision(), nil
}

// ParseKey returns the 64-bit hash carried by a key ID.
func ParseKey(s string) (uint64, error) {
	if len(s) != KeyWidth {
		return 0, fmt.Errorf("%w: length %d, want %d", errs.ErrInvalidID, len(s), KeyWidth)
	}

	v, err := keyEncoding.DecodeUint64(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errs.ErrInvalidID, err)
	}

	return v, nil
}
