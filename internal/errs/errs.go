// Package errs defines the sentinel errors shared by the hhc packages.
//
// Errors are wrapped with context by the returning function, so callers should
// compare with errors.Is rather than by equality.
package errs

import "errors"

var (
	// ErrInvalidFormat is returned when a string is not a valid HHC literal:
	// it is empty, carries a doubled sign prefix, or contains a character outside the alphabet.
	ErrInvalidFormat = errors.New("invalid hhc literal")

	// ErrOverflow is returned when a decoded value does not fit the requested fixed-size integer.
	ErrOverflow = errors.New("decoded value overflows target type")

	// ErrInvalidAlphabet is returned when an alphabet is not exactly 66 distinct, printable ASCII characters
	// or contains the reserved sign character.
	ErrInvalidAlphabet = errors.New("invalid alphabet")

	// ErrInvalidWidth is returned when a negative encoding width is configured.
	ErrInvalidWidth = errors.New("invalid width")

	// ErrInvalidVariant is returned for an unknown encoding variant.
	ErrInvalidVariant = errors.New("invalid variant")

	// ErrInvalidPayload is returned when a decoded payload frame is malformed.
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrChecksumMismatch is returned when a payload checksum does not match its body.
	ErrChecksumMismatch = errors.New("payload checksum mismatch")

	// ErrInvalidCompression is returned for an unknown compression type.
	ErrInvalidCompression = errors.New("invalid compression type")

	// ErrInvalidID is returned when a string cannot be parsed as an identifier.
	ErrInvalidID = errors.New("invalid id")

	// ErrInvalidKey is returned when an empty key is given for a key ID.
	ErrInvalidKey = errors.New("invalid key")

	// ErrDuplicateKey is returned when the same key is added twice to a key set.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrInvalidConfig is returned when a configuration file cannot be used.
	ErrInvalidConfig = errors.New("invalid configuration")
)
