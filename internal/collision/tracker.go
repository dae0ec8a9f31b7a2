// Package collision detects distinct keys that hash to the same 64-bit value.
package collision

import (
	"github.com/arloliu/hhc/internal/errs"
)

// Tracker records keys with their hashes and flags collisions.
type Tracker struct {
	hashes       map[uint64]struct{}
	keys         map[string]struct{}
	hasCollision bool
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		hashes: make(map[uint64]struct{}),
		keys:   make(map[string]struct{}),
	}
}

// TrackKey records key with its hash.
//
// Returns ErrInvalidKey for an empty key and ErrDuplicateKey when key was
// already tracked. A different key with an already tracked hash is not an
// error; it sets the collision flag.
func (t *Tracker) TrackKey(key string, hash uint64) error {
	if key == "" {
		return errs.ErrInvalidKey
	}
	if _, exists := t.keys[key]; exists {
		return errs.ErrDuplicateKey
	}

	if _, exists := t.hashes[hash]; exists {
		t.hasCollision = true
	}
	t.hashes[hash] = struct{}{}
	t.keys[key] = struct{}{}

	return nil
}

// HasCollision reports whether two tracked keys share a hash.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}
