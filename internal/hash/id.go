package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Checksum32 folds the xxHash64 of data into 32 bits.
func Checksum32(data []byte) uint32 {
	h := xxhash.Sum64(data)
	return uint32(h>>32) ^ uint32(h) //nolint:gosec
}
