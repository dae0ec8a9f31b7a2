package endian

import "math/big"

// IntToBytes returns the minimal big-endian representation of |n|.
//
// Zero, including a nil n, maps to a single zero byte. The sign of n is not
// represented.
func IntToBytes(n *big.Int) []byte {
	if n == nil || n.Sign() == 0 {
		return []byte{0}
	}

	return n.Bytes()
}

// BytesToInt interprets b as an unsigned big-endian integer.
// An empty slice is zero.
func BytesToInt(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}
