// Package endian provides byte order engines and the integer <-> byte helpers
// used to carry binary payloads through HHC.
//
// HHC encodes integers, so binary data is first read as one big-endian
// integer. IntToBytes and BytesToInt convert between the two:
//
//	endian.IntToBytes(big.NewInt(515))        // []byte{0x02, 0x03}
//	endian.BytesToInt([]byte{0x02, 0x03})     // 515
//
// Leading zero bytes do not survive the round trip, so framing formats must
// start with a non-zero byte (see package payload).
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use.
// The returned EndianEngine is immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// Payload framing uses the big-endian engine.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
