package fwimage

import "encoding/binary"

// Checksum folds a payload into a 32-bit value by XOR-ing its little-endian
// 32-bit words, starting from 0. A trailing partial word is zero-extended.
// The checksum of an empty payload is 0, which is also the stored value when
// no defaults archive is embedded.
//
// This is not a cryptographic digest: it is the integrity scheme embedded in
// deployed firmware images and must stay bit-compatible with them.
func Checksum(payload []byte) uint32 {
	var sum uint32
	for len(payload) >= 4 {
		sum ^= binary.LittleEndian.Uint32(payload)
		payload = payload[4:]
	}
	if len(payload) > 0 {
		var tail [4]byte
		copy(tail[:], payload)
		sum ^= binary.LittleEndian.Uint32(tail[:])
	}
	return sum
}
