package fwimage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksumEmpty(t *testing.T) {
	assert.Equal(t, uint32(0), Checksum(nil))
	assert.Equal(t, uint32(0), Checksum([]byte{}))
}

func TestChecksumWords(t *testing.T) {
	// Two little-endian words, 1 and 2, fold to 3.
	payload := []byte{0x01, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00}
	assert.Equal(t, uint32(3), Checksum(payload))
}

func TestChecksumPartialTail(t *testing.T) {
	// A trailing partial word is read as available and zero-extended.
	assert.Equal(t, uint32(0x0201), Checksum([]byte{0x01, 0x02}))
	assert.Equal(t, uint32(0x030201), Checksum([]byte{0x01, 0x02, 0x03}))

	full := Checksum([]byte{0x01, 0x02, 0x03, 0x04})
	withTail := Checksum([]byte{0x01, 0x02, 0x03, 0x04, 0x05})
	assert.Equal(t, full^uint32(0x05), withTail)
}

func TestChecksumDeterministic(t *testing.T) {
	payload := []byte("the quick brown fox jumps over the lazy dog")
	assert.Equal(t, Checksum(payload), Checksum(payload))
}

func TestChecksumBitFlipSensitivity(t *testing.T) {
	payload := []byte("the quick brown fox jumps over the lazy dog")
	want := Checksum(payload)

	// Flipping one bit flips exactly one bit of one 32-bit word, so the
	// folded value must change.
	for i := range payload {
		for bit := 0; bit < 8; bit++ {
			flipped := append([]byte(nil), payload...)
			flipped[i] ^= 1 << bit
			assert.NotEqual(t, want, Checksum(flipped), "flip byte %d bit %d", i, bit)
		}
	}
}
