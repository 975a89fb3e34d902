package fwimage

import "encoding/binary"

// BootloaderMagic is the fixed 4-byte prefix (27 05 19 56) of a
// bootloader-wrapped kernel or initrd image.
const BootloaderMagic uint32 = 0x27051956

// LooksLikeBootloaderImage reports whether the payload starts with
// BootloaderMagic. Rejecting payloads that do not is caller policy: the
// build command treats a missing magic as fatal, split only warns.
func LooksLikeBootloaderImage(b []byte) bool {
	return len(b) >= 4 && binary.BigEndian.Uint32(b) == BootloaderMagic
}
