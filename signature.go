package fwimage

import "fmt"

// SignatureLen is the length of a firmware signature once the marker bytes
// are stripped.
const SignatureLen = 7

// Known firmware signatures. Each names a firmware variant and is exactly
// SignatureLen bytes long, so its on-wire form is its ASCII bytes.
const (
	SignatureFrodoII = "FrodoII"
	SignatureChopper = "Chopper"
	SignatureGandolf = "Gandolf"
)

// DefaultSignature is used when the build does not specify one.
const DefaultSignature = SignatureFrodoII

// KnownSignature reports whether s is one of the documented firmware
// signatures. Unknown 7-byte signatures are still accepted everywhere; this
// only drives reporting.
func KnownSignature(s string) bool {
	switch s {
	case SignatureFrodoII, SignatureChopper, SignatureGandolf:
		return true
	}
	return false
}

// ResolveSignature maps a signature name to its canonical 7-byte on-wire
// form. Any raw 7-byte string is accepted as-is; anything else fails with
// ErrBadSignatureLength.
func ResolveSignature(s string) ([SignatureLen]byte, error) {
	var sig [SignatureLen]byte
	if len(s) != SignatureLen {
		return sig, fmt.Errorf("signature: %q is %d bytes: %w", s, len(s), ErrBadSignatureLength)
	}
	copy(sig[:], s)
	return sig, nil
}

// The 12-byte signature field wraps the 7 signature bytes in a fixed marker:
// 55 AA <7 bytes> 00 55 AA.
func wrapSignature(sig [SignatureLen]byte) [12]byte {
	var field [12]byte
	field[0], field[1] = 0x55, 0xaa
	copy(field[2:9], sig[:])
	field[10], field[11] = 0x55, 0xaa
	return field
}

func unwrapSignature(field []byte) ([SignatureLen]byte, error) {
	var sig [SignatureLen]byte
	if field[0] != 0x55 || field[1] != 0xaa || field[9] != 0x00 || field[10] != 0x55 || field[11] != 0xaa {
		return sig, fmt.Errorf("signature: fixed marker bytes not found: %w", ErrBadSignature)
	}
	copy(sig[:], field[2:9])
	return sig, nil
}
