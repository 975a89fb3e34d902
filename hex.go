package fwimage

import "fmt"

// Hex32 wraps an uint32 so that it encodes to hexadecimal.
type Hex32 uint32

func (h Hex32) String() string {
	return fmt.Sprintf("%08X", uint32(h))
}

// MarshalText implements encoding.TextMarshaler, also used for JSON encoding.
func (h Hex32) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}
