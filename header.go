package fwimage

import (
	"encoding/binary"
	"fmt"
)

// HeaderLen is the fixed size of the firmware container header. The kernel
// payload always starts right after it.
const HeaderLen = 64

// Default compatibility identifiers, used when a build does not override
// them.
const (
	DefaultCompatID    = 255
	DefaultSubcompatID = 255
)

// Header is the fixed 64-byte descriptor at the start of a firmware
// container. All multi-byte fields are little-endian on the wire.
//
// The five identifier bytes are stored unsigned. Historical encoders packed
// them as signed bytes; a value above 127 wraps to the same on-wire byte via
// two's complement, so both conventions produce identical images. The
// default compat and subcompat value 255 is such a wrapped value (-1 when
// read signed).
type Header struct {
	KernelOffset   uint32
	KernelSize     uint32
	InitrdOffset   uint32
	InitrdSize     uint32
	DefaultsOffset uint32
	DefaultsSize   uint32

	KernelChecksum   uint32
	InitrdChecksum   uint32
	DefaultsChecksum uint32

	Signature [SignatureLen]byte

	ProductID   uint8
	CustomID    uint8
	ModelID     uint8
	CompatID    uint8
	SubcompatID uint8
}

// Encode packs the header into its 64-byte wire form: nine little-endian
// u32 fields, the 12-byte signature field, five identifier bytes, 7 reserved
// zero bytes and a zero u32 trailer.
//
// A zero signature means the field was never set and fails with
// ErrMissingField. All other fields have no distinguishable unset state:
// zero sizes and offsets are legal values.
func (h *Header) Encode() ([]byte, error) {
	if h.Signature == ([SignatureLen]byte{}) {
		return nil, fmt.Errorf("header: signature: %w", ErrMissingField)
	}

	buf := make([]byte, HeaderLen)
	binary.LittleEndian.PutUint32(buf[0:], h.KernelOffset)
	binary.LittleEndian.PutUint32(buf[4:], h.KernelSize)
	binary.LittleEndian.PutUint32(buf[8:], h.InitrdOffset)
	binary.LittleEndian.PutUint32(buf[12:], h.InitrdSize)
	binary.LittleEndian.PutUint32(buf[16:], h.DefaultsOffset)
	binary.LittleEndian.PutUint32(buf[20:], h.DefaultsSize)
	binary.LittleEndian.PutUint32(buf[24:], h.KernelChecksum)
	binary.LittleEndian.PutUint32(buf[28:], h.InitrdChecksum)
	binary.LittleEndian.PutUint32(buf[32:], h.DefaultsChecksum)

	field := wrapSignature(h.Signature)
	copy(buf[36:48], field[:])

	buf[48] = h.ProductID
	buf[49] = h.CustomID
	buf[50] = h.ModelID
	buf[51] = h.CompatID
	buf[52] = h.SubcompatID

	// buf[53:60] reserved and buf[60:64] trailer stay zero.
	return buf, nil
}

// DecodeHeader is the inverse of Encode. It fails with ErrTruncatedHeader
// when fewer than 64 bytes are supplied and with ErrBadSignature when the
// fixed bytes of the signature field do not match the marker pattern.
//
// Offsets and sizes are not checked against actual payload lengths here;
// that is the concern of ParseImage accessors.
func DecodeHeader(b []byte) (*Header, error) {
	if len(b) < HeaderLen {
		return nil, fmt.Errorf("header: got %d of %d bytes: %w", len(b), HeaderLen, ErrTruncatedHeader)
	}

	sig, err := unwrapSignature(b[36:48])
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}

	return &Header{
		KernelOffset:     binary.LittleEndian.Uint32(b[0:]),
		KernelSize:       binary.LittleEndian.Uint32(b[4:]),
		InitrdOffset:     binary.LittleEndian.Uint32(b[8:]),
		InitrdSize:       binary.LittleEndian.Uint32(b[12:]),
		DefaultsOffset:   binary.LittleEndian.Uint32(b[16:]),
		DefaultsSize:     binary.LittleEndian.Uint32(b[20:]),
		KernelChecksum:   binary.LittleEndian.Uint32(b[24:]),
		InitrdChecksum:   binary.LittleEndian.Uint32(b[28:]),
		DefaultsChecksum: binary.LittleEndian.Uint32(b[32:]),
		Signature:        sig,
		ProductID:        b[48],
		CustomID:         b[49],
		ModelID:          b[50],
		CompatID:         b[51],
		SubcompatID:      b[52],
	}, nil
}
