package fwimage

import "fmt"

// Section identifies one payload of a firmware container.
type Section int

const (
	SectionKernel Section = iota
	SectionInitrd
	SectionDefaults
)

func (s Section) String() string {
	switch s {
	case SectionKernel:
		return "kernel"
	case SectionInitrd:
		return "initrd"
	case SectionDefaults:
		return "defaults"
	}
	return fmt.Sprintf("section(%d)", int(s))
}

// Image is a parsed firmware container. It keeps a reference to the whole
// image buffer and slices payloads out of it on demand; nothing is copied
// until Extract is called. An Image is immutable after ParseImage.
type Image struct {
	Header *Header

	data []byte
}

// ParseImage decodes the container header at the start of data and wraps
// the buffer for payload access. Header decode failures (truncation, bad
// signature marker) are fatal; checksum mismatches are not, they surface
// through the Verify methods instead.
func ParseImage(data []byte) (*Image, error) {
	header, err := DecodeHeader(data)
	if err != nil {
		return nil, fmt.Errorf("image: %w", err)
	}

	return &Image{
		Header: header,
		data:   data,
	}, nil
}

func (img *Image) section(offset, size uint32) []byte {
	if size == 0 {
		return nil
	}
	if uint64(offset)+uint64(size) > uint64(len(img.data)) {
		return nil
	}
	return img.data[offset : offset+size]
}

// Kernel returns the kernel payload without copying. It is nil when the
// header declares a payload extending past the end of the image.
func (img *Image) Kernel() []byte {
	return img.section(img.Header.KernelOffset, img.Header.KernelSize)
}

// Initrd returns the initrd payload without copying, nil on out-of-range
// bounds.
func (img *Image) Initrd() []byte {
	return img.section(img.Header.InitrdOffset, img.Header.InitrdSize)
}

// Defaults returns the defaults payload without copying, nil when absent or
// out of range.
func (img *Image) Defaults() []byte {
	return img.section(img.Header.DefaultsOffset, img.Header.DefaultsSize)
}

// HasDefaults reports whether a defaults archive is embedded.
func (img *Image) HasDefaults() bool {
	return img.Header.DefaultsSize != 0
}

// VerifyKernelChecksum recomputes the kernel checksum and compares it to
// the stored value. A mismatch is reportable, not fatal: images with
// corrupted payloads must remain splittable for recovery.
func (img *Image) VerifyKernelChecksum() bool {
	return Checksum(img.Kernel()) == img.Header.KernelChecksum
}

// VerifyInitrdChecksum recomputes the initrd checksum and compares it to
// the stored value.
func (img *Image) VerifyInitrdChecksum() bool {
	return Checksum(img.Initrd()) == img.Header.InitrdChecksum
}

// VerifyDefaultsChecksum recomputes the defaults checksum and compares it
// to the stored value. When no defaults archive is embedded, both sides are
// 0 and the check holds.
func (img *Image) VerifyDefaultsChecksum() bool {
	return Checksum(img.Defaults()) == img.Header.DefaultsChecksum
}

// Extract returns a copy of the requested payload, suitable for the caller
// to persist. An absent defaults payload yields nil without error. A
// payload extending past the end of the image fails with ErrSectionBounds.
func (img *Image) Extract(section Section) ([]byte, error) {
	var offset, size uint32
	switch section {
	case SectionKernel:
		offset, size = img.Header.KernelOffset, img.Header.KernelSize
	case SectionInitrd:
		offset, size = img.Header.InitrdOffset, img.Header.InitrdSize
	case SectionDefaults:
		offset, size = img.Header.DefaultsOffset, img.Header.DefaultsSize
	default:
		return nil, fmt.Errorf("image: unknown section %d", int(section))
	}

	if size == 0 {
		return nil, nil
	}
	if uint64(offset)+uint64(size) > uint64(len(img.data)) {
		return nil, fmt.Errorf("image: %s payload at %d+%d exceeds %d image bytes: %w",
			section, offset, size, len(img.data), ErrSectionBounds)
	}

	out := make([]byte, size)
	copy(out, img.data[offset:offset+size])
	return out, nil
}

// Info is a JSON-friendly report of a parsed image.
type Info struct {
	Signature      string
	KnownSignature bool
	ProductID      uint8
	CustomID       uint8
	ModelID        uint8
	CompatID       uint8
	SubcompatID    uint8
	Kernel         SectionInfo
	Initrd         SectionInfo
	Defaults       *SectionInfo
}

// SectionInfo reports one payload of a parsed image.
type SectionInfo struct {
	Offset     uint32
	Size       uint32
	Checksum   Hex32
	ChecksumOK bool
	Bootloader bool
}

// Info builds a report of the parsed image: identifiers, signature, and
// per-payload checksum verification plus bootloader magic detection.
// Defaults is nil when no defaults archive is embedded.
func (img *Image) Info() *Info {
	h := img.Header
	signature := string(h.Signature[:])

	info := &Info{
		Signature:      signature,
		KnownSignature: KnownSignature(signature),
		ProductID:      h.ProductID,
		CustomID:       h.CustomID,
		ModelID:        h.ModelID,
		CompatID:       h.CompatID,
		SubcompatID:    h.SubcompatID,
		Kernel: SectionInfo{
			Offset:     h.KernelOffset,
			Size:       h.KernelSize,
			Checksum:   Hex32(h.KernelChecksum),
			ChecksumOK: img.VerifyKernelChecksum(),
			Bootloader: LooksLikeBootloaderImage(img.Kernel()),
		},
		Initrd: SectionInfo{
			Offset:     h.InitrdOffset,
			Size:       h.InitrdSize,
			Checksum:   Hex32(h.InitrdChecksum),
			ChecksumOK: img.VerifyInitrdChecksum(),
			Bootloader: LooksLikeBootloaderImage(img.Initrd()),
		},
	}

	if img.HasDefaults() {
		info.Defaults = &SectionInfo{
			Offset:     h.DefaultsOffset,
			Size:       h.DefaultsSize,
			Checksum:   Hex32(h.DefaultsChecksum),
			ChecksumOK: img.VerifyDefaultsChecksum(),
		}
	}

	return info
}
