package fwimage

import "fmt"

// Build describes the inputs of a firmware container.
type Build struct {
	// Kernel and Initrd are required payloads. Defaults is the optional
	// defaults archive; nil or empty means no defaults blob is embedded.
	Kernel   []byte
	Initrd   []byte
	Defaults []byte

	ProductID   uint8
	CustomID    uint8
	ModelID     uint8
	CompatID    uint8
	SubcompatID uint8

	// Signature is a known signature name (see KnownSignature) or any raw
	// 7-byte string.
	Signature string
}

// Assemble produces a complete firmware image: the encoded 64-byte header
// followed by the kernel, initrd and optional defaults payloads.
//
// All validation happens before any encoding, so a failed Assemble never
// yields a partial image. Producing the image is a pure in-memory
// operation; persisting it is the caller's concern.
func Assemble(build *Build) ([]byte, error) {
	if build.Kernel == nil {
		return nil, fmt.Errorf("assemble: kernel: %w", ErrMissingField)
	}
	if build.Initrd == nil {
		return nil, fmt.Errorf("assemble: initrd: %w", ErrMissingField)
	}
	sig, err := ResolveSignature(build.Signature)
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}

	header := &Header{
		KernelOffset:   HeaderLen,
		KernelSize:     uint32(len(build.Kernel)),
		InitrdOffset:   HeaderLen + uint32(len(build.Kernel)),
		InitrdSize:     uint32(len(build.Initrd)),
		KernelChecksum: Checksum(build.Kernel),
		InitrdChecksum: Checksum(build.Initrd),
		Signature:      sig,
		ProductID:      build.ProductID,
		CustomID:       build.CustomID,
		ModelID:        build.ModelID,
		CompatID:       build.CompatID,
		SubcompatID:    build.SubcompatID,
	}
	if len(build.Defaults) > 0 {
		header.DefaultsOffset = HeaderLen + uint32(len(build.Kernel)+len(build.Initrd))
		header.DefaultsSize = uint32(len(build.Defaults))
		header.DefaultsChecksum = Checksum(build.Defaults)
	}

	encoded, err := header.Encode()
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}

	image := make([]byte, 0, HeaderLen+len(build.Kernel)+len(build.Initrd)+len(build.Defaults))
	image = append(image, encoded...)
	image = append(image, build.Kernel...)
	image = append(image, build.Initrd...)
	if len(build.Defaults) > 0 {
		image = append(image, build.Defaults...)
	}
	return image, nil
}
