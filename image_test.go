package fwimage

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseImageTruncated(t *testing.T) {
	_, err := ParseImage(make([]byte, 63))
	assert.ErrorIs(t, err, ErrTruncatedHeader)
}

func TestParseImageBadSignatureMarker(t *testing.T) {
	image, err := Assemble(testBuild())
	require.NoError(t, err)

	image[36] ^= 0xff
	_, err = ParseImage(image)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestParseImageCorruptedKernel(t *testing.T) {
	image, err := Assemble(testBuild())
	require.NoError(t, err)

	// Flip one byte inside the kernel region. The mismatch must only be
	// reported, never block extraction.
	image[HeaderLen+10] ^= 0x01

	parsed, err := ParseImage(image)
	require.NoError(t, err)

	assert.False(t, parsed.VerifyKernelChecksum())
	assert.True(t, parsed.VerifyInitrdChecksum())

	kernel, err := parsed.Extract(SectionKernel)
	require.NoError(t, err)
	require.Len(t, kernel, 100)
	assert.NotEqual(t, bytes.Repeat([]byte{'K'}, 100), kernel)

	initrd, err := parsed.Extract(SectionInitrd)
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{'I'}, 200), initrd)
}

func TestExtractReturnsCopy(t *testing.T) {
	image, err := Assemble(testBuild())
	require.NoError(t, err)

	parsed, err := ParseImage(image)
	require.NoError(t, err)

	kernel, err := parsed.Extract(SectionKernel)
	require.NoError(t, err)

	kernel[0] = 'X'
	assert.Equal(t, byte('K'), parsed.Kernel()[0])
	assert.True(t, parsed.VerifyKernelChecksum())
}

func TestExtractAbsentDefaults(t *testing.T) {
	image, err := Assemble(testBuild())
	require.NoError(t, err)

	parsed, err := ParseImage(image)
	require.NoError(t, err)

	defaults, err := parsed.Extract(SectionDefaults)
	require.NoError(t, err)
	assert.Nil(t, defaults)
}

func TestImageSectionBounds(t *testing.T) {
	header := testHeader()
	header.KernelSize = 1 << 20 // way past the end of the buffer

	encoded, err := header.Encode()
	require.NoError(t, err)

	parsed, err := ParseImage(append(encoded, bytes.Repeat([]byte{'K'}, 10)...))
	require.NoError(t, err)

	assert.Nil(t, parsed.Kernel())
	assert.False(t, parsed.VerifyKernelChecksum())

	_, err = parsed.Extract(SectionKernel)
	assert.ErrorIs(t, err, ErrSectionBounds)
}

func TestImageReparseIdempotent(t *testing.T) {
	image, err := Assemble(testBuild())
	require.NoError(t, err)

	first, err := ParseImage(image)
	require.NoError(t, err)
	second, err := ParseImage(image)
	require.NoError(t, err)

	assert.Equal(t, first.Header, second.Header)
	assert.Equal(t, first.Kernel(), second.Kernel())
}

func TestImageInfo(t *testing.T) {
	build := testBuild()
	build.Defaults = []byte("factory defaults")

	image, err := Assemble(build)
	require.NoError(t, err)

	parsed, err := ParseImage(image)
	require.NoError(t, err)

	info := parsed.Info()
	assert.Equal(t, SignatureFrodoII, info.Signature)
	assert.True(t, info.KnownSignature)
	assert.Equal(t, uint8(1), info.ProductID)
	assert.Equal(t, uint8(2), info.CustomID)
	assert.Equal(t, uint8(3), info.ModelID)
	assert.Equal(t, uint8(255), info.CompatID)
	assert.Equal(t, uint8(255), info.SubcompatID)

	assert.Equal(t, uint32(HeaderLen), info.Kernel.Offset)
	assert.Equal(t, uint32(100), info.Kernel.Size)
	assert.True(t, info.Kernel.ChecksumOK)
	assert.False(t, info.Kernel.Bootloader)
	assert.True(t, info.Initrd.ChecksumOK)

	require.NotNil(t, info.Defaults)
	assert.Equal(t, uint32(16), info.Defaults.Size)
	assert.True(t, info.Defaults.ChecksumOK)
}

func TestImageInfoWithoutDefaults(t *testing.T) {
	image, err := Assemble(testBuild())
	require.NoError(t, err)

	parsed, err := ParseImage(image)
	require.NoError(t, err)

	info := parsed.Info()
	assert.Nil(t, info.Defaults)
	assert.Equal(t, Hex32(parsed.Header.KernelChecksum), info.Kernel.Checksum)
}
