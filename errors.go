package fwimage

import "errors"

// Validation errors, reported before any encoding is attempted. A failed
// validation never produces a partial image.
var (
	// ErrMissingField is returned when a required build input is absent.
	ErrMissingField = errors.New("missing required field")

	// ErrBadSignatureLength is returned when a signature is neither a known
	// name nor exactly 7 bytes long.
	ErrBadSignatureLength = errors.New("signature must be exactly 7 bytes")
)

// Decode errors, fatal for parsing. No partial header is ever returned.
var (
	// ErrTruncatedHeader is returned when fewer than 64 bytes are available
	// where a header was expected.
	ErrTruncatedHeader = errors.New("truncated header")

	// ErrBadSignature is returned when the fixed bytes of the 12-byte
	// signature field do not match the marker pattern.
	ErrBadSignature = errors.New("bad signature marker")

	// ErrSectionBounds is returned when a header declares a payload that
	// extends past the end of the image.
	ErrSectionBounds = errors.New("section exceeds image bounds")
)
