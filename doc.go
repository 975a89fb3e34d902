// Package fwimage packs and unpacks the firmware container format used by a
// family of NAS devices: a fixed 64-byte header followed by a kernel image,
// an initrd image and an optional defaults archive.
//
// The header carries the offset, size and a 32-bit XOR checksum of each
// embedded payload, five device identifier bytes and a 7-byte firmware
// signature wrapped in a fixed marker pattern. Checksum mismatches are
// reported rather than fatal, so that images with corrupted payloads can
// still be split for recovery.
//
// This package comes with a CLI. You can install it like this:
//   go get github.com/naslab/fwimage/cmd/fwimage
package fwimage
