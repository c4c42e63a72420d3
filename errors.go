// SPDX-License-Identifier: MIT

package fastlz

import "errors"

// Sentinel errors for compression and decompression.
var (
	// ErrOutputOverrun is returned when a bounded output buffer is too small.
	// The bytes written before this was returned are always a valid prefix of
	// the output that would have been produced by a large-enough buffer.
	ErrOutputOverrun = errors.New("fastlz: output buffer too small")
	// ErrInputOverrun is returned when a record demands more input bytes than remain.
	ErrInputOverrun = errors.New("fastlz: input truncated")
	// ErrLookBehindUnderrun is returned when a backreference points before the
	// start of the output produced so far.
	ErrLookBehindUnderrun = errors.New("fastlz: invalid backreference")
	// ErrInvalidLevel is returned when the first byte of a compressed stream
	// does not carry a recognized level marker.
	ErrInvalidLevel = errors.New("fastlz: invalid or unsupported compression level marker")
)
