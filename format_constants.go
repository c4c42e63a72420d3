// SPDX-License-Identifier: MIT

package fastlz

// FastLZ wire format constants: hash table sizing, opcode bit layout, and
// per-level displacement/length bounds.

// Hash table parameters used by the match finder.
const (
	htabLog2 = 13
	htabSize = 1 << htabLog2 // 8192 single-entry buckets
)

// Literal-run opcode: top 3 bits are 0, low 5 bits encode (length-1).
const (
	maxLiteralRun = 32
)

// Short backreference opcode: top 3 bits in [1,6] encode (length-2).
// Long backreference opcode: top 3 bits == 7 (markerLong).
const (
	markerLong    = 0xE0 // 0b111_00000
	maxShortLen   = 8    // short backref: length in [3,8]
	shortLenShift = 5    // top 3 bits of the control byte start at bit 5
)

// Level 1: displacement fits in 13 bits split across two bytes; the long-match
// extra length byte is a single byte (length-9, up to 255, so max length 264).
const (
	maxDispL1       = 8191
	maxLongLenL1    = 0xff + 9     // 264: largest length a single long-backref chunk can encode
	longLenBiasL1   = 9
	longChunkSpanL1 = 0xff - 2 + 9 // 262: how far len advances per emitted max chunk
)

// Level 2: displacement extends into a 16-bit far-displacement extension
// (0..65535 added on top of the 8191 near range); long-match length uses a
// run of 0xFF-saturated extension bytes terminated by a byte < 0xFF.
const (
	maxDispL2    = maxDispL1 + 65535
	earlyDispMax = maxDispL1 // 8191: triggers the far-displacement extension
	earlyLenMax  = 7         // triggers the length-extension byte run
	farMatchGate = maxDispL1 // disp >= this requires the 5-byte confirmation
)
