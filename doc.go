// SPDX-License-Identifier: MIT

/*
Package fastlz implements the FastLZ byte-stream compression format, levels 1
and 2 (fastlz_compress_level1/2 + fastlz_decompress wire-compatible).

The format is a classic LZ77 variant: a hash-indexed match finder emits
literal runs and backreferences, with the top 3 bits of the first output
byte marking which level was used so the decompressor can auto-detect it.

# Compress

Level may be LevelDefault (picks Level1 below 64 KiB, Level2 otherwise),
Level1, or Level2:

	out, err := fastlz.Compress(data, fastlz.LevelDefault)

To compress into a caller-owned buffer (no allocation):

	n, err := fastlz.CompressInto(data, buf, fastlz.Level2)
	// buf[:n] holds the compressed stream, or err is ErrOutputOverrun if buf
	// was too small (buf[:n] still holds a valid truncated prefix up to n).

# Decompress

The format is self-describing; no level or length needs to be supplied:

	out, err := fastlz.Decompress(compressed, 0) // capacityHint is just a hint

Into a caller-owned buffer:

	n, err := fastlz.DecompressInto(compressed, buf)
*/
package fastlz
