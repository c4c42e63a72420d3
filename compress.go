// SPDX-License-Identifier: MIT

package fastlz

import "io"

// maxCompressedSize returns a safe upper bound on the compressed size of an
// input of length n: every byte could end up a literal, plus one control
// byte for every maxLiteralRun-sized chunk, plus a 16-byte cushion for a
// stream short enough to need none of that math.
func maxCompressedSize(n int) int {
	return n + n/maxLiteralRun + 16
}

// CompressInto compresses src into dst at the given level, returning the
// number of bytes written. LevelDefault picks level 1 for inputs under 64KiB
// and level 2 otherwise, matching the reference encoder's heuristic. If dst
// is too small, CompressInto still writes the longest valid prefix it can
// and returns ErrOutputOverrun.
func CompressInto(src, dst []byte, level Level) (int, error) {
	level = resolveLevel(level, len(src))
	sink := newBoundedCompressSink(dst)
	if err := compressWith(src, level, sink); err != nil {
		return sink.pos, err
	}
	return sink.pos, nil
}

// Compress compresses src at the given level into a freshly allocated slice.
func Compress(src []byte, level Level) ([]byte, error) {
	level = resolveLevel(level, len(src))
	sink := newGrowableCompressSink(maxCompressedSize(len(src)))
	if err := compressWith(src, level, sink); err != nil {
		return nil, err
	}
	return sink.buf, nil
}

// CompressReader reads r to completion and compresses the result at the
// given level.
func CompressReader(r io.Reader, level Level) ([]byte, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Compress(src, level)
}

func compressWith(src []byte, level Level, sink compressSink) error {
	c := acquireCompressor()
	defer releaseCompressor(c)

	switch level {
	case Level1:
		return c.run(src, maxDispL1, false, &level1Writer{out: sink}, sink)
	case Level2:
		return c.run(src, maxDispL2, true, &level2Writer{out: sink}, sink)
	default:
		return ErrInvalidLevel
	}
}
