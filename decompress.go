// SPDX-License-Identifier: MIT

package fastlz

import "io"

// DecompressInto decompresses src into dst, auto-detecting the level from
// the top 3 bits of the first byte. Returns the number of bytes written. If
// dst is too small, DecompressInto still writes the longest valid prefix it
// can and returns ErrOutputOverrun.
func DecompressInto(src, dst []byte) (int, error) {
	sink := newBoundedDecompressSink(dst)
	if err := decompressWith(src, sink); err != nil {
		return sink.pos, err
	}
	return sink.pos, nil
}

// Decompress decompresses src into a freshly allocated slice. capacityHint
// pre-sizes the output buffer (it need not be exact; the buffer grows as
// needed) to avoid reallocation when the caller knows the original size.
func Decompress(src []byte, capacityHint int) ([]byte, error) {
	sink := newGrowableDecompressSink(capacityHint)
	if err := decompressWith(src, sink); err != nil {
		return nil, err
	}
	return sink.buf, nil
}

// DecompressReader reads r to completion and decompresses the result.
func DecompressReader(r io.Reader, capacityHint int) ([]byte, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decompress(src, capacityHint)
}

func decompressWith(src []byte, sink decompressSink) error {
	if len(src) == 0 {
		return nil
	}

	first := src[0]
	switch first >> 5 {
	case 0b000:
		return decodeLevel1(src, 1, first, sink)
	case 0b001:
		return decodeLevel2(src, 1, first&0x1F, sink)
	default:
		return ErrInvalidLevel
	}
}
