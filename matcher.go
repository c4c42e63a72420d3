// SPDX-License-Identifier: MIT

package fastlz

// opcodeWriter is satisfied by level1Writer and level2Writer: the two
// encodings the match finder can drive.
type opcodeWriter interface {
	putLiteralRun(lits []byte) error
	putBackref(disp, length int) error
}

// Compressor holds the hash table used to find matches during compression.
// It is reusable across calls — each call zeroes the table itself — and is
// roughly 32 KiB (htabSize entries of 4 bytes), so callers that compress
// repeatedly should keep one around (or use the package-level pool, see
// matcher_pool.go) instead of allocating a fresh one per call.
type Compressor struct {
	htab [htabSize]uint32
}

// NewCompressor allocates a new, ready-to-use Compressor on the heap.
func NewCompressor() *Compressor {
	return &Compressor{}
}

// fastlzHash is the Knuth multiplicative hash over a 24-bit key, folded into
// a htabLog2-bit bucket index.
func fastlzHash(key uint32) uint32 {
	h := key * 2654435769
	return h >> (32 - htabLog2)
}

func load24(s []byte, i int) uint32 {
	return uint32(s[i]) | uint32(s[i+1])<<8 | uint32(s[i+2])<<16
}

// run performs the compression main loop against w (and, through w, against
// sink) for the given source, level constants, and displacement ceiling.
func (c *Compressor) run(src []byte, maxDisp int, isLevel2 bool, w opcodeWriter, sink compressSink) error {
	if len(src) == 0 {
		return nil
	}

	for i := range c.htab {
		c.htab[i] = 0
	}

	anchor := 0
	i := 1

scan:
	for i+3 <= len(src) {
		h := fastlzHash(load24(src, i))
		ref := int(c.htab[h])
		c.htab[h] = uint32(i)
		disp := i - ref - 1

		if ref >= i || disp > maxDisp || src[i] != src[ref] || src[i+1] != src[ref+1] || src[i+2] != src[ref+2] {
			i++
			continue
		}

		if isLevel2 && disp >= farMatchGate {
			if i+5 > len(src) {
				break scan
			}
			if src[i+3] != src[ref+3] || src[i+4] != src[ref+4] {
				i++
				continue
			}
		}

		k := 0
		for i+3+k < len(src) && src[i+3+k] == src[ref+3+k] {
			k++
		}
		matchLen := 3 + k

		if isLevel2 && disp >= farMatchGate && i+matchLen == len(src) {
			matchLen--
		}

		if i > anchor {
			if err := w.putLiteralRun(src[anchor:i]); err != nil {
				return err
			}
		}
		if err := w.putBackref(disp, matchLen); err != nil {
			return err
		}
		anchor = i + matchLen

		straddle := i + matchLen - 2
		if straddle+4 > len(src) {
			i = anchor
			break scan
		}
		c.htab[fastlzHash(load24(src, straddle))] = uint32(straddle)
		c.htab[fastlzHash(load24(src, straddle+1))] = uint32(straddle + 1)

		i = anchor
	}

	if anchor < len(src) {
		if err := w.putLiteralRun(src[anchor:]); err != nil {
			return err
		}
	}
	if isLevel2 {
		sink.markLevel2()
	}
	return nil
}
