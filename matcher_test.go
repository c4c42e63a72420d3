// SPDX-License-Identifier: MIT

package fastlz

import (
	"bytes"
	"testing"
)

func TestFastlzHash_PinnedVector(t *testing.T) {
	cases := []struct {
		key  uint32
		want uint32
	}{
		{1, 5062},
		{2, 1933},
		{3, 6996},
		{4, 3867},
		{0xAA, 538},
		{0xBB, 4688},
		{0xFF, 4904},
	}

	for _, c := range cases {
		if got := fastlzHash(c.key); got != c.want {
			t.Errorf("fastlzHash(%#x) = %d, want %d", c.key, got, c.want)
		}
	}
}

func TestCompressor_CompressionUnitScenarios(t *testing.T) {
	cases := []struct {
		name string
		src  []byte
		want []byte
	}{
		{"two-literal-bytes", []byte{1, 2}, []byte{0x01, 1, 2}},
		{"adjacent-repeat-short-backref", []byte{1, 1, 1, 1, 1}, []byte{0x00, 1, 0x40, 0x00}},
		{"three-byte-pattern-repeat", []byte{1, 2, 3, 1, 2, 3, 1, 2, 3}, []byte{0x02, 1, 2, 3, 0x80, 0x02}},
		{"three-byte-pattern-plus-tail", []byte{1, 2, 3, 1, 2, 3, 1, 2, 3, 4}, []byte{0x02, 1, 2, 3, 0x80, 0x02, 0x00, 4}},
		{"straddle-rehash", []byte{1, 2, 3, 1, 2, 3, 1, 2, 3, 2, 3, 2, 3}, []byte{0x02, 1, 2, 3, 0x80, 0x02, 0x40, 0x01}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Compress(c.src, Level1)
			if err != nil {
				t.Fatalf("Compress failed: %v", err)
			}
			if !bytes.Equal(got, c.want) {
				t.Fatalf("got % x, want % x", got, c.want)
			}
		})
	}
}

// TestCompressor_FarMatchEndOfStreamRule places an identical 5-byte pattern
// at the very start and the very end of a buffer, separated by enough filler
// that the displacement between them lands exactly on the far-match gate
// (8191) with the match running to the last byte of input — the scenario
// where the encoder must shorten the match by one and emit the final byte
// as a literal instead.
func TestCompressor_FarMatchEndOfStreamRule(t *testing.T) {
	pattern := []byte{0xAA, 0xBB, 0xCC, 0xDD, 0xEE}
	const fillerLen = 8187

	src := make([]byte, 0, len(pattern)*2+fillerLen)
	src = append(src, pattern...)
	src = append(src, bytes.Repeat([]byte{0x01}, fillerLen)...)
	src = append(src, pattern...)

	out, err := Compress(src, Level2)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if out[0]&0b001_00000 == 0 {
		t.Fatalf("expected level-2 marker bit set on first byte")
	}

	decoded, err := Decompress(out, len(src))
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(decoded, src) {
		t.Fatalf("round-trip mismatch for far-match end-of-stream construction")
	}
}
