// SPDX-License-Identifier: MIT

package fastlz

// level2Writer emits FastLZ level-2 opcodes into a compressSink: a near
// 13-bit displacement with an optional 16-bit far-displacement extension, and
// a run of 0xFF-saturated bytes for length extension.
type level2Writer struct {
	out compressSink
}

func (w *level2Writer) putLiteralRun(lits []byte) error {
	for len(lits) > maxLiteralRun {
		if err := w.out.putByte(opcodeByte(maxLiteralRun - 1)); err != nil {
			return err
		}
		if err := w.out.putSlice(lits[:maxLiteralRun]); err != nil {
			return err
		}
		lits = lits[maxLiteralRun:]
	}

	if err := w.out.putByte(opcodeByte(len(lits) - 1)); err != nil {
		return err
	}
	return w.out.putSlice(lits)
}

func (w *level2Writer) putBackref(disp, length int) error {
	earlyDisp := disp
	if earlyDisp > earlyDispMax {
		earlyDisp = earlyDispMax
	}
	length -= 2
	earlyLen := length
	if earlyLen > earlyLenMax {
		earlyLen = earlyLenMax
	}

	if err := w.out.putByte(opcodeByte((earlyLen << shortLenShift) | (earlyDisp >> 8))); err != nil {
		return err
	}

	if earlyLen == earlyLenMax {
		length -= earlyLen
		for {
			chunk := length
			if chunk > 0xff {
				chunk = 0xff
			}
			if err := w.out.putByte(opcodeByte(chunk)); err != nil {
				return err
			}
			if chunk != 0xff {
				break
			}
			length -= chunk
		}
	}

	if err := w.out.putByte(opcodeByte(earlyDisp)); err != nil {
		return err
	}
	if earlyDisp == earlyDispMax {
		moreDisp := disp - earlyDisp
		if err := w.out.putByte(opcodeByte(moreDisp >> 8)); err != nil {
			return err
		}
		if err := w.out.putByte(opcodeByte(moreDisp)); err != nil {
			return err
		}
	}

	return nil
}

// decodeLevel2 runs the level-2 control-byte state machine. firstCtrl is the
// first control byte with its level marker already stripped; subsequent
// control bytes are consumed as-is (no marker to strip).
func decodeLevel2(src []byte, inPos int, firstCtrl byte, out decompressSink) error {
	ctrl := firstCtrl

	for {
		top3 := ctrl >> 5
		if top3 == 0 {
			runLen := int(ctrl) + 1
			if inPos+runLen > len(src) {
				return ErrInputOverrun
			}
			if err := out.putLiteralRun(src[inPos : inPos+runLen]); err != nil {
				return err
			}
			inPos += runLen
		} else {
			dispHi := int(ctrl & 0x1F)
			var length int
			if top3 == 0b111 {
				length = 9
				for {
					if inPos >= len(src) {
						return ErrInputOverrun
					}
					b := src[inPos]
					inPos++
					length += int(b)
					if b != 0xff {
						break
					}
				}
			} else {
				length = int(top3) + 2
			}

			if inPos >= len(src) {
				return ErrInputOverrun
			}
			lo := int(src[inPos])
			inPos++
			disp := (dispHi << 8) | lo

			if dispHi == 0x1F && lo == 0xFF {
				if inPos+2 > len(src) {
					return ErrInputOverrun
				}
				ext := (int(src[inPos]) << 8) | int(src[inPos+1])
				inPos += 2
				disp += ext
			}

			if err := out.putBackref(disp, length); err != nil {
				return err
			}
		}

		if inPos >= len(src) {
			return nil
		}
		ctrl = src[inPos]
		inPos++
	}
}
