// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixedwidth

import (
	"unicode/utf8"

	"github.com/streamtext/textcodec/errs"
)

func put16(b []byte, order ByteOrder, v uint16) {
	if order == LittleEndian {
		b[0] = byte(v)
		b[1] = byte(v >> 8)
	} else {
		b[0] = byte(v >> 8)
		b[1] = byte(v)
	}
}

func get16(b []byte, order ByteOrder) uint16 {
	if order == LittleEndian {
		return uint16(b[0]) | uint16(b[1])<<8
	}
	return uint16(b[1]) | uint16(b[0])<<8
}

// EncodeUTF16 writes each scalar of src as one 16-bit code unit, or a
// surrogate pair for scalars in the supplementary planes.
func EncodeUTF16(dst, src []byte, order ByteOrder) (written, consumed int) {
	for consumed < len(src) {
		r, size := utf8.DecodeRune(src[consumed:])
		if r <= 0xFFFF {
			if written+2 > len(dst) {
				break
			}
			put16(dst[written:], order, uint16(r))
			written += 2
		} else {
			if written+4 > len(dst) {
				break
			}
			v := uint32(r) - 0x10000
			hi := uint16(0xD800 + (v >> 10))
			lo := uint16(0xDC00 + (v & 0x3FF))
			put16(dst[written:], order, hi)
			put16(dst[written+2:], order, lo)
			written += 4
		}
		consumed += size
	}
	return written, consumed
}

// DecodeUTF16 reads 16-bit code units in the given byte order, pairing
// surrogates and rejecting unpaired ones, and emits UTF-8.
//
// A dangling high surrogate waiting on its low half, or any partial code
// unit, is a deferral unless atEOF is true, in which case it becomes an
// invalid-data error.
func DecodeUTF16(dst, src []byte, order ByteOrder, atEOF bool) (written, consumed int, err *errs.DecodeError) {
	for consumed < len(src) {
		remaining := len(src) - consumed
		if remaining < 2 {
			if atEOF {
				return written, consumed, &errs.DecodeError{
					Cause:   errs.InvalidData,
					Start:   consumed,
					End:     len(src),
					Written: written,
				}
			}
			break
		}
		u0 := get16(src[consumed:], order)

		switch {
		case u0 < 0xD800 || u0 > 0xDFFF:
			if written+utf8.RuneLen(rune(u0)) > len(dst) {
				return written, consumed, nil
			}
			written += utf8.EncodeRune(dst[written:], rune(u0))
			consumed += 2

		case u0 >= 0xDC00:
			// Unpaired low surrogate.
			return written, consumed, &errs.DecodeError{
				Cause:   errs.InvalidData,
				Start:   consumed,
				End:     consumed + 2,
				Written: written,
			}

		default: // 0xD800..0xDBFF: high surrogate, needs a low surrogate.
			if remaining < 4 {
				if atEOF {
					return written, consumed, &errs.DecodeError{
						Cause:   errs.InvalidData,
						Start:   consumed,
						End:     len(src),
						Written: written,
					}
				}
				return written, consumed, nil
			}
			u1 := get16(src[consumed+2:], order)
			if u1 < 0xDC00 || u1 > 0xDFFF {
				return written, consumed, &errs.DecodeError{
					Cause:   errs.InvalidData,
					Start:   consumed,
					End:     consumed + 2,
					Written: written,
				}
			}
			r := rune(0x10000 + (uint32(u0)-0xD800)<<10 + (uint32(u1) - 0xDC00))
			if written+4 > len(dst) {
				return written, consumed, nil
			}
			written += utf8.EncodeRune(dst[written:], r)
			consumed += 4
		}
	}
	return written, consumed, nil
}
