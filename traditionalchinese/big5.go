// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package traditionalchinese implements the WHATWG BIG5 codec: a
// stateless, two-byte, pointer-indexed encoding with four
// grapheme-cluster special cases and an ASCII-preservation error-range
// rule shared with the Shift-JIS codec in package japanese.
package traditionalchinese

import (
	"unicode/utf8"

	"github.com/streamtext/textcodec/errs"
)

// pointer computes the WHATWG BIG5 pointer for a lead/trail byte pair
// already known to be in range. Lead runs 0x81-0xFE; trail runs
// 0x40-0x7E or 0xA1-0xFE.
func pointer(lead, trail byte) int {
	row := int(lead-0x81) * 157
	if trail < 0x7F {
		return row + int(trail-0x40)
	}
	return row + int(trail-0x62)
}

// Decode converts WHATWG BIG5 bytes from src into UTF-8 in dst. A lead
// byte whose trailer has not arrived yet is a deferral when atEOF is
// false and an invalid-data error when atEOF is true. When a two-byte
// sequence is invalid or unmapped and its trailer is ASCII, the reported
// error range covers only the lead byte, leaving the ASCII byte in the
// stream for the next call.
func Decode(dst, src []byte, atEOF bool) (written, consumed int, err *errs.DecodeError) {
	for consumed < len(src) {
		lead := src[consumed]
		if lead <= 0x7F {
			if written >= len(dst) {
				break
			}
			dst[written] = lead
			written++
			consumed++
			continue
		}
		if lead == 0x80 || lead == 0xFF {
			return written, consumed, &errs.DecodeError{
				Cause: errs.InvalidData, Start: consumed, End: consumed + 1, Written: written,
			}
		}
		if consumed+1 >= len(src) {
			if atEOF {
				return written, consumed, &errs.DecodeError{
					Cause: errs.InvalidData, Start: consumed, End: consumed + 1, Written: written,
				}
			}
			break
		}
		trail := src[consumed+1]
		if trail < 0x40 || trail > 0xFE || (trail > 0x7E && trail < 0xA1) {
			end := consumed + 2
			if trail <= 0x7F {
				end = consumed + 1
			}
			return written, consumed, &errs.DecodeError{
				Cause: errs.InvalidData, Start: consumed, End: end, Written: written,
			}
		}

		ptr := pointer(lead, trail)
		r1, r2, ok := decodeGrapheme(ptr)
		if !ok {
			r, found := decodeTable[ptr]
			if !found {
				end := consumed + 2
				if trail <= 0x7F {
					end = consumed + 1
				}
				return written, consumed, &errs.DecodeError{
					Cause: errs.InvalidData, Start: consumed, End: end, Written: written,
				}
			}
			r1, r2 = r, 0
		}

		size := utf8.RuneLen(r1)
		if r2 != 0 {
			size += utf8.RuneLen(r2)
		}
		if written+size > len(dst) {
			break
		}
		written += utf8.EncodeRune(dst[written:], r1)
		if r2 != 0 {
			written += utf8.EncodeRune(dst[written:], r2)
		}
		consumed += 2
	}
	return written, consumed, nil
}

// decodeGrapheme reports the two-scalar expansion for the four pointers
// WHATWG BIG5 maps to a base letter plus a combining mark, rather than to
// a single precomposed scalar.
func decodeGrapheme(ptr int) (r1, r2 rune, ok bool) {
	switch ptr {
	case 1133:
		return 0x00CA, 0x0304, true
	case 1135:
		return 0x00CA, 0x030C, true
	case 1164:
		return 0x00EA, 0x0304, true
	case 1166:
		return 0x00EA, 0x030C, true
	}
	return 0, 0, false
}

// encodeGrapheme is the inverse of decodeGrapheme: given a base scalar and
// the scalar that follows it in the input, reports the two-byte sequence
// to emit in place of both, consuming the second scalar too.
func encodeGrapheme(a, b rune) (lead, trail byte, ok bool) {
	switch {
	case a == 0x00CA && b == 0x0304:
		return 0x88, 0x62, true
	case a == 0x00CA && b == 0x030C:
		return 0x88, 0x64, true
	case a == 0x00EA && b == 0x0304:
		return 0x88, 0xA3, true
	case a == 0x00EA && b == 0x030C:
		return 0x88, 0xA5, true
	}
	return 0, 0, false
}

// Encode converts UTF-8 from src into WHATWG BIG5 bytes in dst. A
// trailing U+00CA or U+00EA with no following scalar is deferred when
// atEOF is false, since the next chunk decides whether it starts a
// grapheme cluster.
func Encode(dst, src []byte, atEOF bool) (written, consumed int, err *errs.EncodeError) {
	for consumed < len(src) {
		r, size := utf8.DecodeRune(src[consumed:])
		if written >= len(dst) {
			break
		}
		if r <= 0x7F {
			dst[written] = byte(r)
			written++
			consumed += size
			continue
		}

		if r == 0x00CA || r == 0x00EA {
			next := src[consumed+size:]
			if len(next) > 0 {
				r2, size2 := utf8.DecodeRune(next)
				if lead, trail, ok := encodeGrapheme(r, r2); ok {
					if written+2 > len(dst) {
						break
					}
					dst[written] = lead
					dst[written+1] = trail
					written += 2
					consumed += size + size2
					continue
				}
			} else if !atEOF {
				break
			}
		}

		lead, trail, ok := encodeLookup(r)
		if !ok {
			return written, consumed, &errs.EncodeError{
				Rune: r, Start: consumed, End: consumed + size, Written: written,
			}
		}
		if written+2 > len(dst) {
			break
		}
		dst[written] = lead
		dst[written+1] = trail
		written += 2
		consumed += size
	}
	return written, consumed, nil
}
