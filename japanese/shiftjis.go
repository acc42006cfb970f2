// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package japanese implements the WHATWG Shift-JIS codec: a stateless,
// mostly-two-byte encoding with half-width katakana living in the
// single-byte range, a block of End-User-Defined Characters mapped by
// formula instead of by table, and the same ASCII-preservation
// error-range rule as the BIG5 codec in package traditionalchinese.
package japanese

import (
	"unicode/utf8"

	"github.com/streamtext/textcodec/errs"
)

const (
	eudcPtrLo = 8836
	eudcPtrHi = 10715
)

func pointer(lead, trail byte) int {
	leadOffset := byte(0x81)
	if lead >= 0xA0 {
		leadOffset = 0xC1
	}
	trailOffset := byte(0x40)
	if trail >= 0x7F {
		trailOffset = 0x41
	}
	return int(lead-leadOffset)*188 + int(trail-trailOffset)
}

// Decode implements WHATWG Shift-JIS decoding.
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
		if lead == 0x80 {
			if written+2 > len(dst) {
				break
			}
			written += utf8.EncodeRune(dst[written:], 0x80)
			consumed++
			continue
		}
		if lead >= 0xA1 && lead <= 0xDF {
			// Half-width katakana, one byte in, one scalar out.
			if written+3 > len(dst) {
				break
			}
			r := rune(lead) + 0xFF61 - 0xA1
			written += utf8.EncodeRune(dst[written:], r)
			consumed++
			continue
		}
		if (lead > 0x9F && lead < 0xE0) || lead > 0xFC {
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
		if trail < 0x40 || trail == 0x7F || trail > 0xFC {
			end := consumed + 2
			if trail <= 0x7F {
				end = consumed + 1
			}
			return written, consumed, &errs.DecodeError{
				Cause: errs.InvalidData, Start: consumed, End: end, Written: written,
			}
		}

		ptr := pointer(lead, trail)
		var r rune
		switch {
		case ptr >= eudcPtrLo && ptr <= eudcPtrHi:
			r = rune(ptr-eudcPtrLo) + 0xE000
		default:
			found, ok := decodeTable[ptr]
			if !ok {
				end := consumed + 2
				if trail <= 0x7F {
					end = consumed + 1
				}
				return written, consumed, &errs.DecodeError{
					Cause: errs.InvalidData, Start: consumed, End: end, Written: written,
				}
			}
			r = found
		}

		if written+utf8.RuneLen(r) > len(dst) {
			break
		}
		written += utf8.EncodeRune(dst[written:], r)
		consumed += 2
	}
	return written, consumed, nil
}

// Encode implements WHATWG Shift-JIS encoding.
func Encode(dst, src []byte) (written, consumed int, err *errs.EncodeError) {
	for consumed < len(src) {
		r, size := utf8.DecodeRune(src[consumed:])
		if written >= len(dst) {
			break
		}
		switch {
		case r <= 0x80:
			dst[written] = byte(r)
			written++
			consumed += size
			continue
		case r == 0x00A5:
			dst[written] = 0x5C
			written++
			consumed += size
			continue
		case r == 0x203E:
			dst[written] = 0x7E
			written++
			consumed += size
			continue
		case r >= 0xFF61 && r <= 0xFF9F:
			dst[written] = byte(r-0xFF61) + 0xA1
			written++
			consumed += size
			continue
		}

		if written+2 > len(dst) {
			break
		}

		var lead, trail byte
		switch {
		case r >= 0xE000 && r <= 0xE757:
			ptr := int(r-0xE000) + eudcPtrLo
			l := ptr / 188
			leadOffset := 0x81
			if l >= 0x1F {
				leadOffset = 0xC1
			}
			t := ptr % 188
			trailOffset := 0x40
			if t >= 0x3F {
				trailOffset = 0x41
			}
			lead = byte(l + leadOffset)
			trail = byte(t + trailOffset)
		default:
			enc := r
			if enc == 0x2212 {
				enc = 0xFF0D
			}
			l, t, ok := encodeLookup(enc)
			if !ok {
				return written, consumed, &errs.EncodeError{
					Rune: r, Start: consumed, End: consumed + size, Written: written,
				}
			}
			lead, trail = l, t
		}
		dst[written] = lead
		dst[written+1] = trail
		written += 2
		consumed += size
	}
	return written, consumed, nil
}
