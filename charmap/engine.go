// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package charmap implements the shared single-byte codec engine and
// its instantiation for every ASCII-extension
// encoding this module supports: ASCII, ISO-8859-1
// through 16 (12 is not assigned, matching the Unicode Consortium's
// own withdrawal of that part; 11 is present as TIS-620), KOI8-R,
// KOI8-U, MacRoman, MacCyrillic, IBM-866, and Windows code pages 874
// and 1250 through 1258.
//
// Every encoding here is a strict superset of ASCII: bytes 0x00-0x7F
// always decode to the identical scalar, and scalars 0-127 always
// encode to the identical byte. Only the upper half (0x80-0xFF) needs
// a table.
package charmap

import (
	"sort"
	"unicode/utf8"

	"github.com/streamtext/textcodec/errs"
)

// Hole marks an undefined entry in a decode table.
const Hole rune = 0xFFFD

// encPair is one (scalar, byte) entry of a sorted encode table.
type encPair struct {
	r rune
	b byte
}

// Charmap binds a decode table (128 scalars for bytes 0x80-0xFF) to its
// derived encode table: a sorted list of (scalar, byte) pairs built from
// the non-hole entries of the decode table.
type Charmap struct {
	decode [128]rune
	encode []encPair
}

// New builds a Charmap from a 128-entry upper-half decode table. Holes
// are Hole (U+FFFD). The encode table is derived once, here, rather than
// hand-maintained per encoding, so the two tables can never disagree.
func New(decode [128]rune) *Charmap {
	enc := make([]encPair, 0, 128)
	for i, r := range decode {
		if r == Hole {
			continue
		}
		enc = append(enc, encPair{r, byte(0x80 + i)})
	}
	sort.Slice(enc, func(i, j int) bool { return enc[i].r < enc[j].r })
	return &Charmap{decode: decode, encode: enc}
}

// Encode converts UTF-8 from src into single-byte output in dst: ASCII
// passes through verbatim, everything else is a binary search of the
// encode table, and the first unrepresentable scalar is an EncodeError.
func (m *Charmap) Encode(dst, src []byte) (written, consumed int, err *errs.EncodeError) {
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
		i := sort.Search(len(m.encode), func(i int) bool { return m.encode[i].r >= r })
		if i == len(m.encode) || m.encode[i].r != r {
			return written, consumed, &errs.EncodeError{
				Rune:    r,
				Start:   consumed,
				End:     consumed + size,
				Written: written,
			}
		}
		dst[written] = m.encode[i].b
		written++
		consumed += size
	}
	return written, consumed, nil
}

// Decode converts single-byte input from src into UTF-8 in dst: bytes
// below 0x80 pass through verbatim, the rest index the 128-entry
// upper-half table, and a hole is a DecodeError with cause InvalidData.
func (m *Charmap) Decode(dst, src []byte) (written, consumed int, err *errs.DecodeError) {
	for consumed < len(src) {
		b := src[consumed]
		if b < 0x80 {
			if written >= len(dst) {
				break
			}
			dst[written] = b
			written++
			consumed++
			continue
		}
		r := m.decode[b-0x80]
		if r == Hole {
			return written, consumed, &errs.DecodeError{
				Cause:   errs.InvalidData,
				Start:   consumed,
				End:     consumed + 1,
				Written: written,
			}
		}
		size := utf8.RuneLen(r)
		if written+size > len(dst) {
			break
		}
		written += utf8.EncodeRune(dst[written:], r)
		consumed++
	}
	return written, consumed, nil
}
