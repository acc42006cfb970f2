// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fixedwidth implements the UTF-16 and UTF-32 codecs, in both
// endiannesses. Unlike the single- and double-byte
// codecs, these never consult a table: the work is entirely surrogate
// arithmetic and byte-order bookkeeping.
package fixedwidth

import (
	"unicode/utf8"

	"github.com/streamtext/textcodec/errs"
)

// ByteOrder selects how a fixed-width code unit is laid out in bytes.
type ByteOrder int

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

func put32(b []byte, order ByteOrder, v uint32) {
	if order == LittleEndian {
		b[0] = byte(v)
		b[1] = byte(v >> 8)
		b[2] = byte(v >> 16)
		b[3] = byte(v >> 24)
	} else {
		b[0] = byte(v >> 24)
		b[1] = byte(v >> 16)
		b[2] = byte(v >> 8)
		b[3] = byte(v)
	}
}

func get32(b []byte, order ByteOrder) uint32 {
	if order == LittleEndian {
		return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	}
	return uint32(b[3]) | uint32(b[2])<<8 | uint32(b[1])<<16 | uint32(b[0])<<24
}

// EncodeUTF32 writes each scalar of src (valid internal UTF-8) as a
// 4-byte code unit in the given byte order. No atEOF flag is needed:
// the input is guaranteed to be whole scalars.
func EncodeUTF32(dst, src []byte, order ByteOrder) (written, consumed int) {
	for consumed < len(src) {
		r, size := utf8.DecodeRune(src[consumed:])
		if written+4 > len(dst) {
			break
		}
		put32(dst[written:], order, uint32(r))
		written += 4
		consumed += size
	}
	return written, consumed
}

// DecodeUTF32 reads 4-byte code units in the given byte order and emits
// the corresponding scalar as UTF-8.
//
// A trailing run of fewer than 4 bytes is a deferral (consumed stops
// before it) unless atEOF is true, in which case it is an invalid-data
// error spanning the whole trailing run.
func DecodeUTF32(dst, src []byte, order ByteOrder, atEOF bool) (written, consumed int, err *errs.DecodeError) {
	for consumed+4 <= len(src) {
		v := get32(src[consumed:], order)
		if v > 0x10FFFF || (0xD800 <= v && v <= 0xDFFF) {
			return written, consumed, &errs.DecodeError{
				Cause:   errs.InvalidData,
				Start:   consumed,
				End:     consumed + 4,
				Written: written,
			}
		}
		size := utf8.RuneLen(rune(v))
		if written+size > len(dst) {
			break
		}
		written += utf8.EncodeRune(dst[written:], rune(v))
		consumed += 4
	}
	if len(src)-consumed > 0 && len(src)-consumed < 4 {
		if atEOF {
			return written, consumed, &errs.DecodeError{
				Cause:   errs.InvalidData,
				Start:   consumed,
				End:     len(src),
				Written: written,
			}
		}
	}
	return written, consumed, nil
}
