// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package utf8codec validates and re-emits UTF-8, the internal
// representation every other codec in this module converts to and from.
// It is the degenerate "identity" codec: Encode and
// Decode both operate on already-canonical UTF-8, differing only in
// which side of the call is trusted.
package utf8codec

import (
	"unicode/utf8"

	"github.com/streamtext/textcodec/errs"
)

// Encode copies a well-formed internal UTF-8 scalar stream to dst
// verbatim, up to whatever whole scalars fit in dst. It never fails:
// encoding is the identity function once src is known-valid UTF-8.
func Encode(dst, src []byte) (written, consumed int) {
	for consumed < len(src) {
		_, size := utf8.DecodeRune(src[consumed:])
		if written+size > len(dst) {
			break
		}
		copy(dst[written:written+size], src[consumed:consumed+size])
		written += size
		consumed += size
	}
	return written, consumed
}

// Decode validates src as UTF-8 and copies the valid prefix to dst,
// stopping at the first malformed byte. Overlong encodings and encoded
// surrogates are rejected the same way DecodeRune rejects them: as a
// single-byte invalid run, matched to the width utf8.DecodeRune reports.
//
// A truncated multi-byte sequence at the end of src is only an error
// when atEOF is true, and then the error spans the whole unfinished
// sequence; otherwise Decode stops short and lets the caller supply the
// rest of the sequence in a later call.
func Decode(dst, src []byte, atEOF bool) (written, consumed int, err *errs.DecodeError) {
	for consumed < len(src) {
		c := src[consumed]
		if c < utf8.RuneSelf {
			if written >= len(dst) {
				break
			}
			dst[written] = c
			written++
			consumed++
			continue
		}

		r, size := utf8.DecodeRune(src[consumed:])
		if r == utf8.RuneError && size <= 1 {
			if !utf8.FullRune(src[consumed:]) {
				// src ends mid-sequence. Wait for the rest, or report
				// the whole unfinished sequence at end of stream.
				if !atEOF {
					break
				}
				return written, consumed, &errs.DecodeError{
					Cause:   errs.InvalidData,
					Start:   consumed,
					End:     len(src),
					Written: written,
				}
			}
			return written, consumed, &errs.DecodeError{
				Cause:   errs.InvalidData,
				Start:   consumed,
				End:     consumed + 1,
				Written: written,
			}
		}
		if written+size > len(dst) {
			break
		}
		copy(dst[written:written+size], src[consumed:consumed+size])
		written += size
		consumed += size
	}
	return written, consumed, nil
}
