// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traditionalchinese

import "github.com/streamtext/textcodec/transform"

// maxEncUnit and maxDecUnit bound, respectively, the longest byte run
// Encode or Decode can produce for a single two-byte BIG5 pair: two bytes
// out for encode, at most 4 bytes of UTF-8 out for decode (one
// supplementary-plane scalar, or one of the two-scalar grapheme
// clusters). Both
// functions check for a dangling lead byte before checking dst room, so
// a short source only leaves dst with no room still unwritten when dst
// was already too small to hold the worst case. If dst has at least
// that much room left, stopping short of len(src) can only mean Decode
// or Encode deferred a trailing byte pending more input.
const (
	maxEncUnit = 2
	maxDecUnit = 4
)

type big5Encoder struct{}
type big5Decoder struct{}

func (big5Encoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	nDst, nSrc, encErr := Encode(dst, src, atEOF)
	if encErr != nil {
		return nDst, nSrc, encErr
	}
	if nSrc < len(src) {
		if !atEOF && len(dst)-nDst >= maxEncUnit {
			return nDst, nSrc, transform.ErrShortSrc
		}
		return nDst, nSrc, transform.ErrShortDst
	}
	return nDst, nSrc, nil
}

func (big5Decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	nDst, nSrc, decErr := Decode(dst, src, atEOF)
	if decErr != nil {
		return nDst, nSrc, decErr
	}
	if nSrc < len(src) {
		if !atEOF && len(dst)-nDst >= maxDecUnit {
			return nDst, nSrc, transform.ErrShortSrc
		}
		return nDst, nSrc, transform.ErrShortDst
	}
	return nDst, nSrc, nil
}

// NewEncoder returns the WHATWG BIG5 encoder as a transform.Transformer.
func NewEncoder() transform.Transformer { return big5Encoder{} }

// NewDecoder returns the WHATWG BIG5 decoder as a transform.Transformer.
func NewDecoder() transform.Transformer { return big5Decoder{} }
