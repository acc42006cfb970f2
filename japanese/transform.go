// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package japanese

import "github.com/streamtext/textcodec/transform"

// maxDecUnit bounds the longest UTF-8 scalar Decode can still be blocked
// on writing; Decode checks for a dangling lead byte before it checks
// dst room, so if dst has at least this much space left, a short source
// can only be a deferred trailing byte.
const maxDecUnit = 4

type sjisEncoder struct{}
type sjisDecoder struct{}

// Encode takes no atEOF: Shift-JIS encoding never defers on input, since
// a well-formed UTF-8 source always carries whole scalars.
func (sjisEncoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	nDst, nSrc, encErr := Encode(dst, src)
	if encErr != nil {
		return nDst, nSrc, encErr
	}
	if nSrc < len(src) {
		return nDst, nSrc, transform.ErrShortDst
	}
	return nDst, nSrc, nil
}

func (sjisDecoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
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

// NewEncoder returns the WHATWG Shift-JIS encoder as a transform.Transformer.
func NewEncoder() transform.Transformer { return sjisEncoder{} }

// NewDecoder returns the WHATWG Shift-JIS decoder as a transform.Transformer.
func NewDecoder() transform.Transformer { return sjisDecoder{} }
