// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8codec

import "github.com/streamtext/textcodec/transform"

// maxDecUnit bounds the longest UTF-8 sequence Decode can still be
// blocked on writing (4 bytes). Decode checks for a truncated trailing
// sequence before it would need more dst room for it, so if dst still
// has that much space left when consumed falls short of len(src), the
// stall can only be a deferred trailing sequence waiting on more input,
// not a full dst buffer.
const maxDecUnit = 4

type encoder struct{}
type decoder struct{}

func (encoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	nDst, nSrc = Encode(dst, src)
	if nSrc < len(src) {
		return nDst, nSrc, transform.ErrShortDst
	}
	return nDst, nSrc, nil
}

func (decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
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

// NewEncoder returns the identity encoder as a transform.Transformer.
func NewEncoder() transform.Transformer { return encoder{} }

// NewDecoder returns the UTF-8 validator as a transform.Transformer.
func NewDecoder() transform.Transformer { return decoder{} }
