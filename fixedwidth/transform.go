// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixedwidth

import "github.com/streamtext/textcodec/transform"

// maxUTF16Unit and maxUTF32Unit bound the longest dst run a single call
// to the encode/decode functions below can still be blocked on writing.
// Both DecodeUTF16 and DecodeUTF32 check for a truncated trailing code
// unit (or an unpaired high surrogate) before they'd need more dst room
// for it, so if dst still has that much space left when consumed falls
// short of len(src), the stall can only be a deferred trailing unit
// waiting on more input, not a full dst buffer.
const (
	maxUTF16Unit = 4
	maxUTF32Unit = 4
)

type utf16Encoder struct{ order ByteOrder }
type utf16Decoder struct{ order ByteOrder }
type utf32Encoder struct{ order ByteOrder }
type utf32Decoder struct{ order ByteOrder }

func (e utf16Encoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	nDst, nSrc = EncodeUTF16(dst, src, e.order)
	if nSrc < len(src) {
		return nDst, nSrc, transform.ErrShortDst
	}
	return nDst, nSrc, nil
}

func (d utf16Decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	nDst, nSrc, decErr := DecodeUTF16(dst, src, d.order, atEOF)
	if decErr != nil {
		return nDst, nSrc, decErr
	}
	if nSrc < len(src) {
		if !atEOF && len(dst)-nDst >= maxUTF16Unit {
			return nDst, nSrc, transform.ErrShortSrc
		}
		return nDst, nSrc, transform.ErrShortDst
	}
	return nDst, nSrc, nil
}

func (e utf32Encoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	nDst, nSrc = EncodeUTF32(dst, src, e.order)
	if nSrc < len(src) {
		return nDst, nSrc, transform.ErrShortDst
	}
	return nDst, nSrc, nil
}

func (d utf32Decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	nDst, nSrc, decErr := DecodeUTF32(dst, src, d.order, atEOF)
	if decErr != nil {
		return nDst, nSrc, decErr
	}
	if nSrc < len(src) {
		if !atEOF && len(dst)-nDst >= maxUTF32Unit {
			return nDst, nSrc, transform.ErrShortSrc
		}
		return nDst, nSrc, transform.ErrShortDst
	}
	return nDst, nSrc, nil
}

// NewUTF16Encoder returns a transform.Transformer that encodes UTF-8 to
// 16-bit code units in the given byte order.
func NewUTF16Encoder(order ByteOrder) transform.Transformer { return utf16Encoder{order} }

// NewUTF16Decoder returns a transform.Transformer that decodes 16-bit code
// units in the given byte order to UTF-8.
func NewUTF16Decoder(order ByteOrder) transform.Transformer { return utf16Decoder{order} }

// NewUTF32Encoder returns a transform.Transformer that encodes UTF-8 to
// 32-bit code units in the given byte order.
func NewUTF32Encoder(order ByteOrder) transform.Transformer { return utf32Encoder{order} }

// NewUTF32Decoder returns a transform.Transformer that decodes 32-bit code
// units in the given byte order to UTF-8.
func NewUTF32Decoder(order ByteOrder) transform.Transformer { return utf32Decoder{order} }
