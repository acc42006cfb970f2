// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixedwidth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamtext/textcodec/errs"
)

func TestUTF16RoundTripSupplementaryPlane(t *testing.T) {
	for _, order := range []ByteOrder{LittleEndian, BigEndian} {
		src := []byte("hi \U0001F600 bye")
		enc := make([]byte, 64)
		written, consumed := EncodeUTF16(enc, src, order)
		require.Equal(t, len(src), consumed)

		dec := make([]byte, 64)
		decWritten, decConsumed, err := DecodeUTF16(dec, enc[:written], order, true)
		require.Nil(t, err)
		assert.Equal(t, written, decConsumed)
		assert.Equal(t, src, dec[:decWritten])
	}
}

func TestUTF16UnpairedHighSurrogateDeferredUntilEOF(t *testing.T) {
	// 0x00 0xD8 is 0xD800 little-endian: a lone high surrogate.
	src := []byte{0x00, 0xD8}
	dst := make([]byte, 8)

	written, consumed, err := DecodeUTF16(dst, src, LittleEndian, false)
	require.Nil(t, err)
	assert.Equal(t, 0, written)
	assert.Equal(t, 0, consumed)

	_, _, err = DecodeUTF16(dst, src, LittleEndian, true)
	require.NotNil(t, err)
	assert.Equal(t, errs.InvalidData, err.Cause)
}

func TestUTF16UnpairedLowSurrogateIsAlwaysInvalid(t *testing.T) {
	// 0xDC00 little-endian: a lone low surrogate, never valid on its own.
	src := []byte{0x00, 0xDC}
	dst := make([]byte, 8)
	_, _, err := DecodeUTF16(dst, src, LittleEndian, false)
	require.NotNil(t, err)
	assert.Equal(t, errs.InvalidData, err.Cause)
	assert.Equal(t, 0, err.Start)
	assert.Equal(t, 2, err.End)
}

// A UTF-32LE code unit of 0x00110000 (> 0x10FFFF) is not a valid
// scalar.
func TestUTF32DecodeOutOfRangeScalar(t *testing.T) {
	src := []byte{0x00, 0x00, 0x11, 0x00}
	dst := make([]byte, 8)
	_, _, err := DecodeUTF32(dst, src, LittleEndian, true)
	require.NotNil(t, err)
	assert.Equal(t, errs.InvalidData, err.Cause)
	assert.Equal(t, 0, err.Start)
	assert.Equal(t, 4, err.End)
}

func TestUTF32DecodeSurrogateScalarRejected(t *testing.T) {
	// 0x0000D800 little-endian: a surrogate value is never a valid scalar.
	src := []byte{0x00, 0xD8, 0x00, 0x00}
	dst := make([]byte, 8)
	_, _, err := DecodeUTF32(dst, src, LittleEndian, true)
	require.NotNil(t, err)
}

func TestUTF32RoundTrip(t *testing.T) {
	for _, order := range []ByteOrder{LittleEndian, BigEndian} {
		src := []byte("hi \U0001F600 bye")
		enc := make([]byte, 64)
		written, _ := EncodeUTF32(enc, src, order)

		dec := make([]byte, 64)
		decWritten, _, err := DecodeUTF32(dec, enc[:written], order, true)
		require.Nil(t, err)
		assert.Equal(t, src, dec[:decWritten])
	}
}

func TestUTF32PartialTrailerDeferredUntilEOF(t *testing.T) {
	src := []byte{0x41, 0x00, 0x00} // 3 of 4 bytes of U+0041.
	dst := make([]byte, 8)

	written, consumed, err := DecodeUTF32(dst, src, LittleEndian, false)
	require.Nil(t, err)
	assert.Equal(t, 0, written)
	assert.Equal(t, 0, consumed)

	_, _, err = DecodeUTF32(dst, src, LittleEndian, true)
	require.NotNil(t, err)
}

// TestChunkInvarianceUTF16 splits a stream at every byte offset,
// including mid-surrogate-pair; the decoded output must not change.
func TestChunkInvarianceUTF16(t *testing.T) {
	src := []byte("a\U0001F600b\U0001F601c")
	enc := make([]byte, 64)
	written, _ := EncodeUTF16(enc, src, BigEndian)
	full := enc[:written]

	oneShot := make([]byte, 64)
	wantWritten, _, err := DecodeUTF16(oneShot, full, BigEndian, true)
	require.Nil(t, err)
	want := oneShot[:wantWritten]

	for split := 0; split <= len(full); split++ {
		var got []byte
		buf := make([]byte, 64)

		w1, c1, err := DecodeUTF16(buf, full[:split], BigEndian, split == len(full))
		require.Nil(t, err)
		got = append(got, buf[:w1]...)

		if split < len(full) {
			rest := append(full[c1:split:split], full[split:]...)
			w2, _, err := DecodeUTF16(buf, rest, BigEndian, true)
			require.Nil(t, err)
			got = append(got, buf[:w2]...)
		}
		assert.Equal(t, want, got, "split at %d", split)
	}
}
