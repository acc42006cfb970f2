// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package japanese

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamtext/textcodec/errs"
)

// 0xF0 0x40 is the first EUDC pointer, reconstructed by formula rather
// than table lookup.
func TestDecodeEUDC(t *testing.T) {
	dst := make([]byte, 8)
	written, consumed, err := Decode(dst, []byte{0xF0, 0x40}, true)
	require.Nil(t, err)
	assert.Equal(t, 2, consumed)
	assert.Equal(t, "", string(dst[:written]))
}

// U+2212 MINUS SIGN encodes as if it were U+FF0D FULLWIDTH HYPHEN-MINUS.
func TestEncodeMinusSignSubstitution(t *testing.T) {
	dst := make([]byte, 8)
	written, consumed, err := Encode(dst, []byte("−"))
	require.Nil(t, err)
	assert.Equal(t, []byte{0x81, 0x7C}, dst[:written])
	assert.Equal(t, len("−"), consumed)
}

func TestEncodeYenSign(t *testing.T) {
	dst := make([]byte, 8)
	written, _, err := Encode(dst, []byte("¥"))
	require.Nil(t, err)
	assert.Equal(t, []byte{0x5C}, dst[:written])
}

func TestEncodeOverline(t *testing.T) {
	dst := make([]byte, 8)
	written, _, err := Encode(dst, []byte("‾"))
	require.Nil(t, err)
	assert.Equal(t, []byte{0x7E}, dst[:written])
}

func TestEncodeHalfWidthKatakana(t *testing.T) {
	dst := make([]byte, 8)
	written, consumed, err := Encode(dst, []byte("｡ﾟ"))
	require.Nil(t, err)
	assert.Equal(t, []byte{0xA1, 0xDF}, dst[:written])
	assert.Equal(t, len("｡ﾟ"), consumed)
}

func TestDecodeHalfWidthKatakana(t *testing.T) {
	dst := make([]byte, 8)
	written, consumed, err := Decode(dst, []byte{0xA1, 0xDF}, true)
	require.Nil(t, err)
	assert.Equal(t, "｡ﾟ", string(dst[:written]))
	assert.Equal(t, 2, consumed)
}

func TestDecodeEUDCRoundTrip(t *testing.T) {
	dst := make([]byte, 8)
	written, _, err := Decode(dst, []byte{0xF0, 0x40}, true)
	require.Nil(t, err)

	enc := make([]byte, 8)
	encWritten, _, encErr := Encode(enc, dst[:written])
	require.Nil(t, encErr)
	assert.Equal(t, []byte{0xF0, 0x40}, enc[:encWritten])
}

func TestDecode0x80IsU0080(t *testing.T) {
	dst := make([]byte, 8)
	written, consumed, err := Decode(dst, []byte{0x80}, true)
	require.Nil(t, err)
	assert.Equal(t, "", string(dst[:written]))
	assert.Equal(t, 1, consumed)
}

func TestDecodeInvalidLeadByte(t *testing.T) {
	dst := make([]byte, 8)
	// 0xA0 is an unassigned lead byte in WHATWG Shift-JIS.
	_, _, err := Decode(dst, []byte{0xA0}, true)
	require.NotNil(t, err)
	assert.Equal(t, errs.InvalidData, err.Cause)
}

func TestDecodeInvalidLeadByteFD(t *testing.T) {
	dst := make([]byte, 8)
	_, _, err := Decode(dst, []byte{0xFD}, true)
	require.NotNil(t, err)
	assert.Equal(t, errs.InvalidData, err.Cause)
}

func TestDecodeTrailerDeferredWithoutEOF(t *testing.T) {
	dst := make([]byte, 8)
	written, consumed, err := Decode(dst, []byte{0x81}, false)
	require.Nil(t, err)
	assert.Equal(t, 0, written)
	assert.Equal(t, 0, consumed)
}

func TestDecodeTrailerMissingAtEOF(t *testing.T) {
	dst := make([]byte, 8)
	_, _, err := Decode(dst, []byte{0x81}, true)
	require.NotNil(t, err)
	assert.Equal(t, errs.InvalidData, err.Cause)
}

func TestEncodeUnmappableScalar(t *testing.T) {
	dst := make([]byte, 8)
	_, _, err := Encode(dst, []byte("\U0001F600"))
	require.NotNil(t, err)
	assert.Equal(t, rune(0x1F600), err.Rune)
}

func TestDecodeASCIIPassthrough(t *testing.T) {
	dst := make([]byte, 8)
	written, consumed, err := Decode(dst, []byte("abc"), true)
	require.Nil(t, err)
	assert.Equal(t, "abc", string(dst[:written]))
	assert.Equal(t, 3, consumed)
}

// TestChunkInvariance splits a Shift-JIS stream at every byte offset and
// checks the two-call decode matches the one-call decode exactly.
func TestChunkInvariance(t *testing.T) {
	full := []byte{0xF0, 0x40, 0x82, 0xA2, 0xA1, 'x'} // EUDC, い, half-width ｡, ASCII
	want := make([]byte, 64)
	wantWritten, _, err := Decode(want, full, true)
	require.Nil(t, err)
	want = want[:wantWritten]

	for split := 0; split <= len(full); split++ {
		var got []byte
		buf := make([]byte, 64)
		w1, c1, err := Decode(buf, full[:split], split == len(full))
		require.Nil(t, err)
		got = append(got, buf[:w1]...)
		if split < len(full) {
			rest := append(full[c1:split:split], full[split:]...)
			w2, _, err := Decode(buf, rest, true)
			require.Nil(t, err)
			got = append(got, buf[:w2]...)
		}
		assert.Equal(t, want, got, "split at %d", split)
	}
}
