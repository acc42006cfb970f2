// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traditionalchinese

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamtext/textcodec/errs"
)

func TestDecodeSentence(t *testing.T) {
	src := []byte{0xA4, 0xB5, 0xA4, 0xE9, 0xC7, 0x56, 0xC6, 0xEA, 0xC6, 0xEA, 0xC7, 0x6F, 0xA1, 0x49}
	dst := make([]byte, 64)
	written, consumed, err := Decode(dst, src, true)
	require.Nil(t, err)
	assert.Equal(t, len(src), consumed)
	assert.Equal(t, "今日はいいよ！", string(dst[:written]))
}

// 0x87 0x40 is the first pointer of the Hong Kong extension block.
func TestDecodeLeadBoundary(t *testing.T) {
	dst := make([]byte, 8)
	written, consumed, err := Decode(dst, []byte{0x87, 0x40}, true)
	require.Nil(t, err)
	assert.Equal(t, 2, consumed)
	assert.Equal(t, "䏰", string(dst[:written]))
}

// Pointer 1133 decodes to a two-scalar cluster, not a single scalar.
func TestDecodeGraphemeCluster(t *testing.T) {
	dst := make([]byte, 8)
	written, consumed, err := Decode(dst, []byte{0x88, 0x62}, true)
	require.Nil(t, err)
	assert.Equal(t, 2, consumed)
	assert.Equal(t, "Ê̄", string(dst[:written]))
}

// An ASCII trailer after an invalid lead byte stays out of the error
// range, so the next call still sees it.
func TestDecodeInvalidLeadPreservesASCIITrailer(t *testing.T) {
	dst := make([]byte, 8)
	written, consumed, err := Decode(dst, []byte{0x80, 0x61}, true)
	require.NotNil(t, err)
	assert.Equal(t, 0, written)
	assert.Equal(t, 0, consumed)
	assert.Equal(t, 0, err.Start)
	assert.Equal(t, 1, err.End)
	assert.Equal(t, errs.InvalidData, err.Cause)
}

func TestEncodeGraphemePair(t *testing.T) {
	dst := make([]byte, 8)
	written, consumed, err := Encode(dst, []byte("Ê̄"), true)
	require.Nil(t, err)
	assert.Equal(t, []byte{0x88, 0x62}, dst[:written])
	assert.Equal(t, len("Ê̄"), consumed)
}

// A lone grapheme-candidate scalar at the end of a non-final chunk must
// defer, consuming nothing.
func TestEncodeGraphemeCandidateDeferred(t *testing.T) {
	dst := make([]byte, 8)
	written, consumed, err := Encode(dst, []byte("Ê"), false)
	require.Nil(t, err)
	assert.Equal(t, 0, written)
	assert.Equal(t, 0, consumed)
}

// At EOF, a lone U+00CA with no following scalar is no longer a grapheme
// candidate, so Encode falls through to the ordinary encode-table lookup
// and emits the two-byte code for U+00CA itself.
func TestEncodeLoneGraphemeCandidateAtEOF(t *testing.T) {
	dst := make([]byte, 8)
	written, consumed, err := Encode(dst, []byte("Ê"), true)
	require.Nil(t, err)
	assert.Equal(t, []byte{0x88, 0x66}, dst[:written])
	assert.Equal(t, len("Ê"), consumed)
}

func TestDecodeASCIIPassthrough(t *testing.T) {
	dst := make([]byte, 8)
	written, consumed, err := Decode(dst, []byte("abc"), true)
	require.Nil(t, err)
	assert.Equal(t, "abc", string(dst[:written]))
	assert.Equal(t, 3, consumed)
}

func TestDecodeTrailerDeferredWithoutEOF(t *testing.T) {
	dst := make([]byte, 8)
	written, consumed, err := Decode(dst, []byte{0xA4}, false)
	require.Nil(t, err)
	assert.Equal(t, 0, written)
	assert.Equal(t, 0, consumed)
}

func TestDecodeTrailerMissingAtEOFIsInvalid(t *testing.T) {
	dst := make([]byte, 8)
	_, _, err := Decode(dst, []byte{0xA4}, true)
	require.NotNil(t, err)
	assert.Equal(t, errs.InvalidData, err.Cause)
}

func TestDecodeUnmappedPointerNonASCIITrailerSpansTwoBytes(t *testing.T) {
	// 0x81 0xA1 (pointer 63) is a hole in the WHATWG BIG5 index, and the
	// trailer is not ASCII, so the error spans both bytes.
	dst := make([]byte, 8)
	_, consumed, err := Decode(dst, []byte{0x81, 0xA1}, true)
	require.NotNil(t, err)
	assert.Equal(t, 0, consumed)
	assert.Equal(t, 2, err.End-err.Start)
}

func TestDecodeUnmappedPointerASCIITrailerSpansOneByte(t *testing.T) {
	// 0x81 0x40 (pointer 0) is a hole in the WHATWG BIG5 index; the
	// ASCII-preservation rule keeps the ASCII trailer in the stream, so
	// the error spans only the lead byte.
	dst := make([]byte, 8)
	_, consumed, err := Decode(dst, []byte{0x81, 0x40}, true)
	require.NotNil(t, err)
	assert.Equal(t, 0, consumed)
	assert.Equal(t, 1, err.End-err.Start)
}

func TestEncodeUnmappableScalar(t *testing.T) {
	dst := make([]byte, 8)
	// U+1F600 has no BIG5 representation.
	_, _, err := Encode(dst, []byte("\U0001F600"), true)
	require.NotNil(t, err)
	assert.Equal(t, rune(0x1F600), err.Rune)
}

// TestChunkInvariance splits a BIG5 stream at every byte offset and
// checks the two-call decode matches the one-call decode exactly.
func TestChunkInvariance(t *testing.T) {
	full := []byte{0xA4, 0xB5, 0xA4, 0xE9, 0xC7, 0x56, 0xC6, 0xEA, 0xC6, 0xEA, 0xC7, 0x6F, 0xA1, 0x49}

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
