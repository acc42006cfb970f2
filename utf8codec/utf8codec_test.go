// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeIdentity(t *testing.T) {
	src := []byte("héllo, 世界, \U0001F600")
	dst := make([]byte, len(src))
	written, consumed := Encode(dst, src)
	assert.Equal(t, len(src), written)
	assert.Equal(t, len(src), consumed)
	assert.Equal(t, src, dst[:written])
}

func TestEncodeShortDst(t *testing.T) {
	src := []byte("abc世界")
	dst := make([]byte, 4)
	written, consumed := Encode(dst, src)
	// "abc" (3 bytes) fits; the 3-byte rune for 世 does not fit in the
	// 1 remaining byte, so Encode stops before it.
	assert.Equal(t, 3, written)
	assert.Equal(t, 3, consumed)
}

func TestDecodeValid(t *testing.T) {
	src := []byte("héllo, 世界")
	dst := make([]byte, len(src))
	written, consumed, err := Decode(dst, src, true)
	require.Nil(t, err)
	assert.Equal(t, len(src), written)
	assert.Equal(t, len(src), consumed)
	assert.Equal(t, src, dst[:written])
}

func TestDecodeTruncatedNotAtEOF(t *testing.T) {
	// 0xE4 0xB8 is the first two bytes of "世" (0xE4 0xB8 0x96); a third
	// byte is still needed.
	src := []byte{'a', 0xE4, 0xB8}
	dst := make([]byte, len(src))
	written, consumed, err := Decode(dst, src, false)
	require.Nil(t, err)
	assert.Equal(t, 1, written)
	assert.Equal(t, 1, consumed)
}

func TestDecodeTruncatedAtEOF(t *testing.T) {
	src := []byte{'a', 0xE4, 0xB8}
	dst := make([]byte, len(src))
	written, consumed, err := Decode(dst, src, true)
	require.NotNil(t, err)
	assert.Equal(t, 1, written)
	assert.Equal(t, 1, consumed)
	assert.Equal(t, 1, err.Start)
	assert.Equal(t, 3, err.End)
}

func TestDecodeOverlongRejected(t *testing.T) {
	// 0xC0 0x80 is an overlong encoding of NUL.
	src := []byte{0xC0, 0x80}
	dst := make([]byte, len(src))
	_, _, err := Decode(dst, src, true)
	require.NotNil(t, err)
	assert.Equal(t, 0, err.Start)
}

func TestDecodeEncodedSurrogateRejected(t *testing.T) {
	// 0xED 0xA0 0x80 would encode U+D800, a surrogate, which is invalid
	// UTF-8.
	src := []byte{0xED, 0xA0, 0x80}
	dst := make([]byte, len(src))
	_, _, err := Decode(dst, src, true)
	require.NotNil(t, err)
}

func TestChunkInvariance(t *testing.T) {
	full := []byte("abc héllo 世界 \U0001F600 done")

	dst1 := make([]byte, len(full))
	w1, _, err := Decode(dst1, full, true)
	require.Nil(t, err)
	want := dst1[:w1]

	// Split the input at every byte offset, including mid-multi-byte
	// sequence, and confirm the two-call form reproduces the same
	// output as the single-call form.
	for split := 0; split <= len(full); split++ {
		var got []byte
		buf := make([]byte, 64)

		w, c, err := Decode(buf, full[:split], split == len(full))
		require.Nil(t, err)
		got = append(got, buf[:w]...)

		if split < len(full) {
			rest := append(full[c:split:split], full[split:]...)
			w2, _, err := Decode(buf, rest, true)
			require.Nil(t, err)
			got = append(got, buf[:w2]...)
		}
		assert.Equal(t, want, got, "split at %d", split)
	}
}
