// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package charmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamtext/textcodec/errs"
)

// TestRoundTripLossless decodes, then re-encodes, every defined byte
// value for every charmap this module defines; the result must reproduce
// the original bytes exactly.
func TestRoundTripLossless(t *testing.T) {
	maps := map[string]*Charmap{
		"ASCII":       ASCII,
		"ISO8859_1":   ISO8859_1,
		"ISO8859_2":   ISO8859_2,
		"ISO8859_3":   ISO8859_3,
		"ISO8859_4":   ISO8859_4,
		"ISO8859_5":   ISO8859_5,
		"ISO8859_6":   ISO8859_6,
		"ISO8859_7":   ISO8859_7,
		"ISO8859_8":   ISO8859_8,
		"ISO8859_9":   ISO8859_9,
		"ISO8859_10":  ISO8859_10,
		"ISO8859_11":  ISO8859_11,
		"ISO8859_13":  ISO8859_13,
		"ISO8859_14":  ISO8859_14,
		"ISO8859_15":  ISO8859_15,
		"ISO8859_16":  ISO8859_16,
		"KOI8R":       KOI8R,
		"KOI8U":       KOI8U,
		"MacRoman":    MacRoman,
		"MacCyrillic": MacCyrillic,
		"IBM866":      IBM866,
		"Windows874":  Windows874,
		"Windows1250": Windows1250,
		"Windows1251": Windows1251,
		"Windows1252": Windows1252,
		"Windows1253": Windows1253,
		"Windows1254": Windows1254,
		"Windows1255": Windows1255,
		"Windows1256": Windows1256,
		"Windows1257": Windows1257,
		"Windows1258": Windows1258,
	}

	for name, m := range maps {
		t.Run(name, func(t *testing.T) {
			src := make([]byte, 0, 256)
			for b := 0; b < 256; b++ {
				// Holes have no scalar, so they are excluded
				// from the round-trip set.
				if b >= 0x80 && m.decode[b-0x80] == Hole {
					continue
				}
				src = append(src, byte(b))
			}

			decDst := make([]byte, len(src)*4)
			written, consumed, decErr := m.Decode(decDst, src)
			require.Nil(t, decErr)
			require.Equal(t, len(src), consumed)

			encDst := make([]byte, len(src))
			encWritten, encConsumed, encErr := m.Encode(encDst, decDst[:written])
			require.Nil(t, encErr)
			require.Equal(t, written, encConsumed)
			assert.Equal(t, src, encDst[:encWritten])
		})
	}
}

func TestASCIIIsDegenerate(t *testing.T) {
	assert.Empty(t, ASCII.encode)
	for _, r := range ASCII.decode {
		assert.Equal(t, Hole, r)
	}
}

func TestDecodeHoleIsInvalidData(t *testing.T) {
	// Windows-1252 byte 0x81 is an undefined C1 control slot.
	dst := make([]byte, 4)
	_, _, err := Windows1252.Decode(dst, []byte{0x81})
	require.NotNil(t, err)
	assert.Equal(t, errs.InvalidData, err.Cause)
	assert.Equal(t, 0, err.Start)
	assert.Equal(t, 1, err.End)
}

func TestEncodeMissingScalar(t *testing.T) {
	dst := make([]byte, 4)
	// U+4E16 ("世") has no Latin-1 representation.
	_, _, err := ISO8859_1.Encode(dst, []byte("世"))
	require.NotNil(t, err)
	assert.Equal(t, rune(0x4E16), err.Rune)
}

func TestEncodeASCIIPassthrough(t *testing.T) {
	dst := make([]byte, 3)
	written, consumed, err := Windows1251.Encode(dst, []byte("abc"))
	require.Nil(t, err)
	assert.Equal(t, 3, written)
	assert.Equal(t, 3, consumed)
	assert.Equal(t, []byte("abc"), dst)
}

// TestOutputBounds checks that the returned slice never exceeds the
// caller's buffer and Decode never writes past it.
func TestOutputBounds(t *testing.T) {
	dst := make([]byte, 1)
	src := []byte{'a', 'b', 'c'}
	written, consumed, err := ISO8859_1.Decode(dst, src)
	require.Nil(t, err)
	assert.LessOrEqual(t, written, len(dst))
	assert.Equal(t, 1, written)
	assert.Equal(t, 1, consumed)
}

func TestKOI8UDiffersFromKOI8ROnlyInUkrainianSlots(t *testing.T) {
	diff := 0
	for i := range KOI8R.decode {
		if KOI8R.decode[i] != KOI8U.decode[i] {
			diff++
		}
	}
	assert.Equal(t, 8, diff)
}
