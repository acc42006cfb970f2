// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package charmap

// ASCII is the degenerate charmap: a decode table
// of all holes in the upper half, and (transitively, via New) an empty
// encode table. Only bytes/scalars 0x00-0x7F are representable.
var ASCII = New([128]rune{
	Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole,
	Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole,
	Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole,
	Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole,
	Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole,
	Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole,
	Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole,
	Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole, Hole,
})

func identity128() [128]rune {
	var t [128]rune
	for i := range t {
		t[i] = rune(0x80 + i)
	}
	return t
}

// ISO8859_1 (Latin-1) maps every byte to the identical scalar: bytes
// 0x80-0xFF are codepoints U+0080-U+00FF. Expressed as a formula rather
// than a literal table, since that is the entire definition.
var ISO8859_1 = New(identity128())
