// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package charmap

import "github.com/streamtext/textcodec/transform"

type charmapEncoder struct{ m *Charmap }

func (e charmapEncoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	nDst, nSrc, encErr := e.m.Encode(dst, src)
	if encErr != nil {
		return nDst, nSrc, encErr
	}
	if nSrc < len(src) {
		return nDst, nSrc, transform.ErrShortDst
	}
	return nDst, nSrc, nil
}

type charmapDecoder struct{ m *Charmap }

func (d charmapDecoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	nDst, nSrc, decErr := d.m.Decode(dst, src)
	if decErr != nil {
		return nDst, nSrc, decErr
	}
	if nSrc < len(src) {
		return nDst, nSrc, transform.ErrShortDst
	}
	return nDst, nSrc, nil
}

// NewEncoder returns m as a transform.Transformer, so it composes with
// transform.NewReader/NewWriter, io.Copy, and the rest of the streaming
// toolkit.
func (m *Charmap) NewEncoder() transform.Transformer { return charmapEncoder{m} }

// NewDecoder returns m as a transform.Transformer.
func (m *Charmap) NewDecoder() transform.Transformer { return charmapDecoder{m} }
