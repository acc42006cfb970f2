// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeErrorMessage(t *testing.T) {
	e := &EncodeError{Rune: 0x1F600, Start: 3, End: 7, Written: 2}
	assert.Contains(t, e.Error(), "U+1F600")
	assert.Contains(t, e.Error(), "[3,7)")
}

func TestDecodeErrorMessage(t *testing.T) {
	cases := []struct {
		cause DecodeErrorCause
		want  string
	}{
		{InvalidData, "invalid data"},
		{UnknownConversion, "unknown conversion"},
	}
	for _, tc := range cases {
		e := &DecodeError{Cause: tc.cause, Start: 0, End: 1, Written: 0}
		assert.Contains(t, e.Error(), tc.want)
	}
}

func TestDecodeErrorCauseStringUnknown(t *testing.T) {
	var c DecodeErrorCause = 99
	assert.Equal(t, "unknown cause", c.String())
}

func TestErrorsImplementErrorInterface(t *testing.T) {
	var _ error = (*EncodeError)(nil)
	var _ error = (*DecodeError)(nil)
}
