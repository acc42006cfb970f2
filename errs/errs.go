// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errs defines the error descriptors returned by the codecs in
// this module. Unlike the sentinel errors.New values used elsewhere in
// the x/text encoding tree, every failure here carries the exact byte
// span and output-so-far accounting a caller needs to resume, substitute,
// or abort a streaming transcode.
package errs

import "fmt"

// EncodeError reports that an internal UTF-8 scalar has no representation
// in the target encoding.
//
// Start and End give the half-open byte range of the offending scalar
// within the caller's input. Written gives the number of output bytes
// already produced (and safe to keep) before the error occurred.
type EncodeError struct {
	Rune    rune
	Start   int
	End     int
	Written int
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode: rune %U at byte [%d,%d) has no representation in target encoding", e.Rune, e.Start, e.End)
}

// DecodeErrorCause distinguishes structurally malformed input from input
// that is well-formed but has no defined Unicode mapping.
type DecodeErrorCause int

const (
	// InvalidData means the input bytes violate the codec's structural
	// rules (bad lead/trail byte, truncated code unit at end-of-stream,
	// surrogate where none is allowed, and so on).
	InvalidData DecodeErrorCause = iota
	// UnknownConversion means the input bytes are structurally valid but
	// have no defined Unicode mapping. None of the decoders in this module
	// returns it: they report decode-table holes as InvalidData.
	UnknownConversion
)

func (c DecodeErrorCause) String() string {
	switch c {
	case InvalidData:
		return "invalid data"
	case UnknownConversion:
		return "unknown conversion"
	default:
		return "unknown cause"
	}
}

// DecodeError reports that a span of the encoded input could not be
// converted to a Unicode scalar.
//
// Start and End give the half-open byte range of the offending input.
// Written gives the number of output bytes already produced before the
// error occurred.
type DecodeError struct {
	Cause   DecodeErrorCause
	Start   int
	End     int
	Written int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode: %s at byte [%d,%d)", e.Cause, e.Start, e.End)
}
