// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"errors"
	"strconv"
	"strings"

	"codello.dev/asn1tree"
	"codello.dev/asn1tree/bigint"
)

// These errors classify every error returned by this package. Use [errors.Is]
// to test for them.
var (
	// ErrInvalidArgument indicates a misuse of the API such as decoding empty
	// input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrPartialPDU indicates that the input ended before the outermost data
	// value was complete. The same input followed by more bytes may decode
	// successfully.
	ErrPartialPDU = errors.New("partial PDU")
	// ErrMalformed indicates that the input or a value violates the encoding
	// rules.
	ErrMalformed = errors.New("malformed")
	// ErrNotImplemented indicates a valid encoding or value that this package
	// cannot handle, such as general REAL values.
	ErrNotImplemented = errors.New("not implemented")
)

var (
	errEmpty          = errors.New("empty input")
	errTruncated      = errors.New("truncated data value")
	errIndefinite     = errors.New("indefinite length encoding is not supported")
	errReservedLength = errors.New("reserved length octet 0xFF")
	errLengthTooLarge = errors.New("length too large")
	errMaxDepth       = errors.New("maximum nesting depth exceeded")
	errNoValue        = errors.New("node has no value")
	errUnsortedSet    = errors.New("set elements are not sorted by their encodings")
)

// A SyntaxError describes a failure to decode BER data. Kind is one of the
// sentinel errors of this package. [errors.Is] reports true for Kind and for
// errors in the chain of Err.
type SyntaxError struct {
	Kind error // ErrPartialPDU, ErrMalformed, ErrNotImplemented or ErrInvalidArgument
	Err  error // underlying error

	// ByteOffset is the location of the error. The location is usually the
	// start of the data value containing the error.
	ByteOffset int

	// Tag is the tag of the data value containing the error. The zero Tag
	// indicates that the tag is unknown.
	Tag asn1tree.Tag
}

func (e *SyntaxError) Is(target error) bool { return target == e.Kind }
func (e *SyntaxError) Unwrap() error        { return e.Err }

func (e *SyntaxError) Error() string {
	var s strings.Builder
	s.WriteString("ber: ")
	s.WriteString(kindString(e.Kind, "syntax error"))
	if e.Tag != (asn1tree.Tag{}) {
		s.WriteString(" decoding ")
		s.WriteString(e.Tag.String())
	}
	s.WriteString(" at offset ")
	s.WriteString(strconv.Itoa(e.ByteOffset))
	if e.Err != nil {
		s.WriteString(": ")
		s.WriteString(e.Err.Error())
	}
	return s.String()
}

// A StructuralError suggests that a value tree cannot be encoded. Kind is one of
// the sentinel errors of this package.
type StructuralError struct {
	Kind error // ErrMalformed, ErrNotImplemented or ErrInvalidArgument
	Tag  asn1tree.Tag
	Err  error
}

func (e *StructuralError) Is(target error) bool { return target == e.Kind }
func (e *StructuralError) Unwrap() error        { return e.Err }

func (e *StructuralError) Error() string {
	var s strings.Builder
	s.WriteString("ber: ")
	s.WriteString(kindString(e.Kind, "structural error"))
	if e.Tag != (asn1tree.Tag{}) {
		s.WriteString(" encoding ")
		s.WriteString(e.Tag.String())
	}
	if e.Err != nil {
		s.WriteString(": ")
		s.WriteString(e.Err.Error())
	}
	return s.String()
}

func kindString(kind error, fallback string) string {
	if kind == nil {
		return fallback
	}
	return kind.Error()
}

// classify returns the sentinel for err. Errors of the bigint package and
// errors wrapping ErrNotImplemented map to ErrNotImplemented, everything else
// is malformed.
func classify(err error) error {
	if errors.Is(err, ErrNotImplemented) || errors.Is(err, bigint.ErrUnavailable) {
		return ErrNotImplemented
	}
	if errors.Is(err, ErrInvalidArgument) {
		return ErrInvalidArgument
	}
	return ErrMalformed
}
