// seehuhn.de/go/winfnt - a library for reading Windows bitmap fonts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package fnt

import (
	"errors"
	"strconv"
)

// These are the kinds of errors reported by Decode and Scale.
// Use errors.Is to test for them.
var (
	ErrUnsupportedVersion = errors.New("unsupported font format")
	ErrTruncatedHeader    = errors.New("truncated header")
	ErrInvalidCharRange   = errors.New("invalid character range")
	ErrCorruptGlyphData   = errors.New("corrupt glyph data")
	ErrAllocationFailure  = errors.New("scaled font too large")
)

// DecodeError indicates a problem with FNT data.
type DecodeError struct {
	Kind   error // one of the Err* values of this package
	Offset int64 // position in the input, or 0 if unknown
	Reason string
	Err    error // the underlying read error, if any
}

func (err *DecodeError) Error() string {
	msg := "winfnt/fnt: " + err.Kind.Error()
	if err.Reason != "" {
		msg += ": " + err.Reason
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	if err.Offset > 0 {
		msg += " (at byte " + strconv.FormatInt(err.Offset, 10) + ")"
	}
	return msg
}

func (err *DecodeError) Unwrap() []error {
	if err.Err == nil {
		return []error{err.Kind}
	}
	return []error{err.Kind, err.Err}
}

func newError(kind error, offset int64, reason string) error {
	return &DecodeError{
		Kind:   kind,
		Offset: offset,
		Reason: reason,
	}
}

// wrapError is like newError, but records the read error which caused the
// problem.
func wrapError(kind error, offset int64, err error) error {
	return &DecodeError{
		Kind:   kind,
		Offset: offset,
		Err:    err,
	}
}
