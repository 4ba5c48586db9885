// Copyright 2026 The scanfmt Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package errs defines the single error vocabulary shared by every scanfmt
// package, internal and public alike. It lives below the root package so
// that internal/fmtparse, internal/check, internal/scanners, and
// internal/dispatch can all report failures in the same shape without
// importing the root scanfmt package (which imports them, and would
// otherwise make a cycle). The root package re-exports Kind and Error as
// type aliases, so callers never see this package's import path.
package errs

import "fmt"

// Kind identifies the category of a scanning failure.
type Kind int

const (
	// KindNone is the zero value; never attached to a returned error.
	KindNone Kind = iota

	// KindEndOfInput means the source was exhausted before a field could be
	// satisfied.
	KindEndOfInput
	// KindInvalidFormatString means the format string is ill-formed, or does
	// not match the shape of the supplied arguments.
	KindInvalidFormatString
	// KindInvalidScannedValue means the characters read did not form a valid
	// instance of the requested type.
	KindInvalidScannedValue
	// KindInvalidLiteral means a literal character in the format string did
	// not match the corresponding source character.
	KindInvalidLiteral
	// KindInvalidFill means a fill character specification was malformed
	// (for example, an unterminated multi-byte fill).
	KindInvalidFill
	// KindLengthTooShort means a source segment was shorter than required
	// (for example, a `{:c}` field without enough source characters left to
	// satisfy its precision).
	KindLengthTooShort
	// KindInvalidSourceState means the source itself could not be read any
	// further for reasons other than EOF (an I/O error, or a putback/sync
	// request the source could not honor).
	KindInvalidSourceState
	// KindValuePositiveOverflow means a scanned numeric value exceeded the
	// positive range of its destination type.
	KindValuePositiveOverflow
	// KindValueNegativeOverflow means a scanned numeric value exceeded the
	// negative range of its destination type.
	KindValueNegativeOverflow
	// KindValuePositiveUnderflow means a scanned floating-point magnitude was
	// too small (but nonzero) to represent in its destination type.
	KindValuePositiveUnderflow
	// KindValueNegativeUnderflow is the negative-magnitude counterpart of
	// KindValuePositiveUnderflow.
	KindValueNegativeUnderflow
	// KindTypeNotSupported means the destination argument's type has no
	// built-in scanner and does not implement Scanner.
	KindTypeNotSupported
)

// String renders the Kind using its identifier-style name, e.g. "end_of_input".
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindEndOfInput:
		return "end_of_input"
	case KindInvalidFormatString:
		return "invalid_format_string"
	case KindInvalidScannedValue:
		return "invalid_scanned_value"
	case KindInvalidLiteral:
		return "invalid_literal"
	case KindInvalidFill:
		return "invalid_fill"
	case KindLengthTooShort:
		return "length_too_short"
	case KindInvalidSourceState:
		return "invalid_source_state"
	case KindValuePositiveOverflow:
		return "value_positive_overflow"
	case KindValueNegativeOverflow:
		return "value_negative_overflow"
	case KindValuePositiveUnderflow:
		return "value_positive_underflow"
	case KindValueNegativeUnderflow:
		return "value_negative_underflow"
	case KindTypeNotSupported:
		return "type_not_supported"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by every scanfmt entry point, at
// every layer.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

// New builds an Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error of the given kind whose Unwrap returns cause.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), cause: cause}
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Message == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Message
}

// Unwrap exposes an underlying source error, when this Error wraps one.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Is reports whether target is an *Error with the same Kind and no message,
// so that errors.Is(err, errs.KindError(errs.KindEndOfInput)) style checks
// work without exposing this struct's fields.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return other.Kind == e.Kind && other.Message == ""
}

// KindError returns a sentinel *Error carrying only a Kind, for use with
// errors.Is.
func KindError(kind Kind) *Error {
	return &Error{Kind: kind}
}
