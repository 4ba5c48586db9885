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

// Package scanfmt is a type-safe, format-string-driven text scanner: the
// inverse of a typed print/format library. Given a source of characters and
// a format string, it extracts a sequence of typed values from the source
// and returns the unconsumed tail of the input alongside them.
package scanfmt

import "github.com/scanfmt/scanfmt/internal/errs"

// Kind identifies the category of a scanning failure. It is a closed
// enumeration, mirroring how Carrier implementations in the ancestor
// text-processing stack attach a single non-fatal error value to a unit of
// work: here, a Kind plus a short message is the unit of failure for one
// field of a format string.
//
// Kind is an alias for internal/errs.Kind so that every layer of scanfmt,
// from the format-string parser up to Scan itself, reports failures through
// one vocabulary without internal packages importing this root package.
type Kind = errs.Kind

const (
	KindNone                   = errs.KindNone
	KindEndOfInput             = errs.KindEndOfInput
	KindInvalidFormatString    = errs.KindInvalidFormatString
	KindInvalidScannedValue    = errs.KindInvalidScannedValue
	KindInvalidLiteral         = errs.KindInvalidLiteral
	KindInvalidFill            = errs.KindInvalidFill
	KindLengthTooShort         = errs.KindLengthTooShort
	KindInvalidSourceState     = errs.KindInvalidSourceState
	KindValuePositiveOverflow  = errs.KindValuePositiveOverflow
	KindValueNegativeOverflow  = errs.KindValueNegativeOverflow
	KindValuePositiveUnderflow = errs.KindValuePositiveUnderflow
	KindValueNegativeUnderflow = errs.KindValueNegativeUnderflow
	KindTypeNotSupported       = errs.KindTypeNotSupported
)

// Error is the single error type returned by every scanfmt entry point.
//
// It carries a Kind plus a short, human-readable message. Error never wraps
// a source error silently: when a source's own Read returns an error, it is
// recorded via Unwrap so callers can still use errors.Is/errors.As against
// it.
type Error = errs.Error

// NewError builds an Error of the given kind with a formatted message.
func NewError(kind Kind, format string, args ...any) *Error { return errs.New(kind, format, args...) }

// WrapError builds an Error of the given kind whose Unwrap returns cause.
func WrapError(kind Kind, cause error, format string, args ...any) *Error {
	return errs.Wrap(kind, cause, format, args...)
}

// KindError returns a sentinel *Error carrying only a Kind, for use with
// errors.Is(err, scanfmt.KindError(scanfmt.KindEndOfInput)).
func KindError(kind Kind) *Error { return errs.KindError(kind) }
