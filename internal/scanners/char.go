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

package scanners

import (
	"github.com/scanfmt/scanfmt/internal/buffer"
	"github.com/scanfmt/scanfmt/internal/errs"
)

// ScanByte reads a single raw byte (the narrow-character destination kind),
// without skipping preceding whitespace, per spec.md §4.G "Character /
// code-point".
func ScanByte(it buffer.Iterator) (buffer.Iterator, byte, error) {
	b, ok := it.Deref()
	if !ok {
		return it, 0, endOfInput("a character")
	}
	next, _ := it.Advance(1)
	return next, b, nil
}

// ScanRune reads a single decoded rune (the wide-character destination
// kind), without skipping preceding whitespace.
func ScanRune(it buffer.Iterator) (buffer.Iterator, rune, error) {
	r, size, ok := peekRune(it)
	if !ok {
		return it, 0, endOfInput("a character")
	}
	return advanceRune(it, size), r, nil
}

// ScanCodePoint performs the exhaustive decode spec.md's Unicode utilities
// component calls for: it is identical to ScanRune for the UTF-8 sources
// this module supports (code point == rune once decoded), but is kept as a
// distinct entry point so a future UTF-16/UTF-32 source variant has
// somewhere to plug in its own decode table without disturbing ScanRune's
// callers.
func ScanCodePoint(it buffer.Iterator) (buffer.Iterator, rune, error) {
	r, size, ok := peekRune(it)
	if !ok {
		return it, 0, errs.New(errs.KindEndOfInput, "expected a code point but the source was exhausted")
	}
	return advanceRune(it, size), r, nil
}

// AssignByte writes b into dest, which must be *byte.
func AssignByte(dest any, b byte) error {
	d, ok := dest.(*byte)
	if !ok {
		return errs.New(errs.KindTypeNotSupported, "destination for a narrow-character field is not *byte")
	}
	*d = b
	return nil
}

// AssignRune writes r into dest, which must be *rune.
func AssignRune(dest any, r rune) error {
	d, ok := dest.(*rune)
	if !ok {
		return errs.New(errs.KindTypeNotSupported, "destination for a character field is not *rune")
	}
	*d = r
	return nil
}

// AssignCodePoint writes r into dest, which must be *rune: Go's rune type
// already is a Unicode code point, so TagCodePoint shares AssignRune's
// destination shape and only differs in which scanner (ScanCodePoint vs.
// ScanRune) produced the value.
func AssignCodePoint(dest any, r rune) error { return AssignRune(dest, r) }
