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

// Package scanners implements the built-in type scanners (spec.md §4
// component G): integer, float, bool, character, string, character-set, and
// regex. Every scanner has the same shape: given a buffer.Iterator
// positioned at the first candidate byte, consume as much of the source as
// the presentation spec allows, and return the iterator advanced past what
// was consumed plus either a materialized value or an error. None of them
// write a partial value to the destination on failure; the caller (the
// dispatch package) decides whether to commit a typed result once a
// scanner reports success.
package scanners

import (
	"unicode/utf8"

	"github.com/scanfmt/scanfmt/internal/buffer"
	"github.com/scanfmt/scanfmt/internal/errs"
)

// maxRuneBytes bounds how many bytes a single UTF-8 rune can occupy.
const maxRuneBytes = utf8.UTFMax

// peekRune decodes the rune starting at it without consuming it. ok is
// false at end of input.
func peekRune(it buffer.Iterator) (r rune, size int, ok bool) {
	var buf [maxRuneBytes]byte
	n := 0
	for n < maxRuneBytes {
		b, hasByte := it.Buffer().ByteAt(it.Pos() + n)
		if !hasByte {
			break
		}
		buf[n] = b
		n++
		if utf8.FullRune(buf[:n]) {
			break
		}
	}
	if n == 0 {
		return 0, 0, false
	}
	r, size = utf8.DecodeRune(buf[:n])
	if r == utf8.RuneError && size <= 1 {
		// Treat a single invalid byte as a one-byte "rune" so scanning can
		// still make progress over non-UTF-8 input instead of stalling.
		return rune(buf[0]), 1, true
	}
	return r, size, true
}

// advanceRune returns it advanced past one rune, given the size peekRune
// already reported for it.
func advanceRune(it buffer.Iterator, size int) buffer.Iterator {
	next, _ := it.Advance(size)
	return next
}

// skipLocaleSpace advances it past a maximal (possibly zero) run of
// whitespace runes, per the locale's IsSpace.
func skipLocaleSpace(it buffer.Iterator, isSpace func(rune) bool) buffer.Iterator {
	for {
		r, size, ok := peekRune(it)
		if !ok || !isSpace(r) {
			return it
		}
		it = advanceRune(it, size)
	}
}

// endOfInput builds the standard "ran out of source" error.
func endOfInput(what string) error {
	return errs.New(errs.KindEndOfInput, "expected %s but the source was exhausted", what)
}

// hexVal reports the numeric value of a hex digit rune.
func hexVal(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10, true
	default:
		return 0, false
	}
}

// PeekRune is the exported form of peekRune, for callers outside this
// package (internal/dispatch's whitespace/fill handling and custom-type
// ScanCtx) that need the same rune-at-a-time view of the buffer the
// built-in scanners use.
func PeekRune(it buffer.Iterator) (r rune, size int, ok bool) { return peekRune(it) }

// AdvanceRune is the exported form of advanceRune.
func AdvanceRune(it buffer.Iterator, size int) buffer.Iterator { return advanceRune(it, size) }

// SkipSpace is the exported form of skipLocaleSpace.
func SkipSpace(it buffer.Iterator, isSpace func(rune) bool) buffer.Iterator {
	return skipLocaleSpace(it, isSpace)
}
