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
	"github.com/scanfmt/scanfmt/internal/fmtparse"
	"github.com/scanfmt/scanfmt/internal/scanregex"
	"github.com/scanfmt/scanfmt/internal/uniwidth"
)

// ScanString reads a whitespace-delimited token, per spec.md §4.G default
// 's' mode: read until a Pattern_White_Space code point or EOF, honoring
// width (in display columns, §6) as a hard cap enforced during the read
// loop rather than after (SPEC_FULL.md §5, grounded in reader/common.h's
// read_until_space).
func ScanString(it buffer.Iterator, specs fmtparse.Specs, isSpace func(rune) bool) (buffer.Iterator, string, error) {
	var out []byte
	columns := 0
	for {
		r, size, ok := peekRune(it)
		if !ok || isSpace(r) {
			break
		}
		w := uniwidth.RuneWidth(r)
		if specs.Width > 0 && columns+w > specs.Width {
			break
		}
		for i := 0; i < size; i++ {
			b, _ := it.Buffer().ByteAt(it.Pos() + i)
			out = append(out, b)
		}
		it = advanceRune(it, size)
		columns += w
	}
	if len(out) == 0 {
		return it, "", errs.New(errs.KindInvalidScannedValue, "expected a non-empty string token")
	}
	return it, string(out), nil
}

// maxGraphemeLookaheadBytes bounds how far ahead firstGraphemeAt reads to
// find one extended grapheme cluster's boundary. Real user-perceived
// characters (base rune plus any combining marks/ZWJ sequence) fit well
// within this; it exists only to keep the lookahead finite on adversarial
// input.
const maxGraphemeLookaheadBytes = 64

// firstGraphemeAt reports the byte length and display width of the first
// extended grapheme cluster starting at it, per UAX #29. ScanExactColumns
// uses this so a "{:c}" field's precision counts user-perceived characters,
// never splitting a base rune from a combining mark that follows it.
func firstGraphemeAt(it buffer.Iterator) (byteLen int, width int, ok bool) {
	var buf []byte
	for i := 0; i < maxGraphemeLookaheadBytes; i++ {
		b, hasByte := it.Buffer().ByteAt(it.Pos() + i)
		if !hasByte {
			break
		}
		buf = append(buf, b)
	}
	if len(buf) == 0 {
		return 0, 0, false
	}
	byteLen, width = uniwidth.FirstGraphemeLen(string(buf))
	if byteLen == 0 {
		return 0, 0, false
	}
	return byteLen, width, true
}

// ScanExactColumns reads exactly precision display columns of raw source
// text, with no whitespace treatment, per spec.md §4.G 'c' mode (which
// "requires explicit precision" — the caller, internal/dispatch, enforces
// that before this is ever called). Columns are counted by grapheme
// cluster, not code point, so a combining-mark sequence is never split.
func ScanExactColumns(it buffer.Iterator, precision int) (buffer.Iterator, string, error) {
	var out []byte
	columns := 0
	for columns < precision {
		byteLen, width, ok := firstGraphemeAt(it)
		if !ok {
			return it, "", errs.New(errs.KindLengthTooShort, "expected %d display columns, ran out of source after %d", precision, columns)
		}
		next, advanced := it.Advance(byteLen)
		if !advanced {
			return it, "", errs.New(errs.KindLengthTooShort, "expected %d display columns, ran out of source after %d", precision, columns)
		}
		out = append(out, buffer.Sub(it, next)...)
		it = next
		columns += width
	}
	return it, string(out), nil
}

// ScanCharset reads the maximal run of code points satisfying spec's
// compiled charset, honoring width as a hard cap, per spec.md §4.G
// "Character-set compiler" matching rules.
func ScanCharset(it buffer.Iterator, specs fmtparse.Specs) (buffer.Iterator, string, error) {
	var out []byte
	columns := 0
	for {
		r, size, ok := peekRune(it)
		if !ok || !specs.Charset.Match(r) {
			break
		}
		w := uniwidth.RuneWidth(r)
		if specs.Width > 0 && columns+w > specs.Width {
			break
		}
		for i := 0; i < size; i++ {
			b, _ := it.Buffer().ByteAt(it.Pos() + i)
			out = append(out, b)
		}
		it = advanceRune(it, size)
		columns += w
	}
	if len(out) == 0 {
		return it, "", errs.New(errs.KindInvalidScannedValue, "no source characters matched the '[...]' charset")
	}
	return it, string(out), nil
}

// ScanRegex matches specs.Regex against the contiguous bytes available
// starting at it, per spec.md §4.G "/.../ mode": "the source must be
// contiguous and borrowed". internal/check never sees the source, so the
// requirement is enforced here, against the live buffer, for every string
// destination.
func ScanRegex(it buffer.Iterator, specs fmtparse.Specs, compile scanregex.Compiler) (buffer.Iterator, string, error) {
	if !it.Buffer().IsContiguous() {
		return it, "", errs.New(errs.KindInvalidFormatString, "'/regex/' presentation requires a contiguous, borrowed source")
	}
	pat, err := compile(specs.Regex)
	if err != nil {
		return it, "", err
	}
	seg := it.Buffer().SegmentStartingAt(it.Pos())
	n, ok := pat.MatchLen(string(seg))
	if !ok {
		return it, "", errs.New(errs.KindInvalidScannedValue, "no prefix of the source matched /%s/", specs.Regex.Pattern)
	}
	next, _ := it.Advance(n)
	return next, string(seg[:n]), nil
}

// AssignString writes v into dest, which must be *string (used for both
// TagString and TagStringView destinations: scanfmt always materializes an
// owned Go string, since a borrowed string header cannot outlive the
// buffer's backing array any more safely than a copy, and spec.md's
// string_view/contiguous-source requirement is already enforced earlier).
func AssignString(dest any, v string) error {
	d, ok := dest.(*string)
	if !ok {
		return errs.New(errs.KindTypeNotSupported, "destination for a string field is not *string")
	}
	*d = v
	return nil
}
