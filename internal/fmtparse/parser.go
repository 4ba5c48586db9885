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

package fmtparse

import (
	"strings"

	"github.com/scanfmt/scanfmt/internal/errs"
)

// FieldKind distinguishes a literal run of text from a replacement field.
type FieldKind int

const (
	FieldLiteral FieldKind = iota
	FieldArg
)

// Field is one element of a parsed format string: either a literal run to
// be matched verbatim (modulo the whitespace-run rule applied at dispatch
// time) or a replacement field bound to one argument index.
type Field struct {
	Kind    FieldKind
	Literal string // valid when Kind == FieldLiteral
	ArgID   int    // valid when Kind == FieldArg
	Specs   Specs  // valid when Kind == FieldArg
}

// indexingMode tracks which of the two mutually exclusive argument-id
// schemes a format string has committed to.
type indexingMode int

const (
	indexingUnset indexingMode = iota
	indexingAuto
	indexingManual
)

// ParseContext carries the mutable state of one parse: the format string,
// the read cursor, automatic-argument-id bookkeeping, and the pending error
// (spec.md §3 "Parse context"). Once Err is set, further parsing actions are
// no-ops and the error is what Parse ultimately returns.
type ParseContext struct {
	Format string

	runes []rune
	pos   int

	nextAutoArgID int
	mode          indexingMode
	usedManualIDs map[int]bool

	Err error

	SourceContiguous bool
	SourceBorrowed   bool
}

func newParseContext(format string) *ParseContext {
	return &ParseContext{
		Format:        format,
		runes:         []rune(format),
		usedManualIDs: make(map[int]bool),
	}
}

func (p *ParseContext) fail(kind errs.Kind, format string, args ...any) {
	if p.Err != nil {
		return
	}
	p.Err = errs.New(kind, format, args...)
}

func (p *ParseContext) atEnd() bool { return p.pos >= len(p.runes) }

func (p *ParseContext) peek() (rune, bool) {
	if p.atEnd() {
		return 0, false
	}
	return p.runes[p.pos], true
}

func (p *ParseContext) peekAt(offset int) (rune, bool) {
	idx := p.pos + offset
	if idx < 0 || idx >= len(p.runes) {
		return 0, false
	}
	return p.runes[idx], true
}

func (p *ParseContext) advance() { p.pos++ }

// Parse tokenizes format into a sequence of Fields, validating grammar-level
// rules (balanced braces, fill/align/width/precision/type shape, automatic
// vs. manual argument-id consistency, and id range against argCount). It
// does not know the argument types; that cross-check is internal/check's
// job (spec.md component F), run as a second pass over the returned Fields.
func Parse(format string, argCount int) ([]Field, error) {
	pctx := newParseContext(format)
	var fields []Field

	var literal strings.Builder
	flushLiteral := func() {
		if literal.Len() > 0 {
			fields = append(fields, Field{Kind: FieldLiteral, Literal: literal.String()})
			literal.Reset()
		}
	}

	for !pctx.atEnd() && pctx.Err == nil {
		r, _ := pctx.peek()
		switch r {
		case '{':
			if next, ok := pctx.peekAt(1); ok && next == '{' {
				literal.WriteRune('{')
				pctx.pos += 2
				continue
			}
			flushLiteral()
			field, ok := parseField(pctx, argCount)
			if !ok {
				break
			}
			fields = append(fields, field)
		case '}':
			if next, ok := pctx.peekAt(1); ok && next == '}' {
				literal.WriteRune('}')
				pctx.pos += 2
				continue
			}
			pctx.fail(errs.KindInvalidFormatString, "unmatched '}' at position %d", pctx.pos)
		default:
			literal.WriteRune(r)
			pctx.advance()
		}
	}
	flushLiteral()

	if pctx.Err == nil && pctx.mode == indexingManual {
		for i := 0; i < argCount; i++ {
			if !pctx.usedManualIDs[i] {
				pctx.fail(errs.KindInvalidFormatString, "argument %d was never referenced by a manually-indexed format string", i)
				break
			}
		}
	}

	if pctx.Err != nil {
		return nil, pctx.Err
	}
	return fields, nil
}

// parseField parses one "{ [id] [: spec] }" and advances pctx past the
// closing brace. ok is false if pctx.Err was set (by this call or an
// earlier one).
func parseField(pctx *ParseContext, argCount int) (Field, bool) {
	pctx.advance() // consume '{'

	id, hasID := parseArgID(pctx)
	if pctx.Err != nil {
		return Field{}, false
	}

	if hasID {
		if pctx.mode == indexingAuto {
			pctx.fail(errs.KindInvalidFormatString, "cannot switch from automatic to manual argument indexing")
			return Field{}, false
		}
		pctx.mode = indexingManual
		if id < 0 || id >= argCount {
			pctx.fail(errs.KindInvalidFormatString, "argument index %d out of range [0,%d)", id, argCount)
			return Field{}, false
		}
		if pctx.usedManualIDs[id] {
			pctx.fail(errs.KindInvalidFormatString, "argument index %d used more than once", id)
			return Field{}, false
		}
		pctx.usedManualIDs[id] = true
	} else {
		if pctx.mode == indexingManual {
			pctx.fail(errs.KindInvalidFormatString, "cannot switch from manual to automatic argument indexing")
			return Field{}, false
		}
		pctx.mode = indexingAuto
		id = pctx.nextAutoArgID
		if id >= argCount {
			pctx.fail(errs.KindInvalidFormatString, "automatic argument index %d exceeds the number of arguments (%d)", id, argCount)
			return Field{}, false
		}
		pctx.nextAutoArgID++
	}

	specs := NewSpecs()
	if r, ok := pctx.peek(); ok && r == ':' {
		pctx.advance()
		specs = parseSpec(pctx)
		if pctx.Err != nil {
			return Field{}, false
		}
	}

	r, ok := pctx.peek()
	if !ok || r != '}' {
		pctx.fail(errs.KindInvalidFormatString, "expected '}' to close replacement field")
		return Field{}, false
	}
	pctx.advance()

	return Field{Kind: FieldArg, ArgID: id, Specs: specs}, true
}

// parseArgID parses an optional run of decimal digits as a manual argument
// index. hasID is false when no digit was present (automatic indexing).
func parseArgID(pctx *ParseContext) (id int, hasID bool) {
	start := pctx.pos
	for {
		r, ok := pctx.peek()
		if !ok || r < '0' || r > '9' {
			break
		}
		id = id*10 + int(r-'0')
		pctx.advance()
	}
	return id, pctx.pos > start
}

// parseSpec parses the "[fill-align] [width] [.precision] [L] [type]" body
// of a field, per spec.md's grammar.
func parseSpec(pctx *ParseContext) Specs {
	specs := NewSpecs()

	parseFillAlign(pctx, &specs)
	if pctx.Err != nil {
		return specs
	}

	specs.Width = parseDecimal(pctx)

	if r, ok := pctx.peek(); ok && r == '.' {
		pctx.advance()
		specs.Precision = parseDecimal(pctx)
	}

	// The "'" (grouping) and "L" (localized) flags may appear in either
	// order; each is a no-op the second time it is seen.
	for {
		r, ok := pctx.peek()
		if !ok {
			break
		}
		switch r {
		case '\'':
			specs.Grouped = true
			pctx.advance()
			continue
		case 'L':
			specs.Localized = true
			pctx.advance()
			continue
		}
		break
	}

	parseType(pctx, &specs)
	return specs
}

func isAlignRune(r rune) bool { return r == '<' || r == '>' || r == '^' }

// parseFillAlign implements the one-code-point lookahead fill/align
// disambiguation described in spec.md §4.E.
func parseFillAlign(pctx *ParseContext, specs *Specs) {
	r, ok := pctx.peek()
	if !ok {
		return
	}
	if r == '{' {
		// '{' is never a valid fill; if it appears here it will fail later
		// as an unexpected token, so just leave fill/align unset.
		return
	}

	if next, ok2 := pctx.peekAt(1); ok2 && isAlignRune(next) {
		if r == '[' && next == '^' {
			// "[^" opens an inverted charset presentation, not a '[' fill
			// with center alignment.
			return
		}
		specs.Fill = string(r)
		specs.Align = alignFromRune(next)
		pctx.pos += 2
		return
	}

	if isAlignRune(r) {
		specs.Align = alignFromRune(r)
		pctx.advance()
		return
	}
}

func alignFromRune(r rune) Align {
	switch r {
	case '<':
		return AlignLeft
	case '>':
		return AlignRight
	case '^':
		return AlignCenter
	default:
		return AlignNone
	}
}

func parseDecimal(pctx *ParseContext) int {
	val := 0
	for {
		r, ok := pctx.peek()
		if !ok || r < '0' || r > '9' {
			break
		}
		val = val*10 + int(r-'0')
		pctx.advance()
	}
	return val
}

// parseType parses the presentation-type suffix: a single letter, a
// "[...]" charset body, a "/.../flags" regex body, or "rN"/"RN"/"BN"
// arbitrary-base forms.
func parseType(pctx *ParseContext, specs *Specs) {
	r, ok := pctx.peek()
	if !ok || r == '}' {
		return
	}

	switch r {
	case '[':
		pctx.advance()
		parseCharsetBody(pctx, specs)
		return
	case '/':
		pctx.advance()
		parseRegexBody(pctx, specs)
		return
	}

	// Arbitrary-base forms: r<N>, R<N>, B<N> (1 or 2 digits, base in [2,36]).
	if r == 'r' || r == 'R' || r == 'B' {
		save := pctx.pos
		pctx.advance()
		base, gotDigits := parseBaseDigits(pctx)
		if gotDigits {
			if base < 2 || base > 36 {
				pctx.fail(errs.KindInvalidFormatString, "base must be between 2 and 36, got %d", base)
				return
			}
			specs.Type = r
			specs.ArbitraryBase = base
			return
		}
		pctx.pos = save
	}

	specs.Type = r
	pctx.advance()
}

func parseBaseDigits(pctx *ParseContext) (int, bool) {
	start := pctx.pos
	val := 0
	for i := 0; i < 2; i++ {
		r, ok := pctx.peek()
		if !ok || r < '0' || r > '9' {
			break
		}
		val = val*10 + int(r-'0')
		pctx.advance()
	}
	return val, pctx.pos > start
}

// parseCharsetBody parses the body of a "[...]" presentation, already past
// the opening '['. It handles the "^" inversion prefix and the
// literal-']'-right-after-open rule before delegating to compileCharset.
func parseCharsetBody(pctx *ParseContext, specs *Specs) {
	inverted := false
	if r, ok := pctx.peek(); ok && r == '^' {
		inverted = true
		pctx.advance()
	}

	start := pctx.pos
	// A ']' immediately here is a literal member, not the terminator.
	if r, ok := pctx.peek(); ok && r == ']' {
		pctx.advance()
	}
	for {
		r, ok := pctx.peek()
		if !ok {
			pctx.fail(errs.KindInvalidFormatString, "unterminated '[' charset presentation")
			return
		}
		if r == ']' {
			break
		}
		if r == '\\' {
			pctx.advance() // skip the escaped character too, so "\]" isn't seen as the terminator
		}
		pctx.advance()
	}
	body := pctx.runes[start:pctx.pos]
	pctx.advance() // consume ']'

	cs, err := compileCharset(body)
	if err != nil {
		pctx.fail(errs.KindInvalidFormatString, "%v", err)
		return
	}
	cs.Inverted = inverted
	cs.Raw = string(body)
	specs.Type = '['
	specs.Charset = cs
}

// parseRegexBody parses the body of a "/.../flags" presentation, already
// past the opening '/'.
func parseRegexBody(pctx *ParseContext, specs *Specs) {
	start := pctx.pos
	for {
		r, ok := pctx.peek()
		if !ok {
			pctx.fail(errs.KindInvalidFormatString, "unterminated '/' regex presentation")
			return
		}
		if r == '\\' {
			pctx.advance()
			if pctx.atEnd() {
				pctx.fail(errs.KindInvalidFormatString, "unterminated '/' regex presentation")
				return
			}
			pctx.advance()
			continue
		}
		if r == '/' {
			break
		}
		pctx.advance()
	}
	pattern := string(pctx.runes[start:pctx.pos])
	pctx.advance() // consume closing '/'

	rs := &RegexSpec{Pattern: pattern}
	for {
		r, ok := pctx.peek()
		if !ok || r == '}' {
			break
		}
		switch r {
		case 'm':
			rs.Multiline = true
		case 's':
			rs.Singleline = true
		case 'i':
			rs.NoCase = true
		case 'n':
			rs.NoCapture = true
		default:
			pctx.fail(errs.KindInvalidFormatString, "unknown regex flag %q", r)
			return
		}
		pctx.advance()
	}
	specs.Type = '/'
	specs.Regex = rs
}
