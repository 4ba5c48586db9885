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

// Package dispatch implements the per-field dispatch / vscan loop (spec.md
// §4.H): for each field produced by internal/fmtparse, match literal text
// verbatim (with the whitespace-run rule), or look up the bound argument,
// visit its type tag, invoke the matching internal/scanners entry point (or
// a custom-type Trampoline), and commit the result before advancing to the
// next field. No partial writes are committed past a failing field.
package dispatch

import (
	"log/slog"
	"math"

	"github.com/scanfmt/scanfmt/internal/argstore"
	"github.com/scanfmt/scanfmt/internal/buffer"
	"github.com/scanfmt/scanfmt/internal/errs"
	"github.com/scanfmt/scanfmt/internal/fmtparse"
	"github.com/scanfmt/scanfmt/internal/locale"
	"github.com/scanfmt/scanfmt/internal/scanners"
	"github.com/scanfmt/scanfmt/internal/scanregex"
)

// Options bundles the per-call collaborators dispatch needs beyond the
// fields/store/buffer triple: the locale (for 'L'-flagged fields and
// whitespace classification), the regex backend, and an optional logger
// used only for diagnostic tracing (SPEC_FULL.md §2 ambient stack — never
// for control flow, nil-safe).
type Options struct {
	Loc           locale.Ref
	RegexCompiler scanregex.Compiler
	Logger        *slog.Logger
}

// ParseCtx is the parse-context half of a custom Trampoline's three erased
// arguments: the format-spec the custom type's own parser already produced
// (dispatch does not re-parse it; internal/fmtparse already did, scoped to
// the field's inner spec text for presentation '?').
type ParseCtx struct {
	Specs fmtparse.Specs
}

// ScanCtx is the scan-context half of a custom Trampoline's three erased
// arguments. It exposes the same rune-at-a-time view of the buffer the
// built-in scanners use, so a user Scanner can consume source characters
// without reaching into internal/buffer directly. After Trampoline
// returns, dispatch reads back ScanCtx.It as the field's new position.
type ScanCtx struct {
	It  buffer.Iterator
	Loc locale.Ref
}

// PeekRune returns the next rune without consuming it.
func (c *ScanCtx) PeekRune() (rune, int, bool) { return scanners.PeekRune(c.It) }

// Advance consumes size bytes (as returned by PeekRune) from the source.
func (c *ScanCtx) Advance(size int) { c.It = scanners.AdvanceRune(c.It, size) }

// Run executes fields against store over buf starting at buf.Begin(),
// returning the iterator positioned just past the last successfully
// matched field (on success, the whole format string) or at the point of
// failure (on error), per spec.md's "Ordering" rule: arguments earlier than
// the failing field are observable, later ones are not written.
func Run(buf buffer.Buffer, fields []fmtparse.Field, store *argstore.Store, opts Options) (buffer.Iterator, error) {
	it := buf.Begin()
	for _, f := range fields {
		var err error
		it, err = runField(it, f, store, opts)
		if err != nil {
			return it, err
		}
	}
	return it, nil
}

func runField(it buffer.Iterator, f fmtparse.Field, store *argstore.Store, opts Options) (buffer.Iterator, error) {
	if f.Kind == fmtparse.FieldLiteral {
		return matchLiteral(it, f.Literal, opts.Loc)
	}
	return runArgField(it, f, store, opts)
}

// matchLiteral matches a run of literal format-string text against the
// source, per spec.md §4.E: a whitespace code point in the format consumes
// the maximal run (possibly zero) of source whitespace; any other rune
// must match the corresponding source rune exactly.
func matchLiteral(it buffer.Iterator, literal string, loc locale.Ref) (buffer.Iterator, error) {
	for _, want := range literal {
		if loc.IsSpace(want) {
			it = scanners.SkipSpace(it, loc.IsSpace)
			continue
		}
		r, size, ok := scanners.PeekRune(it)
		if !ok {
			return it, errs.New(errs.KindEndOfInput, "expected literal %q but the source was exhausted", want)
		}
		if r != want {
			return it, errs.New(errs.KindInvalidLiteral, "expected literal %q, found %q", want, r)
		}
		it = scanners.AdvanceRune(it, size)
	}
	return it, nil
}

func runArgField(it buffer.Iterator, f fmtparse.Field, store *argstore.Store, opts Options) (buffer.Iterator, error) {
	tag := store.Tag(f.ArgID)
	if tag == argstore.TagNone {
		return it, errs.New(errs.KindInvalidFormatString, "argument %d has no bound value", f.ArgID)
	}
	dest := store.Dest(f.ArgID)
	specs := f.Specs

	if skipsPrecedingWhitespace(tag, specs) {
		it = scanners.SkipSpace(it, opts.Loc.IsSpace)
	}

	if specs.Align == fmtparse.AlignRight || specs.Align == fmtparse.AlignCenter {
		it = skipFill(it, specs.Fill)
	}

	next, err := scanOne(it, tag, specs, store, f.ArgID, opts, dest)
	if err != nil {
		return it, err
	}

	if specs.Align == fmtparse.AlignLeft || specs.Align == fmtparse.AlignCenter {
		next = skipFill(next, specs.Fill)
	}
	return next, nil
}

// skipsPrecedingWhitespace implements spec.md §4.G's "common preamble"
// rule: every built-in scanner skips leading whitespace except the
// single-character presentation ('c' on a character tag, or a string's
// exact-width 'c' mode), the '[...]' charset presentation, and the
// '/.../' regex presentation.
func skipsPrecedingWhitespace(tag argstore.Tag, specs fmtparse.Specs) bool {
	if tag.IsCharacter() && !isNumericCharPresentation(specs.Type) {
		return false
	}
	switch specs.Type {
	case '[', '/':
		return false
	}
	if tag.IsString() && specs.Type == 'c' {
		return false
	}
	return true
}

func skipFill(it buffer.Iterator, fill string) buffer.Iterator {
	fillRunes := []rune(fill)
	if len(fillRunes) == 0 {
		return it
	}
	for {
		r, size, ok := scanners.PeekRune(it)
		if !ok || !runeIn(r, fillRunes) {
			return it
		}
		it = scanners.AdvanceRune(it, size)
	}
}

func runeIn(r rune, set []rune) bool {
	for _, s := range set {
		if r == s {
			return true
		}
	}
	return false
}

func scanOne(it buffer.Iterator, tag argstore.Tag, specs fmtparse.Specs, store *argstore.Store, argID int, opts Options, dest any) (buffer.Iterator, error) {
	switch {
	case tag == argstore.TagCustom:
		return scanCustom(it, specs, store, argID, opts, dest)
	case tag.IsInteger():
		next, res, err := scanners.ScanInt(it, specs, opts.Loc)
		if err != nil {
			return it, err
		}
		if err := scanners.AssignInt(dest, tag, res); err != nil {
			return it, err
		}
		return next, nil
	case tag.IsFloat():
		next, v, err := scanners.ScanFloat(it, specs, opts.Loc)
		if err != nil {
			return it, err
		}
		if err := scanners.AssignFloat(dest, tag, v); err != nil {
			return it, err
		}
		return next, nil
	case tag == argstore.TagBool:
		next, v, err := scanners.ScanBool(it, specs)
		if err != nil {
			return it, err
		}
		if err := scanners.AssignBool(dest, v); err != nil {
			return it, err
		}
		return next, nil
	case tag == argstore.TagByte:
		if isNumericCharPresentation(specs.Type) {
			return scanCharAsInt(it, specs, opts, dest, tag)
		}
		next, v, err := scanners.ScanByte(it)
		if err != nil {
			return it, err
		}
		if err := scanners.AssignByte(dest, v); err != nil {
			return it, err
		}
		return next, nil
	case tag == argstore.TagRune:
		if isNumericCharPresentation(specs.Type) {
			return scanCharAsInt(it, specs, opts, dest, tag)
		}
		next, v, err := scanners.ScanRune(it)
		if err != nil {
			return it, err
		}
		if err := scanners.AssignRune(dest, v); err != nil {
			return it, err
		}
		return next, nil
	case tag == argstore.TagCodePoint:
		if isNumericCharPresentation(specs.Type) {
			return scanCharAsInt(it, specs, opts, dest, tag)
		}
		next, v, err := scanners.ScanCodePoint(it)
		if err != nil {
			return it, err
		}
		if err := scanners.AssignCodePoint(dest, v); err != nil {
			return it, err
		}
		return next, nil
	case tag == argstore.TagPointer:
		next, v, err := scanners.ScanPointer(it)
		if err != nil {
			return it, err
		}
		if err := scanners.AssignPointer(dest, v); err != nil {
			return it, err
		}
		return next, nil
	case tag.IsString():
		return scanString(it, specs, opts, dest)
	default:
		return it, errs.New(errs.KindTypeNotSupported, "argument type %s has no built-in scanner", tag)
	}
}

func scanString(it buffer.Iterator, specs fmtparse.Specs, opts Options, dest any) (buffer.Iterator, error) {
	switch specs.Type {
	case 'c':
		if specs.Precision < 0 {
			return it, errs.New(errs.KindInvalidFormatString, "'c' presentation on a string argument requires an explicit precision")
		}
		next, v, err := scanners.ScanExactColumns(it, specs.Precision)
		if err != nil {
			return it, err
		}
		return next, scanners.AssignString(dest, v)
	case '[':
		next, v, err := scanners.ScanCharset(it, specs)
		if err != nil {
			return it, err
		}
		return next, scanners.AssignString(dest, v)
	case '/':
		compiler := opts.RegexCompiler
		if compiler == nil {
			compiler = scanregex.Compile
		}
		next, v, err := scanRegexSafely(it, specs, compiler)
		if err != nil {
			return it, err
		}
		return next, scanners.AssignString(dest, v)
	default:
		next, v, err := scanners.ScanString(it, specs, opts.Loc.IsSpace)
		if err != nil {
			return it, err
		}
		return next, scanners.AssignString(dest, v)
	}
}

// isNumericCharPresentation reports whether specs.Type requests the integer
// (rather than default single-character 'c') reading of a character-typed
// argument, per spec.md §4.E: "character types (char, wchar): integer set
// plus c; default c".
func isNumericCharPresentation(t rune) bool {
	switch t {
	case 'd', 'i', 'u', 'o', 'x', 'X', 'b', 'B':
		return true
	default:
		return false
	}
}

// scanCharAsInt reads a character-typed argument using the integer scanner
// and writes its scanned ordinal value into dest.
func scanCharAsInt(it buffer.Iterator, specs fmtparse.Specs, opts Options, dest any, tag argstore.Tag) (buffer.Iterator, error) {
	next, res, err := scanners.ScanInt(it, specs, opts.Loc)
	if err != nil {
		return it, err
	}
	v := int64(res.Magnitude)
	if res.Negative {
		v = -v
	}
	switch tag {
	case argstore.TagByte:
		if v < 0 || v > 255 {
			return it, errs.New(errs.KindValuePositiveOverflow, "ordinal %d does not fit in a byte", v)
		}
		return next, scanners.AssignByte(dest, byte(v))
	default: // TagRune, TagCodePoint
		if v < math.MinInt32 || v > math.MaxInt32 {
			return it, errs.New(errs.KindValuePositiveOverflow, "ordinal %d does not fit in a rune", v)
		}
		return next, scanners.AssignRune(dest, rune(v))
	}
}

// scanRegexSafely runs scanners.ScanRegex with the same panic-containment
// convention as callTrampoline: a pluggable regex backend is as much a
// user-supplied callback as a custom-type trampoline.
func scanRegexSafely(it buffer.Iterator, specs fmtparse.Specs, compiler scanregex.Compiler) (next buffer.Iterator, v string, err error) {
	defer func() {
		if r := recover(); r != nil {
			next, v, err = it, "", errs.New(errs.KindInvalidScannedValue, "regex backend panicked: %v", r)
		}
	}()
	return scanners.ScanRegex(it, specs, compiler)
}

func scanCustom(it buffer.Iterator, specs fmtparse.Specs, store *argstore.Store, argID int, opts Options, dest any) (buffer.Iterator, error) {
	trampoline := store.Trampoline(argID)
	if trampoline == nil {
		return it, errs.New(errs.KindTypeNotSupported, "argument %d is tagged custom but has no trampoline", argID)
	}
	pctx := &ParseCtx{Specs: specs}
	sctx := &ScanCtx{It: it, Loc: opts.Loc}
	if err := callTrampoline(trampoline, dest, pctx, sctx); err != nil {
		return it, err
	}
	if opts.Logger != nil {
		opts.Logger.Debug("scanfmt: custom scanner consumed field", "arg", argID)
	}
	return sctx.It, nil
}

// callTrampoline invokes a user-supplied custom-type Trampoline, recovering
// any panic into a KindInvalidScannedValue error instead of propagating it
// to the caller of Scan, per SPEC_FULL.md's panic-containment convention
// (mirroring the teacher's ProcessorFunc.Apply / PanicStore idiom).
func callTrampoline(trampoline argstore.Trampoline, dest, pctx, sctx any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errs.New(errs.KindInvalidScannedValue, "custom scanner panicked: %v", r)
		}
	}()
	return trampoline(dest, pctx, sctx)
}
