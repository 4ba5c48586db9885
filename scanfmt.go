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

package scanfmt

import (
	"io"
	"log/slog"
	"os"

	"github.com/scanfmt/scanfmt/internal/argstore"
	"github.com/scanfmt/scanfmt/internal/buffer"
	"github.com/scanfmt/scanfmt/internal/check"
	"github.com/scanfmt/scanfmt/internal/dispatch"
	"github.com/scanfmt/scanfmt/internal/fmtparse"
	"github.com/scanfmt/scanfmt/internal/locale"
	"github.com/scanfmt/scanfmt/internal/result"
	"github.com/scanfmt/scanfmt/internal/scanregex"
)

// Result is returned by every scanfmt entry point: the number of arguments
// scanned and the unconsumed tail of the source. N is len(dests) on success
// and 0 whenever an error is returned, even though arguments before the
// failing field may already have been written.
type Result struct {
	N    int
	Tail result.Tail
}

// String returns the already-buffered portion of the unconsumed tail. For a
// streaming source this is not the full remainder; use Tail.AsReader for
// that.
func (r Result) String() string { return r.Tail.String() }

// logger is the optional, process-wide diagnostic sink described in
// SPEC_FULL.md §2 ("Logging"): nil by default (a silent no-op), settable by
// an embedder that wants diagnostic tracing. The dispatcher logs one debug
// record per field handled by a custom Scanner; nothing else is logged. It
// is never consulted for control flow.
var logger *slog.Logger

// SetLogger installs the package-wide diagnostic logger used by every
// subsequent Scan/Input/Prompt call. Passing nil restores the default
// no-op behavior.
func SetLogger(l *slog.Logger) { logger = l }

// regexCompiler is the process-wide default regex backend (SPEC_FULL.md §3
// Domain Stack); SetRegexCompiler lets an embedder swap scanregex.Compile's
// stdlib RE2 engine for one with different semantics (e.g. backreferences)
// without scanfmt depending on that engine.
var regexCompiler scanregex.Compiler = scanregex.Compile

// SetRegexCompiler installs the package-wide regex backend used to compile
// every subsequent "/pattern/flags" field.
func SetRegexCompiler(c scanregex.Compiler) { regexCompiler = c }

// Scan parses source against format, writing into dests in format-string
// order, and returns the unconsumed tail plus, on success, the count of
// arguments written. It is the direct analogue of fmt.Sscanf, but format-checked
// against dests' concrete types before a single byte of source is read
// (spec.md §4.F, construction-time in this Go rewrite — see DESIGN.md).
func Scan(source any, format string, dests ...any) (Result, error) {
	return ScanLocale(locale.Classic, source, format, dests...)
}

// ScanLocale is Scan with an explicit locale, consulted by every field
// carrying the 'L' flag.
func ScanLocale(loc locale.Ref, source any, format string, dests ...any) (Result, error) {
	buf, err := newBuffer(source)
	if err != nil {
		return Result{}, err
	}

	store, err := buildStore(dests)
	if err != nil {
		return Result{Tail: result.Materialize(buf, buf.Begin())}, err
	}

	fields, err := fmtparse.Parse(format, len(dests))
	if err != nil {
		return Result{Tail: result.Materialize(buf, buf.Begin())}, err
	}

	for _, f := range fields {
		if f.Kind != fmtparse.FieldArg {
			continue
		}
		if err := check.Validate(store.Tag(f.ArgID), f.Specs); err != nil {
			return Result{Tail: result.Materialize(buf, buf.Begin())}, err
		}
	}

	it, err := dispatch.Run(buf, fields, store, dispatch.Options{
		Loc:           loc,
		RegexCompiler: regexCompiler,
		Logger:        logger,
	})
	tail := result.Materialize(buf, it)
	if err != nil {
		if srcErr := buf.SourceError(); srcErr != nil {
			err = WrapError(KindInvalidSourceState, srcErr, "reading the source failed: %v", err)
		}
		return Result{Tail: tail}, err
	}
	return Result{N: len(dests), Tail: tail}, nil
}

// newBuffer selects the scan-buffer variant for source, per spec.md §6's
// source concept: a contiguous string/[]byte, an *os.File, or any other
// io.Reader (treated as a single-pass stream).
func newBuffer(source any) (buffer.Buffer, error) {
	switch s := source.(type) {
	case string:
		return buffer.NewContiguous([]byte(s)), nil
	case []byte:
		return buffer.NewContiguous(s), nil
	case *os.File:
		return buffer.NewFile(s), nil
	case io.Reader:
		return buffer.NewStream(s, 0), nil
	default:
		return nil, NewError(KindTypeNotSupported, "unsupported scan source type %T", source)
	}
}

// buildStore classifies each destination's Go type into an argstore.Tag (or
// wraps it as a custom Scanner trampoline) and assembles the argument
// store dispatch walks against.
func buildStore(dests []any) (*argstore.Store, error) {
	ptrs := make([]any, len(dests))
	tags := make([]argstore.Tag, len(dests))
	trampolines := make([]argstore.Trampoline, len(dests))

	for i, d := range dests {
		tag, trampoline, err := classify(d)
		if err != nil {
			return nil, NewError(KindTypeNotSupported, "argument %d: %v", i, err)
		}
		ptrs[i] = d
		tags[i] = tag
		trampolines[i] = trampoline
	}
	return argstore.New(ptrs, tags, trampolines), nil
}

// classify maps a destination's concrete Go type onto an argstore.Tag.
//
// Two collisions are unavoidable in Go and are resolved here, documented in
// DESIGN.md: rune is a type alias for int32, and byte is a type alias for
// uint8, so *rune/*int32 cannot be distinguished by pointer type, nor can
// *byte/*uint8. Since spec.md's character types already accept the full
// integer presentation set in addition to 'c' (§4.E), *rune and *byte are
// classified as the character tags (TagRune, TagByte) unconditionally; a
// caller wanting a plain 32-bit or 8-bit integer destination uses *int32's
// and *uint8's only reachable classification here, which is the character
// tag — still fully usable as an integer via an explicit presentation
// letter (e.g. "{:d}"), just defaulting to 'c' when none is given.
func classify(d any) (argstore.Tag, argstore.Trampoline, error) {
	switch d.(type) {
	case *int:
		return argstore.TagInt, nil, nil
	case *int8:
		return argstore.TagInt8, nil, nil
	case *int16:
		return argstore.TagInt16, nil, nil
	case *rune: // also *int32
		return argstore.TagRune, nil, nil
	case *int64:
		return argstore.TagInt64, nil, nil
	case *uint:
		return argstore.TagUint, nil, nil
	case *byte: // also *uint8
		return argstore.TagByte, nil, nil
	case *uint16:
		return argstore.TagUint16, nil, nil
	case *uint32:
		return argstore.TagUint32, nil, nil
	case *uint64:
		return argstore.TagUint64, nil, nil
	case *bool:
		return argstore.TagBool, nil, nil
	case *float32:
		return argstore.TagFloat32, nil, nil
	case *float64:
		return argstore.TagFloat64, nil, nil
	case *string:
		return argstore.TagString, nil, nil
	case *uintptr:
		return argstore.TagPointer, nil, nil
	}
	if sc, ok := d.(Scanner); ok {
		return argstore.TagCustom, customTrampoline(sc), nil
	}
	return argstore.TagNone, nil, NewError(KindTypeNotSupported, "unsupported destination type %T", d)
}
