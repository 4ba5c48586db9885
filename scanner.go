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
	"github.com/scanfmt/scanfmt/internal/argstore"
	"github.com/scanfmt/scanfmt/internal/dispatch"
	"github.com/scanfmt/scanfmt/internal/fmtparse"
)

// Scanner is implemented by a user type that wants to own its own parsing
// of a replacement field's spec and its own reading of source characters,
// per spec.md §3's custom-type trampoline ("(void* dest, parse-ctx*,
// scan-ctx*) -> Result<()>"). A value implementing Scanner may be passed
// anywhere scanfmt's built-in types are accepted in Scan's destination
// list; the value itself (typically a pointer receiver) is both the
// destination and the thing that mutates it.
type Scanner interface {
	ScanFmt(state *ScanState) error
}

// ScanState is the scan-context half of the trampoline contract, exposed to
// a user Scanner: the replacement field's parsed Specs, plus a
// rune-at-a-time cursor over the source positioned at the field's start.
type ScanState struct {
	ctx   *dispatch.ScanCtx
	specs fmtparse.Specs
}

// Peek returns the next source rune without consuming it.
func (s *ScanState) Peek() (rune, bool) {
	r, _, ok := s.ctx.PeekRune()
	return r, ok
}

// Next returns and consumes the next source rune.
func (s *ScanState) Next() (rune, bool) {
	r, size, ok := s.ctx.PeekRune()
	if !ok {
		return 0, false
	}
	s.ctx.Advance(size)
	return r, true
}

// Width returns the field's requested width (display columns), 0 if unset.
func (s *ScanState) Width() int { return s.specs.Width }

// Precision returns the field's requested precision (display columns), -1
// if unset.
func (s *ScanState) Precision() int { return s.specs.Precision }

// Presentation returns the field's presentation letter, 0 if unset (the
// field used the type's default presentation).
func (s *ScanState) Presentation() rune { return s.specs.Type }

// Localized reports whether the field carried the 'L' flag.
func (s *ScanState) Localized() bool { return s.specs.Localized }

// customTrampoline adapts a user Scanner value into the type-erased
// argstore.Trampoline shape, type-asserting the pctx/sctx values that
// internal/dispatch is known to pass (see dispatch.ParseCtx/ScanCtx).
func customTrampoline(v Scanner) argstore.Trampoline {
	return func(dest any, pctx any, sctx any) error {
		pc, ok := pctx.(*dispatch.ParseCtx)
		if !ok {
			return NewError(KindTypeNotSupported, "custom scanner invoked with an unrecognized parse context")
		}
		sc, ok := sctx.(*dispatch.ScanCtx)
		if !ok {
			return NewError(KindTypeNotSupported, "custom scanner invoked with an unrecognized scan context")
		}
		state := &ScanState{ctx: sc, specs: pc.Specs}
		return v.ScanFmt(state)
	}
}
