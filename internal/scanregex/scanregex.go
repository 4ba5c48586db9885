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

// Package scanregex is the pluggable regex-matching backend behind a
// "{:/pattern/flags}" field.
//
// spec.md §1 is explicit that "no regex engine is prescribed: the core
// exposes a compiled-pattern interface; a backend supplies matching" — of
// the five repositories in the retrieval pack, none imports a third-party
// regex engine, so Pattern is implemented here against the standard
// library's regexp (RE2) and wrapped behind the Pattern interface so a
// caller that needs PCRE-style backreferences can supply their own
// implementation without scanfmt depending on it. See DESIGN.md.
package scanregex

import (
	"regexp"

	"github.com/scanfmt/scanfmt/internal/errs"
	"github.com/scanfmt/scanfmt/internal/fmtparse"
)

// Pattern is the compiled-pattern interface the string scanner calls
// through for a "/.../" field. A Pattern only needs to report the length of
// the longest match anchored at the start of s; scanfmt itself performs no
// searching, only anchored matching at the current source position.
type Pattern interface {
	// MatchLen returns the byte length of the longest match anchored at the
	// start of s, and whether any match was found at all.
	MatchLen(s string) (n int, ok bool)
}

// Compiler builds a Pattern from a RegexSpec. Compile is the default,
// stdlib-backed Compiler; callers that need a different engine can supply
// their own Compiler via scanfmt.SetRegexCompiler (root package).
type Compiler func(spec *fmtparse.RegexSpec) (Pattern, error)

// Compile builds a Pattern backed by the standard library's regexp engine,
// translating spec.md's regex-flags (multiline/singleline/nocase/nocapture)
// into RE2 inline flags.
func Compile(spec *fmtparse.RegexSpec) (Pattern, error) {
	flags := ""
	if spec.Multiline {
		flags += "m"
	}
	if spec.Singleline {
		flags += "s"
	}
	if spec.NoCase {
		flags += "i"
	}
	pattern := spec.Pattern
	if spec.NoCapture {
		pattern = stripCaptureGroups(pattern)
	}
	if flags != "" {
		pattern = "(?" + flags + ")" + pattern
	}
	// Anchor at the start: scanfmt only ever matches at the current source
	// position, never searches ahead.
	re, err := regexp.Compile(`\A(?:` + pattern + `)`)
	if err != nil {
		return nil, errs.New(errs.KindInvalidFormatString, "invalid regex pattern %q: %v", spec.Pattern, err)
	}
	return rePattern{re}, nil
}

type rePattern struct{ re *regexp.Regexp }

func (p rePattern) MatchLen(s string) (int, bool) {
	loc := p.re.FindStringIndex(s)
	if loc == nil {
		return 0, false
	}
	return loc[1], true
}

// stripCaptureGroups rewrites every capturing "(" not already "(?" into a
// non-capturing "(?:", honoring spec.md's "nocapture" regex flag.
func stripCaptureGroups(pattern string) string {
	out := make([]byte, 0, len(pattern)+8)
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c == '\\' && i+1 < len(pattern) {
			out = append(out, c, pattern[i+1])
			i++
			continue
		}
		if c == '(' && (i+1 >= len(pattern) || pattern[i+1] != '?') {
			out = append(out, '(', '?', ':')
			continue
		}
		out = append(out, c)
	}
	return string(out)
}
