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

package scanregex

import (
	"testing"

	"github.com/scanfmt/scanfmt/internal/fmtparse"
)

func TestCompileMatchesAnchoredPrefix(t *testing.T) {
	pat, err := Compile(&fmtparse.RegexSpec{Pattern: `[0-9]+`})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	n, ok := pat.MatchLen("123abc")
	if !ok || n != 3 {
		t.Fatalf("got n=%d ok=%v", n, ok)
	}
}

func TestCompileDoesNotSearchAhead(t *testing.T) {
	pat, err := Compile(&fmtparse.RegexSpec{Pattern: `[0-9]+`})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if _, ok := pat.MatchLen("abc123"); ok {
		t.Fatalf("expected no match: pattern must anchor at position 0, not search ahead")
	}
}

func TestCompileNoCaseFlag(t *testing.T) {
	pat, err := Compile(&fmtparse.RegexSpec{Pattern: `abc`, NoCase: true})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if n, ok := pat.MatchLen("ABCdef"); !ok || n != 3 {
		t.Fatalf("got n=%d ok=%v", n, ok)
	}
}

func TestCompileNoCaptureStripsGroups(t *testing.T) {
	pat, err := Compile(&fmtparse.RegexSpec{Pattern: `(a)(b)`, NoCapture: true})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	n, ok := pat.MatchLen("ab")
	if !ok || n != 2 {
		t.Fatalf("got n=%d ok=%v", n, ok)
	}
}

func TestCompileInvalidPatternFails(t *testing.T) {
	if _, err := Compile(&fmtparse.RegexSpec{Pattern: `(unclosed`}); err == nil {
		t.Fatalf("expected an error compiling an invalid pattern")
	}
}

func TestStripCaptureGroupsLeavesEscapedParens(t *testing.T) {
	got := stripCaptureGroups(`\(a\)(b)`)
	want := `\(a\)(?:b)`
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestStripCaptureGroupsLeavesNonCapturingAlone(t *testing.T) {
	got := stripCaptureGroups(`(?:a)(b)`)
	want := `(?:a)(?:b)`
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
