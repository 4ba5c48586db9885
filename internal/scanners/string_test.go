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
	"testing"
	"unicode"

	"github.com/scanfmt/scanfmt/internal/buffer"
	"github.com/scanfmt/scanfmt/internal/fmtparse"
)

func TestScanStringWhitespaceDelimited(t *testing.T) {
	it := buffer.NewContiguous([]byte("hello world")).Begin()
	next, v, err := ScanString(it, fmtparse.NewSpecs(), unicode.IsSpace)
	if err != nil || v != "hello" {
		t.Fatalf("got %q, %v", v, err)
	}
	if tail := string(next.Buffer().SegmentStartingAt(next.Pos())); tail != " world" {
		t.Fatalf("tail = %q", tail)
	}
}

func TestScanStringWidthBound(t *testing.T) {
	s := fmtparse.NewSpecs()
	s.Width = 3
	it := buffer.NewContiguous([]byte("hello")).Begin()
	_, v, err := ScanString(it, s, unicode.IsSpace)
	if err != nil || v != "hel" {
		t.Fatalf("got %q, %v", v, err)
	}
}

func TestScanStringRejectsEmpty(t *testing.T) {
	it := buffer.NewContiguous([]byte("   ")).Begin()
	if _, _, err := ScanString(it, fmtparse.NewSpecs(), unicode.IsSpace); err == nil {
		t.Fatalf("expected an error scanning an all-whitespace source")
	}
}

func TestScanExactColumns(t *testing.T) {
	it := buffer.NewContiguous([]byte("hello world")).Begin()
	next, v, err := ScanExactColumns(it, 5)
	if err != nil || v != "hello" {
		t.Fatalf("got %q, %v", v, err)
	}
	if tail := string(next.Buffer().SegmentStartingAt(next.Pos())); tail != " world" {
		t.Fatalf("tail = %q", tail)
	}
}

func TestScanExactColumnsTooShort(t *testing.T) {
	it := buffer.NewContiguous([]byte("hi")).Begin()
	if _, _, err := ScanExactColumns(it, 5); err == nil {
		t.Fatalf("expected a length-too-short error")
	}
}

func TestScanExactColumnsDoesNotSplitGraphemeCluster(t *testing.T) {
	// "é" (e + combining acute accent) is one user-perceived character
	// occupying one display column; a 2-column read must take this whole
	// cluster plus the following "x", not stop mid-cluster after "e".
	it := buffer.NewContiguous([]byte("éx")).Begin()
	next, v, err := ScanExactColumns(it, 2)
	if err != nil || v != "éx" {
		t.Fatalf("got %q, %v", v, err)
	}
	if !next.AtEnd() {
		t.Fatalf("expected the whole source to be consumed")
	}
}

func TestScanCharset(t *testing.T) {
	cs := fmtparse.NewCharsetSpec()
	cs.AddASCIIRange('a', 'z')
	s := fmtparse.NewSpecs()
	s.Type = '['
	s.Charset = cs

	it := buffer.NewContiguous([]byte("abc123")).Begin()
	next, v, err := ScanCharset(it, s)
	if err != nil || v != "abc" {
		t.Fatalf("got %q, %v", v, err)
	}
	if tail := string(next.Buffer().SegmentStartingAt(next.Pos())); tail != "123" {
		t.Fatalf("tail = %q", tail)
	}
}

func TestScanCharsetInverted(t *testing.T) {
	cs := fmtparse.NewCharsetSpec()
	cs.AddASCII(' ')
	cs.Inverted = true
	s := fmtparse.NewSpecs()
	s.Type = '['
	s.Charset = cs

	it := buffer.NewContiguous([]byte("abc def")).Begin()
	_, v, err := ScanCharset(it, s)
	if err != nil || v != "abc" {
		t.Fatalf("got %q, %v", v, err)
	}
}

func TestAssignString(t *testing.T) {
	var s string
	if err := AssignString(&s, "hi"); err != nil || s != "hi" {
		t.Fatalf("got %q, %v", s, err)
	}
}
