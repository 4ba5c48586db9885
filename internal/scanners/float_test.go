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
	"errors"
	"math"
	"testing"

	"github.com/scanfmt/scanfmt/internal/argstore"
	"github.com/scanfmt/scanfmt/internal/buffer"
	"github.com/scanfmt/scanfmt/internal/errs"
	"github.com/scanfmt/scanfmt/internal/fmtparse"
	"github.com/scanfmt/scanfmt/internal/locale"
)

func scanFloatFromString(t *testing.T, s string, specs fmtparse.Specs) (float64, string) {
	t.Helper()
	it := buffer.NewContiguous([]byte(s)).Begin()
	next, v, err := ScanFloat(it, specs, locale.Classic)
	if err != nil {
		t.Fatalf("ScanFloat(%q): %v", s, err)
	}
	return v, string(next.Buffer().SegmentStartingAt(next.Pos()))
}

func TestScanFloatDecimal(t *testing.T) {
	v, tail := scanFloatFromString(t, "3.14159 rest", fmtparse.NewSpecs())
	if math.Abs(v-3.14159) > 1e-9 {
		t.Fatalf("got %v", v)
	}
	if tail != " rest" {
		t.Fatalf("tail = %q", tail)
	}
}

func TestScanFloatExponent(t *testing.T) {
	v, _ := scanFloatFromString(t, "1.5e3", fmtparse.NewSpecs())
	if v != 1500 {
		t.Fatalf("got %v", v)
	}
}

func TestScanFloatNegative(t *testing.T) {
	v, _ := scanFloatFromString(t, "-2.5", fmtparse.NewSpecs())
	if v != -2.5 {
		t.Fatalf("got %v", v)
	}
}

func TestScanFloatHex(t *testing.T) {
	v, _ := scanFloatFromString(t, "0x1.8p1", fmtparse.NewSpecs())
	if v != 3 {
		t.Fatalf("got %v", v)
	}
}

func TestScanFloatInfinityKeyword(t *testing.T) {
	v, tail := scanFloatFromString(t, "infinity", fmtparse.NewSpecs())
	if !math.IsInf(v, 1) {
		t.Fatalf("got %v", v)
	}
	if tail != "" {
		t.Fatalf("tail = %q", tail)
	}
}

func TestScanFloatNanKeyword(t *testing.T) {
	v, _ := scanFloatFromString(t, "NaN", fmtparse.NewSpecs())
	if !math.IsNaN(v) {
		t.Fatalf("got %v", v)
	}
}

func TestScanFloatInfKeywordDoesNotOverrunIntoInfinity(t *testing.T) {
	// matchKeywordLiteral tries "infinity" before "inf"; a bare "inf" followed
	// by non-matching text must still resolve to +Inf without consuming "inf"
	// twice or leaving the cursor's width budget corrupted by the failed
	// "infinity" backtrack.
	v, tail := scanFloatFromString(t, "inf,3", fmtparse.NewSpecs())
	if !math.IsInf(v, 1) {
		t.Fatalf("got %v", v)
	}
	if tail != ",3" {
		t.Fatalf("tail = %q", tail)
	}
}

func TestScanFloatFPresentationRejectsHex(t *testing.T) {
	s := fmtparse.NewSpecs()
	s.Type = 'f'
	it := buffer.NewContiguous([]byte("0x1p0")).Begin()
	if _, _, err := ScanFloat(it, s, locale.Classic); err == nil {
		t.Fatalf("expected 'f' to reject a hex float")
	}
}

func TestScanFloatAPresentationRequiresHex(t *testing.T) {
	s := fmtparse.NewSpecs()
	s.Type = 'a'
	it := buffer.NewContiguous([]byte("1.5")).Begin()
	if _, _, err := ScanFloat(it, s, locale.Classic); err == nil {
		t.Fatalf("expected 'a' to require a hex float")
	}
}

func TestScanFloatWidthBound(t *testing.T) {
	s := fmtparse.NewSpecs()
	s.Width = 3
	v, tail := scanFloatFromString(t, "123456", s)
	if v != 123 {
		t.Fatalf("got %v", v)
	}
	if tail != "456" {
		t.Fatalf("tail = %q", tail)
	}
}

func TestScanFloatGroupedFlag(t *testing.T) {
	s := fmtparse.NewSpecs()
	s.Grouped = true
	v, tail := scanFloatFromString(t, "1,234.5 rest", s)
	if v != 1234.5 {
		t.Fatalf("got %v", v)
	}
	if tail != " rest" {
		t.Fatalf("tail = %q", tail)
	}
}

func TestScanFloatGroupedFlagOnlyAppliesToIntegerPart(t *testing.T) {
	s := fmtparse.NewSpecs()
	s.Grouped = true
	it := buffer.NewContiguous([]byte("1,234.5,6")).Begin()
	next, v, err := ScanFloat(it, s, locale.Classic)
	if err != nil {
		t.Fatalf("ScanFloat: %v", err)
	}
	if v != 1234.5 {
		t.Fatalf("got %v", v)
	}
	if tail := string(next.Buffer().SegmentStartingAt(next.Pos())); tail != ",6" {
		t.Fatalf("tail = %q", tail)
	}
}

func TestScanFloatEndOfInputIsDistinctFromInvalidValue(t *testing.T) {
	it := buffer.NewContiguous([]byte("")).Begin()
	_, _, err := ScanFloat(it, fmtparse.NewSpecs(), locale.Classic)
	if !errors.Is(err, errs.KindError(errs.KindEndOfInput)) {
		t.Fatalf("expected KindEndOfInput on an exhausted source, got %v", err)
	}
}

func TestScanFloatRejectsGarbage(t *testing.T) {
	it := buffer.NewContiguous([]byte("hello")).Begin()
	if _, _, err := ScanFloat(it, fmtparse.NewSpecs(), locale.Classic); err == nil {
		t.Fatalf("expected an error scanning a non-numeric literal")
	}
}

func TestAssignFloat32OverflowDetected(t *testing.T) {
	var f32 float32
	if err := AssignFloat(&f32, argstore.TagFloat32, math.MaxFloat64); err == nil {
		t.Fatalf("expected overflow assigning MaxFloat64 into float32")
	}
}

func TestAssignFloat64(t *testing.T) {
	var f64 float64
	if err := AssignFloat(&f64, argstore.TagFloat64, 2.5); err != nil {
		t.Fatalf("AssignFloat: %v", err)
	}
	if f64 != 2.5 {
		t.Fatalf("got %v", f64)
	}
}
