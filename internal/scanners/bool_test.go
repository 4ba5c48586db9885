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

	"github.com/scanfmt/scanfmt/internal/buffer"
	"github.com/scanfmt/scanfmt/internal/fmtparse"
)

func TestScanBoolTextual(t *testing.T) {
	it := buffer.NewContiguous([]byte("true")).Begin()
	_, v, err := ScanBool(it, fmtparse.NewSpecs())
	if err != nil || !v {
		t.Fatalf("got %v, %v", v, err)
	}

	it = buffer.NewContiguous([]byte("false")).Begin()
	_, v, err = ScanBool(it, fmtparse.NewSpecs())
	if err != nil || v {
		t.Fatalf("got %v, %v", v, err)
	}
}

func TestScanBoolNumericFallback(t *testing.T) {
	it := buffer.NewContiguous([]byte("1")).Begin()
	_, v, err := ScanBool(it, fmtparse.NewSpecs())
	if err != nil || !v {
		t.Fatalf("got %v, %v", v, err)
	}
}

func TestScanBoolRejectsGarbage(t *testing.T) {
	it := buffer.NewContiguous([]byte("maybe")).Begin()
	if _, _, err := ScanBool(it, fmtparse.NewSpecs()); err == nil {
		t.Fatalf("expected an error scanning a non-boolean literal")
	}
}

func TestAssignBool(t *testing.T) {
	var b bool
	if err := AssignBool(&b, true); err != nil || !b {
		t.Fatalf("got %v, %v", b, err)
	}
}
