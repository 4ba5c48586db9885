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
)

func TestScanByte(t *testing.T) {
	it := buffer.NewContiguous([]byte("ab")).Begin()
	next, b, err := ScanByte(it)
	if err != nil || b != 'a' {
		t.Fatalf("got %v, %v", b, err)
	}
	if _, b2, _ := ScanByte(next); b2 != 'b' {
		t.Fatalf("got %v", b2)
	}
}

func TestScanRuneMultiByte(t *testing.T) {
	it := buffer.NewContiguous([]byte("日本語")).Begin()
	next, r, err := ScanRune(it)
	if err != nil || r != '日' {
		t.Fatalf("got %q, %v", r, err)
	}
	_, r2, err := ScanRune(next)
	if err != nil || r2 != '本' {
		t.Fatalf("got %q, %v", r2, err)
	}
}

func TestScanCharEndOfInput(t *testing.T) {
	it := buffer.NewContiguous(nil).Begin()
	if _, _, err := ScanByte(it); err == nil {
		t.Fatalf("expected an end-of-input error")
	}
	if _, _, err := ScanRune(it); err == nil {
		t.Fatalf("expected an end-of-input error")
	}
}

func TestAssignByteRune(t *testing.T) {
	var b byte
	if err := AssignByte(&b, 'x'); err != nil || b != 'x' {
		t.Fatalf("got %v, %v", b, err)
	}
	var r rune
	if err := AssignRune(&r, '語'); err != nil || r != '語' {
		t.Fatalf("got %q, %v", r, err)
	}
}
