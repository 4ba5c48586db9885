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

func TestScanPointerWithPrefix(t *testing.T) {
	it := buffer.NewContiguous([]byte("0x1A2B")).Begin()
	_, v, err := ScanPointer(it)
	if err != nil || v != 0x1A2B {
		t.Fatalf("got %v, %v", v, err)
	}
}

func TestScanPointerWithoutPrefix(t *testing.T) {
	it := buffer.NewContiguous([]byte("deadbeef")).Begin()
	_, v, err := ScanPointer(it)
	if err != nil || v != 0xdeadbeef {
		t.Fatalf("got %v, %v", v, err)
	}
}

func TestScanPointerRejectsGarbage(t *testing.T) {
	it := buffer.NewContiguous([]byte("zz")).Begin()
	if _, _, err := ScanPointer(it); err == nil {
		t.Fatalf("expected an error scanning a non-hex literal")
	}
}

func TestAssignPointer(t *testing.T) {
	var p uintptr
	if err := AssignPointer(&p, 42); err != nil || p != 42 {
		t.Fatalf("got %v, %v", p, err)
	}
}
