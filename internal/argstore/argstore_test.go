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

package argstore

import "testing"

func TestPackedLayoutRoundTrips(t *testing.T) {
	var a, b int
	dests := []any{&a, &b}
	tags := []Tag{TagInt, TagString}
	s := New(dests, tags, nil)

	if !s.Packed() {
		t.Fatalf("expected packed layout for 2 args")
	}
	if s.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", s.Count())
	}
	if s.Tag(0) != TagInt || s.Tag(1) != TagString {
		t.Fatalf("tags = %v,%v want int,string", s.Tag(0), s.Tag(1))
	}
	if s.Dest(0) != dests[0] {
		t.Fatalf("Dest(0) mismatch")
	}
	if s.HasCustom() {
		t.Fatalf("no custom slots were provided")
	}
}

func TestUnpackedLayoutBeyondCapacity(t *testing.T) {
	n := packedCapacity + 3
	dests := make([]any, n)
	tags := make([]Tag, n)
	for i := range dests {
		v := i
		dests[i] = &v
		tags[i] = TagInt
	}
	s := New(dests, tags, nil)
	if s.Packed() {
		t.Fatalf("expected unpacked layout beyond packedCapacity")
	}
	if s.Count() != n {
		t.Fatalf("Count() = %d, want %d", s.Count(), n)
	}
	for i := 0; i < n; i++ {
		if s.Tag(i) != TagInt {
			t.Fatalf("Tag(%d) = %v, want TagInt", i, s.Tag(i))
		}
	}
}

func TestCustomTrampolineDispatch(t *testing.T) {
	var dest int
	called := false
	tr := Trampoline(func(d any, pctx any, sctx any) error {
		called = true
		if d != &dest {
			t.Fatalf("trampoline received wrong destination")
		}
		return nil
	})
	s := New([]any{&dest}, []Tag{TagCustom}, []Trampoline{tr})
	if !s.HasCustom() {
		t.Fatalf("expected HasCustom")
	}
	if err := s.Trampoline(0)(s.Dest(0), nil, nil); err != nil {
		t.Fatalf("trampoline returned error: %v", err)
	}
	if !called {
		t.Fatalf("trampoline was not invoked")
	}
}

func TestTagOutOfRange(t *testing.T) {
	s := New(nil, nil, nil)
	if s.Tag(0) != TagNone {
		t.Fatalf("Tag on empty store should be TagNone")
	}
	if s.Dest(0) != nil {
		t.Fatalf("Dest on empty store should be nil")
	}
}
