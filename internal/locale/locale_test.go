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

package locale

import "testing"

func TestClassicIsDigit(t *testing.T) {
	if d, ok := Classic.IsDigit('7'); !ok || d != 7 {
		t.Fatalf("got %d, %v", d, ok)
	}
	if _, ok := Classic.IsDigit('a'); ok {
		t.Fatalf("expected 'a' to not be a classic-locale digit")
	}
}

func TestClassicIsSpace(t *testing.T) {
	if !Classic.IsSpace(' ') || !Classic.IsSpace('\t') {
		t.Fatalf("expected ASCII space/tab to be whitespace")
	}
	if Classic.IsSpace('x') {
		t.Fatalf("expected 'x' to not be whitespace")
	}
}

func TestClassicSeparators(t *testing.T) {
	if Classic.ThousandsSeparator() != ',' || Classic.DecimalPoint() != '.' {
		t.Fatalf("got %q, %q", Classic.ThousandsSeparator(), Classic.DecimalPoint())
	}
}

func TestClassicReadNum(t *testing.T) {
	v, n, err := Classic.ReadNum("1,234,567 rest", 10)
	if err != nil {
		t.Fatalf("ReadNum: %v", err)
	}
	if v != 1234567 {
		t.Fatalf("got %d", v)
	}
	if n != len("1,234,567") {
		t.Fatalf("consumed = %d", n)
	}
}

func TestClassicReadNumNegative(t *testing.T) {
	v, _, err := Classic.ReadNum("-42", 10)
	if err != nil {
		t.Fatalf("ReadNum: %v", err)
	}
	if v != -42 {
		t.Fatalf("got %d", v)
	}
}

func TestClassicReadNumHex(t *testing.T) {
	v, n, err := Classic.ReadNum("1f", 16)
	if err != nil {
		t.Fatalf("ReadNum: %v", err)
	}
	if v != 0x1f || n != 2 {
		t.Fatalf("got %d, consumed %d", v, n)
	}
}

func TestClassicReadNumRejectsNoDigits(t *testing.T) {
	if _, _, err := Classic.ReadNum("xyz", 10); err == nil {
		t.Fatalf("expected an error reading no digits")
	}
}
