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
	"github.com/scanfmt/scanfmt/internal/buffer"
	"github.com/scanfmt/scanfmt/internal/errs"
	"github.com/scanfmt/scanfmt/internal/fmtparse"
)

// AssignBool writes v into dest, which must be *bool.
func AssignBool(dest any, v bool) error {
	d, ok := dest.(*bool)
	if !ok {
		return errs.New(errs.KindTypeNotSupported, "destination for a bool field is not *bool")
	}
	*d = v
	return nil
}

// ScanBool reads one boolean literal, per spec.md §4.G: when the
// presentation is 's' or unset, try the textual literal "true"/"false"
// first; when it is an integer presentation or unset, fall back to "0"/"1".
// An unset presentation tries textual first and only falls back to numeric
// on a textual mismatch, exactly as spec.md's boolean scanner describes.
func ScanBool(it buffer.Iterator, specs fmtparse.Specs) (buffer.Iterator, bool, error) {
	allowText := specs.Type == 0 || specs.Type == 's'
	allowNumeric := specs.Type == 0 || isIntegerPresentation(specs.Type)

	if allowText {
		if next, ok := matchWord(it, "true"); ok {
			return next, true, nil
		}
		if next, ok := matchWord(it, "false"); ok {
			return next, false, nil
		}
	}
	if allowNumeric {
		if r, size, ok := peekRune(it); ok && r == '0' {
			return advanceRune(it, size), false, nil
		}
		if r, size, ok := peekRune(it); ok && r == '1' {
			return advanceRune(it, size), true, nil
		}
	}
	return it, false, errs.New(errs.KindInvalidScannedValue, "expected a boolean literal")
}

func isIntegerPresentation(r rune) bool {
	switch r {
	case 'd', 'i', 'u', 'o', 'x', 'X', 'b', 'B':
		return true
	default:
		return false
	}
}

// matchWord reports whether the literal ASCII word (case-sensitive, per
// spec.md's "classic" mode) occurs at it, returning the iterator advanced
// past it on success.
func matchWord(it buffer.Iterator, word string) (buffer.Iterator, bool) {
	save := it
	for _, want := range word {
		r, size, ok := peekRune(it)
		if !ok || r != want {
			return save, false
		}
		it = advanceRune(it, size)
	}
	return it, true
}
