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
	"math/bits"

	"github.com/scanfmt/scanfmt/internal/buffer"
	"github.com/scanfmt/scanfmt/internal/errs"
)

// ScanPointer reads hex digits, with an optional "0x"/"0X" prefix, into an
// unsigned integer of pointer width, per spec.md §4.G "Pointer". The
// returned value is the numeric address as a uintptr; scanfmt's dispatcher
// is responsible for deciding what, if anything, a Go destination can do
// with a bare address (scanfmt exposes *uintptr, not
// unsafe.Pointer, as the destination type for 'p' fields, since constructing
// an unsafe.Pointer from an arbitrary scanned integer has no safe general
// use and Go's own fmt.Sscanf does not support scanning %p either).
func ScanPointer(it buffer.Iterator) (buffer.Iterator, uintptr, error) {
	start := it
	if r, size, ok := peekRune(it); ok && r == '0' {
		if r2, size2, ok2 := peekRune(advanceRune(it, size)); ok2 && (r2 == 'x' || r2 == 'X') {
			it = advanceRune(advanceRune(it, size), size2)
		}
	}

	var v uint64
	digits := 0
	for {
		r, size, ok := peekRune(it)
		if !ok {
			break
		}
		d, ok := digitValueForBase(r, 16)
		if !ok {
			break
		}
		v = v<<4 | uint64(d)
		it = advanceRune(it, size)
		digits++
	}
	if digits == 0 {
		return start, 0, errs.New(errs.KindInvalidScannedValue, "expected a hexadecimal pointer literal")
	}
	if bits.UintSize == 32 && v > uint64(^uint32(0)) {
		return start, 0, errs.New(errs.KindValuePositiveOverflow, "pointer literal exceeds platform pointer width")
	}
	return it, uintptr(v), nil
}

// AssignPointer writes v into dest, which must be *uintptr.
func AssignPointer(dest any, v uintptr) error {
	d, ok := dest.(*uintptr)
	if !ok {
		return errs.New(errs.KindTypeNotSupported, "destination for a pointer field is not *uintptr")
	}
	*d = v
	return nil
}
