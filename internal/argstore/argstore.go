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

// Trampoline is the type-erased entry point for a custom (user-defined)
// argument type, mirroring spec.md's "(void* dest, parse-ctx*, scan-ctx*) ->
// Result<()>" contract. dest, pctx and sctx are erased to any here exactly
// because argstore must not depend on the format-parsing or dispatch
// packages (which is also why the C++ original erases them to void*): the
// caller that built the Trampoline closure is the only place that knows the
// concrete types, and type-asserts them back inside the closure body.
type Trampoline func(dest any, pctx any, sctx any) error

// packedCapacity is the largest argument count that fits the packed layout:
// a 4-bit count field, a has-custom bit, and up to 8 five-bit tags all fit
// in one uint64 header word (4 + 1 + 8*5 = 45 bits).
const packedCapacity = 8

const (
	countBits = 4
	tagBits   = 5
	tagMask   = (1 << tagBits) - 1
)

type slot struct {
	dest       any
	trampoline Trampoline
}

// Store is the packed-or-unpacked type-erased argument vector. Use New to
// build one from parallel slices of destinations, tags, and (optional,
// nil-able) trampolines.
type Store struct {
	packed    bool
	hasCustom bool
	count     int

	// packed representation
	header uint64
	pvals  [packedCapacity]slot

	// unpacked representation
	tags []Tag
	vals []slot
}

// New builds a Store over n = len(dests) arguments. tags must have the same
// length as dests. trampolines may be nil, or shorter than dests (missing
// entries are treated as nil / "not custom").
func New(dests []any, tags []Tag, trampolines []Trampoline) *Store {
	n := len(dests)
	hasCustom := false
	for _, tg := range tags {
		if tg == TagCustom {
			hasCustom = true
			break
		}
	}

	s := &Store{count: n, hasCustom: hasCustom}

	if n <= packedCapacity {
		s.packed = true
		s.header = uint64(n)
		if hasCustom {
			s.header |= 1 << 63
		}
		for i, tg := range tags {
			s.header |= uint64(tg&tagMask) << uint(countBits+i*tagBits)
			s.pvals[i] = slot{dest: dests[i], trampoline: trampolineAt(trampolines, i)}
		}
		return s
	}

	s.tags = append([]Tag(nil), tags...)
	s.vals = make([]slot, n)
	for i := range dests {
		s.vals[i] = slot{dest: dests[i], trampoline: trampolineAt(trampolines, i)}
	}
	return s
}

func trampolineAt(trampolines []Trampoline, i int) Trampoline {
	if i < len(trampolines) {
		return trampolines[i]
	}
	return nil
}

// Count returns the number of argument slots.
func (s *Store) Count() int { return s.count }

// Packed reports whether this Store uses the packed (<=8 args) layout.
func (s *Store) Packed() bool { return s.packed }

// HasCustom reports whether any slot carries a custom-type trampoline.
func (s *Store) HasCustom() bool { return s.hasCustom }

// Header returns the packed layout's raw header word. It is only meaningful
// when Packed() is true; callers outside this package should prefer Tag.
func (s *Store) Header() uint64 { return s.header }

// Tag returns the type tag of slot i, or TagNone if i is out of range.
func (s *Store) Tag(i int) Tag {
	if i < 0 || i >= s.count {
		return TagNone
	}
	if s.packed {
		return Tag((s.header >> uint(countBits+i*tagBits)) & tagMask)
	}
	return s.tags[i]
}

// Dest returns the (type-erased) destination pointer of slot i.
func (s *Store) Dest(i int) any {
	if i < 0 || i >= s.count {
		return nil
	}
	if s.packed {
		return s.pvals[i].dest
	}
	return s.vals[i].dest
}

// Trampoline returns the custom-type trampoline of slot i, or nil if the
// slot is not a custom type.
func (s *Store) Trampoline(i int) Trampoline {
	if i < 0 || i >= s.count {
		return nil
	}
	if s.packed {
		return s.pvals[i].trampoline
	}
	return s.vals[i].trampoline
}
