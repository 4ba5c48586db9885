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

package scanfmt

import "fmt"

// Integer is the set of destination types ScanInt and
// ScanIntExhaustiveValid accept. It plays the role the teacher's own
// CastJSON[T any] constraint plays for its carrier casting helpers
// (pkg/carrier/json_casting.go): a single concrete type parameter stands in
// for spec.md's variadic-argument generality wherever one value is enough.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// ScanValue scans exactly one value of a single concrete type T with its
// default presentation. It is implemented as Scan(source, "{}", &v), so the
// "{}" format string is still parsed and checked on every call.
func ScanValue[T any](source any) (T, Result, error) {
	var v T
	res, err := Scan(source, "{}", &v)
	return v, res, err
}

// ScanInt is the integer fast path from spec.md §6. base defaults to 10;
// passing a different base is equivalent to scanning with the matching
// "{:rN}" arbitrary-base presentation.
func ScanInt[T Integer](source any, base ...int) (T, Result, error) {
	b := 10
	if len(base) > 0 {
		b = base[0]
	}
	var v T
	format := "{:d}"
	if b != 10 {
		format = fmt.Sprintf("{:r%d}", b)
	}
	res, err := Scan(source, format, &v)
	return v, res, err
}

// ScanIntExhaustiveValid assumes s is a minimal, valid, non-overflowing
// base-10 integer (optionally preceded by '-') and reads it without any of
// Scan's validation, per spec.md §6: undefined behavior (here, a garbage
// result rather than a panic) on a malformed s. It exists for hot loops
// that have already validated their input by construction.
func ScanIntExhaustiveValid[T Integer](s string) T {
	if s == "" {
		return 0
	}
	neg := false
	i := 0
	if s[0] == '-' {
		neg = true
		i = 1
	}
	var v uint64
	for ; i < len(s); i++ {
		v = v*10 + uint64(s[i]-'0')
	}
	if neg {
		return T(-int64(v))
	}
	return T(v)
}
