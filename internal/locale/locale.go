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

// Package locale provides the minimal locale capability surface that
// scanfmt's built-in scanners consult when a field carries the "L" flag.
//
// scanfmt does not ship a locale database; it is deliberately out of scope
// (see the Non-goals in SPEC_FULL.md). Ref is a narrow interface so callers
// can plug in whatever locale machinery they already have (golang.org/x/text,
// cgo to the platform's locale, a hardcoded table, ...) without scanfmt
// needing to depend on it.
package locale

import "unicode"

// Ref is the capability set the scanners need from a locale.
//
// It mirrors spec.md's locale_ref: digit/space classification, the
// thousands-separator rune, and a ReadNum hook for parsing an entire numeric
// literal in one locale-aware step.
type Ref interface {
	// IsDigit reports whether r is a decimal digit in this locale and, if
	// so, its numeric value in [0,9].
	IsDigit(r rune) (value int, ok bool)
	// IsSpace reports whether r is whitespace in this locale.
	IsSpace(r rune) bool
	// ThousandsSeparator returns the locale's digit-grouping separator rune.
	ThousandsSeparator() rune
	// DecimalPoint returns the locale's radix point rune.
	DecimalPoint() rune
	// ReadNum parses a locale-formatted integer literal of the given base
	// out of s, returning the value and the number of runes consumed. It is
	// part of the capability surface a locale plugs in as a single unit
	// (spec.md's read_num); internal/scanners.ScanInt does not call through
	// it for any locale, since that scanner already does
	// its own overflow-checked accumulation digit-by-digit and only needs
	// IsDigit from a locale to recognize each digit rune as it goes.
	ReadNum(s string, base int) (value int64, consumed int, err error)
}

// Classic is the always-available "C"/POSIX locale: ASCII digits,
// whitespace per unicode.IsSpace (which also accepts non-ASCII spaces such
// as U+00A0), ',' grouping, '.' radix point.
var Classic Ref = classicLocale{}

type classicLocale struct{}

func (classicLocale) IsDigit(r rune) (int, bool) {
	if r < '0' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}

func (classicLocale) IsSpace(r rune) bool {
	return unicode.IsSpace(r)
}

func (classicLocale) ThousandsSeparator() rune { return ',' }

func (classicLocale) DecimalPoint() rune { return '.' }

func (c classicLocale) ReadNum(s string, base int) (int64, int, error) {
	neg := false
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	var val int64
	start := i
	for i < len(s) {
		r := rune(s[i])
		if r == c.ThousandsSeparator() {
			i++
			continue
		}
		d, ok := digitValue(r, base)
		if !ok {
			break
		}
		val = val*int64(base) + int64(d)
		i++
	}
	if i == start {
		return 0, 0, errNoDigits
	}
	if neg {
		val = -val
	}
	return val, i, nil
}

func digitValue(r rune, base int) (int, bool) {
	var d int
	switch {
	case r >= '0' && r <= '9':
		d = int(r - '0')
	case r >= 'a' && r <= 'z':
		d = int(r-'a') + 10
	case r >= 'A' && r <= 'Z':
		d = int(r-'A') + 10
	default:
		return 0, false
	}
	if d >= base {
		return 0, false
	}
	return d, true
}

type localeError string

func (e localeError) Error() string { return string(e) }

const errNoDigits localeError = "locale: no digits found"
