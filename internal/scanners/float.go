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
	"math"
	"strconv"
	"strings"

	"github.com/scanfmt/scanfmt/internal/argstore"
	"github.com/scanfmt/scanfmt/internal/buffer"
	"github.com/scanfmt/scanfmt/internal/errs"
	"github.com/scanfmt/scanfmt/internal/fmtparse"
	"github.com/scanfmt/scanfmt/internal/locale"
)

// floatCursor threads the shared width budget and literal-text accumulator
// through the handful of helper steps ScanFloat is built from.
type floatCursor struct {
	it       buffer.Iterator
	sb       strings.Builder
	limit    int
	consumed int
}

func (c *floatCursor) withinWidth() bool { return c.limit <= 0 || c.consumed < c.limit }

// take appends r (already peeked with the given size) to the literal and
// advances the cursor past it.
func (c *floatCursor) take(r rune, size int) {
	c.sb.WriteRune(r)
	c.it = advanceRune(c.it, size)
	c.consumed++
}

// skip advances the cursor past a rune of the given size without appending
// it to the literal, for separators (e.g. grouping) that strconv.ParseFloat
// must never see.
func (c *floatCursor) skip(size int) {
	c.it = advanceRune(c.it, size)
	c.consumed++
}

// ScanFloat reads one floating-point literal starting at it: a hex float
// (0x...p±N), a decimal with optional fraction/exponent, or one of the
// case-insensitive literals nan/inf/infinity, per spec.md §4.G. It enforces
// the presentation-letter constraints ('f' rejects an exponent, 'a'
// requires the 0x prefix) before handing the matched text to strconv.
func ScanFloat(it buffer.Iterator, specs fmtparse.Specs, loc locale.Ref) (buffer.Iterator, float64, error) {
	start := it
	c := &floatCursor{it: it, limit: specs.Width}

	if c.withinWidth() {
		if r, size, ok := peekRune(c.it); ok && (r == '+' || r == '-') {
			c.take(r, size)
		}
	}

	if matchKeywordLiteral(c) {
		v, err := strconv.ParseFloat(c.sb.String(), 64)
		if err != nil {
			return start, 0, errs.New(errs.KindInvalidScannedValue, "invalid float literal %q", c.sb.String())
		}
		return c.it, v, nil
	}

	isHex := matchHexPrefix(c)
	if err := checkPresentation(specs, isHex); err != nil {
		return start, 0, err
	}

	decimalPoint := '.'
	if specs.Localized {
		decimalPoint = loc.DecimalPoint()
	}

	isDigit := func(r rune) bool {
		if isHex {
			_, ok := hexVal(r)
			return ok
		}
		return r >= '0' && r <= '9'
	}

	// Thousands separators are only recognized in the integer part, and
	// only when the "'" flag is set (spec.md §4.G: "thousands separators
	// in the integer part are allowed if and only if the '\'' flag is
	// set"); a hex float has no notion of grouping.
	groupSep := rune(0)
	if specs.Grouped && !isHex {
		groupSep = ','
		if specs.Localized {
			groupSep = loc.ThousandsSeparator()
		}
	}

	digitLoopStart := c.it
	digitSeen := false
	for c.withinWidth() {
		r, size, ok := peekRune(c.it)
		if !ok {
			break
		}
		if groupSep != 0 && r == groupSep {
			c.skip(size)
			continue
		}
		if !isDigit(r) {
			break
		}
		digitSeen = true
		c.take(r, size)
	}

	if c.withinWidth() {
		if r, size, ok := peekRune(c.it); ok && r == decimalPoint {
			c.take('.', size)
			for c.withinWidth() {
				r2, size2, ok2 := peekRune(c.it)
				if !ok2 || !isDigit(r2) {
					break
				}
				digitSeen = true
				c.take(r2, size2)
			}
		}
	}

	if !digitSeen {
		if _, _, ok := peekRune(digitLoopStart); !ok {
			return start, 0, errs.New(errs.KindEndOfInput, "expected a floating-point literal but the source was exhausted")
		}
		return start, 0, errs.New(errs.KindInvalidScannedValue, "expected a floating-point literal")
	}

	if isHex {
		if r, size, ok := peekRune(c.it); c.withinWidth() && ok && (r == 'p' || r == 'P') {
			c.take(r, size)
			scanExponentDigits(c)
		} else {
			return start, 0, errs.New(errs.KindInvalidScannedValue, "hex float literal requires a 'p' exponent")
		}
	} else if specs.Type != 'f' && specs.Type != 'F' {
		if r, size, ok := peekRune(c.it); c.withinWidth() && ok && (r == 'e' || r == 'E') {
			c.take(r, size)
			scanExponentDigits(c)
		}
	}

	lit := c.sb.String()
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			if strings.HasPrefix(lit, "-") {
				return start, 0, errs.New(errs.KindValueNegativeOverflow, "magnitude of %q exceeds float range", lit)
			}
			return start, 0, errs.New(errs.KindValuePositiveOverflow, "magnitude of %q exceeds float range", lit)
		}
		return start, 0, errs.New(errs.KindInvalidScannedValue, "invalid float literal %q", lit)
	}
	return c.it, v, nil
}

// matchHexPrefix consumes a leading "0x"/"0X" if present, reporting whether
// it matched. On a non-match it leaves c untouched.
func matchHexPrefix(c *floatCursor) bool {
	save, saveConsumed, saveLen := c.it, c.consumed, c.sb.Len()
	if r, size, ok := peekRune(c.it); c.withinWidth() && ok && r == '0' {
		c.take(r, size)
		if r2, size2, ok2 := peekRune(c.it); c.withinWidth() && ok2 && (r2 == 'x' || r2 == 'X') {
			c.take(r2, size2)
			return true
		}
	}
	c.it, c.consumed = save, saveConsumed
	truncated := c.sb.String()[:saveLen]
	c.sb.Reset()
	c.sb.WriteString(truncated)
	return false
}

// matchKeywordLiteral recognizes the case-insensitive nan/inf/infinity
// keywords, which strconv.ParseFloat already accepts verbatim. It restores
// c on a non-match.
func matchKeywordLiteral(c *floatCursor) bool {
	for _, kw := range []string{"infinity", "inf", "nan"} {
		save, saveConsumed, saveLen := c.it, c.consumed, c.sb.Len()
		matched := true
		for _, want := range kw {
			r, size, ok := peekRune(c.it)
			if !ok || !c.withinWidth() || lower(r) != lower(want) {
				matched = false
				break
			}
			c.take(r, size)
		}
		if matched {
			return true
		}
		c.it, c.consumed = save, saveConsumed
		truncated := c.sb.String()[:saveLen]
		c.sb.Reset()
		c.sb.WriteString(truncated)
	}
	return false
}

func lower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

func scanExponentDigits(c *floatCursor) {
	if r, size, ok := peekRune(c.it); c.withinWidth() && ok && (r == '+' || r == '-') {
		c.take(r, size)
	}
	for c.withinWidth() {
		r, size, ok := peekRune(c.it)
		if !ok || r < '0' || r > '9' {
			break
		}
		c.take(r, size)
	}
}

// checkPresentation enforces the per-letter float constraints from
// spec.md's presentation-type table: 'a'/'A' require the 0x prefix; 'f'/'F'
// reject a hex float outright (their exponent letter, 'e', is handled by
// ScanFloat simply not attempting an exponent scan for them).
func checkPresentation(specs fmtparse.Specs, isHex bool) error {
	switch specs.Type {
	case 'a', 'A':
		if !isHex {
			return errs.New(errs.KindInvalidScannedValue, "'a' presentation requires a 0x-prefixed hex float")
		}
	case 'f', 'F':
		if isHex {
			return errs.New(errs.KindInvalidScannedValue, "'f' presentation does not accept a hex float")
		}
	}
	return nil
}

// AssignFloat writes v into dest, which must be *float32 or *float64
// matching tag, range-checking float32 destinations.
func AssignFloat(dest any, tag argstore.Tag, v float64) error {
	switch tag {
	case argstore.TagFloat64:
		*dest.(*float64) = v
		return nil
	case argstore.TagFloat32:
		f32 := float32(v)
		if v != 0 && !isNaNOrInf(v) {
			if float64(f32) == 0 {
				if v < 0 {
					return errs.New(errs.KindValueNegativeUnderflow, "value %v underflows float32", v)
				}
				return errs.New(errs.KindValuePositiveUnderflow, "value %v underflows float32", v)
			}
			ratio := float64(f32) / v
			if ratio > 2 || ratio < 0.5 {
				if v > 0 {
					return errs.New(errs.KindValuePositiveOverflow, "value %v overflows float32", v)
				}
				return errs.New(errs.KindValueNegativeOverflow, "value %v overflows float32", v)
			}
		}
		*dest.(*float32) = f32
		return nil
	default:
		return errs.New(errs.KindTypeNotSupported, "tag %s is not a float destination", tag)
	}
}

func isNaNOrInf(v float64) bool {
	return v != v || v > math.MaxFloat64 || v < -math.MaxFloat64
}
