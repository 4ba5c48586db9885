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
	"github.com/scanfmt/scanfmt/internal/argstore"
	"github.com/scanfmt/scanfmt/internal/buffer"
	"github.com/scanfmt/scanfmt/internal/errs"
	"github.com/scanfmt/scanfmt/internal/fmtparse"
	"github.com/scanfmt/scanfmt/internal/locale"
)

// IntResult is the sign/magnitude pair a successful integer scan produces.
// Keeping the two separate (rather than eagerly negating into an int64)
// lets AssignInt catch the INT_MIN-style case where the magnitude is
// representable only with the sign already applied.
type IntResult struct {
	Negative  bool
	Magnitude uint64
}

// baseForPresentation resolves the numeric base an integer field should be
// read in, following spec.md's presentation-letter table plus the
// SPEC_FULL.md arbitrary-base supplement.
func baseForPresentation(specs fmtparse.Specs) (base int, detect bool) {
	if specs.ArbitraryBase != 0 {
		return specs.ArbitraryBase, false
	}
	switch specs.Type {
	case 'o':
		return 8, false
	case 'x', 'X':
		return 16, false
	case 'b':
		return 2, false
	case 'u':
		return 10, false
	case 'i':
		return 0, true // 0 means "detect from prefix", scanf-style
	default:
		return 10, false
	}
}

// ScanInt reads one integer literal starting at it, honoring specs' base
// selection, width bound, the "'" (thousands-separator grouping) flag, and
// the 'L' (locale-aware digit classification and separator) flag. It never
// partially consumes the destination: on error the returned iterator is the
// caller's original it.
func ScanInt(it buffer.Iterator, specs fmtparse.Specs, loc locale.Ref) (buffer.Iterator, IntResult, error) {
	start := it
	limit := specs.Width
	consumed := 0

	withinWidth := func() bool { return limit <= 0 || consumed < limit }

	negative := false
	if withinWidth() {
		if r, size, ok := peekRune(it); ok && (r == '+' || r == '-') {
			if r == '-' && specs.Type == 'u' {
				return start, IntResult{}, errs.New(errs.KindInvalidScannedValue, "'u' presentation does not accept a '-' sign")
			}
			negative = r == '-'
			it = advanceRune(it, size)
			consumed++
		}
	}

	base, detect := baseForPresentation(specs)
	if detect {
		base = 10
		if withinWidth() {
			if r, _, ok := peekRune(it); ok && r == '0' {
				save, saveConsumed := it, consumed
				it = advanceRune(it, 1)
				consumed++
				if withinWidth() {
					if r2, size2, ok2 := peekRune(it); ok2 && (r2 == 'x' || r2 == 'X') {
						it = advanceRune(it, size2)
						consumed++
						base = 16
					} else if ok2 && (r2 == 'o' || r2 == 'O') {
						it = advanceRune(it, size2)
						consumed++
						base = 8
					} else if ok2 && (r2 == 'b' || r2 == 'B') {
						it = advanceRune(it, size2)
						consumed++
						base = 2
					} else {
						// a bare leading zero with no recognized prefix reads as
						// octal; rewind so the zero itself counts as a digit
						it, consumed = save, saveConsumed
						base = 8
					}
				} else {
					it, consumed = save, saveConsumed
					base = 10
				}
			}
		}
	}

	cutoff := ^uint64(0) / uint64(base)
	cutlim := ^uint64(0) % uint64(base)

	groupSep := rune(0)
	if specs.Grouped {
		groupSep = ','
		if specs.Localized {
			groupSep = loc.ThousandsSeparator()
		}
	}

	digitLoopStart := it
	var magnitude uint64
	digits := 0
	for withinWidth() {
		r, size, ok := peekRune(it)
		if !ok {
			break
		}
		if specs.Grouped && r == groupSep {
			it = advanceRune(it, size)
			consumed++
			continue
		}
		d, ok := digitValue(r, base, specs.Localized, loc)
		if !ok {
			break
		}
		if magnitude > cutoff || (magnitude == cutoff && uint64(d) > cutlim) {
			return start, IntResult{}, overflowErr(negative)
		}
		magnitude = magnitude*uint64(base) + uint64(d)
		it = advanceRune(it, size)
		consumed++
		digits++
	}

	if digits == 0 {
		if _, _, ok := peekRune(digitLoopStart); !ok {
			return start, IntResult{}, errs.New(errs.KindEndOfInput, "expected an integer literal but the source was exhausted")
		}
		return start, IntResult{}, errs.New(errs.KindInvalidScannedValue, "expected an integer literal")
	}
	return it, IntResult{Negative: negative, Magnitude: magnitude}, nil
}

// digitValue resolves the numeric value of r in base, consulting the
// locale's own digit classification first when localized is set (spec.md
// §4.G: "with the L flag, parsing is delegated to the locale's read_num" —
// loc.IsDigit is read_num's per-rune building block, so a locale with
// non-ASCII digit runes is still scannable in L mode) before falling back
// to the ASCII table that also covers base>10 letter digits.
func digitValue(r rune, base int, localized bool, loc locale.Ref) (int, bool) {
	if localized {
		if d, ok := loc.IsDigit(r); ok && d < base {
			return d, true
		}
	}
	return digitValueForBase(r, base)
}

func digitValueForBase(r rune, base int) (int, bool) {
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

func overflowErr(negative bool) error {
	if negative {
		return errs.New(errs.KindValueNegativeOverflow, "scanned magnitude exceeds the representable range")
	}
	return errs.New(errs.KindValuePositiveOverflow, "scanned magnitude exceeds the representable range")
}

// signedRange returns the [min,max] (as int64) of a signed integer type
// with the given bit width.
func signedRange(bits int) (min, max int64) {
	max = int64(uint64(1)<<(uint(bits)-1) - 1)
	min = -max - 1
	return min, max
}

// unsignedMax returns the maximum value of an unsigned integer type with
// the given bit width.
func unsignedMax(bits int) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(bits)) - 1
}

// AssignInt range-checks res against tag's width/signedness and writes it
// into dest, which must be a pointer to the matching Go type.
func AssignInt(dest any, tag argstore.Tag, res IntResult) error {
	if tag.IsInteger() && isUnsignedTag(tag) {
		if res.Negative && res.Magnitude != 0 {
			return errs.New(errs.KindValueNegativeOverflow, "unsigned destination cannot hold a negative value")
		}
		bits := bitsForTag(tag)
		max := unsignedMax(bits)
		if res.Magnitude > max {
			return errs.New(errs.KindValuePositiveOverflow, "value %d exceeds the range of the destination type", res.Magnitude)
		}
		return assignUnsigned(dest, tag, res.Magnitude)
	}

	bits := bitsForTag(tag)
	min, max := signedRange(bits)
	if res.Negative {
		if res.Magnitude > uint64(-(min + 1))+1 {
			return errs.New(errs.KindValueNegativeOverflow, "value -%d is below the range of the destination type", res.Magnitude)
		}
		return assignSigned(dest, tag, -int64(res.Magnitude))
	}
	if res.Magnitude > uint64(max) {
		return errs.New(errs.KindValuePositiveOverflow, "value %d exceeds the range of the destination type", res.Magnitude)
	}
	return assignSigned(dest, tag, int64(res.Magnitude))
}

func isUnsignedTag(tag argstore.Tag) bool {
	switch tag {
	case argstore.TagUint, argstore.TagUint8, argstore.TagUint16, argstore.TagUint32, argstore.TagUint64:
		return true
	default:
		return false
	}
}

func bitsForTag(tag argstore.Tag) int {
	switch tag {
	case argstore.TagInt8, argstore.TagUint8:
		return 8
	case argstore.TagInt16, argstore.TagUint16:
		return 16
	case argstore.TagInt32, argstore.TagUint32:
		return 32
	default:
		return 64
	}
}

func assignSigned(dest any, tag argstore.Tag, v int64) error {
	switch tag {
	case argstore.TagInt:
		*dest.(*int) = int(v)
	case argstore.TagInt8:
		*dest.(*int8) = int8(v)
	case argstore.TagInt16:
		*dest.(*int16) = int16(v)
	case argstore.TagInt32:
		*dest.(*int32) = int32(v)
	case argstore.TagInt64:
		*dest.(*int64) = v
	default:
		return errs.New(errs.KindTypeNotSupported, "tag %s is not a signed integer destination", tag)
	}
	return nil
}

func assignUnsigned(dest any, tag argstore.Tag, v uint64) error {
	switch tag {
	case argstore.TagUint:
		*dest.(*uint) = uint(v)
	case argstore.TagUint8:
		*dest.(*uint8) = uint8(v)
	case argstore.TagUint16:
		*dest.(*uint16) = uint16(v)
	case argstore.TagUint32:
		*dest.(*uint32) = uint32(v)
	case argstore.TagUint64:
		*dest.(*uint64) = v
	default:
		return errs.New(errs.KindTypeNotSupported, "tag %s is not an unsigned integer destination", tag)
	}
	return nil
}
