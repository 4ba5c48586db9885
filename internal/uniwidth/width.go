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

// Package uniwidth implements the "display column" measure that scanfmt's
// width and precision fields are specified in: one column for most code
// points, two for East_Asian_Width Wide/Fullwidth runes, the Yijing Hexagram
// Symbols block, and the pictographic Supplementary Multilingual Plane
// blocks.
//
// The heavy lifting is delegated to github.com/mattn/go-runewidth, which
// already implements the East Asian Width table; uniwidth layers the two
// extra wide-rune classes scanfmt needs on top, and uses
// github.com/rivo/uniseg to stop a scan at a grapheme-cluster boundary
// instead of mid-combining-sequence for single-grapheme ("{:c}") fields.
package uniwidth

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// RuneWidth returns the display column width of a single rune: 0, 1, or 2.
func RuneWidth(r rune) int {
	if isExtraWide(r) {
		return 2
	}
	return runewidth.RuneWidth(r)
}

// isExtraWide reports membership in the two wide-rune classes go-runewidth's
// East Asian Width table does not special-case: the Yijing Hexagram Symbols
// block (U+4DC0-U+4DFF) and the pictographic SMP ranges spec.md calls out
// (emoji and symbol blocks in U+1F300-U+1FAFF).
func isExtraWide(r rune) bool {
	switch {
	case r >= 0x4DC0 && r <= 0x4DFF:
		return true
	case r >= 0x1F300 && r <= 0x1FAFF:
		return true
	default:
		return false
	}
}

// FirstGraphemeLen returns the byte length of the first extended grapheme
// cluster in s, and its display width. It is used by the exact-precision
// string reader (the string 'c' presentation) so that precision counts
// user-perceived characters rather than code points.
func FirstGraphemeLen(s string) (byteLen int, width int) {
	if s == "" {
		return 0, 0
	}
	gr := uniseg.NewGraphemes(s)
	if !gr.Next() {
		return 0, 0
	}
	from, to := gr.Positions()
	return to - from, uniseg.StringWidth(s[from:to])
}
