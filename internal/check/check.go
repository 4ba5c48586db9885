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

// Package check implements the type-validation pass that, in the
// originating C++ library, ran at compile time against the format string's
// presentation types (spec.md §4 component F). Go has no constexpr phase,
// so this runs once per Scan call, immediately after internal/fmtparse
// produces its Fields and before any byte of input is consumed — still
// "fail fast, before touching the buffer", just at run time instead of
// compile time.
package check

import (
	"github.com/scanfmt/scanfmt/internal/argstore"
	"github.com/scanfmt/scanfmt/internal/errs"
	"github.com/scanfmt/scanfmt/internal/fmtparse"
)

// integerTypes is the set of presentation letters valid for an integer
// destination when no arbitrary base (r/R/B + digits) is given.
var integerTypes = map[rune]bool{
	'd': true, 'i': true, 'u': true,
	'o': true, 'x': true, 'X': true, 'b': true,
}

var floatTypes = map[rune]bool{
	'a': true, 'A': true,
	'e': true, 'E': true,
	'f': true, 'F': true,
	'g': true, 'G': true,
}

// Validate checks that specs is a legal presentation for an argument tagged
// tag. It runs after fmtparse.Parse, which has already guaranteed internal
// grammar consistency (e.g. Charset is non-nil iff Type == '['); Validate's
// job is the cross-check against the destination's type, the one thing the
// parser cannot know on its own.
func Validate(tag argstore.Tag, specs fmtparse.Specs) error {
	if tag == argstore.TagCustom {
		// A user Scanner owns its own presentation-type rules; scanfmt does
		// not second-guess them.
		return nil
	}

	if specs.Localized && !(tag.IsInteger() || tag.IsFloat() || tag == argstore.TagBool) {
		return errs.New(errs.KindInvalidFormatString, "the 'L' flag requires an integer, float, or bool argument, got %s", tag)
	}
	if specs.Grouped && !(tag.IsInteger() || tag.IsFloat()) {
		return errs.New(errs.KindInvalidFormatString, "the \"'\" flag requires an integer or float argument, got %s", tag)
	}

	switch specs.Type {
	case 0:
		return validateDefaultType(tag, specs)
	case '[':
		return validateCharsetType(tag, specs)
	case '/':
		return validateRegexType(tag, specs)
	case 'r', 'R', 'B':
		return validateArbitraryBaseType(tag, specs)
	default:
		return validateLetterType(tag, specs)
	}
}

func validateDefaultType(tag argstore.Tag, specs fmtparse.Specs) error {
	// Every tag has a sensible default presentation: decimal for integers,
	// general for floats, textual-then-numeric for bool, a single rune/byte
	// for characters, a whitespace-delimited token for strings.
	_ = specs
	switch {
	case tag.IsInteger(), tag.IsFloat(), tag.IsCharacter(), tag.IsString(),
		tag == argstore.TagBool, tag == argstore.TagPointer:
		return nil
	default:
		return errs.New(errs.KindInvalidFormatString, "argument type %s has no default presentation", tag)
	}
}

func validateCharsetType(tag argstore.Tag, specs fmtparse.Specs) error {
	if specs.Charset == nil {
		return errs.New(errs.KindInvalidFormatString, "'[' presentation missing its compiled charset")
	}
	if !(tag.IsCharacter() || tag.IsString()) {
		return errs.New(errs.KindInvalidFormatString, "'[...]' presentation requires a character or string argument, got %s", tag)
	}
	return nil
}

func validateRegexType(tag argstore.Tag, specs fmtparse.Specs) error {
	if specs.Regex == nil {
		return errs.New(errs.KindInvalidFormatString, "'/' presentation missing its compiled regex")
	}
	if !tag.IsString() {
		return errs.New(errs.KindInvalidFormatString, "'/regex/' presentation requires a string argument, got %s", tag)
	}
	// The contiguous-source requirement is enforced at scan time
	// (scanners.ScanRegex) against the live buffer; there's nothing more
	// to check here from the format string alone.
	return nil
}

func validateArbitraryBaseType(tag argstore.Tag, specs fmtparse.Specs) error {
	if specs.ArbitraryBase < 2 || specs.ArbitraryBase > 36 {
		return errs.New(errs.KindInvalidFormatString, "base %d out of range [2,36]", specs.ArbitraryBase)
	}
	if !tag.IsInteger() {
		return errs.New(errs.KindInvalidFormatString, "arbitrary-base presentation requires an integer argument, got %s", tag)
	}
	return nil
}

func validateLetterType(tag argstore.Tag, specs fmtparse.Specs) error {
	switch {
	case tag.IsInteger():
		if !integerTypes[specs.Type] {
			return errs.New(errs.KindInvalidFormatString, "presentation %q is not valid for an integer argument", specs.Type)
		}
		return nil
	case tag.IsFloat():
		if !floatTypes[specs.Type] {
			return errs.New(errs.KindInvalidFormatString, "presentation %q is not valid for a float argument", specs.Type)
		}
		return nil
	case tag.IsCharacter():
		if specs.Type != 'c' && !integerTypes[specs.Type] {
			return errs.New(errs.KindInvalidFormatString, "presentation %q is not valid for a character argument", specs.Type)
		}
		return nil
	case tag.IsString():
		if specs.Type != 's' && specs.Type != 'c' {
			return errs.New(errs.KindInvalidFormatString, "presentation %q is not valid for a string argument", specs.Type)
		}
		return nil
	case tag == argstore.TagPointer:
		if specs.Type != 'p' {
			return errs.New(errs.KindInvalidFormatString, "presentation %q is not valid for a pointer argument", specs.Type)
		}
		return nil
	case tag == argstore.TagBool:
		if specs.Type != 's' && !integerTypes[specs.Type] {
			return errs.New(errs.KindInvalidFormatString, "presentation %q is not valid for a bool argument", specs.Type)
		}
		return nil
	default:
		return errs.New(errs.KindInvalidFormatString, "argument type %s accepts no presentation letter %q", tag, specs.Type)
	}
}
