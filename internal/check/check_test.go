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

package check

import (
	"testing"

	"github.com/scanfmt/scanfmt/internal/argstore"
	"github.com/scanfmt/scanfmt/internal/fmtparse"
)

func specsWithType(r rune) fmtparse.Specs {
	s := fmtparse.NewSpecs()
	s.Type = r
	return s
}

func TestValidateDefaultPresentations(t *testing.T) {
	for _, tag := range []argstore.Tag{
		argstore.TagInt, argstore.TagFloat64, argstore.TagBool,
		argstore.TagByte, argstore.TagString, argstore.TagPointer,
	} {
		if err := Validate(tag, fmtparse.NewSpecs()); err != nil {
			t.Errorf("default presentation rejected for %s: %v", tag, err)
		}
	}
}

func TestValidateIntegerLetters(t *testing.T) {
	for _, r := range []rune{'d', 'i', 'u', 'o', 'x', 'X', 'b'} {
		if err := Validate(argstore.TagInt, specsWithType(r)); err != nil {
			t.Errorf("presentation %q rejected for int: %v", r, err)
		}
	}
	if err := Validate(argstore.TagInt, specsWithType('f')); err == nil {
		t.Errorf("expected 'f' to be rejected for an integer argument")
	}
}

func TestValidateFloatLetters(t *testing.T) {
	for _, r := range []rune{'a', 'A', 'e', 'E', 'f', 'F', 'g', 'G'} {
		if err := Validate(argstore.TagFloat64, specsWithType(r)); err != nil {
			t.Errorf("presentation %q rejected for float: %v", r, err)
		}
	}
	if err := Validate(argstore.TagFloat64, specsWithType('x')); err == nil {
		t.Errorf("expected 'x' to be rejected for a float argument")
	}
}

func TestValidateArbitraryBaseRequiresInteger(t *testing.T) {
	s := fmtparse.NewSpecs()
	s.Type = 'r'
	s.ArbitraryBase = 16
	if err := Validate(argstore.TagInt, s); err != nil {
		t.Errorf("base 16 rejected for int: %v", err)
	}
	if err := Validate(argstore.TagFloat64, s); err == nil {
		t.Errorf("expected arbitrary base to be rejected for a float argument")
	}
}

func TestValidateCharsetRequiresCharOrString(t *testing.T) {
	cs := fmtparse.NewCharsetSpec()
	cs.AddASCIIRange('a', 'z')
	s := fmtparse.NewSpecs()
	s.Type = '['
	s.Charset = cs

	if err := Validate(argstore.TagString, s); err != nil {
		t.Errorf("charset rejected for string: %v", err)
	}
	if err := Validate(argstore.TagByte, s); err != nil {
		t.Errorf("charset rejected for byte: %v", err)
	}
	if err := Validate(argstore.TagInt, s); err == nil {
		t.Errorf("expected charset presentation to be rejected for an integer argument")
	}
}

func TestValidateRegexRequiresString(t *testing.T) {
	s := fmtparse.NewSpecs()
	s.Type = '/'
	s.Regex = &fmtparse.RegexSpec{Pattern: "[0-9]+"}

	if err := Validate(argstore.TagString, s); err != nil {
		t.Errorf("regex rejected for string: %v", err)
	}
	if err := Validate(argstore.TagInt, s); err == nil {
		t.Errorf("expected regex presentation to be rejected for an integer argument")
	}
}

func TestValidateLocalizedFlagRequiresNumericOrBool(t *testing.T) {
	s := fmtparse.NewSpecs()
	s.Localized = true
	if err := Validate(argstore.TagInt, s); err != nil {
		t.Errorf("'L' rejected for int: %v", err)
	}
	if err := Validate(argstore.TagBool, s); err != nil {
		t.Errorf("'L' rejected for bool: %v", err)
	}
	if err := Validate(argstore.TagString, s); err == nil {
		t.Errorf("expected 'L' to be rejected for a string argument")
	}
}

func TestValidateGroupedFlagRequiresNumeric(t *testing.T) {
	s := fmtparse.NewSpecs()
	s.Grouped = true
	if err := Validate(argstore.TagInt, s); err != nil {
		t.Errorf("\"'\" rejected for int: %v", err)
	}
	if err := Validate(argstore.TagFloat64, s); err != nil {
		t.Errorf("\"'\" rejected for float: %v", err)
	}
	if err := Validate(argstore.TagBool, s); err == nil {
		t.Errorf("expected \"'\" to be rejected for a bool argument")
	}
}

func TestValidateCustomTagSkipsChecks(t *testing.T) {
	s := fmtparse.NewSpecs()
	s.Type = 'z' // not a recognized letter for anything built-in
	if err := Validate(argstore.TagCustom, s); err != nil {
		t.Errorf("custom tag should bypass built-in presentation checks: %v", err)
	}
}
