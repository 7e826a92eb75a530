// Copyright 2019 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package charclass provides byte-classification lookups for the JSON
// lexical alphabet: whitespace, digits, hex digits, and the character set
// that can appear in a number literal. It plays the same role in this
// repository that parser/charclass plays for the PEG engine it was
// ported from - factoring character-class membership tests out of the
// recursive-descent dispatch - but is specialized to JSON's fixed ASCII
// alphabet rather than a general user-suppliable regex-style class,
// since JSON's grammar never needs one.
package charclass

// IsWhitespace reports whether b is skippable between tokens, using
// spec.md §4.3's "bytes <= 0x20" rule: this covers RFC 8259's space, tab,
// CR and LF, and also every other control byte below 0x20.
func IsWhitespace(b byte) bool {
	return b <= 0x20
}

// IsDigit reports whether b is an ASCII decimal digit.
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// IsHexDigit reports whether b is a valid hex digit for a \uXXXX escape.
func IsHexDigit(b byte) bool {
	return IsDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// HexValue returns the numeric value of a hex digit. Per spec.md §4.3,
// any non-hex nibble is treated as zero by the caller's hex-quad
// assembly helper: "the parse-four-hex helper treats any non-hex nibble
// as zero -> caller must verify range validity (it does)." This function
// implements that same permissive mapping; callers that need to reject
// malformed escapes must check IsHexDigit themselves first.
func HexValue(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	default:
		return 0
	}
}

// IsNumberChar reports whether b can appear within a JSON number literal
// ([0-9+-.eE]), the character class spec.md §4.3 scans forward over to
// find a numeric slice's bounds before handing it to the float converter.
func IsNumberChar(b byte) bool {
	switch b {
	case '+', '-', '.', 'e', 'E':
		return true
	default:
		return IsDigit(b)
	}
}
