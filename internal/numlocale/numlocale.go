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

// Package numlocale discovers the decimal-point byte the current process
// locale would use, the way the reference implementation calls out to
// the platform's locale machinery before handing a numeric scratch
// buffer to strtod/printf. Go's standard library does not expose the C
// locale category LC_NUMERIC, so this package approximates it from the
// POSIX locale environment variables, the same narrowly-scoped,
// single-purpose OS-introspection style as
// _examples/salikh-peg/compat/workspace (a small package whose only job
// is reading ambient OS state to answer one question).
package numlocale

import (
	"os"
	"strings"
)

// commaLocalePrefixes lists the language_TERRITORY locale prefixes whose
// default LC_NUMERIC convention uses ',' as the decimal point rather than
// '.'. This is not an exhaustive locale database - it is the same
// pragmatic, best-effort approximation spirit as the reference
// implementation's reliance on whatever libc's setlocale(LC_NUMERIC, "")
// resolved to, not a claim of full CLDR coverage.
var commaLocalePrefixes = []string{
	"de", "fr", "es", "it", "nl", "pt", "ru", "pl", "tr", "sv", "fi",
	"da", "nb", "nn", "cs", "sk", "hu", "ro", "uk", "el", "bg", "hr",
	"sl", "sr", "lt", "lv", "et", "is", "ca", "eu", "gl",
}

// DecimalPoint returns the single-byte decimal-point character the
// current locale environment implies. It checks LC_NUMERIC, then
// LC_ALL, then LANG, in that order (the same precedence glibc's
// setlocale resolution uses), and defaults to '.' when none are set or
// none are recognized.
func DecimalPoint() byte {
	for _, envVar := range []string{"LC_NUMERIC", "LC_ALL", "LANG"} {
		v := os.Getenv(envVar)
		if v == "" {
			continue
		}
		if usesComma(v) {
			return ','
		}
		return '.'
	}
	return '.'
}

func usesComma(locale string) bool {
	locale = strings.ToLower(locale)
	for _, prefix := range commaLocalePrefixes {
		if strings.HasPrefix(locale, prefix) {
			return true
		}
	}
	return false
}
