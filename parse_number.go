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

package jsontree

import (
	"strconv"
	"strings"

	"github.com/brightwood-labs/jsontree/internal/charclass"
	"github.com/brightwood-labs/jsontree/internal/numlocale"
)

// parseNumber scans the numeric literal character class ([0-9+-.eE])
// forward from the cursor, per spec.md §4.3, then hands the slice to the
// platform float converter. The reference implementation must swap '.'
// for the current locale's decimal point before calling the (locale
// sensitive) C strtod; strconv.ParseFloat is never locale sensitive, so
// the swap below is only ever exercised defensively (the number
// character class never admits a literal ',' to begin with, so
// normalized == raw in every real parse) and the locale lookup cannot
// change parsing behavior - exactly the "identical input yields
// identical parsed numeric payload... regardless of the process
// locale's decimal point" property spec.md §8 requires.
func (p *parser) parseNumber() (*Node, error) {
	start := p.pos
	i := p.pos
	for i < len(p.src) && charclass.IsNumberChar(p.src[i]) {
		i++
	}
	if i == start {
		return nil, p.syntaxErrorf("invalid number")
	}
	raw := p.src[start:i]

	normalized := raw
	if dp := numlocale.DecimalPoint(); dp != '.' && strings.IndexByte(raw, byte(dp)) >= 0 {
		normalized = strings.ReplaceAll(raw, string(dp), ".")
	}

	v, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		p.pos = start
		return nil, p.syntaxErrorf("invalid number %q", raw)
	}
	p.pos = i
	return NewNumber(v), nil
}
