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

const hexDigits = "0123456789abcdef"

// printQuotedString writes s as a JSON string literal, per spec.md
// §4.4: a first pass counts the bytes the escaped form will occupy
// (every byte needs escaping is additive, every byte that doesn't costs
// exactly one), so the destination region can be reserved with a single
// ensure call; a second pass then either copies s verbatim (the common
// case, no byte needs escaping) or walks it again emitting the
// single-letter escapes (\" \\ \b \f \n \r \t) or a \u00XX sequence for
// other control bytes.
func printQuotedString(b *printBuffer, s string) error {
	escapedLen := 0
	needsEscape := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' || c == '\\':
			escapedLen += 2
			needsEscape = true
		case c == '\b' || c == '\f' || c == '\n' || c == '\r' || c == '\t':
			escapedLen += 2
			needsEscape = true
		case c < 0x20:
			escapedLen += 6
			needsEscape = true
		default:
			escapedLen++
		}
	}

	if err := b.ensure(escapedLen + 2); err != nil {
		return err
	}
	b.buf[b.offset] = '"'
	b.offset++

	if !needsEscape {
		copy(b.buf[b.offset:], s)
		b.offset += len(s)
	} else {
		for i := 0; i < len(s); i++ {
			c := s[i]
			switch c {
			case '"':
				b.buf[b.offset] = '\\'
				b.buf[b.offset+1] = '"'
				b.offset += 2
			case '\\':
				b.buf[b.offset] = '\\'
				b.buf[b.offset+1] = '\\'
				b.offset += 2
			case '\b':
				b.buf[b.offset] = '\\'
				b.buf[b.offset+1] = 'b'
				b.offset += 2
			case '\f':
				b.buf[b.offset] = '\\'
				b.buf[b.offset+1] = 'f'
				b.offset += 2
			case '\n':
				b.buf[b.offset] = '\\'
				b.buf[b.offset+1] = 'n'
				b.offset += 2
			case '\r':
				b.buf[b.offset] = '\\'
				b.buf[b.offset+1] = 'r'
				b.offset += 2
			case '\t':
				b.buf[b.offset] = '\\'
				b.buf[b.offset+1] = 't'
				b.offset += 2
			default:
				if c < 0x20 {
					b.buf[b.offset] = '\\'
					b.buf[b.offset+1] = 'u'
					b.buf[b.offset+2] = '0'
					b.buf[b.offset+3] = '0'
					b.buf[b.offset+4] = hexDigits[c>>4]
					b.buf[b.offset+5] = hexDigits[c&0xF]
					b.offset += 6
				} else {
					b.buf[b.offset] = c
					b.offset++
				}
			}
		}
	}

	b.buf[b.offset] = '"'
	b.offset++
	return nil
}
