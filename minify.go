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

import "github.com/brightwood-labs/jsontree/internal/charclass"

// Minify rewrites data in place to an equivalent, whitespace-free JSON
// document without building a tree, per spec.md §4.5, and returns the
// shortened slice, which shares data's backing array. It is a single
// left-to-right pass: outside of a string literal, whitespace and
// "//"/"/* */" comments (a permissive superset some JSON producers
// emit) are dropped; inside a string literal (tracked from an
// unescaped '"' to the next unescaped '"', the same escaped-quote
// bookkeeping scanStringExtent uses) every byte, including whitespace,
// is copied verbatim.
func Minify(data []byte) []byte {
	// The write position never passes the read position, so the output
	// can overwrite data as it goes.
	out := data[:0]
	i := 0
	inString := false
	for i < len(data) {
		c := data[i]
		if inString {
			out = append(out, c)
			if c == '\\' && i+1 < len(data) {
				out = append(out, data[i+1])
				i += 2
				continue
			}
			if c == '"' {
				inString = false
			}
			i++
			continue
		}

		switch {
		case c == '"':
			inString = true
			out = append(out, c)
			i++
		case charclass.IsWhitespace(c):
			i++
		case c == '/' && i+1 < len(data) && data[i+1] == '/':
			i += 2
			for i < len(data) && data[i] != '\n' {
				i++
			}
		case c == '/' && i+1 < len(data) && data[i+1] == '*':
			i += 2
			for i+1 < len(data) && !(data[i] == '*' && data[i+1] == '/') {
				i++
			}
			i += 2
		default:
			out = append(out, c)
			i++
		}
	}
	return out
}
