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

// Package jsontree parses textual JSON into an in-memory node tree and
// serializes such trees back to text. The tree is a doubly linked sibling
// list with an owner/reference distinction per node, so callers can build
// documents that borrow caller-owned strings and subtrees without copying.
//
// The parser is a bounded-depth recursive descent over a byte range: it
// does not require a NUL terminator, tolerates a leading UTF-8 BOM, decodes
// UTF-16 surrogate pairs in strings, and is locale-tolerant when reading
// the decimal point of a number. The serializer buffers output with a
// geometric growth discipline and can round-trip numbers exactly.
//
// Schema validation, streaming/incremental parsing, JSON Pointer/Patch and
// comment preservation are out of scope; see SPEC_FULL.md for the full
// list of non-goals and DESIGN.md for the reasoning behind each design
// decision.
package jsontree
