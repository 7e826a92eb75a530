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

// Kind discriminates the payload a Node carries.
type Kind uint8

const (
	Invalid Kind = iota
	False
	True
	Null
	Number
	String
	Array
	Object
	// Raw is a serializer-only kind: its string payload is emitted
	// verbatim during printing, bypassing escaping entirely.
	Raw
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case False:
		return "False"
	case True:
		return "True"
	case Null:
		return "Null"
	case Number:
		return "Number"
	case String:
		return "String"
	case Array:
		return "Array"
	case Object:
		return "Object"
	case Raw:
		return "Raw"
	default:
		return "Unknown"
	}
}
