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

// NewNull returns a fresh Null node.
func NewNull() *Node { return &Node{kind: Null} }

// NewTrue returns a fresh True node.
func NewTrue() *Node { return &Node{kind: True} }

// NewFalse returns a fresh False node.
func NewFalse() *Node { return &Node{kind: False} }

// NewBool returns a fresh True or False node depending on v.
func NewBool(v bool) *Node {
	if v {
		return NewTrue()
	}
	return NewFalse()
}

// NewNumber returns a fresh Number node holding v.
func NewNumber(v float64) *Node {
	n := &Node{kind: Number}
	n.setNumber(v)
	return n
}

// NewString returns a fresh String node that owns a copy of s.
func NewString(s string) *Node {
	return &Node{kind: String, stringValue: s}
}

// NewStringReference returns a fresh String node that borrows s: deleting
// the node will not touch s, and mutating the node must not attempt to
// write through it.
func NewStringReference(s string) *Node {
	return &Node{kind: String, stringValue: s, isReference: true}
}

// NewRaw returns a fresh Raw node. Raw payloads are emitted verbatim by
// the serializer, bypassing string escaping entirely.
func NewRaw(s string) *Node {
	return &Node{kind: Raw, stringValue: s}
}

// NewArray returns a fresh, empty Array node.
func NewArray() *Node { return &Node{kind: Array} }

// NewObject returns a fresh, empty Object node.
func NewObject() *Node { return &Node{kind: Object} }

// NewArrayReference returns a fresh Array node flagged IsReference whose
// children are shared with src rather than copied: src keeps ownership,
// and deleting the returned node will not delete or descend into the
// shared children.
func NewArrayReference(src *Node) *Node {
	if src == nil {
		return nil
	}
	return &Node{kind: Array, isReference: true, child: src.child}
}

// NewObjectReference returns a fresh Object node flagged IsReference whose
// children are shared with src rather than copied.
func NewObjectReference(src *Node) *Node {
	if src == nil {
		return nil
	}
	return &Node{kind: Object, isReference: true, child: src.child}
}
