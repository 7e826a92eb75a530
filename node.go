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

import "math"

// Node is one element of a JSON tree. The zero Node is Invalid and usable
// only as a destination for further mutation, the same way a cJSON_New*
// allocation starts from a zeroed struct.
//
// Children of an Array or Object form a doubly linked sibling list with
// one twist: the list is not circular in the forward direction, but
// child.prev points to the *last* sibling so that append is O(1) without a
// parent back-pointer (see spec.md §3 and §9). For every non-head sibling
// s, s.prev.next == s; for every non-tail sibling s, s.next.prev == s;
// head.prev == tail; tail.next == nil.
type Node struct {
	kind Kind

	// isReference marks a node that borrows its payload/children from
	// elsewhere; deletion must not recurse into or mutate what it
	// borrows.
	isReference bool
	// stringIsConst marks a node whose key string is borrowed and must
	// not be mutated or pooled back to an Allocator.
	stringIsConst bool

	numberValue float64
	numberInt   int32

	stringValue string
	key         string

	child      *Node
	prev, next *Node
}

// Kind returns the node's discriminator.
func (n *Node) Kind() Kind {
	if n == nil {
		return Invalid
	}
	return n.kind
}

func (n *Node) IsInvalid() bool { return n.Kind() == Invalid }
func (n *Node) IsFalse() bool   { return n.Kind() == False }
func (n *Node) IsTrue() bool    { return n.Kind() == True }
func (n *Node) IsBool() bool    { return n.Kind() == False || n.Kind() == True }
func (n *Node) IsNull() bool    { return n.Kind() == Null }
func (n *Node) IsNumber() bool  { return n.Kind() == Number }
func (n *Node) IsString() bool  { return n.Kind() == String }
func (n *Node) IsArray() bool   { return n.Kind() == Array }
func (n *Node) IsObject() bool  { return n.Kind() == Object }
func (n *Node) IsRaw() bool     { return n.Kind() == Raw }

// IsReference reports whether n borrows its payload/children rather than
// owning them.
func (n *Node) IsReference() bool {
	if n == nil {
		return false
	}
	return n.isReference
}

// StringIsConst reports whether n's key string is borrowed.
func (n *Node) StringIsConst() bool {
	if n == nil {
		return false
	}
	return n.stringIsConst
}

// Key returns the node's object key, or "" if n is not a child of an
// Object.
func (n *Node) Key() string {
	if n == nil {
		return ""
	}
	return n.key
}

// BoolValue returns the node's boolean value. It is only meaningful when
// IsBool() is true.
func (n *Node) BoolValue() bool {
	return n.Kind() == True
}

// NumberValue returns the node's double-precision value. It is only
// meaningful when IsNumber() is true.
func (n *Node) NumberValue() float64 {
	if n == nil {
		return 0
	}
	return n.numberValue
}

// IntValue returns the saturated int32 mirror of NumberValue. Per
// spec.md §9, this mirror is a convenience and must not be trusted for
// exactness; callers needing integer fidelity must inspect NumberValue.
func (n *Node) IntValue() int32 {
	if n == nil {
		return 0
	}
	return n.numberInt
}

// StringValue returns the node's string payload. It is only meaningful
// when IsString() or IsRaw() is true.
func (n *Node) StringValue() string {
	if n == nil {
		return ""
	}
	return n.stringValue
}

// Next returns the following sibling, or nil if n is the last child of
// its parent.
func (n *Node) Next() *Node {
	if n == nil {
		return nil
	}
	return n.next
}

// Prev returns the preceding sibling, or nil if n is the first child of
// its parent. Unlike the raw prev link (which wraps to the tail at the
// head of the list to support O(1) append), Prev never returns the tail
// when n is the head.
func (n *Node) Prev() *Node {
	if n == nil || n.prev == nil {
		return nil
	}
	// n.prev wraps to the tail when n is the head; detect that case by
	// checking whether n.prev.next is nil (tail) while n is not the
	// node following n.prev in the forward direction.
	if n.prev.next != n {
		return nil
	}
	return n.prev
}

// FirstChild returns the first child of an Array/Object node, or nil.
func (n *Node) FirstChild() *Node {
	if n == nil {
		return nil
	}
	return n.child
}

// saturateInt32 clamps a double to the int32 range per spec.md §3: values
// >= math.MaxInt32 clamp high, values <= math.MinInt32 clamp low,
// otherwise truncate toward zero.
func saturateInt32(d float64) int32 {
	if math.IsNaN(d) {
		return 0
	}
	if d >= math.MaxInt32 {
		return math.MaxInt32
	}
	if d <= math.MinInt32 {
		return math.MinInt32
	}
	return int32(d)
}

// setNumber keeps the double and its saturated int32 mirror in sync, the
// single chokepoint every constructor and mutator funnels through.
func (n *Node) setNumber(d float64) {
	n.numberValue = d
	n.numberInt = saturateInt32(d)
}
