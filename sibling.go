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

// spliceAppend appends item as the new tail child of parent, maintaining
// the tail-in-head invariant documented on Node: parent.child.prev always
// points at the current tail so append stays O(1) without a parent
// back-pointer. Every append path (AppendItem, the SetObjectItem family,
// the reference builders, and the parser) funnels through this one
// chokepoint, mirroring the teacher's single Attach chokepoint in
// parser/parser.go; InsertItem goes through spliceInsertBefore, which
// falls back to this function only when inserting at the end.
func spliceAppend(parent, item *Node) {
	item.next = nil
	if parent.child == nil {
		item.prev = item
		parent.child = item
		return
	}
	tail := parent.child.prev
	tail.next = item
	item.prev = tail
	parent.child.prev = item
}

// spliceInsertBefore splices item immediately before at, which must be a
// current child of parent (or nil to mean "append at the end").
func spliceInsertBefore(parent, at, item *Node) {
	if at == nil {
		spliceAppend(parent, item)
		return
	}
	if at == parent.child {
		item.prev = parent.child.prev // inherit tail pointer
		item.next = at
		at.prev = item
		parent.child = item
		return
	}
	before := at.prev
	before.next = item
	item.prev = before
	item.next = at
	at.prev = item
}

// spliceOut removes item from parent's sibling list and clears its own
// links, repairing the head/tail invariant. item must currently be a
// child of parent.
func spliceOut(parent, item *Node) {
	isHead := item == parent.child
	isTail := item.next == nil
	tail := parent.child.prev

	switch {
	case isHead && isTail:
		parent.child = nil
	case isHead:
		next := item.next
		next.prev = tail
		parent.child = next
	case isTail:
		prev := item.prev
		prev.next = nil
		parent.child.prev = prev
	default:
		prev, next := item.prev, item.next
		prev.next = next
		next.prev = prev
	}
	item.prev, item.next = nil, nil
}

// Size returns the number of children of an Array or Object node.
func (n *Node) Size() int {
	if n == nil {
		return 0
	}
	count := 0
	for c := n.child; c != nil; c = c.next {
		count++
	}
	return count
}

// ChildAt returns the i-th child (0-based) of an Array/Object node, or
// nil if i is out of range. Lookup is an O(n) sibling walk, as in the
// reference implementation.
func (n *Node) ChildAt(i int) *Node {
	if n == nil || i < 0 {
		return nil
	}
	c := n.child
	for ; c != nil && i > 0; i-- {
		c = c.next
	}
	return c
}

// AppendItem appends item as a new child of an Array node. It refuses
// self-insertion (n == item) and nil arguments.
func (n *Node) AppendItem(item *Node) error {
	if n == nil || item == nil {
		return ErrAPI
	}
	if n == item {
		return ErrAPI
	}
	spliceAppend(n, item)
	return nil
}

// SetObjectItem appends item under a copy of key as a new child of an
// Object node, taking ownership of a fresh copy of key.
func (n *Node) SetObjectItem(key string, item *Node) error {
	if n == nil || item == nil {
		return ErrAPI
	}
	if n == item {
		return ErrAPI
	}
	item.key = key
	item.stringIsConst = false
	spliceAppend(n, item)
	return nil
}

// SetObjectItemConst appends item under key as a new child of an Object
// node, borrowing key rather than copying it (StringIsConst is set, so
// deletion will not attempt to release it).
func (n *Node) SetObjectItemConst(key string, item *Node) error {
	if n == nil || item == nil {
		return ErrAPI
	}
	if n == item {
		return ErrAPI
	}
	item.key = key
	item.stringIsConst = true
	spliceAppend(n, item)
	return nil
}

// referenceClone returns a new node of the same kind as item, sharing
// item's payload and children and flagged IsReference, so the clone's
// deletion never mutates or frees what item owns.
func referenceClone(item *Node) *Node {
	return &Node{
		kind:        item.kind,
		isReference: true,
		numberValue: item.numberValue,
		numberInt:   item.numberInt,
		stringValue: item.stringValue,
		child:       item.child,
	}
}

// AppendItemReference appends a reference to item as a new child of an
// Array node: the new child shares item's payload/children but does not
// own them, so item's lifetime stays with the caller exactly as
// spec.md §4.2 describes for the reference-append builder.
func (n *Node) AppendItemReference(item *Node) error {
	if n == nil || item == nil {
		return ErrAPI
	}
	if n == item {
		return ErrAPI
	}
	spliceAppend(n, referenceClone(item))
	return nil
}

// SetObjectItemReference appends a reference to item under a copy of key
// as a new child of an Object node.
func (n *Node) SetObjectItemReference(key string, item *Node) error {
	if n == nil || item == nil {
		return ErrAPI
	}
	if n == item {
		return ErrAPI
	}
	ref := referenceClone(item)
	ref.key = key
	spliceAppend(n, ref)
	return nil
}

// InsertItem splices item before the child currently at index i,
// appending when i equals Size().
func (n *Node) InsertItem(i int, item *Node) error {
	if n == nil || item == nil || i < 0 {
		return ErrAPI
	}
	if n == item {
		return ErrAPI
	}
	at := n.ChildAt(i)
	if at == nil && i != n.Size() {
		return ErrAPI
	}
	spliceInsertBefore(n, at, item)
	return nil
}

// DetachItemViaPointer removes item from n's children, repairing the
// sibling list, and returns item with its own sibling links cleared. It
// returns nil if item is not a child of n.
func (n *Node) DetachItemViaPointer(item *Node) *Node {
	if n == nil || item == nil {
		return nil
	}
	for c := n.child; c != nil; c = c.next {
		if c == item {
			spliceOut(n, item)
			return item
		}
	}
	return nil
}

// DetachItem removes and returns the child at index i, or nil if out of
// range.
func (n *Node) DetachItem(i int) *Node {
	item := n.ChildAt(i)
	if item == nil {
		return nil
	}
	spliceOut(n, item)
	return item
}

// DetachItemFromObject removes and returns the child with the given key
// (case-sensitive), or nil if not found.
func (n *Node) DetachItemFromObject(key string) *Node {
	item := n.GetObjectItem(key)
	if item == nil {
		return nil
	}
	spliceOut(n, item)
	return item
}

// release drops n's internal slice/pointer fields so the garbage
// collector can reclaim what n owns, without descending into or mutating
// anything n merely references. It walks the child list iteratively
// (rather than recursing node-by-node) per spec.md §9's preference for an
// explicit worklist over recursive delete, even though Go's bounded input
// depth would make straightforward recursion safe too.
func release(root *Node) {
	if root == nil {
		return
	}
	stack := []*Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.isReference {
			// Do not descend into or mutate borrowed children: the
			// caller still owns them.
			n.child = nil
			n.prev, n.next = nil, nil
			continue
		}
		for c := n.child; c != nil; {
			next := c.next
			stack = append(stack, c)
			c = next
		}
		n.child = nil
		n.prev, n.next = nil, nil
		n.stringValue = ""
		if !n.stringIsConst {
			n.key = ""
		}
	}
}

// DeleteItem detaches and releases the child at index i.
func (n *Node) DeleteItem(i int) {
	item := n.DetachItem(i)
	release(item)
}

// DeleteItemFromObject detaches and releases the child with the given
// key (case-sensitive).
func (n *Node) DeleteItemFromObject(key string) {
	item := n.DetachItemFromObject(key)
	release(item)
}

// DeleteItemViaPointer detaches and releases item from n's children.
func (n *Node) DeleteItemViaPointer(item *Node) {
	detached := n.DetachItemViaPointer(item)
	release(detached)
}

// replaceAt splices repl into old's position and releases old. old must
// currently be a child of parent.
func replaceAt(parent, old, repl *Node) {
	if old == repl {
		return
	}
	isHead := old == parent.child
	isTail := old.next == nil

	switch {
	case isHead && isTail:
		// Sole child: repl becomes both head and tail.
		parent.child = repl
		repl.prev = repl
		repl.next = nil
	case isHead:
		tail := parent.child.prev
		next := old.next
		parent.child = repl
		repl.prev = tail
		repl.next = next
		next.prev = repl
	case isTail:
		prev := old.prev
		prev.next = repl
		repl.prev = prev
		repl.next = nil
		parent.child.prev = repl
	default:
		prev, next := old.prev, old.next
		prev.next = repl
		next.prev = repl
		repl.prev = prev
		repl.next = next
	}
	old.prev, old.next = nil, nil
	repl.key = old.key
	repl.stringIsConst = old.stringIsConst
	release(old)
}

// ReplaceItem substitutes the child at index i with repl, releasing the
// old child. Replacing a node with itself (identity) is a no-op success.
func (n *Node) ReplaceItem(i int, repl *Node) error {
	if n == nil || repl == nil {
		return ErrAPI
	}
	old := n.ChildAt(i)
	if old == nil {
		return ErrAPI
	}
	replaceAt(n, old, repl)
	return nil
}

// ReplaceItemInObject substitutes the child with the given key with repl,
// copying a fresh key string from the argument into the replacement.
func (n *Node) ReplaceItemInObject(key string, repl *Node) error {
	if n == nil || repl == nil {
		return ErrAPI
	}
	old := n.GetObjectItem(key)
	if old == nil {
		return ErrAPI
	}
	if old == repl {
		return nil
	}
	replaceAt(n, old, repl)
	repl.key = key
	repl.stringIsConst = false
	return nil
}

// ReplaceItemViaPointer substitutes old, which must be a child of n, with
// repl. Replacing a node with itself is a no-op success.
func (n *Node) ReplaceItemViaPointer(old, repl *Node) error {
	if n == nil || old == nil || repl == nil {
		return ErrAPI
	}
	if old == repl {
		return nil
	}
	found := false
	for c := n.child; c != nil; c = c.next {
		if c == old {
			found = true
			break
		}
	}
	if !found {
		return ErrAPI
	}
	replaceAt(n, old, repl)
	return nil
}
