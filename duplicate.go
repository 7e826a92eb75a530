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

// MaxDepth is the compile-time nesting depth cap applied during both
// parsing and duplication, matching spec.md §3's "Depth limit" and
// preventing stack exhaustion on adversarial input. Chosen to match the
// reference implementation's default (see _examples/other_examples's
// mcvoid-json parser, which hard-codes the same figure: "const depth =
// 1024").
const MaxDepth = 1024

// Duplicate returns a copy of n. If recurse is false, only n itself is
// copied (children, if any, are shared with the original - a shallow
// copy). If recurse is true, the whole subtree is copied, and the copy
// fails with ErrDepth once any node lies more than MaxDepth levels below
// n (n itself is level 0). Unlike Parse, which counts only nested arrays
// and objects, this counts every node level, scalars included.
//
// Every duplicate, shallow or deep, clears the IsReference flag: the copy
// always owns its own payload, per spec.md §4.2.
func (n *Node) Duplicate(recurse bool) (*Node, error) {
	if n == nil {
		return nil, nil
	}
	return duplicate(n, recurse, 0)
}

func duplicate(n *Node, recurse bool, depth int) (*Node, error) {
	if depth > MaxDepth {
		return nil, ErrDepth
	}
	cp := &Node{
		kind:          n.kind,
		numberValue:   n.numberValue,
		numberInt:     n.numberInt,
		stringValue:   n.stringValue,
		key:           n.key,
		stringIsConst: n.stringIsConst,
		// A duplicate always owns its payload, whether or not the
		// source was a reference.
		isReference: false,
	}
	if !recurse {
		// A shallow copy shares the child list with the source rather
		// than copying it, matching the reference implementation's
		// cJSON_Duplicate(item, false): deleting both the copy and the
		// original will release the shared children twice. Callers
		// that need an independent shallow frame should reparent the
		// children explicitly instead of relying on this.
		cp.child = n.child
		return cp, nil
	}
	for c := n.child; c != nil; c = c.next {
		childCopy, err := duplicate(c, true, depth+1)
		if err != nil {
			return nil, err
		}
		spliceAppend(cp, childCopy)
	}
	return cp, nil
}
