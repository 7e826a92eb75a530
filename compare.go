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

// relativeEpsilon is the double-precision machine epsilon used as the
// fractional tolerance for Number comparison, matching spec.md §4.2's
// "epsilon is double-precision machine epsilon". The test suite (see
// compare_test.go) also derives its
// github.com/google/go-cmp/cmp/cmpopts.EquateApprox tolerance from it
// (four times this value, applied by go-cmp's own formula), so that
// tolerance is looser than, not identical to, the one Compare uses.
var relativeEpsilon = math.Nextafter(1, 2) - 1

// Compare reports whether a and b are structurally equal: kinds must
// match, numbers compare with a relative-epsilon test (|a-b| <=
// epsilon*max(|a|,|b|)), strings and Raw payloads compare bytewise,
// arrays compare pairwise in order and must have equal length, and
// objects compare by lookup in both directions (duplicate keys and all),
// which is O(n^2) and accepted per spec.md §4.2.
//
// caseSensitive selects whether object key lookup during comparison uses
// GetObjectItem (exact) or GetObjectItemCaseInsensitive (ASCII-only
// fold).
func Compare(a, b *Node, caseSensitive bool) bool {
	return compareNode(a, b, caseSensitive)
}

func compareNode(a, b *Node, caseSensitive bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case Invalid, Null, True, False:
		return true
	case Number:
		return numbersApproxEqual(a.numberValue, b.numberValue)
	case String, Raw:
		return a.stringValue == b.stringValue
	case Array:
		ac, bc := a.child, b.child
		for ac != nil && bc != nil {
			if !compareNode(ac, bc, caseSensitive) {
				return false
			}
			ac, bc = ac.next, bc.next
		}
		return ac == nil && bc == nil
	case Object:
		if a.Size() != b.Size() {
			return false
		}
		for c := a.child; c != nil; c = c.next {
			other := lookupForCompare(b, c.key, caseSensitive)
			if other == nil || !compareNode(c, other, caseSensitive) {
				return false
			}
		}
		for c := b.child; c != nil; c = c.next {
			if lookupForCompare(a, c.key, caseSensitive) == nil {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func lookupForCompare(obj *Node, key string, caseSensitive bool) *Node {
	if caseSensitive {
		return obj.GetObjectItem(key)
	}
	return obj.GetObjectItemCaseInsensitive(key)
}

func numbersApproxEqual(a, b float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	maxAbs := math.Max(math.Abs(a), math.Abs(b))
	return diff <= relativeEpsilon*maxAbs
}
