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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// flatten walks a parsed tree into a comparable plain-Go-value shape
// (map[string]interface{} / []interface{} / float64 / string / bool /
// nil) so go-cmp's structural diffing — rather than this package's own
// Compare — is what actually verifies two independently built trees
// are equivalent. This is the genuine exercise of
// github.com/google/go-cmp/cmp/cmpopts.EquateApprox promised in
// DESIGN.md: Compare itself stays hand-rolled, but the test suite holds
// constructed trees to go-cmp's own relative-epsilon numeric tolerance
// independently.
func flatten(n *Node) interface{} {
	switch n.Kind() {
	case Null:
		return nil
	case True:
		return true
	case False:
		return false
	case Number:
		return n.NumberValue()
	case String, Raw:
		return n.StringValue()
	case Array:
		out := []interface{}{}
		for c := n.FirstChild(); c != nil; c = c.Next() {
			out = append(out, flatten(c))
		}
		return out
	case Object:
		out := map[string]interface{}{}
		for c := n.FirstChild(); c != nil; c = c.Next() {
			out[c.Key()] = flatten(c)
		}
		return out
	default:
		return "<invalid>"
	}
}

func TestCompareViaGoCmp(t *testing.T) {
	// 3 and the double immediately adjacent to it differ by exactly one
	// ULP - within Compare's relative-epsilon tolerance, but not bit
	// identical, so this exercises the actual numeric tolerance rather
	// than a coincidental exact match.
	three := 3.0
	nextUp := math.Nextafter(three, math.Inf(1))

	a := NewObject()
	a.SetObjectItem("a", NewNumber(1))
	a.SetObjectItem("b", arrayOf(1, 2, three))
	a.SetObjectItem("c", NewNull())

	b := NewObject()
	b.SetObjectItem("a", NewNumber(1))
	b.SetObjectItem("b", arrayOf(1, 2, nextUp))
	b.SetObjectItem("c", NewNull())

	if diff := cmp.Diff(flatten(a), flatten(b), cmpopts.EquateApprox(relativeEpsilon*4, 0)); diff != "" {
		t.Errorf("flattened trees differ beyond the relative-epsilon tolerance (-a +b):\n%s", diff)
	}
	if !Compare(a, b, true) {
		t.Errorf("Compare(a, b, true) = false, want true (within relative epsilon)")
	}
}

func arrayOf(values ...float64) *Node {
	arr := NewArray()
	for _, v := range values {
		arr.AppendItem(NewNumber(v))
	}
	return arr
}

func TestCompareDetectsRealDifference(t *testing.T) {
	a, _ := Parse([]byte(`{"a":1}`))
	b, _ := Parse([]byte(`{"a":2}`))
	if diff := cmp.Diff(flatten(a), flatten(b)); diff == "" {
		t.Fatalf("expected flattened trees to differ, go-cmp found none")
	}
	if Compare(a, b, true) {
		t.Errorf("Compare(a, b, true) = true, want false")
	}
}

func TestCompareKindMismatch(t *testing.T) {
	if Compare(NewNumber(1), NewString("1"), true) {
		t.Errorf("Compare(Number, String) = true, want false")
	}
}

func TestCompareArraysOrderSensitive(t *testing.T) {
	a, _ := Parse([]byte(`[1,2]`))
	b, _ := Parse([]byte(`[2,1]`))
	if Compare(a, b, true) {
		t.Errorf("Compare([1,2], [2,1]) = true, want false (arrays are order sensitive)")
	}
}

func TestCompareObjectsOrderInsensitive(t *testing.T) {
	a, _ := Parse([]byte(`{"a":1,"b":2}`))
	b, _ := Parse([]byte(`{"b":2,"a":1}`))
	if !Compare(a, b, true) {
		t.Errorf("Compare on objects with reordered keys = false, want true")
	}
}

func TestCompareCaseSensitivity(t *testing.T) {
	a, _ := Parse([]byte(`{"A":1}`))
	b, _ := Parse([]byte(`{"a":1}`))
	if Compare(a, b, true) {
		t.Errorf("Compare(caseSensitive=true) on differently-cased keys = true, want false")
	}
	if !Compare(a, b, false) {
		t.Errorf("Compare(caseSensitive=false) on differently-cased keys = false, want true")
	}
}
