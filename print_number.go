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
	"strconv"
)

// printNumber renders n's numeric payload per spec.md §4.4: NaN and
// +/-Inf (never produced by Parse, but reachable via NewNumber) print as
// "null", since JSON has no token for either; an exact-integer value
// within the saturated int32 mirror's round-trip range takes the "%d"
// fast path; everything else is formatted at 15 significant digits and,
// only if that shortened form does not parse back to the exact same
// float64, re-formatted at the full 17 significant digits that are
// always sufficient to round-trip a double.
func printNumber(b *printBuffer, n *Node) error {
	d := n.numberValue
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return b.writeString("null")
	}

	if d == math.Trunc(d) && float64(n.numberInt) == d && d > math.MinInt32 && d < math.MaxInt32 {
		return b.writeString(strconv.FormatInt(int64(n.numberInt), 10))
	}

	s := strconv.FormatFloat(d, 'g', 15, 64)
	if v, err := strconv.ParseFloat(s, 64); err != nil || v != d {
		s = strconv.FormatFloat(d, 'g', 17, 64)
	}
	return b.writeString(s)
}
