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
	"errors"
	"math"
	"testing"
)

func TestPrintRoundTrip(t *testing.T) {
	tests := []string{
		`null`, `true`, `false`, `0`, `42`, `-17`, `3.14159`,
		`"hello"`, `"a\"b\\c"`, `[]`, `{}`, `[1,2,3]`,
		`{"a":1,"b":[true,false,null]}`,
		`{"a":{"b":{"c":[1,2,3]}}}`,
	}
	for _, in := range tests {
		n, err := Parse([]byte(in))
		if err != nil {
			t.Fatalf("Parse(%q) returned error %v, want success", in, err)
		}
		out, err := Print(n)
		if err != nil {
			t.Fatalf("Print after parsing %q returned error %v, want success", in, err)
		}
		if string(out) != in {
			t.Errorf("Print(Parse(%q)) = %q, want %q", in, out, in)
		}
	}
}

func TestPrintIdempotent(t *testing.T) {
	in := `{"a":1,"b":[1,2,3],"c":{"d":"e"}}`
	n1, err := Parse([]byte(in))
	if err != nil {
		t.Fatalf("Parse returned error %v, want success", err)
	}
	out1, err := Print(n1)
	if err != nil {
		t.Fatalf("Print returned error %v, want success", err)
	}
	n2, err := Parse(out1)
	if err != nil {
		t.Fatalf("re-Parse returned error %v, want success", err)
	}
	out2, err := Print(n2)
	if err != nil {
		t.Fatalf("re-Print returned error %v, want success", err)
	}
	if string(out1) != string(out2) {
		t.Errorf("Print is not idempotent: %q != %q", out1, out2)
	}
}

func TestPrintPretty(t *testing.T) {
	n, err := Parse([]byte(`{"a":[1,2]}`))
	if err != nil {
		t.Fatalf("Parse returned error %v, want success", err)
	}
	out, err := Print(n, WithPretty())
	if err != nil {
		t.Fatalf("Print returned error %v, want success", err)
	}
	want := "{\n\t\"a\":\t[\n\t\t1,\n\t\t2\n\t]\n}"
	if string(out) != want {
		t.Errorf("Print with WithPretty() = %q, want %q", out, want)
	}
}

func TestPrintNumberRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1, -1, 0.1, 1.0 / 3.0, 1e300, 1e-300, 123456789.123456} {
		n := NewNumber(v)
		out, err := Print(n)
		if err != nil {
			t.Fatalf("Print(%v) returned error %v, want success", v, err)
		}
		got, err := Parse(out)
		if err != nil {
			t.Fatalf("re-Parse(%q) returned error %v, want success", out, err)
		}
		if got.NumberValue() != v {
			t.Errorf("round trip of %v through %q produced %v, want exact match", v, out, got.NumberValue())
		}
	}
}

func TestPrintNaNInfToNull(t *testing.T) {
	for _, n := range []*Node{NewNumber(posInf()), NewNumber(negInf()), NewNumber(nan())} {
		out, err := Print(n)
		if err != nil {
			t.Fatalf("Print returned error %v, want success", err)
		}
		if string(out) != "null" {
			t.Errorf("Print(non-finite number) = %q, want \"null\"", out)
		}
	}
}

func TestPrintStringEscaping(t *testing.T) {
	n := NewString("a\"b\\c\nd\te\x01f")
	out, err := Print(n)
	if err != nil {
		t.Fatalf("Print returned error %v, want success", err)
	}
	want := "\"a\\\"b\\\\c\\nd\\te\\u0001f\""
	if string(out) != want {
		t.Errorf("Print(escaped string) = %q, want %q", out, want)
	}
}

func TestPrintFixedBufferTooSmall(t *testing.T) {
	buf := make([]byte, 2)
	_, err := Print(NewString("a long string"), WithFixedBuffer(buf))
	if !errors.Is(err, ErrBounds) {
		t.Errorf("Print with an undersized fixed buffer returned %v, want ErrBounds", err)
	}
}

func TestPrintFixedBufferSufficient(t *testing.T) {
	buf := make([]byte, 64)
	out, err := Print(NewBool(true), WithFixedBuffer(buf))
	if err != nil {
		t.Fatalf("Print returned error %v, want success", err)
	}
	if string(out) != "true" {
		t.Errorf("Print = %q, want \"true\"", out)
	}
}

func TestPrintCapacityHintDoesNotTruncate(t *testing.T) {
	n, err := Parse([]byte(`[1,2,3,4,5,6,7,8,9,10]`))
	if err != nil {
		t.Fatalf("Parse returned error %v, want success", err)
	}
	out, err := Print(n, WithCapacityHint(1))
	if err != nil {
		t.Fatalf("Print with an undersized hint returned error %v, want success (hint must not cap growth)", err)
	}
	if string(out) != `[1,2,3,4,5,6,7,8,9,10]` {
		t.Errorf("Print = %q, want %q", out, `[1,2,3,4,5,6,7,8,9,10]`)
	}
}

func TestPrintInvalidNode(t *testing.T) {
	if _, err := Print(&Node{kind: Invalid}); !errors.Is(err, ErrAPI) {
		t.Errorf("Print(Invalid node) returned %v, want ErrAPI", err)
	}
}

func posInf() float64 { return math.Inf(1) }
func negInf() float64 { return math.Inf(-1) }
func nan() float64    { return posInf() - posInf() }
