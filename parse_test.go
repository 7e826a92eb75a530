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
	"strings"
	"testing"
)

func TestParseLiterals(t *testing.T) {
	tests := []struct {
		name string
		in   string
		kind Kind
	}{
		{"null", "null", Null},
		{"true", "true", True},
		{"false", "false", False},
		{"whitespace padded", "  \t\n null  ", Null},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Parse([]byte(tt.in))
			if err != nil {
				t.Fatalf("Parse(%q) returned error %v, want success", tt.in, err)
			}
			if n.Kind() != tt.kind {
				t.Errorf("Parse(%q).Kind() = %s, want %s", tt.in, n.Kind(), tt.kind)
			}
		})
	}
}

func TestParseNumbers(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"0", 0},
		{"-0", 0},
		{"42", 42},
		{"-17", -17},
		{"3.14159", 3.14159},
		{"1e10", 1e10},
		{"1E+10", 1e10},
		{"-2.5e-3", -2.5e-3},
	}
	for _, tt := range tests {
		n, err := Parse([]byte(tt.in))
		if err != nil {
			t.Errorf("Parse(%q) returned error %v, want success", tt.in, err)
			continue
		}
		if !n.IsNumber() {
			t.Errorf("Parse(%q).Kind() = %s, want Number", tt.in, n.Kind())
			continue
		}
		if n.NumberValue() != tt.want {
			t.Errorf("Parse(%q).NumberValue() = %v, want %v", tt.in, n.NumberValue(), tt.want)
		}
	}
}

func TestParseStrings(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `"hello"`, "hello"},
		{"escaped quote", `"a\"b"`, `a"b`},
		{"escaped backslash", `"a\\b"`, `a\b`},
		{"escaped solidus", `"a\/b"`, "a/b"},
		{"control escapes", `"\b\f\n\r\t"`, "\b\f\n\r\t"},
		{"unicode escape", "\"\\u00e9\"", "é"},
		{"surrogate pair", "\"\\uD83D\\uDE00\"", "\U0001F600"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Parse([]byte(tt.in))
			if err != nil {
				t.Fatalf("Parse(%q) returned error %v, want success", tt.in, err)
			}
			if got := n.StringValue(); got != tt.want {
				t.Errorf("Parse(%q).StringValue() = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseArray(t *testing.T) {
	n, err := Parse([]byte(`[1, 2, 3]`))
	if err != nil {
		t.Fatalf("Parse returned error %v, want success", err)
	}
	if !n.IsArray() {
		t.Fatalf("Kind() = %s, want Array", n.Kind())
	}
	if n.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", n.Size())
	}
	for i, want := range []float64{1, 2, 3} {
		if got := n.ChildAt(i).NumberValue(); got != want {
			t.Errorf("ChildAt(%d).NumberValue() = %v, want %v", i, got, want)
		}
	}
}

func TestParseEmptyContainers(t *testing.T) {
	for _, tt := range []struct {
		in   string
		kind Kind
	}{
		{"[]", Array},
		{"{}", Object},
		{"[ ]", Array},
		{"{ }", Object},
	} {
		n, err := Parse([]byte(tt.in))
		if err != nil {
			t.Errorf("Parse(%q) returned error %v, want success", tt.in, err)
			continue
		}
		if n.Kind() != tt.kind || n.Size() != 0 {
			t.Errorf("Parse(%q) = kind %s size %d, want %s size 0", tt.in, n.Kind(), n.Size(), tt.kind)
		}
	}
}

func TestParseObject(t *testing.T) {
	n, err := Parse([]byte(`{"a": 1, "b": [true, false, null], "c": {"d": "e"}}`))
	if err != nil {
		t.Fatalf("Parse returned error %v, want success", err)
	}
	if !n.IsObject() {
		t.Fatalf("Kind() = %s, want Object", n.Kind())
	}
	a := n.GetObjectItem("a")
	if a == nil || a.NumberValue() != 1 {
		t.Errorf(`GetObjectItem("a") = %v, want Number 1`, a)
	}
	b := n.GetObjectItem("b")
	if b == nil || !b.IsArray() || b.Size() != 3 {
		t.Errorf(`GetObjectItem("b") = %v, want Array of size 3`, b)
	}
	c := n.GetObjectItem("c")
	if c == nil || !c.IsObject() {
		t.Fatalf(`GetObjectItem("c") = %v, want Object`, c)
	}
	d := c.GetObjectItem("d")
	if d == nil || d.StringValue() != "e" {
		t.Errorf(`c.GetObjectItem("d") = %v, want String "e"`, d)
	}
}

func TestParseDuplicateKeysPreserved(t *testing.T) {
	n, err := Parse([]byte(`{"a": 1, "a": 2}`))
	if err != nil {
		t.Fatalf("Parse returned error %v, want success", err)
	}
	if n.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", n.Size())
	}
	if got := n.GetObjectItem("a").NumberValue(); got != 1 {
		t.Errorf(`GetObjectItem("a") = %v, want the first match (1)`, got)
	}
}

func TestParseBOM(t *testing.T) {
	n, err := Parse([]byte("\xEF\xBB\xBFnull"))
	if err != nil {
		t.Fatalf("Parse returned error %v, want success", err)
	}
	if !n.IsNull() {
		t.Errorf("Kind() = %s, want Null", n.Kind())
	}
}

func TestParseTrailingContent(t *testing.T) {
	if _, err := Parse([]byte("null garbage")); err != nil {
		t.Errorf("Parse without WithStrictTermination returned error %v, want success (trailing bytes ignored)", err)
	}
	_, err := Parse([]byte("null garbage"), WithStrictTermination())
	if err == nil {
		t.Fatalf("Parse with WithStrictTermination succeeded, want error")
	}
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Errorf("error is not a *SyntaxError: %v", err)
	}
}

func TestParseTrailingComma(t *testing.T) {
	for _, in := range []string{`[1,2,]`, `{"a":1,}`} {
		if _, err := Parse([]byte(in)); err == nil {
			t.Errorf("Parse(%q) succeeded, want trailing-comma error", in)
		}
	}
}

func TestParseSyntaxErrorOffset(t *testing.T) {
	_, err := Parse([]byte(`{"a": }`))
	if err == nil {
		t.Fatalf("Parse returned success, want error")
	}
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("error is not a *SyntaxError: %v", err)
	}
	if !errors.Is(err, ErrSyntax) {
		t.Errorf("errors.Is(err, ErrSyntax) = false, want true")
	}
	if se.Offset != strings.Index(`{"a": }`, "}") {
		t.Errorf("SyntaxError.Offset = %d, want %d", se.Offset, strings.Index(`{"a": }`, "}"))
	}
}

func TestParseDepthLimit(t *testing.T) {
	in := strings.Repeat("[", 5) + strings.Repeat("]", 5)
	if _, err := Parse([]byte(in), WithMaxDepth(3)); !errors.Is(err, ErrDepth) {
		t.Errorf("Parse with WithMaxDepth(3) on 5-deep input returned %v, want ErrDepth", err)
	}
	if _, err := Parse([]byte(in), WithMaxDepth(10)); err != nil {
		t.Errorf("Parse with WithMaxDepth(10) on 5-deep input returned %v, want success", err)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{``, `nul`, `{`, `[1, 2`, `"unterminated`, `{"a" 1}`, `[1 2]`} {
		if _, err := Parse([]byte(in)); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", in)
		}
	}
}

func TestLastErrorShadowsFailedParse(t *testing.T) {
	if _, err := Parse([]byte(`nul`)); err == nil {
		t.Fatal("Parse succeeded, want error")
	}
	if LastError() == nil {
		t.Errorf("LastError() = nil after a failed Parse, want non-nil")
	}
	if _, err := Parse([]byte(`null`)); err != nil {
		t.Fatalf("Parse returned error %v, want success", err)
	}
}
