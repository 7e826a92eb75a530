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

// ParseOption configures a single call to Parse. The functional-options
// shape mirrors the teacher's parser2.ParserOptions struct
// (IgnoreUnconsumedTail, SkipEmptyNodes) translated to idiomatic
// variadic options instead of a struct literal, since this package's
// Parse is a free function rather than a method on a pre-built grammar.
type ParseOption func(*parseConfig)

type parseConfig struct {
	strictTerminated bool
	maxDepth         int
	allocator        Allocator
}

func newParseConfig(opts []ParseOption) *parseConfig {
	cfg := &parseConfig{
		maxDepth:  MaxDepth,
		allocator: currentAllocator(),
	}
	for _, o := range opts {
		o(cfg)
	}
	return cfg
}

// WithStrictTermination requires that, after the top-level value, only
// whitespace remains in the input. Without it, trailing bytes after a
// complete value are silently ignored, matching cJSON_Parse's default
// (non-"WithOpts") behavior.
func WithStrictTermination() ParseOption {
	return func(c *parseConfig) { c.strictTerminated = true }
}

// WithMaxDepth overrides the nesting depth limit for a single Parse call.
func WithMaxDepth(depth int) ParseOption {
	return func(c *parseConfig) { c.maxDepth = depth }
}

// WithParseAllocator overrides the Allocator used by a single Parse call,
// instead of capturing the process-wide default.
func WithParseAllocator(a Allocator) ParseOption {
	return func(c *parseConfig) {
		if a != nil {
			c.allocator = a
		}
	}
}

// PrintOption configures a single call to Print.
type PrintOption func(*printConfig)

type printConfig struct {
	format    bool
	allocator Allocator
	hint      int
	fixedBuf  []byte
	noAlloc   bool
}

func newPrintConfig(opts []PrintOption) *printConfig {
	cfg := &printConfig{
		allocator: currentAllocator(),
		hint:      256,
	}
	for _, o := range opts {
		o(cfg)
	}
	return cfg
}

// WithPretty enables indented ("formatted") output: a tab per nesting
// level, ":\t" after object keys, newlines between elements. Without it,
// output has no inserted whitespace.
func WithPretty() PrintOption {
	return func(c *printConfig) { c.format = true }
}

// WithPrintAllocator overrides the Allocator used by a single Print call.
func WithPrintAllocator(a Allocator) PrintOption {
	return func(c *printConfig) {
		if a != nil {
			c.allocator = a
		}
	}
}

// WithCapacityHint seeds the growable print buffer at n bytes instead of
// the default 256, to reduce reallocation for documents of roughly known
// size. Growth beyond n is still permitted, same as spec.md §4.4's
// "hinted" print mode.
func WithCapacityHint(n int) PrintOption {
	return func(c *printConfig) {
		if n > 0 {
			c.hint = n
		}
	}
}

// WithFixedBuffer prints into buf without ever growing it: if the
// document would not fit, Print returns an error and buf holds a valid
// truncation prefix. This is spec.md §4.4's "fixed" print mode.
func WithFixedBuffer(buf []byte) PrintOption {
	return func(c *printConfig) {
		c.fixedBuf = buf
		c.noAlloc = true
	}
}
