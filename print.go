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

import "fmt"

// maxPrintBuffer bounds the growable print buffer at the same 31-bit
// ceiling spec.md §4.4 calls out (a cJSON print buffer's length field is
// a platform size_t but the growth formula itself must never be allowed
// to overflow a signed 32-bit accumulator on the smallest supported
// platform); it is a correctness backstop, not an expected document
// size.
const maxPrintBuffer = (1 << 31) - 1

// printBuffer is a manually managed growable byte buffer, used instead
// of bytes.Buffer so the exact doubling discipline spec.md §4.4
// prescribes (capacity becomes max(needed, needed*2), never silently
// delegated to whatever growth factor a generic library buffer
// chooses) is directly visible and testable. This mirrors the
// teacher's own habit of hand-rolling a small buffer type (see
// tree/example/serialize.go) rather than reaching for a stdlib
// general-purpose type when the growth policy itself is part of the
// contract being implemented.
type printBuffer struct {
	buf     []byte
	offset  int
	alloc   Allocator
	fixed   bool // true: never grow, return ErrBounds instead
	noAlloc bool
}

func newPrintBuffer(cfg *printConfig) (*printBuffer, error) {
	if cfg.fixedBuf != nil {
		return &printBuffer{buf: cfg.fixedBuf, fixed: true, noAlloc: true, alloc: cfg.allocator}, nil
	}
	hint := cfg.hint
	if hint <= 0 {
		hint = 256
	}
	buf := cfg.allocator.Alloc(hint)
	if buf == nil {
		return nil, fmt.Errorf("%w: allocator returned nil for print buffer of size %d", ErrAlloc, hint)
	}
	return &printBuffer{buf: buf, alloc: cfg.allocator}, nil
}

// ensure guarantees that at least n more bytes can be written starting
// at b.offset, growing the backing array via b.alloc.Realloc when
// necessary. Per spec.md §4.4, the new capacity is max(needed,
// needed*2) clamped to maxPrintBuffer; a fixed buffer that would need
// to grow instead fails with ErrBounds, leaving the already-written
// prefix intact and valid.
func (b *printBuffer) ensure(n int) error {
	needed := b.offset + n
	if needed <= len(b.buf) {
		return nil
	}
	if b.fixed {
		return fmt.Errorf("%w: fixed print buffer too small", ErrBounds)
	}
	newCap := needed
	if doubled := needed * 2; doubled > newCap && doubled > 0 {
		newCap = doubled
	}
	if newCap > maxPrintBuffer || newCap < 0 {
		newCap = maxPrintBuffer
	}
	if newCap < needed {
		return fmt.Errorf("%w: document exceeds maximum print buffer size", ErrBounds)
	}
	grown := b.alloc.Realloc(b.buf, newCap)
	if grown == nil {
		return fmt.Errorf("%w: allocator returned nil reallocating to size %d", ErrAlloc, newCap)
	}
	b.buf = grown
	return nil
}

func (b *printBuffer) writeByte(c byte) error {
	if err := b.ensure(1); err != nil {
		return err
	}
	b.buf[b.offset] = c
	b.offset++
	return nil
}

func (b *printBuffer) writeString(s string) error {
	if err := b.ensure(len(s)); err != nil {
		return err
	}
	copy(b.buf[b.offset:], s)
	b.offset += len(s)
	return nil
}

func (b *printBuffer) writeIndent(depth int) error {
	if err := b.ensure(depth); err != nil {
		return err
	}
	for i := 0; i < depth; i++ {
		b.buf[b.offset+i] = '\t'
	}
	b.offset += depth
	return nil
}

// Print renders root as JSON text. The default mode grows an internally
// allocated buffer as needed (spec.md §4.4's "managed" mode);
// WithCapacityHint seeds that growth at a caller-estimated size
// ("hinted" mode); WithFixedBuffer prints into a caller-supplied slice
// that is never grown, returning ErrBounds rather than overflowing it
// ("fixed, no further allocation" mode).
func Print(root *Node, opts ...PrintOption) ([]byte, error) {
	cfg := newPrintConfig(opts)
	b, err := newPrintBuffer(cfg)
	if err != nil {
		return nil, err
	}
	if err := printValue(b, root, 0, cfg.format); err != nil {
		return nil, err
	}
	return b.buf[:b.offset], nil
}

func printValue(b *printBuffer, n *Node, depth int, pretty bool) error {
	if n == nil {
		return b.writeString("null")
	}
	switch n.Kind() {
	case Invalid:
		return fmt.Errorf("%w: cannot print an invalid node", ErrAPI)
	case Null:
		return b.writeString("null")
	case True:
		return b.writeString("true")
	case False:
		return b.writeString("false")
	case Number:
		return printNumber(b, n)
	case String:
		return printQuotedString(b, n.stringValue)
	case Raw:
		return b.writeString(n.stringValue)
	case Array:
		return printArray(b, n, depth, pretty)
	case Object:
		return printObject(b, n, depth, pretty)
	default:
		return fmt.Errorf("%w: unknown node kind", ErrAPI)
	}
}

func printArray(b *printBuffer, n *Node, depth int, pretty bool) error {
	if err := b.writeByte('['); err != nil {
		return err
	}
	if n.child == nil {
		return b.writeByte(']')
	}
	child := n.child
	for child != nil {
		if pretty {
			if err := b.writeByte('\n'); err != nil {
				return err
			}
			if err := b.writeIndent(depth + 1); err != nil {
				return err
			}
		}
		if err := printValue(b, child, depth+1, pretty); err != nil {
			return err
		}
		if child.next != nil {
			if err := b.writeByte(','); err != nil {
				return err
			}
		}
		child = child.next
	}
	if pretty {
		if err := b.writeByte('\n'); err != nil {
			return err
		}
		if err := b.writeIndent(depth); err != nil {
			return err
		}
	}
	return b.writeByte(']')
}

func printObject(b *printBuffer, n *Node, depth int, pretty bool) error {
	if err := b.writeByte('{'); err != nil {
		return err
	}
	if n.child == nil {
		return b.writeByte('}')
	}
	child := n.child
	for child != nil {
		if pretty {
			if err := b.writeByte('\n'); err != nil {
				return err
			}
			if err := b.writeIndent(depth + 1); err != nil {
				return err
			}
		}
		if err := printQuotedString(b, child.key); err != nil {
			return err
		}
		if err := b.writeByte(':'); err != nil {
			return err
		}
		if pretty {
			if err := b.writeByte('\t'); err != nil {
				return err
			}
		}
		if err := printValue(b, child, depth+1, pretty); err != nil {
			return err
		}
		if child.next != nil {
			if err := b.writeByte(','); err != nil {
				return err
			}
		}
		child = child.next
	}
	if pretty {
		if err := b.writeByte('\n'); err != nil {
			return err
		}
		if err := b.writeIndent(depth); err != nil {
			return err
		}
	}
	return b.writeByte('}')
}
