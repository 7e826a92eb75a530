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

import "sync"

// Allocator is the pluggable allocate/free/reallocate triple that every
// Parser and Printer funnels its heap traffic through. Go does not have a
// manual free, so Free is mostly a hook for pooling allocators; the
// default Allocator's Free is a no-op and its Realloc is a plain
// allocate-copy. An Allocator built by NewAllocator without a realloc
// hook emulates Realloc through its own Alloc and Free instead.
type Allocator interface {
	// Alloc returns a buffer of length n. It may return nil to signal
	// allocation failure.
	Alloc(n int) []byte
	// Free releases a buffer previously returned by Alloc or Realloc.
	// Implementations that do not pool memory may leave this a no-op.
	Free(b []byte)
	// Realloc returns a buffer of length n holding the first
	// min(n, len(b)) bytes of b. It may return nil to signal allocation
	// failure, in which case b must remain valid and untouched.
	Realloc(b []byte, n int) []byte
}

type defaultAllocator struct{}

func (defaultAllocator) Alloc(n int) []byte {
	return make([]byte, n)
}

func (defaultAllocator) Free([]byte) {}

func (defaultAllocator) Realloc(b []byte, n int) []byte {
	out := make([]byte, n)
	copy(out, b)
	return out
}

// emulatedRealloc implements Realloc via Alloc+copy+Free for an Allocator
// that only customizes Alloc and Free, mirroring spec.md §4.1: "reallocate
// is used only if both are the platform defaults; otherwise the system
// emulates reallocate via allocate+copy+free so that user hooks need not
// implement it."
type emulatedRealloc struct {
	Allocator
}

func (e emulatedRealloc) Realloc(b []byte, n int) []byte {
	out := e.Alloc(n)
	if out == nil {
		return nil
	}
	copy(out, b)
	e.Free(b)
	return out
}

// partialAllocator lets a caller override Alloc/Free without implementing
// Realloc; a nil Realloc triggers the allocate-copy-free emulation above.
type partialAllocator struct {
	AllocFunc   func(n int) []byte
	FreeFunc    func(b []byte)
	ReallocFunc func(b []byte, n int) []byte
}

func (p partialAllocator) Alloc(n int) []byte    { return p.AllocFunc(n) }
func (p partialAllocator) Free(b []byte)         { p.FreeFunc(b) }
func (p partialAllocator) Realloc(b []byte, n int) []byte {
	if p.ReallocFunc != nil {
		return p.ReallocFunc(b, n)
	}
	return emulatedRealloc{p}.Realloc(b, n)
}

// NewAllocator builds an Allocator from the given alloc/free hooks. If
// realloc is nil, Realloc is emulated via alloc+copy+free, matching the
// reference implementation's hook-installation contract.
func NewAllocator(alloc func(n int) []byte, free func(b []byte), realloc func(b []byte, n int) []byte) Allocator {
	return partialAllocator{AllocFunc: alloc, FreeFunc: free, ReallocFunc: realloc}
}

var (
	globalAllocMu sync.RWMutex
	globalAlloc   Allocator = defaultAllocator{}
)

// SetAllocator installs a as the process-wide default Allocator. It does
// not affect Parse or Print calls already in progress, since each call
// captures the active Allocator once, up front (newParseConfig /
// newPrintConfig), so in-flight operations are insulated from later
// calls to SetAllocator. Guarded the same way
// _examples/chronohq-arc/arc.go guards its shared Arc handle.
func SetAllocator(a Allocator) {
	if a == nil {
		a = defaultAllocator{}
	}
	globalAllocMu.Lock()
	globalAlloc = a
	globalAllocMu.Unlock()
}

func currentAllocator() Allocator {
	globalAllocMu.RLock()
	defer globalAllocMu.RUnlock()
	return globalAlloc
}

// poolBucket is sized for typical JSON token scratch buffers (string
// unescape staging, number staging) rather than whole documents.
const poolBucketSize = 256

// PooledAllocator is the idiomatic Go analogue of a per-tree arena
// allocator: a sync.Pool-backed Allocator that recycles scratch buffers
// across many short-lived Parse/Print calls instead of letting each one
// hit the garbage collector independently. It is safe for concurrent use
// by multiple Parser/Printer instances, unlike a true bump allocator,
// since sync.Pool itself is goroutine-safe.
type PooledAllocator struct {
	pool sync.Pool
}

// NewPooledAllocator returns a ready-to-use PooledAllocator.
func NewPooledAllocator() *PooledAllocator {
	p := &PooledAllocator{}
	p.pool.New = func() interface{} {
		b := make([]byte, poolBucketSize)
		return &b
	}
	return p
}

func (p *PooledAllocator) Alloc(n int) []byte {
	if n > poolBucketSize {
		return make([]byte, n)
	}
	bp := p.pool.Get().(*[]byte)
	b := (*bp)[:n]
	return b
}

func (p *PooledAllocator) Free(b []byte) {
	if cap(b) != poolBucketSize {
		return
	}
	b = b[:poolBucketSize]
	p.pool.Put(&b)
}

func (p *PooledAllocator) Realloc(b []byte, n int) []byte {
	out := p.Alloc(n)
	copy(out, b)
	p.Free(b)
	return out
}
