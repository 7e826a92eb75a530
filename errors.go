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
	"fmt"
	"sync"
)

var (
	// ErrAlloc is returned when the active Allocator fails to produce a buffer.
	ErrAlloc = errors.New("jsontree: allocation failed")

	// ErrBounds is returned when the parser would need to read past the end
	// of the supplied input.
	ErrBounds = errors.New("jsontree: read past end of input")

	// ErrSyntax is the sentinel wrapped by every SyntaxError; use errors.Is
	// against it rather than type-asserting *SyntaxError when only the
	// class of failure matters.
	ErrSyntax = errors.New("jsontree: syntax error")

	// ErrDepth is returned when parsing or duplicating would exceed the
	// configured nesting depth limit.
	ErrDepth = errors.New("jsontree: nesting depth exceeded")

	// ErrAPI is returned for contract violations: nil arguments, negative
	// indices, writing through a reference string, or inserting a node
	// into itself.
	ErrAPI = errors.New("jsontree: invalid argument")
)

// SyntaxError records where in the input a parse failed. It is the
// replacement for the C API's process-wide cJSON_GetErrorPtr: the offset
// and a copy of the input are attached directly to the error value instead
// of living in shared global state, though LastError still shadows the
// most recent one for callers that want the old global-slot behavior.
type SyntaxError struct {
	Input  string
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("jsontree: %s at offset %d", e.Msg, e.Offset)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// Near returns up to n bytes of input starting at the failure offset, for
// diagnostics. It never panics on a short or exhausted input.
func (e *SyntaxError) Near(n int) string {
	if e.Offset >= len(e.Input) {
		return ""
	}
	end := e.Offset + n
	if end > len(e.Input) {
		end = len(e.Input)
	}
	return e.Input[e.Offset:end]
}

var lastErrMu sync.RWMutex
var lastErr *SyntaxError

// setLastError records err as the most recently observed parse failure.
// Guarded the same way _examples/chronohq-arc/arc.go guards its shared Arc
// handle (a mutex wrapping otherwise-unsynchronized struct fields).
func setLastError(err *SyntaxError) {
	lastErrMu.Lock()
	lastErr = err
	lastErrMu.Unlock()
}

// LastError returns the SyntaxError recorded by the most recent failing
// Parse call on any goroutine, or nil if the last Parse (if any) succeeded.
// This is a compatibility shadow of the reference implementation's global
// error slot; prefer the error value returned directly by Parse when
// possible, since that one cannot be clobbered by a concurrent parse.
func LastError() *SyntaxError {
	lastErrMu.RLock()
	defer lastErrMu.RUnlock()
	return lastErr
}
