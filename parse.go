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
	"fmt"

	log "github.com/golang/glog"

	"github.com/brightwood-labs/jsontree/internal/charclass"
)

// parser carries the mutable state threaded through every recursive
// descent production: the input, a read cursor, the current nesting
// depth, the configured limits, and the allocator snapshot captured at
// construction so a later SetAllocator call cannot perturb an in-flight
// parse. This is the JSON-specialized analogue of the teacher's Result
// struct (content, length, offset, depth captured per parse).
type parser struct {
	src   string
	pos   int
	depth int
	cfg   *parseConfig
}

// Parse parses data as a single JSON value and returns the root of the
// resulting tree. data need not be NUL-terminated; a trailing NUL, if
// present, is not required and not treated specially beyond ordinary
// whitespace skipping.
//
// By default, trailing bytes after the value are ignored; pass
// WithStrictTermination to require that only whitespace follow. A
// leading UTF-8 BOM is silently consumed at the top level only.
func Parse(data []byte, opts ...ParseOption) (*Node, error) {
	cfg := newParseConfig(opts)
	p := &parser{src: string(data), cfg: cfg}
	setLastError(nil)

	p.skipBOM()
	p.skipWhitespace()

	root, err := p.parseValue()
	if err != nil {
		return nil, p.fail(err)
	}

	p.skipWhitespace()
	if cfg.strictTerminated && p.pos < len(p.src) {
		return nil, p.fail(p.syntaxErrorf("unexpected trailing content"))
	}

	log.V(5).Infof("jsontree: parsed %d bytes into a %s tree", p.pos, root.Kind())
	return root, nil
}

func (p *parser) fail(err error) error {
	if se, ok := err.(*SyntaxError); ok {
		setLastError(se)
	}
	return err
}

func (p *parser) syntaxErrorf(format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Input: p.src, Offset: p.pos, Msg: fmt.Sprintf(format, args...)}
}

// skipBOM consumes a leading UTF-8 byte-order mark (EF BB BF) if present
// at offset 0, per spec.md §4.3 and §6.
func (p *parser) skipBOM() {
	if p.pos == 0 && len(p.src) >= 3 &&
		p.src[0] == 0xEF && p.src[1] == 0xBB && p.src[2] == 0xBF {
		p.pos = 3
	}
}

func (p *parser) skipWhitespace() {
	for p.pos < len(p.src) && charclass.IsWhitespace(p.src[p.pos]) {
		p.pos++
	}
}

// peek returns the byte at the cursor without consuming it, and whether
// one was available; this is the bounds predicate spec.md §4.3 requires
// every range access to go through.
func (p *parser) peek() (byte, bool) {
	if p.pos >= len(p.src) {
		return 0, false
	}
	return p.src[p.pos], true
}

// hasPrefix reports whether s appears at the cursor without advancing,
// bounds-checking the full length before comparing.
func (p *parser) hasPrefix(s string) bool {
	if p.pos+len(s) > len(p.src) {
		return false
	}
	return p.src[p.pos:p.pos+len(s)] == s
}

func (p *parser) parseValue() (*Node, error) {
	b, ok := p.peek()
	if !ok {
		return nil, p.syntaxErrorf("unexpected end of input")
	}
	switch {
	case b == 'n':
		return p.parseLiteral("null", Null)
	case b == 't':
		return p.parseLiteral("true", True)
	case b == 'f':
		return p.parseLiteral("false", False)
	case b == '"':
		return p.parseStringValue()
	case b == '-' || charclass.IsDigit(b):
		return p.parseNumber()
	case b == '[':
		return p.parseArray()
	case b == '{':
		return p.parseObject()
	default:
		return nil, p.syntaxErrorf("unexpected character %q", b)
	}
}

func (p *parser) parseLiteral(lit string, kind Kind) (*Node, error) {
	if !p.hasPrefix(lit) {
		return nil, p.syntaxErrorf("invalid literal")
	}
	p.pos += len(lit)
	return &Node{kind: kind}, nil
}

func (p *parser) parseStringValue() (*Node, error) {
	s, err := p.parseStringLiteral()
	if err != nil {
		return nil, err
	}
	return &Node{kind: String, stringValue: s}, nil
}
