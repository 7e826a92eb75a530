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
	"strings"
	"unicode/utf8"

	"github.com/brightwood-labs/jsontree/internal/charclass"
)

// parseStringLiteral decodes the JSON string literal starting at the
// cursor (which must be positioned on the opening quote) and leaves the
// cursor just past the closing quote. It is a two-pass algorithm per
// spec.md §4.3: the first pass only locates the closing quote (so an
// escaped backslash-quote can never be mistaken for the terminator), and
// the second pass decodes escapes, including \uXXXX surrogate pairs.
func (p *parser) parseStringLiteral() (string, error) {
	if b, ok := p.peek(); !ok || b != '"' {
		return "", p.syntaxErrorf("expected opening quote")
	}
	start := p.pos + 1
	end, err := p.scanStringExtent(start)
	if err != nil {
		return "", err
	}

	decoded, err := p.decodeStringBody(p.src[start:end])
	if err != nil {
		return "", err
	}
	p.pos = end + 1 // past the closing quote
	return decoded, nil
}

// scanStringExtent returns the offset of the closing (unescaped) quote,
// treating "\x" as an indivisible two-byte unit so a trailing backslash
// can never escape the terminator, and failing on EOF before a close.
func (p *parser) scanStringExtent(start int) (int, error) {
	i := start
	for {
		if i >= len(p.src) {
			p.pos = i
			return 0, p.syntaxErrorf("unterminated string")
		}
		switch p.src[i] {
		case '"':
			return i, nil
		case '\\':
			if i+1 >= len(p.src) {
				p.pos = i + 1
				return 0, p.syntaxErrorf("unterminated string")
			}
			i += 2
		default:
			i++
		}
	}
}

// decodeStringBody decodes the escapes within raw, the bytes strictly
// between the opening and closing quotes. The scratch buffer comes from
// the parse's configured Allocator (WithParseAllocator / SetAllocator)
// rather than strings.Builder's own internal growth, so a caller-supplied
// Allocator genuinely backs every string-decode allocation a parse makes,
// not just the serializer's print buffer. No escape ever decodes to more
// UTF-8 bytes than it occupies in raw (a \uXXXX surrogate pair, the
// widest case, is 12 raw bytes decoding to at most 4), so len(raw) is
// always a sufficient capacity and the buffer never needs to grow.
func (p *parser) decodeStringBody(raw string) (string, error) {
	hasEscape := strings.IndexByte(raw, '\\') >= 0
	if !hasEscape {
		return raw, nil
	}

	scratchBuf := p.cfg.allocator.Alloc(len(raw))
	if scratchBuf == nil {
		return "", fmt.Errorf("%w: allocator returned nil decoding a %d-byte string", ErrAlloc, len(raw))
	}
	scratch := scratchBuf[:0]
	defer func() { p.cfg.allocator.Free(scratch) }()
	i := 0
	// offsetBase lets escape errors reported from within this helper
	// point at the right absolute input offset.
	offsetBase := p.pos + 1
	for i < len(raw) {
		c := raw[i]
		if c != '\\' {
			scratch = append(scratch, c)
			i++
			continue
		}
		if i+1 >= len(raw) {
			return "", &SyntaxError{Input: p.src, Offset: offsetBase + i, Msg: "dangling escape"}
		}
		esc := raw[i+1]
		switch esc {
		case '"':
			scratch = append(scratch, '"')
			i += 2
		case '\\':
			scratch = append(scratch, '\\')
			i += 2
		case '/':
			scratch = append(scratch, '/')
			i += 2
		case 'b':
			scratch = append(scratch, '\b')
			i += 2
		case 'f':
			scratch = append(scratch, '\f')
			i += 2
		case 'n':
			scratch = append(scratch, '\n')
			i += 2
		case 'r':
			scratch = append(scratch, '\r')
			i += 2
		case 't':
			scratch = append(scratch, '\t')
			i += 2
		case 'u':
			grown, consumed, err := decodeUnicodeEscape(raw, i, scratch, p.src, offsetBase)
			if err != nil {
				return "", err
			}
			scratch = grown
			i += consumed
		default:
			return "", &SyntaxError{Input: p.src, Offset: offsetBase + i, Msg: "invalid escape character"}
		}
	}
	return string(scratch), nil
}

// decodeUnicodeEscape decodes one \uXXXX sequence starting at raw[i] (at
// the backslash), handling UTF-16 surrogate pairs per spec.md §4.3: a
// high surrogate must be immediately followed by \u plus a low
// surrogate, combined via 0x10000 + ((hi&0x3FF)<<10) | (lo&0x3FF). It
// returns scratch with the decoded rune appended and the number of raw
// bytes consumed for this escape (6 or 12, not accounting for a paired
// low-surrogate consumed in isolation).
func decodeUnicodeEscape(raw string, i int, scratch []byte, fullSrc string, offsetBase int) ([]byte, int, error) {
	hi, err := parseHexQuad(raw, i+2, fullSrc, offsetBase)
	if err != nil {
		return scratch, 0, err
	}
	if hi < 0xD800 || hi > 0xDFFF {
		return utf8.AppendRune(scratch, rune(hi)), 6, nil
	}
	if hi > 0xDBFF {
		// A low surrogate appearing without a preceding high surrogate.
		return scratch, 0, &SyntaxError{Input: fullSrc, Offset: offsetBase + i, Msg: "isolated low surrogate"}
	}
	// hi is a high surrogate: require an immediately following \u + low
	// surrogate.
	if i+8 > len(raw) || raw[i+6] != '\\' || raw[i+7] != 'u' {
		return scratch, 0, &SyntaxError{Input: fullSrc, Offset: offsetBase + i, Msg: "unpaired high surrogate"}
	}
	lo, err := parseHexQuad(raw, i+8, fullSrc, offsetBase)
	if err != nil {
		return scratch, 0, err
	}
	if lo < 0xDC00 || lo > 0xDFFF {
		return scratch, 0, &SyntaxError{Input: fullSrc, Offset: offsetBase + i, Msg: "invalid low surrogate"}
	}
	cp := 0x10000 + ((hi & 0x3FF) << 10) | (lo & 0x3FF)
	return utf8.AppendRune(scratch, rune(cp)), 12, nil
}

// parseHexQuad reads the 4 hex digits at raw[pos:pos+4]. Per spec.md
// §4.3, a non-hex nibble is folded to zero by the digit-value mapping
// (charclass.HexValue); this function is the "caller must verify range
// validity" half of that contract, rejecting malformed quads so that the
// permissive digit mapping never silently accepts garbage.
func parseHexQuad(raw string, pos int, fullSrc string, offsetBase int) (int, error) {
	if pos+4 > len(raw) {
		return 0, &SyntaxError{Input: fullSrc, Offset: offsetBase + pos, Msg: "truncated \\u escape"}
	}
	v := 0
	for k := 0; k < 4; k++ {
		c := raw[pos+k]
		if !charclass.IsHexDigit(c) {
			return 0, &SyntaxError{Input: fullSrc, Offset: offsetBase + pos + k, Msg: "invalid hex digit in \\u escape"}
		}
		v = v<<4 | charclass.HexValue(c)
	}
	return v, nil
}

// encodeUTF8 returns the UTF-8 encoding of r via utf8.EncodeRune.
// Nothing in the package or its tests calls it; decodeUnicodeEscape
// appends decoded runes with utf8.AppendRune instead.
func encodeUTF8(r rune) []byte {
	buf := make([]byte, utf8.UTFMax)
	n := utf8.EncodeRune(buf, r)
	return buf[:n]
}
