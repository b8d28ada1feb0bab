// This file is part of mano - https://github.com/arthurgeek/mano
//
// Copyright 2026 The mano authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package scanner turns mano source text into a token stream.
//
// The scanner consumes the source one Unicode scalar at a time and emits
// byte-offset spans. It keeps going after an error, so a single pass reports
// every lexical problem in the file. Block comments nest; string literals may
// span lines and carry no escape sequences; identifiers may start with any
// alphabetic scalar, an underscore or a pictographic scalar, so 🔥 is a
// perfectly good variable name.
package scanner

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/smasher164/xid"

	"github.com/arthurgeek/mano/diag"
	"github.com/arthurgeek/mano/token"
)

const eof = rune(-1)

// pictographic covers the emoji blocks accepted in identifiers.
var pictographic = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x2600, Hi: 0x27bf, Stride: 1}, // misc symbols, dingbats
		{Lo: 0x2b00, Hi: 0x2bff, Stride: 1}, // misc symbols and arrows
	},
	R32: []unicode.Range32{
		{Lo: 0x1f000, Hi: 0x1faff, Stride: 1}, // mahjong .. symbols extended-A
	},
}

type scanner struct {
	src   string
	start int // start of the lexeme being scanned
	pos   int // current byte offset
	toks  []token.Token
	errs  diag.List
}

// Scan tokenizes src and returns the full token stream, terminated by an Eof
// token, along with every scan error found. The token stream is complete even
// when errors accumulate, so downstream consumers such as highlighters still
// get spans for the valid lexemes.
func Scan(src string) ([]token.Token, diag.List) {
	s := &scanner{src: src}
	for {
		s.start = s.pos
		r := s.next()
		if r == eof {
			break
		}
		s.scanToken(r)
	}
	s.toks = append(s.toks, token.Token{Kind: token.Eof, Span: token.Span{Start: len(src), End: len(src)}})
	return s.toks, s.errs
}

func (s *scanner) scanToken(r rune) {
	switch r {
	case ' ', '\t', '\r', '\n':
		// token separator
	case '(':
		s.emit(token.LParen)
	case ')':
		s.emit(token.RParen)
	case '{':
		s.emit(token.LBrace)
	case '}':
		s.emit(token.RBrace)
	case ',':
		s.emit(token.Comma)
	case '.':
		s.emit(token.Dot)
	case ';':
		s.emit(token.Semicolon)
	case '?':
		s.emit(token.Question)
	case ':':
		s.emit(token.Colon)
	case '-':
		s.emit(token.Minus)
	case '+':
		s.emit(token.Plus)
	case '*':
		s.emit(token.Star)
	case '%':
		s.emit(token.Percent)
	case '/':
		switch {
		case s.match('/'):
			for s.peek() != '\n' && s.peek() != eof {
				s.next()
			}
		case s.match('*'):
			s.blockComment()
		default:
			s.emit(token.Slash)
		}
	case '!':
		if s.match('=') {
			s.emit(token.BangEq)
		} else {
			s.emit(token.Bang)
		}
	case '=':
		if s.match('=') {
			s.emit(token.EqEq)
		} else {
			s.emit(token.Eq)
		}
	case '<':
		if s.match('=') {
			s.emit(token.LtEq)
		} else {
			s.emit(token.Lt)
		}
	case '>':
		if s.match('=') {
			s.emit(token.GtEq)
		} else {
			s.emit(token.Gt)
		}
	case '"':
		s.stringLit()
	default:
		switch {
		case r >= '0' && r <= '9':
			s.number()
		case isIdentStart(r):
			s.identifier()
		default:
			s.errorf("caractere %q não rola aqui", r)
		}
	}
}

// blockComment consumes a /* ... */ comment. Comments nest, so the scanner
// keeps a depth counter rather than bailing at the first terminator.
func (s *scanner) blockComment() {
	depth := 1
	for depth > 0 {
		switch s.next() {
		case eof:
			s.errorf("comentário de bloco sem fechar")
			return
		case '/':
			if s.match('*') {
				depth++
			}
		case '*':
			if s.match('/') {
				depth--
			}
		}
	}
}

// stringLit consumes a double-quoted string. The literal value is the raw
// content between the quotes: no escapes, newlines allowed.
func (s *scanner) stringLit() {
	for s.peek() != '"' {
		if s.peek() == eof {
			s.errorf("cadê o fim da string?")
			return
		}
		s.next()
	}
	s.next() // closing quote
	s.emitLit(token.String, s.src[s.start+1:s.pos-1])
}

func (s *scanner) number() {
	for isDigit(s.peek()) {
		s.next()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.next()
		for isDigit(s.peek()) {
			s.next()
		}
	}
	v, err := strconv.ParseFloat(s.src[s.start:s.pos], 64)
	if err != nil {
		s.errorf("número esquisito %q", s.src[s.start:s.pos])
		return
	}
	s.emitLit(token.Number, v)
}

func (s *scanner) identifier() {
	for isIdentPart(s.peek()) {
		s.next()
	}
	s.emit(token.Lookup(s.src[s.start:s.pos]))
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isIdentStart(r rune) bool {
	return r == '_' || xid.Start(r) || unicode.Is(pictographic, r)
}

func isIdentPart(r rune) bool {
	// U+200D and U+FE0F glue multi-scalar emoji sequences together.
	return xid.Continue(r) || unicode.Is(pictographic, r) || r == 0x200d || r == 0xfe0f
}

func (s *scanner) next() rune {
	if s.pos >= len(s.src) {
		return eof
	}
	r, size := utf8.DecodeRuneInString(s.src[s.pos:])
	s.pos += size
	return r
}

func (s *scanner) peek() rune {
	if s.pos >= len(s.src) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(s.src[s.pos:])
	return r
}

func (s *scanner) peekNext() rune {
	if s.pos >= len(s.src) {
		return eof
	}
	_, size := utf8.DecodeRuneInString(s.src[s.pos:])
	if s.pos+size >= len(s.src) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(s.src[s.pos+size:])
	return r
}

func (s *scanner) match(want rune) bool {
	if s.peek() != want {
		return false
	}
	s.next()
	return true
}

func (s *scanner) emit(kind token.Kind) { s.emitLit(kind, nil) }

func (s *scanner) emitLit(kind token.Kind, literal interface{}) {
	s.toks = append(s.toks, token.Token{
		Kind:    kind,
		Lexeme:  s.src[s.start:s.pos],
		Literal: literal,
		Span:    token.Span{Start: s.start, End: s.pos},
	})
}

func (s *scanner) errorf(format string, args ...interface{}) {
	s.errs.Add(diag.Scan, token.Span{Start: s.start, End: s.pos}, format, args...)
}
