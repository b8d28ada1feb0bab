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

// Package token defines the lexical tokens of the mano language: kinds,
// lexemes, literal payloads and byte spans into the original source.
//
// Keywords are the Brazilian-Portuguese slang forms of the language:
//
//	salve, oiSumida	print
//	seLiga		var
//	firmeza, treta	true, false
//	nadaNão		nil
//	tamoJunto, ow	and, or
//	sePá, vacilou	if, else
//	segueOFluxo	while
//	seVira		for
//	olhaEssaFita	fun
//	toma		return
//	saiFora		break
//
// Keyword and identifier comparison is over the NFC form of the lexeme, so
// source typed with decomposed accents still hits the keyword table. The raw
// lexeme is preserved on the token: source[Span.Start:Span.End] == Lexeme.
package token

import "golang.org/x/text/unicode/norm"

// Kind is the set of lexical token kinds.
type Kind uint8

// Token kinds.
const (
	// structural
	LParen Kind = iota
	RParen
	LBrace
	RBrace
	Comma
	Dot
	Semicolon
	Question
	Colon

	// operators
	Minus
	Plus
	Star
	Slash
	Percent
	Bang
	BangEq
	Eq
	EqEq
	Gt
	GtEq
	Lt
	LtEq

	// literals
	Identifier
	String
	Number

	// keywords
	And
	Break
	Else
	False
	For
	Fun
	If
	Nil
	Or
	Print
	PrintAlt
	Return
	True
	Var
	While

	Eof
)

var kindNames = [...]string{
	LParen:     "(",
	RParen:     ")",
	LBrace:     "{",
	RBrace:     "}",
	Comma:      ",",
	Dot:        ".",
	Semicolon:  ";",
	Question:   "?",
	Colon:      ":",
	Minus:      "-",
	Plus:       "+",
	Star:       "*",
	Slash:      "/",
	Percent:    "%",
	Bang:       "!",
	BangEq:     "!=",
	Eq:         "=",
	EqEq:       "==",
	Gt:         ">",
	GtEq:       ">=",
	Lt:         "<",
	LtEq:       "<=",
	Identifier: "identifier",
	String:     "string",
	Number:     "number",
	And:        "tamoJunto",
	Break:      "saiFora",
	Else:       "vacilou",
	False:      "treta",
	For:        "seVira",
	Fun:        "olhaEssaFita",
	If:         "sePá",
	Nil:        "nadaNão",
	Or:         "ow",
	Print:      "salve",
	PrintAlt:   "oiSumida",
	Return:     "toma",
	True:       "firmeza",
	Var:        "seLiga",
	While:      "segueOFluxo",
	Eof:        "end of input",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

var keywords = map[string]Kind{
	"tamoJunto":    And,
	"saiFora":      Break,
	"vacilou":      Else,
	"treta":        False,
	"seVira":       For,
	"olhaEssaFita": Fun,
	"sePá":         If,
	"nadaNão":      Nil,
	"ow":           Or,
	"salve":        Print,
	"oiSumida":     PrintAlt,
	"toma":         Return,
	"firmeza":      True,
	"seLiga":       Var,
	"segueOFluxo":  While,
}

// Lookup maps an identifier lexeme to its keyword kind, or Identifier if it
// is not a keyword. The lexeme is NFC-normalized before the table probe.
func Lookup(lexeme string) Kind {
	if k, ok := keywords[norm.NFC.String(lexeme)]; ok {
		return k
	}
	return Identifier
}

// Span is a byte range [Start, End) into the original source. Every token,
// AST node and diagnostic carries one.
type Span struct {
	Start, End int
}

// Text returns the source text covered by the span.
func (s Span) Text(src string) string { return src[s.Start:s.End] }

// To returns a span covering both s and t.
func (s Span) To(t Span) Span { return Span{s.Start, t.End} }

// Token is a single lexical token. Literal holds the parsed float64 for
// Number tokens and the decoded string value for String tokens; it is nil
// otherwise.
type Token struct {
	Kind    Kind
	Lexeme  string
	Literal interface{}
	Span    Span
}

// Name returns the NFC form of the token's lexeme. This is the binding name
// used at declaration and lookup, so differently composed spellings of the
// same identifier denote the same variable.
func (t Token) Name() string { return norm.NFC.String(t.Lexeme) }

func (t Token) String() string {
	if t.Kind == Eof {
		return "end of input"
	}
	return t.Lexeme
}
