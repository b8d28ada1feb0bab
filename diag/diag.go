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

// Package diag defines the diagnostic values produced by every stage of the
// mano pipeline. A Diagnostic carries its category, a message and the byte
// span of the offending source; rendering to line/column happens here so
// that the scanner, parser, resolver and interpreter never need the whole
// source at hand.
package diag

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/arthurgeek/mano/token"
)

// Kind classifies a diagnostic by the stage that produced it.
type Kind uint8

// Diagnostic categories.
const (
	Scan Kind = iota
	Parse
	Resolve
	Runtime
)

func (k Kind) String() string {
	switch k {
	case Scan:
		return "scan"
	case Parse:
		return "parse"
	case Resolve:
		return "resolve"
	case Runtime:
		return "runtime"
	}
	return "unknown"
}

// Diagnostic is a single error report with a source span.
type Diagnostic struct {
	Kind Kind
	Msg  string
	Span token.Span
}

// Error makes a Diagnostic usable as an error value where no source text is
// available; the CLI renders through Render instead.
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s [%d:%d]: %s", d.Kind, d.Span.Start, d.Span.End, d.Msg)
}

// Render formats the diagnostic in mano voice, resolving the span to a line
// number against the original source.
func (d *Diagnostic) Render(src string) string {
	line, _ := Position(src, d.Span.Start)
	switch d.Kind {
	case Scan:
		return fmt.Sprintf("Eita mano, linha %d: %s", line, d.Msg)
	case Parse:
		return fmt.Sprintf("Aí vacilou! %s na linha %d", d.Msg, line)
	case Resolve:
		return fmt.Sprintf("Se liga mano, linha %d: %s", line, d.Msg)
	default:
		return fmt.Sprintf("Deu ruim na linha %d, mano: %s", line, d.Msg)
	}
}

// List accumulates diagnostics across a compile so that a single pass can
// report every problem it finds.
type List []*Diagnostic

// Add appends a diagnostic.
func (l *List) Add(kind Kind, span token.Span, format string, args ...interface{}) {
	*l = append(*l, &Diagnostic{Kind: kind, Msg: fmt.Sprintf(format, args...), Span: span})
}

// Err returns the list as an error, or nil when it is empty.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

func (l List) Error() string {
	msgs := make([]string, 0, len(l))
	for _, d := range l {
		msgs = append(msgs, d.Error())
	}
	return strings.Join(msgs, "\n")
}

// Render formats every diagnostic in the list against the source, one per
// line.
func (l List) Render(src string) string {
	msgs := make([]string, 0, len(l))
	for _, d := range l {
		msgs = append(msgs, d.Render(src))
	}
	return strings.Join(msgs, "\n")
}

// Position converts a byte offset into a 1-based line and column. The column
// counts grapheme clusters from the start of the line, which is what a human
// looking at the source perceives as characters; emoji identifiers count as
// one column each.
func Position(src string, offset int) (line, col int) {
	if offset > len(src) {
		offset = len(src)
	}
	line = 1
	start := 0
	for i := 0; i < offset; i++ {
		if src[i] == '\n' {
			line++
			start = i + 1
		}
	}
	return line, uniseg.GraphemeClusterCount(src[start:offset]) + 1
}
