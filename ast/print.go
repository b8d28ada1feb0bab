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

package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders a node as an s-expression. The output makes grouping and
// precedence explicit, which is what the parser tests assert against.
func Print(n Node) string {
	var b strings.Builder
	printNode(&b, n)
	return b.String()
}

func printNode(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Literal:
		printLiteral(b, n.Value)
	case *Unary:
		printList(b, n.Op.Lexeme, n.Right)
	case *Binary:
		printList(b, n.Op.Lexeme, n.Left, n.Right)
	case *Logical:
		printList(b, n.Op.Lexeme, n.Left, n.Right)
	case *Grouping:
		printList(b, "group", n.Inner)
	case *Variable:
		b.WriteString(n.Name.Name())
	case *Assign:
		printList(b, "= "+n.Name.Name(), n.Value)
	case *Call:
		nodes := make([]Node, 0, len(n.Args)+1)
		nodes = append(nodes, n.Callee)
		for _, a := range n.Args {
			nodes = append(nodes, a)
		}
		printList(b, "call", nodes...)
	case *Ternary:
		printList(b, "?:", n.Cond, n.Then, n.Else)
	case *Comma:
		printList(b, ",", n.Left, n.Right)
	case *Lambda:
		b.WriteString("(olhaEssaFita (")
		for i, p := range n.Params {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(p.Name())
		}
		b.WriteByte(')')
		for _, s := range n.Body {
			b.WriteByte(' ')
			printNode(b, s)
		}
		b.WriteByte(')')
	case *ExprStmt:
		printList(b, ";", n.X)
	case *PrintStmt:
		printList(b, "salve", n.X)
	case *VarDecl:
		if n.Init != nil {
			printList(b, "seLiga "+n.Name.Name(), n.Init)
		} else {
			fmt.Fprintf(b, "(seLiga %s)", n.Name.Name())
		}
	case *Block:
		nodes := make([]Node, len(n.List))
		for i, s := range n.List {
			nodes[i] = s
		}
		printList(b, "block", nodes...)
	case *If:
		if n.Else != nil {
			printList(b, "sePá", n.Cond, n.Then, n.Else)
		} else {
			printList(b, "sePá", n.Cond, n.Then)
		}
	case *While:
		printList(b, "segueOFluxo", n.Cond, n.Body)
	case *FunDecl:
		b.WriteString("(olhaEssaFita " + n.Name.Name() + " (")
		for i, p := range n.Fn.Params {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(p.Name())
		}
		b.WriteByte(')')
		for _, s := range n.Fn.Body {
			b.WriteByte(' ')
			printNode(b, s)
		}
		b.WriteByte(')')
	case *Return:
		if n.Value != nil {
			printList(b, "toma", n.Value)
		} else {
			b.WriteString("(toma)")
		}
	case *Break:
		b.WriteString("(saiFora)")
	}
}

func printLiteral(b *strings.Builder, v interface{}) {
	switch v := v.(type) {
	case nil:
		b.WriteString("nadaNão")
	case bool:
		if v {
			b.WriteString("firmeza")
		} else {
			b.WriteString("treta")
		}
	case float64:
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	case string:
		b.WriteString(strconv.Quote(v))
	default:
		fmt.Fprintf(b, "%v", v)
	}
}

func printList(b *strings.Builder, name string, nodes ...Node) {
	b.WriteByte('(')
	b.WriteString(name)
	for _, n := range nodes {
		b.WriteByte(' ')
		printNode(b, n)
	}
	b.WriteByte(')')
}
