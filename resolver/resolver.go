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

// Package resolver performs the static scope pass over a parsed program.
//
// For every variable read and assignment it computes the lexical depth: how
// many environments to skip at run time to reach the binding. Declarations
// are two-phase (declare, then define) so reading a variable inside its own
// initializer is caught here, as are duplicate declarations in a local
// scope, toma outside a function and saiFora outside a loop. The pass also
// builds the symbol table consumed by editor tooling.
package resolver

import (
	"github.com/arthurgeek/mano/ast"
	"github.com/arthurgeek/mano/diag"
	"github.com/arthurgeek/mano/token"
)

// Symbol is one declared binding: its normalized name, where it was declared
// and every span that references it.
type Symbol struct {
	Name string
	Decl token.Span
	Refs []token.Span
}

// Resolution is the output of the pass. Locals maps each Variable and Assign
// node to its lexical depth; names absent from the map are globals, looked
// up by name at run time.
type Resolution struct {
	Locals  map[ast.Expr]int
	Symbols []*Symbol
}

type binding struct {
	defined bool
	sym     *Symbol
}

type resolver struct {
	scopes  []map[string]*binding
	globals map[string]*Symbol
	res     *Resolution
	errs    diag.List
	inFunc  int
	inLoop  int
}

// Resolve analyzes prog and returns the resolution plus every resolve error
// found. The resolution is usable only when the error list is empty.
func Resolve(prog []ast.Stmt) (*Resolution, diag.List) {
	r := &resolver{
		globals: make(map[string]*Symbol),
		res:     &Resolution{Locals: make(map[ast.Expr]int)},
	}
	for _, s := range prog {
		r.stmt(s)
	}
	return r.res, r.errs
}

func (r *resolver) stmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.ExprStmt:
		r.expr(s.X)
	case *ast.PrintStmt:
		r.expr(s.X)
	case *ast.VarDecl:
		r.declare(s.Name)
		if s.Init != nil {
			r.expr(s.Init)
		}
		r.define(s.Name)
	case *ast.Block:
		r.beginScope()
		for _, inner := range s.List {
			r.stmt(inner)
		}
		r.endScope()
	case *ast.If:
		r.expr(s.Cond)
		r.stmt(s.Then)
		if s.Else != nil {
			r.stmt(s.Else)
		}
	case *ast.While:
		r.expr(s.Cond)
		r.inLoop++
		r.stmt(s.Body)
		r.inLoop--
	case *ast.FunDecl:
		// the name is defined before the body resolves, so a function may
		// call itself
		r.declare(s.Name)
		r.define(s.Name)
		r.lambda(s.Fn)
	case *ast.Return:
		if r.inFunc == 0 {
			r.errs.Add(diag.Resolve, s.Span, "toma fora de função não cola")
		}
		if s.Value != nil {
			r.expr(s.Value)
		}
	case *ast.Break:
		if r.inLoop == 0 {
			r.errs.Add(diag.Resolve, s.Span, "saiFora fora de loop não cola")
		}
	}
}

func (r *resolver) expr(e ast.Expr) {
	switch e := e.(type) {
	case *ast.Literal:
	case *ast.Unary:
		r.expr(e.Right)
	case *ast.Binary:
		r.expr(e.Left)
		r.expr(e.Right)
	case *ast.Logical:
		r.expr(e.Left)
		r.expr(e.Right)
	case *ast.Grouping:
		r.expr(e.Inner)
	case *ast.Ternary:
		r.expr(e.Cond)
		r.expr(e.Then)
		r.expr(e.Else)
	case *ast.Comma:
		r.expr(e.Left)
		r.expr(e.Right)
	case *ast.Variable:
		if n := len(r.scopes); n > 0 {
			if b, ok := r.scopes[n-1][e.Name.Name()]; ok && !b.defined {
				r.errs.Add(diag.Resolve, e.Name.Span, "tá lendo '%s' dentro da própria inicialização", e.Name.Name())
			}
		}
		r.resolveLocal(e, e.Name)
	case *ast.Assign:
		r.expr(e.Value)
		r.resolveLocal(e, e.Name)
	case *ast.Call:
		r.expr(e.Callee)
		for _, a := range e.Args {
			r.expr(a)
		}
	case *ast.Lambda:
		r.lambda(e)
	}
}

// lambda resolves a function body in its own scope. The loop counter is
// stashed so a saiFora inside a function does not see an enclosing loop
// across the call boundary.
func (r *resolver) lambda(fn *ast.Lambda) {
	loop := r.inLoop
	r.inLoop = 0
	r.inFunc++
	r.beginScope()
	for _, p := range fn.Params {
		r.declare(p)
		r.define(p)
	}
	for _, s := range fn.Body {
		r.stmt(s)
	}
	r.endScope()
	r.inFunc--
	r.inLoop = loop
}

// resolveLocal records the lexical depth of a variable use, or leaves it for
// runtime global lookup when no enclosing scope declares the name.
func (r *resolver) resolveLocal(e ast.Expr, name token.Token) {
	n := name.Name()
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if b, ok := r.scopes[i][n]; ok {
			r.res.Locals[e] = len(r.scopes) - 1 - i
			b.sym.Refs = append(b.sym.Refs, name.Span)
			return
		}
	}
	if sym, ok := r.globals[n]; ok {
		sym.Refs = append(sym.Refs, name.Span)
	}
}

func (r *resolver) declare(name token.Token) {
	sym := &Symbol{Name: name.Name(), Decl: name.Span}
	r.res.Symbols = append(r.res.Symbols, sym)
	if len(r.scopes) == 0 {
		// global redeclaration rebinds
		r.globals[sym.Name] = sym
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[sym.Name]; ok {
		r.errs.Add(diag.Resolve, name.Span, "'%s' já foi declarado nesse escopo", sym.Name)
	}
	scope[sym.Name] = &binding{sym: sym}
}

func (r *resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	if b, ok := r.scopes[len(r.scopes)-1][name.Name()]; ok {
		b.defined = true
	}
}

func (r *resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]*binding))
}

func (r *resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}
