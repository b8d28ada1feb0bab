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

package interp

import (
	"io"
	"math"
	"os"

	"github.com/arthurgeek/mano/ast"
	"github.com/arthurgeek/mano/diag"
	"github.com/arthurgeek/mano/internal/manoi"
	"github.com/arthurgeek/mano/resolver"
	"github.com/arthurgeek/mano/token"
)

const defaultMaxCallDepth = 1024

// Option configures an interpreter instance.
type Option func(*Interp) error

// Output sets the sink that salve / oiSumida write to. Defaults to stdout.
func Output(w io.Writer) Option {
	return func(i *Interp) error { i.out = manoi.NewErrWriter(w); return nil }
}

// MaxCallDepth caps function call nesting. Exceeding the cap raises a
// runtime error instead of exhausting the host stack.
func MaxCallDepth(n int) Option {
	return func(i *Interp) error { i.maxDepth = n; return nil }
}

// Interp is a mano interpreter instance. It owns the global environment and
// may run any number of programs against it, which is how the REPL keeps
// state across lines.
type Interp struct {
	globals  *Env
	env      *Env
	locals   map[ast.Expr]int
	out      *manoi.ErrWriter
	depth    int
	maxDepth int
}

// New creates an interpreter with an empty global environment.
func New(opts ...Option) (*Interp, error) {
	i := &Interp{
		globals:  NewEnv(nil),
		locals:   make(map[ast.Expr]int),
		maxDepth: defaultMaxCallDepth,
	}
	i.env = i.globals
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, err
		}
	}
	if i.out == nil {
		i.out = manoi.NewErrWriter(os.Stdout)
	}
	return i, nil
}

// breakSignal and returnSignal ride the error return path for non-local
// control transfer. They are not failures: a loop frame absorbs breakSignal
// and a call frame absorbs returnSignal.
type breakSignal struct{}

func (*breakSignal) Error() string { return "saiFora" }

type returnSignal struct{ value Value }

func (*returnSignal) Error() string { return "toma" }

// Run executes a resolved program. The resolution's depth map is merged into
// the instance, so successive Run calls over the same globals (the REPL
// case) accumulate. The returned error is a *diag.Diagnostic for runtime
// failures, or the sink's write error if printing broke.
func (i *Interp) Run(prog []ast.Stmt, res *resolver.Resolution) error {
	for e, d := range res.Locals {
		i.locals[e] = d
	}
	for _, s := range prog {
		if err := i.exec(s); err != nil {
			return err
		}
	}
	return i.out.Err
}

func (i *Interp) exec(s ast.Stmt) error {
	switch s := s.(type) {
	case *ast.ExprStmt:
		_, err := i.eval(s.X)
		return err
	case *ast.PrintStmt:
		v, err := i.eval(s.X)
		if err != nil {
			return err
		}
		io.WriteString(i.out, Display(v))
		i.out.Write([]byte{'\n'})
		return nil
	case *ast.VarDecl:
		var v Value
		if s.Init != nil {
			var err error
			if v, err = i.eval(s.Init); err != nil {
				return err
			}
		}
		i.env.Define(s.Name.Name(), v)
		return nil
	case *ast.Block:
		return i.execBlock(s.List, NewEnv(i.env))
	case *ast.If:
		c, err := i.eval(s.Cond)
		if err != nil {
			return err
		}
		if Truthy(c) {
			return i.exec(s.Then)
		}
		if s.Else != nil {
			return i.exec(s.Else)
		}
		return nil
	case *ast.While:
		for {
			c, err := i.eval(s.Cond)
			if err != nil {
				return err
			}
			if !Truthy(c) {
				return nil
			}
			if err := i.exec(s.Body); err != nil {
				if _, ok := err.(*breakSignal); ok {
					return nil
				}
				return err
			}
		}
	case *ast.FunDecl:
		i.env.Define(s.Name.Name(), &Function{name: s.Name.Name(), decl: s.Fn, closure: i.env})
		return nil
	case *ast.Return:
		var v Value
		if s.Value != nil {
			var err error
			if v, err = i.eval(s.Value); err != nil {
				return err
			}
		}
		return &returnSignal{value: v}
	case *ast.Break:
		return &breakSignal{}
	}
	return nil
}

// execBlock runs stmts in env, restoring the previous environment on every
// exit path so a toma or saiFora unwinding through the block still drops its
// scope.
func (i *Interp) execBlock(stmts []ast.Stmt, env *Env) error {
	prev := i.env
	i.env = env
	defer func() { i.env = prev }()
	for _, s := range stmts {
		if err := i.exec(s); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interp) eval(e ast.Expr) (Value, error) {
	switch e := e.(type) {
	case *ast.Literal:
		return e.Value, nil
	case *ast.Grouping:
		return i.eval(e.Inner)
	case *ast.Unary:
		right, err := i.eval(e.Right)
		if err != nil {
			return nil, err
		}
		if e.Op.Kind == token.Bang {
			return !Truthy(right), nil
		}
		n, ok := right.(float64)
		if !ok {
			return nil, runtimeErr(e.Op.Span, "o '-' só nega número, veio %s", typeName(right))
		}
		return -n, nil
	case *ast.Binary:
		return i.evalBinary(e)
	case *ast.Logical:
		left, err := i.eval(e.Left)
		if err != nil {
			return nil, err
		}
		if e.Op.Kind == token.Or {
			if Truthy(left) {
				return left, nil
			}
		} else if !Truthy(left) {
			return left, nil
		}
		return i.eval(e.Right)
	case *ast.Ternary:
		c, err := i.eval(e.Cond)
		if err != nil {
			return nil, err
		}
		if Truthy(c) {
			return i.eval(e.Then)
		}
		return i.eval(e.Else)
	case *ast.Comma:
		if _, err := i.eval(e.Left); err != nil {
			return nil, err
		}
		return i.eval(e.Right)
	case *ast.Variable:
		if d, ok := i.locals[e]; ok {
			return i.env.GetAt(d, e.Name.Name()), nil
		}
		v, ok := i.globals.Get(e.Name.Name())
		if !ok {
			return nil, runtimeErr(e.Name.Span, "ninguém conhece '%s' por aqui", e.Name.Name())
		}
		return v, nil
	case *ast.Assign:
		v, err := i.eval(e.Value)
		if err != nil {
			return nil, err
		}
		if d, ok := i.locals[e]; ok {
			i.env.AssignAt(d, e.Name.Name(), v)
			return v, nil
		}
		if !i.globals.Assign(e.Name.Name(), v) {
			return nil, runtimeErr(e.Name.Span, "ninguém conhece '%s' por aqui", e.Name.Name())
		}
		return v, nil
	case *ast.Call:
		return i.evalCall(e)
	case *ast.Lambda:
		return &Function{decl: e, closure: i.env}, nil
	}
	return nil, runtimeErr(e.Loc(), "expressão desconhecida")
}

func (i *Interp) evalBinary(e *ast.Binary) (Value, error) {
	left, err := i.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.EqEq:
		return Equal(left, right), nil
	case token.BangEq:
		return !Equal(left, right), nil
	case token.Plus:
		if l, ok := left.(float64); ok {
			if r, ok := right.(float64); ok {
				return l + r, nil
			}
		}
		// either side being a string turns + into concatenation
		_, ls := left.(string)
		_, rs := right.(string)
		if ls || rs {
			return Display(left) + Display(right), nil
		}
		return nil, runtimeErr(e.Op.Span, "o '+' quer dois números ou uma string, veio %s e %s",
			typeName(left), typeName(right))
	}

	l, lok := left.(float64)
	r, rok := right.(float64)
	if !lok || !rok {
		return nil, runtimeErr(e.Op.Span, "o '%s' só trampa com números, veio %s e %s",
			e.Op.Lexeme, typeName(left), typeName(right))
	}
	switch e.Op.Kind {
	case token.Minus:
		return l - r, nil
	case token.Star:
		return l * r, nil
	case token.Slash:
		// division by zero follows IEEE-754: inf or nan
		return l / r, nil
	case token.Percent:
		return math.Mod(l, r), nil
	case token.Gt:
		return l > r, nil
	case token.GtEq:
		return l >= r, nil
	case token.Lt:
		return l < r, nil
	case token.LtEq:
		return l <= r, nil
	}
	return nil, runtimeErr(e.Op.Span, "operador desconhecido '%s'", e.Op.Lexeme)
}

func (i *Interp) evalCall(e *ast.Call) (Value, error) {
	callee, err := i.eval(e.Callee)
	if err != nil {
		return nil, err
	}
	args := make([]Value, 0, len(e.Args))
	for _, a := range e.Args {
		v, err := i.eval(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	fn, ok := callee.(Callable)
	if !ok {
		return nil, runtimeErr(e.Paren, "isso aí não é função, não dá pra chamar %s", typeName(callee))
	}
	if len(args) != fn.Arity() {
		return nil, runtimeErr(e.Paren, "esperava %d argumentos, veio %d", fn.Arity(), len(args))
	}
	if i.depth >= i.maxDepth {
		return nil, runtimeErr(e.Paren, "pilha estourou, mano: mais de %d chamadas aninhadas", i.maxDepth)
	}
	i.depth++
	defer func() { i.depth-- }()
	return fn.Call(i, args)
}

func runtimeErr(span token.Span, format string, args ...interface{}) error {
	var l diag.List
	l.Add(diag.Runtime, span, format, args...)
	return l[0]
}

func typeName(v Value) string {
	switch v.(type) {
	case nil:
		return "nadaNão"
	case float64:
		return "número"
	case string:
		return "string"
	case bool:
		return "booleano"
	case Callable:
		return "função"
	default:
		return "sei lá"
	}
}
