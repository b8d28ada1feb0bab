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

// Package parser builds the mano syntax tree from a token stream.
//
// It is a straight recursive-descent parser over the grammar, one method per
// precedence level. On a syntax error it records a diagnostic and
// synchronizes at the next statement boundary, so one parse reports every
// syntax problem it can reach. seVira loops are desugared here into an
// equivalent block-plus-while, so the evaluator only ever sees segueOFluxo.
package parser

import (
	"github.com/arthurgeek/mano/ast"
	"github.com/arthurgeek/mano/diag"
	"github.com/arthurgeek/mano/token"
)

// maxArity caps parameter and argument lists.
const maxArity = 255

// bailout unwinds the parser to the nearest statement boundary after a
// syntax error. It never escapes Parse.
type bailout struct{}

type parser struct {
	toks []token.Token
	pos  int
	errs diag.List
}

// Parse consumes a token stream (as produced by scanner.Scan, Eof included)
// and returns the program statements plus every parse error found.
// Statements that failed to parse are dropped from the result; callers must
// treat a non-empty error list as a failed compile.
func Parse(toks []token.Token) ([]ast.Stmt, diag.List) {
	p := &parser{toks: toks}
	var prog []ast.Stmt
	for !p.atEnd() {
		if s := p.declaration(); s != nil {
			prog = append(prog, s)
		}
	}
	return prog, p.errs
}

// declaration parses a single statement, recovering from syntax errors by
// discarding tokens up to the next statement boundary.
func (p *parser) declaration() (s ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			p.synchronize()
			s = nil
		}
	}()
	switch {
	case p.match(token.Var):
		return p.varDecl(p.prev())
	case p.check(token.Fun) && p.checkNext(token.Identifier):
		p.advance()
		return p.funDecl(p.prev())
	default:
		return p.statement()
	}
}

func (p *parser) varDecl(kw token.Token) ast.Stmt {
	name := p.expect(token.Identifier, "esperava o nome da variável")
	var init ast.Expr
	if p.match(token.Eq) {
		init = p.expression()
	}
	end := p.expect(token.Semicolon, "faltou o ';' depois da declaração")
	return &ast.VarDecl{Name: name, Init: init, Span: kw.Span.To(end.Span)}
}

func (p *parser) funDecl(kw token.Token) ast.Stmt {
	name := p.expect(token.Identifier, "esperava o nome da função")
	fn := p.functionBody(kw)
	return &ast.FunDecl{Name: name, Fn: fn, Span: kw.Span.To(fn.Span)}
}

// functionBody parses "(" params? ")" block, shared by named functions and
// lambdas.
func (p *parser) functionBody(kw token.Token) *ast.Lambda {
	p.expect(token.LParen, "esperava '(' depois de olhaEssaFita")
	var params []token.Token
	if !p.check(token.RParen) {
		for {
			if len(params) >= maxArity {
				p.errorAt(p.peek().Span, "função com mais de %d parâmetros, pega leve", maxArity)
			}
			params = append(params, p.expect(token.Identifier, "esperava o nome do parâmetro"))
			if !p.match(token.Comma) {
				break
			}
		}
	}
	p.expect(token.RParen, "faltou o ')' depois dos parâmetros")
	lb := p.expect(token.LBrace, "esperava '{' pro corpo da função")
	body, end := p.blockList(lb)
	return &ast.Lambda{Params: params, Body: body, Span: kw.Span.To(end.Span)}
}

func (p *parser) statement() ast.Stmt {
	switch {
	case p.match(token.Print, token.PrintAlt):
		return p.printStmt(p.prev())
	case p.match(token.If):
		return p.ifStmt(p.prev())
	case p.match(token.While):
		return p.whileStmt(p.prev())
	case p.match(token.For):
		return p.forStmt(p.prev())
	case p.match(token.Break):
		kw := p.prev()
		end := p.expect(token.Semicolon, "faltou o ';' depois de saiFora")
		return &ast.Break{Span: kw.Span.To(end.Span)}
	case p.match(token.Return):
		return p.returnStmt(p.prev())
	case p.match(token.LBrace):
		lb := p.prev()
		list, end := p.blockList(lb)
		return &ast.Block{List: list, Span: lb.Span.To(end.Span)}
	default:
		return p.exprStmt()
	}
}

func (p *parser) printStmt(kw token.Token) ast.Stmt {
	x := p.expression()
	end := p.expect(token.Semicolon, "faltou o ';' depois do "+kw.Lexeme)
	return &ast.PrintStmt{X: x, Span: kw.Span.To(end.Span)}
}

func (p *parser) ifStmt(kw token.Token) ast.Stmt {
	p.expect(token.LParen, "esperava '(' depois de sePá")
	cond := p.expression()
	p.expect(token.RParen, "faltou o ')' depois da condição")
	then := p.statement()
	var els ast.Stmt
	if p.match(token.Else) {
		els = p.statement()
	}
	span := kw.Span.To(then.Loc())
	if els != nil {
		span = kw.Span.To(els.Loc())
	}
	return &ast.If{Cond: cond, Then: then, Else: els, Span: span}
}

func (p *parser) whileStmt(kw token.Token) ast.Stmt {
	p.expect(token.LParen, "esperava '(' depois de segueOFluxo")
	cond := p.expression()
	p.expect(token.RParen, "faltou o ')' depois da condição")
	body := p.statement()
	return &ast.While{Cond: cond, Body: body, Span: kw.Span.To(body.Loc())}
}

// forStmt desugars seVira (init; cond; incr) body into
// { init; segueOFluxo (cond) { body; incr; } }. A missing condition loops
// forever.
func (p *parser) forStmt(kw token.Token) ast.Stmt {
	p.expect(token.LParen, "esperava '(' depois de seVira")

	var init ast.Stmt
	switch {
	case p.match(token.Semicolon):
		init = nil
	case p.match(token.Var):
		init = p.varDecl(p.prev())
	default:
		init = p.exprStmt()
	}

	var cond ast.Expr
	if !p.check(token.Semicolon) {
		cond = p.expression()
	}
	semi := p.expect(token.Semicolon, "faltou o ';' depois da condição do seVira")

	var incr ast.Expr
	if !p.check(token.RParen) {
		incr = p.expression()
	}
	p.expect(token.RParen, "faltou o ')' do seVira")

	body := p.statement()
	span := kw.Span.To(body.Loc())

	if incr != nil {
		body = &ast.Block{
			List: []ast.Stmt{body, &ast.ExprStmt{X: incr, Span: incr.Loc()}},
			Span: incr.Loc().To(body.Loc()),
		}
	}
	if cond == nil {
		cond = &ast.Literal{Value: true, Span: semi.Span}
	}
	var loop ast.Stmt = &ast.While{Cond: cond, Body: body, Span: span}
	if init != nil {
		loop = &ast.Block{List: []ast.Stmt{init, loop}, Span: span}
	}
	return loop
}

func (p *parser) returnStmt(kw token.Token) ast.Stmt {
	var value ast.Expr
	if !p.check(token.Semicolon) {
		value = p.expression()
	}
	end := p.expect(token.Semicolon, "faltou o ';' depois do toma")
	return &ast.Return{Value: value, Span: kw.Span.To(end.Span)}
}

func (p *parser) exprStmt() ast.Stmt {
	x := p.expression()
	end := p.expect(token.Semicolon, "faltou o ';' depois da expressão")
	return &ast.ExprStmt{X: x, Span: x.Loc().To(end.Span)}
}

// blockList parses statements until the closing brace and returns it.
func (p *parser) blockList(lb token.Token) ([]ast.Stmt, token.Token) {
	var list []ast.Stmt
	for !p.check(token.RBrace) && !p.atEnd() {
		if s := p.declaration(); s != nil {
			list = append(list, s)
		}
	}
	end := p.expect(token.RBrace, "faltou o '}' pra fechar o bloco")
	return list, end
}

// expression parses the comma level: assignments separated by commas,
// yielding the rightmost value.
func (p *parser) expression() ast.Expr {
	x := p.assignment()
	for p.match(token.Comma) {
		right := p.assignment()
		x = &ast.Comma{Left: x, Right: right, Span: x.Loc().To(right.Loc())}
	}
	return x
}

func (p *parser) assignment() ast.Expr {
	x := p.ternary()
	if p.match(token.Eq) {
		eq := p.prev()
		value := p.assignment()
		if v, ok := x.(*ast.Variable); ok {
			return &ast.Assign{Name: v.Name, Value: value, Span: v.Name.Span.To(value.Loc())}
		}
		p.errorAt(eq.Span, "só dá pra atribuir a um nome")
	}
	return x
}

func (p *parser) ternary() ast.Expr {
	cond := p.logicOr()
	if !p.match(token.Question) {
		return cond
	}
	then := p.assignment()
	p.expect(token.Colon, "faltou o ':' do ternário")
	els := p.assignment()
	return &ast.Ternary{Cond: cond, Then: then, Else: els, Span: cond.Loc().To(els.Loc())}
}

func (p *parser) logicOr() ast.Expr {
	x := p.logicAnd()
	for p.match(token.Or) {
		op := p.prev()
		right := p.logicAnd()
		x = &ast.Logical{Left: x, Op: op, Right: right, Span: x.Loc().To(right.Loc())}
	}
	return x
}

func (p *parser) logicAnd() ast.Expr {
	x := p.equality()
	for p.match(token.And) {
		op := p.prev()
		right := p.equality()
		x = &ast.Logical{Left: x, Op: op, Right: right, Span: x.Loc().To(right.Loc())}
	}
	return x
}

func (p *parser) equality() ast.Expr {
	x := p.comparison()
	for p.match(token.BangEq, token.EqEq) {
		op := p.prev()
		right := p.comparison()
		x = &ast.Binary{Left: x, Op: op, Right: right, Span: x.Loc().To(right.Loc())}
	}
	return x
}

func (p *parser) comparison() ast.Expr {
	x := p.term()
	for p.match(token.Lt, token.LtEq, token.Gt, token.GtEq) {
		op := p.prev()
		right := p.term()
		x = &ast.Binary{Left: x, Op: op, Right: right, Span: x.Loc().To(right.Loc())}
	}
	return x
}

func (p *parser) term() ast.Expr {
	x := p.factor()
	for p.match(token.Plus, token.Minus) {
		op := p.prev()
		right := p.factor()
		x = &ast.Binary{Left: x, Op: op, Right: right, Span: x.Loc().To(right.Loc())}
	}
	return x
}

func (p *parser) factor() ast.Expr {
	x := p.unary()
	for p.match(token.Star, token.Slash, token.Percent) {
		op := p.prev()
		right := p.unary()
		x = &ast.Binary{Left: x, Op: op, Right: right, Span: x.Loc().To(right.Loc())}
	}
	return x
}

func (p *parser) unary() ast.Expr {
	if p.match(token.Bang, token.Minus) {
		op := p.prev()
		right := p.unary()
		return &ast.Unary{Op: op, Right: right, Span: op.Span.To(right.Loc())}
	}
	return p.call()
}

func (p *parser) call() ast.Expr {
	x := p.primary()
	for p.match(token.LParen) {
		x = p.finishCall(x)
	}
	return x
}

// finishCall parses the argument list after the opening parenthesis.
// Arguments sit at assignment level: a comma here separates arguments
// instead of building a comma expression.
func (p *parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RParen) {
		for {
			if len(args) >= maxArity {
				p.errorAt(p.peek().Span, "chamada com mais de %d argumentos, pega leve", maxArity)
			}
			args = append(args, p.assignment())
			if !p.match(token.Comma) {
				break
			}
		}
	}
	paren := p.expect(token.RParen, "faltou o ')' da chamada")
	return &ast.Call{Callee: callee, Args: args, Paren: paren.Span, Span: callee.Loc().To(paren.Span)}
}

func (p *parser) primary() ast.Expr {
	tok := p.peek()
	switch tok.Kind {
	case token.Number, token.String:
		p.advance()
		return &ast.Literal{Value: tok.Literal, Span: tok.Span}
	case token.True:
		p.advance()
		return &ast.Literal{Value: true, Span: tok.Span}
	case token.False:
		p.advance()
		return &ast.Literal{Value: false, Span: tok.Span}
	case token.Nil:
		p.advance()
		return &ast.Literal{Value: nil, Span: tok.Span}
	case token.Identifier:
		p.advance()
		return &ast.Variable{Name: tok}
	case token.LParen:
		p.advance()
		x := p.expression()
		end := p.expect(token.RParen, "faltou o ')' pra fechar o grupo")
		return &ast.Grouping{Inner: x, Span: tok.Span.To(end.Span)}
	case token.Fun:
		p.advance()
		return p.functionBody(tok)
	default:
		p.fail(tok.Span, "esperava uma expressão, veio '%s'", tok)
		return nil
	}
}

// synchronize discards tokens until a likely statement boundary: just past a
// semicolon, or right before a statement-starter keyword. The offending
// token itself is always consumed, so the parse makes progress.
func (p *parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.prev().Kind == token.Semicolon {
			return
		}
		switch p.peek().Kind {
		case token.Var, token.Fun, token.Print, token.PrintAlt, token.If,
			token.While, token.For, token.Return, token.Break:
			return
		}
		p.advance()
	}
}

func (p *parser) atEnd() bool { return p.peek().Kind == token.Eof }

func (p *parser) peek() token.Token { return p.toks[p.pos] }

func (p *parser) prev() token.Token { return p.toks[p.pos-1] }

func (p *parser) checkNext(kind token.Kind) bool {
	if p.atEnd() || p.pos+1 >= len(p.toks) {
		return false
	}
	return p.toks[p.pos+1].Kind == kind
}

func (p *parser) advance() token.Token {
	if !p.atEnd() {
		p.pos++
	}
	return p.prev()
}

func (p *parser) check(kind token.Kind) bool { return p.peek().Kind == kind }

func (p *parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) expect(kind token.Kind, msg string) token.Token {
	if p.check(kind) {
		return p.advance()
	}
	p.fail(p.peek().Span, "%s, veio '%s'", msg, p.peek())
	return token.Token{}
}

// errorAt records a parse error without unwinding.
func (p *parser) errorAt(span token.Span, format string, args ...interface{}) {
	p.errs.Add(diag.Parse, span, format, args...)
}

// fail records a parse error and unwinds to the statement loop.
func (p *parser) fail(span token.Span, format string, args ...interface{}) {
	p.errorAt(span, format, args...)
	panic(bailout{})
}
