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

package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthurgeek/mano/ast"
	"github.com/arthurgeek/mano/diag"
	"github.com/arthurgeek/mano/parser"
	"github.com/arthurgeek/mano/resolver"
	"github.com/arthurgeek/mano/scanner"
)

func parse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	toks, errs := scanner.Scan(src)
	require.Empty(t, errs)
	prog, perrs := parser.Parse(toks)
	require.Empty(t, perrs)
	return prog
}

func resolveErrs(t *testing.T, src string) diag.List {
	t.Helper()
	_, errs := resolver.Resolve(parse(t, src))
	return errs
}

func TestResolve_clean(t *testing.T) {
	srcs := []string{
		"seLiga x = 1; salve x;",
		"seLiga x = x;", // globals may read an earlier global, checked at runtime
		"seLiga x = 1; seLiga x = 2;",
		"olhaEssaFita f() { toma 1; } salve f();",
		"segueOFluxo (firmeza) saiFora;",
		"olhaEssaFita f() { segueOFluxo (firmeza) { saiFora; } }",
		"olhaEssaFita rec(n) { toma rec; }",
	}
	for _, src := range srcs {
		assert.Empty(t, resolveErrs(t, src), src)
	}
}

func TestResolve_selfInit(t *testing.T) {
	errs := resolveErrs(t, "{ seLiga a = a; }")
	require.Len(t, errs, 1)
	assert.Equal(t, diag.Resolve, errs[0].Kind)
	assert.Contains(t, errs[0].Msg, "inicialização")
}

func TestResolve_duplicateLocal(t *testing.T) {
	errs := resolveErrs(t, "{ seLiga a = 1; seLiga a = 2; }")
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Msg, "já foi declarado")
}

func TestResolve_duplicateParam(t *testing.T) {
	errs := resolveErrs(t, "olhaEssaFita f(a, a) {}")
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Msg, "já foi declarado")
}

func TestResolve_returnOutsideFunction(t *testing.T) {
	errs := resolveErrs(t, "toma 1;")
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Msg, "toma")
}

func TestResolve_breakOutsideLoop(t *testing.T) {
	errs := resolveErrs(t, "saiFora;")
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Msg, "saiFora")
}

// a function body is a new break context: the enclosing loop doesn't count.
func TestResolve_breakAcrossFunction(t *testing.T) {
	errs := resolveErrs(t, "segueOFluxo (firmeza) { olhaEssaFita f() { saiFora; } }")
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Msg, "saiFora")
}

func TestResolve_depths(t *testing.T) {
	src := `olhaEssaFita outer() {
  seLiga x = 1;
  olhaEssaFita inner() { toma x; }
  toma inner;
}`
	prog := parse(t, src)
	res, errs := resolver.Resolve(prog)
	require.Empty(t, errs)

	outer := prog[0].(*ast.FunDecl)
	inner := outer.Fn.Body[1].(*ast.FunDecl)
	ret := inner.Fn.Body[0].(*ast.Return)
	x := ret.Value.(*ast.Variable)

	depth, ok := res.Locals[x]
	require.True(t, ok, "x should resolve as a local")
	assert.Equal(t, 1, depth)

	// `toma inner;` reads inner from outer's own scope
	innerRef := outer.Fn.Body[2].(*ast.Return).Value.(*ast.Variable)
	depth, ok = res.Locals[innerRef]
	require.True(t, ok)
	assert.Equal(t, 0, depth)
}

func TestResolve_globalStaysDynamic(t *testing.T) {
	prog := parse(t, "seLiga g = 1; salve g;")
	res, errs := resolver.Resolve(prog)
	require.Empty(t, errs)
	v := prog[1].(*ast.PrintStmt).X.(*ast.Variable)
	_, ok := res.Locals[v]
	assert.False(t, ok, "globals resolve by name at runtime")
}

func TestResolve_symbols(t *testing.T) {
	prog := parse(t, "seLiga x = 1; salve x + x;")
	res, errs := resolver.Resolve(prog)
	require.Empty(t, errs)
	require.NotEmpty(t, res.Symbols)
	x := res.Symbols[0]
	assert.Equal(t, "x", x.Name)
	assert.Equal(t, 7, x.Decl.Start)
	assert.Len(t, x.Refs, 2)
}
