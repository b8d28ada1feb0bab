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

package interp_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthurgeek/mano/ast"
	"github.com/arthurgeek/mano/diag"
	"github.com/arthurgeek/mano/interp"
	"github.com/arthurgeek/mano/parser"
	"github.com/arthurgeek/mano/resolver"
	"github.com/arthurgeek/mano/scanner"
)

// compile runs the front end, requiring a clean result.
func compile(t *testing.T, src string) ([]ast.Stmt, *resolver.Resolution) {
	t.Helper()
	toks, errs := scanner.Scan(src)
	require.Empty(t, errs, "scan: %s", src)
	prog, perrs := parser.Parse(toks)
	require.Empty(t, perrs, "parse: %s", src)
	res, rerrs := resolver.Resolve(prog)
	require.Empty(t, rerrs, "resolve: %s", src)
	return prog, res
}

// run evaluates src and returns everything it printed.
func run(t *testing.T, src string, opts ...interp.Option) (string, error) {
	t.Helper()
	prog, res := compile(t, src)
	var out bytes.Buffer
	in, err := interp.New(append(opts, interp.Output(&out))...)
	require.NoError(t, err)
	err = in.Run(prog, res)
	return out.String(), err
}

// ok runs src and requires a clean evaluation.
func ok(t *testing.T, src string, opts ...interp.Option) string {
	t.Helper()
	out, err := run(t, src, opts...)
	require.NoError(t, err)
	return out
}

// fail runs src and requires a runtime diagnostic.
func fail(t *testing.T, src string) (string, *diag.Diagnostic) {
	t.Helper()
	out, err := run(t, src)
	require.Error(t, err)
	d, isDiag := err.(*diag.Diagnostic)
	require.True(t, isDiag, "want runtime diagnostic, got %T", err)
	assert.Equal(t, diag.Runtime, d.Kind)
	return out, d
}

func TestHello(t *testing.T) {
	assert.Equal(t, "E aí, mano!\n", ok(t, `salve "E aí, mano!";`))
}

func TestPrintAlias(t *testing.T) {
	assert.Equal(t, "oi\n", ok(t, `oiSumida "oi";`))
}

func TestFizzBuzz(t *testing.T) {
	src := `
seVira (seLiga i = 1; i <= 15; i = i + 1) {
  sePá (i % 15 == 0) salve "FizzBuzz";
  vacilou sePá (i % 3 == 0) salve "Fizz";
  vacilou sePá (i % 5 == 0) salve "Buzz";
  vacilou salve i;
}`
	want := "1\n2\nFizz\n4\nBuzz\nFizz\n7\n8\nFizz\nBuzz\n11\nFizz\n13\n14\nFizzBuzz\n"
	assert.Equal(t, want, ok(t, src))
}

func TestClosureCounter(t *testing.T) {
	src := `
olhaEssaFita make() { seLiga i = 0;
  olhaEssaFita inc() { i = i + 1; toma i; }
  toma inc; }
seLiga c = make(); salve c(); salve c(); salve c();`
	assert.Equal(t, "1\n2\n3\n", ok(t, src))
}

// two closures over the same environment see each other's writes.
func TestClosureSharedEnv(t *testing.T) {
	src := `
olhaEssaFita par() {
  seLiga n = 0;
  olhaEssaFita set(v) { n = v; }
  olhaEssaFita get() { toma n; }
  set(42);
  toma get;
}
salve par()();`
	assert.Equal(t, "42\n", ok(t, src))
}

func TestBreak(t *testing.T) {
	src := `seVira (seLiga i = 0; i < 10; i = i + 1) { sePá (i == 3) saiFora; salve i; }`
	assert.Equal(t, "0\n1\n2\n", ok(t, src))
}

// saiFora only leaves the innermost loop.
func TestBreakInnermost(t *testing.T) {
	src := `
seVira (seLiga i = 0; i < 2; i = i + 1) {
  seVira (seLiga j = 0; j < 10; j = j + 1) {
    sePá (j == 1) saiFora;
    salve i * 10 + j;
  }
}`
	assert.Equal(t, "0\n10\n", ok(t, src))
}

func TestTruthiness(t *testing.T) {
	assert.Equal(t, "t\n", ok(t, `sePá (0) salve "t"; vacilou salve "f";`))
	assert.Equal(t, "t\n", ok(t, `sePá ("") salve "t"; vacilou salve "f";`))
	assert.Equal(t, "f\n", ok(t, `sePá (nadaNão) salve "t"; vacilou salve "f";`))
	assert.Equal(t, "f\n", ok(t, `sePá (treta) salve "t"; vacilou salve "f";`))
}

func TestRuntimeTypeError(t *testing.T) {
	src := `salve "x" - 1;`
	out, d := fail(t, src)
	assert.Empty(t, out)
	assert.Contains(t, d.Msg, "-")
	// the span points at the operator
	assert.Equal(t, "-", d.Span.Text(src))
}

func TestUnicodeIdentifier(t *testing.T) {
	assert.Equal(t, "9\n", ok(t, "seLiga 🔥 = 3; salve 🔥 * 🔥;"))
}

func TestNestedComment(t *testing.T) {
	assert.Equal(t, "1\n", ok(t, "/* a /* b */ c */ salve 1;"))
}

func TestShortCircuit(t *testing.T) {
	src := `
seLiga n = 0;
olhaEssaFita bump() { n = n + 1; toma firmeza; }
firmeza ow bump();
treta tamoJunto bump();
salve n;`
	assert.Equal(t, "0\n", ok(t, src))
}

// logical operators return the deciding operand, not a boolean.
func TestLogicalValues(t *testing.T) {
	assert.Equal(t, "a\n", ok(t, `salve "a" ow "b";`))
	assert.Equal(t, "b\n", ok(t, `salve nadaNão ow "b";`))
	assert.Equal(t, "nadaNão\n", ok(t, `salve nadaNão tamoJunto "x";`))
	assert.Equal(t, "b\n", ok(t, `salve "a" tamoJunto "b";`))
}

func TestEvalOrder(t *testing.T) {
	src := `
seLiga trace = "";
olhaEssaFita f() { trace = trace + "f"; toma 1; }
olhaEssaFita g() { trace = trace + "g"; toma 2; }
salve f() + g();
salve trace;`
	assert.Equal(t, "3\nfg\n", ok(t, src))
}

func TestConcat(t *testing.T) {
	assert.Equal(t, "x1\n", ok(t, `salve "x" + 1;`))
	assert.Equal(t, "1x\n", ok(t, `salve 1 + "x";`))
	assert.Equal(t, "v: firmeza\n", ok(t, `salve "v: " + firmeza;`))
	assert.Equal(t, "v: nadaNão\n", ok(t, `salve "v: " + nadaNão;`))
	assert.Equal(t, "oi mano\n", ok(t, `salve "oi" + " " + "mano";`))
}

func TestArithmetic(t *testing.T) {
	tests := []struct{ src, want string }{
		{"salve 1 + 2;", "3\n"},
		{"salve 10 / 4;", "2.5\n"},
		{"salve 7 % 3;", "1\n"},
		{"salve 2 * 3.5;", "7\n"},
		{"salve -(1 + 2);", "-3\n"},
		{"salve 1 / 0;", "+Inf\n"},
		{"salve -1 / 0;", "-Inf\n"},
		{"salve 0 / 0;", "NaN\n"},
		{"salve 5 % 0;", "NaN\n"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ok(t, tc.src), tc.src)
	}
}

func TestComparison(t *testing.T) {
	tests := []struct{ src, want string }{
		{"salve 1 < 2;", "firmeza\n"},
		{"salve 2 <= 2;", "firmeza\n"},
		{"salve 1 > 2;", "treta\n"},
		{"salve 1 == 1;", "firmeza\n"},
		{"salve 1 != 1;", "treta\n"},
		{`salve "a" == "a";`, "firmeza\n"},
		{`salve 1 == "1";`, "treta\n"},
		{"salve nadaNão == nadaNão;", "firmeza\n"},
		{"salve 0 / 0 == 0 / 0;", "treta\n"}, // NaN is never equal to itself
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ok(t, tc.src), tc.src)
	}
}

func TestTernaryComma(t *testing.T) {
	assert.Equal(t, "2\n", ok(t, "salve (1, 2);"))
	assert.Equal(t, "a\n", ok(t, `salve firmeza ? "a" : "b";`))
	// only the taken branch evaluates
	src := `
seLiga n = 0;
olhaEssaFita bump() { n = n + 1; toma n; }
treta ? bump() : 0;
salve n;`
	assert.Equal(t, "0\n", ok(t, src))
}

func TestAssignIsExpression(t *testing.T) {
	assert.Equal(t, "5\n5\n", ok(t, "seLiga a = 1; salve a = 5; salve a;"))
}

func TestDisplayForms(t *testing.T) {
	src := `
seLiga semValor;
salve semValor;
salve firmeza;
salve treta;
salve 3;
salve 2.5;
olhaEssaFita foo() {}
salve foo;
salve olhaEssaFita (x) { toma x; };
salve foo();`
	want := "nadaNão\nfirmeza\ntreta\n3\n2.5\n<olhaEssaFita foo>\n<olhaEssaFita anonymous>\nnadaNão\n"
	assert.Equal(t, want, ok(t, src))
}

func TestReturnFromNestedBlocks(t *testing.T) {
	src := `
olhaEssaFita find() {
  seVira (seLiga i = 0; i < 100; i = i + 1) {
    sePá (i == 7) { { toma i; } }
  }
  toma -1;
}
salve find();`
	assert.Equal(t, "7\n", ok(t, src))
}

func TestRecursion(t *testing.T) {
	src := `
olhaEssaFita fib(n) {
  sePá (n < 2) toma n;
  toma fib(n - 1) + fib(n - 2);
}
salve fib(10);`
	assert.Equal(t, "55\n", ok(t, src))
}

func TestUndefinedVariable(t *testing.T) {
	_, d := fail(t, "salve fantasma;")
	assert.Contains(t, d.Msg, "fantasma")
}

func TestAssignUndefined(t *testing.T) {
	_, d := fail(t, "fantasma = 1;")
	assert.Contains(t, d.Msg, "fantasma")
}

func TestCallNonCallable(t *testing.T) {
	src := `seLiga x = 4; x();`
	_, d := fail(t, src)
	assert.Contains(t, d.Msg, "não é função")
	assert.Equal(t, ")", d.Span.Text(src))
}

func TestArityMismatch(t *testing.T) {
	_, d := fail(t, "olhaEssaFita f(a) { toma a; } f(1, 2);")
	assert.Contains(t, d.Msg, "esperava 1")
	assert.Contains(t, d.Msg, "veio 2")
}

func TestStackOverflow(t *testing.T) {
	src := "olhaEssaFita f() { toma f(); } f();"
	prog, res := compile(t, src)
	var out bytes.Buffer
	in, err := interp.New(interp.Output(&out), interp.MaxCallDepth(32))
	require.NoError(t, err)
	err = in.Run(prog, res)
	require.Error(t, err)
	d, isDiag := err.(*diag.Diagnostic)
	require.True(t, isDiag)
	assert.Contains(t, d.Msg, "pilha")
}

func TestUnaryMinusTypeError(t *testing.T) {
	_, d := fail(t, `salve -"x";`)
	assert.Contains(t, d.Msg, "número")
}

func TestComparisonTypeError(t *testing.T) {
	_, d := fail(t, `salve 1 < "2";`)
	assert.Contains(t, d.Msg, "<")
}

// the same instance keeps its globals across runs, the way the REPL drives
// it.
func TestRunAccumulates(t *testing.T) {
	var out bytes.Buffer
	in, err := interp.New(interp.Output(&out))
	require.NoError(t, err)

	for _, line := range []string{"seLiga x = 1;", "x = x + 1;", "salve x;"} {
		prog, res := compile(t, line)
		require.NoError(t, in.Run(prog, res))
	}
	assert.Equal(t, "2\n", out.String())
}

func TestWhile(t *testing.T) {
	src := `seLiga i = 3; segueOFluxo (i > 0) { salve i; i = i - 1; }`
	assert.Equal(t, "3\n2\n1\n", ok(t, src))
}

func TestVarRedeclarationGlobal(t *testing.T) {
	assert.Equal(t, "2\n", ok(t, "seLiga x = 1; seLiga x = 2; salve x;"))
}

func TestShadowing(t *testing.T) {
	src := `
seLiga x = "fora";
{
  seLiga x = "dentro";
  salve x;
}
salve x;`
	assert.Equal(t, "dentro\nfora\n", ok(t, src))
}

func TestLambdaAsArgument(t *testing.T) {
	src := `
olhaEssaFita aplica(f, v) { toma f(v); }
salve aplica(olhaEssaFita (x) { toma x * 2; }, 21);`
	assert.Equal(t, "42\n", ok(t, src))
}

func TestValueHelpers(t *testing.T) {
	assert.True(t, interp.Truthy(0.0))
	assert.True(t, interp.Truthy(""))
	assert.False(t, interp.Truthy(nil))
	assert.False(t, interp.Truthy(false))

	assert.True(t, interp.Equal(1.0, 1.0))
	assert.False(t, interp.Equal(1.0, "1"))
	assert.True(t, interp.Equal(nil, nil))
	assert.False(t, interp.Equal(nil, false))

	assert.Equal(t, "nadaNão", interp.Display(nil))
	assert.Equal(t, "3", interp.Display(3.0))
	assert.Equal(t, "3.5", interp.Display(3.5))
	assert.Equal(t, "oi", interp.Display("oi"))
	assert.Equal(t, "firmeza", interp.Display(true))
}

// errors carry spans that survive into rendered output.
func TestRuntimeRender(t *testing.T) {
	src := "salve 1;\nsalve \"x\" - 1;"
	_, d := fail(t, src)
	rendered := d.Render(src)
	assert.True(t, strings.HasPrefix(rendered, "Deu ruim na linha 2"), rendered)
}
