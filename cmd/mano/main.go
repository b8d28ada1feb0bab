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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/arthurgeek/mano/ast"
	"github.com/arthurgeek/mano/diag"
	"github.com/arthurgeek/mano/interp"
	"github.com/arthurgeek/mano/parser"
	"github.com/arthurgeek/mano/resolver"
	"github.com/arthurgeek/mano/scanner"
)

// sysexits-style codes, per the language contract.
const (
	exitOK      = 0
	exitIO      = 1
	exitUsage   = 64
	exitCompile = 65
	exitRuntime = 70
)

var (
	dumpAST   bool
	callDepth int
)

func main() {
	flag.BoolVar(&dumpAST, "ast", false, "print the parsed program as s-expressions and exit")
	flag.IntVar(&callDepth, "depth", 0, "maximum call nesting (0 means the default cap)")
	flag.Parse()

	switch flag.NArg() {
	case 0:
		os.Exit(repl())
	case 1:
		os.Exit(runFile(flag.Arg(0)))
	default:
		fmt.Fprintln(os.Stderr, "uso: mano [opções] [arquivo.mano]")
		flag.PrintDefaults()
		os.Exit(exitUsage)
	}
}

// compile runs the three front-end stages and accumulates their diagnostics
// so one invocation reports everything it can find.
func compile(src string) ([]ast.Stmt, *resolver.Resolution, diag.List) {
	toks, errs := scanner.Scan(src)
	prog, perrs := parser.Parse(toks)
	errs = append(errs, perrs...)
	res, rerrs := resolver.Resolve(prog)
	errs = append(errs, rerrs...)
	return prog, res, errs
}

func options() []interp.Option {
	var opts []interp.Option
	if callDepth > 0 {
		opts = append(opts, interp.MaxCallDepth(callDepth))
	}
	return opts
}

func runFile(name string) int {
	data, err := os.ReadFile(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrap(err, "não rolou ler o arquivo"))
		return exitIO
	}
	src := string(data)

	prog, res, errs := compile(src)
	if len(errs) > 0 {
		fmt.Fprintln(os.Stderr, errs.Render(src))
		return exitCompile
	}
	if dumpAST {
		for _, s := range prog {
			fmt.Println(ast.Print(s))
		}
		return exitOK
	}

	out := bufio.NewWriter(os.Stdout)
	in, err := interp.New(append(options(), interp.Output(out))...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitIO
	}
	err = in.Run(prog, res)
	if ferr := out.Flush(); err == nil && ferr != nil {
		err = errors.Wrap(ferr, "flush failed")
	}
	if err != nil {
		if d, ok := err.(*diag.Diagnostic); ok {
			fmt.Fprintln(os.Stderr, d.Render(src))
			return exitRuntime
		}
		fmt.Fprintln(os.Stderr, err)
		return exitIO
	}
	return exitOK
}
