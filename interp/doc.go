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

// Package interp implements the mano tree-walking evaluator.
//
// An Interp instance owns a global environment and executes resolved
// programs against it for their side effects. Evaluation is single-threaded
// and fully synchronous: every operation either yields a value, transfers
// control non-locally (toma or saiFora), or fails with a runtime diagnostic
// carrying the span of the offending node.
//
// Values are dynamically typed: float64 numbers, strings, booleans, nadaNão
// and callables. Scopes form a chain of environments; a function literal
// captures the environment that was current at its evaluation, by reference,
// so the classic counter idiom works:
//
//	olhaEssaFita make() { seLiga i = 0;
//	  olhaEssaFita inc() { i = i + 1; toma i; }
//	  toma inc; }
//	seLiga c = make(); salve c(); salve c();
//
// toma and saiFora ride the error return path as signal values. They are
// absorbed by the nearest call frame and loop frame respectively; the
// resolver has already rejected programs where no such frame exists, so a
// signal never escapes Run.
//
// Interpretation assumes a clean compile: run the scanner, parser and
// resolver first and refuse to evaluate if any of them reported
// diagnostics.
package interp
