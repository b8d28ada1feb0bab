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

// The mano command line tool runs programs written in mano, the scripting
// language with Brazilian slang keywords.
//
// With no argument it starts an interactive prompt where each line is
// compiled and evaluated against a persistent global scope. With a file
// argument it runs the file and exits 0 on success, 65 when the compile
// stages reported diagnostics, 70 on a runtime error and 1 on I/O failure.
//
// Usage:
//
//	-ast
//		  print the parsed program as s-expressions and exit
//	-depth int
//		  maximum call nesting (0 means the default cap)
package main
