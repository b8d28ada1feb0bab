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
	"fmt"
	"os"

	"github.com/arthurgeek/mano/diag"
	"github.com/arthurgeek/mano/interp"
)

// repl runs the interactive loop: one line in, compile, evaluate against a
// global environment that persists across lines. Neither compile nor runtime
// errors end the session; CTRL-D does.
func repl() int {
	in, err := interp.New(append(options(), interp.Output(os.Stdout))...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitIO
	}

	fmt.Println("E aí, mano! Manda ver (CTRL-D pra vazar).")
	sc := bufio.NewScanner(os.Stdin)
	for fmt.Print("mano> "); sc.Scan(); fmt.Print("mano> ") {
		line := sc.Text()
		if line == "" {
			continue
		}
		prog, res, errs := compile(line)
		if len(errs) > 0 {
			fmt.Fprintln(os.Stderr, errs.Render(line))
			continue
		}
		if err := in.Run(prog, res); err != nil {
			if d, ok := err.(*diag.Diagnostic); ok {
				fmt.Fprintln(os.Stderr, d.Render(line))
				continue
			}
			// the output sink is stdout; if it broke, give up
			fmt.Fprintln(os.Stderr, err)
			return exitIO
		}
	}
	fmt.Println()
	if err := sc.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitIO
	}
	return exitOK
}
