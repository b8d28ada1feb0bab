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

import "github.com/arthurgeek/mano/ast"

// Callable is a value that can appear as the callee of a call expression.
type Callable interface {
	// Arity returns the number of parameters the callable expects.
	Arity() int
	// Call applies the callable. Arity has already been checked.
	Call(in *Interp, args []Value) (Value, error)
	// String returns the display form.
	String() string
}

// Function is a user-defined function or lambda: the declaration, plus a
// handle on the environment that was current at the point the literal was
// evaluated. The capture is the environment itself, not a snapshot, so
// mutation of outer locals stays visible through the closure.
type Function struct {
	name    string // empty for lambdas
	decl    *ast.Lambda
	closure *Env
}

// Arity returns the declared parameter count.
func (f *Function) Arity() int { return len(f.decl.Params) }

func (f *Function) String() string {
	if f.name == "" {
		return "<olhaEssaFita anonymous>"
	}
	return "<olhaEssaFita " + f.name + ">"
}

// Call binds the arguments in a fresh environment enclosing the closure and
// runs the body. A toma anywhere in the body unwinds to here; falling off
// the end yields nadaNão.
func (f *Function) Call(in *Interp, args []Value) (Value, error) {
	env := NewEnv(f.closure)
	for i, p := range f.decl.Params {
		env.Define(p.Name(), args[i])
	}
	err := in.execBlock(f.decl.Body, env)
	if ret, ok := err.(*returnSignal); ok {
		return ret.value, nil
	}
	if err != nil {
		return nil, err
	}
	return nil, nil
}
