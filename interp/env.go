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

// Env is one scope in the environment chain: a mapping from binding name to
// value plus a link to the enclosing scope. Closures keep a reference to the
// Env that was current when the function literal was evaluated, so an Env
// stays reachable for as long as any closure over it lives.
type Env struct {
	vars      map[string]Value
	enclosing *Env
}

// NewEnv returns an empty environment chained to enclosing, which may be nil
// for the global scope.
func NewEnv(enclosing *Env) *Env {
	return &Env{vars: make(map[string]Value), enclosing: enclosing}
}

// Define binds name in this scope. Redefining an existing name rebinds it.
func (e *Env) Define(name string, v Value) {
	e.vars[name] = v
}

// Get walks the chain and returns the nearest binding of name.
func (e *Env) Get(name string) (Value, bool) {
	for ; e != nil; e = e.enclosing {
		if v, ok := e.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Assign mutates the nearest existing binding of name, reporting whether one
// was found.
func (e *Env) Assign(name string, v Value) bool {
	for ; e != nil; e = e.enclosing {
		if _, ok := e.vars[name]; ok {
			e.vars[name] = v
			return true
		}
	}
	return false
}

// ancestor returns the environment depth links up the chain. The resolver
// guarantees the chain is long enough.
func (e *Env) ancestor(depth int) *Env {
	for ; depth > 0; depth-- {
		e = e.enclosing
	}
	return e
}

// GetAt reads name from the environment at the resolved depth.
func (e *Env) GetAt(depth int, name string) Value {
	return e.ancestor(depth).vars[name]
}

// AssignAt writes name in the environment at the resolved depth.
func (e *Env) AssignAt(depth int, name string, v Value) {
	e.ancestor(depth).vars[name] = v
}
