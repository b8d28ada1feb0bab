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
	"fmt"
	"strconv"
)

// Value is a mano runtime value: float64, string, bool, nil or a Callable.
type Value interface{}

// Truthy reports the truth of a value: treta and nadaNão are falsy,
// everything else - zero and the empty string included - is truthy.
func Truthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// Equal compares two values. Same-typed values compare by content (IEEE
// semantics for numbers, so NaN is never equal to itself); values of
// different types are never equal; callables compare by identity.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case nil:
		return b == nil
	case float64:
		bv, ok := b.(float64)
		return ok && a == bv
	case string:
		bv, ok := b.(string)
		return ok && a == bv
	case bool:
		bv, ok := b.(bool)
		return ok && a == bv
	default:
		return a == b
	}
}

// Display returns the canonical human form of a value, used by salve and by
// string concatenation.
func Display(v Value) string {
	switch v := v.(type) {
	case nil:
		return "nadaNão"
	case bool:
		if v {
			return "firmeza"
		}
		return "treta"
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return v
	case Callable:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
