// Copyright 2020-2021 Dolthub, Inc.
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

package expression

import "github.com/quillsql/planner/sql"

// IsStrictlyTyped reports whether e's own operator signature is satisfied
// exactly by its children's current declared types -- no implicit
// promotion needed -- and recursively so for every descendant. This is
// spec.md's per-expression `strictlyTyped` property once the Analyzer has
// finished: every mismatch it would otherwise tolerate via promotion has
// already been bridged by an explicit Cast (see ApplyImplicitCasts).
func IsStrictlyTyped(e sql.Expression) bool {
	for _, c := range e.Children() {
		if !IsStrictlyTyped(c) {
			return false
		}
	}
	switch n := e.(type) {
	case *UnresolvedAttribute:
		return false
	case Star:
		return false
	case *Comparison:
		return n.Left.Type().Equals(n.Right.Type())
	case *Arithmetic:
		return n.Left.Type().Equals(n.Right.Type()) && n.Left.Type().Numeric()
	case *And, *Or:
		return childrenAreBoolean(e)
	case *Not:
		return n.Child.Type().Equals(sql.Boolean)
	case *If:
		return n.Cond.Type().Equals(sql.Boolean) && n.Yes.Type().Equals(n.No.Type())
	case *Coalesce:
		return allSameType(n.Args)
	default:
		return true
	}
}

func childrenAreBoolean(e sql.Expression) bool {
	for _, c := range e.Children() {
		if !c.Type().Equals(sql.Boolean) {
			return false
		}
	}
	return true
}

func allSameType(args []sql.Expression) bool {
	if len(args) == 0 {
		return true
	}
	t := args[0].Type()
	for _, a := range args[1:] {
		if !a.Type().Equals(t) {
			return false
		}
	}
	return true
}
