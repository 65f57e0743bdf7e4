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

package optimizer

import (
	"github.com/quillsql/planner/sql"
	"github.com/quillsql/planner/sql/expression"
	"github.com/quillsql/planner/sql/transform"
)

// NullPropagation collapses expressions whose null-ness is already decided
// statically: an Arithmetic or Comparison with a null-literal operand is
// always null, IsNull/IsNotNull on a non-nullable child is a static
// true/false, and a single-argument Coalesce reduces to its argument (or to
// a typed null if that argument is itself a null literal).
//
// And and Or are not collapsed: they follow three-valued logic, so
// FALSE AND NULL is FALSE and TRUE OR NULL is TRUE. Arithmetic and
// Comparison are null-strict, since this algebra has no `<=>`-style
// null-safe comparator.
func NullPropagation(ctx *sql.Context, n sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
	span, _ := ctx.Span("null_propagation")
	defer span.Finish()

	return transform.NodeDown(n, func(node sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
		return transform.NodeExprsDown(node, nullPropagationExpr)
	})
}

func nullPropagationExpr(e sql.Expression) (sql.Expression, transform.TreeIdentity, error) {
	switch x := e.(type) {
	case *expression.IsNull:
		if !x.Child.IsNullable() {
			return falseLiteral(), transform.NewTree, nil
		}
		return e, transform.SameTree, nil
	case *expression.IsNotNull:
		if !x.Child.IsNullable() {
			return trueLiteral(), transform.NewTree, nil
		}
		return e, transform.SameTree, nil
	case *expression.Coalesce:
		if len(x.Args) == 1 {
			if isNullLiteral(x.Args[0]) {
				return expression.NewCast(expression.NewNullLiteral(sql.Invalid), x.Type()), transform.NewTree, nil
			}
			if !x.Args[0].IsNullable() {
				return x.Args[0], transform.NewTree, nil
			}
		}
		return e, transform.SameTree, nil
	}

	if isBinaryOperator(e) {
		children := e.Children()
		if len(children) == 2 && (isNullLiteral(children[0]) || isNullLiteral(children[1])) {
			return expression.NewCast(expression.NewNullLiteral(sql.Invalid), e.Type()), transform.NewTree, nil
		}
	}
	return e, transform.SameTree, nil
}

// isBinaryOperator reports whether e is one of the null-strict binary
// operators, Arithmetic or Comparison.
func isBinaryOperator(e sql.Expression) bool {
	switch e.(type) {
	case *expression.Arithmetic, *expression.Comparison:
		return true
	default:
		return false
	}
}
