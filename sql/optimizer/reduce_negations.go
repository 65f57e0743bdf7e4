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

// ReduceNegations simplifies Not expressions: double negation collapses,
// a negated comparison inverts, If inverts its branches under a negated
// condition, `a AND NOT a` is False, `a OR NOT a` is True, and `NOT IsNull`
// / `NOT IsNotNull` swap to their counterpart.
func ReduceNegations(ctx *sql.Context, n sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
	span, _ := ctx.Span("reduce_negations")
	defer span.Finish()

	return transform.NodeDown(n, func(node sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
		return transform.NodeExprsDown(node, reduceNegationExpr)
	})
}

func reduceNegationExpr(e sql.Expression) (sql.Expression, transform.TreeIdentity, error) {
	switch x := e.(type) {
	case *expression.Not:
		switch y := x.Child.(type) {
		case *expression.Not:
			return y.Child, transform.NewTree, nil
		case *expression.Comparison:
			return y.Negate(), transform.NewTree, nil
		case *expression.IsNull:
			return expression.NewIsNotNull(y.Child), transform.NewTree, nil
		case *expression.IsNotNull:
			return expression.NewIsNull(y.Child), transform.NewTree, nil
		}
	case *expression.If:
		if not, ok := x.Cond.(*expression.Not); ok {
			return expression.NewIf(not.Child, x.No, x.Yes), transform.NewTree, nil
		}
	case *expression.And:
		if isNegationOf(x.Left, x.Right) || isNegationOf(x.Right, x.Left) {
			return falseLiteral(), transform.NewTree, nil
		}
	case *expression.Or:
		if isNegationOf(x.Left, x.Right) || isNegationOf(x.Right, x.Left) {
			return trueLiteral(), transform.NewTree, nil
		}
	}
	return e, transform.SameTree, nil
}

// isNegationOf reports whether maybeNot is `NOT other` (modulo alias
// naming).
func isNegationOf(maybeNot, other sql.Expression) bool {
	n, ok := maybeNot.(*expression.Not)
	return ok && sql.SameOrEqual(n.Child, other)
}
