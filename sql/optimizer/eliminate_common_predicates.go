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

// EliminateCommonPredicates collapses `a AND a` and `a OR a` to `a`, and
// rewrites `If(c, x, x)` to `Coalesce(c, x)` -- preserving c's evaluation
// (and thus its contribution to nullability) while dropping the redundant
// branch.
func EliminateCommonPredicates(ctx *sql.Context, n sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
	span, _ := ctx.Span("eliminate_common_predicates")
	defer span.Finish()

	return transform.NodeDown(n, func(node sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
		return transform.NodeExprsDown(node, eliminateCommonPredicateExpr)
	})
}

func eliminateCommonPredicateExpr(e sql.Expression) (sql.Expression, transform.TreeIdentity, error) {
	switch x := e.(type) {
	case *expression.And:
		if sql.SameOrEqual(x.Left, x.Right) {
			return x.Left, transform.NewTree, nil
		}
	case *expression.Or:
		if sql.SameOrEqual(x.Left, x.Right) {
			return x.Left, transform.NewTree, nil
		}
	case *expression.If:
		if sql.SameOrEqual(x.Yes, x.No) {
			return expression.NewCoalesce(x.Cond, x.Yes), transform.NewTree, nil
		}
	}
	return e, transform.SameTree, nil
}
