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

// FoldLogicalPredicates simplifies boolean expressions with a literal
// operand: True/x disjunctions collapse to True, False/x conjunctions
// collapse to False, a op a collapses to a, and If on a literal condition
// collapses to the taken branch.
func FoldLogicalPredicates(ctx *sql.Context, n sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
	span, _ := ctx.Span("fold_logical_predicates")
	defer span.Finish()

	return transform.NodeDown(n, func(node sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
		return transform.NodeExprsDown(node, foldLogicalPredicateExpr)
	})
}

func foldLogicalPredicateExpr(e sql.Expression) (sql.Expression, transform.TreeIdentity, error) {
	switch x := e.(type) {
	case *expression.Or:
		if isBoolLiteral(x.Left, true) || isBoolLiteral(x.Right, true) {
			return trueLiteral(), transform.NewTree, nil
		}
		if sql.SameOrEqual(x.Left, x.Right) {
			return x.Left, transform.NewTree, nil
		}
	case *expression.And:
		if isBoolLiteral(x.Left, false) || isBoolLiteral(x.Right, false) {
			return falseLiteral(), transform.NewTree, nil
		}
		if sql.SameOrEqual(x.Left, x.Right) {
			return x.Left, transform.NewTree, nil
		}
	case *expression.If:
		if isBoolLiteral(x.Cond, true) {
			return x.Yes, transform.NewTree, nil
		}
		if isBoolLiteral(x.Cond, false) {
			return x.No, transform.NewTree, nil
		}
	}
	return e, transform.SameTree, nil
}
