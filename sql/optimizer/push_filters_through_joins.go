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
	"github.com/quillsql/planner/sql/plan"
	"github.com/quillsql/planner/sql/transform"
)

// PushFiltersThroughJoins first folds a Filter sitting directly over an
// InnerJoin into the join's condition, then splits an InnerJoin's condition
// into its CNF conjuncts and sinks each conjunct to the side of the join whose attributes
// it refers to exclusively, leaving only the conjuncts that reference both
// sides in the join's own condition. Restricted to InnerJoin: sinking a
// conjunct below an outer join's null-extended side would change which rows
// the join produces, not just filter them after the fact.
func PushFiltersThroughJoins(ctx *sql.Context, n sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
	span, _ := ctx.Span("push_filters_through_joins")
	defer span.Finish()

	return transform.NodeDown(n, func(node sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
		merged := transform.SameTree
		if f, ok := node.(*plan.Filter); ok {
			if fj, ok := f.Child.(*plan.Join); ok && fj.Type == plan.InnerJoin {
				cond := f.Condition
				if fj.Condition != nil {
					cond = expression.NewAnd(fj.Condition, f.Condition)
				}
				node, merged = plan.NewJoin(fj.Left, fj.Right, plan.InnerJoin, cond), transform.NewTree
			}
		}

		j, ok := node.(*plan.Join)
		if !ok || j.Type != plan.InnerJoin || j.Condition == nil {
			return node, merged, nil
		}

		conjuncts := expression.SplitConjunction(toCNF(j.Condition))
		leftIDs := attributeIDSet(j.Left.Output())
		rightIDs := attributeIDSet(j.Right.Output())

		var leftConds, rightConds, joinConds []sql.Expression
		for _, c := range conjuncts {
			refs := c.References()
			switch {
			case sql.RefsSubsetOf(refs, leftIDs):
				leftConds = append(leftConds, c)
			case sql.RefsSubsetOf(refs, rightIDs):
				rightConds = append(rightConds, c)
			default:
				joinConds = append(joinConds, c)
			}
		}

		if len(leftConds) == 0 && len(rightConds) == 0 {
			return node, merged, nil
		}

		newLeft := j.Left
		if len(leftConds) > 0 {
			newLeft = plan.NewFilter(expression.JoinAnd(leftConds...), j.Left)
		}
		newRight := j.Right
		if len(rightConds) > 0 {
			newRight = plan.NewFilter(expression.JoinAnd(rightConds...), j.Right)
		}

		return plan.NewJoin(newLeft, newRight, plan.InnerJoin, expression.JoinAnd(joinConds...)), transform.NewTree, nil
	})
}
