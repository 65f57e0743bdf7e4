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

// ReduceLimits merges a Limit stacked directly over another Limit into one
// Limit over the inner's child, keeping whichever count is smaller -- a
// literal comparison folds away immediately in FoldConstants, but an
// unresolved or parameterized count is left as an If so the rule stays
// correct without needing the counts to be constants.
func ReduceLimits(ctx *sql.Context, n sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
	span, _ := ctx.Span("reduce_limits")
	defer span.Finish()

	return transform.NodeDown(n, func(node sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
		outer, ok := node.(*plan.Limit)
		if !ok {
			return node, transform.SameTree, nil
		}
		inner, ok := outer.Child.(*plan.Limit)
		if !ok {
			return node, transform.SameTree, nil
		}
		count := expression.NewIf(expression.NewLessThan(outer.Count, inner.Count), outer.Count, inner.Count)
		return plan.NewLimit(count, inner.Child), transform.NewTree, nil
	})
}
