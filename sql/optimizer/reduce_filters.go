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

// ReduceFilters merges a Filter stacked directly over another Filter into a
// single Filter ANDing both conditions, in inner-first order so
// short-circuit evaluation still sees the inner condition first.
func ReduceFilters(ctx *sql.Context, n sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
	span, _ := ctx.Span("reduce_filters")
	defer span.Finish()

	return transform.NodeDown(n, func(node sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
		outer, ok := node.(*plan.Filter)
		if !ok {
			return node, transform.SameTree, nil
		}
		inner, ok := outer.Child.(*plan.Filter)
		if !ok {
			return node, transform.SameTree, nil
		}
		return plan.NewFilter(expression.NewAnd(inner.Condition, outer.Condition), inner.Child), transform.NewTree, nil
	})
}
