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
	"github.com/quillsql/planner/sql/plan"
	"github.com/quillsql/planner/sql/transform"
)

// FoldConstantFilters drops a Filter whose condition is the literal True,
// and replaces a Filter whose condition is the literal False with an empty
// relation carrying the same schema -- a statically-known-empty Filter
// produces zero rows no matter what its child would have produced.
func FoldConstantFilters(ctx *sql.Context, n sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
	span, _ := ctx.Span("fold_constant_filters")
	defer span.Finish()

	return transform.NodeDown(n, func(node sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
		f, ok := node.(*plan.Filter)
		if !ok {
			return node, transform.SameTree, nil
		}
		if isBoolLiteral(f.Condition, true) {
			return f.Child, transform.NewTree, nil
		}
		if isBoolLiteral(f.Condition, false) {
			return plan.NewEmptyLocalRelation(f.Child.Output()), transform.NewTree, nil
		}
		return node, transform.SameTree, nil
	})
}
