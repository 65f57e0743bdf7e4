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

package analyzer

import (
	"github.com/quillsql/planner/sql"
	"github.com/quillsql/planner/sql/plan"
	"github.com/quillsql/planner/sql/transform"
)

// EliminateSubqueries strips every plan.Subquery wrapper out of a fully
// resolved tree, replacing it with its child, whose attribute ids match the
// Subquery's re-sourced Output. It runs as its
// own Once batch after the resolution batch has reached a fixed point, so
// every outer reference that needed to qualify against a subquery's alias
// has already been resolved against the still-present Subquery node's
// re-sourced Output -- stripping it any earlier would erase the
// qualification before ResolveReferences had a chance to use it. Grounded
// on gitbase's resolveSubqueries / StripPassthroughNodes
// (resolve_subqueries.go).
func EliminateSubqueries(ctx *sql.Context, n sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
	span, _ := ctx.Span("eliminate_subqueries")
	defer span.Finish()

	return transform.Node(n, func(node sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
		s, ok := node.(*plan.Subquery)
		if !ok || !s.Child.Resolved() {
			return node, transform.SameTree, nil
		}
		return s.Child, transform.NewTree, nil
	})
}
