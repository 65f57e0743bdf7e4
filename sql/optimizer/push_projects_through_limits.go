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

// PushProjectsThroughLimits moves a Project below the Limit it sits above.
// Limit doesn't care which columns flow through it, so narrowing the row
// shape before the cap is applied is free and lets a storage layer trim
// columns it reads before it even finds the Limit.
func PushProjectsThroughLimits(ctx *sql.Context, n sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
	span, _ := ctx.Span("push_projects_through_limits")
	defer span.Finish()

	return transform.NodeDown(n, func(node sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
		p, ok := node.(*plan.Project)
		if !ok {
			return node, transform.SameTree, nil
		}
		l, ok := p.Child.(*plan.Limit)
		if !ok {
			return node, transform.SameTree, nil
		}
		return plan.NewLimit(l.Count, plan.NewProject(p.Projections, l.Child)), transform.NewTree, nil
	})
}
