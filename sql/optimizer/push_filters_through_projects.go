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

// PushFiltersThroughProjects moves a Filter below the Project it sits
// above, rewriting the condition in terms of the Project's own
// expressions, so a later rule (PushFiltersThroughJoins) can see the
// filter next to the relations it restricts instead of above a
// column-renaming layer.
func PushFiltersThroughProjects(ctx *sql.Context, n sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
	span, _ := ctx.Span("push_filters_through_projects")
	defer span.Finish()

	return transform.NodeDown(n, func(node sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
		f, ok := node.(*plan.Filter)
		if !ok {
			return node, transform.SameTree, nil
		}
		p, ok := f.Child.(*plan.Project)
		if !ok {
			return node, transform.SameTree, nil
		}

		subs := make(map[sql.ColumnID]sql.Expression, len(p.Projections))
		output := p.Output()
		for i, proj := range p.Projections {
			subs[output[i].ID] = proj
		}

		newCond, err := substituteAttributeRefs(f.Condition, subs)
		if err != nil {
			return node, transform.SameTree, err
		}

		pushed := plan.NewFilter(newCond, p.Child)
		return plan.NewProject(p.Projections, pushed), transform.NewTree, nil
	})
}
