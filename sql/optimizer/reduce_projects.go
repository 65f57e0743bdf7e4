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

// ReduceProjects drops a Project that merely re-states its child's output
// (an identity projection, usually left behind by an eliminated Subquery or
// a no-op star expansion), and merges a Project stacked directly over
// another Project into one, rewriting the outer projections in terms of
// the inner's so the inner layer can be dropped.
func ReduceProjects(ctx *sql.Context, n sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
	span, _ := ctx.Span("reduce_projects")
	defer span.Finish()

	return transform.NodeDown(n, func(node sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
		p, ok := node.(*plan.Project)
		if !ok {
			return node, transform.SameTree, nil
		}

		if sameAsOutput(p.Projections, p.Child.Output()) {
			return p.Child, transform.NewTree, nil
		}

		inner, ok := p.Child.(*plan.Project)
		if !ok {
			return node, transform.SameTree, nil
		}

		subs := make(map[sql.ColumnID]sql.Expression, len(inner.Projections))
		innerOutput := inner.Output()
		for i, proj := range inner.Projections {
			subs[innerOutput[i].ID] = proj
		}

		merged := make([]sql.Expression, len(p.Projections))
		for i, proj := range p.Projections {
			newProj, err := substituteAttributeRefs(proj, subs)
			if err != nil {
				return node, transform.SameTree, err
			}
			merged[i] = newProj
		}

		return plan.NewProject(merged, inner.Child), transform.NewTree, nil
	})
}

// sameAsOutput reports whether projections is exactly the sequence of bare
// AttributeRefs naming output, in order -- i.e. the Project changes nothing.
func sameAsOutput(projections []sql.Expression, output []sql.Attribute) bool {
	if len(projections) != len(output) {
		return false
	}
	for i, proj := range projections {
		ref, ok := proj.(*expression.AttributeRef)
		if !ok || ref.ID != output[i].ID {
			return false
		}
	}
	return true
}
