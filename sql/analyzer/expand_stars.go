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
	"github.com/quillsql/planner/sql/expression"
	"github.com/quillsql/planner/sql/plan"
	"github.com/quillsql/planner/sql/transform"
)

// ExpandStars replaces a Star projection with one AttributeRef per column
// of the Project's child, once the child itself is resolved. Grounded on
// gitbase's resolveStar rule referenced in sql/analyzer/rules.go.
func ExpandStars(ctx *sql.Context, n sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
	span, _ := ctx.Span("expand_stars")
	defer span.Finish()

	return transform.Node(n, func(node sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
		p, ok := node.(*plan.Project)
		if !ok || !containsStar(p.Projections) || !p.Child.Resolved() {
			return node, transform.SameTree, nil
		}

		expanded := make([]sql.Expression, 0, len(p.Projections))
		for _, e := range p.Projections {
			if _, ok := e.(expression.Star); !ok {
				expanded = append(expanded, e)
				continue
			}
			for _, attr := range p.Child.Output() {
				expanded = append(expanded, expression.NewAttributeRefWithID(
					attr.Name, attr.Source, attr.Type, attr.Nullable, attr.ID))
			}
		}

		newN, err := p.WithExpressions(expanded...)
		if err != nil {
			return node, transform.SameTree, err
		}
		return newN, transform.NewTree, nil
	})
}

func containsStar(exprs []sql.Expression) bool {
	for _, e := range exprs {
		if _, ok := e.(expression.Star); ok {
			return true
		}
	}
	return false
}
