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
	"fmt"

	"github.com/quillsql/planner/sql"
	"github.com/quillsql/planner/sql/expression"
	"github.com/quillsql/planner/sql/transform"
)

// ResolveReferences resolves every UnresolvedAttribute against the union of
// its enclosing node's children's output attributes, by name (optionally
// qualified by source). Zero candidates or more than one is a resolution
// failure. Grounded on gitbase's resolveColumns/qualifyColumns
// (sql/analyzer/rules.go).
func ResolveReferences(ctx *sql.Context, n sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
	span, _ := ctx.Span("resolve_references")
	defer span.Finish()

	return transform.Node(n, func(node sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
		for _, c := range node.Children() {
			if !c.Resolved() {
				return node, transform.SameTree, nil
			}
		}

		scope := scopeOutput(node)
		if len(scope) == 0 {
			return node, transform.SameTree, nil
		}

		return transform.NodeExprsUp(node, func(e sql.Expression) (sql.Expression, transform.TreeIdentity, error) {
			u, ok := e.(*expression.UnresolvedAttribute)
			if !ok {
				return e, transform.SameTree, nil
			}
			resolved, err := resolveAttribute(u, scope)
			if err != nil {
				return e, transform.SameTree, err
			}
			return resolved, transform.NewTree, nil
		})
	})
}

// scopeOutput is the union of attributes visible to an expression slot at
// node: every attribute every direct child of node exposes.
func scopeOutput(node sql.LogicalPlan) []sql.Attribute {
	var out []sql.Attribute
	for _, c := range node.Children() {
		out = append(out, c.Output()...)
	}
	return out
}

func resolveAttribute(u *expression.UnresolvedAttribute, scope []sql.Attribute) (sql.Expression, error) {
	var matches []sql.Attribute
	for _, attr := range scope {
		if attr.Name != u.NameVal {
			continue
		}
		if u.SourceVal != "" && attr.Source != u.SourceVal {
			continue
		}
		matches = append(matches, attr)
	}

	switch len(matches) {
	case 0:
		return nil, sql.ErrResolutionFailure.New(u.String(), "no matching column in scope")
	case 1:
		m := matches[0]
		return expression.NewAttributeRefWithID(m.Name, m.Source, m.Type, m.Nullable, m.ID), nil
	default:
		return nil, sql.ErrResolutionFailure.New(u.String(), fmt.Sprintf("ambiguous: %d matching columns in scope", len(matches)))
	}
}
