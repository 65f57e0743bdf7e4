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

package plan

import (
	"fmt"
	"strings"

	"github.com/quillsql/planner/sql"
	"github.com/quillsql/planner/sql/expression"
)

// Project computes an ordered sequence of expressions over its child.
// Mirrors the teacher's plan.NewProject (see analyzer_test.go).
type Project struct {
	UnaryNode
	Projections []sql.Expression
	outputCache []sql.Attribute
}

var _ sql.LogicalPlan = (*Project)(nil)
var _ sql.Expressioner = (*Project)(nil)

// NewProject builds a Project of projections over child. Output attributes
// are computed once here: AttributeRef and Alias projections keep their own
// ids, so Output is stable across rewrites that only change the child
// (spec.md §3's "output attribute ids are stable across rewrites that do
// not reconstruct aliases").
func NewProject(projections []sql.Expression, child sql.LogicalPlan) *Project {
	return &Project{
		UnaryNode:   UnaryNode{Child: child},
		Projections: projections,
		outputCache: computeProjectOutput(projections),
	}
}

func computeProjectOutput(projections []sql.Expression) []sql.Attribute {
	out := make([]sql.Attribute, len(projections))
	for i, p := range projections {
		out[i] = expression.ExprToAttribute(p)
	}
	return out
}

func (p *Project) Expressions() []sql.Expression { return p.Projections }

func (p *Project) WithExpressions(exprs ...sql.Expression) (sql.LogicalPlan, error) {
	if len(exprs) != len(p.Projections) {
		return nil, wrongChildren("Project.Expressions", len(exprs), len(p.Projections))
	}
	return NewProject(exprs, p.Child), nil
}

func (p *Project) WithChildren(children ...sql.LogicalPlan) (sql.LogicalPlan, error) {
	if len(children) != 1 {
		return nil, wrongChildren("Project", len(children), 1)
	}
	np := *p
	np.Child = children[0]
	return &np, nil
}

func (p *Project) Output() []sql.Attribute { return p.outputCache }

func (p *Project) References() map[sql.ColumnID]struct{} {
	out := make(map[sql.ColumnID]struct{})
	for _, e := range p.Projections {
		for id := range e.References() {
			out[id] = struct{}{}
		}
	}
	return out
}

func (p *Project) Resolved() bool {
	if !p.Child.Resolved() {
		return false
	}
	for _, e := range p.Projections {
		if !e.Resolved() {
			return false
		}
	}
	return true
}

func (p *Project) StrictlyTyped() bool {
	if !p.Resolved() || !p.Child.StrictlyTyped() {
		return false
	}
	for _, e := range p.Projections {
		if !expression.IsStrictlyTyped(e) {
			return false
		}
	}
	return true
}

func (p *Project) String() string {
	parts := make([]string, len(p.Projections))
	for i, e := range p.Projections {
		parts[i] = e.String()
	}
	return fmt.Sprintf("Project(%s)", strings.Join(parts, ", "))
}

func (p *Project) DebugString() string {
	parts := make([]string, len(p.Projections))
	for i, e := range p.Projections {
		parts[i] = e.DebugString()
	}
	return fmt.Sprintf("Project(%s)\n%s", strings.Join(parts, ", "), indent(sql.PrettyTree(p.Child)))
}

func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}
