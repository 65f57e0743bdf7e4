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

	"github.com/quillsql/planner/sql"
	"github.com/quillsql/planner/sql/expression"
)

// Filter keeps only the rows of its child for which Condition evaluates
// true. Mirrors the teacher's plan.NewFilter.
type Filter struct {
	UnaryNode
	Condition sql.Expression
}

var _ sql.LogicalPlan = (*Filter)(nil)
var _ sql.Expressioner = (*Filter)(nil)

func NewFilter(condition sql.Expression, child sql.LogicalPlan) *Filter {
	return &Filter{UnaryNode: UnaryNode{Child: child}, Condition: condition}
}

func (f *Filter) Expressions() []sql.Expression { return []sql.Expression{f.Condition} }

func (f *Filter) WithExpressions(exprs ...sql.Expression) (sql.LogicalPlan, error) {
	if len(exprs) != 1 {
		return nil, wrongChildren("Filter.Expressions", len(exprs), 1)
	}
	return NewFilter(exprs[0], f.Child), nil
}

func (f *Filter) WithChildren(children ...sql.LogicalPlan) (sql.LogicalPlan, error) {
	if len(children) != 1 {
		return nil, wrongChildren("Filter", len(children), 1)
	}
	nf := *f
	nf.Child = children[0]
	return &nf, nil
}

func (f *Filter) Output() []sql.Attribute { return passthroughOutput(f.Child) }

func (f *Filter) References() map[sql.ColumnID]struct{} { return f.Condition.References() }

func (f *Filter) Resolved() bool { return f.Child.Resolved() && f.Condition.Resolved() }

func (f *Filter) StrictlyTyped() bool {
	return f.Resolved() && f.Child.StrictlyTyped() &&
		f.Condition.Type().Equals(sql.Boolean) && expression.IsStrictlyTyped(f.Condition)
}

func (f *Filter) String() string { return fmt.Sprintf("Filter(%s)", f.Condition.String()) }

func (f *Filter) DebugString() string {
	return fmt.Sprintf("Filter(%s)\n%s", f.Condition.DebugString(), indent(sql.PrettyTree(f.Child)))
}
