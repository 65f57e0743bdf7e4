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
)

// Limit caps the number of rows its child produces to the value of Count.
// Mirrors the teacher's plan.NewLimit.
type Limit struct {
	UnaryNode
	Count sql.Expression
}

var _ sql.LogicalPlan = (*Limit)(nil)
var _ sql.Expressioner = (*Limit)(nil)

func NewLimit(count sql.Expression, child sql.LogicalPlan) *Limit {
	return &Limit{UnaryNode: UnaryNode{Child: child}, Count: count}
}

func (l *Limit) Expressions() []sql.Expression { return []sql.Expression{l.Count} }

func (l *Limit) WithExpressions(exprs ...sql.Expression) (sql.LogicalPlan, error) {
	if len(exprs) != 1 {
		return nil, wrongChildren("Limit.Expressions", len(exprs), 1)
	}
	return NewLimit(exprs[0], l.Child), nil
}

func (l *Limit) WithChildren(children ...sql.LogicalPlan) (sql.LogicalPlan, error) {
	if len(children) != 1 {
		return nil, wrongChildren("Limit", len(children), 1)
	}
	nl := *l
	nl.Child = children[0]
	return &nl, nil
}

func (l *Limit) Output() []sql.Attribute { return passthroughOutput(l.Child) }

func (l *Limit) References() map[sql.ColumnID]struct{} { return l.Count.References() }

func (l *Limit) Resolved() bool { return l.Child.Resolved() && l.Count.Resolved() }

func (l *Limit) StrictlyTyped() bool {
	return l.Resolved() && l.Child.StrictlyTyped() && l.Count.Type().Equals(sql.Int64)
}

func (l *Limit) String() string { return fmt.Sprintf("Limit(%s)", l.Count.String()) }

func (l *Limit) DebugString() string {
	return fmt.Sprintf("Limit(%s)\n%s", l.Count.DebugString(), indent(sql.PrettyTree(l.Child)))
}
