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

// JoinType names the four join kinds spec.md §3 enumerates.
type JoinType int

const (
	InnerJoin JoinType = iota
	LeftOuterJoin
	RightOuterJoin
	FullOuterJoin
)

func (t JoinType) String() string {
	switch t {
	case InnerJoin:
		return "Inner"
	case LeftOuterJoin:
		return "LeftOuter"
	case RightOuterJoin:
		return "RightOuter"
	case FullOuterJoin:
		return "FullOuter"
	default:
		return "UnknownJoin"
	}
}

// Join combines Left and Right row-wise under an optional Condition.
// Mirrors the teacher's plan.NewJoin / plan.NewInnerJoin family.
type Join struct {
	BinaryNode
	Type      JoinType
	Condition sql.Expression // nil for a cross join
}

var _ sql.LogicalPlan = (*Join)(nil)
var _ sql.Expressioner = (*Join)(nil)

func NewJoin(left, right sql.LogicalPlan, joinType JoinType, condition sql.Expression) *Join {
	return &Join{BinaryNode: BinaryNode{Left: left, Right: right}, Type: joinType, Condition: condition}
}

func NewCrossJoin(left, right sql.LogicalPlan) *Join {
	return NewJoin(left, right, InnerJoin, nil)
}

func (j *Join) Expressions() []sql.Expression {
	if j.Condition == nil {
		return nil
	}
	return []sql.Expression{j.Condition}
}

func (j *Join) WithExpressions(exprs ...sql.Expression) (sql.LogicalPlan, error) {
	switch len(exprs) {
	case 0:
		return NewJoin(j.Left, j.Right, j.Type, nil), nil
	case 1:
		return NewJoin(j.Left, j.Right, j.Type, exprs[0]), nil
	default:
		return nil, wrongChildren("Join.Expressions", len(exprs), 1)
	}
}

func (j *Join) WithChildren(children ...sql.LogicalPlan) (sql.LogicalPlan, error) {
	if len(children) != 2 {
		return nil, wrongChildren("Join", len(children), 2)
	}
	nj := *j
	nj.Left = children[0]
	nj.Right = children[1]
	return &nj, nil
}

// Output is the concatenation of Left's and Right's attributes, per spec.md
// §3's `Join(Inner).output = left.output ++ right.output`. For the outer
// variants the null-extended side's attributes are reported nullable,
// generalizing that rule the way a real optimizer's Schema() does.
func (j *Join) Output() []sql.Attribute {
	left := j.Left.Output()
	right := j.Right.Output()
	out := make([]sql.Attribute, 0, len(left)+len(right))
	leftNullable := j.Type == RightOuterJoin || j.Type == FullOuterJoin
	rightNullable := j.Type == LeftOuterJoin || j.Type == FullOuterJoin
	for _, a := range left {
		if leftNullable {
			a.Nullable = true
		}
		out = append(out, a)
	}
	for _, a := range right {
		if rightNullable {
			a.Nullable = true
		}
		out = append(out, a)
	}
	return out
}

func (j *Join) References() map[sql.ColumnID]struct{} {
	if j.Condition == nil {
		return nil
	}
	return j.Condition.References()
}

func (j *Join) Resolved() bool {
	if !j.Left.Resolved() || !j.Right.Resolved() {
		return false
	}
	return j.Condition == nil || j.Condition.Resolved()
}

func (j *Join) StrictlyTyped() bool {
	if !j.Resolved() || !j.Left.StrictlyTyped() || !j.Right.StrictlyTyped() {
		return false
	}
	if j.Condition == nil {
		return true
	}
	return j.Condition.Type().Equals(sql.Boolean) && expression.IsStrictlyTyped(j.Condition)
}

func (j *Join) String() string {
	if j.Condition == nil {
		return fmt.Sprintf("%sJoin", j.Type)
	}
	return fmt.Sprintf("%sJoin(%s)", j.Type, j.Condition.String())
}

func (j *Join) DebugString() string {
	cond := ""
	if j.Condition != nil {
		cond = j.Condition.DebugString()
	}
	return fmt.Sprintf("%sJoin(%s)\n%s\n%s", j.Type, cond,
		indent(sql.PrettyTree(j.Left)), indent(sql.PrettyTree(j.Right)))
}
