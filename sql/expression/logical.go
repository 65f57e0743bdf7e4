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

package expression

import (
	"fmt"

	"github.com/quillsql/planner/sql"
)

// Not negates a boolean child, following Kleene's three-valued logic:
// NOT NULL is NULL.
type Not struct {
	sql.UnaryExpression
}

var _ sql.Expression = (*Not)(nil)

func NewNot(child sql.Expression) *Not {
	return &Not{sql.UnaryExpression{Child: child}}
}

func (n *Not) Type() sql.Type { return sql.Boolean }

func (n *Not) IsNullable() bool { return n.Child.IsNullable() }

func (n *Not) Eval() (interface{}, error) {
	v, err := n.Child.Eval()
	if err != nil {
		return nil, err
	}
	if sql.IsNullValue(v) {
		return sql.Null, nil
	}
	return !v.(bool), nil
}

func (n *Not) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 1 {
		return nil, sql.ErrInternal.New(fmt.Sprintf("Not: wrong number of children: %d", len(children)))
	}
	return &Not{sql.UnaryExpression{Child: children[0]}}, nil
}

func (n *Not) String() string      { return fmt.Sprintf("NOT(%s)", n.Child.String()) }
func (n *Not) DebugString() string { return fmt.Sprintf("NOT(%s)", n.Child.DebugString()) }

// And is boolean conjunction under Kleene's three-valued logic: False
// dominates (False AND anything is False, even NULL); otherwise NULL
// dominates; True AND True is True.
type And struct {
	sql.BinaryExpression
}

var _ sql.Expression = (*And)(nil)

func NewAnd(left, right sql.Expression) *And {
	return &And{sql.BinaryExpression{Left: left, Right: right}}
}

func (a *And) Type() sql.Type { return sql.Boolean }

func (a *And) IsNullable() bool { return a.Left.IsNullable() || a.Right.IsNullable() }

func (a *And) Eval() (interface{}, error) {
	l, err := a.Left.Eval()
	if err != nil {
		return nil, err
	}
	if !sql.IsNullValue(l) && !l.(bool) {
		return false, nil
	}
	r, err := a.Right.Eval()
	if err != nil {
		return nil, err
	}
	if !sql.IsNullValue(r) && !r.(bool) {
		return false, nil
	}
	if sql.IsNullValue(l) || sql.IsNullValue(r) {
		return sql.Null, nil
	}
	return true, nil
}

func (a *And) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 2 {
		return nil, sql.ErrInternal.New(fmt.Sprintf("And: wrong number of children: %d", len(children)))
	}
	return &And{sql.BinaryExpression{Left: children[0], Right: children[1]}}, nil
}

func (a *And) String() string {
	return fmt.Sprintf("(%s AND %s)", a.Left.String(), a.Right.String())
}
func (a *And) DebugString() string {
	return fmt.Sprintf("(%s AND %s)", a.Left.DebugString(), a.Right.DebugString())
}

// Or is boolean disjunction under Kleene's three-valued logic: True
// dominates; otherwise NULL dominates; False OR False is False.
type Or struct {
	sql.BinaryExpression
}

var _ sql.Expression = (*Or)(nil)

func NewOr(left, right sql.Expression) *Or {
	return &Or{sql.BinaryExpression{Left: left, Right: right}}
}

func (o *Or) Type() sql.Type { return sql.Boolean }

func (o *Or) IsNullable() bool { return o.Left.IsNullable() || o.Right.IsNullable() }

func (o *Or) Eval() (interface{}, error) {
	l, err := o.Left.Eval()
	if err != nil {
		return nil, err
	}
	if !sql.IsNullValue(l) && l.(bool) {
		return true, nil
	}
	r, err := o.Right.Eval()
	if err != nil {
		return nil, err
	}
	if !sql.IsNullValue(r) && r.(bool) {
		return true, nil
	}
	if sql.IsNullValue(l) || sql.IsNullValue(r) {
		return sql.Null, nil
	}
	return false, nil
}

func (o *Or) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 2 {
		return nil, sql.ErrInternal.New(fmt.Sprintf("Or: wrong number of children: %d", len(children)))
	}
	return &Or{sql.BinaryExpression{Left: children[0], Right: children[1]}}, nil
}

func (o *Or) String() string {
	return fmt.Sprintf("(%s OR %s)", o.Left.String(), o.Right.String())
}
func (o *Or) DebugString() string {
	return fmt.Sprintf("(%s OR %s)", o.Left.DebugString(), o.Right.DebugString())
}

// JoinAnd folds a list of expressions into a right-associated conjunction,
// mirroring the teacher's expression.JoinAnd (used in the gitbase-vendored
// sql/analyzer/rules.go's pushdown rule). Returns nil for an empty list and
// the lone expression unwrapped for a single-element list.
func JoinAnd(exprs ...sql.Expression) sql.Expression {
	if len(exprs) == 0 {
		return nil
	}
	if len(exprs) == 1 {
		return exprs[0]
	}
	result := exprs[len(exprs)-1]
	for i := len(exprs) - 2; i >= 0; i-- {
		result = NewAnd(exprs[i], result)
	}
	return result
}

// SplitConjunction flattens a tree of Ands into its leaf conjuncts, the
// inverse of JoinAnd. Used by PushFiltersThroughJoins to partition a join
// condition's conjuncts and by CNFConversion to count them.
func SplitConjunction(e sql.Expression) []sql.Expression {
	and, ok := e.(*And)
	if !ok {
		return []sql.Expression{e}
	}
	return append(SplitConjunction(and.Left), SplitConjunction(and.Right)...)
}
