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
	"strings"

	"github.com/quillsql/planner/sql"
)

// If evaluates Cond and returns Yes's value when Cond is true, No's value
// otherwise (a NULL or false condition both take the No branch, matching
// SQL CASE WHEN semantics).
type If struct {
	Cond sql.Expression
	Yes  sql.Expression
	No   sql.Expression
}

var _ sql.Expression = (*If)(nil)

func NewIf(cond, yes, no sql.Expression) *If {
	return &If{Cond: cond, Yes: yes, No: no}
}

func (i *If) Type() sql.Type { return i.Yes.Type() }

func (i *If) IsNullable() bool { return i.Yes.IsNullable() || i.No.IsNullable() }

func (i *If) Resolved() bool {
	return i.Cond.Resolved() && i.Yes.Resolved() && i.No.Resolved()
}

func (i *If) Foldable() bool {
	return i.Cond.Foldable() && i.Yes.Foldable() && i.No.Foldable()
}

func (i *If) Eval() (interface{}, error) {
	c, err := i.Cond.Eval()
	if err != nil {
		return nil, err
	}
	if !sql.IsNullValue(c) && c.(bool) {
		return i.Yes.Eval()
	}
	return i.No.Eval()
}

func (i *If) Children() []sql.Expression { return []sql.Expression{i.Cond, i.Yes, i.No} }

func (i *If) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 3 {
		return nil, sql.ErrInternal.New(fmt.Sprintf("If: wrong number of children: %d", len(children)))
	}
	return &If{Cond: children[0], Yes: children[1], No: children[2]}, nil
}

func (i *If) References() map[sql.ColumnID]struct{} {
	out := make(map[sql.ColumnID]struct{})
	for id := range i.Cond.References() {
		out[id] = struct{}{}
	}
	for id := range i.Yes.References() {
		out[id] = struct{}{}
	}
	for id := range i.No.References() {
		out[id] = struct{}{}
	}
	return out
}

func (i *If) String() string {
	return fmt.Sprintf("IF(%s, %s, %s)", i.Cond.String(), i.Yes.String(), i.No.String())
}

func (i *If) DebugString() string {
	return fmt.Sprintf("IF(%s, %s, %s)", i.Cond.DebugString(), i.Yes.DebugString(), i.No.DebugString())
}

// Coalesce returns the value of the first of its Args that isn't NULL, or
// NULL if all of them are.
type Coalesce struct {
	Args []sql.Expression
}

var _ sql.Expression = (*Coalesce)(nil)

func NewCoalesce(args ...sql.Expression) *Coalesce {
	return &Coalesce{Args: args}
}

func (c *Coalesce) Type() sql.Type {
	if len(c.Args) == 0 {
		return sql.Invalid
	}
	return c.Args[0].Type()
}

// IsNullable is false only if some argument is guaranteed non-null; a
// COALESCE can only ever return NULL when every argument could be NULL.
func (c *Coalesce) IsNullable() bool {
	for _, a := range c.Args {
		if !a.IsNullable() {
			return false
		}
	}
	return true
}

func (c *Coalesce) Resolved() bool {
	for _, a := range c.Args {
		if !a.Resolved() {
			return false
		}
	}
	return true
}

func (c *Coalesce) Foldable() bool {
	for _, a := range c.Args {
		if !a.Foldable() {
			return false
		}
	}
	return true
}

func (c *Coalesce) Eval() (interface{}, error) {
	for _, a := range c.Args {
		v, err := a.Eval()
		if err != nil {
			return nil, err
		}
		if !sql.IsNullValue(v) {
			return v, nil
		}
	}
	return sql.Null, nil
}

func (c *Coalesce) Children() []sql.Expression { return c.Args }

func (c *Coalesce) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != len(c.Args) {
		return nil, sql.ErrInternal.New(fmt.Sprintf("Coalesce: wrong number of children: %d", len(children)))
	}
	return &Coalesce{Args: children}, nil
}

func (c *Coalesce) References() map[sql.ColumnID]struct{} {
	out := make(map[sql.ColumnID]struct{})
	for _, a := range c.Args {
		for id := range a.References() {
			out[id] = struct{}{}
		}
	}
	return out
}

func (c *Coalesce) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("COALESCE(%s)", strings.Join(parts, ", "))
}

func (c *Coalesce) DebugString() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.DebugString()
	}
	return fmt.Sprintf("COALESCE(%s)", strings.Join(parts, ", "))
}

// IsNull and IsNotNull are null-tests: unlike every other expression in
// this algebra, they never themselves evaluate to NULL (spec.md §3's
// three-valued-logic invariant).
type IsNull struct {
	sql.UnaryExpression
}

var _ sql.Expression = (*IsNull)(nil)

func NewIsNull(child sql.Expression) *IsNull { return &IsNull{sql.UnaryExpression{Child: child}} }

func (n *IsNull) Type() sql.Type   { return sql.Boolean }
func (n *IsNull) IsNullable() bool { return false }

func (n *IsNull) Eval() (interface{}, error) {
	v, err := n.Child.Eval()
	if err != nil {
		return nil, err
	}
	return sql.IsNullValue(v), nil
}

func (n *IsNull) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 1 {
		return nil, sql.ErrInternal.New(fmt.Sprintf("IsNull: wrong number of children: %d", len(children)))
	}
	return &IsNull{sql.UnaryExpression{Child: children[0]}}, nil
}

func (n *IsNull) String() string      { return fmt.Sprintf("%s IS NULL", n.Child.String()) }
func (n *IsNull) DebugString() string { return fmt.Sprintf("%s IS NULL", n.Child.DebugString()) }

type IsNotNull struct {
	sql.UnaryExpression
}

var _ sql.Expression = (*IsNotNull)(nil)

func NewIsNotNull(child sql.Expression) *IsNotNull {
	return &IsNotNull{sql.UnaryExpression{Child: child}}
}

func (n *IsNotNull) Type() sql.Type   { return sql.Boolean }
func (n *IsNotNull) IsNullable() bool { return false }

func (n *IsNotNull) Eval() (interface{}, error) {
	v, err := n.Child.Eval()
	if err != nil {
		return nil, err
	}
	return !sql.IsNullValue(v), nil
}

func (n *IsNotNull) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 1 {
		return nil, sql.ErrInternal.New(fmt.Sprintf("IsNotNull: wrong number of children: %d", len(children)))
	}
	return &IsNotNull{sql.UnaryExpression{Child: children[0]}}, nil
}

func (n *IsNotNull) String() string { return fmt.Sprintf("%s IS NOT NULL", n.Child.String()) }
func (n *IsNotNull) DebugString() string {
	return fmt.Sprintf("%s IS NOT NULL", n.Child.DebugString())
}
