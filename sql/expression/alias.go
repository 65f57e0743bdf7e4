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

// Alias renames its child expression, minting a fresh ColumnID for the
// attribute it produces. Mirrors the teacher's expression.NewAlias (see
// analyzer_test.go: expression.NewAlias("foo", ...)).
type Alias struct {
	sql.UnaryExpression
	NameVal string
	ID      sql.ColumnID
}

var _ sql.Expression = (*Alias)(nil)

// NewAlias builds an Alias over child with a fresh id.
func NewAlias(name string, child sql.Expression) *Alias {
	return &Alias{UnaryExpression: sql.UnaryExpression{Child: child}, NameVal: name, ID: sql.NewColumnID()}
}

// NewAliasWithID builds an Alias carrying an existing id, used when a
// rewrite must preserve the outer alias identity (ReduceAliases).
func NewAliasWithID(name string, child sql.Expression, id sql.ColumnID) *Alias {
	return &Alias{UnaryExpression: sql.UnaryExpression{Child: child}, NameVal: name, ID: id}
}

func (a *Alias) Name() string { return a.NameVal }

func (a *Alias) Type() sql.Type { return a.Child.Type() }

func (a *Alias) IsNullable() bool { return a.Child.IsNullable() }

func (a *Alias) Eval() (interface{}, error) { return a.Child.Eval() }

func (a *Alias) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 1 {
		return nil, sql.ErrInternal.New(fmt.Sprintf("Alias: wrong number of children: %d", len(children)))
	}
	na := *a
	na.Child = children[0]
	return &na, nil
}

func (a *Alias) String() string {
	return fmt.Sprintf("%s AS %s", a.Child.String(), a.NameVal)
}

func (a *Alias) DebugString() string {
	return fmt.Sprintf("%s AS %s#%d", a.Child.DebugString(), a.NameVal, a.ID)
}

// ToAttribute projects the alias down to the sql.Attribute it produces,
// used by Project.Output (spec.md §3's `Project.output =
// projections.map(_.toAttribute)`).
func (a *Alias) ToAttribute() sql.Attribute {
	return sql.Attribute{ID: a.ID, Name: a.NameVal, Type: a.Type(), Nullable: a.IsNullable()}
}

// AliasChild exposes the aliased expression so sql.SameOrEqual can compare
// "modulo alias naming" as spec.md's data model requires.
func (a *Alias) AliasChild() sql.Expression { return a.Child }

// ToAttributer is implemented by expressions that can appear directly as a
// Project/Join/Limit output slot: AttributeRef and Alias.
type ToAttributer interface {
	ToAttribute() sql.Attribute
}

// ExprToAttribute converts any projection expression to the Attribute it
// produces. Non-Alias, non-AttributeRef expressions (arithmetic, a bare
// literal, and so on) synthesize an anonymous attribute named after their
// pretty-printed form, matching the teacher's convention of naming
// unaliased projected expressions after their SQL text.
func ExprToAttribute(e sql.Expression) sql.Attribute {
	if ta, ok := e.(ToAttributer); ok {
		return ta.ToAttribute()
	}
	return sql.Attribute{ID: sql.NewColumnID(), Name: e.String(), Type: e.Type(), Nullable: e.IsNullable()}
}
