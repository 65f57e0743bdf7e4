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

// AttributeRef is a resolved reference to a column, identified by its
// stable ColumnID rather than by name. Mirrors the teacher's GetField /
// GetFieldWithTable (see expression.NewGetFieldWithTable in the
// gitbase-vendored sql/analyzer/rules.go).
type AttributeRef struct {
	NameVal     string
	SourceVal   string
	Typ         sql.Type
	NullableVal bool
	ID          sql.ColumnID
}

var _ sql.Expression = (*AttributeRef)(nil)

// NewAttributeRef builds an AttributeRef with a fresh column id. Use this
// when resolving a name against a relation's schema for the first time.
func NewAttributeRef(name, source string, typ sql.Type, nullable bool) *AttributeRef {
	return &AttributeRef{NameVal: name, SourceVal: source, Typ: typ, NullableVal: nullable, ID: sql.NewColumnID()}
}

// NewAttributeRefWithID builds an AttributeRef carrying an existing id, used
// when re-exposing an attribute that was already resolved elsewhere (e.g.
// a Project/Filter/Limit forwarding its child's output).
func NewAttributeRefWithID(name, source string, typ sql.Type, nullable bool, id sql.ColumnID) *AttributeRef {
	return &AttributeRef{NameVal: name, SourceVal: source, Typ: typ, NullableVal: nullable, ID: id}
}

func (a *AttributeRef) Name() string   { return a.NameVal }
func (a *AttributeRef) Source() string { return a.SourceVal }

func (a *AttributeRef) Type() sql.Type { return a.Typ }

func (a *AttributeRef) IsNullable() bool { return a.NullableVal }

func (a *AttributeRef) Resolved() bool { return true }

func (a *AttributeRef) Foldable() bool { return false }

func (a *AttributeRef) Eval() (interface{}, error) {
	return nil, sql.ErrInternal.New(fmt.Sprintf("AttributeRef %q is not foldable", a.NameVal))
}

func (a *AttributeRef) Children() []sql.Expression { return nil }

func (a *AttributeRef) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 0 {
		return nil, sql.ErrInternal.New(fmt.Sprintf("AttributeRef: wrong number of children: %d", len(children)))
	}
	return a, nil
}

func (a *AttributeRef) References() map[sql.ColumnID]struct{} {
	return map[sql.ColumnID]struct{}{a.ID: {}}
}

func (a *AttributeRef) String() string {
	if a.SourceVal != "" {
		return fmt.Sprintf("%s.%s", a.SourceVal, a.NameVal)
	}
	return a.NameVal
}

func (a *AttributeRef) DebugString() string {
	return fmt.Sprintf("%s#%d", a.String(), a.ID)
}

// ToAttribute projects the reference down to the plain sql.Attribute a plan
// node's Output() reports.
func (a *AttributeRef) ToAttribute() sql.Attribute {
	return sql.Attribute{ID: a.ID, Name: a.NameVal, Source: a.SourceVal, Type: a.Typ, Nullable: a.NullableVal}
}

// UnresolvedAttribute is a name (optionally qualified by a table/source
// name) awaiting resolution against a relation's schema. Mirrors the
// teacher's expression.UnresolvedColumn / UnresolvedQualifiedColumn.
type UnresolvedAttribute struct {
	NameVal   string
	SourceVal string
}

var _ sql.Expression = (*UnresolvedAttribute)(nil)

// NewUnresolvedAttribute builds an unqualified UnresolvedAttribute.
func NewUnresolvedAttribute(name string) *UnresolvedAttribute {
	return &UnresolvedAttribute{NameVal: name}
}

// NewUnresolvedQualifiedAttribute builds a table-qualified
// UnresolvedAttribute.
func NewUnresolvedQualifiedAttribute(source, name string) *UnresolvedAttribute {
	return &UnresolvedAttribute{NameVal: name, SourceVal: source}
}

func (u *UnresolvedAttribute) Name() string   { return u.NameVal }
func (u *UnresolvedAttribute) Source() string { return u.SourceVal }

func (u *UnresolvedAttribute) Type() sql.Type { return sql.Invalid }

func (u *UnresolvedAttribute) IsNullable() bool { return true }

func (u *UnresolvedAttribute) Resolved() bool { return false }

func (u *UnresolvedAttribute) Foldable() bool { return false }

func (u *UnresolvedAttribute) Eval() (interface{}, error) {
	return nil, sql.ErrInternal.New(fmt.Sprintf("unresolved attribute %q", u.NameVal))
}

func (u *UnresolvedAttribute) Children() []sql.Expression { return nil }

func (u *UnresolvedAttribute) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 0 {
		return nil, sql.ErrInternal.New(fmt.Sprintf("UnresolvedAttribute: wrong number of children: %d", len(children)))
	}
	return u, nil
}

func (u *UnresolvedAttribute) References() map[sql.ColumnID]struct{} { return nil }

func (u *UnresolvedAttribute) String() string {
	if u.SourceVal != "" {
		return fmt.Sprintf("%s.%s", u.SourceVal, u.NameVal)
	}
	return u.NameVal
}

func (u *UnresolvedAttribute) DebugString() string {
	return "unresolved(" + u.String() + ")"
}

// Star stands for "every attribute of the enclosing Project's child",
// expanded away by the ExpandStars analyzer rule. Mirrors expression.Star.
type Star struct{}

var _ sql.Expression = Star{}

// NewStar builds a Star expression.
func NewStar() Star { return Star{} }

func (Star) Type() sql.Type      { return sql.Invalid }
func (Star) IsNullable() bool    { return true }
func (Star) Resolved() bool      { return false }
func (Star) Foldable() bool      { return false }
func (Star) Eval() (interface{}, error) {
	return nil, sql.ErrInternal.New("Star is not foldable")
}
func (Star) Children() []sql.Expression { return nil }
func (s Star) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 0 {
		return nil, sql.ErrInternal.New(fmt.Sprintf("Star: wrong number of children: %d", len(children)))
	}
	return s, nil
}
func (Star) References() map[sql.ColumnID]struct{} { return nil }
func (Star) String() string                        { return "*" }
func (Star) DebugString() string                   { return "*" }
