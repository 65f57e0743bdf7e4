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

// Literal is a constant value of a declared type. Value may be sql.Null,
// in which case the literal denotes a typed SQL NULL.
type Literal struct {
	Value interface{}
	Typ   sql.Type
}

var _ sql.Expression = (*Literal)(nil)

// NewLiteral builds a Literal, mirroring the teacher's
// expression.NewLiteral(value, type) (see analyzer_test.go).
func NewLiteral(value interface{}, typ sql.Type) *Literal {
	return &Literal{Value: value, Typ: typ}
}

// NewNullLiteral builds a typed NULL literal.
func NewNullLiteral(typ sql.Type) *Literal {
	return &Literal{Value: sql.Null, Typ: typ}
}

func (l *Literal) Type() sql.Type { return l.Typ }

func (l *Literal) IsNullable() bool { return sql.IsNullValue(l.Value) }

func (l *Literal) Resolved() bool { return true }

func (l *Literal) Foldable() bool { return true }

func (l *Literal) Eval() (interface{}, error) { return l.Value, nil }

func (l *Literal) Children() []sql.Expression { return nil }

func (l *Literal) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 0 {
		return nil, sql.ErrInternal.New(fmt.Sprintf("Literal: wrong number of children: %d", len(children)))
	}
	return l, nil
}

func (l *Literal) References() map[sql.ColumnID]struct{} { return nil }

func (l *Literal) String() string {
	if l.IsNullable() {
		return "NULL"
	}
	if l.Typ.Kind == sql.KindString {
		return fmt.Sprintf("%q", l.Value)
	}
	return fmt.Sprintf("%v", l.Value)
}

func (l *Literal) DebugString() string {
	return fmt.Sprintf("%s (%s)", l.String(), l.Typ)
}
