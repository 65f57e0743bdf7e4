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
	"strconv"

	"github.com/quillsql/planner/sql"
)

// Cast explicitly converts its child's value to Target. ApplyImplicitCasts
// is the only analyzer rule that inserts Cast nodes; once inserted they are
// explicit, satisfying spec.md's "a strictly typed plan... casts are
// explicit" invariant.
type Cast struct {
	sql.UnaryExpression
	Target sql.Type
}

var _ sql.Expression = (*Cast)(nil)

// NewCast builds a Cast of child to target.
func NewCast(child sql.Expression, target sql.Type) *Cast {
	return &Cast{UnaryExpression: sql.UnaryExpression{Child: child}, Target: target}
}

func (c *Cast) Type() sql.Type { return c.Target }

func (c *Cast) IsNullable() bool { return c.Child.IsNullable() }

func (c *Cast) Eval() (interface{}, error) {
	v, err := c.Child.Eval()
	if err != nil {
		return nil, err
	}
	if sql.IsNullValue(v) {
		return sql.Null, nil
	}
	return convert(v, c.Target)
}

func (c *Cast) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 1 {
		return nil, sql.ErrInternal.New(fmt.Sprintf("Cast: wrong number of children: %d", len(children)))
	}
	nc := *c
	nc.Child = children[0]
	return &nc, nil
}

func (c *Cast) String() string {
	return fmt.Sprintf("CAST(%s AS %s)", c.Child.String(), c.Target)
}

func (c *Cast) DebugString() string {
	return fmt.Sprintf("CAST(%s AS %s)", c.Child.DebugString(), c.Target)
}

// convert evaluates a Cast of a constant value: identity casts, Int64 to
// Float64, Float64 to Int64 (truncating toward zero), and Int64, Float64 or
// Boolean to String. Any other conversion returns ErrInternal -- this is
// constant-folding support, not a general-purpose scalar evaluator (out of
// scope per spec.md §1).
func convert(v interface{}, target sql.Type) (interface{}, error) {
	switch target.Kind {
	case sql.KindFloat64:
		switch n := v.(type) {
		case int64:
			return float64(n), nil
		case float64:
			return n, nil
		}
	case sql.KindInt64:
		switch n := v.(type) {
		case int64:
			return n, nil
		case float64:
			return int64(n), nil
		}
	case sql.KindString:
		switch n := v.(type) {
		case string:
			return n, nil
		case int64:
			return strconv.FormatInt(n, 10), nil
		case float64:
			return strconv.FormatFloat(n, 'g', -1, 64), nil
		case bool:
			return strconv.FormatBool(n), nil
		}
	case sql.KindBoolean:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	}
	return nil, sql.ErrInternal.New(fmt.Sprintf("cannot cast value %v to %s", v, target))
}
