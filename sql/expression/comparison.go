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

// comparisonOp identifies which relational operator a Comparison node
// applies; kept as a small closed enum rather than one struct type per
// operator so the six comparisons share one Eval implementation.
type comparisonOp int

const (
	opEq comparisonOp = iota
	opNotEq
	opLt
	opLtEq
	opGt
	opGtEq
)

var comparisonSymbols = map[comparisonOp]string{
	opEq: "=", opNotEq: "!=", opLt: "<", opLtEq: "<=", opGt: ">", opGtEq: ">=",
}

// Comparison is a binary relational operator: Eq, NotEq, Lt, LtEq, Gt, GtEq.
// All six share this one implementation, following the teacher's pattern
// of a common comparison.go base (expression.NewEquals is its exported
// Eq constructor, as seen in analyzer_test.go).
type Comparison struct {
	sql.BinaryExpression
	op comparisonOp
}

var _ sql.Expression = (*Comparison)(nil)

func newComparison(op comparisonOp, left, right sql.Expression) *Comparison {
	return &Comparison{BinaryExpression: sql.BinaryExpression{Left: left, Right: right}, op: op}
}

func NewEquals(left, right sql.Expression) *Comparison    { return newComparison(opEq, left, right) }
func NewNotEquals(left, right sql.Expression) *Comparison { return newComparison(opNotEq, left, right) }
func NewLessThan(left, right sql.Expression) *Comparison  { return newComparison(opLt, left, right) }
func NewLessThanOrEqual(left, right sql.Expression) *Comparison {
	return newComparison(opLtEq, left, right)
}
func NewGreaterThan(left, right sql.Expression) *Comparison {
	return newComparison(opGt, left, right)
}
func NewGreaterThanOrEqual(left, right sql.Expression) *Comparison {
	return newComparison(opGtEq, left, right)
}

// IsEq reports whether c is an Eq comparison (used by join-condition
// analysis and by pretty printers).
func (c *Comparison) IsEq() bool { return c.op == opEq }

var comparisonNegation = map[comparisonOp]comparisonOp{
	opEq: opNotEq, opNotEq: opEq,
	opLt: opGtEq, opGtEq: opLt,
	opLtEq: opGt, opGt: opLtEq,
}

// Negate returns c's logical negation (NOT(a = b) -> a != b, NOT(a < b) ->
// a >= b, and so on). Valid under three-valued logic: a comparison and its
// negation both evaluate to NULL on the same null operands, so ReduceNegations
// can rewrite NOT(comparison) to comparison.Negate() unconditionally.
func (c *Comparison) Negate() *Comparison {
	return &Comparison{BinaryExpression: c.BinaryExpression, op: comparisonNegation[c.op]}
}

func (c *Comparison) Type() sql.Type { return sql.Boolean }

func (c *Comparison) IsNullable() bool { return c.Left.IsNullable() || c.Right.IsNullable() }

func (c *Comparison) Eval() (interface{}, error) {
	l, err := c.Left.Eval()
	if err != nil {
		return nil, err
	}
	r, err := c.Right.Eval()
	if err != nil {
		return nil, err
	}
	// Three-valued logic: a comparison against NULL yields NULL.
	if sql.IsNullValue(l) || sql.IsNullValue(r) {
		return sql.Null, nil
	}
	cmp, err := compareValues(l, r)
	if err != nil {
		return nil, err
	}
	switch c.op {
	case opEq:
		return cmp == 0, nil
	case opNotEq:
		return cmp != 0, nil
	case opLt:
		return cmp < 0, nil
	case opLtEq:
		return cmp <= 0, nil
	case opGt:
		return cmp > 0, nil
	case opGtEq:
		return cmp >= 0, nil
	default:
		return nil, sql.ErrInternal.New("unknown comparison operator")
	}
}

func (c *Comparison) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 2 {
		return nil, sql.ErrInternal.New(fmt.Sprintf("Comparison: wrong number of children: %d", len(children)))
	}
	return &Comparison{BinaryExpression: sql.BinaryExpression{Left: children[0], Right: children[1]}, op: c.op}, nil
}

func (c *Comparison) String() string {
	return fmt.Sprintf("(%s %s %s)", c.Left.String(), comparisonSymbols[c.op], c.Right.String())
}

func (c *Comparison) DebugString() string {
	return fmt.Sprintf("(%s %s %s)", c.Left.DebugString(), comparisonSymbols[c.op], c.Right.DebugString())
}

// compareValues compares two already-same-typed, non-null scalar values.
// By the time a Comparison is Foldable (and thus Eval'd), ApplyImplicitCasts
// has already made Left and Right's declared types agree, so both values
// arrive as the same concrete Go type.
func compareValues(l, r interface{}) (int, error) {
	switch lv := l.(type) {
	case int64:
		rv, ok := r.(int64)
		if !ok {
			return 0, sql.ErrInternal.New(fmt.Sprintf("cannot compare int64 to %T", r))
		}
		switch {
		case lv < rv:
			return -1, nil
		case lv > rv:
			return 1, nil
		default:
			return 0, nil
		}
	case float64:
		rv, ok := r.(float64)
		if !ok {
			return 0, sql.ErrInternal.New(fmt.Sprintf("cannot compare float64 to %T", r))
		}
		switch {
		case lv < rv:
			return -1, nil
		case lv > rv:
			return 1, nil
		default:
			return 0, nil
		}
	case string:
		rv, ok := r.(string)
		if !ok {
			return 0, sql.ErrInternal.New(fmt.Sprintf("cannot compare string to %T", r))
		}
		switch {
		case lv < rv:
			return -1, nil
		case lv > rv:
			return 1, nil
		default:
			return 0, nil
		}
	case bool:
		rv, ok := r.(bool)
		if !ok {
			return 0, sql.ErrInternal.New(fmt.Sprintf("cannot compare bool to %T", r))
		}
		if lv == rv {
			return 0, nil
		}
		if !lv && rv {
			return -1, nil
		}
		return 1, nil
	default:
		return 0, sql.ErrInternal.New(fmt.Sprintf("cannot compare values of type %T", l))
	}
}
