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

type arithmeticOp int

const (
	opAdd arithmeticOp = iota
	opSub
	opMul
	opDiv
)

var arithmeticSymbols = map[arithmeticOp]string{opAdd: "+", opSub: "-", opMul: "*", opDiv: "/"}

// Arithmetic is a binary numeric operator: Add, Sub, Mul, Div. Its
// declared Type is the wider of its two operands' types, following the
// same Int64/Float64 promotion ApplyImplicitCasts uses to decide where to
// insert casts.
type Arithmetic struct {
	sql.BinaryExpression
	op arithmeticOp
}

var _ sql.Expression = (*Arithmetic)(nil)

func newArithmetic(op arithmeticOp, left, right sql.Expression) *Arithmetic {
	return &Arithmetic{BinaryExpression: sql.BinaryExpression{Left: left, Right: right}, op: op}
}

func NewPlus(left, right sql.Expression) *Arithmetic  { return newArithmetic(opAdd, left, right) }
func NewMinus(left, right sql.Expression) *Arithmetic { return newArithmetic(opSub, left, right) }
func NewMult(left, right sql.Expression) *Arithmetic  { return newArithmetic(opMul, left, right) }
func NewDiv(left, right sql.Expression) *Arithmetic   { return newArithmetic(opDiv, left, right) }

func (a *Arithmetic) Type() sql.Type {
	t, ok := a.Left.Type().Promote(a.Right.Type())
	if !ok {
		return a.Left.Type()
	}
	return t
}

func (a *Arithmetic) IsNullable() bool { return a.Left.IsNullable() || a.Right.IsNullable() }

func (a *Arithmetic) Eval() (interface{}, error) {
	l, err := a.Left.Eval()
	if err != nil {
		return nil, err
	}
	r, err := a.Right.Eval()
	if err != nil {
		return nil, err
	}
	if sql.IsNullValue(l) || sql.IsNullValue(r) {
		return sql.Null, nil
	}

	switch lv := l.(type) {
	case int64:
		rv, ok := r.(int64)
		if !ok {
			return nil, sql.ErrInternal.New(fmt.Sprintf("mismatched arithmetic operand types: int64 and %T", r))
		}
		return applyIntOp(a.op, lv, rv)
	case float64:
		rv, ok := r.(float64)
		if !ok {
			return nil, sql.ErrInternal.New(fmt.Sprintf("mismatched arithmetic operand types: float64 and %T", r))
		}
		return applyFloatOp(a.op, lv, rv)
	default:
		return nil, sql.ErrInternal.New(fmt.Sprintf("non-numeric arithmetic operand: %T", l))
	}
}

func applyIntOp(op arithmeticOp, l, r int64) (interface{}, error) {
	switch op {
	case opAdd:
		return l + r, nil
	case opSub:
		return l - r, nil
	case opMul:
		return l * r, nil
	case opDiv:
		if r == 0 {
			return sql.Null, nil
		}
		return l / r, nil
	default:
		return nil, sql.ErrInternal.New("unknown arithmetic operator")
	}
}

func applyFloatOp(op arithmeticOp, l, r float64) (interface{}, error) {
	switch op {
	case opAdd:
		return l + r, nil
	case opSub:
		return l - r, nil
	case opMul:
		return l * r, nil
	case opDiv:
		if r == 0 {
			return sql.Null, nil
		}
		return l / r, nil
	default:
		return nil, sql.ErrInternal.New("unknown arithmetic operator")
	}
}

func (a *Arithmetic) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 2 {
		return nil, sql.ErrInternal.New(fmt.Sprintf("Arithmetic: wrong number of children: %d", len(children)))
	}
	return &Arithmetic{BinaryExpression: sql.BinaryExpression{Left: children[0], Right: children[1]}, op: a.op}, nil
}

func (a *Arithmetic) String() string {
	return fmt.Sprintf("(%s %s %s)", a.Left.String(), arithmeticSymbols[a.op], a.Right.String())
}

func (a *Arithmetic) DebugString() string {
	return fmt.Sprintf("(%s %s %s)", a.Left.DebugString(), arithmeticSymbols[a.op], a.Right.DebugString())
}
