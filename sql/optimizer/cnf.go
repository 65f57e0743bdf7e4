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

package optimizer

import (
	"github.com/quillsql/planner/sql"
	"github.com/quillsql/planner/sql/expression"
)

// cnfConjunctLimit bounds the blow-up toCNF may produce via Or
// distribution; CNFConversion falls back to the original condition past
// this threshold (spec.md §4.4's "fixed blow-up threshold of conjuncts").
const cnfConjunctLimit = 16

// toCNF rewrites e into conjunctive normal form: Not is pushed inward via
// De Morgan's laws and double-negation elimination, then Or is distributed
// over And. Shared by CNFConversion and PushFiltersThroughJoins (which
// needs a condition's conjuncts to partition by side).
func toCNF(e sql.Expression) sql.Expression {
	return distributeOrOverAnd(pushNotInward(e))
}

func pushNotInward(e sql.Expression) sql.Expression {
	switch x := e.(type) {
	case *expression.Not:
		switch y := x.Child.(type) {
		case *expression.Not:
			return pushNotInward(y.Child)
		case *expression.And:
			return expression.NewOr(
				pushNotInward(expression.NewNot(y.Left)),
				pushNotInward(expression.NewNot(y.Right)))
		case *expression.Or:
			return expression.NewAnd(
				pushNotInward(expression.NewNot(y.Left)),
				pushNotInward(expression.NewNot(y.Right)))
		default:
			return expression.NewNot(pushNotInward(x.Child))
		}
	case *expression.And:
		return expression.NewAnd(pushNotInward(x.Left), pushNotInward(x.Right))
	case *expression.Or:
		return expression.NewOr(pushNotInward(x.Left), pushNotInward(x.Right))
	default:
		return e
	}
}

func distributeOrOverAnd(e sql.Expression) sql.Expression {
	switch x := e.(type) {
	case *expression.And:
		return expression.NewAnd(distributeOrOverAnd(x.Left), distributeOrOverAnd(x.Right))
	case *expression.Or:
		left := distributeOrOverAnd(x.Left)
		right := distributeOrOverAnd(x.Right)
		if and, ok := left.(*expression.And); ok {
			return expression.NewAnd(
				distributeOrOverAnd(expression.NewOr(and.Left, right)),
				distributeOrOverAnd(expression.NewOr(and.Right, right)))
		}
		if and, ok := right.(*expression.And); ok {
			return expression.NewAnd(
				distributeOrOverAnd(expression.NewOr(left, and.Left)),
				distributeOrOverAnd(expression.NewOr(left, and.Right)))
		}
		return expression.NewOr(left, right)
	default:
		return e
	}
}
