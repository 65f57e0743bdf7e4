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

package analyzer

import (
	"fmt"

	"github.com/quillsql/planner/sql"
	"github.com/quillsql/planner/sql/expression"
	"github.com/quillsql/planner/sql/transform"
)

// ApplyImplicitCasts inserts a Cast around the narrower operand of every
// binary Arithmetic or Comparison whose operands' types differ but share a
// common promotion, per sql.Type.Promote's Int64->Float64 lattice.
// Operands that cannot be reconciled raise ErrTypeCheckFailure. Grounded on
// the *shape* of resolveFunctions (resolve_functions.go): a catalog-free,
// post-order expression rewrite that only needs each expression's own,
// already-resolved children.
func ApplyImplicitCasts(ctx *sql.Context, n sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
	span, _ := ctx.Span("apply_implicit_casts")
	defer span.Finish()

	return transform.Node(n, func(node sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
		return transform.NodeExprsUp(node, insertImplicitCasts)
	})
}

func insertImplicitCasts(e sql.Expression) (sql.Expression, transform.TreeIdentity, error) {
	switch e.(type) {
	case *expression.Arithmetic, *expression.Comparison:
	default:
		return e, transform.SameTree, nil
	}

	children := e.Children()
	if len(children) != 2 {
		return e, transform.SameTree, nil
	}
	left, right := children[0], children[1]
	if !left.Resolved() || !right.Resolved() {
		return e, transform.SameTree, nil
	}

	leftType, rightType := left.Type(), right.Type()
	if leftType.Equals(rightType) {
		return e, transform.SameTree, nil
	}

	target, ok := leftType.Promote(rightType)
	if !ok {
		return e, transform.SameTree, sql.ErrTypeCheckFailure.New(e.String(),
			fmt.Sprintf("cannot reconcile operand types %s and %s", leftType, rightType))
	}

	newLeft, newRight := left, right
	if !leftType.Equals(target) {
		newLeft = expression.NewCast(left, target)
	}
	if !rightType.Equals(target) {
		newRight = expression.NewCast(right, target)
	}

	newE, err := e.WithChildren(newLeft, newRight)
	if err != nil {
		return e, transform.SameTree, err
	}
	return newE, transform.NewTree, nil
}
