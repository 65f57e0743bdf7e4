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
	"github.com/quillsql/planner/sql/transform"
)

// FoldConstants replaces any Foldable, resolved expression with a Literal
// carrying its Eval'd value, walked expression-post-order inside a
// plan-pre-order traversal.
func FoldConstants(ctx *sql.Context, n sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
	span, _ := ctx.Span("fold_constants")
	defer span.Finish()

	return transform.NodeDown(n, func(node sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
		return transform.NodeExprsUp(node, foldConstantExpr)
	})
}

func foldConstantExpr(e sql.Expression) (sql.Expression, transform.TreeIdentity, error) {
	if _, ok := e.(*expression.Literal); ok {
		return e, transform.SameTree, nil
	}
	if !e.Resolved() || !e.Foldable() {
		return e, transform.SameTree, nil
	}
	v, err := e.Eval()
	if err != nil {
		return e, transform.SameTree, err
	}
	return expression.NewLiteral(v, e.Type()), transform.NewTree, nil
}
