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

// ReduceAliases collapses a stack of two Alias expressions -- `outer AS x`
// wrapping `inner AS y` -- into a single Alias wearing the outer name but
// the inner child, keeping the outer's ID so downstream AttributeRefs that
// already resolved against it stay valid.
func ReduceAliases(ctx *sql.Context, n sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
	span, _ := ctx.Span("reduce_aliases")
	defer span.Finish()

	return transform.NodeDown(n, func(node sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
		return transform.NodeExprsUp(node, reduceAliasExpr)
	})
}

func reduceAliasExpr(e sql.Expression) (sql.Expression, transform.TreeIdentity, error) {
	outer, ok := e.(*expression.Alias)
	if !ok {
		return e, transform.SameTree, nil
	}
	inner, ok := outer.Child.(*expression.Alias)
	if !ok {
		return e, transform.SameTree, nil
	}
	return expression.NewAliasWithID(outer.NameVal, inner.Child, outer.ID), transform.NewTree, nil
}
