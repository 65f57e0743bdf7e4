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

func trueLiteral() *expression.Literal  { return expression.NewLiteral(true, sql.Boolean) }
func falseLiteral() *expression.Literal { return expression.NewLiteral(false, sql.Boolean) }

func isBoolLiteral(e sql.Expression, val bool) bool {
	lit, ok := e.(*expression.Literal)
	if !ok || sql.IsNullValue(lit.Value) {
		return false
	}
	b, ok := lit.Value.(bool)
	return ok && b == val
}

func isNullLiteral(e sql.Expression) bool {
	lit, ok := e.(*expression.Literal)
	return ok && sql.IsNullValue(lit.Value)
}

func attributeIDSet(attrs []sql.Attribute) map[sql.ColumnID]struct{} {
	out := make(map[sql.ColumnID]struct{}, len(attrs))
	for _, a := range attrs {
		out[a.ID] = struct{}{}
	}
	return out
}

// substituteAttributeRefs rewrites every AttributeRef in e whose id is a key
// of subs with the replacement expression, used by ReduceProjects and
// PushFiltersThroughProjects to rewrite an outer expression in terms of an
// inner Project's projections.
func substituteAttributeRefs(e sql.Expression, subs map[sql.ColumnID]sql.Expression) (sql.Expression, error) {
	newE, _, err := transform.Expr(e, func(x sql.Expression) (sql.Expression, transform.TreeIdentity, error) {
		ar, ok := x.(*expression.AttributeRef)
		if !ok {
			return x, transform.SameTree, nil
		}
		sub, ok := subs[ar.ID]
		if !ok {
			return x, transform.SameTree, nil
		}
		return sub, transform.NewTree, nil
	})
	return newE, err
}
