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

package transform_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quillsql/planner/sql"
	"github.com/quillsql/planner/sql/expression"
	"github.com/quillsql/planner/sql/plan"
	"github.com/quillsql/planner/sql/transform"
)

func schema(names ...string) sql.Schema {
	s := make(sql.Schema, len(names))
	for i, n := range names {
		s[i] = &sql.Column{Name: n, Type: sql.Int64}
	}
	return s
}

func TestNodeDownReturnsSameTreeWhenUnchanged(t *testing.T) {
	rel := plan.NewRelation("t", "t", schema("a"))
	out, identity, err := transform.NodeDown(rel, func(n sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
		return n, transform.SameTree, nil
	})
	require.NoError(t, err)
	require.Equal(t, transform.SameTree, identity)
	require.Same(t, rel, out)
}

func TestNodeDownRebuildsOnlyChangedSubtree(t *testing.T) {
	rel := plan.NewRelation("t", "t", schema("a"))
	limit := plan.NewLimit(expression.NewLiteral(int64(1), sql.Int64), rel)
	filt := plan.NewFilter(expression.NewLiteral(true, sql.Boolean), limit)

	var visited int
	out, identity, err := transform.NodeDown(filt, func(n sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
		visited++
		if r, ok := n.(*plan.Relation); ok {
			return plan.NewRelation("renamed", "renamed", sql.Schema{r.Output()[0].ToColumn()}), transform.NewTree, nil
		}
		return n, transform.SameTree, nil
	})
	require.NoError(t, err)
	require.Equal(t, transform.NewTree, identity)
	require.Equal(t, 3, visited, "visits Filter, Limit and Relation exactly once each")

	newFilt := out.(*plan.Filter)
	newLimit := newFilt.Child.(*plan.Limit)
	newRel := newLimit.Child.(*plan.Relation)
	require.Equal(t, "renamed", newRel.RelName)
}

func TestExprDownPreOrderVsExprPostOrder(t *testing.T) {
	lit := expression.NewLiteral(int64(1), sql.Int64)
	not := expression.NewNot(expression.NewNot(lit))

	var preOrder, postOrder []string
	_, _, err := transform.ExprDown(not, func(e sql.Expression) (sql.Expression, transform.TreeIdentity, error) {
		preOrder = append(preOrder, e.String())
		return e, transform.SameTree, nil
	})
	require.NoError(t, err)

	_, _, err = transform.Expr(not, func(e sql.Expression) (sql.Expression, transform.TreeIdentity, error) {
		postOrder = append(postOrder, e.String())
		return e, transform.SameTree, nil
	})
	require.NoError(t, err)

	require.Equal(t, []string{"NOT(NOT(1))", "NOT(1)", "1"}, preOrder)
	require.Equal(t, []string{"1", "NOT(1)", "NOT(NOT(1))"}, postOrder)
}

func TestInspectNodeCanPruneSubtree(t *testing.T) {
	rel := plan.NewRelation("t", "t", schema("a"))
	limit := plan.NewLimit(expression.NewLiteral(int64(1), sql.Int64), rel)

	var visited []string
	transform.InspectNode(limit, func(n sql.LogicalPlan) bool {
		visited = append(visited, n.String())
		_, isLimit := n.(*plan.Limit)
		return !isLimit
	})
	require.Equal(t, []string{"Limit(1)"}, visited, "returning false at Limit prunes its Relation child")
}
