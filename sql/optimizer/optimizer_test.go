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

package optimizer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quillsql/planner/sql"
	"github.com/quillsql/planner/sql/expression"
	"github.com/quillsql/planner/sql/optimizer"
	"github.com/quillsql/planner/sql/plan"
)

func aSchema() sql.Schema {
	return sql.Schema{{Name: "a", Type: sql.Int64}}
}

func TestOptimizeFoldsConstantFalseFilterToEmptyRelation(t *testing.T) {
	rel := plan.NewRelation("t", "t", aSchema())
	n := plan.NewFilter(expression.NewLiteral(false, sql.Boolean), rel)

	out, err := optimizer.NewDefault().Optimize(sql.NewContext(context.Background()), n)
	require.NoError(t, err)

	local, ok := out.(*plan.LocalRelation)
	require.True(t, ok, "Filter(p, False) folds to an empty LocalRelation")
	require.Empty(t, local.Rows)
	require.Equal(t, rel.Output(), local.Output(), "schema is preserved across the fold")
}

func TestOptimizePushesInnerJoinFiltersToTheirOwnSide(t *testing.T) {
	left := plan.NewRelation("l", "l", aSchema())
	right := plan.NewRelation("r", "r", aSchema())
	leftRef := expression.NewAttributeRefWithID("a", "l", sql.Int64, false, left.Output()[0].ID)
	rightRef := expression.NewAttributeRefWithID("a", "r", sql.Int64, false, right.Output()[0].ID)

	cond := expression.NewAnd(
		expression.NewEquals(leftRef, expression.NewLiteral(int64(1), sql.Int64)),
		expression.NewEquals(leftRef, rightRef),
	)
	j := plan.NewJoin(left, right, plan.InnerJoin, cond)

	out, err := optimizer.NewDefault().Optimize(sql.NewContext(context.Background()), j)
	require.NoError(t, err)

	newJoin, ok := out.(*plan.Join)
	require.True(t, ok)
	_, leftIsFilter := newJoin.Left.(*plan.Filter)
	require.True(t, leftIsFilter, "the left-only conjunct sinks below the join")
	require.Same(t, right, newJoin.Right, "the right side is untouched since no conjunct refers to it alone")
}

func TestOptimizeDoesNotPushFiltersThroughOuterJoins(t *testing.T) {
	left := plan.NewRelation("l", "l", aSchema())
	right := plan.NewRelation("r", "r", aSchema())
	leftRef := expression.NewAttributeRefWithID("a", "l", sql.Int64, false, left.Output()[0].ID)

	cond := expression.NewEquals(leftRef, expression.NewLiteral(int64(1), sql.Int64))
	j := plan.NewJoin(left, right, plan.LeftOuterJoin, cond)

	out, err := optimizer.NewDefault().Optimize(sql.NewContext(context.Background()), j)
	require.NoError(t, err)

	newJoin, ok := out.(*plan.Join)
	require.True(t, ok)
	require.Same(t, left, newJoin.Left, "outer joins are left untouched by PushFiltersThroughJoins")
}

func TestOptimizeMergesStackedLimitsToTheSmaller(t *testing.T) {
	rel := plan.NewRelation("t", "t", aSchema())
	inner := plan.NewLimit(expression.NewLiteral(int64(5), sql.Int64), rel)
	outer := plan.NewLimit(expression.NewLiteral(int64(10), sql.Int64), inner)

	out, err := optimizer.NewDefault().Optimize(sql.NewContext(context.Background()), outer)
	require.NoError(t, err)

	l, ok := out.(*plan.Limit)
	require.True(t, ok)
	require.Equal(t, rel, l.Child, "stacked Limits merge into one directly over the Relation")
	count, ok := l.Count.(*expression.Literal)
	require.True(t, ok, "the merged count folds to a literal")
	require.Equal(t, int64(5), count.Value, "the merged Limit keeps the smaller count")
}

func TestOptimizeMergesStackedFiltersIntoOneAnd(t *testing.T) {
	rel := plan.NewRelation("t", "t", aSchema())
	ref := expression.NewAttributeRefWithID("a", "t", sql.Int64, false, rel.Output()[0].ID)
	inner := plan.NewFilter(expression.NewEquals(ref, expression.NewLiteral(int64(1), sql.Int64)), rel)
	outer := plan.NewFilter(expression.NewEquals(ref, expression.NewLiteral(int64(2), sql.Int64)), inner)

	out, err := optimizer.NewDefault().Optimize(sql.NewContext(context.Background()), outer)
	require.NoError(t, err)

	f, ok := out.(*plan.Filter)
	require.True(t, ok)
	require.Equal(t, rel, f.Child, "two stacked Filters collapse into a single node")
}

func TestOptimizeIsIdempotentAtAFixedPoint(t *testing.T) {
	rel := plan.NewRelation("t", "t", aSchema())
	ref := expression.NewAttributeRefWithID("a", "t", sql.Int64, false, rel.Output()[0].ID)
	n := plan.NewFilter(expression.NewEquals(ref, expression.NewLiteral(int64(1), sql.Int64)), rel)

	opt := optimizer.NewDefault()
	ctx := sql.NewContext(context.Background())

	once, err := opt.Optimize(ctx, n)
	require.NoError(t, err)
	twice, err := opt.Optimize(ctx, once)
	require.NoError(t, err)

	require.Equal(t, sql.PrettyTree(once), sql.PrettyTree(twice))
}
