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

package plan_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quillsql/planner/sql"
	"github.com/quillsql/planner/sql/expression"
	"github.com/quillsql/planner/sql/plan"
)

func abSchema() sql.Schema {
	return sql.Schema{
		{Name: "a", Type: sql.Int64},
		{Name: "b", Type: sql.Int64},
	}
}

func TestFilterResolvedAndStrictlyTyped(t *testing.T) {
	rel := plan.NewRelation("t", "t", abSchema())
	cond := expression.NewLiteral(true, sql.Boolean)
	f := plan.NewFilter(cond, rel)

	require.True(t, f.Resolved())
	require.True(t, f.StrictlyTyped())
	require.Equal(t, rel.Output(), f.Output(), "Filter passes its child's Output through unchanged")
}

func TestLimitCountMustBeIntegerType(t *testing.T) {
	rel := plan.NewRelation("t", "t", abSchema())
	l := plan.NewLimit(expression.NewLiteral(int64(10), sql.Int64), rel)
	require.True(t, l.StrictlyTyped())
	require.Equal(t, rel.Output(), l.Output())
}

func TestJoinOutputIsLeftThenRight(t *testing.T) {
	left := plan.NewRelation("l", "l", sql.Schema{{Name: "a", Type: sql.Int64}})
	right := plan.NewRelation("r", "r", sql.Schema{{Name: "b", Type: sql.Int64}})
	j := plan.NewJoin(left, right, plan.InnerJoin, nil)

	out := j.Output()
	require.Len(t, out, 2)
	require.Equal(t, "a", out[0].Name)
	require.Equal(t, "b", out[1].Name)
	require.False(t, out[0].Nullable)
	require.False(t, out[1].Nullable)
}

func TestLeftOuterJoinMarksRightNullable(t *testing.T) {
	left := plan.NewRelation("l", "l", sql.Schema{{Name: "a", Type: sql.Int64}})
	right := plan.NewRelation("r", "r", sql.Schema{{Name: "b", Type: sql.Int64}})
	j := plan.NewJoin(left, right, plan.LeftOuterJoin, nil)

	out := j.Output()
	require.False(t, out[0].Nullable, "preserved side keeps its original nullability")
	require.True(t, out[1].Nullable, "null-extended side is reported nullable")
}

func TestFullOuterJoinMarksBothSidesNullable(t *testing.T) {
	left := plan.NewRelation("l", "l", sql.Schema{{Name: "a", Type: sql.Int64}})
	right := plan.NewRelation("r", "r", sql.Schema{{Name: "b", Type: sql.Int64}})
	j := plan.NewJoin(left, right, plan.FullOuterJoin, nil)

	out := j.Output()
	require.True(t, out[0].Nullable)
	require.True(t, out[1].Nullable)
}

func TestJoinCrossJoinHasNilCondition(t *testing.T) {
	left := plan.NewRelation("l", "l", abSchema())
	right := plan.NewRelation("r", "r", abSchema())
	j := plan.NewCrossJoin(left, right)

	require.Nil(t, j.Condition)
	require.Nil(t, j.Expressions())
	require.True(t, j.Resolved())
}

func TestSubqueryOutputPreservesChildIDs(t *testing.T) {
	rel := plan.NewRelation("t", "t", abSchema())
	sub := plan.NewSubquery(rel, "s")

	childOut := rel.Output()
	out := sub.Output()
	for i := range out {
		require.Equal(t, childOut[i].ID, out[i].ID, "Subquery keeps the child's attribute ids")
		require.Equal(t, "s", out[i].Source, "Subquery re-sources attributes under its alias")
	}
}

func TestProjectOutputIsStableAcrossChildRewrites(t *testing.T) {
	rel := plan.NewRelation("t", "t", abSchema())
	ref := expression.NewAttributeRefWithID("a", "t", sql.Int64, false, rel.Output()[0].ID)
	proj := plan.NewProject([]sql.Expression{ref}, rel)

	firstOutput := proj.Output()

	other := plan.NewRelation("t2", "t2", abSchema())
	rewritten, err := proj.WithChildren(other)
	require.NoError(t, err)

	require.Equal(t, firstOutput, rewritten.Output(), "Project's Output is computed once from its projections, not recomputed from a new child")
}

func TestRelationMintsFreshAttributeIDsPerConstruction(t *testing.T) {
	r1 := plan.NewRelation("t", "t", abSchema())
	r2 := plan.NewRelation("t", "t", abSchema())

	require.NotEqual(t, r1.Output()[0].ID, r2.Output()[0].ID, "two separate NewRelation calls mint distinct ids even for the same name")
}

func TestLocalRelationResolvedAndStrictlyTypedAlways(t *testing.T) {
	attrs := []sql.Attribute{{Name: "a", Type: sql.Int64}}
	empty := plan.NewEmptyLocalRelation(attrs)
	require.True(t, empty.Resolved())
	require.True(t, empty.StrictlyTyped())
	require.Empty(t, empty.Rows)
	require.Equal(t, attrs, empty.Output())
}

func TestUnresolvedRelationIsNeverResolved(t *testing.T) {
	u := plan.NewUnresolvedRelation("missing")
	require.False(t, u.Resolved())
	require.False(t, u.StrictlyTyped())
	require.Nil(t, u.Output())
}
