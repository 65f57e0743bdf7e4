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

package analyzer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quillsql/planner/memory"
	"github.com/quillsql/planner/sql"
	"github.com/quillsql/planner/sql/analyzer"
	"github.com/quillsql/planner/sql/expression"
	"github.com/quillsql/planner/sql/plan"
)

func usersCatalog() *memory.Catalog {
	cat := memory.NewCatalog()
	db := memory.NewDatabase("db")
	db.AddTable("users", sql.Schema{
		{Name: "id", Type: sql.Int64},
		{Name: "name", Type: sql.String},
	})
	db.AddTable("orders", sql.Schema{
		{Name: "id", Type: sql.Int64},
		{Name: "user_id", Type: sql.Int64},
	})
	cat.AddDatabase(db)
	return cat
}

func TestAnalyzeResolvesStarRelationsAndReferences(t *testing.T) {
	cat := usersCatalog()
	a := analyzer.NewDefault(cat)

	n := plan.NewProject(
		[]sql.Expression{expression.NewStar()},
		plan.NewFilter(
			expression.NewEquals(expression.NewUnresolvedAttribute("id"), expression.NewLiteral(int64(1), sql.Int64)),
			plan.NewUnresolvedRelation("users"),
		),
	)

	out, err := a.Analyze(sql.NewContext(context.Background()), n)
	require.NoError(t, err)
	require.True(t, out.Resolved())
	require.True(t, out.StrictlyTyped())

	proj := out.(*plan.Project)
	require.Len(t, proj.Projections, 2)
	for _, e := range proj.Projections {
		_, ok := e.(*expression.AttributeRef)
		require.True(t, ok, "star expands into concrete AttributeRefs")
	}
}

func TestAnalyzeFailsOnUnknownRelation(t *testing.T) {
	cat := usersCatalog()
	a := analyzer.NewDefault(cat)

	n := plan.NewProject([]sql.Expression{expression.NewStar()}, plan.NewUnresolvedRelation("missing"))
	_, err := a.Analyze(sql.NewContext(context.Background()), n)
	require.Error(t, err)
}

func TestAnalyzeFailsOnAmbiguousReference(t *testing.T) {
	cat := usersCatalog()
	a := analyzer.NewDefault(cat)

	left := plan.NewUnresolvedRelation("users")
	right := plan.NewSubquery(plan.NewUnresolvedRelation("users"), "u2")
	n := plan.NewProject(
		[]sql.Expression{expression.NewUnresolvedAttribute("id")},
		plan.NewJoin(left, right, plan.InnerJoin, nil),
	)

	_, err := a.Analyze(sql.NewContext(context.Background()), n)
	require.Error(t, err, "id is ambiguous between both sides of the join")
}

func TestAnalyzeRejectsSelfJoinWithoutAlias(t *testing.T) {
	cat := usersCatalog()
	a := analyzer.NewDefault(cat)

	n := plan.NewJoin(
		plan.NewUnresolvedRelation("users"),
		plan.NewUnresolvedRelation("users"),
		plan.InnerJoin,
		nil,
	)

	_, err := a.Analyze(sql.NewContext(context.Background()), n)
	require.Error(t, err, "two lookups of the same relation share attribute ids without a disambiguating alias")
}

func TestAnalyzeInsertsImplicitWideningCast(t *testing.T) {
	cat := usersCatalog()
	a := analyzer.NewDefault(cat)

	n := plan.NewFilter(
		expression.NewEquals(expression.NewUnresolvedAttribute("id"), expression.NewLiteral(1.5, sql.Float64)),
		plan.NewUnresolvedRelation("users"),
	)

	out, err := a.Analyze(sql.NewContext(context.Background()), n)
	require.NoError(t, err)
	require.True(t, out.StrictlyTyped())
}

func TestAnalyzeTraceFiresPerRuleApplication(t *testing.T) {
	cat := usersCatalog()
	a := analyzer.NewDefault(cat)

	var traced []string
	a.Trace(func(batch, rule string, before, after sql.LogicalPlan) {
		traced = append(traced, rule)
	})

	n := plan.NewProject([]sql.Expression{expression.NewStar()}, plan.NewUnresolvedRelation("users"))
	_, err := a.Analyze(sql.NewContext(context.Background()), n)
	require.NoError(t, err)
	require.NotEmpty(t, traced)
}
