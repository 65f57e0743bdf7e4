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

package compiler_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quillsql/planner/compiler"
	"github.com/quillsql/planner/memory"
	"github.com/quillsql/planner/sql"
	"github.com/quillsql/planner/sql/expression"
	"github.com/quillsql/planner/sql/plan"
)

func newCompilerCatalog() *memory.Catalog {
	cat := memory.NewCatalog()
	db := memory.NewDatabase("db")
	db.AddTable("users", sql.Schema{
		{Name: "id", Type: sql.Int64},
		{Name: "name", Type: sql.String},
	})
	cat.AddDatabase(db)
	return cat
}

func TestCompileResolvesAndOptimizes(t *testing.T) {
	cat := newCompilerCatalog()
	c := compiler.New(cat)

	n := plan.NewFilter(
		expression.NewLiteral(false, sql.Boolean),
		plan.NewUnresolvedRelation("users"),
	)

	out, err := c.Compile(sql.NewContext(context.Background()), n)
	require.NoError(t, err)

	_, ok := out.(*plan.LocalRelation)
	require.True(t, ok, "Compile both resolves the relation and folds the always-false filter")
}

func TestCompileAllRunsConcurrentlyAgainstOneCatalog(t *testing.T) {
	cat := newCompilerCatalog()
	c := compiler.New(cat)

	plans := make([]sql.LogicalPlan, 8)
	for i := range plans {
		plans[i] = plan.NewProject(
			[]sql.Expression{expression.NewStar()},
			plan.NewUnresolvedRelation("users"),
		)
	}

	out, err := c.CompileAll(sql.NewContext(context.Background()), plans)
	require.NoError(t, err)
	require.Len(t, out, len(plans))
	for _, o := range out {
		require.True(t, o.Resolved())
	}
}

func TestCompileAllPropagatesFirstError(t *testing.T) {
	cat := newCompilerCatalog()
	c := compiler.New(cat)

	plans := []sql.LogicalPlan{
		plan.NewProject([]sql.Expression{expression.NewStar()}, plan.NewUnresolvedRelation("users")),
		plan.NewProject([]sql.Expression{expression.NewStar()}, plan.NewUnresolvedRelation("missing")),
	}

	_, err := c.CompileAll(sql.NewContext(context.Background()), plans)
	require.Error(t, err)
}
