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

package rules_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quillsql/planner/sql"
	"github.com/quillsql/planner/sql/expression"
	"github.com/quillsql/planner/sql/plan"
	"github.com/quillsql/planner/sql/rules"
	"github.com/quillsql/planner/sql/transform"
)

func testSchema() sql.Schema {
	return sql.Schema{{Name: "a", Type: sql.Int64}}
}

// incrementLimit rewrites Limit(n) to Limit(n+1) until n reaches a cap,
// giving runFixedPoint something to converge on.
func incrementLimit(cap int64) rules.Func {
	return func(ctx *sql.Context, n sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
		return transform.NodeDown(n, func(n sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
			l, ok := n.(*plan.Limit)
			if !ok {
				return n, transform.SameTree, nil
			}
			count := l.Count.(*expression.Literal).Value.(int64)
			if count >= cap {
				return n, transform.SameTree, nil
			}
			return plan.NewLimit(expression.NewLiteral(count+1, sql.Int64), l.Child), transform.NewTree, nil
		})
	}
}

func TestOnceStrategyAppliesEachRuleExactlyOnce(t *testing.T) {
	rel := plan.NewRelation("t", "t", testSchema())
	start := plan.NewLimit(expression.NewLiteral(int64(0), sql.Int64), rel)

	batch := &rules.Batch{
		Desc:     "once",
		Strategy: rules.Once,
		Rules:    []rules.Rule{{Id: "increment", Apply: incrementLimit(100)}},
	}
	exec := rules.NewExecutor("test", batch)

	out, err := exec.Execute(sql.NewContext(context.Background()), start)
	require.NoError(t, err)
	require.Equal(t, int64(1), out.(*plan.Limit).Count.(*expression.Literal).Value)
}

func TestFixedPointStrategyConvergesAtCap(t *testing.T) {
	rel := plan.NewRelation("t", "t", testSchema())
	start := plan.NewLimit(expression.NewLiteral(int64(0), sql.Int64), rel)

	batch := &rules.Batch{
		Desc:     "converge",
		Strategy: rules.FixedPoint,
		Rules:    []rules.Rule{{Id: "increment", Apply: incrementLimit(5)}},
	}
	exec := rules.NewExecutor("test", batch)

	out, err := exec.Execute(sql.NewContext(context.Background()), start)
	require.NoError(t, err)
	require.Equal(t, int64(5), out.(*plan.Limit).Count.(*expression.Literal).Value)
}

func TestFixedPointNonConvergenceHitsMaxIterations(t *testing.T) {
	rel := plan.NewRelation("t", "t", testSchema())
	start := plan.NewLimit(expression.NewLiteral(int64(0), sql.Int64), rel)

	batch := &rules.Batch{
		Desc:          "never-converges",
		Strategy:      rules.FixedPoint,
		Rules:         []rules.Rule{{Id: "increment", Apply: incrementLimit(1_000_000)}},
		MaxIterations: 3,
	}
	exec := rules.NewExecutor("test", batch)

	_, err := exec.Execute(sql.NewContext(context.Background()), start)
	require.Error(t, err)
	require.True(t, sql.ErrInternal.Is(err), "non-convergence is reported as ErrInternal")
}

func TestTraceHookFiresPerRuleApplication(t *testing.T) {
	rel := plan.NewRelation("t", "t", testSchema())
	start := plan.NewLimit(expression.NewLiteral(int64(0), sql.Int64), rel)

	batch := &rules.Batch{
		Desc:     "converge",
		Strategy: rules.FixedPoint,
		Rules:    []rules.Rule{{Id: "increment", Apply: incrementLimit(3)}},
	}
	exec := rules.NewExecutor("test", batch)

	var traced []string
	exec.Trace = func(batchDesc, ruleID string, before, after sql.LogicalPlan) {
		traced = append(traced, ruleID)
	}

	_, err := exec.Execute(sql.NewContext(context.Background()), start)
	require.NoError(t, err)
	require.Equal(t, 4, len(traced), "3 changing passes plus the final no-op pass that confirms the fixed point")
}
