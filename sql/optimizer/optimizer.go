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

// Package optimizer implements spec.md §4.4's fifteen algebraic rewrite
// rules, run to a fixed point over the shared sql/rules executor, in the
// order spec.md states them. Grounded on the teacher's Optimizer (the same
// Batch/Rule/Executor substrate as sql/analyzer, narrowed to a rewrite-only
// rule set with no catalog dependency).
package optimizer

import (
	"github.com/quillsql/planner/sql"
	"github.com/quillsql/planner/sql/rules"
)

// Optimizer rewrites a resolved, strictly-typed plan into an equivalent one
// spec.md §4.5 expects to be cheaper to execute, without changing its
// Output or its result set.
type Optimizer struct {
	executor *rules.Executor
}

// NewDefault builds an Optimizer running spec.md §4.4's fifteen rules as a
// single fixed-point batch, in their stated order.
func NewDefault() *Optimizer {
	optimizations := &rules.Batch{
		Desc:     "optimizations",
		Strategy: rules.FixedPoint,
		Rules: []rules.Rule{
			{Id: "fold_constants", Apply: FoldConstants},
			{Id: "fold_logical_predicates", Apply: FoldLogicalPredicates},
			{Id: "null_propagation", Apply: NullPropagation},
			{Id: "cnf_conversion", Apply: CNFConversion},
			{Id: "eliminate_common_predicates", Apply: EliminateCommonPredicates},
			{Id: "reduce_negations", Apply: ReduceNegations},
			{Id: "reduce_casts", Apply: ReduceCasts},
			{Id: "reduce_aliases", Apply: ReduceAliases},
			{Id: "reduce_projects", Apply: ReduceProjects},
			{Id: "reduce_filters", Apply: ReduceFilters},
			{Id: "fold_constant_filters", Apply: FoldConstantFilters},
			{Id: "push_filters_through_projects", Apply: PushFiltersThroughProjects},
			{Id: "push_filters_through_joins", Apply: PushFiltersThroughJoins},
			{Id: "push_projects_through_limits", Apply: PushProjectsThroughLimits},
			{Id: "reduce_limits", Apply: ReduceLimits},
		},
	}

	return &Optimizer{executor: rules.NewExecutor("optimizer", optimizations)}
}

// Trace installs a trace hook called after every rule application.
func (o *Optimizer) Trace(f rules.TraceFunc) { o.executor.Trace = f }

// Optimize rewrites n, validating that the result is still resolved and
// strictly typed -- spec.md §4.5's "Optimizer preserves Resolved and
// StrictlyTyped" invariant.
func (o *Optimizer) Optimize(ctx *sql.Context, n sql.LogicalPlan) (sql.LogicalPlan, error) {
	span, ctx := ctx.Span("optimize")
	defer span.Finish()

	optimized, err := o.executor.Execute(ctx, n)
	if err != nil {
		return n, err
	}
	if !optimized.Resolved() {
		return optimized, sql.WrapNode(sql.ErrInternal.New(
			"optimizer produced an unresolved plan"), optimized)
	}
	if !optimized.StrictlyTyped() {
		return optimized, sql.WrapNode(sql.ErrInternal.New(
			"optimizer produced a plan that is not strictly typed"), optimized)
	}
	return optimized, nil
}
