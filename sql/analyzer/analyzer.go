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

// Package analyzer implements spec.md §4.3's name-resolution pass: the six
// rules (ExpandStars, ResolveRelations, ResolveReferences,
// ResolveSelfJoins, ApplyImplicitCasts, EliminateSubqueries) assembled into
// batches over the shared sql/rules executor. Grounded on the teacher's
// Analyzer (dolthub analyzer_test.go's NewBuilder(catalog)...Build(),
// a.Analyze(ctx, n, scope)), narrowed to the fixed rule set spec.md names.
package analyzer

import (
	"github.com/quillsql/planner/sql"
	"github.com/quillsql/planner/sql/rules"
)

// Analyzer resolves a parsed-but-unresolved plan against a Catalog.
// Mirrors the teacher's Analyzer{Catalog, Batches}.
type Analyzer struct {
	Catalog  sql.Catalog
	executor *rules.Executor
}

// NewDefault builds an Analyzer running spec.md §4.3's six rules: a
// "resolution" batch (ExpandStars, ResolveRelations, ResolveReferences,
// ResolveSelfJoins, ApplyImplicitCasts) run to a fixed point, followed by a
// one-shot "eliminate_subqueries" batch.
func NewDefault(catalog sql.Catalog) *Analyzer {
	resolution := &rules.Batch{
		Desc:     "resolution",
		Strategy: rules.FixedPoint,
		Rules: []rules.Rule{
			{Id: "expand_stars", Apply: ExpandStars},
			{Id: "resolve_relations", Apply: ResolveRelations(catalog)},
			{Id: "resolve_references", Apply: ResolveReferences},
			{Id: "resolve_self_joins", Apply: ResolveSelfJoins},
			{Id: "apply_implicit_casts", Apply: ApplyImplicitCasts},
		},
	}
	eliminateSubqueries := &rules.Batch{
		Desc:     "eliminate_subqueries",
		Strategy: rules.Once,
		Rules: []rules.Rule{
			{Id: "eliminate_subqueries", Apply: EliminateSubqueries},
		},
	}

	return &Analyzer{
		Catalog:  catalog,
		executor: rules.NewExecutor("analyzer", resolution, eliminateSubqueries),
	}
}

// Trace installs a trace hook called after every rule application,
// spec.md §10's `(ruleName, before, after)` hook.
func (a *Analyzer) Trace(f rules.TraceFunc) { a.executor.Trace = f }

// Analyze resolves n against a.Catalog and validates the result is fully
// resolved and strictly typed, the contract spec.md §4.3 promises the
// Optimizer: "the Optimizer never sees an unresolved plan."
func (a *Analyzer) Analyze(ctx *sql.Context, n sql.LogicalPlan) (sql.LogicalPlan, error) {
	span, ctx := ctx.Span("analyze")
	defer span.Finish()

	resolved, err := a.executor.Execute(ctx, n)
	if err != nil {
		return n, err
	}
	if !resolved.Resolved() {
		return resolved, sql.WrapNode(sql.ErrResolutionFailure.New(
			"plan", "failed to fully resolve after reaching a fixed point"), resolved)
	}
	if !resolved.StrictlyTyped() {
		return resolved, sql.WrapNode(sql.ErrTypeCheckFailure.New(
			"plan", "plan is resolved but not strictly typed"), resolved)
	}
	return resolved, nil
}
