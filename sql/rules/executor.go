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

package rules

import (
	"fmt"

	"github.com/quillsql/planner/sql"
	"github.com/quillsql/planner/sql/transform"
)

// TraceFunc is called after every individual rule application, whether or
// not it changed the tree -- the `(ruleName, before, after)` trace hook
// spec.md §10 asks for.
type TraceFunc func(batch, rule string, before, after sql.LogicalPlan)

// Executor runs an ordered list of Batches over a plan to a fixed point,
// generalizing the teacher's Analyzer.Analyze loop (dolthub
// analyzer_test.go's NewBuilder(...).Build(); a.Analyze(ctx, n, scope)).
type Executor struct {
	Name    string
	Batches []*Batch
	Trace   TraceFunc
}

// NewExecutor builds an Executor named name over batches, in the order
// given.
func NewExecutor(name string, batches ...*Batch) *Executor {
	return &Executor{Name: name, Batches: batches}
}

// Execute runs every batch over n in order, threading the result of one
// batch into the next, and returns the final tree.
func (e *Executor) Execute(ctx *sql.Context, n sql.LogicalPlan) (sql.LogicalPlan, error) {
	span, ctx := ctx.Span(e.Name)
	defer span.Finish()

	current := n
	for _, batch := range e.Batches {
		next, err := e.runBatch(ctx, batch, current)
		if err != nil {
			return n, sql.WrapNode(err, current)
		}
		current = next
	}
	return current, nil
}

func (e *Executor) runBatch(ctx *sql.Context, batch *Batch, n sql.LogicalPlan) (sql.LogicalPlan, error) {
	switch batch.Strategy {
	case Once:
		return e.runOnce(ctx, batch, n)
	default:
		return e.runFixedPoint(ctx, batch, n)
	}
}

func (e *Executor) runOnce(ctx *sql.Context, batch *Batch, n sql.LogicalPlan) (sql.LogicalPlan, error) {
	current := n
	for _, rule := range batch.Rules {
		next, _, err := e.applyRule(ctx, batch, rule, current)
		if err != nil {
			return n, err
		}
		current = next
	}
	return current, nil
}

func (e *Executor) runFixedPoint(ctx *sql.Context, batch *Batch, n sql.LogicalPlan) (sql.LogicalPlan, error) {
	current := n
	for i := 0; ; i++ {
		if i >= batch.maxIterations() {
			return n, sql.ErrInternal.New(fmt.Sprintf(
				"batch %q failed to reach a fixed point after %d iterations", batch.Desc, i))
		}

		changed := transform.SameTree
		for _, rule := range batch.Rules {
			next, identity, err := e.applyRule(ctx, batch, rule, current)
			if err != nil {
				return n, err
			}
			current = next
			changed = changed.Combine(identity)
		}
		if changed == transform.SameTree {
			return current, nil
		}
	}
}

func (e *Executor) applyRule(ctx *sql.Context, batch *Batch, rule Rule, n sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
	next, identity, err := rule.Apply(ctx, n)
	if err != nil {
		return n, transform.SameTree, sql.WrapNode(fmt.Errorf("rule %q: %w", rule.Id, err), n)
	}
	if e.Trace != nil {
		e.Trace(batch.Desc, rule.Id, n, next)
	}
	return next, identity, nil
}
