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

// Package compiler wires sql/analyzer and sql/optimizer into the single
// pipeline spec.md §2 describes: an unresolved plan goes in, a resolved,
// strictly-typed, optimized plan comes out.
package compiler

import (
	"github.com/quillsql/planner/sql"
	"github.com/quillsql/planner/sql/analyzer"
	"github.com/quillsql/planner/sql/optimizer"
)

// Compiler runs the Analyzer then the Optimizer over a parsed plan.
type Compiler struct {
	Analyzer  *analyzer.Analyzer
	Optimizer *optimizer.Optimizer
}

// New builds a Compiler resolving names against catalog.
func New(catalog sql.Catalog) *Compiler {
	return &Compiler{
		Analyzer:  analyzer.NewDefault(catalog),
		Optimizer: optimizer.NewDefault(),
	}
}

// Compile analyzes then optimizes n, returning the first error from either
// stage. The Optimizer never sees a plan the Analyzer hasn't already
// validated as resolved and strictly typed (spec.md §4.4's standing
// precondition).
func (c *Compiler) Compile(ctx *sql.Context, n sql.LogicalPlan) (sql.LogicalPlan, error) {
	span, ctx := ctx.Span("compile")
	defer span.Finish()

	resolved, err := c.Analyzer.Analyze(ctx, n)
	if err != nil {
		return resolved, err
	}
	return c.Optimizer.Optimize(ctx, resolved)
}
