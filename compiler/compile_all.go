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

package compiler

import (
	"golang.org/x/sync/errgroup"

	"github.com/quillsql/planner/sql"
)

// CompileAll compiles every plan in plans concurrently against a single
// Catalog, per spec.md §5's "multiple compilations may run concurrently
// against one Catalog". Each plan gets its own Context derived from ctx, so
// per-compilation tracing state (the query id, the active span) never
// crosses goroutines. The first error cancels the group context those
// per-plan Contexts carry (ctx itself is not cancelled) and is returned; results
// are reported in the same order as plans regardless of completion order.
func (c *Compiler) CompileAll(ctx *sql.Context, plans []sql.LogicalPlan) ([]sql.LogicalPlan, error) {
	results := make([]sql.LogicalPlan, len(plans))

	g, goCtx := errgroup.WithContext(ctx.Context)
	for i, p := range plans {
		i, p := i, p
		g.Go(func() error {
			subCtx := ctx.WithNewQueryID()
			subCtx.Context = goCtx
			out, err := c.Compile(subCtx, p)
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
