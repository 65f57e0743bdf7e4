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

// Package rules is the reusable rule-batch substrate spec.md §4.2
// describes, generalized out of the teacher's Analyzer so the Analyzer
// and Optimizer (spec.md §2 item 4) can each assemble their own rule set
// on top of the same executor. Grounded on the teacher's
// Batch/Rule/NewBuilder(...).Build() shape, visible in dolthub's
// analyzer_test.go (NewBuilder(provider).AddPostAnalyzeRule(id, fn).Build(),
// countRules(a.Batches), the 1000-iteration TestMaxIterations cap).
package rules

import (
	"github.com/quillsql/planner/sql"
	"github.com/quillsql/planner/sql/transform"
)

// Func applies one rewrite pass over n, returning the (possibly) rewritten
// tree and whether it changed anything.
type Func func(ctx *sql.Context, n sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error)

// Rule names a Func; Id is the name the executor passes to its trace hook.
type Rule struct {
	Id    string
	Apply Func
}
