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

package optimizer

import (
	"github.com/quillsql/planner/sql"
	"github.com/quillsql/planner/sql/expression"
	"github.com/quillsql/planner/sql/plan"
	"github.com/quillsql/planner/sql/transform"
)

// CNFConversion rewrites a Filter's condition into conjunctive normal
// form, so PushFiltersThroughJoins can split it into independently
// pushable conjuncts. Falls back to the original condition if toCNF would
// produce more than cnfConjunctLimit conjuncts.
func CNFConversion(ctx *sql.Context, n sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
	span, _ := ctx.Span("cnf_conversion")
	defer span.Finish()

	return transform.NodeDown(n, func(node sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
		f, ok := node.(*plan.Filter)
		if !ok {
			return node, transform.SameTree, nil
		}

		cnf := toCNF(f.Condition)
		if len(expression.SplitConjunction(cnf)) > cnfConjunctLimit {
			return node, transform.SameTree, nil
		}
		if sql.SameOrEqual(cnf, f.Condition) {
			return node, transform.SameTree, nil
		}

		newNode, err := f.WithExpressions(cnf)
		if err != nil {
			return node, transform.SameTree, err
		}
		return newNode, transform.NewTree, nil
	})
}
