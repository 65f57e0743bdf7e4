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

package analyzer

import (
	"github.com/quillsql/planner/sql"
	"github.com/quillsql/planner/sql/plan"
	"github.com/quillsql/planner/sql/rules"
	"github.com/quillsql/planner/sql/transform"
)

// ResolveRelations looks up every UnresolvedRelation in the Catalog,
// replacing it with the resolved plan.Relation it returns. Grounded on
// gitbase's resolveTables rule (sql/analyzer/rules.go) and the teacher's
// resolveTableFunctions (resolve_functions.go).
func ResolveRelations(catalog sql.Catalog) rules.Func {
	return func(ctx *sql.Context, n sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
		span, _ := ctx.Span("resolve_relations")
		defer span.Finish()

		return transform.Node(n, func(node sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
			u, ok := node.(*plan.UnresolvedRelation)
			if !ok {
				return node, transform.SameTree, nil
			}

			rel, err := catalog.LookupRelation(u.Name)
			if err != nil {
				return node, transform.SameTree, err
			}
			return rel, transform.NewTree, nil
		})
	}
}
