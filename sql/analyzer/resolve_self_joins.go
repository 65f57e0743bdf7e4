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
	"fmt"

	"github.com/quillsql/planner/sql"
	"github.com/quillsql/planner/sql/plan"
	"github.com/quillsql/planner/sql/transform"
)

// ResolveSelfJoins conservatively rejects a Join whose two sides share any
// attribute id -- the signature of the same relation having been looked up
// once and reused on both sides of the join without an intervening alias to
// disambiguate it. No teacher rule does this (the teacher instead
// disambiguates self-joins via TableAlias); this is a new rule, in the
// teacher's rule-function idiom, implementing spec.md's conservative
// rejection policy directly.
func ResolveSelfJoins(ctx *sql.Context, n sql.LogicalPlan) (sql.LogicalPlan, transform.TreeIdentity, error) {
	span, _ := ctx.Span("resolve_self_joins")
	defer span.Finish()

	var detected error
	transform.InspectNode(n, func(node sql.LogicalPlan) bool {
		if detected != nil {
			return false
		}
		j, ok := node.(*plan.Join)
		if !ok || !j.Left.Resolved() || !j.Right.Resolved() {
			return true
		}
		if sharesAttributeID(j.Left.Output(), j.Right.Output()) {
			detected = sql.ErrUnsupported.New(fmt.Sprintf(
				"self-join without disambiguating aliases:\n%s", sql.PrettyTree(j)))
			return false
		}
		return true
	})
	if detected != nil {
		return n, transform.SameTree, detected
	}
	return n, transform.SameTree, nil
}

func sharesAttributeID(left, right []sql.Attribute) bool {
	ids := make(map[sql.ColumnID]struct{}, len(left))
	for _, a := range left {
		ids[a.ID] = struct{}{}
	}
	for _, a := range right {
		if _, ok := ids[a.ID]; ok {
			return true
		}
	}
	return false
}
