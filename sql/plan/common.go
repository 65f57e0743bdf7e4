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

// Package plan is the logical-plan algebra spec.md §3/§4 describes:
// relational operator nodes carrying child plans and expressions. Node
// shape (Resolved/Schema/Children/WithChildren/String/DebugString) is
// grounded on the teacher's sql/plan/ddl_trigger.go (CreateTrigger).
package plan

import (
	"fmt"

	"github.com/quillsql/planner/sql"
)

// UnaryNode is embedded by plan nodes with exactly one child, mirroring the
// teacher's plan.UnaryNode.
type UnaryNode struct {
	Child sql.LogicalPlan
}

func (n UnaryNode) Children() []sql.LogicalPlan { return []sql.LogicalPlan{n.Child} }

// BinaryNode is embedded by plan nodes with exactly two children (Join),
// mirroring the teacher's plan.BinaryNode.
type BinaryNode struct {
	Left  sql.LogicalPlan
	Right sql.LogicalPlan
}

func (n BinaryNode) Children() []sql.LogicalPlan { return []sql.LogicalPlan{n.Left, n.Right} }

// LeafNode is embedded by plan nodes with no children (UnresolvedRelation,
// Relation, LocalRelation).
type LeafNode struct{}

func (LeafNode) Children() []sql.LogicalPlan { return nil }

func (LeafNode) References() map[sql.ColumnID]struct{} { return nil }

func wrongChildren(nodeName string, got, want int) error {
	return sql.ErrInternal.New(fmt.Sprintf("%s: wrong number of children: got %d, want %d", nodeName, got, want))
}

// passthroughOutput returns the child's Output unchanged, the shape
// Filter.output and Limit.output both have (spec.md §3: `Filter.output =
// child.output`, `Limit.output = child.output`).
func passthroughOutput(child sql.LogicalPlan) []sql.Attribute {
	return child.Output()
}
