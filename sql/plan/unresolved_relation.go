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

package plan

import (
	"fmt"

	"github.com/quillsql/planner/sql"
)

// UnresolvedRelation is a placeholder for a relation named by the parser
// but not yet looked up in the Catalog. Mirrors the teacher's
// plan.NewUnresolvedTable (see analyzer_test.go).
type UnresolvedRelation struct {
	LeafNode
	Name string
}

var _ sql.LogicalPlan = (*UnresolvedRelation)(nil)

// NewUnresolvedRelation builds an UnresolvedRelation named name.
func NewUnresolvedRelation(name string) *UnresolvedRelation {
	return &UnresolvedRelation{Name: name}
}

func (u *UnresolvedRelation) WithChildren(children ...sql.LogicalPlan) (sql.LogicalPlan, error) {
	if len(children) != 0 {
		return nil, wrongChildren("UnresolvedRelation", len(children), 0)
	}
	return u, nil
}

func (u *UnresolvedRelation) Output() []sql.Attribute { return nil }

func (u *UnresolvedRelation) Resolved() bool { return false }

func (u *UnresolvedRelation) StrictlyTyped() bool { return false }

func (u *UnresolvedRelation) String() string { return fmt.Sprintf("UnresolvedRelation(%s)", u.Name) }

func (u *UnresolvedRelation) DebugString() string { return u.String() }
