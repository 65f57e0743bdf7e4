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

// Subquery qualifies its child's output under Alias, the way `(SELECT ...)
// AS alias` introduces a new relation name for outer references to qualify
// against. EliminateSubqueries removes the node once the analyzer no longer
// needs the qualification; Output attribute ids are preserved from the
// child so references resolved against the alias still point at the right
// columns after elimination.
type Subquery struct {
	UnaryNode
	Alias string
}

var _ sql.LogicalPlan = (*Subquery)(nil)

func NewSubquery(child sql.LogicalPlan, alias string) *Subquery {
	return &Subquery{UnaryNode: UnaryNode{Child: child}, Alias: alias}
}

func (s *Subquery) WithChildren(children ...sql.LogicalPlan) (sql.LogicalPlan, error) {
	if len(children) != 1 {
		return nil, wrongChildren("Subquery", len(children), 1)
	}
	ns := *s
	ns.Child = children[0]
	return &ns, nil
}

// Output re-sources the child's attributes under Alias, keeping ids intact
// so attribute identity survives the requalification.
func (s *Subquery) Output() []sql.Attribute {
	childOut := s.Child.Output()
	out := make([]sql.Attribute, len(childOut))
	for i, a := range childOut {
		a.Source = s.Alias
		out[i] = a
	}
	return out
}

func (s *Subquery) Resolved() bool { return s.Child.Resolved() }

func (s *Subquery) StrictlyTyped() bool { return s.Child.StrictlyTyped() }

func (s *Subquery) String() string { return fmt.Sprintf("Subquery(%s)", s.Alias) }

func (s *Subquery) DebugString() string {
	return fmt.Sprintf("Subquery(%s)\n%s", s.Alias, indent(sql.PrettyTree(s.Child)))
}
