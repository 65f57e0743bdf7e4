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
	"strings"

	"github.com/quillsql/planner/sql"
)

// LocalRelation is a fully-materialized, in-memory relation: a fixed set of
// rows with a fixed schema, carrying the exact Attributes (ids included) it
// exposes. FoldConstantFilters replaces `Filter(p, False)` with an empty
// LocalRelation built from p's own Output, so the schema-preservation
// invariant (spec.md §8's property 2) survives the rewrite.
type LocalRelation struct {
	LeafNode
	Rows  [][]interface{}
	Attrs []sql.Attribute
}

var _ sql.LogicalPlan = (*LocalRelation)(nil)

// NewLocalRelation builds a LocalRelation with the given rows and output
// attributes.
func NewLocalRelation(rows [][]interface{}, attrs []sql.Attribute) *LocalRelation {
	return &LocalRelation{Rows: rows, Attrs: attrs}
}

// NewEmptyLocalRelation builds a LocalRelation with no rows but the given
// output attributes -- the shape FoldConstantFilters needs.
func NewEmptyLocalRelation(attrs []sql.Attribute) *LocalRelation {
	return &LocalRelation{Attrs: attrs}
}

func (l *LocalRelation) WithChildren(children ...sql.LogicalPlan) (sql.LogicalPlan, error) {
	if len(children) != 0 {
		return nil, wrongChildren("LocalRelation", len(children), 0)
	}
	return l, nil
}

func (l *LocalRelation) Output() []sql.Attribute { return l.Attrs }

func (l *LocalRelation) Resolved() bool { return true }

func (l *LocalRelation) StrictlyTyped() bool { return true }

func (l *LocalRelation) String() string {
	return fmt.Sprintf("LocalRelation(%d rows)", len(l.Rows))
}

func (l *LocalRelation) DebugString() string {
	names := make([]string, len(l.Attrs))
	for i, a := range l.Attrs {
		names[i] = fmt.Sprintf("%s#%d", a.Name, a.ID)
	}
	return fmt.Sprintf("LocalRelation(%d rows)[%s]", len(l.Rows), strings.Join(names, ", "))
}
