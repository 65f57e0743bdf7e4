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

// Relation is a resolved, catalog-backed base relation: a table with a
// fixed schema. Its Output attributes are minted once, at construction, so
// that two plan nodes referencing the very same *Relation value (as
// opposed to two independent catalog lookups of the same name) share
// attribute identity -- the condition ResolveSelfJoins checks for. Mirrors
// the teacher's plan.NewResolvedTable.
type Relation struct {
	LeafNode
	RelName string
	ID      string
	attrs   []sql.Attribute
}

var _ sql.LogicalPlan = (*Relation)(nil)

// NewRelation builds a Relation named name over schema, minting a fresh
// AttributeRef id for each column. id is the catalog's stable identifier
// for the relation (e.g. its storage key), used only for diagnostics.
func NewRelation(name, id string, schema sql.Schema) *Relation {
	attrs := make([]sql.Attribute, len(schema))
	for i, col := range schema {
		attrs[i] = sql.Attribute{
			ID:       sql.NewColumnID(),
			Name:     col.Name,
			Source:   name,
			Type:     col.Type,
			Nullable: col.Nullable,
		}
	}
	return &Relation{RelName: name, ID: id, attrs: attrs}
}

func (r *Relation) Name() string { return r.RelName }

func (r *Relation) WithChildren(children ...sql.LogicalPlan) (sql.LogicalPlan, error) {
	if len(children) != 0 {
		return nil, wrongChildren("Relation", len(children), 0)
	}
	return r, nil
}

func (r *Relation) Output() []sql.Attribute { return r.attrs }

func (r *Relation) Resolved() bool { return true }

func (r *Relation) StrictlyTyped() bool { return true }

func (r *Relation) String() string { return fmt.Sprintf("Relation(%s)", r.RelName) }

func (r *Relation) DebugString() string {
	names := make([]string, len(r.attrs))
	for i, a := range r.attrs {
		names[i] = fmt.Sprintf("%s#%d", a.Name, a.ID)
	}
	return fmt.Sprintf("Relation(%s)[%s]", r.RelName, strings.Join(names, ", "))
}
