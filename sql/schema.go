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

package sql

// ColumnID is the monotone identity stamped on an attribute at first
// resolution. Two AttributeRefs denoting the same logical column share an
// ID; renames via Alias never reuse the child's ID for the outer name
// (Alias mints its own ID per spec.md's data model), but the inner
// reference keeps pointing at the original.
type ColumnID uint64

// Column describes one field of a Schema: its declared name, datatype,
// nullability and the relation it originated from (used only for
// diagnostics; resolution keys off ColumnID, not Source/Name).
type Column struct {
	Name     string
	Source   string
	Type     Type
	Nullable bool
}

// Schema is an ordered list of Columns, mirroring the teacher's sql.Schema.
type Schema []*Column

// Attribute is the concrete, resolved description of one column a plan
// node's Output produces: its stable identity, name, type and nullability.
// It is the "toAttribute" projection of an AttributeRef or Alias (spec.md
// §3's invariant `Project.output = projections.map(_.toAttribute)`), kept
// as a plain struct in package sql (rather than in sql/expression) so that
// LogicalPlan.Output can be declared here without an import cycle between
// sql and sql/expression.
type Attribute struct {
	ID       ColumnID
	Name     string
	Source   string
	Type     Type
	Nullable bool
}

// ToColumn renders the attribute as a schema Column, for diagnostics and for
// Catalog/Schema interop.
func (a Attribute) ToColumn() *Column {
	return &Column{Name: a.Name, Source: a.Source, Type: a.Type, Nullable: a.Nullable}
}
