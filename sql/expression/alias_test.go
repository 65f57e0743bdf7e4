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

package expression_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quillsql/planner/sql"
	"github.com/quillsql/planner/sql/expression"
)

func TestAliasToAttributeKeepsOwnID(t *testing.T) {
	ref := expression.NewAttributeRef("a", "t", sql.Int64, false)
	al := expression.NewAlias("b", ref)

	attr := al.ToAttribute()
	require.Equal(t, "b", attr.Name)
	require.Equal(t, al.ID, attr.ID)
	require.NotEqual(t, ref.ID, attr.ID, "Alias mints a fresh id distinct from its child's")
}

func TestAliasSameOrEqualIgnoresNaming(t *testing.T) {
	ref := expression.NewAttributeRef("a", "t", sql.Int64, false)
	al := expression.NewAlias("b", ref)

	require.True(t, sql.SameOrEqual(al, ref), "an Alias and its child compare equal modulo naming")
}

func TestExprToAttributeSynthesizesNameForBareExpression(t *testing.T) {
	lit := expression.NewLiteral(int64(1), sql.Int64)
	attr := expression.ExprToAttribute(lit)
	require.Equal(t, lit.String(), attr.Name)
}

func TestAttributeRefWithIDPreservesIdentity(t *testing.T) {
	ref := expression.NewAttributeRef("a", "t", sql.Int64, false)
	dup := expression.NewAttributeRefWithID("a", "t", sql.Int64, false, ref.ID)
	require.Equal(t, ref.ID, dup.ID)
}
