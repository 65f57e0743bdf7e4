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

package memory_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quillsql/planner/memory"
	"github.com/quillsql/planner/sql"
	"github.com/quillsql/planner/sql/plan"
)

func newTestCatalog() *memory.Catalog {
	cat := memory.NewCatalog()
	db := memory.NewDatabase("db")
	db.AddTable("users", sql.Schema{{Name: "id", Type: sql.Int64}})
	cat.AddDatabase(db)
	return cat
}

func TestLookupRelationByUnqualifiedName(t *testing.T) {
	cat := newTestCatalog()
	rel, err := cat.LookupRelation("users")
	require.NoError(t, err)
	require.Equal(t, "users", rel.(*plan.Relation).RelName)
}

func TestLookupRelationByQualifiedName(t *testing.T) {
	cat := newTestCatalog()
	rel, err := cat.LookupRelation("db.users")
	require.NoError(t, err)
	require.Equal(t, "users", rel.(*plan.Relation).RelName)
}

func TestLookupRelationUnknownTableFails(t *testing.T) {
	cat := newTestCatalog()
	_, err := cat.LookupRelation("missing")
	require.Error(t, err)
	require.True(t, sql.ErrTableNotFound.Is(err))
}

func TestLookupRelationUnknownDatabaseFails(t *testing.T) {
	cat := newTestCatalog()
	_, err := cat.LookupRelation("otherdb.users")
	require.Error(t, err)
}

func TestLookupRelationReturnsSamePointerOnRepeatLookup(t *testing.T) {
	cat := newTestCatalog()
	first, err := cat.LookupRelation("users")
	require.NoError(t, err)
	second, err := cat.LookupRelation("users")
	require.NoError(t, err)

	require.Same(t, first, second, "repeated lookups of the same name must share identity for self-join detection")
}

func TestLookupRelationDistinguishesDatabases(t *testing.T) {
	cat := memory.NewCatalog()
	db1 := memory.NewDatabase("db1")
	db1.AddTable("t", sql.Schema{{Name: "a", Type: sql.Int64}})
	db2 := memory.NewDatabase("db2")
	db2.AddTable("t", sql.Schema{{Name: "a", Type: sql.Int64}})
	cat.AddDatabase(db1)
	cat.AddDatabase(db2)

	r1, err := cat.LookupRelation("db1.t")
	require.NoError(t, err)
	r2, err := cat.LookupRelation("db2.t")
	require.NoError(t, err)
	require.NotSame(t, r1, r2)
}
