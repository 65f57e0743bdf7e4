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

package memory

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru"

	"github.com/quillsql/planner/sql"
	"github.com/quillsql/planner/sql/plan"
)

// defaultRelationCacheSize bounds how many resolved *plan.Relation values
// Catalog keeps warm. A cache miss just re-resolves from the registered
// schema, so eviction only costs CPU, not correctness, except for the
// self-join identity-sharing case: two lookups of the same name that land
// on different cache generations mint two distinct *plan.Relation values,
// so ResolveSelfJoins won't recognize them as the same table (spec.md S6
// only fires reliably while both lookups hit the cache).
const defaultRelationCacheSize = 256

// Catalog is an in-memory, concurrency-safe sql.Catalog backed by a set of
// named Databases. Relation resolution is memoized through an LRU
// (github.com/hashicorp/golang-lru, a direct teacher dependency), grounded
// on spec.md's "memoized per query against Catalog.LookupRelation, so
// repeated compilations against the same table... don't re-walk catalog
// storage" requirement, and incidentally giving repeated lookups of the
// same name the same *plan.Relation instance.
type Catalog struct {
	mu        sync.RWMutex
	databases map[string]*Database
	current   string
	relations *lru.Cache
}

var _ sql.Catalog = (*Catalog)(nil)

// NewCatalog builds an empty Catalog with no current database set.
func NewCatalog() *Catalog {
	cache, err := lru.New(defaultRelationCacheSize)
	if err != nil {
		// lru.New only errors on a non-positive size, which
		// defaultRelationCacheSize never is.
		panic(err)
	}
	return &Catalog{databases: make(map[string]*Database), relations: cache}
}

// AddDatabase registers db, making it the current database if none is set
// yet.
func (c *Catalog) AddDatabase(db *Database) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.databases[db.Name()] = db
	if c.current == "" {
		c.current = db.Name()
	}
}

// SetCurrentDatabase selects which database unqualified relation names
// resolve against.
func (c *Catalog) SetCurrentDatabase(name string) { c.mu.Lock(); c.current = name; c.mu.Unlock() }

// LookupRelation implements sql.Catalog. name may be unqualified (resolved
// against the current database) or "db.table" qualified.
func (c *Catalog) LookupRelation(name string) (sql.LogicalPlan, error) {
	dbName, tableName := splitQualifiedName(name, c.currentDatabase())
	key := fmt.Sprintf("%s.%s", dbName, tableName)
	if cached, ok := c.relations.Get(key); ok {
		return cached.(*plan.Relation), nil
	}

	c.mu.RLock()
	db, ok := c.databases[dbName]
	c.mu.RUnlock()
	if !ok {
		return nil, sql.ErrTableNotFound.New(name)
	}

	schema, ok := db.schema(tableName)
	if !ok {
		return nil, sql.ErrTableNotFound.New(name)
	}

	rel := plan.NewRelation(tableName, key, schema)
	c.relations.Add(key, rel)
	return rel, nil
}

func (c *Catalog) currentDatabase() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

func splitQualifiedName(name, currentDB string) (db, table string) {
	for i := 0; i < len(name); i++ {
		if name[i] == '.' {
			return name[:i], name[i+1:]
		}
	}
	return currentDB, name
}
