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

// Package memory is a small in-memory Catalog implementation, grounded on
// the teacher's memory package (memory.NewDatabase/memory.NewTable, used
// throughout analyzer_test.go to build fixtures). It exists for tests and
// for callers that don't have a real catalog of their own to wire in.
package memory

import (
	"fmt"
	"sync"

	"github.com/quillsql/planner/sql"
)

// Database is a named collection of table schemas. Mirrors the teacher's
// memory.Database, narrowed to schema storage only -- this layer never
// executes, so it has no rows, indexes or privileges to track.
type Database struct {
	mu     sync.RWMutex
	name   string
	tables map[string]sql.Schema
}

// NewDatabase builds an empty Database named name.
func NewDatabase(name string) *Database {
	return &Database{name: name, tables: make(map[string]sql.Schema)}
}

func (d *Database) Name() string { return d.name }

// AddTable registers schema under name, overwriting any existing table of
// that name.
func (d *Database) AddTable(name string, schema sql.Schema) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.tables[name] = schema
}

func (d *Database) schema(name string) (sql.Schema, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	s, ok := d.tables[name]
	return s, ok
}

func (d *Database) String() string { return fmt.Sprintf("Database(%s)", d.name) }
