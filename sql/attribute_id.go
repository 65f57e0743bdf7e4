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

import "sync/atomic"

// idCounter is the sole shared mutable state in the compiler: a monotone,
// atomic attribute-id source. spec.md §5 requires id generation to be
// atomic across threads so that concurrent compilations sharing a Catalog
// never collide or reuse an id.
var idCounter uint64

// NewColumnID returns a fresh, globally unique column identity. Safe to call
// from multiple goroutines concurrently.
func NewColumnID() ColumnID {
	return ColumnID(atomic.AddUint64(&idCounter, 1))
}
