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

import (
	"github.com/cespare/xxhash"
	"github.com/mitchellh/hashstructure"
)

// ExprHash returns a cheap 64-bit fingerprint of an expression's canonical
// textual form. It is the fast path SameOrEqual uses to decide two
// expressions are equal before paying for a deep structural comparison;
// collisions only cost a fallback compare, never correctness.
func ExprHash(e Expression) uint64 {
	return xxhash.Sum64String(e.DebugString())
}

// DeepEqual performs the structural-equality fallback described in
// spec.md §9: "structural sharing... detected by reference equality in the
// fast path and structural equality as fallback". hashstructure walks the
// full value graph (including unexported slice/map contents), which a
// string comparison of DebugString can miss when two distinct internal
// representations happen to render identically.
func DeepEqual(a, b interface{}) bool {
	ha, err := hashstructure.Hash(a, nil)
	if err != nil {
		return false
	}
	hb, err := hashstructure.Hash(b, nil)
	if err != nil {
		return false
	}
	return ha == hb
}
