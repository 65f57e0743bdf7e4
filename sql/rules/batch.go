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

package rules

// Strategy controls how many times a Batch's rules are applied.
type Strategy int

const (
	// Once applies every rule in the batch exactly one time, in order.
	Once Strategy = iota
	// FixedPoint applies the whole batch repeatedly until a pass leaves the
	// tree unchanged (spec.md §4.2's "no rule in the batch changes the
	// tree"), bounded by Batch.MaxIterations as a non-convergence backstop.
	FixedPoint
)

// MaxIterations is the default non-convergence safety ceiling for a
// FixedPoint batch that doesn't set its own, mirroring the teacher's
// 1000-iteration cap (dolthub analyzer_test.go's TestMaxIterations).
const MaxIterations = 1000

// Batch groups Rules under one convergence Strategy, mirroring the
// teacher's *Batch{Desc, Rules} (dolthub analyzer_test.go's countRules).
type Batch struct {
	Desc          string
	Strategy      Strategy
	Rules         []Rule
	MaxIterations int // 0 means MaxIterations
}

func (b *Batch) maxIterations() int {
	if b.MaxIterations > 0 {
		return b.MaxIterations
	}
	return MaxIterations
}
