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

import "strings"

// LogicalPlan is a node in a relational algebra tree: Project, Filter,
// Join, and so on. Like Expression, nodes are immutable; a rewrite produces
// a new tree that shares unchanged subtrees.
type LogicalPlan interface {
	// Children returns the node's direct child plans, in a fixed order.
	Children() []LogicalPlan
	// WithChildren returns a copy of the node with its children replaced.
	// len(children) must equal len(Children()).
	WithChildren(children ...LogicalPlan) (LogicalPlan, error)
	// Output is the ordered list of attributes the node produces.
	Output() []Attribute
	// References is the set of attribute ids the node's own expressions
	// read (not including what its children reference).
	References() map[ColumnID]struct{}
	// Resolved reports whether no Unresolved* node or Star remains in this
	// node or any descendant, and every descendant is itself resolved.
	Resolved() bool
	// StrictlyTyped reports whether the node is Resolved and every
	// expression it and its descendants carry satisfies its operator's
	// type signature (with only explicit Casts bridging type mismatches).
	StrictlyTyped() bool
	String() string
	DebugString() string
}

// Expressioner is implemented by plan nodes that carry expressions
// (Project's projections, Filter's condition, Join's condition, Limit's
// count). The tree substrate's NodeExprs rewrites use this to find the
// expression slots of an arbitrary node without a type switch per node kind.
type Expressioner interface {
	Expressions() []Expression
	// WithExpressions returns a copy of the node with its expression slots
	// replaced, in the same order Expressions() returned them.
	WithExpressions(exprs ...Expression) (LogicalPlan, error)
}

// PrettyTree renders n as an indented textual tree, suitable for
// diagnostics and error messages (spec.md §6 "prettyTree").
func PrettyTree(n LogicalPlan) string {
	var sb strings.Builder
	prettyTree(&sb, n, 0)
	return sb.String()
}

func prettyTree(sb *strings.Builder, n LogicalPlan, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(n.String())
	sb.WriteByte('\n')
	for _, c := range n.Children() {
		prettyTree(sb, c, depth+1)
	}
}
