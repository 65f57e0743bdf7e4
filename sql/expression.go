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

// Null is the distinguished marker carried by a Literal's Value when the
// literal denotes SQL NULL. A Literal's Type is still meaningful when its
// Value is Null -- NULL is typed, just valueless.
var Null = nullType{}

type nullType struct{}

func (nullType) String() string { return "NULL" }

// IsNullValue reports whether v is the Null marker.
func IsNullValue(v interface{}) bool {
	_, ok := v.(nullType)
	return ok
}

// Expression is a node in an expression tree: literals, column references,
// arithmetic, comparisons, and so on. Expressions are immutable; rewrites
// produce new trees via WithChildren.
type Expression interface {
	// Type is the expression's declared datatype.
	Type() Type
	// IsNullable reports whether the expression may evaluate to NULL.
	IsNullable() bool
	// Resolved reports whether the expression and all its children are free
	// of UnresolvedAttribute/Star placeholders.
	Resolved() bool
	// Foldable reports whether every leaf of the expression is a Literal
	// (constant folding may replace the whole expression with its Eval'd
	// value).
	Foldable() bool
	// Eval computes the expression's value. Only valid when Foldable()
	// reports true; used by FoldConstants and strictly-typed validation,
	// never by a runtime row evaluator (evaluation beyond constant folding
	// is out of scope, per spec.md §1).
	Eval() (interface{}, error)
	// Children returns the expression's direct operands, in a fixed order.
	Children() []Expression
	// WithChildren returns a copy of the expression with its children
	// replaced. len(children) must equal len(Children()).
	WithChildren(children ...Expression) (Expression, error)
	// References returns the set of AttributeRef ids the expression reads,
	// transitively through its children.
	References() map[ColumnID]struct{}
	String() string
	DebugString() string
}

// SameOrEqual reports whether two expressions are structurally equal modulo
// Alias naming: an Alias and its child compare equal to each other's
// underlying expression tree, since an Alias changes only the name/id under
// which a value is projected, not its value. Used by FoldLogicalPredicates,
// EliminateCommonPredicates and ReduceNegations to detect `a op a` shapes.
//
// ExprHash+String is the fast path; it can false-negative when two
// expressions' DebugString representations diverge (e.g. differing
// unexported bookkeeping fields) while their value graphs are still equal,
// so a hash or string mismatch falls back to DeepEqual before concluding
// the expressions differ, per spec.md §9's "reference equality in the fast
// path, structural equality as fallback".
func SameOrEqual(a, b Expression) bool {
	a = stripAlias(a)
	b = stripAlias(b)
	if ExprHash(a) == ExprHash(b) && a.String() == b.String() {
		return true
	}
	return DeepEqual(a, b)
}

func stripAlias(e Expression) Expression {
	if al, ok := e.(interface{ AliasChild() Expression }); ok {
		return stripAlias(al.AliasChild())
	}
	return e
}

// UnaryExpression is embedded by expressions with exactly one operand,
// mirroring the teacher's expression.UnaryExpression (see
// sql/expression/function/wkt.go's AsWKT).
type UnaryExpression struct {
	Child Expression
}

func (p UnaryExpression) Children() []Expression {
	return []Expression{p.Child}
}

func (p UnaryExpression) Resolved() bool {
	return p.Child.Resolved()
}

func (p UnaryExpression) Foldable() bool {
	return p.Child.Foldable()
}

func (p UnaryExpression) References() map[ColumnID]struct{} {
	return p.Child.References()
}

// BinaryExpression is embedded by expressions with exactly two operands
// (Left, Right), mirroring the teacher's expression.BinaryExpression.
type BinaryExpression struct {
	Left  Expression
	Right Expression
}

func (p BinaryExpression) Children() []Expression {
	return []Expression{p.Left, p.Right}
}

func (p BinaryExpression) Resolved() bool {
	return p.Left.Resolved() && p.Right.Resolved()
}

func (p BinaryExpression) Foldable() bool {
	return p.Left.Foldable() && p.Right.Foldable()
}

func (p BinaryExpression) References() map[ColumnID]struct{} {
	return unionRefs(p.Left.References(), p.Right.References())
}

func unionRefs(sets ...map[ColumnID]struct{}) map[ColumnID]struct{} {
	out := make(map[ColumnID]struct{})
	for _, s := range sets {
		for id := range s {
			out[id] = struct{}{}
		}
	}
	return out
}

// RefsSubsetOf reports whether every id in refs is also in of.
func RefsSubsetOf(refs, of map[ColumnID]struct{}) bool {
	for id := range refs {
		if _, ok := of[id]; !ok {
			return false
		}
	}
	return true
}
