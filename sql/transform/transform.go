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

// Package transform is the tree substrate spec.md §4.1 describes: a
// uniform pre-order/post-order traversal and rewrite API shared by
// expression trees and plan trees. It is grounded on two vintages of the
// teacher's own traversal package, retrieved as standalone files: the
// older `visit` package (visit.Nodes, visit.NodesWithCtx, visit.Inspect,
// seen in Allam76-go-mysql-server's sql/analyzer/resolve_subqueries.go) and
// the newer `transform` package it was renamed to (transform.TreeIdentity,
// transform.Context, transform.Expr, seen in the vmg vintage's
// sql/analyzer/resolve_subqueries.go). This package adopts the newer name
// and TreeIdentity-returning signature throughout.
package transform

import "github.com/quillsql/planner/sql"

// TreeIdentity reports whether a transform changed its input. Rules return
// SameTree when they left a (sub)tree untouched, letting the RulesExecutor
// detect fixed-point convergence by identity rather than a deep compare on
// every pass (spec.md §9's "structural sharing... detected by reference
// equality in the fast path").
type TreeIdentity bool

const (
	SameTree TreeIdentity = false
	NewTree  TreeIdentity = true
)

// Combine folds a child TreeIdentity into an accumulated one: the result is
// NewTree as soon as any part changed.
func (t TreeIdentity) Combine(other TreeIdentity) TreeIdentity {
	return t || other
}

// Context is the (node, parent, position) triple passed to selector and
// rewrite functions that need to know where they are in the tree, mirroring
// the teacher's transform.Context{Node, Parent, ChildNum}.
type Context struct {
	Node     sql.LogicalPlan
	Parent   sql.LogicalPlan
	ChildNum int
}

// NodeFunc rewrites a single plan node. Returning the input node and
// SameTree signals no change.
type NodeFunc func(n sql.LogicalPlan) (sql.LogicalPlan, TreeIdentity, error)

// NodeCtxFunc is NodeFunc with positional context.
type NodeCtxFunc func(c Context) (sql.LogicalPlan, TreeIdentity, error)

// Selector decides whether a node (given its context) should be visited at
// all; returning false prunes that subtree from the traversal.
type Selector func(c Context) bool

// ExprFunc rewrites a single expression node.
type ExprFunc func(e sql.Expression) (sql.Expression, TreeIdentity, error)

// Node applies f to every node of the tree rooted at n, post-order
// (children are rewritten before their parent sees the result) --
// spec.md's transformUp.
func Node(n sql.LogicalPlan, f NodeFunc) (sql.LogicalPlan, TreeIdentity, error) {
	return NodeWithCtx(n, nil, func(c Context) (sql.LogicalPlan, TreeIdentity, error) {
		return f(c.Node)
	})
}

// NodeDown applies f to every node of the tree rooted at n, pre-order (a
// node is rewritten before its children are visited, and the rewritten
// node's children -- which may differ from the original's -- are what gets
// recursed into) -- spec.md's transformDown.
func NodeDown(n sql.LogicalPlan, f NodeFunc) (sql.LogicalPlan, TreeIdentity, error) {
	newN, identity, err := f(n)
	if err != nil {
		return n, SameTree, err
	}
	children := newN.Children()
	if len(children) == 0 {
		return newN, identity, nil
	}
	newChildren := make([]sql.LogicalPlan, len(children))
	childIdentity := SameTree
	for i, c := range children {
		nc, id, err := NodeDown(c, f)
		if err != nil {
			return n, SameTree, err
		}
		newChildren[i] = nc
		childIdentity = childIdentity.Combine(id)
	}
	if childIdentity == SameTree {
		return newN, identity, nil
	}
	rebuilt, err := newN.WithChildren(newChildren...)
	if err != nil {
		return n, SameTree, err
	}
	return rebuilt, identity.Combine(childIdentity), nil
}

// NodeWithCtx is Node with an optional Selector to prune subtrees and
// Context-aware rewrite function.
func NodeWithCtx(n sql.LogicalPlan, selector Selector, f NodeCtxFunc) (sql.LogicalPlan, TreeIdentity, error) {
	return nodeWithCtx(n, nil, 0, selector, f)
}

func nodeWithCtx(n, parent sql.LogicalPlan, childNum int, selector Selector, f NodeCtxFunc) (sql.LogicalPlan, TreeIdentity, error) {
	ctx := Context{Node: n, Parent: parent, ChildNum: childNum}
	if selector != nil && !selector(ctx) {
		return n, SameTree, nil
	}

	children := n.Children()
	identity := SameTree
	var newChildren []sql.LogicalPlan
	if len(children) > 0 {
		newChildren = make([]sql.LogicalPlan, len(children))
		for i, c := range children {
			nc, id, err := nodeWithCtx(c, n, i, selector, f)
			if err != nil {
				return n, SameTree, err
			}
			newChildren[i] = nc
			identity = identity.Combine(id)
		}
	}

	current := n
	if identity == NewTree {
		rebuilt, err := n.WithChildren(newChildren...)
		if err != nil {
			return n, SameTree, err
		}
		current = rebuilt
	}

	ctx.Node = current
	newN, selfIdentity, err := f(ctx)
	if err != nil {
		return n, SameTree, err
	}
	return newN, identity.Combine(selfIdentity), nil
}

// NodeExprsUp rewrites every expression slot of n itself (not its
// children's expressions) by applying Expr(e, f) post-order to each.
// Mirrors the teacher's plan.TransformExpressionsUp (resolve_functions.go).
func NodeExprsUp(n sql.LogicalPlan, f ExprFunc) (sql.LogicalPlan, TreeIdentity, error) {
	return nodeExprs(n, f, Expr)
}

// NodeExprsDown is NodeExprsUp's pre-order counterpart.
func NodeExprsDown(n sql.LogicalPlan, f ExprFunc) (sql.LogicalPlan, TreeIdentity, error) {
	return nodeExprs(n, f, ExprDown)
}

func nodeExprs(n sql.LogicalPlan, f ExprFunc, walk func(sql.Expression, ExprFunc) (sql.Expression, TreeIdentity, error)) (sql.LogicalPlan, TreeIdentity, error) {
	exprer, ok := n.(sql.Expressioner)
	if !ok {
		return n, SameTree, nil
	}
	exprs := exprer.Expressions()
	if len(exprs) == 0 {
		return n, SameTree, nil
	}
	newExprs := make([]sql.Expression, len(exprs))
	identity := SameTree
	for i, e := range exprs {
		ne, id, err := walk(e, f)
		if err != nil {
			return n, SameTree, err
		}
		newExprs[i] = ne
		identity = identity.Combine(id)
	}
	if identity == SameTree {
		return n, SameTree, nil
	}
	newN, err := exprer.WithExpressions(newExprs...)
	if err != nil {
		return n, SameTree, err
	}
	return newN, NewTree, nil
}

// Expr applies f to every node of the expression tree rooted at e,
// post-order -- spec.md's transformExpressionsUp at the expression-tree
// level.
func Expr(e sql.Expression, f ExprFunc) (sql.Expression, TreeIdentity, error) {
	children := e.Children()
	identity := SameTree
	var newChildren []sql.Expression
	if len(children) > 0 {
		newChildren = make([]sql.Expression, len(children))
		for i, c := range children {
			nc, id, err := Expr(c, f)
			if err != nil {
				return e, SameTree, err
			}
			newChildren[i] = nc
			identity = identity.Combine(id)
		}
	}

	current := e
	if identity == NewTree {
		rebuilt, err := e.WithChildren(newChildren...)
		if err != nil {
			return e, SameTree, err
		}
		current = rebuilt
	}

	newE, selfIdentity, err := f(current)
	if err != nil {
		return e, SameTree, err
	}
	return newE, identity.Combine(selfIdentity), nil
}

// ExprDown is Expr's pre-order counterpart.
func ExprDown(e sql.Expression, f ExprFunc) (sql.Expression, TreeIdentity, error) {
	newE, identity, err := f(e)
	if err != nil {
		return e, SameTree, err
	}
	children := newE.Children()
	if len(children) == 0 {
		return newE, identity, nil
	}
	newChildren := make([]sql.Expression, len(children))
	childIdentity := SameTree
	for i, c := range children {
		nc, id, err := ExprDown(c, f)
		if err != nil {
			return e, SameTree, err
		}
		newChildren[i] = nc
		childIdentity = childIdentity.Combine(id)
	}
	if childIdentity == SameTree {
		return newE, identity, nil
	}
	rebuilt, err := newE.WithChildren(newChildren...)
	if err != nil {
		return e, SameTree, err
	}
	return rebuilt, identity.Combine(childIdentity), nil
}

// InspectNode walks the tree rooted at n, calling f at every node. If f
// returns false, that node's children are not visited. Read-only
// counterpart of Node/NodeDown, mirroring the teacher's visit.Inspect.
func InspectNode(n sql.LogicalPlan, f func(sql.LogicalPlan) bool) {
	if !f(n) {
		return
	}
	for _, c := range n.Children() {
		InspectNode(c, f)
	}
}

// InspectExpr is InspectNode's counterpart for expression trees.
func InspectExpr(e sql.Expression, f func(sql.Expression) bool) {
	if !f(e) {
		return
	}
	for _, c := range e.Children() {
		InspectExpr(c, f)
	}
}

// InspectExpressions walks every expression reachable from the plan tree
// rooted at n (each node's own expression slots, recursively into child
// nodes), mirroring the teacher's visit.InspectExpressions.
func InspectExpressions(n sql.LogicalPlan, f func(sql.Expression) bool) {
	InspectNode(n, func(node sql.LogicalPlan) bool {
		if exprer, ok := node.(sql.Expressioner); ok {
			for _, e := range exprer.Expressions() {
				InspectExpr(e, f)
			}
		}
		return true
	})
}
