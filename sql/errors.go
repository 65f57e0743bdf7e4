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
	errorkinds "gopkg.in/src-d/go-errors.v1"

	pkgerrors "github.com/pkg/errors"
)

// Error kinds, following the teacher's errors.NewKind pattern (see the
// gitbase-vendored sql/analyzer/rules.go: ErrColumnTableNotFound,
// ErrAmbiguousColumnName, ErrFieldMissing). Each New() call formats a
// one-line message; spec.md §7 additionally asks that the offending
// subtree's pretty form travel with the error, which WrapNode/WrapExpr
// below attach as error context.
var (
	// ErrTableNotFound is raised by the Catalog, or surfaced by
	// ResolveRelations when the Catalog can't find a relation.
	ErrTableNotFound = errorkinds.NewKind("table not found: %s")

	// ErrResolutionFailure is raised by ResolveReferences when an
	// UnresolvedAttribute has zero or more than one candidate in scope.
	ErrResolutionFailure = errorkinds.NewKind("failed to resolve %s: %s")

	// ErrTypeCheckFailure is raised by ApplyImplicitCasts when no implicit
	// cast chain can satisfy an operator's signature.
	ErrTypeCheckFailure = errorkinds.NewKind("type check failed for %s: %s")

	// ErrUnsupported is raised for constructs this layer deliberately does
	// not handle (self-joins, in particular).
	ErrUnsupported = errorkinds.NewKind("unsupported: %s")

	// ErrInternal is raised when a rule or the executor observes an
	// invariant violation: an UnresolvedAttribute surviving Analysis, or a
	// rule batch failing to reach a fixed point.
	ErrInternal = errorkinds.NewKind("internal error: %s")
)

// WrapNode annotates err with the pretty-printed form of the plan node that
// was being processed when it occurred, per spec.md §7's "offending
// subtree's pretty form" requirement.
func WrapNode(err error, n LogicalPlan) error {
	if err == nil || n == nil {
		return err
	}
	return pkgerrors.Wrapf(err, "at plan node:\n%s", PrettyTree(n))
}

// WrapExpr is WrapNode's counterpart for expressions.
func WrapExpr(err error, e Expression) error {
	if err == nil || e == nil {
		return err
	}
	return pkgerrors.Wrapf(err, "at expression: %s", e.DebugString())
}
