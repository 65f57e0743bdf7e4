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

// Kind identifies one of the closed set of datatypes this plan algebra
// reasons about. The physical planner and execution engine are free to map
// these onto richer storage types; the logical layer only needs enough of a
// lattice to type-check operators and fold constants.
type Kind int

const (
	KindInvalid Kind = iota
	KindBoolean
	KindInt64
	KindFloat64
	KindString
)

// Type is the datatype of an expression. It is a small value type rather
// than the teacher's extensible interface hierarchy, because spec.md closes
// the data model over four kinds.
type Type struct {
	Kind Kind
}

var (
	Boolean = Type{Kind: KindBoolean}
	Int64   = Type{Kind: KindInt64}
	Float64 = Type{Kind: KindFloat64}
	String  = Type{Kind: KindString}
	Invalid = Type{Kind: KindInvalid}
)

func (t Type) String() string {
	switch t.Kind {
	case KindBoolean:
		return "BOOLEAN"
	case KindInt64:
		return "BIGINT"
	case KindFloat64:
		return "DOUBLE"
	case KindString:
		return "TEXT"
	default:
		return "INVALID"
	}
}

// Equals reports whether two types are identical.
func (t Type) Equals(other Type) bool {
	return t.Kind == other.Kind
}

// Numeric reports whether the type participates in the numeric widening
// lattice.
func (t Type) Numeric() bool {
	return t.Kind == KindInt64 || t.Kind == KindFloat64
}

// Promote returns the narrowest type that both t and other can be implicitly
// cast to, and whether such a type exists. Promotion is numeric widening
// only: Int64 -> Float64. String and Boolean never promote to or from
// anything else.
func (t Type) Promote(other Type) (Type, bool) {
	if t.Equals(other) {
		return t, true
	}
	if t.Numeric() && other.Numeric() {
		return Float64, true
	}
	return Invalid, false
}

// CanImplicitlyCast reports whether a value of type t may be implicitly cast
// to target without an explicit Cast expression in the parsed plan. It
// accepts the same widening that Promote applies for ApplyImplicitCasts
// (ApplyImplicitCasts calls Promote, not this method): numeric widening only,
// string and boolean are never implicitly converted to or from another
// kind.
func (t Type) CanImplicitlyCast(target Type) bool {
	if t.Equals(target) {
		return true
	}
	return t.Kind == KindInt64 && target.Kind == KindFloat64
}

// Widens reports whether casting from t to target is a widening conversion
// (no precision can be lost). ReduceCasts relies on every cast the Analyzer
// inserts being a widening one.
func (t Type) Widens(target Type) bool {
	return t.Kind == KindInt64 && target.Kind == KindFloat64
}
