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

package expression_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quillsql/planner/sql"
	"github.com/quillsql/planner/sql/expression"
)

func TestComparisonEvalThreeValued(t *testing.T) {
	one := expression.NewLiteral(int64(1), sql.Int64)
	null := expression.NewNullLiteral(sql.Int64)

	v, err := expression.NewEquals(one, null).Eval()
	require.NoError(t, err)
	require.Equal(t, sql.Null, v)
}

func TestComparisonEvalOrdering(t *testing.T) {
	one := expression.NewLiteral(int64(1), sql.Int64)
	two := expression.NewLiteral(int64(2), sql.Int64)

	v, err := expression.NewLessThan(one, two).Eval()
	require.NoError(t, err)
	require.Equal(t, true, v)

	v, err = expression.NewGreaterThanOrEqual(one, two).Eval()
	require.NoError(t, err)
	require.Equal(t, false, v)
}

func TestArithmeticTypePromotion(t *testing.T) {
	i := expression.NewLiteral(int64(1), sql.Int64)
	f := expression.NewLiteral(1.5, sql.Float64)

	sum := expression.NewPlus(i, f)
	require.True(t, sum.Type().Equals(sql.Float64))
}

func TestArithmeticDivisionByZeroIsNull(t *testing.T) {
	i := expression.NewLiteral(int64(1), sql.Int64)
	zero := expression.NewLiteral(int64(0), sql.Int64)

	v, err := expression.NewDiv(i, zero).Eval()
	require.NoError(t, err)
	require.Equal(t, sql.Null, v)
}

func TestIsStrictlyTypedRejectsMismatchedComparison(t *testing.T) {
	i := expression.NewLiteral(int64(1), sql.Int64)
	f := expression.NewLiteral(1.0, sql.Float64)

	cmp := expression.NewEquals(i, f)
	require.False(t, expression.IsStrictlyTyped(cmp), "mismatched operand types without an explicit Cast aren't strictly typed")

	cmp = expression.NewEquals(i, expression.NewCast(f, sql.Int64))
	require.True(t, expression.IsStrictlyTyped(cmp))
}

func TestIsStrictlyTypedRejectsUnresolved(t *testing.T) {
	u := expression.NewUnresolvedAttribute("a")
	require.False(t, expression.IsStrictlyTyped(u))
}
