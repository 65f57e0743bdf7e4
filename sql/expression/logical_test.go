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

func TestAndThreeValuedLogic(t *testing.T) {
	trueLit := expression.NewLiteral(true, sql.Boolean)
	falseLit := expression.NewLiteral(false, sql.Boolean)
	nullLit := expression.NewNullLiteral(sql.Boolean)

	v, err := expression.NewAnd(falseLit, nullLit).Eval()
	require.NoError(t, err)
	require.Equal(t, false, v, "False AND NULL is False")

	v, err = expression.NewAnd(trueLit, nullLit).Eval()
	require.NoError(t, err)
	require.Equal(t, sql.Null, v, "True AND NULL is NULL")

	v, err = expression.NewAnd(trueLit, trueLit).Eval()
	require.NoError(t, err)
	require.Equal(t, true, v)
}

func TestOrThreeValuedLogic(t *testing.T) {
	trueLit := expression.NewLiteral(true, sql.Boolean)
	falseLit := expression.NewLiteral(false, sql.Boolean)
	nullLit := expression.NewNullLiteral(sql.Boolean)

	v, err := expression.NewOr(trueLit, nullLit).Eval()
	require.NoError(t, err)
	require.Equal(t, true, v, "True OR NULL is True")

	v, err = expression.NewOr(falseLit, nullLit).Eval()
	require.NoError(t, err)
	require.Equal(t, sql.Null, v, "False OR NULL is NULL")
}

func TestJoinAndSplitConjunctionRoundTrip(t *testing.T) {
	a := expression.NewLiteral(int64(1), sql.Int64)
	b := expression.NewLiteral(int64(2), sql.Int64)
	c := expression.NewLiteral(int64(3), sql.Int64)

	joined := expression.JoinAnd(a, b, c)
	require.Equal(t, []sql.Expression{a, b, c}, expression.SplitConjunction(joined))
}

func TestJoinAndSingleElement(t *testing.T) {
	a := expression.NewLiteral(int64(1), sql.Int64)
	require.Same(t, a, expression.JoinAnd(a))
}

func TestComparisonNegate(t *testing.T) {
	one := expression.NewLiteral(int64(1), sql.Int64)
	two := expression.NewLiteral(int64(2), sql.Int64)

	eq := expression.NewEquals(one, two)
	require.True(t, eq.Negate().String() == expression.NewNotEquals(one, two).String())

	lt := expression.NewLessThan(one, two)
	require.Equal(t, expression.NewGreaterThanOrEqual(one, two).String(), lt.Negate().String())
}
