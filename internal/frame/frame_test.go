// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Plotly-Go Authors

package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_UniformColumns(t *testing.T) {
	_, err := New([]Row{
		{"x": Num(1), "y": Num(2)},
		{"x": Num(3), "y": Num(4)},
	})
	require.NoError(t, err)

	_, err = New([]Row{
		{"x": Num(1), "y": Num(2)},
		{"x": Num(3)},
	})
	assert.Error(t, err)

	_, err = New([]Row{
		{"x": Num(1), "y": Num(2)},
		{"x": Num(3), "z": Num(4)},
	})
	assert.Error(t, err)
}

func TestDropNA(t *testing.T) {
	tbl := Table{
		{"x": Num(1), "y": Num(2)},
		{"x": NA(), "y": Num(5)},
		{"x": Num(3), "y": NA()},
		{"x": Num(4), "y": Num(6)},
	}

	got := tbl.DropNA()
	require.Len(t, got, 2)
	assert.Equal(t, 1.0, got[0]["x"].Float())
	assert.Equal(t, 4.0, got[1]["x"].Float())

	// Idempotent: filtering a filtered table is a no-op.
	assert.Equal(t, got, got.DropNA())
}

func TestDropNA_AllMissing(t *testing.T) {
	tbl := Table{
		{"x": NA(), "y": NA()},
		{"x": NA(), "y": NA()},
	}
	assert.Len(t, tbl.DropNA(), 0)
}

func TestSortBy(t *testing.T) {
	tbl := Table{
		{"x": Num(3), "tag": Str("c")},
		{"x": NA(), "tag": Str("n")},
		{"x": Num(1), "tag": Str("a")},
		{"x": Num(2), "tag": Str("b")},
	}

	got := tbl.SortBy("x")
	require.Len(t, got, 4)
	assert.Equal(t, "a", got[0]["tag"].Text())
	assert.Equal(t, "b", got[1]["tag"].Text())
	assert.Equal(t, "c", got[2]["tag"].Text())
	assert.True(t, got[3]["x"].IsNA(), "NA sorts last")

	// The input table is not mutated.
	assert.Equal(t, 3.0, tbl[0]["x"].Float())
}

func TestRange(t *testing.T) {
	tbl := Table{
		{"x": Num(5)},
		{"x": NA()},
		{"x": Num(-2)},
		{"x": Num(9)},
	}
	min, max, ok := tbl.Range("x")
	require.True(t, ok)
	assert.Equal(t, -2.0, min)
	assert.Equal(t, 9.0, max)

	_, _, ok = tbl.Range("missing")
	assert.False(t, ok)
}

func TestWithColumn_LengthMismatch(t *testing.T) {
	tbl := Table{{"x": Num(1)}, {"x": Num(2)}}
	_, err := tbl.WithColumn("y", []Value{Num(1)})
	assert.Error(t, err)
}

func TestDropColumn(t *testing.T) {
	tbl := Table{{"x": Num(1), "g": Num(7)}}
	got := tbl.DropColumn("g")
	assert.False(t, got.Has("g"))
	assert.True(t, tbl.Has("g"), "input unchanged")
}

func TestValueFormatting(t *testing.T) {
	// 2021-06-01 00:00:00 UTC = 1622505600 epoch seconds = 18779 epoch days.
	assert.Equal(t, "2021-06-01 00:00:00", FormatTime(1622505600))
	assert.Equal(t, "2021-06-01 00:00:00", FormatDate(18779))
}

func TestValueLess_MixedKinds(t *testing.T) {
	assert.True(t, Num(1).Less(Num(2)))
	assert.True(t, Str("a").Less(Str("b")))
	assert.True(t, Num(1).Less(NA()), "anything sorts before NA")
	assert.False(t, NA().Less(Num(1)))
}
