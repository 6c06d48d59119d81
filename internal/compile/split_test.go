// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Plotly-Go Authors

package compile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lelekangnju/plotly/internal/frame"
	"github.com/lelekangnju/plotly/internal/geom"
)

func TestSplitGroups_NoCriteriaSingleGroup(t *testing.T) {
	l := Layer{
		Geom: geom.Point,
		Data: frame.Table{
			{"x": frame.Num(1), "y": frame.Num(1)},
			{"x": frame.Num(2), "y": frame.Num(2)},
		},
		Params: map[string]any{"name": "pts"},
	}
	groups := splitGroups(l)
	require.Len(t, groups, 1)
	assert.Len(t, groups[0].rows, 2)
	assert.Equal(t, "pts", groups[0].params["name"])
}

func TestSplitGroups_ByMarkAesthetic(t *testing.T) {
	l := Layer{
		Geom: geom.Point,
		Data: frame.Table{
			{"x": frame.Num(1), "y": frame.Num(1), "colour": frame.Str("#f00"), "colour.name": frame.Str("setosa")},
			{"x": frame.Num(2), "y": frame.Num(2), "colour": frame.Str("#0f0"), "colour.name": frame.Str("virginica")},
			{"x": frame.Num(3), "y": frame.Num(3), "colour": frame.Str("#f00"), "colour.name": frame.Str("setosa")},
		},
		Params: map[string]any{},
	}
	groups := splitGroups(l)
	require.Len(t, groups, 2)

	assert.Len(t, groups[0].rows, 2)
	assert.Equal(t, "setosa", groups[0].params["name"])
	assert.Equal(t, "#f00", groups[0].params["colour"])

	assert.Len(t, groups[1].rows, 1)
	assert.Equal(t, "virginica", groups[1].params["name"])
	assert.Equal(t, "#0f0", groups[1].params["colour"])
}

func TestSplitGroups_ByPanel(t *testing.T) {
	l := Layer{
		Geom: geom.Point,
		Data: frame.Table{
			{"x": frame.Num(1), "y": frame.Num(1), panelCol: frame.Num(1)},
			{"x": frame.Num(2), "y": frame.Num(2), panelCol: frame.Num(2)},
		},
		Params: map[string]any{},
	}
	groups := splitGroups(l)
	require.Len(t, groups, 2)
	assert.Equal(t, 1.0, groups[0].panel.Float())
	assert.Equal(t, 2.0, groups[1].panel.Float())
}

func TestSplitGroups_PanelAndAesCombination(t *testing.T) {
	l := Layer{
		Geom: geom.Bar,
		Data: frame.Table{
			{"x": frame.Num(1), "y": frame.Num(1), panelCol: frame.Num(1), "fill": frame.Str("a"), "fill.name": frame.Str("A")},
			{"x": frame.Num(1), "y": frame.Num(1), panelCol: frame.Num(2), "fill": frame.Str("a"), "fill.name": frame.Str("A")},
			{"x": frame.Num(1), "y": frame.Num(1), panelCol: frame.Num(1), "fill": frame.Str("b"), "fill.name": frame.Str("B")},
		},
		Params: map[string]any{},
	}
	groups := splitGroups(l)
	// Only combinations actually present: (1,A), (2,A), (1,B).
	assert.Len(t, groups, 3)
}

func TestSplitGroups_SharedParamsNotAliased(t *testing.T) {
	l := Layer{
		Geom: geom.Point,
		Data: frame.Table{
			{"x": frame.Num(1), "y": frame.Num(1), "colour": frame.Str("#f00"), "colour.name": frame.Str("a")},
			{"x": frame.Num(2), "y": frame.Num(2), "colour": frame.Str("#0f0"), "colour.name": frame.Str("b")},
		},
		Params: map[string]any{"size": 3.0},
	}
	groups := splitGroups(l)
	require.Len(t, groups, 2)
	groups[0].params["size"] = 99.0
	assert.Equal(t, 3.0, groups[1].params["size"])
	assert.Equal(t, 3.0, l.Params["size"])
}

func TestSplitIntercepts(t *testing.T) {
	l := Layer{
		Geom: geom.Hline,
		Data: frame.Table{
			{"yintercept": frame.Num(1), "colour": frame.Str("red"), "colour.name": frame.Str("r")},
			{"yintercept": frame.Num(2), "colour": frame.Str("red"), "colour.name": frame.Str("r")},
			{"yintercept": frame.Num(1), "colour": frame.Str("blue"), "colour.name": frame.Str("b")},
		},
		Params: map[string]any{},
	}
	groups := splitGroups(l)
	// Intercepts split regardless of other aesthetics.
	require.Len(t, groups, 2)
	assert.Len(t, groups[0].rows, 2)
	assert.Len(t, groups[1].rows, 1)
}
