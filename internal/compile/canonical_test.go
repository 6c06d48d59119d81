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

func TestToBasic_Segment(t *testing.T) {
	l := Layer{
		Geom: geom.Segment,
		Data: frame.Table{
			{"x": frame.Num(0), "y": frame.Num(0), "xend": frame.Num(1), "yend": frame.Num(1)},
			{"x": frame.Num(5), "y": frame.Num(5), "xend": frame.Num(6), "yend": frame.Num(4)},
		},
	}
	got := toBasic(l, &Context{})

	assert.Equal(t, geom.Path, got.Geom)
	// Two 2-point groups joined by one separator.
	require.Len(t, got.Data, 5)
	assert.Equal(t, 0.0, got.Data[0]["x"].Float())
	assert.Equal(t, 1.0, got.Data[1]["x"].Float())
	assert.True(t, got.Data[2]["x"].IsNA())
	assert.Equal(t, 5.0, got.Data[3]["x"].Float())
	assert.False(t, got.Data.Has("xend"))
}

func TestToBasic_Rect(t *testing.T) {
	l := Layer{
		Geom: geom.Rect,
		Data: frame.Table{{
			"xmin": frame.Num(0), "xmax": frame.Num(2),
			"ymin": frame.Num(0), "ymax": frame.Num(1),
		}},
	}
	got := toBasic(l, &Context{})

	assert.Equal(t, geom.Polygon, got.Geom)
	// Four corners plus the ring-closing vertex.
	require.Len(t, got.Data, 5)
	assert.True(t, got.Data[0]["x"].Equal(got.Data[4]["x"]))
	assert.True(t, got.Data[0]["y"].Equal(got.Data[4]["y"]))
	assert.False(t, got.Data.Has("xmin"))
}

func TestToBasic_LineSortsByX(t *testing.T) {
	l := Layer{
		Geom: geom.Line,
		Data: frame.Table{
			{"x": frame.Num(3), "y": frame.Num(1)},
			{"x": frame.Num(1), "y": frame.Num(2)},
			{"x": frame.Num(2), "y": frame.Num(3)},
		},
	}
	got := toBasic(l, &Context{})
	assert.Equal(t, geom.Path, got.Geom)
	require.Len(t, got.Data, 3)
	assert.Equal(t, 1.0, got.Data[0]["x"].Float())
	assert.Equal(t, 2.0, got.Data[1]["x"].Float())
	assert.Equal(t, 3.0, got.Data[2]["x"].Float())
}

func TestToBasic_PathKeepsRowOrder(t *testing.T) {
	l := Layer{
		Geom: geom.Path,
		Data: frame.Table{
			{"x": frame.Num(3), "y": frame.Num(1)},
			{"x": frame.Num(1), "y": frame.Num(2)},
		},
	}
	got := toBasic(l, &Context{})
	assert.Equal(t, 3.0, got.Data[0]["x"].Float())
}

func TestToBasic_BarDropsMissingY(t *testing.T) {
	l := Layer{
		Geom: geom.Bar,
		Data: frame.Table{
			{"x": frame.Num(1), "y": frame.NA()},
			{"x": frame.Num(2), "y": frame.Num(5)},
		},
	}
	got := toBasic(l, &Context{})

	assert.Equal(t, geom.Bar, got.Geom)
	require.Len(t, got.Data, 1)
	assert.Equal(t, 2.0, got.Data[0]["x"].Float())
	assert.Equal(t, 5.0, got.Data[0]["y"].Float())
}

func TestToBasic_BoxplotUsesPreStats(t *testing.T) {
	l := Layer{
		Geom: geom.Boxplot,
		Data: frame.Table{
			{"fill": frame.Str("#ff0000"), "y": frame.Num(99)},
		},
		PreStats: frame.Table{
			{"y": frame.Num(1)},
			{"y": frame.Num(2)},
		},
	}
	got := toBasic(l, &Context{})

	assert.Equal(t, geom.Boxplot, got.Geom)
	require.Len(t, got.Data, 2)
	assert.Equal(t, 1.0, got.Data[0]["y"].Float())
	fill, _ := got.paramStr("fill")
	assert.Equal(t, "#ff0000", fill)
}

func TestToBasic_DensityDefaults(t *testing.T) {
	l := Layer{
		Geom: geom.Density,
		Data: frame.Table{{"x": frame.Num(1), "y": frame.Num(0.2)}},
	}
	got := toBasic(l, &Context{})

	assert.Equal(t, geom.Area, got.Geom)
	alpha, ok := got.paramFloat("alpha")
	require.True(t, ok)
	assert.Equal(t, 0.0, alpha, "outline-only by default")
	colour, _ := got.paramStr("colour")
	assert.Equal(t, "black", colour)
}

func TestToBasic_AblineGlobalExtent(t *testing.T) {
	l := Layer{
		Geom: geom.Abline,
		Data: frame.Table{{"slope": frame.Num(1), "intercept": frame.Num(0)}},
		PreStats: frame.Table{
			{"x": frame.Num(0)},
			{"x": frame.Num(10)},
			{"x": frame.Num(4)},
		},
	}
	got := toBasic(l, &Context{})

	xstart, _ := got.paramFloat("xstart")
	xend, _ := got.paramFloat("xend")
	assert.Equal(t, 0.0, xstart)
	assert.Equal(t, 10.0, xend)
}

func TestToBasic_HlineCategoricalExtent(t *testing.T) {
	l := Layer{
		Geom: geom.Hline,
		Data: frame.Table{{"yintercept": frame.Num(3)}},
		PreStats: frame.Table{
			{"x": frame.Str("carrot")},
			{"x": frame.Str("apple")},
			{"x": frame.Str("banana")},
		},
	}
	got := toBasic(l, &Context{})

	assert.Equal(t, "apple", got.Params["xstart"])
	assert.Equal(t, "carrot", got.Params["xend"])
}

func TestToBasic_PointCapturesSizeRange(t *testing.T) {
	l := Layer{
		Geom: geom.Point,
		Aes:  map[string]string{"size": "weight"},
		Data: frame.Table{{"x": frame.Num(1), "y": frame.Num(1), "size": frame.Num(3)}},
		PreStats: frame.Table{
			{"size": frame.Num(1)},
			{"size": frame.Num(9)},
		},
	}
	got := toBasic(l, &Context{})

	smin, _ := got.paramFloat("sizemin")
	smax, _ := got.paramFloat("sizemax")
	assert.Equal(t, 1.0, smin)
	assert.Equal(t, 9.0, smax)
}

func TestToBasic_SmoothDefaults(t *testing.T) {
	line := Layer{
		Geom: geom.SmoothLine,
		Data: frame.Table{{"x": frame.Num(1), "y": frame.Num(1)}},
	}
	got := toBasic(line, &Context{})
	assert.Equal(t, geom.Path, got.Geom)
	colour, _ := got.paramStr("colour")
	assert.Equal(t, smoothLineColor, colour)

	ribbon := Layer{
		Geom: geom.SmoothRibbon,
		Data: frame.Table{
			{"x": frame.Num(1), "ymin": frame.Num(0), "ymax": frame.Num(2)},
		},
	}
	got = toBasic(ribbon, &Context{})
	assert.Equal(t, geom.Polygon, got.Geom)
	alpha, _ := got.paramFloat("alpha")
	assert.Equal(t, 0.2, alpha)
}

func TestToBasic_BasicGeomPassesThrough(t *testing.T) {
	l := Layer{
		Geom: geom.Text,
		Data: frame.Table{{"x": frame.Num(1), "y": frame.Num(1), "label": frame.Str("hi")}},
	}
	got := toBasic(l, &Context{})
	assert.Equal(t, geom.Text, got.Geom)
}
