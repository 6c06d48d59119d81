// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Plotly-Go Authors

package compile

import (
	"fmt"

	"github.com/lelekangnju/plotly/internal/frame"
	"github.com/lelekangnju/plotly/internal/geom"
)

// Compile runs every layer of a plot through the compiler in order and
// concatenates the resulting traces. A layer that cannot be compiled
// contributes nothing; the rest of the plot is unaffected.
func Compile(layers []Layer, ctx *Context) []Trace {
	var out []Trace
	for _, l := range layers {
		out = append(out, CompileLayer(l, ctx)...)
	}
	return out
}

// CompileLayer translates one layer into zero or more trace records:
// axis recoding, canonicalization, group splitting, per-group synthesis,
// panel assignment, bar annotation, legend ranking. Smoothed-fit layers
// compile twice through the same Context; the ribbon half is prepended so
// the renderer draws it underneath the line.
func CompileLayer(l Layer, ctx *Context) []Trace {
	original := l
	lineHalf := false

	switch l.Geom {
	case geom.Violin:
		ctx.Warnf("geom violin: density estimation is unsupported, rendering as boxplot")
		l.Geom = geom.Boxplot
	case geom.Histogram:
		l.Geom = geom.Bar
		if _, set := l.param("bargap"); !set {
			l = l.withParam("bargap", 0.0)
		}
	case geom.Bar:
		// A bar layer fed by the binning statistic is a histogram in
		// all but name; its bars render flush.
		if l.Stat == StatBin {
			if _, set := l.param("bargap"); !set {
				l = l.withParam("bargap", 0.0)
			}
		}
	case geom.Smooth:
		if ctx.smoothLinePending {
			ctx.smoothLinePending = false
			if se, ok := l.paramBool("se"); ok && !se {
				// The statistic disabled the confidence band.
				return nil
			}
			l.Geom = geom.SmoothRibbon
		} else {
			ctx.smoothLinePending = true
			l.Geom = geom.SmoothLine
			lineHalf = true
		}
	}

	marks := geom.MarkAes(l.Geom)

	l = recodeAxes(l, ctx)
	basic := toBasic(l, ctx)

	if !geom.IsBasic(basic.Geom) {
		ctx.Warnf("no trace synthesizer for geom %s", describeGeom(original.Geom, basic.Geom))
		return nil
	}

	var traces []Trace
	for _, g := range splitGroups(basic) {
		tr, ok := synthesize(basic, g, ctx)
		if !ok {
			ctx.Warnf("no trace synthesizer for geom %s", describeGeom(original.Geom, basic.Geom))
			return nil
		}
		assignPanel(tr, g.panel, ctx)
		if basic.Geom == geom.Bar {
			annotateBar(tr, basic)
		}
		traces = append(traces, tr)
	}

	traces = rankTraces(traces, marks, ctx)

	if lineHalf {
		ribbon := CompileLayer(original, ctx)
		traces = append(ribbon, traces...)
	}
	return traces
}

// assignPanel attaches the facet cell's axis identifiers, derived from the
// group's panel id and the plot's facet column count.
func assignPanel(tr Trace, panel frame.Value, ctx *Context) {
	if panel.IsNA() || !panel.IsNumeric() {
		return
	}
	cols := ctx.PanelCols
	if cols < 1 {
		cols = 1
	}
	p := int(panel.Float())
	if p < 1 {
		return
	}
	tr["xaxis"] = axisID("x", (p-1)%cols+1)
	tr["yaxis"] = axisID("y", (p-1)/cols+1)
}

func axisID(axis string, n int) string {
	if n == 1 {
		return axis
	}
	return fmt.Sprintf("%s%d", axis, n)
}

// annotateBar records the two independent bar decisions: the gap comes from
// the layer's parameters (a histogram sets it to zero), the stacking mode
// from the layer's position-adjustment policy.
func annotateBar(tr Trace, l Layer) {
	if gap, ok := l.paramFloat("bargap"); ok {
		tr["bargap"] = gap
	}
	switch l.Position {
	case PositionIdentity, PositionStack, PositionFill:
		tr["barmode"] = "stack"
	default:
		tr["barmode"] = "group"
	}
}
