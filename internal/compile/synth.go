// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Plotly-Go Authors

package compile

import (
	"math"
	"sort"

	"github.com/lelekangnju/plotly/internal/frame"
	"github.com/lelekangnju/plotly/internal/geom"
)

// errTolerance bounds the spread under which up/down error magnitudes are
// treated as symmetric.
const errTolerance = 1e-9

// synthesize builds one trace record from a row group and its resolved
// parameter bag. ok is false when no synthesizer exists for the geom.
func synthesize(l Layer, g traceGroup, ctx *Context) (Trace, bool) {
	var tr Trace
	switch l.Geom {
	case geom.Path:
		tr = synthPath(g, "")
	case geom.Step:
		tr = synthPath(g, "hv")
	case geom.Point:
		tr = synthPoint(g)
	case geom.Bar:
		tr = synthBar(g)
	case geom.Area:
		tr = synthArea(g)
	case geom.Text:
		tr = synthText(g)
	case geom.Polygon:
		tr = synthPolygon(g)
	case geom.Boxplot:
		tr = synthBox(g)
	case geom.Tile:
		tr = synthGrid(g, "heatmap")
	case geom.Contour:
		tr = synthGrid(g, "contour")
	case geom.Density2d:
		tr = synthDensity2d(g)
	case geom.Errorbar:
		tr = synthErrorbar(g, false)
	case geom.Errorbarh:
		tr = synthErrorbar(g, true)
	case geom.Hline:
		tr = synthRefLine(g, "yintercept")
	case geom.Vline:
		tr = synthRefLine(g, "xintercept")
	case geom.Abline:
		tr = synthAbline(g)
	default:
		return nil, false
	}
	setName(tr, g.params)
	trimTrailingNA(tr)
	return tr, true
}

func synthPath(g traceGroup, shape string) Trace {
	tr := Trace{
		"type": "scatter",
		"mode": "lines",
		"x":    columnAny(g.rows, "x"),
		"y":    columnAny(g.rows, "y"),
	}
	line := lineBlock(g.params)
	if shape != "" {
		line["shape"] = shape
	}
	if len(line) > 0 {
		tr["line"] = line
	}
	setOpacity(tr, g.params)
	return tr
}

func synthPoint(g traceGroup) Trace {
	tr := Trace{
		"type": "scatter",
		"mode": "markers",
		"x":    columnAny(g.rows, "x"),
		"y":    columnAny(g.rows, "y"),
	}
	marker := map[string]any{}
	if c, ok := str(g.params, "colour"); ok {
		marker["color"] = c
	}

	if g.rows.Has("size") {
		smin, hasMin := num(g.params, "sizemin")
		smax, hasMax := num(g.params, "sizemax")
		if hasMin && hasMax && smax > smin {
			// Normalized against the plot-wide size range; always a
			// vector, the wire format distinguishes scalar from list.
			sizes := make([]any, len(g.rows))
			for i, r := range g.rows {
				s := r["size"].Float()
				sizes[i] = markerSizeMult * (5*(s-smin)/(smax-smin) + 0.25)
			}
			marker["size"] = sizes
		}
	} else if s, ok := num(g.params, "size"); ok {
		marker["size"] = s * markerSizeMult
	}

	if shapeVal, ok := g.params["shape"]; ok && shapeVal != nil {
		switch v := shapeVal.(type) {
		case string:
			marker["symbol"] = v
		case float64, int:
			code, _ := num(g.params, "shape")
			sym, hollow, blank := symbolStyle(code)
			if blank {
				tr["visible"] = false
			} else {
				marker["symbol"] = sym
				if hollow {
					outline := map[string]any{"width": 1.0}
					if c, ok := str(g.params, "colour"); ok {
						outline["color"] = c
					}
					marker["line"] = outline
					if f, ok := str(g.params, "fill"); ok {
						marker["color"] = f
					}
				}
			}
		}
	}

	if a, ok := num(g.params, "alpha"); ok {
		marker["opacity"] = a
	}
	if len(marker) > 0 {
		tr["marker"] = marker
	}
	if g.rows.Has("text") {
		tr["text"] = columnAny(g.rows, "text")
	}
	return tr
}

// barMilliseconds converts temporal bar positions to the millisecond
// timestamps the charting format expects on categorical time axes.
func barMilliseconds(v frame.Value) any {
	switch v.Kind() {
	case frame.KindTime:
		return v.Float() * 1000
	case frame.KindDate:
		return v.Float() * 86400000
	}
	return cellAny(v)
}

func synthBar(g traceGroup) Trace {
	xs := make([]any, len(g.rows))
	for i, r := range g.rows {
		xs[i] = barMilliseconds(r["x"])
	}
	tr := Trace{
		"type": "bar",
		"x":    xs,
		"y":    columnAny(g.rows, "y"),
	}
	marker := map[string]any{}
	if f, ok := str(g.params, "fill"); ok {
		marker["color"] = f
	}
	if c, ok := str(g.params, "colour"); ok {
		marker["line"] = map[string]any{"color": c}
	}
	if len(marker) > 0 {
		tr["marker"] = marker
	}
	setOpacity(tr, g.params)
	return tr
}

func synthArea(g traceGroup) Trace {
	rows := g.rows.SortBy("x")
	xs := make([]any, 0, len(rows)+2)
	ys := make([]any, 0, len(rows)+2)
	if len(rows) > 0 {
		// Pin the region to the baseline at both ends.
		xs = append(xs, cellAny(rows[0]["x"]))
		ys = append(ys, 0.0)
	}
	for _, r := range rows {
		xs = append(xs, cellAny(r["x"]))
		ys = append(ys, cellAny(r["y"]))
	}
	if len(rows) > 0 {
		xs = append(xs, cellAny(rows[len(rows)-1]["x"]))
		ys = append(ys, 0.0)
	}
	tr := Trace{
		"type": "scatter",
		"mode": "lines",
		"x":    xs,
		"y":    ys,
		"fill": "tozeroy",
	}
	if f, ok := str(g.params, "fill"); ok {
		tr["fillcolor"] = f
	}
	if line := lineBlock(g.params); len(line) > 0 {
		tr["line"] = line
	}
	setOpacity(tr, g.params)
	return tr
}

func synthText(g traceGroup) Trace {
	tr := Trace{
		"type": "scatter",
		"mode": "text",
		"x":    columnAny(g.rows, "x"),
		"y":    columnAny(g.rows, "y"),
	}
	if g.rows.Has("label") {
		tr["text"] = columnAny(g.rows, "label")
	} else if g.rows.Has("text") {
		tr["text"] = columnAny(g.rows, "text")
	}
	font := map[string]any{}
	if c, ok := str(g.params, "colour"); ok {
		font["color"] = c
	}
	if s, ok := num(g.params, "size"); ok {
		font["size"] = s
	}
	if len(font) > 0 {
		tr["textfont"] = font
	}
	return tr
}

func synthPolygon(g traceGroup) Trace {
	// Never assume the canonicalizer's grouping survived splitting.
	rows := groupToNA(g.rows, groupCol, geom.Polygon)
	tr := Trace{
		"type": "scatter",
		"mode": "lines",
		"x":    columnAny(rows, "x"),
		"y":    columnAny(rows, "y"),
		"fill": "tozerox",
	}
	if f, ok := str(g.params, "fill"); ok {
		tr["fillcolor"] = f
	}
	if line := lineBlock(g.params); len(line) > 0 {
		tr["line"] = line
	}
	setOpacity(tr, g.params)
	return tr
}

func synthBox(g traceGroup) Trace {
	tr := Trace{
		"type": "box",
		"y":    columnAny(g.rows, "y"),
	}
	if g.rows.Has("x") {
		tr["x"] = columnAny(g.rows, "x")
	}
	if f, ok := str(g.params, "fill"); ok {
		tr["fillcolor"] = f
	}
	if line := lineBlock(g.params); len(line) > 0 {
		tr["line"] = line
	}
	setOpacity(tr, g.params)
	return tr
}

// synthGrid reshapes a long (x, y, z) table into the 2-D grid trace form:
// axis vectors of the unique sorted x and y values and a row-major z grid.
func synthGrid(g traceGroup, traceType string) Trace {
	zCol := "z"
	if !g.rows.Has(zCol) && g.rows.Has("fill") {
		zCol = "fill"
	}

	xs := uniqueSorted(g.rows, "x")
	ys := uniqueSorted(g.rows, "y")

	xi := map[float64]int{}
	for i, x := range xs {
		xi[x] = i
	}
	yi := map[float64]int{}
	for i, y := range ys {
		yi[y] = i
	}

	grid := make([][]any, len(ys))
	for i := range grid {
		grid[i] = make([]any, len(xs))
	}
	for _, r := range g.rows {
		x, y, z := r["x"], r["y"], r[zCol]
		if x.IsNA() || y.IsNA() {
			continue
		}
		grid[yi[y.Float()]][xi[x.Float()]] = cellAny(z)
	}

	return Trace{
		"type": traceType,
		"x":    anyFloats(xs),
		"y":    anyFloats(ys),
		"z":    grid,
	}
}

func synthDensity2d(g traceGroup) Trace {
	tr := Trace{
		"type": "histogram2dcontour",
		"x":    columnAny(g.rows, "x"),
		"y":    columnAny(g.rows, "y"),
	}
	if c, ok := str(g.params, "colour"); ok {
		tr["line"] = map[string]any{"color": c}
	}
	return tr
}

// synthErrorbar emits the error spec around each center point. Equal up and
// down magnitudes collapse to a symmetric spec.
func synthErrorbar(g traceGroup, horizontal bool) Trace {
	center, lo, hi := "y", "ymin", "ymax"
	errField := "error_y"
	if horizontal {
		center, lo, hi = "x", "xmin", "xmax"
		errField = "error_x"
	}

	up := make([]any, len(g.rows))
	down := make([]any, len(g.rows))
	symmetric := true
	for i, r := range g.rows {
		c := r[center].Float()
		u := r[hi].Float() - c
		d := c - r[lo].Float()
		up[i] = u
		down[i] = d
		if math.Abs(u-d) > errTolerance {
			symmetric = false
		}
	}

	spec := map[string]any{
		"type":  "data",
		"array": up,
	}
	if symmetric {
		spec["symmetric"] = true
	} else {
		spec["symmetric"] = false
		spec["arrayminus"] = down
	}
	if c, ok := str(g.params, "colour"); ok {
		spec["color"] = c
	}

	tr := Trace{
		"type": "scatter",
		"mode": "none",
		"x":    columnAny(g.rows, "x"),
		"y":    columnAny(g.rows, "y"),
	}
	tr[errField] = spec
	return tr
}

// synthRefLine draws one horizontal or vertical reference line across the
// extent the canonicalizer recorded.
func synthRefLine(g traceGroup, interceptCol string) Trace {
	var intercept any
	if len(g.rows) > 0 {
		intercept = cellAny(g.rows[0][interceptCol])
	}

	var xs, ys []any
	if interceptCol == "yintercept" {
		start, end := g.params["xstart"], g.params["xend"]
		xs = []any{start, end}
		ys = []any{intercept, intercept}
	} else {
		start, end := g.params["ystart"], g.params["yend"]
		xs = []any{intercept, intercept}
		ys = []any{start, end}
	}

	tr := Trace{
		"type": "scatter",
		"mode": "lines",
		"x":    xs,
		"y":    ys,
	}
	if line := lineBlock(g.params); len(line) > 0 {
		tr["line"] = line
	}
	return tr
}

// synthAbline spans the full plot width regardless of the layer's own rows.
func synthAbline(g traceGroup) Trace {
	var slope, intercept float64
	if len(g.rows) > 0 {
		slope = g.rows[0]["slope"].Float()
		intercept = g.rows[0]["intercept"].Float()
	}
	xstart, _ := num(g.params, "xstart")
	xend, _ := num(g.params, "xend")

	tr := Trace{
		"type": "scatter",
		"mode": "lines",
		"x":    []any{xstart, xend},
		"y":    []any{slope*xstart + intercept, slope*xend + intercept},
	}
	if line := lineBlock(g.params); len(line) > 0 {
		tr["line"] = line
	}
	return tr
}

// uniqueSorted returns the distinct numeric values of a column, ascending.
func uniqueSorted(t frame.Table, col string) []float64 {
	seen := map[float64]bool{}
	var out []float64
	for _, v := range t.Column(col) {
		if !v.IsNumeric() || seen[v.Float()] {
			continue
		}
		seen[v.Float()] = true
		out = append(out, v.Float())
	}
	sort.Float64s(out)
	return out
}

func anyFloats(fs []float64) []any {
	out := make([]any, len(fs))
	for i, f := range fs {
		out[i] = f
	}
	return out
}
