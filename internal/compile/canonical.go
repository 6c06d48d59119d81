// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Plotly-Go Authors

package compile

import (
	"fmt"
	"sort"

	"github.com/lelekangnju/plotly/internal/frame"
	"github.com/lelekangnju/plotly/internal/geom"
)

// smoothLineColor is the accent color a smoothed-fit line falls back to
// when no color aesthetic is mapped.
const smoothLineColor = "#3366FF"

// groupCol is the column tagging which rows form one continuous path.
const groupCol = "group"

// toBasic rewrites a layer's geom into the basic set the trace synthesizers
// accept. Geoms without a rewrite rule are already basic and pass through
// unchanged. Every rule is a pure Layer → Layer function.
func toBasic(l Layer, ctx *Context) Layer {
	switch l.Geom {
	case geom.Point, geom.Jitter:
		if _, ok := l.Aes["size"]; ok {
			if min, max, ok := l.PreStats.Range("size"); ok {
				l = l.withParam("sizemin", min).withParam("sizemax", max)
			}
		}
		return l.withGeom(geom.Point, l.Data.Copy())

	case geom.Line:
		// Lines must be monotonic in x; paths keep their row order.
		return l.withGeom(geom.Path, groupToNA(l.Data.SortBy("x"), groupCol, geom.Path))

	case geom.Path:
		return l.withGeom(geom.Path, groupToNA(l.Data, groupCol, geom.Path))

	case geom.Step:
		return l.withGeom(geom.Step, groupToNA(l.Data, groupCol, geom.Step))

	case geom.Segment:
		return l.withGeom(geom.Path, groupToNA(segmentRows(l.Data), groupCol, geom.Path))

	case geom.Rect:
		return l.withGeom(geom.Polygon, groupToNA(rectRows(l.Data), groupCol, geom.Polygon))

	case geom.Ribbon:
		return l.withGeom(geom.Polygon, ribbonTable(l.Data))

	case geom.Bar:
		t := groupToNA(l.Data, groupCol, geom.Bar)
		// Bars with undefined height are omitted, not rendered as gaps.
		t = t.Filter(func(r frame.Row) bool { return !r["y"].IsNA() })
		return l.withGeom(geom.Bar, t)

	case geom.Boxplot:
		// The summary data cannot feed the renderer's own box statistics;
		// substitute the pre-statistics rows.
		if l.Data.Has("fill") {
			if v := firstNonNA(l.Data, "fill"); !v.IsNA() {
				l = l.withParam("fill", v.Text())
			}
		}
		return l.withGeom(geom.Boxplot, l.PreStats.Copy())

	case geom.Contour, geom.Density2d:
		return l.withGeom(l.Geom, l.PreStats.Copy())

	case geom.Density:
		if _, ok := l.Aes["fill"]; !ok {
			if _, set := l.param("fill"); !set {
				if _, set := l.param("alpha"); !set {
					l = l.withParam("alpha", 0.0)
				}
			}
		}
		if _, set := l.param("colour"); !set {
			l = l.withParam("colour", "black")
		}
		return l.withGeom(geom.Area, l.Data.Copy())

	case geom.Abline:
		if min, max, ok := l.PreStats.Range("x"); ok {
			l = l.withParam("xstart", min).withParam("xend", max)
		}
		return l.withGeom(geom.Abline, l.Data.Copy())

	case geom.Hline:
		lo, hi, ok := axisExtent(l.PreStats, "x")
		if ok {
			l = l.withParam("xstart", lo).withParam("xend", hi)
		}
		return l.withGeom(geom.Hline, l.Data.Copy())

	case geom.Vline:
		lo, hi, ok := axisExtent(l.PreStats, "y")
		if ok {
			l = l.withParam("ystart", lo).withParam("yend", hi)
		}
		return l.withGeom(geom.Vline, l.Data.Copy())

	case geom.SmoothLine:
		if _, ok := l.Aes["colour"]; !ok {
			if _, set := l.param("colour"); !set {
				l = l.withParam("colour", smoothLineColor)
			}
		}
		return l.withGeom(geom.Path, groupToNA(l.Data, groupCol, geom.Path))

	case geom.SmoothRibbon:
		if _, set := l.param("alpha"); !set {
			l = l.withParam("alpha", 0.2)
		}
		return l.withGeom(geom.Polygon, ribbonTable(l.Data))

	default:
		return l
	}
}

// segmentRows duplicates each row as a start/end 2-row group tagged by the
// originating row index.
func segmentRows(t frame.Table) frame.Table {
	out := make(frame.Table, 0, 2*len(t))
	for i, r := range t {
		start := r.Copy()
		delete(start, "xend")
		delete(start, "yend")
		start[groupCol] = frame.Num(float64(i))

		end := start.Copy()
		end["x"] = r["xend"]
		end["y"] = r["yend"]

		out = append(out, start, end)
	}
	return out
}

// rectRows expands each row into the four corner vertices of its rectangle,
// tagged by the originating row index.
func rectRows(t frame.Table) frame.Table {
	out := make(frame.Table, 0, 4*len(t))
	for i, r := range t {
		corner := func(xc, yc string) frame.Row {
			v := r.Copy()
			v["x"] = r[xc]
			v["y"] = r[yc]
			delete(v, "xmin")
			delete(v, "xmax")
			delete(v, "ymin")
			delete(v, "ymax")
			v[groupCol] = frame.Num(float64(i))
			return v
		}
		out = append(out,
			corner("xmin", "ymin"),
			corner("xmin", "ymax"),
			corner("xmax", "ymax"),
			corner("xmax", "ymin"),
		)
	}
	return out
}

// axisExtent returns a reference line's span along an axis: the numeric
// min/max of the column, except for categorical columns where it is the
// first and last of the sorted values actually present.
func axisExtent(t frame.Table, col string) (lo, hi any, ok bool) {
	if k := firstKind(t, col); k == frame.KindString || k == frame.KindFactor {
		var vals []string
		seen := map[string]bool{}
		for _, v := range t.Column(col) {
			if v.IsNA() || seen[v.Text()] {
				continue
			}
			seen[v.Text()] = true
			vals = append(vals, v.Text())
		}
		if len(vals) == 0 {
			return nil, nil, false
		}
		sort.Strings(vals)
		return vals[0], vals[len(vals)-1], true
	}
	min, max, found := t.Range(col)
	if !found {
		return nil, nil, false
	}
	return min, max, true
}

// firstNonNA returns the first non-missing value in a column.
func firstNonNA(t frame.Table, col string) frame.Value {
	for _, v := range t.Column(col) {
		if !v.IsNA() {
			return v
		}
	}
	return frame.NA()
}

// describeGeom names a geom for warnings, including its canonical form when
// the two differ.
func describeGeom(orig, basic geom.Kind) string {
	if orig == basic {
		return string(orig)
	}
	return fmt.Sprintf("%s (canonicalized to %s)", orig, basic)
}
