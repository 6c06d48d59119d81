// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Plotly-Go Authors

package compile

import (
	"github.com/lelekangnju/plotly/internal/frame"
	"github.com/lelekangnju/plotly/internal/geom"
)

// separator returns a missing-coordinate row derived from the block's first
// row: every column keeps its value except x and y, which are set to NA. The
// renderer breaks the path at such rows.
func separator(first frame.Row) frame.Row {
	sep := first.Copy()
	sep["x"] = frame.NA()
	sep["y"] = frame.NA()
	return sep
}

// groupToNA reorders rows tagged with a group id into one coordinate stream,
// inserting a missing-coordinate separator row between groups. For polygon
// targets each group's ring is re-closed by retracing its first vertex, and
// a backward pass adds the return strokes needed to render multiple rings
// without fill bleed. The group-id column does not appear in the output.
func groupToNA(tbl frame.Table, groupCol string, target geom.Kind) frame.Table {
	if len(tbl) == 0 {
		return frame.Table{}
	}

	var blocks []frame.Table
	if !tbl.Has(groupCol) {
		blocks = []frame.Table{tbl.Copy()}
	} else {
		// Partition by group id, preserving first-appearance order.
		index := map[string]int{}
		for _, r := range tbl {
			key := r[groupCol].Text()
			i, ok := index[key]
			if !ok {
				i = len(blocks)
				index[key] = i
				blocks = append(blocks, nil)
			}
			blocks[i] = append(blocks[i], r.Copy())
		}
	}

	polygon := target == geom.Polygon

	var out frame.Table
	for _, b := range blocks {
		out = append(out, b...)
		if polygon && !closed(b) {
			// Close the ring before the break.
			out = append(out, b[0].Copy())
		}
		out = append(out, separator(b[0]))
	}

	if polygon && len(blocks) > 1 {
		// Return strokes through the interior blocks, then close the
		// overall path back to the start.
		for i := 1; i < len(blocks)-1; i++ {
			out = append(out, blocks[i][0].Copy())
			out = append(out, separator(blocks[i][0]))
		}
		out = append(out, blocks[0][0].Copy())
	}

	if len(out) > 0 {
		last := out[len(out)-1]
		if last["x"].IsNA() && last["y"].IsNA() {
			out = out[:len(out)-1]
		}
	}

	if tbl.Has(groupCol) {
		out = out.DropColumn(groupCol)
	}
	return out
}

// closed reports whether a block's last vertex already coincides with its
// first, so re-assembling an assembled ring stays a no-op.
func closed(b frame.Table) bool {
	if len(b) < 2 {
		return false
	}
	first, last := b[0], b[len(b)-1]
	return first["x"].Equal(last["x"]) && first["y"].Equal(last["y"])
}

// ribbonTable turns a min/max band into a single closed polygon ring: the
// upper edge walked left to right, a drop to the lower edge at the last x,
// then the lower edge walked right to left. Output has 2N+1 rows for an
// N-row band. Callers needing per-group ribbons call this once per group.
func ribbonTable(tbl frame.Table) frame.Table {
	if len(tbl) == 0 {
		return frame.Table{}
	}
	asc := tbl.SortBy("x")

	edge := func(r frame.Row, bound string) frame.Row {
		out := r.Copy()
		out["y"] = r[bound]
		delete(out, "ymin")
		delete(out, "ymax")
		return out
	}

	out := make(frame.Table, 0, 2*len(asc)+1)
	for _, r := range asc {
		out = append(out, edge(r, "ymax"))
	}
	out = append(out, edge(asc[len(asc)-1], "ymin"))
	for i := len(asc) - 1; i >= 0; i-- {
		out = append(out, edge(asc[i], "ymin"))
	}
	return out
}
