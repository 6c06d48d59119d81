// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Plotly-Go Authors

package compile

import (
	"strings"

	"github.com/lelekangnju/plotly/internal/frame"
	"github.com/lelekangnju/plotly/internal/geom"
)

// panelCol is the facet cell id column attached by the upstream evaluator.
const panelCol = "PANEL"

// traceGroup is one legend-distinct row group headed for a synthesizer,
// with the parameter bag it resolved.
type traceGroup struct {
	rows   frame.Table
	params map[string]any
	panel  frame.Value // first row's panel id; NA when unfaceted
}

// splitGroups partitions a canonicalized layer's rows into the groups that
// must render as distinct legend entries or facet panels. Rows matching no
// split criterion stay a single group. Reference lines split purely on
// (panel, intercept).
func splitGroups(l Layer) []traceGroup {
	if l.Geom == geom.Hline || l.Geom == geom.Vline {
		return splitIntercepts(l)
	}

	var keyAes []string
	for _, a := range geom.MarkAes(l.Geom) {
		if l.Data.Has(a + ".name") {
			keyAes = append(keyAes, a)
		}
	}
	faceted := l.Data.Has(panelCol)
	if len(keyAes) == 0 && !faceted {
		return []traceGroup{{rows: l.Data, params: copyParams(l.Params), panel: panelOf(l.Data)}}
	}

	keyOf := func(r frame.Row) string {
		var parts []string
		if faceted {
			parts = append(parts, r[panelCol].Text())
		}
		for _, a := range keyAes {
			parts = append(parts, r[a+".name"].Text())
		}
		return strings.Join(parts, "\x00")
	}

	var groups []traceGroup
	index := map[string]int{}
	for _, r := range l.Data {
		key := keyOf(r)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, traceGroup{params: copyParams(l.Params)})
		}
		groups[i].rows = append(groups[i].rows, r)
	}

	for i := range groups {
		g := &groups[i]
		g.panel = panelOf(g.rows)

		var nameParts []string
		for _, a := range keyAes {
			if v := g.rows[0][a+".name"]; !v.IsNA() {
				nameParts = append(nameParts, v.Text())
			}
			// The styled value overrides the bag only when the group
			// resolved to a single distinct value.
			if v, ok := singleValue(g.rows, a); ok {
				g.params[a] = v.Text()
			}
		}
		if len(nameParts) > 0 {
			g.params["name"] = strings.Join(nameParts, "/")
		}
	}
	return groups
}

// splitIntercepts gives each distinct (panel, intercept) its own trace,
// regardless of other aesthetics.
func splitIntercepts(l Layer) []traceGroup {
	interceptCol := "yintercept"
	if l.Geom == geom.Vline {
		interceptCol = "xintercept"
	}

	var groups []traceGroup
	index := map[string]int{}
	for _, r := range l.Data {
		key := r[panelCol].Text() + "\x00" + r[interceptCol].Text()
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, traceGroup{params: copyParams(l.Params)})
		}
		groups[i].rows = append(groups[i].rows, r)
	}
	for i := range groups {
		groups[i].panel = panelOf(groups[i].rows)
	}
	return groups
}

// singleValue returns the column's value when the group holds exactly one
// distinct non-NA value.
func singleValue(t frame.Table, col string) (frame.Value, bool) {
	if !t.Has(col) {
		return frame.NA(), false
	}
	var found frame.Value
	ok := false
	for _, v := range t.Column(col) {
		if v.IsNA() {
			continue
		}
		if ok && !found.Equal(v) {
			return frame.NA(), false
		}
		found, ok = v, true
	}
	return found, ok
}

func panelOf(t frame.Table) frame.Value {
	if len(t) == 0 || !t.Has(panelCol) {
		return frame.NA()
	}
	return t[0][panelCol]
}

func copyParams(p map[string]any) map[string]any {
	out := make(map[string]any, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
