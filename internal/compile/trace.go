// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Plotly-Go Authors

package compile

import (
	"github.com/lelekangnju/plotly/internal/frame"
)

// Trace is one renderable series in the target charting format: a flat
// record serialized as-is. A field whose source value is unset is absent
// from the map, never present as nil, because the renderer treats absent and
// null differently for style inheritance.
type Trace map[string]any

// sortKey is the internal legend-ordering field, stripped before emission.
const sortKey = "sortkey"

// cellAny converts a cell to its wire representation. Missing values become
// nil entries, which the renderer draws as a break.
func cellAny(v frame.Value) any {
	switch v.Kind() {
	case frame.KindNA:
		return nil
	case frame.KindNumber:
		return v.Float()
	default:
		return v.Text()
	}
}

// columnAny converts a whole column to wire values, one per row.
func columnAny(t frame.Table, col string) []any {
	out := make([]any, len(t))
	for i, r := range t {
		out[i] = cellAny(r[col])
	}
	return out
}

// trimTrailingNA drops one trailing missing coordinate pair from x and y:
// a path-assembly separator the renderer does not need at the very end.
func trimTrailingNA(tr Trace) {
	xs, xok := tr["x"].([]any)
	ys, yok := tr["y"].([]any)
	if !xok || !yok || len(xs) == 0 || len(xs) != len(ys) {
		return
	}
	last := len(xs) - 1
	if xs[last] == nil && ys[last] == nil {
		tr["x"] = xs[:last]
		tr["y"] = ys[:last]
	}
}

// dashStyle maps source line types onto the renderer's dash vocabulary.
func dashStyle(linetype string) (string, bool) {
	switch linetype {
	case "solid", "1":
		return "solid", true
	case "dashed", "2":
		return "dash", true
	case "dotted", "3":
		return "dot", true
	case "dotdash", "4":
		return "dashdot", true
	case "longdash", "5":
		return "longdash", true
	case "twodash", "6":
		return "longdashdot", true
	}
	return "", false
}

// markerSizeMult scales normalized marker sizes to renderer pixels.
const markerSizeMult = 2.0

// symbolStyle maps a numeric point-shape code to the renderer's symbol
// name. hollow marks the filled-with-outline code range; blank marks the
// invisible shape.
func symbolStyle(code float64) (symbol string, hollow, blank bool) {
	if code == 32 {
		return "", false, true
	}
	if code >= 21 && code <= 25 {
		hollow = true
	}
	switch int(code) {
	case 0, 15, 22:
		symbol = "square"
	case 1, 16, 19, 20, 21:
		symbol = "circle"
	case 2, 17, 24:
		symbol = "triangle-up"
	case 3:
		symbol = "cross-thin-open"
	case 4:
		symbol = "x-thin-open"
	case 5, 18, 23:
		symbol = "diamond"
	case 6, 25:
		symbol = "triangle-down"
	case 7:
		symbol = "square-x-open"
	case 8:
		symbol = "asterisk-open"
	case 9:
		symbol = "diamond-cross-open"
	case 10:
		symbol = "circle-cross-open"
	case 11:
		symbol = "hexagram-open"
	case 12:
		symbol = "square-cross-open"
	case 13:
		symbol = "circle-x-open"
	case 14:
		symbol = "square-open-dot"
	default:
		symbol = "circle"
	}
	// Codes below 15 render as outlines only.
	if code < 15 {
		switch symbol {
		case "square", "circle", "triangle-up", "diamond", "triangle-down":
			symbol += "-open"
		}
	}
	return symbol, hollow, false
}

// lineBlock builds the line style sub-record from a parameter bag.
// Unset fields are omitted.
func lineBlock(params map[string]any) map[string]any {
	line := map[string]any{}
	if c, ok := str(params, "colour"); ok {
		line["color"] = c
	}
	if w, ok := num(params, "size"); ok {
		line["width"] = w * markerSizeMult
	}
	if lt, ok := str(params, "linetype"); ok {
		if dash, found := dashStyle(lt); found {
			line["dash"] = dash
		}
	}
	return line
}

func str(params map[string]any, key string) (string, bool) {
	v, ok := params[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func num(params map[string]any, key string) (float64, bool) {
	v, ok := params[key]
	if !ok || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

// setName copies the display name from the bag onto the trace.
func setName(tr Trace, params map[string]any) {
	if name, ok := str(params, "name"); ok && name != "" {
		tr["name"] = name
	}
}

// setOpacity copies the alpha parameter onto the trace.
func setOpacity(tr Trace, params map[string]any) {
	if a, ok := num(params, "alpha"); ok {
		tr["opacity"] = a
	}
}
