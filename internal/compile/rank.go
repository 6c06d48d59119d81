// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Plotly-Go Authors

package compile

import (
	"math"
	"sort"
)

// rankTraces orders a layer's traces by their legend sort key and decides
// legend visibility. A declared category ordering ranks traces by name;
// names absent from the ordering sort last and are legend-hidden. Without a
// declared ordering every trace keeps its emission position. Duplicate and
// unset names are legend-hidden. The internal sort key never reaches the
// output.
func rankTraces(traces []Trace, marks []string, ctx *Context) []Trace {
	for _, tr := range traces {
		tr[sortKey] = traceRank(tr, marks, ctx)
	}
	sort.SliceStable(traces, func(i, j int) bool {
		return traces[i][sortKey].(float64) < traces[j][sortKey].(float64)
	})

	seen := map[string]bool{}
	for _, tr := range traces {
		name, hasName := tr["name"].(string)
		visible := hasName && name != "" && !seen[name] && !math.IsInf(tr[sortKey].(float64), 1)
		if hasName && name != "" {
			seen[name] = true
		}
		tr["showlegend"] = visible
		delete(tr, sortKey)
	}
	return traces
}

// traceRank looks the trace's name up in the first declared ordering among
// the layer's mark aesthetics.
func traceRank(tr Trace, marks []string, ctx *Context) float64 {
	name, _ := tr["name"].(string)
	for _, aes := range marks {
		rank, declared, found := ctx.ordering(aes, name)
		if !declared {
			continue
		}
		if !found {
			return math.Inf(1)
		}
		return float64(rank)
	}
	return 0
}
