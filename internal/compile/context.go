// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Plotly-Go Authors

package compile

import "fmt"

// Context carries the plot-wide state one compile pass needs. It is created
// once per plot and passed explicitly through every stage; nothing in this
// package keeps ambient state, so layers of different plots may be compiled
// concurrently. The two recursive calls for a single smoothed-fit layer
// share one Context and must run in sequence.
type Context struct {
	// XDiscrete and YDiscrete mark the position axes that carry
	// categorical or otherwise non-continuous scales.
	XDiscrete bool
	YDiscrete bool

	// Orderings holds user-declared category orderings per mark
	// aesthetic: value → rank. Traces whose value is absent from a
	// declared ordering sort last and lose their legend entry.
	Orderings map[string]map[string]int

	// PanelCols is the number of facet columns; 0 means no faceting.
	PanelCols int

	// smoothLinePending records that the line half of a smoothed fit was
	// emitted and the ribbon half is due on the next call.
	smoothLinePending bool

	// Warnings accumulates non-fatal conditions. No error in this
	// package aborts a plot; everything recoverable lands here.
	Warnings []string
}

// Warnf records a non-fatal condition.
func (c *Context) Warnf(format string, args ...any) {
	c.Warnings = append(c.Warnings, fmt.Sprintf(format, args...))
}

// ordering returns the declared rank of a value under an aesthetic's custom
// ordering. found is false when no ordering was declared for the aesthetic.
func (c *Context) ordering(aes, value string) (rank int, declared, found bool) {
	if c.Orderings == nil {
		return 0, false, false
	}
	ord, ok := c.Orderings[aes]
	if !ok {
		return 0, false, false
	}
	r, ok := ord[value]
	return r, true, ok
}
