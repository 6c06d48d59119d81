// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Plotly-Go Authors

package compile

import (
	"sort"

	"github.com/lelekangnju/plotly/internal/frame"
)

// axisVariants lists the aesthetic column variants recoded for one axis.
func axisVariants(axis string) []string {
	return []string{axis, axis + "end", axis + "min", axis + "max"}
}

// recodeAxes replaces numeric placeholder codes on non-continuous axes with
// the original categorical or date values, on both the main and the
// pre-statistics tables. Reformat failures are recorded as warnings and
// leave the best-effort partial column in place; recoding never fails a
// layer.
func recodeAxes(l Layer, ctx *Context) Layer {
	if ctx.XDiscrete {
		l = recodeAxis(l, "x", ctx)
	}
	if ctx.YDiscrete {
		l = recodeAxis(l, "y", ctx)
	}
	return l
}

func recodeAxis(l Layer, axis string, ctx *Context) Layer {
	for _, col := range axisVariants(axis) {
		if !l.Data.Has(col) {
			continue
		}
		switch sourceKind(l, col) {
		case frame.KindTime:
			l = recodeEpoch(l, col, frame.FormatTime, ctx)
		case frame.KindDate:
			l = recodeEpoch(l, col, frame.FormatDate, ctx)
		default:
			l = recodeCategorical(l, col, ctx)
		}
	}
	return l
}

// sourceKind determines the original value kind for a coded column. The
// untouched pre-statistics column is preferred; the companion display-name
// column is consulted only when its kind differs from the coded column
// (same kind means the column was already converted once).
func sourceKind(l Layer, col string) frame.Kind {
	coded := firstKind(l.Data, col)
	if coded == frame.KindTime || coded == frame.KindDate {
		return coded
	}
	if k := firstKind(l.PreStats, col); k != frame.KindNA && k != coded {
		return k
	}
	if k := firstKind(l.Data, col+".name"); k != frame.KindNA && k != coded {
		return k
	}
	return frame.KindNA
}

// firstKind returns the kind of the first non-NA value in a column.
func firstKind(t frame.Table, col string) frame.Kind {
	for _, v := range t.Column(col) {
		if !v.IsNA() {
			return v.Kind()
		}
	}
	return frame.KindNA
}

// recodeEpoch reformats a numerically encoded time or date column to the
// canonical text form, identically on both tables.
func recodeEpoch(l Layer, col string, format func(float64) string, ctx *Context) Layer {
	reform := func(t frame.Table, which string) frame.Table {
		if !t.Has(col) {
			return t
		}
		vals := t.Column(col)
		out := make([]frame.Value, len(vals))
		for i, v := range vals {
			switch {
			case v.IsNA():
				out[i] = v
			case v.IsNumeric():
				out[i] = frame.Str(format(v.Float()))
			default:
				// Malformed for this branch; keep the value.
				ctx.Warnf("axis recode: %s column %q row %d holds a %s value, left as-is", which, col, i, v.Kind())
				out[i] = v
			}
		}
		res, err := t.WithColumn(col, out)
		if err != nil {
			ctx.Warnf("axis recode: %s column %q: %v", which, col, err)
			return t
		}
		return res
	}
	l.Data = reform(l.Data, "data")
	l.PreStats = reform(l.PreStats, "prestats")
	return l
}

// recodeCategorical re-sorts both tables by the coded column and replaces
// the codes with the original categorical values. Positional matching
// against the display-name column is tried first; codes left unmatched are
// re-matched by sorted-name order. A column that still ends up with NA
// entries propagates them as coordinate breaks, never as an error.
// Without a display-name column in either table there is nothing to recover
// from and the column is left untouched.
func recodeCategorical(l Layer, col string, ctx *Context) Layer {
	if !l.Data.Has(col+".name") && !l.PreStats.Has(col+".name") {
		return l
	}
	data := l.Data.SortBy(col)
	pre := l.PreStats.SortBy(col)

	names := codeNames(data, col)
	if len(names) == 0 {
		names = codeNames(pre, col)
	}
	fillByRank(names, data, pre, col)

	apply := func(t frame.Table) frame.Table {
		vals := t.Column(col)
		out := make([]frame.Value, len(vals))
		for i, v := range vals {
			switch {
			case v.Kind() == frame.KindNumber:
				if name, ok := names[v.Float()]; ok {
					out[i] = frame.Str(name)
				} else {
					out[i] = frame.NA()
				}
			default:
				out[i] = v
			}
		}
		res, err := t.WithColumn(col, out)
		if err != nil {
			ctx.Warnf("axis recode: column %q: %v", col, err)
			return t
		}
		return res
	}

	data = apply(data)
	if len(pre) == len(data) && pre.Has(col) {
		// Row counts match and both are sorted by the same codes:
		// copy the recovered column across.
		if res, err := pre.WithColumn(col, data.Column(col)); err == nil {
			pre = res
		}
	} else if pre.Has(col) {
		pre = apply(pre)
	}

	l.Data = data
	l.PreStats = pre
	return l
}

// codeNames builds the code → display-name map from rows where both the
// coded column and its companion name column are present.
func codeNames(t frame.Table, col string) map[float64]string {
	names := map[float64]string{}
	if !t.Has(col) || !t.Has(col+".name") {
		return names
	}
	for _, r := range t {
		code, name := r[col], r[col+".name"]
		if code.Kind() == frame.KindNumber && !name.IsNA() {
			names[code.Float()] = name.Text()
		}
	}
	return names
}

// fillByRank covers codes the positional match missed: the distinct unmapped
// codes and the distinct unclaimed names are each sorted and paired off.
func fillByRank(names map[float64]string, data, pre frame.Table, col string) {
	var codes []float64
	seen := map[float64]bool{}
	for _, t := range []frame.Table{data, pre} {
		for _, v := range t.Column(col) {
			if v.Kind() != frame.KindNumber || seen[v.Float()] {
				continue
			}
			seen[v.Float()] = true
			if _, ok := names[v.Float()]; !ok {
				codes = append(codes, v.Float())
			}
		}
	}
	if len(codes) == 0 {
		return
	}

	claimed := map[string]bool{}
	for _, n := range names {
		claimed[n] = true
	}
	var free []string
	freeSeen := map[string]bool{}
	for _, t := range []frame.Table{data, pre} {
		for _, v := range t.Column(col + ".name") {
			if v.IsNA() || claimed[v.Text()] || freeSeen[v.Text()] {
				continue
			}
			freeSeen[v.Text()] = true
			free = append(free, v.Text())
		}
	}

	sort.Float64s(codes)
	sort.Strings(free)
	for i, c := range codes {
		if i >= len(free) {
			break
		}
		names[c] = free[i]
	}
}
