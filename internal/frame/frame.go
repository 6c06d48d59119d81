// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Plotly-Go Authors

package frame

import (
	"fmt"
	"sort"
)

// Row maps column names to cell values.
type Row map[string]Value

// Copy returns an independent copy of the row.
func (r Row) Copy() Row {
	c := make(Row, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}

// Table is an ordered sequence of rows sharing one column set.
type Table []Row

// New validates that every row carries the same column set and returns the
// table. Column presence is checked once here, at the boundary where a table
// is received from upstream, so transforms need not re-validate.
func New(rows []Row) (Table, error) {
	if len(rows) == 0 {
		return Table{}, nil
	}
	cols := rows[0]
	for i, r := range rows[1:] {
		if len(r) != len(cols) {
			return nil, fmt.Errorf("row %d has %d columns, row 0 has %d", i+1, len(r), len(cols))
		}
		for k := range cols {
			if _, ok := r[k]; !ok {
				return nil, fmt.Errorf("row %d is missing column %q", i+1, k)
			}
		}
	}
	return Table(rows), nil
}

// Columns returns the table's column names in sorted order.
// An empty table has no columns.
func (t Table) Columns() []string {
	if len(t) == 0 {
		return nil
	}
	cols := make([]string, 0, len(t[0]))
	for k := range t[0] {
		cols = append(cols, k)
	}
	sort.Strings(cols)
	return cols
}

// Has reports whether the table has the named column.
func (t Table) Has(col string) bool {
	if len(t) == 0 {
		return false
	}
	_, ok := t[0][col]
	return ok
}

// Copy returns a deep per-row copy of the table.
func (t Table) Copy() Table {
	c := make(Table, len(t))
	for i, r := range t {
		c[i] = r.Copy()
	}
	return c
}

// Filter returns the rows for which pred is true, in order.
func (t Table) Filter(pred func(Row) bool) Table {
	out := make(Table, 0, len(t))
	for _, r := range t {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// DropNA returns the rows with no missing value in any column.
// Filtering an already-filtered table is a no-op.
func (t Table) DropNA() Table {
	return t.Filter(func(r Row) bool {
		for _, v := range r {
			if v.IsNA() {
				return false
			}
		}
		return true
	})
}

// SortBy returns a new table stably sorted ascending by the named column.
// NA values sort last. Tables without the column are returned unchanged.
func (t Table) SortBy(col string) Table {
	if !t.Has(col) {
		return t.Copy()
	}
	out := t.Copy()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i][col].Less(out[j][col])
	})
	return out
}

// Range returns the minimum and maximum of a numeric column, skipping NAs.
// ok is false when the column is absent or holds no numeric value.
func (t Table) Range(col string) (min, max float64, ok bool) {
	for _, r := range t {
		v, present := r[col]
		if !present || !v.IsNumeric() {
			continue
		}
		f := v.Float()
		if !ok {
			min, max, ok = f, f, true
			continue
		}
		if f < min {
			min = f
		}
		if f > max {
			max = f
		}
	}
	return min, max, ok
}

// Column returns the column's values in row order. Absent columns yield nil.
func (t Table) Column(col string) []Value {
	if !t.Has(col) {
		return nil
	}
	out := make([]Value, len(t))
	for i, r := range t {
		out[i] = r[col]
	}
	return out
}

// WithColumn returns a copy of the table with the column replaced (or added)
// from vals, which must have one entry per row.
func (t Table) WithColumn(col string, vals []Value) (Table, error) {
	if len(vals) != len(t) {
		return nil, fmt.Errorf("column %q has %d values for %d rows", col, len(vals), len(t))
	}
	out := t.Copy()
	for i := range out {
		out[i][col] = vals[i]
	}
	return out, nil
}

// DropColumn returns a copy of the table without the named column.
func (t Table) DropColumn(col string) Table {
	out := make(Table, len(t))
	for i, r := range t {
		c := r.Copy()
		delete(c, col)
		out[i] = c
	}
	return out
}
