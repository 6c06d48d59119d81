// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Plotly-Go Authors

// Package frame provides the row-oriented data table the plot compiler
// operates on. Cells are typed scalars with an explicit missing (NA) kind;
// tables are immutable by convention and every transform returns a new table.
package frame

import (
	"fmt"
	"time"
)

// Kind identifies the scalar type stored in a Value.
type Kind int

const (
	KindNA Kind = iota
	KindNumber
	KindString
	KindFactor
	KindTime // epoch seconds
	KindDate // epoch days
)

func (k Kind) String() string {
	switch k {
	case KindNA:
		return "na"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindFactor:
		return "factor"
	case KindTime:
		return "time"
	case KindDate:
		return "date"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Value is one typed cell. Number, Time and Date carry their payload in num;
// String and Factor carry it in str. Factor additionally records the ordered
// level set it was drawn from.
type Value struct {
	kind   Kind
	num    float64
	str    string
	levels []string
}

// NA returns the missing value.
func NA() Value { return Value{kind: KindNA} }

// Num returns a numeric value.
func Num(v float64) Value { return Value{kind: KindNumber, num: v} }

// Str returns a string value.
func Str(s string) Value { return Value{kind: KindString, str: s} }

// Factor returns a categorical value drawn from an ordered level set.
func Factor(s string, levels []string) Value {
	return Value{kind: KindFactor, str: s, levels: levels}
}

// Time returns a date-time value encoded as epoch seconds.
func Time(epochSec float64) Value { return Value{kind: KindTime, num: epochSec} }

// Date returns a date-only value encoded as epoch days.
func Date(epochDays float64) Value { return Value{kind: KindDate, num: epochDays} }

// Kind reports the value's scalar kind.
func (v Value) Kind() Kind { return v.kind }

// IsNA reports whether the value is missing.
func (v Value) IsNA() bool { return v.kind == KindNA }

// IsNumeric reports whether the value carries a numeric payload
// (number, time or date).
func (v Value) IsNumeric() bool {
	return v.kind == KindNumber || v.kind == KindTime || v.kind == KindDate
}

// Float returns the numeric payload. NA and textual values yield 0.
func (v Value) Float() float64 {
	if v.IsNumeric() {
		return v.num
	}
	return 0
}

// Text returns the textual payload for string and factor values. Numeric
// values are formatted; NA yields the empty string.
func (v Value) Text() string {
	switch v.kind {
	case KindString, KindFactor:
		return v.str
	case KindNumber:
		return fmt.Sprintf("%g", v.num)
	case KindTime:
		return FormatTime(v.num)
	case KindDate:
		return FormatDate(v.num)
	}
	return ""
}

// Levels returns the ordered level set of a factor value, or nil.
func (v Value) Levels() []string { return v.levels }

// Equal reports whether two values have the same kind and payload.
// Factor levels do not participate in equality.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNA:
		return true
	case KindString, KindFactor:
		return v.str == o.str
	default:
		return v.num == o.num
	}
}

// Less orders two values of the same general class: numerics by payload,
// text by string order. NA sorts after everything.
func (v Value) Less(o Value) bool {
	if v.IsNA() {
		return false
	}
	if o.IsNA() {
		return true
	}
	if v.IsNumeric() && o.IsNumeric() {
		return v.num < o.num
	}
	return v.Text() < o.Text()
}

// FormatTime renders epoch seconds in the canonical axis form.
func FormatTime(epochSec float64) string {
	return time.Unix(int64(epochSec), 0).UTC().Format("2006-01-02 15:04:05")
}

// FormatDate renders epoch days in the canonical axis form.
func FormatDate(epochDays float64) string {
	return time.Unix(int64(epochDays)*86400, 0).UTC().Format("2006-01-02 15:04:05")
}
