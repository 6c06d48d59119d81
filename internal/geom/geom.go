// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Plotly-Go Authors

// Package geom defines the closed vocabulary of geometric shapes the
// compiler understands, on both sides of canonicalization: the source geoms
// a layer may carry and the basic geoms a trace synthesizer exists for.
package geom

// Kind is a geometric shape tag.
type Kind string

// Source geoms.
const (
	Point     Kind = "point"
	Jitter    Kind = "jitter"
	Line      Kind = "line"
	Path      Kind = "path"
	Step      Kind = "step"
	Polygon   Kind = "polygon"
	Rect      Kind = "rect"
	Segment   Kind = "segment"
	Bar       Kind = "bar"
	Histogram Kind = "histogram"
	Ribbon    Kind = "ribbon"
	Area      Kind = "area"
	Density   Kind = "density"
	Boxplot   Kind = "boxplot"
	Violin    Kind = "violin"
	Errorbar  Kind = "errorbar"
	Errorbarh Kind = "errorbarh"
	Hline     Kind = "hline"
	Vline     Kind = "vline"
	Abline    Kind = "abline"
	Smooth    Kind = "smooth"
	Text      Kind = "text"
	Tile      Kind = "tile"
	Contour   Kind = "contour"
	Density2d Kind = "density2d"
)

// Synthetic geoms created by the layer compiler when it splits a smoothed
// fit into its line and confidence-band halves.
const (
	SmoothLine   Kind = "smoothLine"
	SmoothRibbon Kind = "smoothRibbon"
)

// basic is the closed set of shapes the trace synthesizers accept.
var basic = map[Kind]bool{
	Path:      true,
	Polygon:   true,
	Point:     true,
	Bar:       true,
	Area:      true,
	Text:      true,
	Boxplot:   true,
	Contour:   true,
	Density2d: true,
	Errorbar:  true,
	Errorbarh: true,
	Hline:     true,
	Vline:     true,
	Abline:    true,
	Step:      true,
	Tile:      true,
}

// IsBasic reports whether a synthesizer exists for the geom.
func IsBasic(k Kind) bool { return basic[k] }

// Sources returns every source geom the compiler accepts, in a stable order.
func Sources() []Kind {
	return []Kind{
		Point, Jitter, Line, Path, Step, Polygon, Rect, Segment, Bar,
		Histogram, Ribbon, Area, Density, Boxplot, Violin, Errorbar,
		Errorbarh, Hline, Vline, Abline, Smooth, Text, Tile, Contour,
		Density2d,
	}
}

// MarkAes returns the mark aesthetics for a geom: the aesthetics whose
// distinct values require a distinct legend entry, and whose companion
// "<aes>.name" columns drive group splitting.
func MarkAes(k Kind) []string {
	switch k {
	case Point, Jitter:
		return []string{"colour", "fill", "shape", "size"}
	case Line, Path, Step, SmoothLine:
		return []string{"colour", "linetype"}
	case Polygon, Rect, Ribbon, Area, Density, SmoothRibbon, Tile:
		return []string{"colour", "fill", "linetype"}
	case Bar, Histogram, Boxplot, Violin:
		return []string{"colour", "fill"}
	case Errorbar, Errorbarh:
		return []string{"colour"}
	case Text:
		return []string{"colour"}
	default:
		return []string{"colour", "fill"}
	}
}
