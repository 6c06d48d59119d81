// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Plotly-Go Authors

// Package compile translates one layer of a layered plot description into
// trace records for a JSON-based charting renderer. The pipeline is
// recode → canonicalize → split → synthesize → rank, orchestrated per layer
// by CompileLayer.
package compile

import (
	"github.com/lelekangnju/plotly/internal/frame"
	"github.com/lelekangnju/plotly/internal/geom"
)

// PositionKind is a layer's position-adjustment policy tag.
type PositionKind string

const (
	PositionIdentity PositionKind = "identity"
	PositionStack    PositionKind = "stack"
	PositionFill     PositionKind = "fill"
	PositionDodge    PositionKind = "dodge"
	PositionJitter   PositionKind = "jitter"
)

// StatKind is a layer's statistic tag.
type StatKind string

const (
	StatIdentity StatKind = "identity"
	StatSmooth   StatKind = "smooth"
	StatBin      StatKind = "bin"
	StatDensity  StatKind = "density"
	StatBoxplot  StatKind = "boxplot"
)

// Layer is one geometric layer handed in by the upstream plot evaluator,
// with its summary data already computed. Layers are immutable after
// handoff; pipeline stages version them forward by returning new values.
type Layer struct {
	Geom     geom.Kind
	Aes      map[string]string // aesthetic name → source column identifier
	Data     frame.Table       // computed rows
	PreStats frame.Table       // rows before the statistical transform
	Params   map[string]any    // geometry/statistic parameter bag
	Position PositionKind
	Stat     StatKind
}

// withGeom returns a copy of the layer with a new geom tag and data table.
func (l Layer) withGeom(k geom.Kind, data frame.Table) Layer {
	l.Geom = k
	l.Data = data
	return l
}

// withParam returns a copy of the layer with one parameter set. The
// parameter bag is copied; the receiver's bag is never mutated.
func (l Layer) withParam(key string, val any) Layer {
	params := make(map[string]any, len(l.Params)+1)
	for k, v := range l.Params {
		params[k] = v
	}
	params[key] = val
	l.Params = params
	return l
}

// param returns a parameter if present and non-nil.
func (l Layer) param(key string) (any, bool) {
	v, ok := l.Params[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// paramStr returns a string-valued parameter.
func (l Layer) paramStr(key string) (string, bool) {
	v, ok := l.param(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// paramFloat returns a numeric parameter, accepting the numeric types a
// JSON decode can produce.
func (l Layer) paramFloat(key string) (float64, bool) {
	v, ok := l.param(key)
	if !ok {
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

// paramBool returns a boolean parameter.
func (l Layer) paramBool(key string) (bool, bool) {
	v, ok := l.param(key)
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}
