// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Plotly-Go Authors

// Package traceschema describes the trace records the compiler emits as a
// JSON Schema and validates instances against it. The downstream renderer
// is strict about field shapes, so tests and the CLI's --validate flag run
// every emitted trace through Validate.
package traceschema

import (
	"fmt"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
)

// coordinate is a single wire coordinate: a number, a category label, or an
// explicit null marking a path break.
func coordinate() *jsonschema.Schema {
	return &jsonschema.Schema{Types: []string{"number", "string", "null"}}
}

func coordinateArray() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "array", Items: coordinate()}
}

func colorField() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string"}
}

func errorSpec() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:     "object",
		Required: []string{"type", "array"},
		Properties: map[string]*jsonschema.Schema{
			"type":       {Type: "string"},
			"array":      {Type: "array", Items: &jsonschema.Schema{Types: []string{"number", "null"}}},
			"arrayminus": {Type: "array", Items: &jsonschema.Schema{Types: []string{"number", "null"}}},
			"symmetric":  {Type: "boolean"},
			"color":      colorField(),
		},
	}
}

// Schema returns the JSON Schema for one trace record.
func Schema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:     "object",
		Required: []string{"type"},
		Properties: map[string]*jsonschema.Schema{
			"type": {
				Type: "string",
				Enum: []any{
					"scatter", "bar", "box", "heatmap", "contour",
					"histogram2dcontour",
				},
			},
			"mode": {
				Type: "string",
				Enum: []any{"none", "markers", "lines", "lines+markers", "text"},
			},
			"x": coordinateArray(),
			"y": coordinateArray(),
			"z": {
				Type: "array",
				Items: &jsonschema.Schema{
					Type:  "array",
					Items: &jsonschema.Schema{Types: []string{"number", "null"}},
				},
			},
			"name":       {Type: "string"},
			"showlegend": {Type: "boolean"},
			"visible":    {Type: "boolean"},
			"opacity":    {Type: "number"},
			"fill":       {Type: "string"},
			"fillcolor":  colorField(),
			"text": {
				Types: []string{"array", "string"},
				Items: &jsonschema.Schema{Types: []string{"string", "number", "null"}},
			},
			"line": {
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"color": colorField(),
					"width": {Type: "number"},
					"dash":  {Type: "string"},
					"shape": {Type: "string"},
				},
			},
			"marker": {
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"color": colorField(),
					"size": {
						Types: []string{"number", "array"},
						Items: &jsonschema.Schema{Type: "number"},
					},
					"symbol":  {Type: "string"},
					"opacity": {Type: "number"},
					"line": {
						Type: "object",
						Properties: map[string]*jsonschema.Schema{
							"color": colorField(),
							"width": {Type: "number"},
						},
					},
				},
			},
			"error_y": errorSpec(),
			"error_x": errorSpec(),
			"xaxis":   {Type: "string", Pattern: "^x[0-9]*$"},
			"yaxis":   {Type: "string", Pattern: "^y[0-9]*$"},
			"bargap":  {Type: "number"},
			"barmode": {Type: "string", Enum: []any{"stack", "group"}},
		},
	}
}

var (
	resolveOnce sync.Once
	resolved    *jsonschema.Resolved
	resolveErr  error
)

// Validate checks one trace record against the schema.
func Validate(trace map[string]any) error {
	resolveOnce.Do(func() {
		resolved, resolveErr = Schema().Resolve(nil)
	})
	if resolveErr != nil {
		return fmt.Errorf("resolving trace schema: %w", resolveErr)
	}
	if err := resolved.Validate(trace); err != nil {
		return fmt.Errorf("trace does not match schema: %w", err)
	}
	return nil
}
