// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Plotly-Go Authors

package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lelekangnju/plotly/internal/compile"
	"github.com/lelekangnju/plotly/internal/frame"
	"github.com/lelekangnju/plotly/internal/geom"
)

// plotInput is the JSON payload the upstream plot evaluator hands over:
// plot-wide context plus the per-layer computed tables.
type plotInput struct {
	XDiscrete bool                `json:"xDiscrete"`
	YDiscrete bool                `json:"yDiscrete"`
	PanelCols int                 `json:"panelCols"`
	Orderings map[string][]string `json:"orderings"`
	Layers    []layerInput        `json:"layers"`
}

type layerInput struct {
	Geom     string            `json:"geom"`
	Aes      map[string]string `json:"aes"`
	Params   map[string]any    `json:"params"`
	Position string            `json:"position"`
	Stat     string            `json:"stat"`
	Data     []map[string]any  `json:"data"`
	PreStats []map[string]any  `json:"prestats"`
}

// decodePlot reads the plot payload and builds the compiler's inputs.
func decodePlot(r io.Reader) ([]compile.Layer, *compile.Context, error) {
	var in plotInput
	dec := json.NewDecoder(r)
	if err := dec.Decode(&in); err != nil {
		return nil, nil, fmt.Errorf("decoding plot input: %w", err)
	}

	ctx := &compile.Context{
		XDiscrete: in.XDiscrete,
		YDiscrete: in.YDiscrete,
		PanelCols: in.PanelCols,
	}
	if len(in.Orderings) > 0 {
		ctx.Orderings = make(map[string]map[string]int, len(in.Orderings))
		for aes, values := range in.Orderings {
			ranks := make(map[string]int, len(values))
			for i, v := range values {
				ranks[v] = i
			}
			ctx.Orderings[aes] = ranks
		}
	}

	layers := make([]compile.Layer, 0, len(in.Layers))
	for i, li := range in.Layers {
		l, err := decodeLayer(li)
		if err != nil {
			return nil, nil, fmt.Errorf("layer %d: %w", i, err)
		}
		layers = append(layers, l)
	}
	return layers, ctx, nil
}

func decodeLayer(in layerInput) (compile.Layer, error) {
	data, err := decodeTable(in.Data)
	if err != nil {
		return compile.Layer{}, fmt.Errorf("data: %w", err)
	}
	prestats, err := decodeTable(in.PreStats)
	if err != nil {
		return compile.Layer{}, fmt.Errorf("prestats: %w", err)
	}

	position := compile.PositionKind(in.Position)
	if in.Position == "" {
		position = compile.PositionIdentity
	}
	stat := compile.StatKind(in.Stat)
	if in.Stat == "" {
		stat = compile.StatIdentity
	}

	return compile.Layer{
		Geom:     geom.Kind(in.Geom),
		Aes:      in.Aes,
		Params:   in.Params,
		Position: position,
		Stat:     stat,
		Data:     data,
		PreStats: prestats,
	}, nil
}

func decodeTable(rows []map[string]any) (frame.Table, error) {
	out := make([]frame.Row, len(rows))
	for i, raw := range rows {
		row := make(frame.Row, len(raw))
		for col, cell := range raw {
			v, err := decodeCell(cell)
			if err != nil {
				return nil, fmt.Errorf("row %d column %q: %w", i, col, err)
			}
			row[col] = v
		}
		out[i] = row
	}
	return frame.New(out)
}

// decodeCell converts one JSON cell. Bare scalars map directly; the typed
// form {"t": "...", "v": ...} carries time, date and factor values.
func decodeCell(cell any) (frame.Value, error) {
	switch v := cell.(type) {
	case nil:
		return frame.NA(), nil
	case float64:
		return frame.Num(v), nil
	case string:
		return frame.Str(v), nil
	case bool:
		if v {
			return frame.Str("true"), nil
		}
		return frame.Str("false"), nil
	case map[string]any:
		return decodeTypedCell(v)
	}
	return frame.NA(), fmt.Errorf("unsupported cell %T", cell)
}

func decodeTypedCell(cell map[string]any) (frame.Value, error) {
	tag, _ := cell["t"].(string)
	switch tag {
	case "time":
		n, ok := cell["v"].(float64)
		if !ok {
			return frame.NA(), fmt.Errorf("time cell needs a numeric v")
		}
		return frame.Time(n), nil
	case "date":
		n, ok := cell["v"].(float64)
		if !ok {
			return frame.NA(), fmt.Errorf("date cell needs a numeric v")
		}
		return frame.Date(n), nil
	case "factor":
		s, ok := cell["v"].(string)
		if !ok {
			return frame.NA(), fmt.Errorf("factor cell needs a string v")
		}
		var levels []string
		if raw, ok := cell["levels"].([]any); ok {
			for _, lv := range raw {
				if str, ok := lv.(string); ok {
					levels = append(levels, str)
				}
			}
		}
		return frame.Factor(s, levels), nil
	}
	return frame.NA(), fmt.Errorf("unknown cell tag %q", tag)
}
