// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Plotly-Go Authors

// Package config handles plotlyc compile configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lelekangnju/plotly/internal/compile"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// Config represents the plotly.yaml compile configuration file: the
// plot-wide facts the upstream evaluator would normally supply inline.
type Config struct {
	Version int `yaml:"version"`

	// XDiscrete and YDiscrete mark non-continuous position axes.
	XDiscrete bool `yaml:"xDiscrete,omitempty"`
	YDiscrete bool `yaml:"yDiscrete,omitempty"`

	// Orderings declares custom category orderings per mark aesthetic;
	// list position is legend rank.
	Orderings map[string][]string `yaml:"orderings,omitempty"`

	// PanelCols is the facet grid's column count.
	PanelCols int `yaml:"panelCols,omitempty"`

	// Validate runs every emitted trace through the trace schema.
	Validate bool `yaml:"validate,omitempty"`
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) ValidateConfig() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if c.PanelCols < 0 {
		return fmt.Errorf("panelCols must be non-negative, got %d", c.PanelCols)
	}
	return nil
}

// Context builds the per-plot compile context the configuration declares.
func (c *Config) Context() *compile.Context {
	ctx := &compile.Context{
		XDiscrete: c.XDiscrete,
		YDiscrete: c.YDiscrete,
		PanelCols: c.PanelCols,
	}
	if len(c.Orderings) > 0 {
		ctx.Orderings = make(map[string]map[string]int, len(c.Orderings))
		for aes, values := range c.Orderings {
			ranks := make(map[string]int, len(values))
			for i, v := range values {
				ranks[v] = i
			}
			ctx.Orderings[aes] = ranks
		}
	}
	return ctx
}
