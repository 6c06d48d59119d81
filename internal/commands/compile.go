// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Plotly-Go Authors

package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lelekangnju/plotly/internal/compile"
	"github.com/lelekangnju/plotly/internal/config"
	"github.com/lelekangnju/plotly/internal/prompts"
	"github.com/lelekangnju/plotly/internal/traceschema"
)

type compileOptions struct {
	output     string
	configPath string
	validate   bool
	force      bool
}

func registerCompileCmd(parent *cobra.Command) {
	opts := &compileOptions{}

	cmd := &cobra.Command{
		Use:   "compile <plot.json>",
		Short: "Compile a plot description into trace records",
		Long: `Compile reads a computed plot description (layers with their data and
pre-statistics tables) and emits one JSON array of trace records.`,
		Example: `  # Compile to stdout
  plotlyc compile plot.json

  # Compile to a file, validating every trace against the schema
  plotlyc compile plot.json --output traces.json --validate

  # Apply axis and legend settings from a config file
  plotlyc compile plot.json --config plotly.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Compile configuration file (plotly.yaml)")
	cmd.Flags().BoolVar(&opts.validate, "validate", false, "Validate emitted traces against the trace schema")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite the output file without asking")

	parent.AddCommand(cmd)
}

func runCompile(inputPath string, opts *compileOptions) error {
	in, err := os.Open(inputPath) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck

	layers, ctx, err := decodePlot(in)
	if err != nil {
		return err
	}

	if opts.configPath != "" {
		cfg, err := config.Load(opts.configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.ValidateConfig(); err != nil {
			return fmt.Errorf("config %s: %w", opts.configPath, err)
		}
		// Config wins over the inline plot context.
		ctx = cfg.Context()
		if cfg.Validate {
			opts.validate = true
		}
	}

	traces := compile.Compile(layers, ctx)
	if traces == nil {
		// Emit an empty array, not null, when nothing compiled.
		traces = []compile.Trace{}
	}

	if opts.validate {
		for i, tr := range traces {
			if err := traceschema.Validate(tr); err != nil {
				return fmt.Errorf("trace %d: %w", i, err)
			}
		}
	}

	out, err := json.MarshalIndent(traces, "", "  ")
	if err != nil {
		return err
	}

	prompts.PrintWarnings(ctx.Warnings)

	if opts.output == "" {
		fmt.Println(string(out))
		return nil
	}

	if !opts.force {
		if _, err := os.Stat(opts.output); err == nil {
			ok, err := prompts.ConfirmOverwrite(opts.output)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("aborted: %s exists", opts.output)
			}
		}
	}
	if err := os.WriteFile(opts.output, out, 0o644); err != nil { //nolint:gosec
		return err
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Layers", Value: fmt.Sprintf("%d", len(layers))},
		{Label: "Traces", Value: fmt.Sprintf("%d", len(traces))},
		{Label: "Output", Value: opts.output},
	}, "Plot compiled")
	return nil
}
