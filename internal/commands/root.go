// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Plotly-Go Authors

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "plotlyc",
		Short: "Compile layered plot descriptions into chart traces",
		Long: `plotlyc translates the layers of a computed statistical-plot
description into trace records for a JSON-based charting renderer.`,
	}

	registerCompileCmd(rootCmd)
	registerGeomsCmd(rootCmd)
	registerVersionCmd(rootCmd)

	return rootCmd
}
