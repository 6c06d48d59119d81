// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Plotly-Go Authors

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lelekangnju/plotly/internal/version"
)

func registerVersionCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(version.Info())
			return nil
		},
	}
	parent.AddCommand(cmd)
}
