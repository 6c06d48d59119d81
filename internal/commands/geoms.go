// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Plotly-Go Authors

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lelekangnju/plotly/internal/geom"
)

func registerGeomsCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "geoms",
		Short: "List the geoms the compiler accepts",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, k := range geom.Sources() {
				marker := ""
				if !geom.IsBasic(k) {
					marker = " (canonicalized)"
				}
				fmt.Printf("%s%s\n", k, marker)
			}
			return nil
		},
	}
	parent.AddCommand(cmd)
}
