// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Plotly-Go Authors

// Package main is the entry point for the plotlyc CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/lelekangnju/plotly/cmd/plotlyc/internal"
)

func main() {
	if err := internal.Run(context.Background(), os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
