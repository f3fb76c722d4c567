// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command vertexchart draws line charts of datasets.
//
// The chart is described by an optional YAML configuration file (see
// package internal/config) and draws series read from JSON, YAML,
// CSV, XLSX, or Go benchmark result files.
//
//	vertexchart render -c chart.yaml -o chart.svg
//	vertexchart render -d bench.txt --unit B/op -o allocs.png
//	vertexchart render -d data.csv --table
//	vertexchart watch -c chart.yaml -o chart.svg
//	vertexchart serve -c chart.yaml --addr :8080
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app holds the flags shared by all commands.
type app struct {
	config  string
	data    string
	format  string
	sheet   string
	unit    string
	xKey    string
	width   float64
	height  float64
	verbose bool

	log *zap.Logger
}

func main() {
	if err := newRootCmd(new(app)).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:          "vertexchart",
		Short:        "Draw line charts of datasets",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.log != nil {
				return nil
			}
			var err error
			if a.verbose {
				a.log, err = zap.NewDevelopment()
			} else {
				a.log, err = zap.NewProduction()
			}
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				a.log.Sync()
			}
		},
	}

	f := root.PersistentFlags()
	f.StringVarP(&a.config, "config", "c", "", "read chart configuration from `file`")
	f.StringVarP(&a.data, "data", "d", "", "read series from `file` (- for stdin; default: data.path of the configuration)")
	f.StringVar(&a.format, "data-format", "", "dataset `format`: json, yaml, csv, xlsx, or bench (default: from the file extension)")
	f.StringVar(&a.sheet, "sheet", "", "XLSX worksheet `name` (default: the first sheet)")
	f.StringVar(&a.unit, "unit", "", "benchmark `unit` to plot (default: ns/op)")
	f.StringVar(&a.xKey, "x-key", "", "benchmark configuration `key` that gives x values (default: run number)")
	f.Float64Var(&a.width, "width", 0, "chart width in `pixels` (default: size.width of the configuration, or 800)")
	f.Float64Var(&a.height, "height", 0, "chart height in `pixels` (default: from the aspect ratio)")
	f.BoolVarP(&a.verbose, "verbose", "v", false, "log debugging information")

	root.AddCommand(newRenderCmd(a), newWatchCmd(a), newServeCmd(a))
	return root
}
