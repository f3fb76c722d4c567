// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aclements/go-gg/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aclements/go-vertex/chart"
	"github.com/aclements/go-vertex/internal/rasterize"
)

type renderFlags struct {
	out         string
	format      string
	table       bool
	scale       float64
	quality     int
	chromeFlags string
	timeout     time.Duration
}

func newRenderCmd(a *app) *cobra.Command {
	var rf renderFlags
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a chart to SVG, PNG, or JPEG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, a, &rf)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&rf.out, "output", "o", "", "write output to `file` (default: stdout)")
	f.StringVar(&rf.format, "format", "", "output `format`: svg, png, or jpeg (default: from the output file extension, or svg)")
	f.BoolVar(&rf.table, "table", false, "print the series as a table instead of a chart")
	f.Float64Var(&rf.scale, "scale", 1, "scale raster output by `factor`")
	f.IntVar(&rf.quality, "quality", 90, "JPEG `quality`")
	f.StringVar(&rf.chromeFlags, "chrome-flags", "", "extra Chrome command line `flags` for raster output")
	f.DurationVar(&rf.timeout, "timeout", time.Minute, "give up on raster output after `duration`")
	return cmd
}

// outputFormat returns the output format from the flag or the output
// file extension.
func (rf *renderFlags) outputFormat() string {
	if rf.format != "" {
		return strings.ToLower(rf.format)
	}
	switch ext := strings.ToLower(filepath.Ext(rf.out)); ext {
	case ".png", ".jpg", ".jpeg":
		return ext[1:]
	}
	return "svg"
}

func runRender(cmd *cobra.Command, a *app, rf *renderFlags) error {
	s, err := openSession(a)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	var file *os.File
	if rf.out != "" {
		file, err = os.Create(rf.out)
		if err != nil {
			return err
		}
		defer file.Close()
		w = file
	}

	if rf.table {
		writeTable(w, s.chart.Data())
		return closeOutput(file)
	}

	format := rf.outputFormat()
	if format == "svg" {
		if err := s.writeSVG(w); err != nil {
			return err
		}
		return closeOutput(file)
	}

	rformat, err := rasterize.ParseFormat(format)
	if err != nil {
		return err
	}
	if f, ok := w.(*os.File); ok && file == nil {
		if err := rasterize.CheckOutput(f); err != nil {
			return err
		}
	}
	var svg bytes.Buffer
	if err := s.writeSVG(&svg); err != nil {
		return err
	}
	g := s.chart.Geometry()
	opts := rasterize.Options{
		Width:       int(math.Ceil(g.Width)),
		Height:      int(math.Ceil(g.Height)),
		Format:      rformat,
		Quality:     rf.quality,
		Scale:       rf.scale,
		ChromeFlags: rf.chromeFlags,
		Timeout:     rf.timeout,
	}
	a.log.Debug("rasterizing", zap.Int("width", opts.Width), zap.Int("height", opts.Height), zap.String("format", format))
	if err := rasterize.Render(cmd.Context(), w, svg.Bytes(), opts); err != nil {
		return err
	}
	return closeOutput(file)
}

func closeOutput(f *os.File) error {
	if f == nil {
		return nil
	}
	return f.Close()
}

// writeTable prints data with one row per point.
func writeTable(w io.Writer, data []chart.Series) {
	var names, xs []string
	var ys []float64
	for _, s := range data {
		for _, p := range s.Values {
			names = append(names, s.Name)
			xs = append(xs, p.X.String())
			ys = append(ys, p.Y)
		}
	}
	tab := new(table.Builder).
		Add("series", names).
		Add("x", xs).
		Add("y", ys).
		Done()
	table.Fprint(w, tab)
	if len(names) == 0 {
		fmt.Fprintln(w, "(no points)")
	}
}
