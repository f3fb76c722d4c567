// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset reads chart series from files.
//
// Supported formats are JSON and YAML lists of series, CSV and XLSX
// tables with one x column followed by one column per series, and Go
// benchmark results.
package dataset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aclements/go-vertex/chart"
)

// Format is a dataset file format.
type Format string

const (
	JSON  Format = "json"
	YAML  Format = "yaml"
	CSV   Format = "csv"
	XLSX  Format = "xlsx"
	Bench Format = "bench"
)

// Options control how a dataset is read.
type Options struct {
	// Format is the file format. If empty, it is inferred from
	// the file extension.
	Format Format

	// Sheet is the XLSX worksheet to read. The default is the
	// first sheet.
	Sheet string

	// Unit is the benchmark metric to plot, such as "ns/op".
	Unit string

	// XKey is the benchmark configuration key that supplies x
	// values. If empty, x is the run number of each result.
	XKey string
}

// DetectFormat infers the format of path from its extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".csv":
		return CSV, nil
	case ".xlsx":
		return XLSX, nil
	case ".txt", ".bench":
		return Bench, nil
	}
	return "", fmt.Errorf("cannot infer dataset format of %s", path)
}

// Load reads the series in the file at path. A path of "-" reads
// standard input, in which case opts.Format must be set.
func Load(path string, opts Options) ([]chart.Series, error) {
	if opts.Format == "" {
		f, err := DetectFormat(path)
		if err != nil {
			return nil, err
		}
		opts.Format = f
	}
	if path == "-" {
		return Read(os.Stdin, opts)
	}
	if opts.Format == XLSX {
		return loadXLSX(path, opts.Sheet)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	series, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return series, nil
}

// Read reads series in format opts.Format from r.
func Read(r io.Reader, opts Options) ([]chart.Series, error) {
	switch opts.Format {
	case JSON:
		return readJSON(r)
	case YAML:
		return readYAML(r)
	case CSV:
		return readCSV(r)
	case XLSX:
		return readXLSX(r, opts.Sheet)
	case Bench:
		return readBench(r, opts.Unit, opts.XKey)
	case "":
		return nil, fmt.Errorf("no dataset format given")
	}
	return nil, fmt.Errorf("unknown dataset format %q", opts.Format)
}
