// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/aclements/go-vertex/chart"
)

// fromRows converts a table whose first row is a header to series.
// The first column holds x values and each further column is one
// series named by its header. Empty cells are skipped.
func fromRows(rows [][]string) ([]chart.Series, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("table is empty")
	}
	header := rows[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("table needs an x column and at least one series column")
	}
	series := make([]chart.Series, len(header)-1)
	for i, name := range header[1:] {
		series[i].Name = strings.TrimSpace(name)
	}
	for r, row := range rows[1:] {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		x := parseX(row[0])
		for c := 1; c < len(row) && c < len(header); c++ {
			cell := strings.TrimSpace(row[c])
			if cell == "" {
				continue
			}
			y, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %q: %w", r+2, header[c], err)
			}
			series[c-1].Values = append(series[c-1].Values, chart.Point{X: x, Y: y})
		}
	}
	return series, nil
}

func parseX(cell string) chart.XValue {
	cell = strings.TrimSpace(cell)
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return chart.Num(f)
	}
	return chart.Date(cell)
}

func readCSV(r io.Reader) ([]chart.Series, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV dataset: %w", err)
	}
	return fromRows(rows)
}

func loadXLSX(path, sheet string) ([]chart.Series, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	series, err := sheetSeries(f, sheet)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return series, nil
}

func readXLSX(r io.Reader, sheet string) ([]chart.Series, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return sheetSeries(f, sheet)
}

func sheetSeries(f *excelize.File, sheet string) ([]chart.Series, error) {
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheet, err)
	}
	return fromRows(rows)
}
