// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aclements/go-vertex/chart"
)

// DefaultUnit is the benchmark metric plotted when none is given.
const DefaultUnit = "ns/op"

// benchResult is one benchmark result line.
type benchResult struct {
	name   string
	config map[string]string
	result map[string]float64
}

var configRe = regexp.MustCompile(`^(\p{Ll}[^\p{Lu}\s\x85\xa0\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}]*):(?:[ \t]+(.*))?$`)

// parseBench parses Go benchmark results. Configuration block lines
// apply to every result line that follows them.
func parseBench(r io.Reader) ([]*benchResult, error) {
	var results []*benchResult
	config := make(map[string]string)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if m := configRe.FindStringSubmatch(line); m != nil {
			config[m[1]] = m[2]
			continue
		}
		if strings.HasPrefix(line, "Benchmark") {
			if b := parseBenchLine(line, config); b != nil {
				results = append(results, b)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func parseBenchLine(line string, gconfig map[string]string) *benchResult {
	f := strings.Fields(line)
	if len(f) < 4 {
		return nil
	}
	if f[0] != "Benchmark" {
		next, _ := utf8.DecodeRuneInString(f[0][len("Benchmark"):])
		if !unicode.IsUpper(next) {
			return nil
		}
	}
	if n, err := strconv.Atoi(f[1]); err != nil || n <= 0 {
		return nil
	}

	b := &benchResult{
		config: make(map[string]string, len(gconfig)+1),
		result: make(map[string]float64),
	}
	for k, v := range gconfig {
		b.config[k] = v
	}

	name := strings.TrimPrefix(f[0], "Benchmark")
	if i := strings.LastIndex(name, "-"); i >= 0 {
		if _, err := strconv.Atoi(name[i+1:]); err == nil {
			b.config["gomaxprocs"] = name[i+1:]
			name = name[:i]
		}
	}
	parts := strings.Split(name, "/")
	b.name = parts[0]
	for _, part := range parts[1:] {
		if i := strings.Index(part, ":"); i >= 0 {
			b.config[part[:i]] = part[i+1:]
		} else {
			b.name += "/" + part
		}
	}

	for i := 2; i+2 <= len(f); i += 2 {
		val, err := strconv.ParseFloat(f[i], 64)
		if err != nil {
			continue
		}
		b.result[f[i+1]] = val
	}
	return b
}

// readBench builds one series per benchmark name from Go benchmark
// results. y is the unit metric. x is the value of configuration key
// xKey, or the result's run number for that benchmark if xKey is
// empty. Results lacking the unit or the key are skipped.
func readBench(r io.Reader, unit, xKey string) ([]chart.Series, error) {
	if unit == "" {
		unit = DefaultUnit
	}
	results, err := parseBench(r)
	if err != nil {
		return nil, fmt.Errorf("reading benchmark results: %w", err)
	}

	var series []chart.Series
	index := make(map[string]int)
	for _, b := range results {
		y, ok := b.result[unit]
		if !ok {
			continue
		}
		raw, ok := b.config[xKey]
		if xKey != "" && !ok {
			continue
		}
		i, ok := index[b.name]
		if !ok {
			i = len(series)
			index[b.name] = i
			series = append(series, chart.Series{Name: b.name})
		}
		s := &series[i]
		x := chart.Num(float64(len(s.Values)))
		if xKey != "" {
			x = parseX(raw)
		}
		s.Values = append(s.Values, chart.Point{X: x, Y: y})
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("no benchmark results with unit %q", unit)
	}
	return series, nil
}
