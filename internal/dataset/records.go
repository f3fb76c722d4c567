// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aclements/go-vertex/chart"
)

// record is the JSON and YAML form of a series.
type record struct {
	Name          string    `json:"name" yaml:"name"`
	ID            string    `json:"id" yaml:"id"`
	Color         string    `json:"color" yaml:"color"`
	StrokeWidth   float64   `json:"strokeWidth" yaml:"strokeWidth"`
	IsActive      *bool     `json:"isActive" yaml:"isActive"`
	DashArray     []float64 `json:"dashArray" yaml:"dashArray"`
	Interpolation string    `json:"interpolation" yaml:"interpolation"`
	Type          string    `json:"type" yaml:"type"`
	Values        []point   `json:"values" yaml:"values"`
}

type point struct {
	X xValue   `json:"x" yaml:"x"`
	Y *float64 `json:"y" yaml:"y"`
}

// xValue decodes a number, a date string, or a YAML timestamp.
type xValue struct {
	chart.XValue
}

func (x *xValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		x.XValue = chart.Date(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("x must be a number or a string: %w", err)
	}
	x.XValue = chart.Num(f)
	return nil
}

func (x *xValue) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: x must be a scalar", n.Line)
	}
	switch n.ShortTag() {
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return err
		}
		x.XValue = chart.Num(f)
	case "!!timestamp":
		var t time.Time
		if err := n.Decode(&t); err != nil {
			return err
		}
		x.XValue = chart.At(t)
	default:
		x.XValue = chart.Date(n.Value)
	}
	return nil
}

func (r *record) series() (chart.Series, error) {
	s := chart.Series{
		Name:        r.Name,
		ID:          r.ID,
		Color:       r.Color,
		StrokeWidth: r.StrokeWidth,
		Active:      r.IsActive,
		Type:        r.Type,
	}
	if r.Interpolation != "" {
		c, err := chart.ParseCurve(r.Interpolation)
		if err != nil {
			return s, fmt.Errorf("series %q: %w", r.Name, err)
		}
		s.Interpolation = c
	}
	switch len(r.DashArray) {
	case 0:
	case 2:
		s.DashArray = &[2]float64{r.DashArray[0], r.DashArray[1]}
	default:
		return s, fmt.Errorf("series %q: dashArray must have 2 elements, has %d", r.Name, len(r.DashArray))
	}
	s.Values = make([]chart.Point, len(r.Values))
	for i, p := range r.Values {
		y := math.NaN()
		if p.Y != nil {
			y = *p.Y
		}
		s.Values[i] = chart.Point{X: p.X.XValue, Y: y}
	}
	return s, nil
}

func toSeries(rs []record) ([]chart.Series, error) {
	out := make([]chart.Series, len(rs))
	for i := range rs {
		s, err := rs[i].series()
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func readJSON(r io.Reader) ([]chart.Series, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimSpace(data)
	var rs []record
	if len(data) > 0 && data[0] == '{' {
		var doc struct {
			Series []record `json:"series"`
		}
		err = json.Unmarshal(data, &doc)
		rs = doc.Series
	} else {
		err = json.Unmarshal(data, &rs)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding JSON dataset: %w", err)
	}
	return toSeries(rs)
}

func readYAML(r io.Reader) ([]chart.Series, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("decoding YAML dataset: %w", err)
	}
	var rs []record
	doc := &root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) == 1 {
		doc = doc.Content[0]
	}
	var err error
	if doc.Kind == yaml.MappingNode {
		var wrapped struct {
			Series []record `yaml:"series"`
		}
		err = doc.Decode(&wrapped)
		rs = wrapped.Series
	} else {
		err = doc.Decode(&rs)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding YAML dataset: %w", err)
	}
	return toSeries(rs)
}
