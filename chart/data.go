// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

type xKind uint8

const (
	xNumber xKind = iota
	xTime
	xString
)

// An XValue is the x coordinate of a Point. It is either a number, a
// time.Time, or a date string that is parsed with Config.FormatParse
// when the chart's scales are built. The zero XValue is the number 0.
type XValue struct {
	kind xKind
	num  float64
	t    time.Time
	str  string
}

// Num returns a numeric XValue.
func Num(x float64) XValue { return XValue{kind: xNumber, num: x} }

// At returns a temporal XValue.
func At(t time.Time) XValue { return XValue{kind: xTime, t: t} }

// Date returns an XValue holding an unparsed date string.
func Date(s string) XValue { return XValue{kind: xString, str: s} }

// IsNumeric reports whether v holds a number.
func (v XValue) IsNumeric() bool { return v.kind == xNumber }

func (v XValue) String() string {
	switch v.kind {
	case xTime:
		return v.t.Format(time.RFC3339Nano)
	case xString:
		return v.str
	}
	return strconv.FormatFloat(v.num, 'g', -1, 64)
}

// Point is a single {x, y} datum of a Series.
type Point struct {
	X XValue
	Y float64
}

// P is shorthand for a numeric Point.
func P(x, y float64) Point { return Point{Num(x), y} }

// A Series is a named, ordered sequence of points that is drawn as a
// single path. Name is the reconciliation key and must be unique
// within a chart's data.
type Series struct {
	Name string

	// ID, if set, is written as the path's data-id. Otherwise the
	// data-id is Name-index.
	ID string

	Color       string
	StrokeWidth float64

	// Active hides the series when it points to false.
	Active *bool

	// DashArray is the stroke-dasharray applied once the reveal
	// animation finishes. Nil means a solid line.
	DashArray *[2]float64

	// Interpolation overrides the chart's curve for this series.
	Interpolation Curve

	// Type selects the shape returned by a custom LineConstructor.
	Type string

	Values []Point
}

// Bool returns a pointer to b, for use as Series.Active.
func Bool(b bool) *bool { return &b }

// IsActive reports whether s is shown.
func (s Series) IsActive() bool { return s.Active == nil || *s.Active }

func (s Series) dataID(index int) string {
	if s.ID != "" {
		return s.ID
	}
	return s.Name + "-" + strconv.Itoa(index)
}

func (s Series) dashArray() string {
	if s.DashArray == nil {
		return "0"
	}
	return formatNum(s.DashArray[0]) + ", " + formatNum(s.DashArray[1])
}

// Coord is a point in data space. For temporal x values, X is
// milliseconds since the Unix epoch.
type Coord struct {
	X, Y float64
}

// Kind is the kind of an x domain.
type Kind int

const (
	Numeric Kind = iota
	Temporal
)

func (k Kind) String() string {
	if k == Temporal {
		return "temporal"
	}
	return "numeric"
}

// ResolveX converts the x values of data to data-space coordinates.
// The x kind is probed from the first point of the first non-empty
// series: it is Temporal if that value is a time.Time, or if it is a
// date string and formatParse is set. Date strings are parsed with
// the Go time layout formatParse.
func ResolveX(data []Series, formatParse string) (Kind, [][]Coord, error) {
	kind := Numeric
	for _, s := range data {
		if len(s.Values) == 0 {
			continue
		}
		switch x := s.Values[0].X; x.kind {
		case xTime:
			kind = Temporal
		case xString:
			if formatParse != "" {
				kind = Temporal
			}
		}
		break
	}

	out := make([][]Coord, len(data))
	for i, s := range data {
		cs := make([]Coord, len(s.Values))
		for j, p := range s.Values {
			x, err := resolveOne(p.X, kind, formatParse)
			if err != nil {
				return kind, nil, &ConfigurationError{
					Op:     "scale",
					Reason: fmt.Sprintf("series %q point %d", s.Name, j),
					Err:    err,
				}
			}
			cs[j] = Coord{x, p.Y}
		}
		out[i] = cs
	}
	return kind, out, nil
}

func resolveOne(v XValue, kind Kind, layout string) (float64, error) {
	switch v.kind {
	case xNumber:
		if kind == Temporal {
			return 0, fmt.Errorf("numeric x %v in temporal series", v.num)
		}
		return v.num, nil
	case xTime:
		if kind == Numeric {
			return 0, fmt.Errorf("time x %v in numeric series", v.t)
		}
		return timeValue(v.t), nil
	}
	if kind == Temporal {
		t, err := time.Parse(layout, v.str)
		if err != nil {
			return 0, err
		}
		return timeValue(t), nil
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
	if err != nil {
		return 0, fmt.Errorf("x %q is not a number and no date layout is configured", v.str)
	}
	return x, nil
}

func timeValue(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e6
}

func valueTime(ms float64) time.Time {
	sec, frac := math.Modf(ms / 1e3)
	return time.Unix(int64(sec), int64(frac*1e9)).UTC()
}

// checkSeries validates a data collection for mount and update.
func checkSeries(op string, data []Series) error {
	if len(data) == 0 {
		return configErrorf(op, "data must be a non-empty list of series")
	}
	seen := make(map[string]bool, len(data))
	for i, s := range data {
		if s.Name == "" {
			return configErrorf(op, "series %d has no name", i)
		}
		if seen[s.Name] {
			return configErrorf(op, "duplicate series name %q", s.Name)
		}
		seen[s.Name] = true
	}
	return nil
}

// formatNum formats a coordinate for an attribute value.
func formatNum(x float64) string {
	return string(appendNum(nil, x))
}

func appendNum(b []byte, x float64) []byte {
	if x == 0 {
		// Avoid "-0".
		return append(b, '0')
	}
	return strconv.AppendFloat(b, x, 'g', 6, 64)
}
