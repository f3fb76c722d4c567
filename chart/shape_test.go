// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// identity maps [0, 10] onto itself on both axes.
var identity = Scales{
	X: NewScale(Numeric, 0, 10, 0, 10),
	Y: NewScale(Numeric, 0, 10, 0, 10),
}

func TestLinePath(t *testing.T) {
	sc := Scales{
		X: NewScale(Numeric, 0, 2, 0, 700),
		Y: NewScale(Numeric, -3, 5, 350, 0),
	}
	d := LinePath(sc, CurveLinear)([]Coord{{0, 0}, {1, 5}, {2, -3}})
	assert.Equal(t, "M0,218.75L350,0L700,350", d)
}

func TestCurves(t *testing.T) {
	two := []Coord{{0, 0}, {10, 10}}
	for _, test := range []struct {
		curve Curve
		pts   []Coord
		want  string
	}{
		{CurveLinear, two, "M0,0L10,10"},
		{CurveStep, two, "M0,0L5,0L5,10L10,10"},
		{CurveStepBefore, two, "M0,0L0,10L10,10"},
		{CurveStepAfter, two, "M0,0L10,0L10,10"},
		{CurveBasis, two, "M0,0L10,10"},
		{CurveMonotoneX, two, "M0,0L10,10"},
		{CurveLinear, []Coord{{1, 1}}, "M1,1"},
		{CurveBasis, []Coord{{1, 1}}, "M1,1"},
		{CurveLinear, []Coord{{0, 0}, {math.NaN(), 3}, {2, 2}, {3, 3}}, "M0,0M2,2L3,3"},
		{CurveLinear, nil, ""},
	} {
		got := LinePath(identity, test.curve)(test.pts)
		assert.Equal(t, test.want, got, "curve %s through %v", test.curve, test.pts)
	}
}

func TestCurveBasis(t *testing.T) {
	d := LinePath(identity, CurveBasis)([]Coord{{0, 0}, {3, 3}, {6, 0}})
	assert.True(t, strings.HasPrefix(d, "M0,0L0.5,0.5C"), d)
	assert.True(t, strings.HasSuffix(d, "L6,0"), d)
	assert.Equal(t, 2, strings.Count(d, "C"), d)
}

func TestCurveMonotoneX(t *testing.T) {
	d := LinePath(identity, CurveMonotoneX)([]Coord{{0, 0}, {2, 1}, {2, 1}, {5, 8}, {9, 9}})
	assert.True(t, strings.HasPrefix(d, "M0,0C"), d)
	// The repeated point is dropped: three segments remain.
	assert.Equal(t, 3, strings.Count(d, "C"), d)
	assert.True(t, strings.HasSuffix(d, ",9,9"), d)
	assert.NotContains(t, d, "NaN")
}

func TestLinePathNoScales(t *testing.T) {
	assert.Equal(t, "", LinePath(Scales{}, CurveLinear)([]Coord{{1, 1}}))
}

func TestLineConstructorFunc(t *testing.T) {
	var lc LineConstructor = LineConstructorFunc(func(sc Scales, typ string) ShapeFunc {
		return func(pts []Coord) string { return typ + ":" + formatNum(float64(len(pts))) }
	})
	assert.Equal(t, "area:2", lc.Line(identity, "area")([]Coord{{}, {}}))
}

func TestParseCurve(t *testing.T) {
	for in, want := range map[string]Curve{
		"linear":     CurveLinear,
		"Step":       CurveStep,
		"stepbefore": CurveStepBefore,
		"monotoneX":  CurveMonotoneX,
	} {
		got, err := ParseCurve(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseCurve("wiggly")
	assert.Error(t, err)
}
