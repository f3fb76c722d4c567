// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var geom800 = Geometry{800, 450, UniformMargin(50), 700, 350}

func numeric(ys ...float64) [][]Coord {
	cs := make([]Coord, len(ys))
	for i, y := range ys {
		cs[i] = Coord{float64(i), y}
	}
	return [][]Coord{cs}
}

func TestBuildScalesZeroFloor(t *testing.T) {
	for _, ys := range [][]float64{
		{0},
		{0, 0, 0},
		{3},
		{1, 2, 3},
		{0.001, 0.002},
		{17, 1e6, 42},
		{5, 0, 12.5},
	} {
		sc := BuildScales(Numeric, numeric(ys...), geom800)
		require.NotNil(t, sc.Y)
		lo, hi := sc.Y.Domain()
		assert.Equal(t, 0.0, lo, "ys %v", ys)
		assert.Greater(t, hi, 0.0, "ys %v", ys)
	}
}

func TestBuildScalesNice(t *testing.T) {
	sc := BuildScales(Numeric, numeric(0, 5, -3), geom800)
	lo, hi := sc.Y.Domain()
	assert.LessOrEqual(t, lo, -3.0)
	assert.GreaterOrEqual(t, hi, 5.0)
	assert.Equal(t, -3.0, lo)
	assert.Equal(t, 5.0, hi)

	sc = BuildScales(Numeric, numeric(0.3, 9.7), geom800)
	lo, hi = sc.Y.Domain()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 10.0, hi)

	x0, x1 := sc.X.Domain()
	assert.Equal(t, 0.0, x0)
	assert.Equal(t, 1.0, x1)
}

func TestBuildScalesRanges(t *testing.T) {
	sc := BuildScales(Numeric, numeric(0, 5, -3), geom800)
	r0, r1 := sc.X.Range()
	assert.Equal(t, [2]float64{0, 700}, [2]float64{r0, r1})
	r0, r1 = sc.Y.Range()
	assert.Equal(t, [2]float64{350, 0}, [2]float64{r0, r1})
	assert.Equal(t, 0.0, sc.Y.Map(5))
	assert.Equal(t, 350.0, sc.Y.Map(-3))
}

func TestBuildScalesSkipsNonFinite(t *testing.T) {
	sc := BuildScales(Numeric, numeric(1, math.NaN(), 4, math.Inf(1)), geom800)
	_, hi := sc.Y.Domain()
	assert.Equal(t, 4.0, hi)

	sc = BuildScales(Numeric, [][]Coord{{}}, geom800)
	assert.Nil(t, sc.X)
	assert.Nil(t, sc.Y)
}

func TestWithRangeKeepsDomain(t *testing.T) {
	sc := BuildScales(Numeric, numeric(2, 8, -1, 4), geom800)
	x0, x1 := sc.X.Domain()
	y0, y1 := sc.Y.Domain()
	for _, w := range []float64{300, 1200, 801, 640} {
		g, err := ResolveGeometry(Size{w, 0}, GeometryOptions{Margin: UniformMargin(20)})
		require.NoError(t, err)
		sc = sc.WithRange(g)
		a, b := sc.X.Domain()
		assert.Equal(t, [2]float64{x0, x1}, [2]float64{a, b})
		a, b = sc.Y.Domain()
		assert.Equal(t, [2]float64{y0, y1}, [2]float64{a, b})
		_, r1 := sc.X.Range()
		assert.Equal(t, g.InnerWidth, r1)
	}
}

func TestScaleInvert(t *testing.T) {
	s := NewScale(Numeric, -10, 20, 0, 300)
	for _, x := range []float64{-10, 0, 7.5, 20} {
		assert.InDelta(t, x, s.Invert(s.Map(x)), 1e-9)
	}
	assert.Equal(t, 100.0, s.Map(0))

	flat := NewScale(Numeric, 3, 3, 0, 300)
	assert.Equal(t, 150.0, flat.Map(3))
}

func TestScaleTicks(t *testing.T) {
	s := NewScale(Numeric, 0, 100, 0, 700)
	ticks, format := s.Ticks(5)
	assert.Equal(t, []float64{0, 50, 100}, ticks)
	assert.Equal(t, "50", format(50))

	ticks, _ = s.Ticks(0)
	assert.Empty(t, ticks)
}

func TestTemporalTicks(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	s := NewScale(Temporal, timeValue(day), timeValue(day.Add(24*time.Hour)), 0, 700)
	ticks, format := s.Ticks(5)
	require.Len(t, ticks, 5)
	var labels []string
	for _, v := range ticks {
		labels = append(labels, format(v))
	}
	assert.Equal(t, []string{"00:00", "06:00", "12:00", "18:00", "00:00"}, labels)
}

func TestResolveX(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	kind, cs, err := ResolveX([]Series{{Name: "a", Values: []Point{P(1, 2), P(3, 4)}}}, "")
	require.NoError(t, err)
	assert.Equal(t, Numeric, kind)
	assert.Equal(t, []Coord{{1, 2}, {3, 4}}, cs[0])

	kind, cs, err = ResolveX([]Series{{Name: "a", Values: []Point{
		{Date("2024-03-01"), 1},
		{Date("2024-03-02"), 2},
	}}}, "2006-01-02")
	require.NoError(t, err)
	assert.Equal(t, Temporal, kind)
	assert.Equal(t, timeValue(day), cs[0][0].X)
	assert.Equal(t, timeValue(day)+864e5, cs[0][1].X)

	kind, cs, err = ResolveX([]Series{{Name: "a", Values: []Point{{At(day), 1}}}}, "")
	require.NoError(t, err)
	assert.Equal(t, Temporal, kind)
	assert.True(t, valueTime(cs[0][0].X).Equal(day))

	kind, cs, err = ResolveX([]Series{{Name: "a", Values: []Point{{Date(" 2.5"), 1}}}}, "")
	require.NoError(t, err)
	assert.Equal(t, Numeric, kind)
	assert.Equal(t, 2.5, cs[0][0].X)

	_, _, err = ResolveX([]Series{{Name: "a", Values: []Point{{Date("March"), 1}}}}, "2006-01-02")
	assert.True(t, IsConfigurationError(err))
	_, _, err = ResolveX([]Series{{Name: "a", Values: []Point{{Date("March"), 1}}}}, "")
	assert.True(t, IsConfigurationError(err))
}
