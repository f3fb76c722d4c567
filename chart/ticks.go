// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"
	"strconv"
	"time"

	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/vec"
)

// A TickFormatter formats a tick value as a label. Temporal values
// are milliseconds since the Unix epoch.
type TickFormatter func(v float64) string

// DateFormatter returns a TickFormatter that formats temporal tick
// values with the Go time layout layout, in UTC.
func DateFormatter(layout string) TickFormatter {
	return func(v float64) string { return valueTime(v).Format(layout) }
}

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// Ticks returns at most count tick values in the domain of s, in
// ascending order, along with a formatter suited to their spacing.
func (s *Scale) Ticks(count int) ([]float64, TickFormatter) {
	if count <= 0 {
		return nil, formatTick
	}
	lo, hi := s.Domain()
	if lo > hi {
		lo, hi = hi, lo
	}
	if s.kind == Temporal {
		return timeTicks(lo, hi, count)
	}
	major, _ := scale.Linear{Min: lo, Max: hi}.Ticks(scale.TickOptions{Max: count})
	return major, formatTick
}

// timeSteps are the tick intervals of a temporal scale, in
// increasing order. Level i of timeTicker uses timeSteps[i].
var timeSteps = []time.Duration{
	time.Second,
	5 * time.Second,
	15 * time.Second,
	30 * time.Second,
	time.Minute,
	5 * time.Minute,
	15 * time.Minute,
	30 * time.Minute,
	time.Hour,
	3 * time.Hour,
	6 * time.Hour,
	12 * time.Hour,
	24 * time.Hour,
	2 * 24 * time.Hour,
	7 * 24 * time.Hour,
	30 * 24 * time.Hour,
	90 * 24 * time.Hour,
	365 * 24 * time.Hour,
}

// timeTicker is a scale.Ticker over a temporal domain in
// milliseconds. Levels below 0 divide a second by powers of 10 and
// levels past the table multiply a year by powers of 10.
type timeTicker struct {
	lo, hi float64
}

func (t timeTicker) step(level int) float64 {
	switch {
	case level < 0:
		return 1e3 * math.Pow(10, float64(level))
	case level >= len(timeSteps):
		year := float64(timeSteps[len(timeSteps)-1] / time.Millisecond)
		return year * math.Pow(10, float64(level-len(timeSteps)+1))
	}
	return float64(timeSteps[level] / time.Millisecond)
}

func (t timeTicker) bounds(level int) (first, last, step float64) {
	step = t.step(level)
	return math.Ceil(t.lo / step), math.Floor(t.hi / step), step
}

func (t timeTicker) CountTicks(level int) int {
	first, last, _ := t.bounds(level)
	return int(last - first + 1)
}

func (t timeTicker) TicksAtLevel(level int) interface{} {
	first, last, step := t.bounds(level)
	n := int(last - first + 1)
	if n <= 0 {
		return []float64{}
	}
	return vec.Linspace(first*step, last*step, n)
}

func timeTicks(lo, hi float64, count int) ([]float64, TickFormatter) {
	t := timeTicker{lo, hi}
	o := scale.TickOptions{Max: count, MinLevel: -3, MaxLevel: len(timeSteps) + 6}
	level, ok := o.FindLevel(t, len(timeSteps)/2)
	if !ok {
		return nil, formatTick
	}
	return t.TicksAtLevel(level).([]float64), DateFormatter(timeLayout(t.step(level)))
}

// timeLayout picks a label layout that resolves a tick step of step
// milliseconds.
func timeLayout(step float64) string {
	switch d := time.Duration(step) * time.Millisecond; {
	case d < time.Second:
		return "15:04:05.000"
	case d < time.Minute:
		return "15:04:05"
	case d < 24*time.Hour:
		return "15:04"
	case d < 30*24*time.Hour:
		return "Jan 02"
	case d < 365*24*time.Hour:
		return "Jan 2006"
	}
	return "2006"
}
