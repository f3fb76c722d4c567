// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"

	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/stats"
)

// niceTicks bounds the number of tick intervals a niced y domain is
// rounded out to.
const niceTicks = 10

// A Scale maps a numeric or temporal data domain onto a pixel range.
// Temporal domains are in milliseconds since the Unix epoch.
//
// A degenerate domain maps every value to the middle of the range.
type Scale struct {
	kind   Kind
	domain scale.Linear
	r0, r1 float64
}

// NewScale returns a Scale from domain [d0, d1] to range [r0, r1].
func NewScale(kind Kind, d0, d1, r0, r1 float64) *Scale {
	return &Scale{kind: kind, domain: scale.Linear{Min: d0, Max: d1}, r0: r0, r1: r1}
}

// Kind returns whether s has a numeric or temporal domain.
func (s *Scale) Kind() Kind { return s.kind }

// Domain returns the data interval of s.
func (s *Scale) Domain() (lo, hi float64) { return s.domain.Min, s.domain.Max }

// Range returns the pixel interval of s.
func (s *Scale) Range() (r0, r1 float64) { return s.r0, s.r1 }

// Map maps data value x to a pixel coordinate.
func (s *Scale) Map(x float64) float64 {
	return s.r0 + s.domain.Map(x)*(s.r1-s.r0)
}

// Invert maps pixel coordinate px back to a data value.
func (s *Scale) Invert(px float64) float64 {
	if s.r0 == s.r1 {
		return s.domain.Min
	}
	return s.domain.Unmap((px - s.r0) / (s.r1 - s.r0))
}

// WithRange returns a copy of s with the same domain and a new pixel
// range.
func (s *Scale) WithRange(r0, r1 float64) *Scale {
	ns := *s
	ns.r0, ns.r1 = r0, r1
	return &ns
}

// nice rounds the domain out to tick boundaries. It never moves a
// bound that is already on a boundary, so a zero floor stays at 0.
func (s *Scale) nice() {
	if s.kind == Temporal {
		return
	}
	s.domain.Nice(scale.TickOptions{Max: niceTicks})
}

// Scales is the pair of scales of a chart. X or Y is nil if the
// chart has no data to derive it from.
type Scales struct {
	X, Y *Scale
}

// Get returns the scale for the named axis.
func (sc Scales) Get(name AxisName) *Scale {
	if name == AxisY {
		return sc.Y
	}
	return sc.X
}

// WithRange returns sc with pixel ranges recomputed from g. The
// domains are unchanged.
func (sc Scales) WithRange(g Geometry) Scales {
	var out Scales
	if sc.X != nil {
		out.X = sc.X.WithRange(0, g.InnerWidth)
	}
	if sc.Y != nil {
		out.Y = sc.Y.WithRange(g.InnerHeight, 0)
	}
	return out
}

// BuildScales derives the x and y scales of a chart from resolved
// series coordinates. The x domain spans all x values. The y domain
// spans all y values with its lower bound clamped to at most 0 and
// is then rounded out to nice tick boundaries. Non-finite values do
// not contribute to either domain.
func BuildScales(kind Kind, coords [][]Coord, g Geometry) Scales {
	var xs, ys []float64
	for _, cs := range coords {
		for _, c := range cs {
			if !math.IsNaN(c.X) && !math.IsInf(c.X, 0) {
				xs = append(xs, c.X)
			}
			if !math.IsNaN(c.Y) && !math.IsInf(c.Y, 0) {
				ys = append(ys, c.Y)
			}
		}
	}
	if len(xs) == 0 || len(ys) == 0 {
		return Scales{}
	}

	x0, x1 := stats.Bounds(xs)
	y0, y1 := stats.Bounds(ys)
	if y0 > 0 {
		y0 = 0
	}
	if y0 == 0 && y1 == 0 {
		// Nice would center an empty domain on 0.
		y1 = 1
	}

	x := NewScale(kind, x0, x1, 0, g.InnerWidth)
	y := NewScale(Numeric, y0, y1, g.InnerHeight, 0)
	y.nice()
	return Scales{X: x, Y: y}
}
