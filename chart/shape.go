// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"math"
	"strings"
)

// Curve is a line interpolation. The names follow d3-shape.
type Curve string

const (
	CurveLinear     Curve = "Linear"
	CurveStep       Curve = "Step"
	CurveStepBefore Curve = "StepBefore"
	CurveStepAfter  Curve = "StepAfter"
	CurveBasis      Curve = "Basis"
	CurveMonotoneX  Curve = "MonotoneX"
)

// Valid reports whether c names a known curve.
func (c Curve) Valid() bool {
	switch c {
	case CurveLinear, CurveStep, CurveStepBefore, CurveStepAfter, CurveBasis, CurveMonotoneX:
		return true
	}
	return false
}

// ParseCurve returns the curve named name, ignoring case.
func ParseCurve(name string) (Curve, error) {
	for _, c := range []Curve{CurveLinear, CurveStep, CurveStepBefore, CurveStepAfter, CurveBasis, CurveMonotoneX} {
		if strings.EqualFold(string(c), name) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown curve %q", name)
}

// A ShapeFunc turns a series' data-space coordinates into SVG path
// data.
type ShapeFunc func(pts []Coord) string

// A LineConstructor supplies the shape of series drawn with a custom
// constructor. Type is the Series.Type of the series being drawn.
type LineConstructor interface {
	Line(sc Scales, typ string) ShapeFunc
}

// LineConstructorFunc adapts a function to a LineConstructor.
type LineConstructorFunc func(sc Scales, typ string) ShapeFunc

func (f LineConstructorFunc) Line(sc Scales, typ string) ShapeFunc { return f(sc, typ) }

// LinePath returns the default line shape: points mapped through sc
// and joined with curve. Points with a non-finite coordinate break
// the line.
func LinePath(sc Scales, curve Curve) ShapeFunc {
	return func(pts []Coord) string {
		if sc.X == nil || sc.Y == nil {
			return ""
		}
		var p pathBuilder
		var seg []Coord
		flush := func() {
			if len(seg) > 0 {
				drawCurve(&p, curve, seg)
				seg = seg[:0]
			}
		}
		for _, pt := range pts {
			x, y := sc.X.Map(pt.X), sc.Y.Map(pt.Y)
			if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
				flush()
				continue
			}
			seg = append(seg, Coord{x, y})
		}
		flush()
		return string(p.buf)
	}
}

// pathBuilder accumulates SVG path commands.
type pathBuilder struct {
	buf []byte
}

func (p *pathBuilder) cmd(c byte, xy ...float64) {
	p.buf = append(p.buf, c)
	for i, v := range xy {
		if i > 0 {
			p.buf = append(p.buf, ',')
		}
		p.buf = appendNum(p.buf, v)
	}
}

func (p *pathBuilder) moveTo(x, y float64) { p.cmd('M', x, y) }
func (p *pathBuilder) lineTo(x, y float64) { p.cmd('L', x, y) }
func (p *pathBuilder) curveTo(x1, y1, x2, y2, x, y float64) {
	p.cmd('C', x1, y1, x2, y2, x, y)
}

func drawCurve(p *pathBuilder, curve Curve, pts []Coord) {
	p.moveTo(pts[0].X, pts[0].Y)
	switch curve {
	case CurveStep:
		drawStep(p, pts, 0.5)
	case CurveStepBefore:
		drawStep(p, pts, 0)
	case CurveStepAfter:
		drawStep(p, pts, 1)
	case CurveBasis:
		drawBasis(p, pts)
	case CurveMonotoneX:
		drawMonotoneX(p, pts)
	default:
		for _, pt := range pts[1:] {
			p.lineTo(pt.X, pt.Y)
		}
	}
}

// drawStep draws a step function whose vertical segments sit at
// fraction t between consecutive points.
func drawStep(p *pathBuilder, pts []Coord, t float64) {
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		switch t {
		case 0:
			p.lineTo(a.X, b.Y)
		case 1:
			p.lineTo(b.X, a.Y)
		default:
			xm := a.X*(1-t) + b.X*t
			p.lineTo(xm, a.Y)
			p.lineTo(xm, b.Y)
		}
		p.lineTo(b.X, b.Y)
	}
}

// drawBasis draws a uniform cubic B-spline through pts, clamped to
// the end points.
func drawBasis(p *pathBuilder, pts []Coord) {
	switch len(pts) {
	case 1:
		return
	case 2:
		p.lineTo(pts[1].X, pts[1].Y)
		return
	}
	bezier := func(p0, p1, p2 Coord) {
		p.curveTo(
			(2*p0.X+p1.X)/3, (2*p0.Y+p1.Y)/3,
			(p0.X+2*p1.X)/3, (p0.Y+2*p1.Y)/3,
			(p0.X+4*p1.X+p2.X)/6, (p0.Y+4*p1.Y+p2.Y)/6,
		)
	}
	a, b := pts[0], pts[1]
	p.lineTo((5*a.X+b.X)/6, (5*a.Y+b.Y)/6)
	for _, c := range pts[2:] {
		bezier(a, b, c)
		a, b = b, c
	}
	bezier(a, b, b)
	p.lineTo(b.X, b.Y)
}

// drawMonotoneX draws a cubic Hermite spline that preserves
// monotonicity in y, assuming x is monotonic (Steffen's method).
func drawMonotoneX(p *pathBuilder, pts []Coord) {
	// Drop coincident points.
	q := pts[:1:1]
	for _, pt := range pts[1:] {
		if last := q[len(q)-1]; pt != last {
			q = append(q, pt)
		}
	}
	switch len(q) {
	case 1:
		return
	case 2:
		p.lineTo(q[1].X, q[1].Y)
		return
	}

	segment := func(a, b Coord, t0, t1 float64) {
		dx := (b.X - a.X) / 3
		p.curveTo(a.X+dx, a.Y+dx*t0, b.X-dx, b.Y-dx*t1, b.X, b.Y)
	}
	// Interior tangents.
	t := make([]float64, len(q))
	for i := 1; i < len(q)-1; i++ {
		t[i] = slope3(q[i-1], q[i], q[i+1])
	}
	t[0] = slope2(q[0], q[1], t[1])
	t[len(q)-1] = slope2(q[len(q)-2], q[len(q)-1], t[len(q)-2])
	for i := 1; i < len(q); i++ {
		segment(q[i-1], q[i], t[i-1], t[i])
	}
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// slope3 is the tangent at b given neighbors a and c.
func slope3(a, b, c Coord) float64 {
	h0, h1 := b.X-a.X, c.X-b.X
	d0, d1 := h0, h1
	if d0 == 0 {
		d0 = math.Copysign(0, h1)
	}
	if d1 == 0 {
		d1 = math.Copysign(0, h0)
	}
	s0, s1 := (b.Y-a.Y)/d0, (c.Y-b.Y)/d1
	pm := (s0*h1 + s1*h0) / (h0 + h1)
	r := (sign(s0) + sign(s1)) * math.Min(math.Min(math.Abs(s0), math.Abs(s1)), 0.5*math.Abs(pm))
	if math.IsNaN(r) {
		return 0
	}
	return r
}

// slope2 is the one-sided tangent at an end of segment a-b given the
// tangent t at the other end.
func slope2(a, b Coord, t float64) float64 {
	h := b.X - a.X
	if h == 0 {
		return t
	}
	return (3*(b.Y-a.Y)/h - t) / 2
}
