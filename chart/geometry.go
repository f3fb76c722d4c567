// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import "math"

// DefaultAspectRatio is the width:height ratio used when the
// container has no height.
const DefaultAspectRatio = 1.78

// Size is a width and height in pixels.
type Size struct {
	Width, Height float64
}

// Margin is the space between the container edges and the plot area.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// UniformMargin returns a Margin of m on every side.
func UniformMargin(m float64) Margin { return Margin{m, m, m, m} }

// Geometry is the resolved pixel layout of a chart. It is derived
// from the container and configuration on mount and on every resize.
type Geometry struct {
	Width, Height float64
	Margin        Margin

	// InnerWidth and InnerHeight are the size of the plot area.
	InnerWidth, InnerHeight float64
}

// GeometryOptions are the Config fields that affect geometry.
type GeometryOptions struct {
	Margin Margin

	// Dimension overrides the container width and height.
	// Zero components are ignored.
	Dimension [2]float64

	// ActiveThirdRatio raises the height to at least a third of
	// the width.
	ActiveThirdRatio bool

	// Radial makes the chart square unless a height is given in
	// Dimension.
	Radial bool
}

// ResolveGeometry computes a chart's pixel geometry from the size of
// its container.
func ResolveGeometry(container Size, opts GeometryOptions) (Geometry, error) {
	w, h := container.Width, container.Height
	if !(w > 0) || math.IsInf(w, 0) {
		return Geometry{}, configErrorf("geometry", "container width %v is not positive", w)
	}
	if h == 0 {
		h = w / DefaultAspectRatio
	}
	if d := opts.Dimension[0]; d != 0 {
		w = d
	}
	if d := opts.Dimension[1]; d != 0 {
		h = d
	}
	if opts.ActiveThirdRatio && h < w/3 {
		h = w / 3
	}
	if opts.Radial && opts.Dimension[1] == 0 {
		h = w
	}

	m := opts.Margin
	g := Geometry{
		Width:       w,
		Height:      h,
		Margin:      m,
		InnerWidth:  w - m.Left - m.Right,
		InnerHeight: h - m.Top - m.Bottom,
	}
	if g.InnerWidth < 0 || g.InnerHeight < 0 || math.IsNaN(g.InnerWidth) || math.IsNaN(g.InnerHeight) {
		return Geometry{}, configErrorf("geometry", "margins %+v exceed chart size %vx%v", m, w, h)
	}
	return g, nil
}
