// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import "sort"

// A Bisector finds positions in a series whose x coordinates are in
// ascending order.
type Bisector struct {
	pts []Coord
}

// NewBisector returns a Bisector over pts, which must be sorted by X.
func NewBisector(pts []Coord) Bisector { return Bisector{pts} }

// Left returns the index of the first point whose x is not less than
// x, or len(pts) if there is none.
func (b Bisector) Left(x float64) int {
	return sort.Search(len(b.pts), func(i int) bool { return b.pts[i].X >= x })
}

// Nearest returns the index of the point whose x is closest to x. If
// x falls exactly between two points, the later one wins. It returns
// -1 if there are no points.
func (b Bisector) Nearest(x float64) int {
	i := b.Left(x)
	switch {
	case len(b.pts) == 0:
		return -1
	case i == 0:
		return 0
	case i == len(b.pts):
		return i - 1
	}
	if x-b.pts[i-1].X < b.pts[i].X-x {
		return i - 1
	}
	return i
}

// Hover is the result of a pointer lookup.
type Hover struct {
	Series string
	Index  int
	Point  Point
	// X and Y are the point's position in plot pixels.
	X, Y float64
}

// Lookup returns the point of the named series nearest to pixel
// offset px along the x axis of the plot area. Hidden series have no
// points to find.
func (c *LineChart) Lookup(series string, px float64) (Hover, bool) {
	e := c.lines.Element(series)
	if e == nil || e.Style.Hidden || c.scales.X == nil || c.scales.Y == nil {
		return Hover{}, false
	}
	i := NewBisector(e.coords).Nearest(c.scales.X.Invert(px))
	if i < 0 {
		return Hover{}, false
	}
	pt := e.coords[i]
	return Hover{
		Series: series,
		Index:  i,
		Point:  e.Series.Values[i],
		X:      c.scales.X.Map(pt.X),
		Y:      c.scales.Y.Map(pt.Y),
	}, true
}
