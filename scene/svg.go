// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"errors"
	"html"
	"io"
	"math"
	"sort"
	"strconv"

	svg "github.com/ajstarks/svgo/float"

	"github.com/aclements/go-vertex/chart"
)

// tickPadding is the gap between a tick mark and its label.
const tickPadding = 3

// errWriter remembers the first write error, since svgo drops them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// WriteSVG writes g as a standalone SVG document.
func (g *Graph) WriteSVG(w io.Writer) error {
	root := g.root
	if root == nil {
		return errors.New("scene: graph has no root")
	}
	ew := &errWriter{w: w}
	s := svg.New(ew)
	s.Decimals = 3

	width := attrFloat(root, "width")
	height := attrFloat(root, "height")
	s.Start(width, height, attrList(root.Attrs, "width", "height")...)
	if title := root.Attr("aria-label"); title != "" {
		s.Title(title)
	}
	for _, c := range root.Children {
		writeNode(s, c)
	}
	s.End()
	return ew.err
}

func writeNode(s *svg.SVG, n *Node) {
	switch n.Kind {
	case chart.NodeGroup, chart.NodeRoot:
		attrs := attrList(n.Attrs)
		if n.Axis != nil {
			attrs = append(attrs, `fill="none"`, `font-size="10"`, `font-family="sans-serif"`,
				attr("text-anchor", tickAnchor(n.Axis.Direction)))
		}
		s.Group(attrs...)
		if n.Axis != nil {
			writeAxis(s, n.Axis)
		}
		for _, c := range n.Children {
			writeNode(s, c)
		}
		s.Gend()
	case chart.NodePath:
		s.Path(n.Attr("d"), attrList(n.Attrs, "d")...)
	case chart.NodeText:
		s.Text(attrFloat(n, "x"), attrFloat(n, "y"), n.Text, attrList(n.Attrs, "x", "y")...)
	}
}

// writeAxis draws an axis's domain line and ticks the way d3-axis
// does, relative to the axis group's origin.
func writeAxis(s *svg.SVG, ax *chart.AxisTicks) {
	k := 1.0
	if ax.Direction == chart.Top || ax.Direction == chart.Left {
		k = -1
	}
	horizontal := ax.Direction == chart.Top || ax.Direction == chart.Bottom
	r0, r1 := num(ax.Range[0]), num(ax.Range[1])
	outer := num(k * ax.Outer)

	var d string
	switch {
	case horizontal && ax.Outer != 0:
		d = "M" + r0 + "," + outer + "V0H" + r1 + "V" + outer
	case horizontal:
		d = "M" + r0 + ",0H" + r1
	case ax.Outer != 0:
		d = "M" + outer + "," + r0 + "H0V" + r1 + "H" + outer
	default:
		d = "M0," + r0 + "V" + r1
	}
	s.Path(d, `class="domain"`, `stroke="currentColor"`)

	spacing := math.Max(ax.Inner, 0) + tickPadding
	for _, t := range ax.Ticks {
		if horizontal {
			dy := "0.71em"
			if ax.Direction == chart.Top {
				dy = "0em"
			}
			s.Group(`class="tick"`, attr("transform", "translate("+num(t.Pos)+",0)"))
			s.Line(0, 0, 0, k*ax.Inner, `stroke="currentColor"`)
			s.Text(0, k*spacing, t.Label, `fill="currentColor"`, attr("dy", dy))
		} else {
			s.Group(`class="tick"`, attr("transform", "translate(0,"+num(t.Pos)+")"))
			s.Line(0, 0, k*ax.Inner, 0, `stroke="currentColor"`)
			s.Text(k*spacing, 0, t.Label, `fill="currentColor"`, `dy="0.32em"`)
		}
		s.Gend()
	}
}

func tickAnchor(dir chart.Direction) string {
	switch dir {
	case chart.Left:
		return "end"
	case chart.Right:
		return "start"
	}
	return "middle"
}

func attr(k, v string) string {
	return k + `="` + html.EscapeString(v) + `"`
}

// attrList returns attrs as sorted key="value" strings, leaving out
// the keys in skip.
func attrList(attrs chart.Attrs, skip ...string) []string {
	keys := make([]string, 0, len(attrs))
outer:
	for k := range attrs {
		for _, s := range skip {
			if k == s {
				continue outer
			}
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = attr(k, attrs[k])
	}
	return out
}

func attrFloat(n *Node, k string) float64 {
	v, err := strconv.ParseFloat(n.Attr(k), 64)
	if err != nil {
		return 0
	}
	return v
}

func num(x float64) string {
	if x == 0 {
		return "0"
	}
	return strconv.FormatFloat(x, 'g', 6, 64)
}
