// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"time"
)

// AxisName identifies one of a chart's two axes.
type AxisName int

const (
	AxisX AxisName = iota
	AxisY
)

func (n AxisName) String() string {
	if n == AxisY {
		return "y"
	}
	return "x"
}

// Direction is the side of the plot an axis is drawn on.
type Direction string

const (
	Bottom Direction = "bottom"
	Top    Direction = "top"
	Left   Direction = "left"
	Right  Direction = "right"
)

// Centering selects axes drawn through the origin instead of along
// the plot edges.
type Centering string

const (
	CenterNone Centering = ""
	CenterX    Centering = "x"
	CenterY    Centering = "y"
	CenterBoth Centering = "both"
)

// Centers reports whether c centers axis name.
func (c Centering) Centers(name AxisName) bool {
	switch c {
	case CenterBoth:
		return true
	case CenterX:
		return name == AxisX
	case CenterY:
		return name == AxisY
	}
	return false
}

// TickSize is an axis tick length. An Auto tick spans the whole plot,
// drawing a grid line.
type TickSize struct {
	Auto bool
	Px   float64
}

// AutoTick is a TickSize that spans the plot.
var AutoTick = TickSize{Auto: true}

// Px returns a fixed TickSize.
func Px(n float64) TickSize { return TickSize{Px: n} }

// Translate is a translation transform.
type Translate struct {
	X, Y float64
}

func (t Translate) String() string {
	return fmt.Sprintf("translate(%s, %s)", formatNum(t.X), formatNum(t.Y))
}

// AxisState is the configured state of one axis.
type AxisState struct {
	Name          AxisName
	Direction     Direction
	TickCount     int
	TickSizeInner float64
	TickSizeOuter float64
	Formatter     TickFormatter
	Transform     Translate
	Rendered      bool
	Ticks         []Tick

	scale *Scale
	prev  Translate
}

// AxisOptions are the inputs to AxisController.Configure other than
// the axis name and scale.
type AxisOptions struct {
	Direction Direction
	TickCount int
	TickSize  TickSize
	Formatter TickFormatter
	Centered  Centering
	Label     string
}

// An AxisController owns the axis groups of a chart. Each axis moves
// from absent, to rendered by Render, to updated in place by Update.
type AxisController struct {
	plotID string
	anim   *Animator
	states [2]*AxisState
	labels [2]string
	drawn  [2]bool
}

// NewAxisController returns an AxisController that creates axis
// groups under node plotID and animates them with anim.
func NewAxisController(plotID string, anim *Animator) *AxisController {
	return &AxisController{plotID: plotID, anim: anim}
}

func (c *AxisController) groupID(name AxisName) string {
	return c.plotID + "/axis-" + name.String()
}

// State returns the current state of axis name, or nil if it has
// never been configured.
func (c *AxisController) State(name AxisName) *AxisState {
	return c.states[name]
}

// Configure computes the state of axis name against scales sc and
// geometry g. If the axis has no scale, Configure does nothing and
// returns nil.
func (c *AxisController) Configure(name AxisName, sc Scales, g Geometry, opts AxisOptions) *AxisState {
	s := sc.Get(name)
	if s == nil {
		return nil
	}
	st := c.states[name]
	if st == nil {
		st = &AxisState{Name: name}
		c.states[name] = st
	}
	st.scale = s
	st.Direction = opts.Direction
	st.TickCount = opts.TickCount
	st.TickSizeInner = resolveTickSize(name, opts.TickSize, g)
	st.TickSizeOuter = st.TickSizeInner
	if name == AxisY {
		st.TickSizeOuter = 0
	}
	st.prev = st.Transform
	st.Transform = CenterTransform(name, opts.Direction, opts.Centered, sc, g)
	c.labels[name] = opts.Label

	values, auto := s.Ticks(opts.TickCount)
	format := opts.Formatter
	if format == nil {
		format = auto
	}
	st.Formatter = format
	st.Ticks = st.Ticks[:0]
	for _, v := range values {
		st.Ticks = append(st.Ticks, Tick{Value: v, Pos: s.Map(v), Label: format(v)})
	}
	return st
}

func resolveTickSize(name AxisName, ts TickSize, g Geometry) float64 {
	if !ts.Auto {
		return ts.Px
	}
	if name == AxisX {
		return -g.InnerHeight
	}
	return -g.InnerWidth
}

// CenterTransform returns the translation of axis name's group. By
// default the x axis sits on the bottom edge of the plot and the y
// axis on the left edge. An axis that centered targets crosses the
// other axis at its data 0.
func CenterTransform(name AxisName, dir Direction, centered Centering, sc Scales, g Geometry) Translate {
	if name == AxisX {
		if centered.Centers(AxisX) && sc.Y != nil {
			return Translate{0, sc.Y.Map(0)}
		}
		if dir == Top {
			return Translate{}
		}
		return Translate{0, g.InnerHeight}
	}
	if centered.Centers(AxisY) && sc.X != nil {
		return Translate{sc.X.Map(0), 0}
	}
	if dir == Right {
		return Translate{g.InnerWidth, 0}
	}
	return Translate{}
}

func (st *AxisState) ticks() *AxisTicks {
	r0, r1 := st.scale.Range()
	return &AxisTicks{
		Direction: st.Direction,
		Range:     [2]float64{r0, r1},
		Inner:     st.TickSizeInner,
		Outer:     st.TickSizeOuter,
		Ticks:     append([]Tick(nil), st.Ticks...),
	}
}

// Render creates axis name's group and draws its ticks. It does
// nothing if the axis was not configured or is already rendered.
func (c *AxisController) Render(b *batch, name AxisName) {
	st := c.states[name]
	if st == nil || st.Rendered {
		return
	}
	id := c.groupID(name)
	b.create(c.plotID, id, NodeGroup, Attrs{
		"class":      "vertex__axis vertex__axis--" + name.String(),
		"transform":  st.Transform.String(),
		"aria-label": name.String() + "-axis",
	}, "")
	b.add(Op{Kind: OpTicks, ID: id, Axis: st.ticks()})
	st.Rendered = true
}

// Update redraws a rendered axis in place, animating its transform
// over d. Axes that were never rendered are left alone.
func (c *AxisController) Update(b *batch, name AxisName, d time.Duration) {
	st := c.states[name]
	if st == nil || !st.Rendered {
		return
	}
	id := c.groupID(name)
	b.add(Op{Kind: OpTicks, ID: id, Axis: st.ticks()})
	// A move in flight continues from where it is drawn.
	from := []float64{st.prev.X, st.prev.Y}
	if cur, ok := c.anim.Current(id, "transform"); ok {
		from = append([]float64(nil), cur...)
	}
	c.anim.Start(Transition{
		Node:     id,
		Attr:     "transform",
		From:     from,
		To:       []float64{st.Transform.X, st.Transform.Y},
		Duration: d,
		Format: func(v []float64) string {
			return Translate{v[0], v[1]}.String()
		},
	})
}

// RenderLabels draws the configured axis labels into the chart root,
// or moves labels that are already drawn. The x label is centered
// under (or over) the plot and the y label is rotated beside it.
func (c *AxisController) RenderLabels(b *batch, rootID string, g Geometry) {
	for _, name := range []AxisName{AxisX, AxisY} {
		st := c.states[name]
		if st == nil || !st.Rendered || c.labels[name] == "" {
			continue
		}
		x, y, rotate := labelPosition(name, st.Direction, g)
		attrs := Attrs{
			"class":       "vertex__axis-label vertex__axis-label--" + name.String(),
			"x":           formatNum(x),
			"y":           formatNum(y),
			"text-anchor": "middle",
		}
		if rotate {
			attrs["transform"] = "rotate(-90)"
		}
		id := rootID + "/label-" + name.String()
		if c.drawn[name] {
			b.set(id, Attrs{"x": attrs["x"], "y": attrs["y"]})
			continue
		}
		b.create(rootID, id, NodeText, attrs, c.labels[name])
		c.drawn[name] = true
	}
}

func labelPosition(name AxisName, dir Direction, g Geometry) (x, y float64, rotate bool) {
	m := g.Margin
	if name == AxisX {
		x = m.Left + g.InnerWidth/2
		if dir == Top {
			return x, m.Top / 2, false
		}
		return x, g.Height - m.Bottom/4, false
	}
	// Rotated text: x runs up the page and y across it.
	x = -(m.Top + g.InnerHeight/2)
	if dir == Right {
		return x, g.Width - m.Right/4, true
	}
	return x, m.Left / 4, true
}
