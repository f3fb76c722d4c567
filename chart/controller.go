// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// A Container reports the size of the area a chart is drawn in.
type Container interface {
	Size() Size
}

// FixedSize is a Container of constant size.
type FixedSize Size

func (s FixedSize) Size() Size { return Size(s) }

// ContainerFunc adapts a function to a Container.
type ContainerFunc func() Size

func (f ContainerFunc) Size() Size { return f() }

type chartState int

const (
	stateUninitialized chartState = iota
	stateMounted
	stateResizing
	stateUpdating
)

func (s chartState) String() string {
	switch s {
	case stateMounted:
		return "mounted"
	case stateResizing:
		return "resizing"
	case stateUpdating:
		return "updating"
	}
	return "uninitialized"
}

var axisNames = [...]AxisName{AxisX, AxisY}

// A LineChart draws a set of series as lines into a Renderer and
// keeps the drawing in sync with the data and the container size.
//
// A LineChart is not safe for concurrent use. Entry points may not be
// called from hooks or listeners that run inside another entry point
// of the same chart, with the exception of Dispatch listeners.
type LineChart struct {
	cfg       Config
	container Container
	out       Renderer
	log       *zap.Logger

	state chartState

	data   []Series
	kind   Kind
	coords [][]Coord
	geom   Geometry
	scales Scales

	rootID, plotID, linesID string

	anim  *Animator
	axes  *AxisController
	lines *SeriesReconciler
}

// New mounts a chart of data in container, drawing through renderer.
// It resolves the chart geometry, builds scales, draws the selected
// axes, and draws one path per series.
func New(container Container, renderer Renderer, data []Series, cfg Config) (*LineChart, error) {
	if container == nil {
		return nil, configErrorf("mount", "no container")
	}
	if renderer == nil {
		return nil, configErrorf("mount", "no renderer")
	}
	if err := checkSeries("mount", data); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()
	if err := cfg.check(); err != nil {
		return nil, err
	}

	c := &LineChart{
		cfg:       cfg,
		container: container,
		out:       renderer,
		log:       cfg.Logger.With(zap.String("chart", cfg.ID)),
		rootID:    cfg.ID,
		plotID:    cfg.ID + "/plot",
		linesID:   cfg.ID + "/lines",
	}
	c.anim = NewAnimator(cfg.Clock)
	c.axes = NewAxisController(c.plotID, c.anim)
	c.lines = NewSeriesReconciler(c.linesID, c.anim, c.log)

	g, err := ResolveGeometry(container.Size(), cfg.geometryOptions())
	if err != nil {
		return nil, err
	}
	kind, coords, err := ResolveX(data, cfg.FormatParse)
	if err != nil {
		return nil, err
	}
	c.geom, c.kind, c.coords, c.data = g, kind, coords, data
	c.scales = BuildScales(kind, coords, g)

	var b batch
	c.drawRoot(&b, true)
	for _, name := range axisNames {
		if cfg.showsAxis(name) {
			c.axes.Configure(name, c.scales, g, cfg.axisOptions(name))
			c.axes.Render(&b, name)
		}
	}
	c.axes.RenderLabels(&b, c.rootID, g)
	b.create(c.plotID, c.linesID, NodeGroup, Attrs{"class": "vertex__lines", "role": "list"}, "")
	if err := c.drawSeries(&b); err != nil {
		return nil, err
	}
	if err := c.out.Apply(b.take()); err != nil {
		return nil, fmt.Errorf("chart: mount: %w", err)
	}
	c.state = stateMounted
	c.log.Debug("mounted",
		zap.Int("series", len(data)),
		zap.Stringer("kind", kind),
		zap.Float64("width", g.Width),
		zap.Float64("height", g.Height))
	return c, nil
}

func (c *LineChart) drawRoot(b *batch, create bool) {
	g := c.geom
	root := Attrs{
		"width":   formatNum(g.Width),
		"height":  formatNum(g.Height),
		"viewBox": "0 0 " + formatNum(g.Width) + " " + formatNum(g.Height),
	}
	plot := Attrs{"transform": Translate{g.Margin.Left, g.Margin.Top}.String()}
	if !create {
		b.set(c.rootID, root)
		b.set(c.plotID, plot)
		return
	}
	root["class"] = c.cfg.ClassName + " " + c.cfg.ClassName + "--" + c.cfg.ClassModifier
	root["role"] = "img"
	root["preserveAspectRatio"] = "xMidYMid meet"
	if c.cfg.Title != "" {
		root["aria-label"] = c.cfg.Title
	}
	b.create("", c.rootID, NodeRoot, root, "")
	plot["class"] = "vertex__plot"
	b.create(c.rootID, c.plotID, NodeGroup, plot, "")
}

func (c *LineChart) shapes() ShapeSource {
	return ShapeSource{
		Scales:         c.scales,
		UseConstructor: c.cfg.UseLineConstructor,
		Constructor:    c.cfg.LineConstructor,
	}
}

func (c *LineChart) drawSeries(b *batch) error {
	if _, err := c.lines.Reconcile(b, c.data, c.coords, c.cfg.styleConfig(), c.shapes()); err != nil {
		return err
	}
	if c.cfg.HasAnimation {
		a := c.cfg.Animation
		c.lines.Reveal(b, a.Delay, a.Duration, a.Easing)
	} else {
		c.lines.ApplyDash(b)
	}
	return nil
}

func (c *LineChart) enter(op string, s chartState) error {
	if c.state != stateMounted {
		return &RuntimeAssertionError{Op: op, State: c.state.String()}
	}
	c.state = s
	return nil
}

func (c *LineChart) leave() { c.state = stateMounted }

// Resize re-resolves the chart geometry from the container and
// redraws for the new size. Scale domains and series identities are
// unchanged; only pixel ranges, axes, and path shapes move.
func (c *LineChart) Resize() error {
	if err := c.enter("resize", stateResizing); err != nil {
		return err
	}
	defer c.leave()

	g, err := ResolveGeometry(c.container.Size(), c.cfg.geometryOptions())
	if err != nil {
		return err
	}
	c.geom = g
	c.scales = c.scales.WithRange(g)

	var b batch
	c.drawRoot(&b, false)
	for _, name := range axisNames {
		if st := c.axes.State(name); st != nil && st.Rendered {
			c.axes.Configure(name, c.scales, g, c.cfg.axisOptions(name))
			c.axes.Update(&b, name, c.cfg.Animation.AxisDuration)
		}
	}
	c.axes.RenderLabels(&b, c.rootID, g)
	c.lines.Reshape(&b, c.shapes())
	if err := c.out.Apply(b.take()); err != nil {
		return fmt.Errorf("chart: resize: %w", err)
	}
	c.log.Debug("resized", zap.Float64("width", g.Width), zap.Float64("height", g.Height))

	if c.cfg.OnResize != nil {
		c.cfg.OnResize(c)
	}
	return nil
}

// UpdateData replaces the chart's data. Scales are rebuilt, axes are
// redrawn in place, and series paths are reconciled by name: paths of
// kept series are updated, new series get new paths, and paths of
// missing series are removed. On error the chart is unchanged.
func (c *LineChart) UpdateData(data []Series) error {
	if err := c.enter("update", stateUpdating); err != nil {
		return err
	}
	defer c.leave()

	if err := checkSeries("update", data); err != nil {
		return err
	}
	if c.cfg.UseLineConstructor && c.cfg.LineConstructor == nil {
		return configErrorf("reconcile", "custom line constructor enabled but not provided")
	}
	kind, coords, err := ResolveX(data, c.cfg.FormatParse)
	if err != nil {
		return err
	}
	c.data, c.kind, c.coords = data, kind, coords
	c.scales = BuildScales(kind, coords, c.geom)

	var b batch
	for _, name := range axisNames {
		st := c.axes.Configure(name, c.scales, c.geom, c.cfg.axisOptions(name))
		switch {
		case st == nil:
		case st.Rendered:
			c.axes.Update(&b, name, c.cfg.Animation.AxisDuration)
		case c.cfg.showsAxis(name):
			c.axes.Render(&b, name)
		}
	}
	c.axes.RenderLabels(&b, c.rootID, c.geom)
	if err := c.drawSeries(&b); err != nil {
		return err
	}
	if err := c.out.Apply(b.take()); err != nil {
		return fmt.Errorf("chart: update: %w", err)
	}
	c.log.Debug("updated", zap.Int("series", len(data)))

	if c.cfg.OnUpdate != nil {
		c.cfg.OnUpdate(c)
	}
	return nil
}

// Step advances the chart's animations to now and draws the frame.
func (c *LineChart) Step(now time.Time) error {
	if ops := c.anim.Step(now); len(ops) > 0 {
		return c.out.Apply(ops)
	}
	return nil
}

// Settle completes all running animations and draws the final frame.
func (c *LineChart) Settle() error {
	if ops := c.anim.Flush(); len(ops) > 0 {
		return c.out.Apply(ops)
	}
	return nil
}

// Animating reports whether any animation is still running.
func (c *LineChart) Animating() bool { return c.anim.Pending() > 0 }

// ID returns the chart's ID, which is also the ID of its root node.
func (c *LineChart) ID() string { return c.rootID }

// Geometry returns the chart's current geometry.
func (c *LineChart) Geometry() Geometry { return c.geom }

// Scales returns the chart's current scales.
func (c *LineChart) Scales() Scales { return c.scales }

// Kind returns the kind of the chart's x domain.
func (c *LineChart) Kind() Kind { return c.kind }

// Data returns the chart's current series.
func (c *LineChart) Data() []Series { return c.data }

// Elements returns the chart's series paths in paint order.
func (c *LineChart) Elements() []*Element { return c.lines.Elements() }

// Axis returns the state of axis name, or nil if it was never
// configured.
func (c *LineChart) Axis(name AxisName) *AxisState { return c.axes.State(name) }

// Responsive reports whether the host should call Resize when the
// container changes size.
func (c *LineChart) Responsive() bool { return c.cfg.IsResponsive }
