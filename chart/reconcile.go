// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"time"

	"go.uber.org/zap"
)

// revealLength is the dash length used by the stroke reveal
// animation. It must exceed the length of any path drawn.
const revealLength = 2000

// Style is the computed presentation of a series path.
type Style struct {
	Stroke      string
	StrokeWidth float64
	DashArray   string
	// Hidden paths are drawn with display:none.
	Hidden bool
}

// An Element is the visual path of one series. Elements keep their
// identity across reconciliations for as long as their series name
// is present in the data.
type Element struct {
	// Key is the series name.
	Key string
	// ID is the data-id written on the path.
	ID string
	// Index is the paint order position of the element.
	Index  int
	D      string
	Style  Style
	Series Series

	node   string
	coords []Coord
	gen    uint64
}

// Node returns the scene node ID of the element's path.
func (e *Element) Node() string { return e.node }

// StyleConfig is the chart-wide presentation of series paths.
type StyleConfig struct {
	Colors      []string
	StrokeWidth float64
	Curve       Curve
	ClipPathID  string
	FilterID    string

	// Filter, if non-nil, selects the series to draw.
	Filter func(s Series, index int) bool
}

// ShapeSource selects how paths are shaped. If UseConstructor is set,
// shapes come from Constructor, which must be non-nil.
type ShapeSource struct {
	Scales         Scales
	UseConstructor bool
	Constructor    LineConstructor
}

// A SeriesReconciler keeps one path per series in a group node,
// matching paths to series by name. New series enter, kept series
// update in place, and missing series exit.
type SeriesReconciler struct {
	groupID string
	anim    *Animator
	log     *zap.Logger

	byKey map[string]*Element
	order []*Element
	gen   uint64
	style StyleConfig
}

// NewSeriesReconciler returns a reconciler that draws into group
// node groupID.
func NewSeriesReconciler(groupID string, anim *Animator, log *zap.Logger) *SeriesReconciler {
	return &SeriesReconciler{
		groupID: groupID,
		anim:    anim,
		log:     log,
		byKey:   make(map[string]*Element),
	}
}

// Elements returns the current elements in paint order.
func (r *SeriesReconciler) Elements() []*Element {
	return append([]*Element(nil), r.order...)
}

// Element returns the element with the given key, or nil.
func (r *SeriesReconciler) Element(key string) *Element {
	return r.byKey[key]
}

// Reconcile brings the group's paths in line with data, whose
// coordinates are coords. Series names must be unique.
func (r *SeriesReconciler) Reconcile(b *batch, data []Series, coords [][]Coord, style StyleConfig, src ShapeSource) ([]*Element, error) {
	if src.UseConstructor && src.Constructor == nil {
		return nil, configErrorf("reconcile", "custom line constructor enabled but not provided")
	}

	if style.Filter != nil {
		var fd []Series
		var fc [][]Coord
		for i, s := range data {
			if style.Filter(s, i) {
				fd = append(fd, s)
				fc = append(fc, coords[i])
			}
		}
		data, coords = fd, fc
	}

	r.gen++
	r.style = style
	order := make([]*Element, 0, len(data))
	keep := make(map[string]bool, len(data))
	for i, s := range data {
		e := r.byKey[s.Name]
		if e == nil {
			e = &Element{Key: s.Name, node: r.groupID + "/line/" + s.Name}
			r.byKey[s.Name] = e
			b.create(r.groupID, e.node, NodePath, Attrs{
				"class":      "vertex__line",
				"fill":       "none",
				"role":       "img",
				"aria-label": s.Name,
			}, "")
		}
		keep[s.Name] = true
		e.Index = i
		e.Series = s
		e.coords = coords[i]
		e.gen = r.gen
		e.ID = s.dataID(i)
		e.Style = seriesStyle(s, i, style)
		e.D = r.shape(s, style.Curve, src)(e.coords)
		b.set(e.node, r.attrs(e))
		order = append(order, e)
	}

	for _, e := range r.order {
		if !keep[e.Key] {
			r.anim.Cancel(e.node)
			delete(r.byKey, e.Key)
			b.add(Op{Kind: OpRemove, ID: e.node})
		}
	}
	r.order = order

	ids := make([]string, len(order))
	for i, e := range order {
		ids[i] = e.node
	}
	b.add(Op{Kind: OpOrder, ID: r.groupID, Order: ids})
	return r.Elements(), nil
}

func (r *SeriesReconciler) shape(s Series, curve Curve, src ShapeSource) ShapeFunc {
	if len(s.Values) == 1 {
		r.log.Warn("cannot draw path through 1 point", zap.String("series", s.Name))
	}
	if src.UseConstructor {
		return src.Constructor.Line(src.Scales, s.Type)
	}
	if s.Interpolation != "" {
		curve = s.Interpolation
	}
	return LinePath(src.Scales, curve)
}

func seriesStyle(s Series, i int, cfg StyleConfig) Style {
	st := Style{
		Stroke:      s.Color,
		StrokeWidth: s.StrokeWidth,
		DashArray:   s.dashArray(),
		Hidden:      !s.IsActive(),
	}
	if st.Stroke == "" && len(cfg.Colors) > 0 {
		st.Stroke = cfg.Colors[i%len(cfg.Colors)]
	}
	if st.StrokeWidth == 0 {
		st.StrokeWidth = cfg.StrokeWidth
	}
	return st
}

func (r *SeriesReconciler) attrs(e *Element) Attrs {
	a := Attrs{
		"d":            e.D,
		"data-id":      e.ID,
		"data-title":   e.Key,
		"stroke":       e.Style.Stroke,
		"stroke-width": formatNum(e.Style.StrokeWidth),
		"display":      "",
	}
	if e.Style.Hidden {
		a["display"] = "none"
	}
	if r.style.ClipPathID != "" {
		a["clip-path"] = "url(#" + r.style.ClipPathID + ")"
	}
	if r.style.FilterID != "" {
		a["filter"] = "url(#" + r.style.FilterID + ")"
	}
	return a
}

// Reshape recomputes the path data of every element against new
// scales. Styles and identities are unchanged.
func (r *SeriesReconciler) Reshape(b *batch, src ShapeSource) {
	for _, e := range r.order {
		e.D = r.shape(e.Series, r.style.Curve, src)(e.coords)
		b.set(e.node, Attrs{"d": e.D})
	}
}

// ApplyDash sets every element's final dash pattern without
// animating.
func (r *SeriesReconciler) ApplyDash(b *batch) {
	for _, e := range r.order {
		b.set(e.node, Attrs{"stroke-dasharray": e.Style.DashArray, "stroke-dashoffset": ""})
	}
}

// Reveal animates every element drawing itself from start to end.
// Element i starts after i*delay. When an element's reveal ends its
// dash pattern is restored, unless a later reconciliation has
// touched the element since.
func (r *SeriesReconciler) Reveal(b *batch, delay, duration time.Duration, ease Easing) {
	for _, e := range r.order {
		e := e
		gen := e.gen
		b.set(e.node, Attrs{
			"stroke-dasharray":  formatNum(revealLength),
			"stroke-dashoffset": formatNum(revealLength),
		})
		r.anim.Start(Transition{
			Node:     e.node,
			Attr:     "stroke-dashoffset",
			From:     []float64{revealLength},
			To:       []float64{0},
			Delay:    time.Duration(e.Index) * delay,
			Duration: duration,
			Ease:     ease,
			OnEnd: func() []Op {
				if e.gen != gen || r.byKey[e.Key] != e {
					return nil
				}
				return []Op{{Kind: OpSet, ID: e.node, Attrs: Attrs{"stroke-dasharray": e.Style.DashArray}}}
			},
		})
	}
}
