// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

// NodeKind is the kind of a scene node created by an OpCreate.
type NodeKind int

const (
	NodeRoot NodeKind = iota
	NodeGroup
	NodePath
	NodeText
)

func (k NodeKind) String() string {
	switch k {
	case NodeRoot:
		return "svg"
	case NodeGroup:
		return "g"
	case NodePath:
		return "path"
	case NodeText:
		return "text"
	}
	return "unknown"
}

// OpKind is the kind of a scene-graph operation.
type OpKind int

const (
	// OpCreate appends a new node of kind Node with Attrs and Text
	// to the children of Parent.
	OpCreate OpKind = iota
	// OpSet merges Attrs into node ID. An empty value removes
	// the attribute.
	OpSet
	// OpTicks replaces the tick collection drawn by axis group ID.
	OpTicks
	// OpRemove removes node ID and its descendants.
	OpRemove
	// OpOrder reorders the children of node ID. Order lists child
	// IDs in paint order; children not listed keep their position
	// ahead of those that are.
	OpOrder
)

// Attrs are node attributes.
type Attrs map[string]string

// AxisTicks describes everything a renderer needs to draw an axis
// inside its group: the domain line, tick marks, and tick labels.
type AxisTicks struct {
	Direction Direction

	// Range is the pixel extent of the axis.
	Range [2]float64

	// Inner is the tick mark length and Outer is the length of
	// the domain path end caps. Negative values point into the
	// plot.
	Inner, Outer float64

	Ticks []Tick
}

// Tick is a single axis tick.
type Tick struct {
	Value float64
	// Pos is the pixel offset of the tick along the axis.
	Pos   float64
	Label string
}

// An Op is a single mutation of the host scene graph.
type Op struct {
	Kind   OpKind
	ID     string
	Parent string
	Node   NodeKind
	Attrs  Attrs
	Text   string
	Axis   *AxisTicks
	Order  []string
}

// A Renderer applies scene-graph operations. A chart hands each
// entry point's operations to Apply in a single batch, and animation
// frames in later batches.
type Renderer interface {
	Apply(ops []Op) error
}

// batch accumulates the operations of one entry point.
type batch struct {
	ops []Op
}

func (b *batch) create(parent, id string, kind NodeKind, attrs Attrs, text string) {
	b.ops = append(b.ops, Op{Kind: OpCreate, ID: id, Parent: parent, Node: kind, Attrs: attrs, Text: text})
}

func (b *batch) set(id string, attrs Attrs) {
	b.ops = append(b.ops, Op{Kind: OpSet, ID: id, Attrs: attrs})
}

func (b *batch) add(ops ...Op) {
	b.ops = append(b.ops, ops...)
}

func (b *batch) take() []Op {
	ops := b.ops
	b.ops = nil
	return ops
}
