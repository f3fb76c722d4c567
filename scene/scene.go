// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene implements a retained scene graph for charts.
//
// A Graph is a chart.Renderer: it applies the operations a chart
// emits to a tree of nodes, which can then be inspected or written
// out as an SVG document.
package scene

import (
	"fmt"
	"sort"

	"github.com/aclements/go-vertex/chart"
)

// A Node is a single element of the scene.
type Node struct {
	ID    string
	Kind  chart.NodeKind
	Attrs chart.Attrs
	Text  string

	// Axis is set on axis groups and describes the ticks drawn
	// inside the group.
	Axis *chart.AxisTicks

	Parent   *Node
	Children []*Node
}

// Attr returns the value of attribute k, or "".
func (n *Node) Attr(k string) string { return n.Attrs[k] }

// Graph is a tree of Nodes addressed by ID. The zero Graph is not
// usable; use New.
type Graph struct {
	root  *Node
	nodes map[string]*Node
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{nodes: make(map[string]*Node)}
}

// Root returns the root node, or nil if none has been created.
func (g *Graph) Root() *Node { return g.root }

// Node returns the node with the given ID, or nil.
func (g *Graph) Node(id string) *Node { return g.nodes[id] }

// Len returns the number of nodes in g.
func (g *Graph) Len() int { return len(g.nodes) }

// Apply applies ops in order. It stops at the first operation that
// does not fit the graph, such as one naming an unknown node, and
// returns an error describing it.
func (g *Graph) Apply(ops []chart.Op) error {
	for i := range ops {
		if err := g.apply(&ops[i]); err != nil {
			return err
		}
	}
	return nil
}

func (g *Graph) apply(op *chart.Op) error {
	switch op.Kind {
	case chart.OpCreate:
		return g.create(op)
	}

	n := g.nodes[op.ID]
	if n == nil {
		return fmt.Errorf("scene: op %d on unknown node %q", op.Kind, op.ID)
	}
	switch op.Kind {
	case chart.OpSet:
		for k, v := range op.Attrs {
			if v == "" {
				delete(n.Attrs, k)
			} else {
				n.Attrs[k] = v
			}
		}
	case chart.OpTicks:
		n.Axis = op.Axis
	case chart.OpRemove:
		g.remove(n)
	case chart.OpOrder:
		return g.order(n, op.Order)
	default:
		return fmt.Errorf("scene: unknown op %d", op.Kind)
	}
	return nil
}

func (g *Graph) create(op *chart.Op) error {
	if _, ok := g.nodes[op.ID]; ok {
		return fmt.Errorf("scene: node %q already exists", op.ID)
	}
	n := &Node{ID: op.ID, Kind: op.Node, Attrs: make(chart.Attrs, len(op.Attrs)), Text: op.Text}
	for k, v := range op.Attrs {
		if v != "" {
			n.Attrs[k] = v
		}
	}
	if op.Parent == "" {
		if op.Node != chart.NodeRoot {
			return fmt.Errorf("scene: node %q has no parent", op.ID)
		}
		if g.root != nil {
			return fmt.Errorf("scene: second root %q", op.ID)
		}
		g.root = n
	} else {
		p := g.nodes[op.Parent]
		if p == nil {
			return fmt.Errorf("scene: parent %q of %q does not exist", op.Parent, op.ID)
		}
		n.Parent = p
		p.Children = append(p.Children, n)
	}
	g.nodes[op.ID] = n
	return nil
}

func (g *Graph) remove(n *Node) {
	var drop func(n *Node)
	drop = func(n *Node) {
		delete(g.nodes, n.ID)
		for _, c := range n.Children {
			drop(c)
		}
	}
	drop(n)
	if p := n.Parent; p != nil {
		for i, c := range p.Children {
			if c == n {
				p.Children = append(p.Children[:i], p.Children[i+1:]...)
				break
			}
		}
	} else {
		g.root = nil
	}
}

func (g *Graph) order(n *Node, ids []string) error {
	pos := make(map[string]int, len(ids))
	for i, id := range ids {
		c := g.nodes[id]
		if c == nil || c.Parent != n {
			return fmt.Errorf("scene: %q is not a child of %q", id, n.ID)
		}
		pos[id] = i
	}
	// Unlisted children sort first and keep their order.
	sort.SliceStable(n.Children, func(i, j int) bool {
		pi, iok := pos[n.Children[i].ID]
		pj, jok := pos[n.Children[j].ID]
		if iok != jok {
			return !iok
		}
		return pi < pj
	})
	return nil
}

// Walk calls fn for each node of g in paint order, depth first.
func (g *Graph) Walk(fn func(n *Node, depth int)) {
	var walk func(n *Node, depth int)
	walk = func(n *Node, depth int) {
		fn(n, depth)
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	if g.root != nil {
		walk(g.root, 0)
	}
}
