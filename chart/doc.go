// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart draws line charts of named series into a retained
// scene graph and keeps them up to date as data and container size
// change.
//
// A chart is built in stages. ResolveGeometry turns the container
// size and margins into a Geometry. BuildScales derives an x scale
// and a y scale from the data extents; the y domain always includes
// 0. An AxisController draws the axes from the scales, and a
// SeriesReconciler draws one path per series, matching paths to
// series by name so that a series keeps its path across updates.
//
// LineChart ties these together. New mounts a chart, Resize redoes
// the geometry without touching scale domains, and UpdateData
// rebuilds the scales and reconciles the series paths. All drawing
// goes through a Renderer as batches of Ops; package
// github.com/aclements/go-vertex/scene provides a Renderer that
// keeps a node tree and writes it as SVG.
//
// Animations run on frames driven by the host through
// LineChart.Step, or complete at once with LineChart.Settle.
package chart
