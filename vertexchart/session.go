// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/aclements/go-vertex/chart"
	"github.com/aclements/go-vertex/internal/config"
	"github.com/aclements/go-vertex/internal/dataset"
	"github.com/aclements/go-vertex/scene"
)

// defaultWidth is the chart width when neither the flags nor the
// configuration give one.
const defaultWidth = 800

// A session is a mounted chart and the scene it draws into.
type session struct {
	a     *app
	file  *config.File
	size  chart.Size
	graph *scene.Graph
	chart *chart.LineChart
}

func openSession(a *app) (*session, error) {
	s := &session{a: a}
	if err := s.mount(); err != nil {
		return nil, err
	}
	return s, nil
}

func (a *app) loadConfig() (*config.File, error) {
	if a.config == "" {
		return config.Parse(nil)
	}
	return config.Load(a.config)
}

func (a *app) dataPath(f *config.File) string {
	if a.data != "" {
		return a.data
	}
	return f.DataPath()
}

func (a *app) datasetOptions(f *config.File) dataset.Options {
	opts := f.DatasetOptions()
	if a.format != "" {
		opts.Format = dataset.Format(a.format)
	}
	if a.sheet != "" {
		opts.Sheet = a.sheet
	}
	if a.unit != "" {
		opts.Unit = a.unit
	}
	if a.xKey != "" {
		opts.XKey = a.xKey
	}
	return opts
}

func (a *app) containerSize(f *config.File) chart.Size {
	size := f.ContainerSize(chart.Size{Width: defaultWidth})
	if a.width > 0 {
		size.Width = a.width
	}
	if a.height > 0 {
		size.Height = a.height
	}
	return size
}

// loadData reads the session's dataset.
func (s *session) loadData() ([]chart.Series, error) {
	path := s.a.dataPath(s.file)
	if path == "" {
		return nil, errors.New("no dataset; use --data or set data.path in the configuration")
	}
	return dataset.Load(path, s.a.datasetOptions(s.file))
}

// mount loads the configuration and data and draws a new chart into a
// new scene. On error the session is unchanged.
func (s *session) mount() error {
	file, err := s.a.loadConfig()
	if err != nil {
		return err
	}
	cfg, err := file.ToChart(chart.DefaultConfig())
	if err != nil {
		return fmt.Errorf("%s: %w", s.a.config, err)
	}
	cfg.Logger = s.a.log

	old := s.file
	s.file = file
	data, err := s.loadData()
	if err != nil {
		s.file = old
		return err
	}

	oldSize := s.size
	s.size = s.a.containerSize(file)
	graph := scene.New()
	c, err := chart.New(chart.ContainerFunc(func() chart.Size { return s.size }), graph, data, cfg)
	if err != nil {
		s.file, s.size = old, oldSize
		return err
	}
	s.graph, s.chart = graph, c
	s.a.log.Debug("chart mounted",
		zap.String("id", c.ID()),
		zap.Int("series", len(data)),
		zap.Stringer("kind", c.Kind()))
	return c.Settle()
}

// reloadData re-reads the dataset and updates the chart in place.
func (s *session) reloadData() error {
	data, err := s.loadData()
	if err != nil {
		return err
	}
	return s.update(data)
}

// update replaces the chart's series.
func (s *session) update(data []chart.Series) error {
	if err := s.chart.UpdateData(data); err != nil {
		return err
	}
	return s.chart.Settle()
}

// resize redraws the chart for a new container size.
func (s *session) resize(size chart.Size) error {
	old := s.size
	s.size = size
	if err := s.chart.Resize(); err != nil {
		s.size = old
		return err
	}
	return s.chart.Settle()
}

func (s *session) writeSVG(w io.Writer) error {
	return s.graph.WriteSVG(w)
}
