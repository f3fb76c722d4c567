// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aclements/go-vertex/internal/config"
)

func newWatchCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-render a chart to SVG whenever its data or configuration changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return errors.New("watch requires -o")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			err := runWatch(ctx, a, out)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "write SVG to `file`")
	return cmd
}

func runWatch(ctx context.Context, a *app, out string) error {
	s, err := openSession(a)
	if err != nil {
		return err
	}
	if err := writeFileSVG(s, out); err != nil {
		return err
	}
	paths := s.watchPaths()
	if len(paths) == 0 {
		return errors.New("nothing to watch")
	}
	a.log.Info("watching", zap.Strings("paths", paths), zap.String("output", out))
	return config.Watch(ctx, a.log, paths, func(path string) {
		if err := s.reload(path); err != nil {
			a.log.Error("reload failed", zap.String("file", path), zap.Error(err))
			return
		}
		if err := writeFileSVG(s, out); err != nil {
			a.log.Error("writing chart", zap.String("output", out), zap.Error(err))
			return
		}
		a.log.Info("chart updated", zap.String("file", path))
	})
}

// watchPaths returns the files the session's chart is drawn from.
func (s *session) watchPaths() []string {
	var paths []string
	if s.a.config != "" {
		paths = append(paths, s.a.config)
	}
	if p := s.a.dataPath(s.file); p != "" && p != "-" {
		paths = append(paths, p)
	}
	return paths
}

// reload applies a change to the file at path. A configuration change
// mounts a new chart; a data change updates the chart in place.
func (s *session) reload(path string) error {
	if path == s.a.config {
		return s.mount()
	}
	return s.reloadData()
}

// writeFileSVG writes the chart to path, replacing it atomically.
func writeFileSVG(s *session, path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".vertexchart-*.svg")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if err := s.writeSVG(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
