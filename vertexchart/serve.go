// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aclements/go-vertex/chart"
	"github.com/aclements/go-vertex/internal/config"
	"github.com/aclements/go-vertex/internal/dataset"
)

// maxBody bounds POST /data request bodies.
const maxBody = 32 << 20

func newServeCmd(a *app) *cobra.Command {
	var (
		addr  string
		watch bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a chart over HTTP",
		Long: `Serve a chart over HTTP.

  GET  /chart.svg?width=W&height=H  the chart, resized if W or H is given
  POST /data?format=F               replace the series (default format json)
  GET  /lookup?series=S&x=PX        the point of S nearest plot pixel PX
  GET  /healthz                     liveness`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(a)
			if err != nil {
				return err
			}
			srv := newServer(s, a.log)
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			if watch {
				go srv.watch(ctx)
			}
			return srv.listen(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen on `address`")
	cmd.Flags().BoolVar(&watch, "watch", false, "reload the chart when its data or configuration files change")
	return cmd
}

// A server serves one chart. The chart is not safe for concurrent
// use, so every handler holds mu.
type server struct {
	mu  sync.Mutex
	s   *session
	log *zap.Logger
}

func newServer(s *session, log *zap.Logger) *server {
	return &server{s: s, log: log}
}

func (srv *server) router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})
	r.Get("/chart.svg", srv.handleChart)
	r.Post("/data", srv.handleData)
	r.Get("/lookup", srv.handleLookup)
	return r
}

func (srv *server) listen(ctx context.Context, addr string) error {
	hs := &http.Server{Addr: addr, Handler: srv.router(), ReadHeaderTimeout: 10 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- hs.ListenAndServe() }()
	srv.log.Info("serving chart", zap.String("addr", addr))
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return hs.Shutdown(shutdown)
	}
}

func (srv *server) watch(ctx context.Context) {
	srv.mu.Lock()
	paths := srv.s.watchPaths()
	srv.mu.Unlock()
	err := config.Watch(ctx, srv.log, paths, func(path string) {
		srv.mu.Lock()
		defer srv.mu.Unlock()
		if err := srv.s.reload(path); err != nil {
			srv.log.Error("reload failed", zap.String("file", path), zap.Error(err))
			return
		}
		srv.log.Info("chart reloaded", zap.String("file", path))
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		srv.log.Error("watch stopped", zap.Error(err))
	}
}

func (srv *server) handleChart(w http.ResponseWriter, r *http.Request) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	q := r.URL.Query()
	if q.Get("width") != "" || q.Get("height") != "" {
		size := srv.s.size
		for _, d := range []struct {
			key string
			dst *float64
		}{{"width", &size.Width}, {"height", &size.Height}} {
			v := q.Get(d.key)
			if v == "" {
				continue
			}
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				http.Error(w, "bad "+d.key+": "+err.Error(), http.StatusBadRequest)
				return
			}
			*d.dst = f
		}
		if err := srv.s.resize(size); err != nil {
			srv.fail(w, err)
			return
		}
	}

	var buf bytes.Buffer
	if err := srv.s.writeSVG(&buf); err != nil {
		srv.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(buf.Bytes())
}

func (srv *server) handleData(w http.ResponseWriter, r *http.Request) {
	format := dataset.Format(r.URL.Query().Get("format"))
	if format == "" {
		format = dataset.JSON
	}
	data, err := dataset.Read(http.MaxBytesReader(w, r.Body, maxBody), dataset.Options{Format: format})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()
	if err := srv.s.update(data); err != nil {
		srv.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// lookupResult is the JSON response of /lookup.
type lookupResult struct {
	Series string  `json:"series"`
	Index  int     `json:"index"`
	X      string  `json:"x"`
	Y      float64 `json:"y"`
	PX     float64 `json:"px"`
	PY     float64 `json:"py"`
}

func (srv *server) handleLookup(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	px, err := strconv.ParseFloat(q.Get("x"), 64)
	if err != nil {
		http.Error(w, "bad x: "+err.Error(), http.StatusBadRequest)
		return
	}

	srv.mu.Lock()
	h, ok := srv.s.chart.Lookup(q.Get("series"), px)
	srv.mu.Unlock()
	if !ok {
		http.Error(w, "no such point", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lookupResult{
		Series: h.Series,
		Index:  h.Index,
		X:      h.Point.X.String(),
		Y:      h.Point.Y,
		PX:     h.X,
		PY:     h.Y,
	})
}

// fail reports a chart error. Configuration errors are the client's
// fault.
func (srv *server) fail(w http.ResponseWriter, err error) {
	if chart.IsConfigurationError(err) {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	srv.log.Error("chart error", zap.Error(err))
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
