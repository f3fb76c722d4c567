// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testCSV = "x,cpu,mem\n0,0,1\n1,5,2\n2,-3,4\n"

// writeFixture writes a configuration and CSV dataset to a temporary
// directory and returns the configuration path.
func writeFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data.csv"), []byte(testCSV), 0o644))
	cfg := "id: test\ntitle: Usage\ndata: {path: data.csv}\nsize: {width: 800, height: 450}\n"
	path := filepath.Join(dir, "chart.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(&app{log: zap.NewNop()})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderSVG(t *testing.T) {
	cfg := writeFixture(t)
	out, err := run(t, "render", "-c", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, `viewBox="0 0 800 450"`)
	assert.Contains(t, out, `data-title="cpu"`)
	assert.Contains(t, out, `data-title="mem"`)
	assert.Contains(t, out, "<title>Usage</title>")
}

func TestRenderToFile(t *testing.T) {
	cfg := writeFixture(t)
	path := filepath.Join(t.TempDir(), "out.svg")
	_, err := run(t, "render", "-c", cfg, "-o", path, "--width", "600", "--height", "300")
	require.NoError(t, err)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `viewBox="0 0 600 300"`)
}

func TestRenderDataFlag(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "series.json")
	require.NoError(t, os.WriteFile(data, []byte(`[{"name": "a", "values": [{"x": 0, "y": 1}, {"x": 1, "y": 2}]}]`), 0o644))
	out, err := run(t, "render", "-d", data)
	require.NoError(t, err)
	assert.Contains(t, out, `data-title="a"`)
	// The default width gives the default aspect ratio.
	assert.Contains(t, out, `viewBox="0 0 800 449.438"`)
}

func TestRenderTable(t *testing.T) {
	cfg := writeFixture(t)
	out, err := run(t, "render", "-c", cfg, "--table")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, []string{"series", "x", "y"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"cpu", "1", "5"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"mem", "2", "4"}, strings.Fields(lines[6]))
}

func TestRenderErrors(t *testing.T) {
	_, err := run(t, "render")
	assert.ErrorContains(t, err, "no dataset")

	cfg := writeFixture(t)
	_, err = run(t, "render", "-c", cfg, "--format", "gif")
	assert.ErrorContains(t, err, "unsupported image format")

	_, err = run(t, "render", "-c", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestOutputFormat(t *testing.T) {
	for _, test := range []struct {
		rf   renderFlags
		want string
	}{
		{renderFlags{}, "svg"},
		{renderFlags{out: "a.PNG"}, "png"},
		{renderFlags{out: "a.jpg"}, "jpg"},
		{renderFlags{out: "a.svg", format: "JPEG"}, "jpeg"},
	} {
		assert.Equal(t, test.want, test.rf.outputFormat(), "%+v", test.rf)
	}
}

func TestReload(t *testing.T) {
	cfg := writeFixture(t)
	a := &app{config: cfg, log: zap.NewNop()}
	s, err := openSession(a)
	require.NoError(t, err)
	data := filepath.Join(filepath.Dir(cfg), "data.csv")
	assert.Equal(t, []string{cfg, data}, s.watchPaths())

	require.NoError(t, os.WriteFile(data, []byte("x,cpu,disk\n0,1,2\n1,2,3\n"), 0o644))
	require.NoError(t, s.reload(data))
	assert.NotNil(t, s.graph.Node("test/lines/line/disk"))
	assert.Nil(t, s.graph.Node("test/lines/line/mem"))

	require.NoError(t, os.WriteFile(cfg, []byte("id: again\ndata: {path: data.csv}\n"), 0o644))
	require.NoError(t, s.reload(cfg))
	assert.Equal(t, "again", s.chart.ID())

	// A broken configuration leaves the chart as it was.
	require.NoError(t, os.WriteFile(cfg, []byte("curve: wiggly\n"), 0o644))
	assert.Error(t, s.reload(cfg))
	assert.Equal(t, "again", s.chart.ID())
}

func TestWriteFileSVG(t *testing.T) {
	s, err := openSession(&app{config: writeFixture(t), log: zap.NewNop()})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "chart.svg")
	require.NoError(t, writeFileSVG(s, path))
	require.NoError(t, writeFileSVG(s, path))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "<?xml"))
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	s, err := openSession(&app{config: writeFixture(t), log: zap.NewNop()})
	require.NoError(t, err)
	ts := httptest.NewServer(newServer(s, zap.NewNop()).router())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	var b bytes.Buffer
	_, err = b.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, b.String()
}

func TestServeChart(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok\n", body)

	resp, body = get(t, ts.URL+"/chart.svg")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
	assert.Contains(t, body, `viewBox="0 0 800 450"`)

	resp, body = get(t, ts.URL+"/chart.svg?width=1000&height=600")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `viewBox="0 0 1000 600"`)

	resp, _ = get(t, ts.URL+"/chart.svg?width=wide")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = get(t, ts.URL+"/chart.svg?width=-5")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestServeData(t *testing.T) {
	ts := newTestServer(t)

	post := func(query, body string) int {
		resp, err := http.Post(ts.URL+"/data"+query, "application/json", strings.NewReader(body))
		require.NoError(t, err)
		resp.Body.Close()
		return resp.StatusCode
	}
	assert.Equal(t, http.StatusNoContent, post("", `[{"name": "net", "values": [{"x": 0, "y": 1}, {"x": 4, "y": 3}]}]`))
	_, body := get(t, ts.URL+"/chart.svg")
	assert.Contains(t, body, `data-title="net"`)
	assert.NotContains(t, body, `data-title="cpu"`)

	assert.Equal(t, http.StatusNoContent, post("?format=csv", "x,a\n0,1\n1,2\n"))
	assert.Equal(t, http.StatusBadRequest, post("", `{`))
	assert.Equal(t, http.StatusUnprocessableEntity, post("", `[]`))
}

func TestServeLookup(t *testing.T) {
	ts := newTestServer(t)

	// The plot is 700 pixels wide for x in [0, 2].
	resp, body := get(t, ts.URL+"/lookup?series=cpu&x=340")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got lookupResult
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, lookupResult{Series: "cpu", Index: 1, X: "1", Y: 5, PX: 350, PY: 0}, got)

	resp, _ = get(t, ts.URL+"/lookup?series=nope&x=1")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = get(t, ts.URL+"/lookup?series=cpu")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
