// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rasterize

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chromedp/chromedp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"png": PNG, "PNG": PNG, "jpg": JPEG, "jpeg": JPEG} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("gif")
	assert.Error(t, err)
}

func TestSplitFlag(t *testing.T) {
	for _, test := range []struct {
		in   string
		name string
		val  interface{}
	}{
		{"--no-sandbox", "no-sandbox", true},
		{"--window-size=10,20", "window-size", "10,20"},
		{"-v=1", "v", "1"},
	} {
		name, val, err := splitFlag(test.in)
		require.NoError(t, err, test.in)
		assert.Equal(t, test.name, name)
		assert.Equal(t, test.val, val)
	}
	for _, bad := range []string{"no-dash", "--"} {
		_, _, err := splitFlag(bad)
		assert.Error(t, err, bad)
	}
}

func TestAllocatorOptions(t *testing.T) {
	base := len(chromedp.DefaultExecAllocatorOptions)
	opts, err := AllocatorOptions(`--no-sandbox --user-agent="a b"`)
	require.NoError(t, err)
	assert.Len(t, opts, base+2)

	opts, err = AllocatorOptions("")
	require.NoError(t, err)
	assert.Len(t, opts, base)

	_, err = AllocatorOptions(`--user-agent="unterminated`)
	assert.Error(t, err)
}

func TestDataURL(t *testing.T) {
	u := DataURL([]byte("<svg/>"))
	require.True(t, strings.HasPrefix(u, "data:image/svg+xml;base64,"))
	b, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(u, "data:image/svg+xml;base64,"))
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(b))
}

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			img.Set(x, y, color.RGBA{uint8(x * 6), uint8(y * 12), 0, 255})
		}
	}
	return img
}

func TestScale(t *testing.T) {
	src := testImage()
	assert.Same(t, src, Scale(src, 0))
	assert.Same(t, src, Scale(src, 1))
	assert.Equal(t, image.Rect(0, 0, 20, 10), Scale(src, 0.5).Bounds())
	assert.Equal(t, image.Rect(0, 0, 1, 1), Scale(src, 0.001).Bounds())
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, testImage(), PNG, 0))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())

	buf.Reset()
	require.NoError(t, Encode(&buf, testImage(), JPEG, 0))
	img, err = jpeg.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dy())

	assert.Error(t, Encode(&buf, testImage(), "gif", 0))
}

func TestScreenshotViewport(t *testing.T) {
	_, err := Screenshot(context.Background(), []byte("<svg/>"), Options{Width: 0, Height: 10})
	assert.ErrorContains(t, err, "invalid viewport")
}

func TestCheckOutput(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.png"))
	require.NoError(t, err)
	defer f.Close()
	assert.NoError(t, CheckOutput(f))
}
