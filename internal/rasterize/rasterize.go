// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rasterize converts SVG charts to PNG or JPEG images using a
// headless Chrome.
package rasterize

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/kballard/go-shellquote"
	"golang.org/x/crypto/ssh/terminal"
	"golang.org/x/image/draw"
)

// Format is a raster image format.
type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
)

// ParseFormat returns the format called name. "jpg" is accepted for
// JPEG.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "png":
		return PNG, nil
	case "jpeg", "jpg":
		return JPEG, nil
	}
	return "", fmt.Errorf("unsupported image format %q", name)
}

// Options control rasterization.
type Options struct {
	// Width and Height are the browser viewport size. They should
	// match the SVG's width and height.
	Width, Height int

	Format Format

	// Quality is the JPEG quality. Zero means 90.
	Quality int

	// Scale resizes the screenshot. Zero means 1.
	Scale float64

	// ChromeFlags are extra command line flags for Chrome, in shell
	// syntax, such as "--no-sandbox --disable-gpu".
	ChromeFlags string

	// Timeout bounds the browser session. Zero means one minute.
	Timeout time.Duration
}

// AllocatorOptions returns the Chrome allocator options for flags,
// which are parsed with shell quoting rules.
func AllocatorOptions(flags string) ([]chromedp.ExecAllocatorOption, error) {
	words, err := shellquote.Split(flags)
	if err != nil {
		return nil, fmt.Errorf("parsing Chrome flags: %w", err)
	}
	opts := append([]chromedp.ExecAllocatorOption(nil), chromedp.DefaultExecAllocatorOptions[:]...)
	for _, w := range words {
		name, val, err := splitFlag(w)
		if err != nil {
			return nil, err
		}
		opts = append(opts, chromedp.Flag(name, val))
	}
	return opts, nil
}

// splitFlag splits "--name=value" into name and value. A flag with no
// value is true.
func splitFlag(w string) (string, interface{}, error) {
	if !strings.HasPrefix(w, "-") {
		return "", nil, fmt.Errorf("Chrome flag %q does not start with -", w)
	}
	w = strings.TrimLeft(w, "-")
	if w == "" {
		return "", nil, errors.New("empty Chrome flag")
	}
	if i := strings.Index(w, "="); i >= 0 {
		return w[:i], w[i+1:], nil
	}
	return w, true, nil
}

// Screenshot loads svg in a headless Chrome and returns a PNG
// screenshot of it.
func Screenshot(ctx context.Context, svg []byte, opts Options) ([]byte, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid viewport %dx%d", opts.Width, opts.Height)
	}
	allocOpts, err := AllocatorOptions(opts.ChromeFlags)
	if err != nil {
		return nil, err
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = time.Minute
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()
	ctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	var buf []byte
	err = chromedp.Run(ctx,
		chromedp.EmulateViewport(int64(opts.Width), int64(opts.Height)),
		chromedp.Navigate(DataURL(svg)),
		chromedp.WaitVisible(`svg`, chromedp.ByQuery),
		chromedp.Screenshot(`svg`, &buf, chromedp.ByQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("rendering SVG in Chrome: %w", err)
	}
	if len(buf) == 0 {
		return nil, errors.New("Chrome returned an empty screenshot")
	}
	return buf, nil
}

// DataURL returns a data URL that loads svg.
func DataURL(svg []byte) string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(svg)
}

// Render rasterizes svg and writes it to w in opts.Format.
func Render(ctx context.Context, w io.Writer, svg []byte, opts Options) error {
	shot, err := Screenshot(ctx, svg, opts)
	if err != nil {
		return err
	}
	if opts.Format == PNG && (opts.Scale == 0 || opts.Scale == 1) {
		_, err := w.Write(shot)
		return err
	}
	img, err := png.Decode(bytes.NewReader(shot))
	if err != nil {
		return fmt.Errorf("decoding screenshot: %w", err)
	}
	return Encode(w, Scale(img, opts.Scale), opts.Format, opts.Quality)
}

// Scale resizes img by factor using bilinear interpolation. A factor
// of 0 or 1 returns img unchanged.
func Scale(img image.Image, factor float64) image.Image {
	if factor == 0 || factor == 1 {
		return img
	}
	sb := img.Bounds()
	w := int(math.Max(1, math.Round(float64(sb.Dx())*factor)))
	h := int(math.Max(1, math.Round(float64(sb.Dy())*factor)))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, sb, draw.Over, nil)
	return dst
}

// Encode writes img to w in format.
func Encode(w io.Writer, img image.Image, format Format, quality int) error {
	switch format {
	case PNG:
		return png.Encode(w, img)
	case JPEG:
		if quality == 0 {
			quality = 90
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	}
	return fmt.Errorf("unsupported image format %q", format)
}

// CheckOutput returns an error if f is a terminal, since binary image
// data would garble it.
func CheckOutput(f *os.File) error {
	if terminal.IsTerminal(int(f.Fd())) {
		return fmt.Errorf("refusing to write image data to a terminal; use -o")
	}
	return nil
}
