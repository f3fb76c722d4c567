// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads chart configuration files.
//
// A configuration file is YAML. Every field is optional; fields that
// are absent keep the value of the base chart.Config passed to
// ToChart. For example:
//
//	title: Request latency
//	data:
//	  path: latency.csv
//	size: {width: 960, height: 540}
//	margin: {top: 20, right: 20, bottom: 40, left: 60}
//	axis:
//	  x: {label: time, ticks: 6}
//	  y: {label: ms, tickSize: auto}
//	animation:
//	  duration: 1s
//	  easing: cubic
//	palette: Dark2
//	curve: monotoneX
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/aclements/go-vertex/chart"
	"github.com/aclements/go-vertex/internal/dataset"
)

// File is the decoded form of a configuration file.
type File struct {
	ID            string `yaml:"id"`
	Title         string `yaml:"title"`
	ClassName     string `yaml:"className"`
	ClassModifier string `yaml:"classModifier"`

	Data Data  `yaml:"data"`
	Size *Size `yaml:"size"`

	Margin           *Margin   `yaml:"margin" validate:"omitempty"`
	Dimension        []float64 `yaml:"dimension" validate:"omitempty,len=2,dive,gte=0"`
	ActiveThirdRatio *bool     `yaml:"activeThirdRatio"`
	Radial           *bool     `yaml:"radial"`
	Responsive       *bool     `yaml:"responsive"`

	Axis Axes `yaml:"axis"`

	FormatParse string `yaml:"formatParse"`
	FormatDate  string `yaml:"formatDate"`
	ApplyOnAxis string `yaml:"applyOnAxis" validate:"omitempty,oneof=x y"`

	Animation *Animation `yaml:"animation"`

	Colors      []string `yaml:"colors" validate:"omitempty,dive,required"`
	Palette     string   `yaml:"palette"`
	StrokeWidth *float64 `yaml:"strokeWidth" validate:"omitempty,gt=0"`
	Curve       string   `yaml:"curve"`

	ClipPathID   string `yaml:"clipPathId"`
	DropShadowID string `yaml:"dropShadowId"`

	// dir is the directory of the file, against which relative
	// data paths are resolved.
	dir string
}

// Data names the dataset a chart draws.
type Data struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format" validate:"omitempty,oneof=json yaml csv xlsx bench"`
	Sheet  string `yaml:"sheet"`
	Unit   string `yaml:"unit"`
	XKey   string `yaml:"xKey"`
}

// Size is the container size used when rendering outside a page.
type Size struct {
	Width  float64 `yaml:"width" validate:"gt=0"`
	Height float64 `yaml:"height" validate:"gte=0"`
}

type Margin struct {
	Top    float64 `yaml:"top" validate:"gte=0"`
	Right  float64 `yaml:"right" validate:"gte=0"`
	Bottom float64 `yaml:"bottom" validate:"gte=0"`
	Left   float64 `yaml:"left" validate:"gte=0"`
}

type Axes struct {
	X        Axis   `yaml:"x"`
	Y        Axis   `yaml:"y"`
	Centered string `yaml:"centered" validate:"omitempty,oneof=x y both"`
}

type Axis struct {
	Show      *bool    `yaml:"show"`
	Direction string   `yaml:"direction" validate:"omitempty,oneof=top bottom left right"`
	Ticks     *int     `yaml:"ticks" validate:"omitempty,gte=0"`
	TickSize  TickSize `yaml:"tickSize"`
	Label     string   `yaml:"label"`
}

type Animation struct {
	Enabled      *bool    `yaml:"enabled"`
	AxisDuration Duration `yaml:"axisDuration"`
	Delay        Duration `yaml:"delay"`
	Duration     Duration `yaml:"duration"`
	Easing       string   `yaml:"easing"`
}

// Duration is a time.Duration written as a Go duration string such
// as "250ms", or as a bare number of milliseconds.
type Duration struct {
	D   time.Duration
	Set bool
}

func (d *Duration) UnmarshalYAML(n *yaml.Node) error {
	switch n.ShortTag() {
	case "!!int", "!!float":
		var ms float64
		if err := n.Decode(&ms); err != nil {
			return err
		}
		d.D = time.Duration(ms * float64(time.Millisecond))
	default:
		v, err := time.ParseDuration(n.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", n.Line, err)
		}
		d.D = v
	}
	if d.D < 0 {
		return fmt.Errorf("line %d: negative duration %s", n.Line, n.Value)
	}
	d.Set = true
	return nil
}

// TickSize is a tick length in pixels, or "auto" for grid lines that
// span the plot.
type TickSize struct {
	chart.TickSize
	Set bool
}

func (t *TickSize) UnmarshalYAML(n *yaml.Node) error {
	if strings.EqualFold(n.Value, "auto") {
		t.TickSize, t.Set = chart.AutoTick, true
		return nil
	}
	var px float64
	if err := n.Decode(&px); err != nil {
		return fmt.Errorf("line %d: tick size must be a number or auto", n.Line)
	}
	t.TickSize, t.Set = chart.Px(px), true
	return nil
}

var validate = validator.New()

// Load reads and validates the configuration file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.dir = filepath.Dir(path)
	return f, nil
}

// Parse decodes and validates a configuration file. Unknown fields
// are an error.
func Parse(data []byte) (*File, error) {
	f := new(File)
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := validate.Struct(f); err != nil {
		return nil, validationError(err)
	}
	return f, nil
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, len(verrs))
	for i, e := range verrs {
		field := strings.TrimPrefix(e.Namespace(), "File.")
		switch e.Tag() {
		case "oneof":
			msgs[i] = fmt.Sprintf("%s must be one of %s", field, e.Param())
		case "len":
			msgs[i] = fmt.Sprintf("%s must have %s elements", field, e.Param())
		case "gt", "gte":
			msgs[i] = fmt.Sprintf("%s must be %s %s", field, map[string]string{"gt": ">", "gte": ">="}[e.Tag()], e.Param())
		default:
			msgs[i] = fmt.Sprintf("%s is invalid", field)
		}
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

// DataPath returns the dataset path, resolved against the directory
// of the configuration file. It returns "" if no dataset is named.
func (f *File) DataPath() string {
	p := f.Data.Path
	if p == "" || p == "-" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(f.dir, p)
}

// DatasetOptions returns the options for loading the dataset.
func (f *File) DatasetOptions() dataset.Options {
	return dataset.Options{
		Format: dataset.Format(f.Data.Format),
		Sheet:  f.Data.Sheet,
		Unit:   f.Data.Unit,
		XKey:   f.Data.XKey,
	}
}

// ContainerSize returns the configured size, or def if none is set.
func (f *File) ContainerSize(def chart.Size) chart.Size {
	if f.Size == nil {
		return def
	}
	return chart.Size{Width: f.Size.Width, Height: f.Size.Height}
}

// ToChart returns base with the fields set in f applied.
func (f *File) ToChart(base chart.Config) (chart.Config, error) {
	cfg := base
	setString(&cfg.ID, f.ID)
	setString(&cfg.Title, f.Title)
	setString(&cfg.ClassName, f.ClassName)
	setString(&cfg.ClassModifier, f.ClassModifier)
	setString(&cfg.FormatParse, f.FormatParse)
	setString(&cfg.FormatDate, f.FormatDate)
	setString(&cfg.ClipPathID, f.ClipPathID)
	setString(&cfg.DropShadowID, f.DropShadowID)

	if m := f.Margin; m != nil {
		cfg.Margin = chart.Margin{Top: m.Top, Right: m.Right, Bottom: m.Bottom, Left: m.Left}
	}
	if len(f.Dimension) == 2 {
		cfg.Dimension = [2]float64{f.Dimension[0], f.Dimension[1]}
	}
	setBool(&cfg.ActiveThirdRatio, f.ActiveThirdRatio)
	setBool(&cfg.Radial, f.Radial)
	setBool(&cfg.IsResponsive, f.Responsive)

	for i, ax := range []Axis{f.Axis.X, f.Axis.Y} {
		setBool(&cfg.HasAxis[i], ax.Show)
		if ax.Direction != "" {
			cfg.AxisDirection[i] = chart.Direction(ax.Direction)
		}
		if ax.Ticks != nil {
			cfg.Ticks[i] = *ax.Ticks
		}
		if ax.TickSize.Set {
			cfg.TickSize[i] = ax.TickSize.TickSize
		}
		setString(&cfg.AxisLabel[i], ax.Label)
	}
	if f.Axis.Centered != "" {
		cfg.AxisCentered = chart.Centering(f.Axis.Centered)
	}
	switch f.ApplyOnAxis {
	case "x":
		cfg.ApplyOnAxis = chart.AxisX
	case "y":
		cfg.ApplyOnAxis = chart.AxisY
	}

	if a := f.Animation; a != nil {
		setBool(&cfg.HasAnimation, a.Enabled)
		for _, d := range []struct {
			src Duration
			dst *time.Duration
		}{
			{a.AxisDuration, &cfg.Animation.AxisDuration},
			{a.Delay, &cfg.Animation.Delay},
			{a.Duration, &cfg.Animation.Duration},
		} {
			if d.src.Set {
				*d.dst = d.src.D
			}
		}
		if a.Easing != "" {
			e, ok := chart.EasingByName(a.Easing)
			if !ok {
				return cfg, fmt.Errorf("unknown easing %q", a.Easing)
			}
			cfg.Animation.Easing = e
		}
	}

	switch {
	case len(f.Colors) > 0:
		cfg.Colors = append([]string(nil), f.Colors...)
	case f.Palette != "":
		colors := chart.PaletteColors(f.Palette)
		if colors == nil {
			return cfg, fmt.Errorf("unknown palette %q", f.Palette)
		}
		cfg.Colors = colors
	}
	if f.StrokeWidth != nil {
		cfg.StrokeWidth = *f.StrokeWidth
	}
	if f.Curve != "" {
		c, err := chart.ParseCurve(f.Curve)
		if err != nil {
			return cfg, err
		}
		cfg.CurveInterpolation = c
	}
	return cfg, nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
