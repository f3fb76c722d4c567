// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"
	"time"

	"github.com/aclements/go-gg/palette/brewer"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Animation controls chart transitions.
type Animation struct {
	// AxisDuration is the length of axis moves on resize and
	// update.
	AxisDuration time.Duration
	// Delay staggers the reveal of successive series.
	Delay time.Duration
	// Duration is the length of each series reveal.
	Duration time.Duration
	Easing   Easing
}

// Config configures a LineChart. Start from DefaultConfig.
type Config struct {
	// ID namespaces the chart's scene nodes. If empty, New
	// assigns a random UUID.
	ID string

	Title         string
	ClassName     string
	ClassModifier string

	Margin           Margin
	Dimension        [2]float64
	ActiveThirdRatio bool
	Radial           bool

	// HasAxis selects the x and y axes. A centered axis is drawn
	// even when not selected here.
	HasAxis       [2]bool
	AxisDirection [2]Direction
	AxisCentered  Centering
	AxisLabel     [2]string

	// IsResponsive tells hosts to call Resize when the container
	// changes size.
	IsResponsive bool

	// FormatParse is the Go time layout of date string x values.
	// FormatDate is the layout of the ApplyOnAxis tick labels.
	FormatParse string
	FormatDate  string
	ApplyOnAxis AxisName

	Events []Listener

	HasAnimation bool
	Animation    Animation

	Ticks         [2]int
	TickSize      [2]TickSize
	TickFormatter [2]TickFormatter

	// Colors is the series color cycle. If empty, a ColorBrewer
	// palette is used.
	Colors             []string
	StrokeWidth        float64
	CurveInterpolation Curve

	UseLineConstructor bool
	LineConstructor    LineConstructor

	// Filter, if set, selects the series to draw.
	Filter func(s Series, index int) bool

	ClipPathID   string
	DropShadowID string

	// OnResize and OnUpdate run at the end of Resize and
	// UpdateData.
	OnResize func(c *LineChart)
	OnUpdate func(c *LineChart)

	Logger *zap.Logger
	Clock  Clock
}

// DefaultConfig returns the default chart configuration.
func DefaultConfig() Config {
	return Config{
		ClassName:        "vertex__chart",
		ClassModifier:    "line",
		Margin:           UniformMargin(50),
		ActiveThirdRatio: true,
		HasAxis:          [2]bool{true, true},
		AxisDirection:    [2]Direction{Bottom, Left},
		ApplyOnAxis:      AxisX,
		Animation: Animation{
			AxisDuration: 250 * time.Millisecond,
			Delay:        100 * time.Millisecond,
			Duration:     800 * time.Millisecond,
			Easing:       EaseLinear,
		},
		Ticks:              [2]int{5, 5},
		TickSize:           [2]TickSize{Px(6), Px(-6)},
		StrokeWidth:        2,
		CurveInterpolation: CurveLinear,
	}
}

// DefaultPalette is the ColorBrewer palette used when Config.Colors
// is empty.
const DefaultPalette = "Set1"

// fallbackColors is the color cycle used if DefaultPalette is
// unavailable.
var fallbackColors = []string{"#4c72b0", "#55a868", "#c44e52", "#8172b2", "#ccb974", "#64b5cd"}

// PaletteColors returns the colors of the largest ColorBrewer palette
// called name as hex strings, or nil if there is no such palette.
func PaletteColors(name string) []string {
	sizes, ok := brewer.ByName[name]
	if !ok {
		return nil
	}
	levels := 0
	for n := range sizes {
		if n > levels {
			levels = n
		}
	}
	p := sizes[levels]
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = hexColor(c)
	}
	return out
}

func hexColor(c color.Color) string {
	const hex = "0123456789abcdef"
	r, g, b, _ := c.RGBA()
	buf := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []uint32{r >> 8, g >> 8, b >> 8} {
		buf[1+2*i] = hex[v>>4]
		buf[2+2*i] = hex[v&0xf]
	}
	return string(buf)
}

// withDefaults fills in fields whose zero value is unusable.
func (cfg Config) withDefaults() Config {
	if cfg.ID == "" {
		cfg.ID = "vertex-" + uuid.NewString()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Clock == nil {
		cfg.Clock = systemClock{}
	}
	if len(cfg.Colors) == 0 {
		cfg.Colors = PaletteColors(DefaultPalette)
	}
	if len(cfg.Colors) == 0 {
		cfg.Colors = fallbackColors
	}
	if cfg.CurveInterpolation == "" {
		cfg.CurveInterpolation = CurveLinear
	}
	if cfg.AxisDirection[0] == "" {
		cfg.AxisDirection[0] = Bottom
	}
	if cfg.AxisDirection[1] == "" {
		cfg.AxisDirection[1] = Left
	}
	if cfg.Animation.Easing == nil {
		cfg.Animation.Easing = EaseLinear
	}
	return cfg
}

func (cfg *Config) check() error {
	if !cfg.CurveInterpolation.Valid() {
		return configErrorf("mount", "unknown curve %q", cfg.CurveInterpolation)
	}
	switch cfg.AxisDirection[0] {
	case Bottom, Top:
	default:
		return configErrorf("mount", "x axis direction %q is not top or bottom", cfg.AxisDirection[0])
	}
	switch cfg.AxisDirection[1] {
	case Left, Right:
	default:
		return configErrorf("mount", "y axis direction %q is not left or right", cfg.AxisDirection[1])
	}
	switch cfg.AxisCentered {
	case CenterNone, CenterX, CenterY, CenterBoth:
	default:
		return configErrorf("mount", "unknown axis centering %q", cfg.AxisCentered)
	}
	return checkListeners(cfg.Events)
}

func (cfg *Config) geometryOptions() GeometryOptions {
	return GeometryOptions{
		Margin:           cfg.Margin,
		Dimension:        cfg.Dimension,
		ActiveThirdRatio: cfg.ActiveThirdRatio,
		Radial:           cfg.Radial,
	}
}

func (cfg *Config) styleConfig() StyleConfig {
	return StyleConfig{
		Colors:      cfg.Colors,
		StrokeWidth: cfg.StrokeWidth,
		Curve:       cfg.CurveInterpolation,
		ClipPathID:  cfg.ClipPathID,
		FilterID:    cfg.DropShadowID,
		Filter:      cfg.Filter,
	}
}

// axisOptions returns the options of axis name. The date formatter
// replaces the caller's formatter only on ApplyOnAxis, and only when
// both date layouts are set.
func (cfg *Config) axisOptions(name AxisName) AxisOptions {
	f := cfg.TickFormatter[name]
	if name == cfg.ApplyOnAxis && cfg.FormatParse != "" && cfg.FormatDate != "" {
		f = DateFormatter(cfg.FormatDate)
	}
	return AxisOptions{
		Direction: cfg.AxisDirection[name],
		TickCount: cfg.Ticks[name],
		TickSize:  cfg.TickSize[name],
		Formatter: f,
		Centered:  cfg.AxisCentered,
		Label:     cfg.AxisLabel[name],
	}
}

// showsAxis reports whether axis name is drawn.
func (cfg *Config) showsAxis(name AxisName) bool {
	return cfg.HasAxis[name] || cfg.AxisCentered.Centers(name)
}
