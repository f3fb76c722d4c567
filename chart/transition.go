// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"
	"strings"
	"time"
)

// An Easing maps normalized time t in [0, 1] to animation progress.
type Easing func(t float64) float64

// Easing functions, following the d3-ease conventions. The
// polynomial, exponential, and sinusoidal easings are symmetric
// ease-in-out curves.
var (
	EaseLinear Easing = func(t float64) float64 { return t }
	EaseQuad   Easing = func(t float64) float64 {
		t *= 2
		if t <= 1 {
			return t * t / 2
		}
		t--
		return (t*(2-t) + 1) / 2
	}
	EaseCubic Easing = func(t float64) float64 {
		t *= 2
		if t <= 1 {
			return t * t * t / 2
		}
		t -= 2
		return (t*t*t + 2) / 2
	}
	EaseExp Easing = func(t float64) float64 {
		t *= 2
		if t <= 1 {
			return tpmt(1-t) / 2
		}
		return (2 - tpmt(t-1)) / 2
	}
	EaseSin Easing = func(t float64) float64 {
		return (1 - math.Cos(math.Pi*t)) / 2
	}
)

// tpmt is 2^(-10t) rescaled so that tpmt(0) = 1 and tpmt(1) = 0.
func tpmt(x float64) float64 {
	return (math.Pow(2, -10*x) - 0.0009765625) * 1.0009775171065494
}

var easings = map[string]Easing{
	"linear": EaseLinear,
	"quad":   EaseQuad,
	"cubic":  EaseCubic,
	"exp":    EaseExp,
	"sin":    EaseSin,
}

// EasingByName returns the easing called name ("linear", "quad",
// "cubic", "exp", or "sin"), ignoring case.
func EasingByName(name string) (Easing, bool) {
	e, ok := easings[strings.ToLower(name)]
	return e, ok
}

// A Clock reports the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// A Transition interpolates one numeric attribute of one node.
type Transition struct {
	Node, Attr string

	From, To []float64

	// Format renders interpolated values as the attribute value.
	// The default formats a single number.
	Format func(v []float64) string

	Delay, Duration time.Duration
	Ease            Easing

	// OnEnd runs when the transition completes and returns any
	// final operations. It does not run if the transition is
	// superseded or canceled.
	OnEnd func() []Op

	start time.Time
	cur   []float64 // last drawn value
}

type transitionKey struct {
	node, attr string
}

// An Animator runs transitions on frames driven by the host. At most
// one transition is active per (node, attribute): starting a new one
// supersedes the old one, whose OnEnd never runs.
type Animator struct {
	clock  Clock
	active []*Transition
	byKey  map[transitionKey]*Transition
}

// NewAnimator returns an Animator that timestamps transitions with
// clock.
func NewAnimator(clock Clock) *Animator {
	if clock == nil {
		clock = systemClock{}
	}
	return &Animator{clock: clock, byKey: make(map[transitionKey]*Transition)}
}

// Start begins tr now.
func (a *Animator) Start(tr Transition) {
	if tr.Ease == nil {
		tr.Ease = EaseLinear
	}
	if tr.Format == nil {
		tr.Format = func(v []float64) string { return formatNum(v[0]) }
	}
	tr.start = a.clock.Now()
	k := transitionKey{tr.Node, tr.Attr}
	if old := a.byKey[k]; old != nil {
		a.drop(old)
	}
	t := &tr
	a.byKey[k] = t
	a.active = append(a.active, t)
}

func (a *Animator) drop(t *Transition) {
	for i, x := range a.active {
		if x == t {
			a.active = append(a.active[:i], a.active[i+1:]...)
			break
		}
	}
	delete(a.byKey, transitionKey{t.Node, t.Attr})
}

// Cancel stops all transitions on node without completing them.
func (a *Animator) Cancel(node string) {
	keep := a.active[:0]
	for _, t := range a.active {
		if t.Node == node {
			delete(a.byKey, transitionKey{t.Node, t.Attr})
			continue
		}
		keep = append(keep, t)
	}
	a.active = keep
}

// Current returns the value last drawn by the active transition on
// (node, attr), or its start value if no frame was drawn yet.
func (a *Animator) Current(node, attr string) ([]float64, bool) {
	t := a.byKey[transitionKey{node, attr}]
	if t == nil {
		return nil, false
	}
	if t.cur != nil {
		return t.cur, true
	}
	return t.From, true
}

// Pending returns the number of active transitions.
func (a *Animator) Pending() int { return len(a.active) }

// Step advances all transitions to time now and returns the
// resulting attribute operations, followed by the completion
// operations of transitions that finished.
func (a *Animator) Step(now time.Time) []Op {
	var ops, ends []Op
	var done []*Transition
	for _, t := range a.active {
		elapsed := now.Sub(t.start) - t.Delay
		if elapsed < 0 {
			continue
		}
		p := 1.0
		if t.Duration > 0 && elapsed < t.Duration {
			p = float64(elapsed) / float64(t.Duration)
		}
		ops = append(ops, t.frame(t.Ease(p)))
		if p >= 1 {
			done = append(done, t)
		}
	}
	for _, t := range done {
		a.drop(t)
		if t.OnEnd != nil {
			ends = append(ends, t.OnEnd()...)
		}
	}
	return append(ops, ends...)
}

// Flush completes every active transition immediately.
func (a *Animator) Flush() []Op {
	var ops []Op
	// Completions may start new transitions.
	for i := 0; len(a.active) > 0 && i < 100; i++ {
		active := append([]*Transition(nil), a.active...)
		for _, t := range active {
			ops = append(ops, t.frame(1))
		}
		for _, t := range active {
			if a.byKey[transitionKey{t.Node, t.Attr}] != t {
				continue
			}
			a.drop(t)
			if t.OnEnd != nil {
				ops = append(ops, t.OnEnd()...)
			}
		}
	}
	return ops
}

func (t *Transition) frame(p float64) Op {
	v := make([]float64, len(t.To))
	for i := range v {
		v[i] = t.From[i] + (t.To[i]-t.From[i])*p
	}
	t.cur = v
	return Op{Kind: OpSet, ID: t.Node, Attrs: Attrs{t.Attr: t.Format(v)}}
}
