// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestEasings(t *testing.T) {
	for name, e := range easings {
		assert.InDelta(t, 0, e(0), 1e-9, name)
		assert.InDelta(t, 1, e(1), 1e-9, name)
		assert.InDelta(t, 0.5, e(0.5), 1e-9, name)
		for x := 0.0; x < 1; x += 0.05 {
			assert.LessOrEqual(t, e(x), e(x+0.05)+1e-12, "%s not monotonic at %v", name, x)
		}
	}
	e, ok := EasingByName("Cubic")
	require.True(t, ok)
	assert.InDelta(t, 0.0625, e(0.25), 1e-9)
	_, ok = EasingByName("bounce")
	assert.False(t, ok)
}

func TestAnimatorStep(t *testing.T) {
	clock := &fakeClock{t0}
	a := NewAnimator(clock)
	ended := false
	a.Start(Transition{
		Node: "n", Attr: "x",
		From: []float64{0}, To: []float64{100},
		Delay: 100 * time.Millisecond, Duration: 400 * time.Millisecond,
		OnEnd: func() []Op {
			ended = true
			return []Op{{Kind: OpSet, ID: "n", Attrs: Attrs{"done": "yes"}}}
		},
	})

	assert.Empty(t, a.Step(t0.Add(50*time.Millisecond)))
	ops := a.Step(t0.Add(300 * time.Millisecond))
	require.Len(t, ops, 1)
	assert.Equal(t, "50", ops[0].Attrs["x"])
	assert.False(t, ended)

	ops = a.Step(t0.Add(time.Second))
	require.Len(t, ops, 2)
	assert.Equal(t, "100", ops[0].Attrs["x"])
	assert.Equal(t, "yes", ops[1].Attrs["done"])
	assert.True(t, ended)
	assert.Equal(t, 0, a.Pending())
}

func TestAnimatorSupersede(t *testing.T) {
	a := NewAnimator(&fakeClock{t0})
	var ends []string
	start := func(tag string, to float64) {
		a.Start(Transition{
			Node: "n", Attr: "x",
			From: []float64{0}, To: []float64{to},
			Duration: time.Second,
			OnEnd:    func() []Op { ends = append(ends, tag); return nil },
		})
	}
	start("first", 10)
	start("second", 20)
	a.Start(Transition{Node: "n", Attr: "y", From: []float64{0}, To: []float64{1}})
	assert.Equal(t, 2, a.Pending())

	ops := a.Flush()
	assert.Equal(t, []string{"second"}, ends)
	var xs []string
	for _, op := range ops {
		if v, ok := op.Attrs["x"]; ok {
			xs = append(xs, v)
		}
	}
	assert.Equal(t, []string{"20"}, xs)
	assert.Equal(t, 0, a.Pending())
}

func TestAnimatorCurrent(t *testing.T) {
	a := NewAnimator(&fakeClock{t0})
	_, ok := a.Current("n", "x")
	assert.False(t, ok)

	a.Start(Transition{Node: "n", Attr: "x", From: []float64{10}, To: []float64{20}, Duration: time.Second})
	v, ok := a.Current("n", "x")
	require.True(t, ok)
	assert.Equal(t, []float64{10}, v)

	a.Step(t0.Add(500 * time.Millisecond))
	v, _ = a.Current("n", "x")
	assert.Equal(t, []float64{15}, v)

	a.Flush()
	_, ok = a.Current("n", "x")
	assert.False(t, ok)
}

func TestAnimatorCancel(t *testing.T) {
	a := NewAnimator(&fakeClock{t0})
	ran := false
	a.Start(Transition{Node: "n", Attr: "x", From: []float64{0}, To: []float64{1},
		OnEnd: func() []Op { ran = true; return nil }})
	a.Start(Transition{Node: "m", Attr: "x", From: []float64{0}, To: []float64{1}})
	a.Cancel("n")
	assert.Equal(t, 1, a.Pending())
	ops := a.Flush()
	require.Len(t, ops, 1)
	assert.Equal(t, "m", ops[0].ID)
	assert.False(t, ran)
}

func TestRevealAnimation(t *testing.T) {
	clock := &fakeClock{t0}
	cfg := testConfig()
	cfg.HasAnimation = true
	cfg.Clock = clock
	c, r := mount(t, Size{800, 450}, []Series{series("A", 1, 2), series("B", 2, 3)}, cfg)

	a := r.nodes[c.lines.Element("A").Node()]
	b := r.nodes[c.lines.Element("B").Node()]
	assert.Equal(t, "2000", a.attrs["stroke-dasharray"])
	assert.Equal(t, "2000", a.attrs["stroke-dashoffset"])
	assert.True(t, c.Animating())

	require.NoError(t, c.Step(t0.Add(400*time.Millisecond)))
	assert.Equal(t, "1000", a.attrs["stroke-dashoffset"])
	assert.Equal(t, "1250", b.attrs["stroke-dashoffset"])

	require.NoError(t, c.Step(t0.Add(2*time.Second)))
	assert.Equal(t, "0", a.attrs["stroke-dashoffset"])
	assert.Equal(t, "0", a.attrs["stroke-dasharray"])
	assert.Equal(t, "0", b.attrs["stroke-dasharray"])
	assert.False(t, c.Animating())
}

func TestSupersededRevealIsNoop(t *testing.T) {
	clock := &fakeClock{t0}
	cfg := testConfig()
	cfg.HasAnimation = true
	cfg.Clock = clock
	dashed := series("A", 1, 2)
	dashed.DashArray = &[2]float64{5, 5}
	c, r := mount(t, Size{800, 450}, []Series{dashed}, cfg)
	node := c.lines.Element("A").Node()

	require.NoError(t, c.Step(t0.Add(400*time.Millisecond)))
	clock.now = t0.Add(400 * time.Millisecond)
	n := len(r.batches)
	require.NoError(t, c.UpdateData([]Series{series("A", 3, 1)}))

	// The first reveal would have ended at 800ms.
	require.NoError(t, c.Step(t0.Add(900*time.Millisecond)))
	require.NoError(t, c.Step(t0.Add(3*time.Second)))
	for _, op := range r.opsSince(n) {
		if op.ID == node {
			assert.NotEqual(t, "5, 5", op.Attrs["stroke-dasharray"])
		}
	}
	assert.Equal(t, "0", r.nodes[node].attrs["stroke-dasharray"])
}

func TestRevealGeneration(t *testing.T) {
	anim := NewAnimator(&fakeClock{t0})
	r := NewSeriesReconciler("g", anim, testConfig().withDefaults().Logger)
	data := []Series{series("a", 1, 2)}
	coords := [][]Coord{{{0, 1}, {1, 2}}}
	src := ShapeSource{Scales: identity}

	var b batch
	_, err := r.Reconcile(&b, data, coords, StyleConfig{}, src)
	require.NoError(t, err)
	r.Reveal(&b, 0, time.Second, nil)

	// A later pass that does not animate makes the pending
	// completion stale.
	_, err = r.Reconcile(&b, data, coords, StyleConfig{}, src)
	require.NoError(t, err)
	for _, op := range anim.Flush() {
		assert.NotContains(t, op.Attrs, "stroke-dasharray")
	}
}
