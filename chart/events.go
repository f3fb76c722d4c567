// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

// A NativeEvent is the host's event object.
type NativeEvent interface {
	PreventDefault()
}

// Event is passed to a Listener's Action.
type Event struct {
	Type string
	// Datum is the series of the element the event targets.
	Datum Series
	// Index is the element's paint order position.
	Index int
	// Elements are all series elements of the chart.
	Elements []*Element
	Chart    *LineChart
	Native   NativeEvent
}

// A Listener runs Action for events of Type on series paths.
type Listener struct {
	Type   string
	Action func(Event)
}

// Dispatch delivers an event of type typ targeting the path of series
// key. The native event's default is prevented before any listener
// runs. Dispatch reports whether any listener ran; hidden series do
// not receive events.
func (c *LineChart) Dispatch(typ, key string, native NativeEvent) bool {
	e := c.lines.Element(key)
	if e == nil || e.Style.Hidden {
		return false
	}
	ran := false
	for _, l := range c.cfg.Events {
		if l.Type != typ {
			continue
		}
		if !ran && native != nil {
			native.PreventDefault()
		}
		ran = true
		l.Action(Event{
			Type:     typ,
			Datum:    e.Series,
			Index:    e.Index,
			Elements: c.lines.Elements(),
			Chart:    c,
			Native:   native,
		})
	}
	return ran
}

// HitRegions returns the elements that can receive events, in paint
// order.
func (c *LineChart) HitRegions() []*Element {
	var out []*Element
	for _, e := range c.lines.Elements() {
		if !e.Style.Hidden {
			out = append(out, e)
		}
	}
	return out
}

func checkListeners(ls []Listener) error {
	for i, l := range ls {
		if l.Type == "" {
			return configErrorf("mount", "event listener %d has no type", i)
		}
		if l.Action == nil {
			return configErrorf("mount", "event listener %d (%s) has no action", i, l.Type)
		}
	}
	return nil
}
