// Package mediatest provides in-memory media collaborators for tests.
package mediatest

import (
	"fmt"
	"image/color"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/mars-mission/mars/internal/media"
)

// FixedMetrics measures every rune as Advance pixels wide.
type FixedMetrics struct {
	Advance float64
}

func (m FixedMetrics) TextWidth(_ media.Face, _ float64, s string) float64 {
	return m.Advance * float64(utf8.RuneCountInString(s))
}

// Play is one recorded Audio.Play call.
type Play struct {
	Sound  media.Sound
	Volume float64
}

// Audio records every Play call.
type Audio struct {
	Plays []Play
}

func (a *Audio) Play(s media.Sound, volume float64) {
	a.Plays = append(a.Plays, Play{Sound: s, Volume: volume})
}

// Count returns how many times s was played.
func (a *Audio) Count(s media.Sound) int {
	n := 0
	for _, p := range a.Plays {
		if p.Sound == s {
			n++
		}
	}
	return n
}

// IDStrings returns the message ID itself, followed by any template data
// in key order, e.g. "budget[Budget=750.0]".
type IDStrings struct{}

func (IDStrings) Text(id string, data map[string]any) string {
	if len(data) == 0 {
		return id
	}
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, data[k]))
	}
	return id + "[" + strings.Join(parts, ",") + "]"
}

// TextCall is one recorded Canvas.Text call.
type TextCall struct {
	Face  media.Face
	Size  float64
	Text  string
	X, Y  float64
	Color color.Color
}

// ImageCall is one recorded Canvas.Image call.
type ImageCall struct {
	ID        media.ImageID
	Transform media.Transform
}

// Canvas records drawing calls against a fixed viewport.
type Canvas struct {
	W, H   float64
	Clears []color.Color
	Texts  []TextCall
	Images []ImageCall
}

// NewCanvas returns a recording canvas of the given size.
func NewCanvas(w, h float64) *Canvas {
	return &Canvas{W: w, H: h}
}

func (c *Canvas) Size() (float64, float64) { return c.W, c.H }

func (c *Canvas) Clear(clr color.Color) { c.Clears = append(c.Clears, clr) }

func (c *Canvas) Text(face media.Face, size float64, s string, x, y float64, clr color.Color) {
	c.Texts = append(c.Texts, TextCall{Face: face, Size: size, Text: s, X: x, Y: y, Color: clr})
}

func (c *Canvas) Image(id media.ImageID, t media.Transform) {
	c.Images = append(c.Images, ImageCall{ID: id, Transform: t})
}

// FindText returns the first text call drawing s.
func (c *Canvas) FindText(s string) (TextCall, bool) {
	for _, t := range c.Texts {
		if t.Text == s {
			return t, true
		}
	}
	return TextCall{}, false
}
