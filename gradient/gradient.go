// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gradient provides editable linear, radial, and mesh gradient
// paint servers, with the raw geometric parameters and ordered color stop
// vectors (or mesh node arrays) that on-canvas editing operates on.
package gradient

//go:generate core generate

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// Server is the interface that all gradient paint servers satisfy.
// The set of implementations is closed: [Linear], [Radial], and [Mesh].
// Code that needs kind-specific behavior switches on the concrete type.
type Server interface {

	// AsBase returns the [Base] of the gradient server.
	AsBase() *Base
}

// Base contains the data and logic common to all gradient server types.
type Base struct {

	// Stops are the ordered color stops for the gradient;
	// use [Base.AddStop] to add stops.
	Stops []Stop

	// Spread is the spread method used for the gradient
	// if it stops before the end.
	Spread Spreads

	// Units are the units to use for the gradient coordinate values.
	Units Units

	// Transform is the gradient's own transformation matrix,
	// applied to the gradient's points in gradient space.
	Transform math32.Matrix2

	// Opacity is the overall object opacity multiplier.
	Opacity float32
}

// NewBase returns a new [Base] with default field values.
func NewBase() Base {
	return Base{
		Units:     UserSpaceOnUse,
		Transform: math32.Identity2(),
		Opacity:   1,
	}
}

// Stop represents a single stop in a gradient.
type Stop struct {

	// Color is the fully opaque color of the stop,
	// with opacity specified separately, as in SVG.
	Color color.RGBA

	// Opacity is the 0-1 level of opacity for this stop.
	Opacity float32

	// Pos is the position of the stop between 0 and 1.
	Pos float32
}

// OpacityColor returns the stop color with its opacity applied,
// along with a global opacity multiplier.
func (st *Stop) OpacityColor(opacity float32) color.Color {
	return applyOpacity(st.Color, st.Opacity*opacity)
}

func applyOpacity(c color.RGBA, op float32) color.RGBA {
	a := float32(c.A) / 255 * op
	return color.RGBA{c.R, c.G, c.B, uint8(math32.Round(a * 255))}
}

// Spreads are the spread methods used when a gradient reaches
// its end but the object isn't yet fully filled.
type Spreads int32 //enums:enum -transform lower

const (
	// Pad indicates to have the final color of the gradient fill
	// the object beyond the end of the gradient.
	Pad Spreads = iota

	// Reflect indicates to have a gradient repeat in reverse order
	// (offset 1 to 0) to fully fill an object beyond the end of the gradient.
	Reflect

	// Repeat indicates to have a gradient continue in its original order
	// (offset 0 to 1) by jumping back to the start to fully fill an object
	// beyond the end of the gradient.
	Repeat
)

// Units are the types of units used for gradient coordinate values.
type Units int32 //enums:enum -transform camel-lower

const (
	// ObjectBoundingBox indicates that coordinate values are scaled
	// relative to the size of the object and are specified in the
	// normalized range of 0 to 1.
	ObjectBoundingBox Units = iota

	// UserSpaceOnUse indicates that coordinate values are specified
	// in the current user coordinate system when the gradient is used.
	UserSpaceOnUse
)

// AddStop adds a new stop with the given color, position, and
// optional opacity to the gradient.
func (b *Base) AddStop(color color.RGBA, pos float32, opacity ...float32) {
	op := float32(1)
	if len(opacity) > 0 {
		op = opacity[0]
	}
	b.Stops = append(b.Stops, Stop{Color: color, Opacity: op, Pos: pos})
}

// IsSolid returns whether the gradient has fewer than 2 stops and is
// therefore treated as a solid paint rather than an editable gradient.
func (b *Base) IsSolid() bool {
	return len(b.Stops) < 2
}

// EnsureStops makes sure that the gradient has at least 2 stops,
// adding default black and white endpoint stops as needed.
func (b *Base) EnsureStops() {
	switch len(b.Stops) {
	case 0:
		b.AddStop(color.RGBA{0, 0, 0, 255}, 0)
		b.AddStop(color.RGBA{255, 255, 255, 255}, 1)
	case 1:
		st := b.Stops[0]
		st.Pos = 1
		b.Stops = append(b.Stops, st)
		b.Stops[0].Pos = 0
	}
}

// InsertStopAt inserts a new stop at the given offset, with color and
// opacity interpolated between the two straddling stops, returning the
// index of the new stop. It returns -1 if the gradient has fewer than
// 2 stops, or if no stop with a greater offset exists (the offset is at
// or beyond the final stop, so there is no straddling pair).
func (b *Base) InsertStopAt(offset float32) int {
	if len(b.Stops) < 2 {
		return -1
	}
	prev := 0
	for prev+1 < len(b.Stops) && b.Stops[prev+1].Pos < offset {
		prev++
	}
	if prev+1 >= len(b.Stops) {
		return -1
	}
	lo, hi := b.Stops[prev], b.Stops[prev+1]
	t := float32(0.5)
	if hi.Pos > lo.Pos {
		t = (offset - lo.Pos) / (hi.Pos - lo.Pos)
	}
	ns := Stop{
		Color:   lerpColor(lo.Color, hi.Color, t),
		Opacity: math32.Lerp(lo.Opacity, hi.Opacity, t),
		Pos:     offset,
	}
	i := prev + 1
	b.Stops = append(b.Stops, Stop{})
	copy(b.Stops[i+1:], b.Stops[i:])
	b.Stops[i] = ns
	return i
}

// RemoveStop removes the stop at the given index,
// returning false if the index is out of range.
func (b *Base) RemoveStop(i int) bool {
	if i < 0 || i >= len(b.Stops) {
		return false
	}
	b.Stops = append(b.Stops[:i], b.Stops[i+1:]...)
	return true
}

// ReverseStops reverses the order of the color stops in place,
// mapping each offset o to 1-o, so that the gradient runs in the
// opposite direction with identical on-canvas stop positions.
func (b *Base) ReverseStops() {
	n := len(b.Stops)
	for i := 0; i < n/2; i++ {
		b.Stops[i], b.Stops[n-1-i] = b.Stops[n-1-i], b.Stops[i]
	}
	for i := range b.Stops {
		b.Stops[i].Pos = 1 - b.Stops[i].Pos
	}
}

func lerpColor(a, b color.RGBA, t float32) color.RGBA {
	l := func(x, y uint8) uint8 {
		return uint8(math32.Round(math32.Lerp(float32(x), float32(y), t)))
	}
	return color.RGBA{l(a.R, b.R), l(a.G, b.G), l(a.B, b.B), l(a.A, b.A)}
}
