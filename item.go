// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradedit

import (
	"image/color"

	"cogentcore.org/core/math32"
	"cogentcore.org/gradedit/gradient"
)

// Paint is one paint slot of an [Item]: either a gradient server or,
// when Gradient is nil, a flat color.
type Paint struct {

	// Gradient is the gradient paint server, nil for flat paint.
	Gradient gradient.Server

	// Color is the flat paint color, used when Gradient is nil.
	Color color.RGBA

	// Opacity is the 0-1 opacity of the paint.
	Opacity float32
}

// Item is a drawable document item whose fill and stroke gradients
// can be edited on canvas. It is the document-side collaborator seam:
// the engine reads its transform and bounds and mutates its paints.
type Item struct {

	// Name is the document id of the item, used in knot tips
	// and state serialization.
	Name string

	// Transform maps the item's local (gradient user) space
	// to document space.
	Transform math32.Matrix2

	// Bounds is the document-space visual bounding box of the item,
	// used for snapping levels.
	Bounds math32.Box2

	// Fill and Stroke are the two independently edited paint slots.
	Fill   Paint
	Stroke Paint
}

// NewItem returns a new [Item] with the given name
// and an identity transform.
func NewItem(name string) *Item {
	return &Item{
		Name:      name,
		Transform: math32.Identity2(),
		Fill:      Paint{Color: color.RGBA{0, 0, 0, 255}, Opacity: 1},
		Stroke:    Paint{Opacity: 1},
	}
}

// Paint returns the paint slot for the given target.
func (it *Item) Paint(target PaintTargets) *Paint {
	if target == PaintFill {
		return &it.Fill
	}
	return &it.Stroke
}

// SetGradient sets the gradient server of the given paint slot.
func (it *Item) SetGradient(target PaintTargets, srv gradient.Server) {
	it.Paint(target).Gradient = srv
}
