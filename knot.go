// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradedit

import "cogentcore.org/core/math32"

// Knot is the visual state of one dragger control point. The engine
// maintains it; a canvas overlay renders it. Rendering is external,
// so the knot carries only state, no drawing.
type Knot struct {

	// Shape is the visual shape, driven by the role of the dragger's
	// most recently added draggable.
	Shape KnotShapes

	// Pos is the document-space position.
	Pos math32.Vector2

	// Angle is the rotation of the shape in radians, used for mesh
	// handle knots pointing at their corner.
	Angle float32

	// Tip is the hover tooltip text.
	Tip string

	// Visible, Selected, Highlighted, and MouseOver are display flags.
	Visible     bool
	Selected    bool
	Highlighted bool
	MouseOver   bool
}

// NewKnot returns a new visible [Knot] at the given position.
func NewKnot(shape KnotShapes, pos math32.Vector2) *Knot {
	return &Knot{Shape: shape, Pos: pos, Visible: true}
}

// Move sets the knot position.
func (k *Knot) Move(p math32.Vector2) {
	k.Pos = p
}

// Show makes the knot visible.
func (k *Knot) Show() {
	k.Visible = true
}

// Hide hides the knot and clears its transient display flags.
func (k *Knot) Hide() {
	k.Visible = false
	k.Highlighted = false
	k.MouseOver = false
}
