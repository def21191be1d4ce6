// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradedit

import (
	"cogentcore.org/gradedit/gradient"
	"cogentcore.org/gradedit/undo"
)

// View is the per-view ambient state the engine operates in: the item
// selection, user settings, snapping service, undo stack, and viewport
// parameters. It also remembers the identity of the last selected
// gradient point, so that re-entering gradient editing on the same view
// can restore the prior selection.
type View struct {

	// Selection is the current item selection.
	Selection *Selection

	// Settings are the user preferences.
	Settings *Settings

	// Snapper is the snapping service; nil disables snapping.
	Snapper Snapper

	// Undo is the gradient-edit undo stack.
	Undo *undo.Stack

	// Gradients is the named gradient registry of the document,
	// for resolving url(#id) paint references.
	Gradients map[string]gradient.Server

	// Zoom is the screen pixels per document unit scale factor.
	Zoom float32

	// Rotation is the canvas rotation in radians.
	Rotation float32

	// YAxisDown is whether document y grows downward on screen,
	// inverting the vertical direction of keyboard nudges.
	YAxisDown bool

	// GrItem, GrRole, GrIndex, and GrTarget identify the gradient
	// point that was selected when gradient editing last ended.
	GrItem   *Item
	GrRole   PointRoles
	GrIndex  int
	GrTarget PaintTargets
}

// NewView returns a new [View] with default settings, an empty
// selection, and an undo stack primed with an empty state.
func NewView() *View {
	v := &View{
		Selection: NewSelection(),
		Settings:  &Settings{},
		Undo:      &undo.Stack{},
		Gradients: map[string]gradient.Server{},
		Zoom:      1,
		YAxisDown: true,
		GrIndex:   -1,
	}
	v.Settings.Defaults()
	v.Undo.Reset(nil)
	return v
}

// SaveGradientPoint records the identity of the given gradient point
// as the one to restore when editing resumes.
func (v *View) SaveGradientPoint(it *Item, role PointRoles, index int, target PaintTargets) {
	v.GrItem = it
	v.GrRole = role
	v.GrIndex = index
	v.GrTarget = target
}

// ClearGradientPoint forgets the saved gradient point.
func (v *View) ClearGradientPoint() {
	v.GrItem = nil
	v.GrIndex = -1
}
