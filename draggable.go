// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradedit

import "cogentcore.org/gradedit/gradient"

// Draggable binds one gradient parameter on one item: the point role,
// the stop or node index it applies to, and the paint target whose
// gradient it lives on. Draggables are immutable after construction;
// all writes route through the owning [Dragger] via [SetGradientCoords].
type Draggable struct {

	// Item is the item whose gradient the parameter belongs to.
	Item *Item

	// Role is the geometric meaning of the parameter.
	Role PointRoles

	// Index selects among repeated roles: the stop index for linear and
	// radial roles, the per-kind node array index for mesh roles.
	Index int

	// Target is the paint slot the gradient is attached to.
	Target PaintTargets
}

// NewDraggable returns a new [Draggable] for the given binding.
func NewDraggable(it *Item, role PointRoles, index int, target PaintTargets) *Draggable {
	return &Draggable{Item: it, Role: role, Index: index, Target: target}
}

// Server resolves the gradient server this draggable binds into,
// which may be nil if the paint has changed under it.
func (d *Draggable) Server() gradient.Server {
	return d.Item.Paint(d.Target).Gradient
}

// MayMerge returns whether this draggable may share a dragger with o.
// Draggables of the same gradient never merge with each other, except
// for a radial center and focus pair; mid stops never merge at all.
func (d *Draggable) MayMerge(o *Draggable) bool {
	if d.Item == o.Item && d.Target == o.Target {
		cf := (d.Role == RadialFocus && o.Role == RadialCenter) ||
			(d.Role == RadialCenter && o.Role == RadialFocus)
		if !cf {
			return false
		}
	}
	if d.Role.IsMid() || o.Role.IsMid() {
		return false
	}
	return true
}

// Matches returns whether this draggable binds the given parameter.
// An index of -1 matches any index.
func (d *Draggable) Matches(it *Item, role PointRoles, index int, target PaintTargets) bool {
	return d.Item == it && d.Role == role && d.Target == target &&
		(index == -1 || d.Index == index)
}
