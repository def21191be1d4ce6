// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradedit

//go:generate core generate

// PointRoles identify what a gradient control coordinate means.
// Each role implies a geometric meaning, a knot shape, and a
// dependency-propagation rule.
type PointRoles int32 //enums:enum

const (
	// LinearBegin is the starting point of a linear gradient.
	LinearBegin PointRoles = iota

	// LinearEnd is the ending point of a linear gradient.
	LinearEnd

	// LinearMid is an intermediate stop of a linear gradient,
	// constrained to the begin-end segment.
	LinearMid

	// RadialCenter is the center point of a radial gradient.
	RadialCenter

	// RadialR1 is the horizontal-axis radius handle of a radial gradient.
	RadialR1

	// RadialR2 is the vertical-axis radius handle of a radial gradient.
	RadialR2

	// RadialFocus is the focal point of a radial gradient.
	RadialFocus

	// RadialMid1 is an intermediate stop on the center-R1 segment.
	RadialMid1

	// RadialMid2 is an intermediate stop on the center-R2 segment.
	RadialMid2

	// MeshCorner is a corner node of a mesh gradient patch grid.
	MeshCorner

	// MeshHandle is a Bezier edge control node of a mesh gradient.
	MeshHandle

	// MeshTensor is an interior twist control node of a mesh gradient.
	MeshTensor
)

// IsMid returns whether the role is an intermediate stop role.
// Mid stops never merge with other draggables and have no dependents
// other than their mirror on the paired radial axis.
func (r PointRoles) IsMid() bool {
	return r == LinearMid || r == RadialMid1 || r == RadialMid2
}

// IsMesh returns whether the role belongs to a mesh gradient node.
func (r PointRoles) IsMesh() bool {
	return r >= MeshCorner
}

// Selectable returns whether draggers for this role may enter the user
// selection set. Mesh handle and tensor draggers are never selectable.
func (r PointRoles) Selectable() bool {
	return r != MeshHandle && r != MeshTensor
}

// PaintTargets select which paint slot of an item a gradient binds to.
// Gradients are edited independently per target.
type PaintTargets int32 //enums:enum -trim-prefix Paint

const (
	// PaintFill is the fill paint of an item.
	PaintFill PaintTargets = iota

	// PaintStroke is the stroke paint of an item.
	PaintStroke
)

// KnotShapes are the visual shapes a dragger knot can take,
// driven by the role of its most recently added draggable.
type KnotShapes int32 //enums:enum -trim-prefix Knot

const (
	KnotSquare KnotShapes = iota
	KnotCircle
	KnotDiamond
	KnotCross
	KnotTriangle
)

// roleShapes maps each point role to its knot shape.
var roleShapes = [PointRolesN]KnotShapes{
	LinearBegin:  KnotSquare,
	LinearEnd:    KnotCircle,
	LinearMid:    KnotDiamond,
	RadialCenter: KnotSquare,
	RadialR1:     KnotCircle,
	RadialR2:     KnotCircle,
	RadialFocus:  KnotCross,
	RadialMid1:   KnotDiamond,
	RadialMid2:   KnotDiamond,
	MeshCorner:   KnotDiamond,
	MeshHandle:   KnotCircle,
	MeshTensor:   KnotTriangle,
}

// roleDescriptions are the human-readable names used in knot tips.
var roleDescriptions = [PointRolesN]string{
	LinearBegin:  "linear gradient start",
	LinearEnd:    "linear gradient end",
	LinearMid:    "linear gradient mid stop",
	RadialCenter: "radial gradient center",
	RadialR1:     "radial gradient radius",
	RadialR2:     "radial gradient radius",
	RadialFocus:  "radial gradient focus",
	RadialMid1:   "radial gradient mid stop",
	RadialMid2:   "radial gradient mid stop",
	MeshCorner:   "mesh gradient corner",
	MeshHandle:   "mesh gradient handle",
	MeshTensor:   "mesh gradient tensor",
}
