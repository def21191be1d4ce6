// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradedit

import (
	"fmt"

	"cogentcore.org/core/math32"
	"cogentcore.org/gradedit/gradient"
)

// Dragger is one on-screen control point, aggregating one or more
// [Draggable] parameters that currently resolve to coincident document
// positions. All the draggables of a dragger move together; dependency
// propagation keeps sibling draggers consistent after a move.
type Dragger struct {

	// Drag is the owning controller.
	Drag *Drag

	// Point is the current document-space position.
	Point math32.Vector2

	// PointOriginal is the position at grab time, used as the
	// reference for Alt angle snapping.
	PointOriginal math32.Vector2

	// Draggables are the aggregated parameters, most recently
	// added first.
	Draggables []*Draggable

	// Knot is the visual state of the control point.
	Knot *Knot
}

// NewDragger returns a new dragger for the given draggable, placed at
// the draggable's current document position.
func NewDragger(dr *Drag, d *Draggable) *Dragger {
	p, _ := GradientCoords(d.Item, d.Role, d.Index, d.Target)
	dg := &Dragger{
		Drag:          dr,
		Point:         p,
		PointOriginal: p,
		Knot:          NewKnot(roleShapes[d.Role], p),
	}
	dg.AddDraggable(d)
	return dg
}

// AddDraggable prepends d to the draggable list without changing the
// dragger's position; the caller must have verified coincidence.
// The knot shape and tip follow the most recently added draggable.
func (dg *Dragger) AddDraggable(d *Draggable) {
	dg.Draggables = append([]*Draggable{d}, dg.Draggables...)
	dg.UpdateKnotShape()
	dg.UpdateTip()
}

// UpdateKnotShape sets the knot shape from the most recently
// added draggable.
func (dg *Dragger) UpdateKnotShape() {
	if len(dg.Draggables) == 0 {
		return
	}
	dg.Knot.Shape = roleShapes[dg.Draggables[0].Role]
}

// UpdateTip sets the knot tip text from the draggable list.
func (dg *Dragger) UpdateTip() {
	switch {
	case len(dg.Draggables) == 1:
		d := dg.Draggables[0]
		dg.Knot.Tip = fmt.Sprintf("%s of %s", roleDescriptions[d.Role], d.Item.Name)
	case len(dg.Draggables) > 1:
		dg.Knot.Tip = fmt.Sprintf("shared endpoint of %d gradients; drag with Shift to separate", len(dg.Draggables))
	default:
		dg.Knot.Tip = ""
	}
}

// IsRole returns whether any draggable has the given role.
func (dg *Dragger) IsRole(role PointRoles) bool {
	for _, d := range dg.Draggables {
		if d.Role == role {
			return true
		}
	}
	return false
}

// IsMid returns whether any draggable is a mid stop. Mid stops never
// merge with other roles, so this means all of them are.
func (dg *Dragger) IsMid() bool {
	for _, d := range dg.Draggables {
		if d.Role.IsMid() {
			return true
		}
	}
	return false
}

// Selectable returns whether the dragger may enter the selection set.
func (dg *Dragger) Selectable() bool {
	for _, d := range dg.Draggables {
		if !d.Role.Selectable() {
			return false
		}
	}
	return len(dg.Draggables) > 0
}

// Has returns whether the dragger holds a draggable binding the given
// parameter; index -1 matches any index.
func (dg *Dragger) Has(it *Item, role PointRoles, index int, target PaintTargets) *Draggable {
	for _, d := range dg.Draggables {
		if d.Matches(it, role, index, target) {
			return d
		}
	}
	return nil
}

// MayMergeDraggable returns whether every owned draggable is
// merge-compatible with d.
func (dg *Dragger) MayMergeDraggable(d *Draggable) bool {
	for _, od := range dg.Draggables {
		if !od.MayMerge(d) {
			return false
		}
	}
	return true
}

// MayMerge returns whether every pairwise draggable combination between
// the two draggers is merge-compatible.
func (dg *Dragger) MayMerge(o *Dragger) bool {
	for _, d := range o.Draggables {
		if !dg.MayMergeDraggable(d) {
			return false
		}
	}
	return true
}

// FireDraggables writes the dragger's current position through to every
// owned draggable. A radial focus draggable is skipped when the same
// dragger also holds the matching center (the focus stays snapped to
// the center it merged with), unless mergingFocus marks this as the
// first post-merge update. With writeBack, the move is committed as a
// document modification; otherwise it is pending visual state.
func (dg *Dragger) FireDraggables(writeBack, scaleRadial, mergingFocus bool) {
	for _, d := range dg.Draggables {
		if d.Role == RadialFocus && !mergingFocus &&
			dg.Has(d.Item, RadialCenter, -1, d.Target) != nil {
			continue
		}
		SetGradientCoords(d.Item, d.Role, d.Index, d.Target, dg.Point, scaleRadial)
	}
	if writeBack {
		dg.Drag.WriteBack()
	}
}

// UpdateDependencies repositions the draggers whose positions depend on
// this one, per role: a moved center carries both radii and the focus;
// a moved radius carries the other radius and the focus; linear
// endpoints re-sync any other dragger holding the same parameter (for
// multi-item shared draggers); paired radial mid stops mirror each
// other; focus and mesh roles have no dependents. Mid stop draggers of
// the affected gradient are refreshed after any endpoint move. The
// role table is acyclic, so propagation terminates in at most two hops.
func (dg *Dragger) UpdateDependencies(writeBack bool) {
	for _, d := range dg.Draggables {
		switch d.Role {
		case LinearBegin, LinearEnd:
			dg.Drag.MoveOtherToDraggable(dg, d.Item, d.Role, d.Index, d.Target, writeBack)
			dg.UpdateMidstopDependencies(d, writeBack)
		case RadialR1:
			dg.Drag.MoveOtherToDraggable(dg, d.Item, RadialR2, -1, d.Target, writeBack)
			dg.Drag.MoveOtherToDraggable(dg, d.Item, RadialFocus, -1, d.Target, writeBack)
			dg.UpdateMidstopDependencies(d, writeBack)
		case RadialR2:
			dg.Drag.MoveOtherToDraggable(dg, d.Item, RadialR1, -1, d.Target, writeBack)
			dg.Drag.MoveOtherToDraggable(dg, d.Item, RadialFocus, -1, d.Target, writeBack)
			dg.UpdateMidstopDependencies(d, writeBack)
		case RadialCenter:
			dg.Drag.MoveOtherToDraggable(dg, d.Item, RadialR1, -1, d.Target, writeBack)
			dg.Drag.MoveOtherToDraggable(dg, d.Item, RadialR2, -1, d.Target, writeBack)
			dg.Drag.MoveOtherToDraggable(dg, d.Item, RadialFocus, -1, d.Target, writeBack)
			dg.UpdateMidstopDependencies(d, writeBack)
		case RadialMid1:
			dg.Drag.MoveOtherToDraggable(dg, d.Item, RadialMid2, d.Index, d.Target, writeBack)
		case RadialMid2:
			dg.Drag.MoveOtherToDraggable(dg, d.Item, RadialMid1, d.Index, d.Target, writeBack)
		}
	}
}

// UpdateMidstopDependencies refreshes the positions of all mid stop
// draggers of the gradient d binds into, after its frame moved.
func (dg *Dragger) UpdateMidstopDependencies(d *Draggable, writeBack bool) {
	srv := d.Server()
	if srv == nil {
		return
	}
	n := len(srv.AsBase().Stops)
	for i := 1; i < n-1; i++ {
		switch srv.(type) {
		case *gradient.Linear:
			dg.Drag.MoveOtherToDraggable(dg, d.Item, LinearMid, i, d.Target, writeBack)
		case *gradient.Radial:
			dg.Drag.MoveOtherToDraggable(dg, d.Item, RadialMid1, i, d.Target, writeBack)
			dg.Drag.MoveOtherToDraggable(dg, d.Item, RadialMid2, i, d.Target, writeBack)
		}
	}
}

// MoveThisToDraggable repositions this dragger onto the current
// document position of its draggable binding the given parameter, and
// fires its other draggables to follow, keeping the aggregate
// coincident. No-op if the dragger has no such draggable or the
// position does not resolve.
func (dg *Dragger) MoveThisToDraggable(it *Item, role PointRoles, index int, target PaintTargets, writeBack bool) {
	dref := dg.Has(it, role, index, target)
	if dref == nil {
		return
	}
	p, ok := GradientCoords(dref.Item, dref.Role, dref.Index, dref.Target)
	if !ok {
		return
	}
	dg.Point = p
	dg.PointOriginal = p
	dg.Knot.Move(p)
	for _, d := range dg.Draggables {
		if d == dref {
			continue
		}
		SetGradientCoords(d.Item, d.Role, d.Index, d.Target, p, false)
	}
	if writeBack {
		dg.Drag.WriteBack()
	}
}

// MoveMeshHandles repositions the mesh handle and tensor nodes adjacent
// to every mesh corner draggable of this dragger, after the corner
// moved from pcOld (document space), and moves their on-screen draggers
// to match. Skipped entirely when the dragger holds no mesh corner.
func (dg *Dragger) MoveMeshHandles(pcOld math32.Vector2, writeBack bool) {
	moved := false
	for _, d := range dg.Draggables {
		if d.Role != MeshCorner {
			continue
		}
		g, ok := d.Server().(*gradient.Mesh)
		if !ok {
			continue
		}
		pg := gradientToDoc(d.Item, g.AsBase()).Inverse().MulVector2AsPoint(pcOld)
		g.UpdateHandles(d.Index, pg)
		moved = true
	}
	if !moved {
		return
	}
	dg.Drag.RefreshDraggersMesh()
	if writeBack {
		dg.Drag.WriteBack()
	}
}

// MeshCorner locates the corner dragger that logically owns this mesh
// handle or tensor dragger, by scanning the node grid adjacency: for a
// handle the node below, left of, above, and right of it, in that
// order; for a tensor the four diagonal neighbors. It returns nil for
// draggers without mesh handle or tensor draggables.
func (dg *Dragger) MeshCorner() *Dragger {
	for _, d := range dg.Draggables {
		if d.Role != MeshHandle && d.Role != MeshTensor {
			continue
		}
		g, ok := d.Server().(*gradient.Mesh)
		if !ok {
			continue
		}
		g.EnsureArray()
		row, col, ok := meshNodeIndex(g, d)
		if !ok {
			continue
		}
		offs := [][2]int{{1, 0}, {0, -1}, {-1, 0}, {0, 1}}
		if d.Role == MeshTensor {
			offs = [][2]int{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
		}
		for _, o := range offs {
			n := g.Node(row+o[0], col+o[1])
			if n == nil || n.Kind != gradient.NodeCorner {
				continue
			}
			if cd := dg.Drag.GetDragger(d.Item, MeshCorner, n.Draggable, d.Target); cd != nil {
				return cd
			}
		}
	}
	return nil
}

// meshNodeIndex finds the grid coordinates of the node d binds to.
func meshNodeIndex(g *gradient.Mesh, d *Draggable) (row, col int, ok bool) {
	want := gradient.NodeHandle
	if d.Role == MeshTensor {
		want = gradient.NodeTensor
	}
	for i, nrow := range g.Nodes {
		for j, n := range nrow {
			if n.Kind == want && n.Draggable == d.Index {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// HighlightCorner highlights (or unhighlights) the handle draggers
// adjacent to every mesh corner draggable of this dragger, setting each
// handle knot's angle to point back at the corner. The vertical angle
// component flips with the view's y-axis convention.
func (dg *Dragger) HighlightCorner(on bool) {
	for _, d := range dg.Draggables {
		if d.Role != MeshCorner {
			continue
		}
		g, ok := d.Server().(*gradient.Mesh)
		if !ok {
			continue
		}
		row, col, ok := g.CornerIndex(d.Index)
		if !ok {
			continue
		}
		for _, o := range [][2]int{{1, 0}, {0, -1}, {-1, 0}, {0, 1}} {
			n := g.Node(row+o[0], col+o[1])
			if n == nil || n.Kind != gradient.NodeHandle {
				continue
			}
			hd := dg.Drag.GetDragger(d.Item, MeshHandle, n.Draggable, d.Target)
			if hd == nil {
				continue
			}
			hd.Knot.Highlighted = on
			if on {
				v := hd.Point.Sub(dg.Point)
				if dg.Drag.View.YAxisDown {
					v.Y = -v.Y
				}
				hd.Knot.Angle = math32.Atan2(v.Y, v.X)
			}
		}
	}
}
