// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradedit

import (
	"cogentcore.org/core/events/key"
	"cogentcore.org/core/math32"
)

// DragEvents are the kinds of pointer events dispatched to a dragger.
type DragEvents int32 //enums:enum -trim-prefix Knot

const (
	// KnotMousedown is a press on the dragger's knot.
	KnotMousedown DragEvents = iota

	// KnotMoved is a drag motion with the knot grabbed.
	KnotMoved

	// KnotClicked is a press-release without crossing the drag
	// threshold.
	KnotClicked

	// KnotDoubleClicked is a double click on the knot.
	KnotDoubleClicked

	// KnotUngrabbed is the release ending a drag.
	KnotUngrabbed
)

// DragEvent is one pointer event routed to a dragger, with the pointer
// document position and the modifier keys held.
type DragEvent struct {
	Kind    DragEvents
	Pointer math32.Vector2
	Mods    key.Modifiers
}

// HandleDraggerEvent is the single entry point translating pointer
// events on a dragger's knot into engine operations, returning whether
// the event was handled. All mutation is synchronous within the call;
// a selection rebuild never interleaves with a drag.
func (dr *Drag) HandleDraggerEvent(dg *Dragger, e DragEvent) bool {
	if dg == nil {
		return false
	}
	switch e.Kind {
	case KnotMousedown:
		return dr.knotMousedown(dg)
	case KnotMoved:
		if dg.IsMid() {
			dr.knotMidMoved(dg, e.Pointer, e.Mods)
		} else {
			dr.knotMoved(dg, e.Pointer, e.Mods)
		}
		return true
	case KnotClicked:
		return dr.knotClicked(dg, e.Mods)
	case KnotDoubleClicked:
		// stop editing dialogs are outside the engine
		return false
	case KnotUngrabbed:
		dr.knotUngrabbed(dg, e.Mods)
		return true
	}
	return false
}

// knotMousedown starts a grab: it snapshots the grab position as the
// Alt angle-snap reference, and highlights the owning corner of a mesh
// handle or tensor knot.
func (dr *Drag) knotMousedown(dg *Dragger) bool {
	dg.PointOriginal = dg.Point
	if cd := dg.MeshCorner(); cd != nil {
		cd.HighlightCorner(true)
	}
	return true
}

// knotClicked selects the dragger: plain click makes it the only
// selection, Shift-click toggles it, and Ctrl+Alt-click deletes its
// stop instead.
func (dr *Drag) knotClicked(dg *Dragger, mods key.Modifiers) bool {
	if key.HasAnyModifier(mods, key.Control) && key.HasAnyModifier(mods, key.Alt) {
		if !dg.Selectable() {
			return false
		}
		dr.SetSelected(dg, false, false)
		dr.DeleteSelected(true)
		return true
	}
	if key.HasAnyModifier(mods, key.Shift) {
		dr.SetSelected(dg, true, false)
	} else {
		dr.SetSelected(dg, false, false)
	}
	return true
}

// knotMoved handles drag motion for non-mid draggers: Shift-drag splits
// a merged dragger, plain proximity merges it into a compatible one,
// Ctrl snaps the angle around the gradient frame reference, Alt
// constrains to the grab-time direction, Ctrl+Shift rescales both
// radial radii symmetrically, and otherwise the point free-snaps.
func (dr *Drag) knotMoved(dg *Dragger, p math32.Vector2, mods key.Modifiers) {
	shift := key.HasAnyModifier(mods, key.Shift)
	ctrl := key.HasAnyModifier(mods, key.Control)
	alt := key.HasAnyModifier(mods, key.Alt)

	if shift && len(dg.Draggables) > 1 {
		dr.unmerge(dg)
	}

	if !shift {
		// the drag-merge threshold is a screen-space distance
		md := float32(MergeDist)
		if dr.View.Zoom > 0 {
			md /= dr.View.Zoom
		}
		for _, o := range dr.Draggers {
			if o == dg || !o.MayMerge(dg) {
				continue
			}
			if o.Point.DistanceTo(p) < md {
				dr.merge(dg, o)
				return
			}
		}
	}

	snapped := p
	ref, hasRef := dg.angleReference()
	switch {
	case ctrl && hasRef:
		sp := dr.View.Snapper.AngularSnap(p, nil, ref, dr.View.Settings.RotationSnapsPerPi)
		if sp.Snapped {
			snapped = sp.Point
		}
	case alt && hasRef && ref.DistanceToSquared(dg.PointOriginal) > 0:
		orig := dg.PointOriginal
		sp := dr.View.Snapper.AngularSnap(p, &orig, ref, 2)
		if sp.Snapped {
			snapped = sp.Point
		}
	case !ctrl && !alt:
		sp := dr.View.Snapper.FreeSnap(p, SnapGradientPoint)
		if sp.Snapped {
			snapped = sp.Point
		}
	}

	scaleRadial := ctrl && shift && (dg.IsRole(RadialR1) || dg.IsRole(RadialR2))
	pcOld := dg.Point
	dg.Point = snapped
	dg.Knot.Move(snapped)
	dg.FireDraggables(false, scaleRadial, false)
	dg.UpdateDependencies(false)
	dg.MoveMeshHandles(pcOld, false)
	dr.UpdateLines()
}

// unmerge splits a multi-draggable dragger on Shift-drag: a new dragger
// takes all but the first draggable and stays at the grab position,
// leaving the dragged one with exactly one draggable.
func (dr *Drag) unmerge(dg *Dragger) {
	rest := dg.Draggables[1:]
	dg.Draggables = dg.Draggables[:1]
	dg.UpdateKnotShape()
	dg.UpdateTip()
	nd := &Dragger{
		Drag:          dr,
		Point:         dg.PointOriginal,
		PointOriginal: dg.PointOriginal,
		Knot:          NewKnot(roleShapes[rest[0].Role], dg.PointOriginal),
	}
	nd.Draggables = rest
	nd.UpdateKnotShape()
	nd.UpdateTip()
	dr.Draggers = append(dr.Draggers, nd)
}

// merge absorbs the dragged dragger dg into the compatible dragger o it
// was dragged onto: o takes all of dg's draggables and fires them at
// its own position, with the merging-focus exception lifted so a focus
// landing on its center snaps onto it.
func (dr *Drag) merge(dg, o *Dragger) {
	for _, d := range dg.Draggables {
		o.AddDraggable(d)
	}
	wasSelected := dr.IsSelected(dg)
	dr.deselectDragger(dg)
	for i, g := range dr.Draggers {
		if g == dg {
			dr.Draggers = append(dr.Draggers[:i], dr.Draggers[i+1:]...)
			break
		}
	}
	o.FireDraggables(true, false, true)
	o.UpdateDependencies(true)
	if wasSelected {
		dr.SetSelected(o, false, false)
	}
	dr.UpdateLines()
	dr.Done("Merge gradient handles")
}

// angleReference returns the gradient frame point that Ctrl and Alt
// angle snapping pivots around: the opposite endpoint for linear
// endpoints, the center for radial satellites, and the owning corner
// for mesh handles.
func (dg *Dragger) angleReference() (math32.Vector2, bool) {
	for _, d := range dg.Draggables {
		switch d.Role {
		case LinearBegin:
			if p, ok := GradientCoords(d.Item, LinearEnd, 0, d.Target); ok {
				return p, true
			}
		case LinearEnd:
			if p, ok := GradientCoords(d.Item, LinearBegin, 0, d.Target); ok {
				return p, true
			}
		case RadialR1, RadialR2, RadialFocus:
			if p, ok := GradientCoords(d.Item, RadialCenter, 0, d.Target); ok {
				return p, true
			}
		case MeshHandle:
			if cd := dg.MeshCorner(); cd != nil {
				return cd.Point, true
			}
		}
	}
	return math32.Vector2{}, false
}

// knotMidMoved handles drag motion for mid stop draggers, sliding the
// selected mids along their segment within the flanking-stop limits.
// Ctrl snaps the dragged stop's offset to tenth fractions; Alt also
// carries the unselected mids between the limits, scaled by a raised
// cosine bell of their relative distance from the dragged stop.
func (dr *Drag) knotMidMoved(dg *Dragger, p math32.Vector2, mods key.Modifiers) {
	ml, ok := dr.MidpointLimits(dg)
	if !ok {
		return
	}
	q := ml.Seg.ClosestPointToPoint(p)
	if key.HasAnyModifier(mods, key.Control) {
		t := segmentOffset(q, ml.Seg.Start, ml.Seg.End)
		t = math32.Round(t*10) / 10
		q = ml.Seg.Start.Lerp(ml.Seg.End, t)
	}
	if key.HasAnyModifier(mods, key.Alt) {
		dr.midMoveBell(dg, q, ml)
	}
	dr.MoveMidsTo(dg, q, false)
	dg.UpdateDependencies(false)
}

// midMoveBell moves the unselected mid draggers on dg's segment by the
// dragged displacement scaled with 0.5*cos(pi*x)+0.5, where x is the
// 0-1 distance from the dragged stop toward the segment end on the
// mid's side.
func (dr *Drag) midMoveBell(dg *Dragger, q math32.Vector2, ml MidLimits) {
	delta := q.Sub(dg.Point)
	t0 := segmentOffset(dg.Point, ml.Seg.Start, ml.Seg.End)
	var ref *Draggable
	for _, d := range dg.Draggables {
		if d.Role.IsMid() {
			ref = d
			break
		}
	}
	if ref == nil {
		return
	}
	for _, og := range dr.Draggers {
		if og == dg || dr.IsSelected(og) {
			continue
		}
		if og.Has(ref.Item, ref.Role, -1, ref.Target) == nil {
			continue
		}
		tm := segmentOffset(og.Point, ml.Seg.Start, ml.Seg.End)
		var x float32
		switch {
		case tm < t0 && t0 > 0:
			x = (t0 - tm) / t0
		case tm > t0 && t0 < 1:
			x = (tm - t0) / (1 - t0)
		default:
			continue
		}
		bell := 0.5*math32.Cos(math32.Pi*math32.Clamp(x, 0, 1)) + 0.5
		og.Point = og.Point.Add(delta.MulScalar(bell))
		og.Knot.Move(og.Point)
		og.FireDraggables(false, false, false)
		og.UpdateDependencies(false)
	}
}

// knotUngrabbed ends a drag: the final position is committed as a
// document modification and an undo step, with consecutive handle
// moves collapsed into one, and the dragger selected (added with
// Shift held).
func (dr *Drag) knotUngrabbed(dg *Dragger, mods key.Modifiers) {
	dg.PointOriginal = dg.Point
	scaleRadial := key.HasAnyModifier(mods, key.Control) &&
		key.HasAnyModifier(mods, key.Shift) &&
		(dg.IsRole(RadialR1) || dg.IsRole(RadialR2))
	dg.FireDraggables(true, scaleRadial, false)
	dg.UpdateDependencies(true)
	dr.SetSelected(dg, key.HasAnyModifier(mods, key.Shift), true)
	dr.MaybeDone("grmove", "Move gradient handle")
}

// KeyPress handles keyboard input while gradient editing is active,
// returning whether it consumed the event. Arrow keys nudge the
// selection by the preference distance, ten times that with Shift, or
// by single screen pixels with Alt; vertical direction follows the
// view's y-axis convention. Delete removes the selected stops.
func (dr *Drag) KeyPress(code key.Codes, mods key.Modifiers) bool {
	if len(dr.Selected) == 0 {
		return false
	}
	switch code {
	case key.CodeBackspace, key.CodeDelete:
		dr.DeleteSelected(false)
		return true
	case key.CodeLeftArrow, key.CodeRightArrow, key.CodeUpArrow, key.CodeDownArrow:
	default:
		return false
	}
	var dx, dy float32
	switch code {
	case key.CodeLeftArrow:
		dx = -1
	case key.CodeRightArrow:
		dx = 1
	case key.CodeUpArrow:
		dy = 1
	case key.CodeDownArrow:
		dy = -1
	}
	if dr.View.YAxisDown {
		dy = -dy
	}
	if key.HasAnyModifier(mods, key.Alt) {
		dr.SelectedMoveScreen(dx, dy, true)
	} else {
		dist := dr.View.Settings.NudgeDistance
		if key.HasAnyModifier(mods, key.Shift) {
			dist *= 10
		}
		dr.SelectedMove(dx*dist, dy*dist, true, false)
	}
	dr.MaybeDone("grnudge", "Nudge gradient handle")
	return true
}
