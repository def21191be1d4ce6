// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradedit

import (
	"fmt"
	"strings"

	"cogentcore.org/core/math32"
	"cogentcore.org/gradedit/gradient"
)

// Drag is the gradient editing controller for one editing session.
// It owns the full ordered dragger list and the overlay curves for the
// current selection, both derived data rebuilt from the item selection
// on every change, and implements the selection, move, stop, and color
// operations invoked by input handlers and tool actions.
type Drag struct {

	// View is the per-view ambient state the controller operates in.
	View *View

	// Draggers is the full dragger list, in creation order.
	// Creation order matters for tab navigation.
	Draggers []*Dragger

	// Selected is the subset of selected draggers, in selection order;
	// the first entry carries "first selected" semantics.
	Selected []*Dragger

	// Curves are the overlay segments and curves for the selection.
	Curves []*ItemCurve

	// HorLevels and VertLevels are the y and x snapping levels
	// collected from the selected items' bounding boxes.
	HorLevels  []float32
	VertLevels []float32

	// LocalChange marks the next selection-modified notification as
	// caused by this controller's own write-back, so the handler only
	// refreshes dragger positions instead of rebuilding everything.
	LocalChange bool

	// KeepSelection makes [Drag.UpdateDraggers] restore the selection
	// by draggable identity across the rebuild.
	KeepSelection bool

	mouseOver    *Dragger
	changedHook  int
	modifiedHook int
}

// NewDrag returns a controller attached to the given view: it connects
// the selection hooks, builds the draggers, overlay curves, and levels,
// and restores the gradient point selected when editing last ended.
func NewDrag(v *View) *Drag {
	dr := &Drag{View: v}
	if v.Snapper == nil {
		v.Snapper = NewSnapManager(dr)
	}
	dr.changedHook = v.Selection.OnChanged(dr.selectionChanged)
	dr.modifiedHook = v.Selection.OnModified(dr.selectionModified)
	dr.UpdateDraggers()
	dr.UpdateLines()
	dr.UpdateLevels()
	if v.GrItem != nil && v.Selection.Contains(v.GrItem) {
		if dg := dr.GetDragger(v.GrItem, v.GrRole, v.GrIndex, v.GrTarget); dg != nil {
			dr.SetSelected(dg, false, false)
		}
	}
	return dr
}

// Destroy ends the editing session: it writes the identity of the first
// selected draggable back to the view for later restore, disconnects
// the selection hooks, and drops all derived state.
func (dr *Drag) Destroy() {
	if len(dr.Selected) > 0 && len(dr.Selected[0].Draggables) > 0 {
		d := dr.Selected[0].Draggables[0]
		dr.View.SaveGradientPoint(d.Item, d.Role, d.Index, d.Target)
	}
	dr.View.Selection.Disconnect(dr.changedHook)
	dr.View.Selection.Disconnect(dr.modifiedHook)
	dr.Draggers = nil
	dr.Selected = nil
	dr.Curves = nil
	dr.HorLevels = nil
	dr.VertLevels = nil
}

func (dr *Drag) selectionChanged() {
	dr.UpdateDraggers()
	dr.UpdateLines()
	dr.UpdateLevels()
}

func (dr *Drag) selectionModified() {
	if dr.LocalChange {
		dr.LocalChange = false
		dr.RefreshDraggers()
		dr.UpdateLines()
		return
	}
	dr.UpdateDraggers()
	dr.UpdateLines()
	dr.UpdateLevels()
}

// WriteBack commits pending gradient mutations as an in-place document
// modification: it fires the selection-modified notification with the
// local-change flag set, so the handler refreshes positions without
// destroying the dragger list mid-drag.
func (dr *Drag) WriteBack() {
	dr.LocalChange = true
	dr.View.Selection.NotifyModified()
}

// WriteBackFull commits a structural gradient change (stop count or
// mesh grid changed), forcing a full dragger rebuild.
func (dr *Drag) WriteBackFull() {
	dr.LocalChange = false
	dr.View.Selection.NotifyModified()
}

// UpdateDraggers destroys and rebuilds the full dragger list from the
// selected items' fill and stroke gradients. The rebuild is idempotent:
// the same selection and server state always yields the same dragger
// list. The selection set is cleared, unless KeepSelection is set, in
// which case it is restored by draggable identity after the rebuild.
func (dr *Drag) UpdateDraggers() {
	var keep []*Draggable
	if dr.KeepSelection {
		for _, dg := range dr.Selected {
			keep = append(keep, dg.Draggables...)
		}
	}
	dr.Selected = nil
	dr.Draggers = nil
	for _, it := range dr.View.Selection.Items {
		for _, target := range []PaintTargets{PaintFill, PaintStroke} {
			srv := it.Paint(target).Gradient
			if srv == nil {
				continue
			}
			switch g := srv.(type) {
			case *gradient.Linear:
				if !g.IsSolid() {
					dr.addDraggersLinear(it, target, g)
				}
			case *gradient.Radial:
				if !g.IsSolid() {
					dr.addDraggersRadial(it, target, g)
				}
			case *gradient.Mesh:
				if target == PaintFill && !dr.View.Settings.EditMeshFill {
					continue
				}
				if target == PaintStroke && !dr.View.Settings.EditMeshStroke {
					continue
				}
				dr.addDraggersMesh(it, target, g)
			}
		}
	}
	for _, d := range keep {
		if dg := dr.GetDragger(d.Item, d.Role, d.Index, d.Target); dg != nil {
			dr.selectDragger(dg)
		}
	}
}

func (dr *Drag) addDraggersLinear(it *Item, target PaintTargets, g *gradient.Linear) {
	n := len(g.Stops)
	dr.AddDragger(NewDraggable(it, LinearBegin, 0, target))
	for i := 1; i < n-1; i++ {
		dr.AddDragger(NewDraggable(it, LinearMid, i, target))
	}
	dr.AddDragger(NewDraggable(it, LinearEnd, n-1, target))
}

func (dr *Drag) addDraggersRadial(it *Item, target PaintTargets, g *gradient.Radial) {
	n := len(g.Stops)
	dr.AddDragger(NewDraggable(it, RadialCenter, 0, target))
	for i := 1; i < n-1; i++ {
		dr.AddDragger(NewDraggable(it, RadialMid1, i, target))
	}
	for i := 1; i < n-1; i++ {
		dr.AddDragger(NewDraggable(it, RadialMid2, i, target))
	}
	dr.AddDragger(NewDraggable(it, RadialR1, n-1, target))
	dr.AddDragger(NewDraggable(it, RadialR2, n-1, target))
	dr.AddDragger(NewDraggable(it, RadialFocus, 0, target))
}

func (dr *Drag) addDraggersMesh(it *Item, target PaintTargets, g *gradient.Mesh) {
	g.EnsureArray()
	for i := range g.Corners {
		dr.AddDragger(NewDraggable(it, MeshCorner, i, target))
	}
	if !dr.View.Settings.ShowMeshHandles {
		return
	}
	for i := range g.Handles {
		dr.AddDragger(NewDraggable(it, MeshHandle, i, target))
	}
	for i := range g.Tensors {
		dr.AddDragger(NewDraggable(it, MeshTensor, i, target))
	}
}

// AddDragger adds a dragger for the given draggable, merging it into an
// existing merge-compatible dragger within [MergeDist] of its resolved
// position when possible, else appending a new dragger to the list.
func (dr *Drag) AddDragger(d *Draggable) {
	p, ok := GradientCoords(d.Item, d.Role, d.Index, d.Target)
	if !ok {
		return
	}
	for _, dg := range dr.Draggers {
		if dg.MayMergeDraggable(d) && dg.Point.DistanceTo(p) < MergeDist {
			dg.AddDraggable(d)
			return
		}
	}
	dr.Draggers = append(dr.Draggers, NewDragger(dr, d))
}

// RefreshDraggers repositions every dragger onto the current document
// position of its first draggable, without destroying any dragger or
// the selection. Used after local-change write-backs.
func (dr *Drag) RefreshDraggers() {
	for _, dg := range dr.Draggers {
		d := dg.Draggables[0]
		if p, ok := GradientCoords(d.Item, d.Role, d.Index, d.Target); ok {
			dg.Point = p
			dg.Knot.Move(p)
		}
	}
}

// RefreshDraggersMesh repositions only the mesh handle and tensor
// draggers onto the server's current node positions and applies the
// handle visibility preference, leaving corner draggers and the
// selection untouched. Used for high-frequency mesh edits.
func (dr *Drag) RefreshDraggersMesh() {
	show := dr.View.Settings.ShowMeshHandles
	for _, dg := range dr.Draggers {
		d := dg.Draggables[0]
		if d.Role != MeshHandle && d.Role != MeshTensor {
			continue
		}
		if p, ok := GradientCoords(d.Item, d.Role, d.Index, d.Target); ok {
			dg.Point = p
			dg.Knot.Move(p)
		}
		if show {
			dg.Knot.Show()
		} else {
			dg.Knot.Hide()
		}
	}
}

// GetDragger returns the dragger holding a draggable binding the given
// parameter, or nil; index -1 matches any index.
func (dr *Drag) GetDragger(it *Item, role PointRoles, index int, target PaintTargets) *Dragger {
	for _, dg := range dr.Draggers {
		if dg.Has(it, role, index, target) != nil {
			return dg
		}
	}
	return nil
}

// MoveOtherToDraggable repositions the dragger other than exclude that
// holds the given parameter onto that parameter's current position.
// Finding none is not an error; there is simply no dependent to update.
func (dr *Drag) MoveOtherToDraggable(exclude *Dragger, it *Item, role PointRoles, index int, target PaintTargets, writeBack bool) {
	for _, dg := range dr.Draggers {
		if dg == exclude {
			continue
		}
		if dg.Has(it, role, index, target) != nil {
			dg.MoveThisToDraggable(it, role, index, target, writeBack)
			return
		}
	}
}

// UpdateLines regenerates the overlay curves for the current selection:
// the begin-end axis for linear gradients, the two center-radius
// segments for radial gradients, and every patch boundary curve once
// for mesh gradients.
func (dr *Drag) UpdateLines() {
	dr.Curves = nil
	for _, it := range dr.View.Selection.Items {
		for _, target := range []PaintTargets{PaintFill, PaintStroke} {
			srv := it.Paint(target).Gradient
			if srv == nil {
				continue
			}
			switch g := srv.(type) {
			case *gradient.Linear:
				if g.IsSolid() {
					continue
				}
				b, _ := GradientCoords(it, LinearBegin, 0, target)
				e, _ := GradientCoords(it, LinearEnd, 0, target)
				dr.AddLine(it, target, b, e)
			case *gradient.Radial:
				if g.IsSolid() {
					continue
				}
				c, _ := GradientCoords(it, RadialCenter, 0, target)
				r1, _ := GradientCoords(it, RadialR1, 0, target)
				r2, _ := GradientCoords(it, RadialR2, 0, target)
				dr.AddLine(it, target, c, r1)
				dr.AddLine(it, target, c, r2)
			case *gradient.Mesh:
				dr.addMeshCurves(it, target, g)
			}
		}
	}
}

// addMeshCurves emits each mesh patch edge exactly once: the top side
// only for the first patch row and the left side only for the first
// column; bottom and right sides for every patch.
func (dr *Drag) addMeshCurves(it *Item, target PaintTargets, g *gradient.Mesh) {
	xf := gradientToDoc(it, g.AsBase())
	for row := 0; row < g.PatchRows(); row++ {
		for col := 0; col < g.PatchColumns(); col++ {
			for side := 0; side < 4; side++ {
				if side == 0 && row != 0 {
					continue
				}
				if side == 3 && col != 0 {
					continue
				}
				sp := g.PatchSidePoints(row, col, side)
				dr.Curves = append(dr.Curves, &ItemCurve{
					Item:    it,
					Target:  target,
					IsCurve: true,
					P0:      xf.MulVector2AsPoint(sp[0]),
					P1:      xf.MulVector2AsPoint(sp[1]),
					P2:      xf.MulVector2AsPoint(sp[2]),
					P3:      xf.MulVector2AsPoint(sp[3]),
					Row:     row,
					Col:     col,
					Side:    side,
				})
			}
		}
	}
}

// AddLine appends a straight overlay segment.
func (dr *Drag) AddLine(it *Item, target PaintTargets, a, b math32.Vector2) {
	dr.Curves = append(dr.Curves, &ItemCurve{
		Item: it, Target: target, P0: a, P3: b, Side: -1,
	})
}

// UpdateLevels collects the edge and midline coordinates of the
// selected items' bounding boxes as snapping levels.
func (dr *Drag) UpdateLevels() {
	dr.HorLevels = nil
	dr.VertLevels = nil
	for _, it := range dr.View.Selection.Items {
		bb := it.Bounds
		c := bb.Center()
		dr.HorLevels = append(dr.HorLevels, bb.Min.Y, c.Y, bb.Max.Y)
		dr.VertLevels = append(dr.VertLevels, bb.Min.X, c.X, bb.Max.X)
	}
}

// IsSelected returns whether the dragger is in the selection set.
func (dr *Drag) IsSelected(dg *Dragger) bool {
	for _, sg := range dr.Selected {
		if sg == dg {
			return true
		}
	}
	return false
}

// SetSelected updates the selection per the add/override semantics:
// with add false the dragger becomes the only selected one; with add
// and override it is unconditionally added; with add alone it toggles.
// Mesh handle and tensor draggers are unselectable; for them this is a
// no-op.
func (dr *Drag) SetSelected(dg *Dragger, add, override bool) {
	if dg == nil || !dg.Selectable() {
		return
	}
	switch {
	case !add:
		dr.DeselectAll()
		dr.selectDragger(dg)
	case override:
		dr.selectDragger(dg)
	case dr.IsSelected(dg):
		dr.deselectDragger(dg)
	default:
		dr.selectDragger(dg)
	}
}

func (dr *Drag) selectDragger(dg *Dragger) {
	if dr.IsSelected(dg) {
		return
	}
	dr.Selected = append(dr.Selected, dg)
	dg.Knot.Selected = true
	dg.HighlightCorner(true)
}

func (dr *Drag) deselectDragger(dg *Dragger) {
	for i, sg := range dr.Selected {
		if sg == dg {
			dr.Selected = append(dr.Selected[:i], dr.Selected[i+1:]...)
			break
		}
	}
	dg.Knot.Selected = false
	dg.HighlightCorner(false)
}

// DeselectAll empties the selection set.
func (dr *Drag) DeselectAll() {
	for _, dg := range dr.Selected {
		dg.Knot.Selected = false
		dg.HighlightCorner(false)
	}
	dr.Selected = nil
}

// SelectAll selects every selectable dragger.
func (dr *Drag) SelectAll() {
	for _, dg := range dr.Draggers {
		if dg.Selectable() {
			dr.selectDragger(dg)
		}
	}
}

// SelectByCoords adds every dragger within [MergeDist] of p
// to the selection.
func (dr *Drag) SelectByCoords(p math32.Vector2) {
	for _, dg := range dr.Draggers {
		if dg.Point.DistanceTo(p) < MergeDist {
			dr.SetSelected(dg, true, true)
		}
	}
}

// SelectByStop selects the dragger bound to the given stop index of the
// item's gradient on the given target, returning it, or nil if none.
func (dr *Drag) SelectByStop(it *Item, index int, target PaintTargets) *Dragger {
	for _, dg := range dr.Draggers {
		for _, d := range dg.Draggables {
			if d.Item == it && d.Target == target && !d.Role.IsMesh() && d.Index == index {
				dr.SetSelected(dg, false, false)
				return dg
			}
		}
	}
	return nil
}

// SelectRect adds every selectable dragger inside the document-space
// rectangle to the selection.
func (dr *Drag) SelectRect(box math32.Box2) {
	for _, dg := range dr.Draggers {
		if box.ContainsPoint(dg.Point) {
			dr.SetSelected(dg, true, true)
		}
	}
}

// SelectNext moves the single selection to the next selectable dragger
// in creation order, wrapping around, and returns it.
func (dr *Drag) SelectNext() *Dragger {
	return dr.selectCyclic(1)
}

// SelectPrev moves the single selection to the previous selectable
// dragger in creation order, wrapping around, and returns it.
func (dr *Drag) SelectPrev() *Dragger {
	return dr.selectCyclic(-1)
}

func (dr *Drag) selectCyclic(dir int) *Dragger {
	n := len(dr.Draggers)
	if n == 0 {
		return nil
	}
	cur := -1
	if len(dr.Selected) > 0 {
		for i, dg := range dr.Draggers {
			if dg == dr.Selected[0] {
				cur = i
				break
			}
		}
	}
	for k := 1; k <= n; k++ {
		i := ((cur+dir*k)%n + n) % n
		if dr.Draggers[i].Selectable() {
			dr.SetSelected(dr.Draggers[i], false, false)
			return dr.Draggers[i]
		}
	}
	return nil
}

// SelectedMove moves every selected dragger by (dx, dy) in document
// space, rotated with the canvas when the move-rotated preference is
// on. Mid stop draggers are skipped, as is a radius or focus dragger
// whose gradient's center is also selected (the center move already
// carries it). If nothing qualified, the selected mid stops are instead
// moved along their segment, clamped between the flanking stops.
func (dr *Drag) SelectedMove(dx, dy float32, writeBack, scaleRadial bool) {
	delta := math32.Vec2(dx, dy)
	if dr.View.Settings.MoveRotated && dr.View.Rotation != 0 {
		delta = math32.Rotate2D(dr.View.Rotation).MulVector2AsVector(delta)
	}
	didMove := false
	for _, dg := range dr.Selected {
		if dg.IsMid() {
			continue
		}
		if dr.centerAlsoSelected(dg) {
			continue
		}
		pcOld := dg.Point
		dg.Point = dg.Point.Add(delta)
		dg.PointOriginal = dg.Point
		dg.Knot.Move(dg.Point)
		dg.FireDraggables(writeBack, scaleRadial, false)
		dg.UpdateDependencies(writeBack)
		dg.MoveMeshHandles(pcOld, writeBack)
		didMove = true
	}
	if didMove || len(dr.Selected) == 0 {
		return
	}
	dg := dr.Selected[0]
	if !dg.IsMid() {
		return
	}
	dr.MoveMidsTo(dg, dg.Point.Add(delta), writeBack)
}

// centerAlsoSelected returns whether dg is a radius or focus dragger of
// a gradient whose center dragger is also in the selection.
func (dr *Drag) centerAlsoSelected(dg *Dragger) bool {
	for _, d := range dg.Draggables {
		if d.Role != RadialR1 && d.Role != RadialR2 && d.Role != RadialFocus {
			continue
		}
		for _, sg := range dr.Selected {
			if sg != dg && sg.Has(d.Item, RadialCenter, -1, d.Target) != nil {
				return true
			}
		}
	}
	return false
}

// SelectedMoveScreen moves the selection by a screen-space displacement,
// scaled by the current zoom into document space.
func (dr *Drag) SelectedMoveScreen(dx, dy float32, writeBack bool) {
	z := dr.View.Zoom
	if z == 0 {
		z = 1
	}
	dr.SelectedMove(dx/z, dy/z, writeBack, false)
}

// MidLimits describes the constrained move of a set of selected mid
// stop draggers along their gradient segment.
type MidLimits struct {

	// Seg is the segment between the gradient's flanking frame points
	// (begin-end or center-radius) in document space.
	Seg math32.Line2

	// Low and High are the positions the dragged knot may reach before
	// the lowest or highest moving mid hits its flanking stop.
	Low, High math32.Vector2

	// Moving are the selected mid draggers on the same segment,
	// ordered by ascending stop offset.
	Moving []*Dragger
}

// MidpointLimits computes the constrained-move description for the mid
// stop dragger dg: the segment it slides on, the set of selected mids
// moving with it, and the clamp positions for dg derived from the stops
// flanking the moving set. It returns false for non-mid draggers or
// when the segment does not resolve.
func (dr *Drag) MidpointLimits(dg *Dragger) (MidLimits, bool) {
	var ml MidLimits
	var ref *Draggable
	for _, d := range dg.Draggables {
		if d.Role.IsMid() {
			ref = d
			break
		}
	}
	if ref == nil {
		return ml, false
	}
	var beginRole, endRole PointRoles
	switch ref.Role {
	case LinearMid:
		beginRole, endRole = LinearBegin, LinearEnd
	case RadialMid1:
		beginRole, endRole = RadialCenter, RadialR1
	default:
		beginRole, endRole = RadialCenter, RadialR2
	}
	a, aok := GradientCoords(ref.Item, beginRole, 0, ref.Target)
	b, bok := GradientCoords(ref.Item, endRole, 0, ref.Target)
	if !aok || !bok || a.DistanceToSquared(b) == 0 {
		return ml, false
	}
	ml.Seg = math32.NewLine2(a, b)

	srv := ref.Server()
	if srv == nil {
		return ml, false
	}
	stops := srv.AsBase().Stops
	sel := map[int]*Dragger{}
	for _, d := range dg.Draggables {
		if d.Role == ref.Role && d.Item == ref.Item && d.Target == ref.Target {
			sel[d.Index] = dg
		}
	}
	for _, sg := range dr.Selected {
		for _, d := range sg.Draggables {
			if d.Role == ref.Role && d.Item == ref.Item && d.Target == ref.Target {
				sel[d.Index] = sg
			}
		}
	}
	lo, hi := -1, -1
	for i := range stops {
		if _, ok := sel[i]; !ok {
			continue
		}
		if lo < 0 {
			lo = i
		}
		hi = i
		ml.Moving = append(ml.Moving, sel[i])
	}
	if lo < 1 || hi >= len(stops)-1 {
		return ml, false
	}
	lowPos := a.Lerp(b, stops[lo-1].Pos)
	highPos := a.Lerp(b, stops[hi+1].Pos)
	lowest := ml.Moving[0].Point
	highest := ml.Moving[len(ml.Moving)-1].Point
	ml.Low = dg.Point.Add(lowPos.Sub(lowest))
	ml.High = dg.Point.Add(highPos.Sub(highest))
	return ml, true
}

// MoveMidsTo moves the mid stop dragger dg toward the document point p
// projected onto its segment and clamped by [Drag.MidpointLimits],
// carrying the other selected mids on the same segment by the same
// displacement and writing the new offsets back to the server.
func (dr *Drag) MoveMidsTo(dg *Dragger, p math32.Vector2, writeBack bool) {
	ml, ok := dr.MidpointLimits(dg)
	if !ok {
		return
	}
	q := ml.Seg.ClosestPointToPoint(p)
	// clamp along the segment between the limit positions
	tq := segmentOffset(q, ml.Seg.Start, ml.Seg.End)
	tlo := segmentOffset(ml.Low, ml.Seg.Start, ml.Seg.End)
	thi := segmentOffset(ml.High, ml.Seg.Start, ml.Seg.End)
	q = ml.Seg.Start.Lerp(ml.Seg.End, math32.Clamp(tq, tlo, thi))
	delta := q.Sub(dg.Point)
	for _, mg := range ml.Moving {
		mg.Point = mg.Point.Add(delta)
		mg.PointOriginal = mg.Point
		mg.Knot.Move(mg.Point)
		mg.FireDraggables(false, false, false)
		mg.UpdateDependencies(false)
	}
	if writeBack {
		dr.WriteBack()
	}
}

// MouseOver updates the mouse-over display state for the document point
// p, returning the dragger under the pointer, if any. The out-state is
// explicit controller state updated per motion event.
func (dr *Drag) MouseOver(p math32.Vector2) *Dragger {
	tol := float32(5)
	if dr.View.Zoom > 0 {
		tol /= dr.View.Zoom
	}
	var over *Dragger
	for _, dg := range dr.Draggers {
		if dg.Knot.Visible && dg.Point.DistanceTo(p) < tol {
			over = dg
			break
		}
	}
	if over == dr.mouseOver {
		return over
	}
	if dr.mouseOver != nil {
		dr.mouseOver.Knot.MouseOver = false
	}
	if over != nil {
		over.Knot.MouseOver = true
	}
	dr.mouseOver = over
	return over
}

// GradientState serializes the gradients of all selected items as flat
// records, one per gradient, forming the snapshots committed to the
// undo stack.
func (dr *Drag) GradientState() []string {
	var state []string
	for _, it := range dr.View.Selection.Items {
		for _, target := range []PaintTargets{PaintFill, PaintStroke} {
			srv := it.Paint(target).Gradient
			if srv == nil {
				continue
			}
			state = append(state, gradientString(it, target, srv))
		}
	}
	return state
}

func gradientString(it *Item, target PaintTargets, srv gradient.Server) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s", it.Name, target)
	switch g := srv.(type) {
	case *gradient.Linear:
		fmt.Fprintf(&sb, " linear %g,%g %g,%g", g.Start.X, g.Start.Y, g.End.X, g.End.Y)
		stopsString(&sb, g.Stops)
	case *gradient.Radial:
		fmt.Fprintf(&sb, " radial %g,%g %g %g,%g", g.Center.X, g.Center.Y, g.Radius, g.Focal.X, g.Focal.Y)
		stopsString(&sb, g.Stops)
	case *gradient.Mesh:
		fmt.Fprintf(&sb, " mesh %dx%d", g.PatchRows(), g.PatchColumns())
		for _, row := range g.Nodes {
			for _, n := range row {
				fmt.Fprintf(&sb, " %g,%g:#%02x%02x%02x%02x", n.Pos.X, n.Pos.Y, n.Color.R, n.Color.G, n.Color.B, n.Color.A)
			}
		}
	}
	fmt.Fprintf(&sb, " xform %v", srv.AsBase().Transform)
	return sb.String()
}

func stopsString(sb *strings.Builder, stops []gradient.Stop) {
	for _, st := range stops {
		fmt.Fprintf(sb, " %g:#%02x%02x%02x%02x*%g", st.Pos, st.Color.R, st.Color.G, st.Color.B, st.Color.A, st.Opacity)
	}
}

// Done commits the current gradient state to the undo stack under the
// given action label.
func (dr *Drag) Done(action string) {
	dr.View.Undo.Done(action, dr.GradientState())
}

// MaybeDone commits like [Drag.Done], collapsing consecutive commits
// with the same key into one undo step.
func (dr *Drag) MaybeDone(key, action string) {
	dr.View.Undo.MaybeDone(key, action, dr.GradientState())
}
