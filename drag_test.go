// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradedit

import (
	"image/color"
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/gradedit/gradient"
	"github.com/stretchr/testify/assert"
)

func linearItem(name string, start, end math32.Vector2, offsets ...float32) *Item {
	it := NewItem(name)
	g := gradient.NewLinear()
	g.Start = start
	g.End = end
	if len(offsets) == 0 {
		offsets = []float32{0, 1}
	}
	cols := []color.RGBA{
		{255, 0, 0, 255}, {0, 255, 0, 255}, {0, 0, 255, 255}, {255, 255, 0, 255},
	}
	for i, o := range offsets {
		g.AddStop(cols[i%len(cols)], o)
	}
	it.SetGradient(PaintFill, g)
	it.Bounds = math32.B2(start.X, start.Y-10, end.X, end.Y+10)
	return it
}

func radialItem(name string, center math32.Vector2, radius float32) *Item {
	it := NewItem(name)
	g := gradient.NewRadial()
	g.Center = center
	g.Focal = center
	g.Radius = radius
	g.AddStop(color.RGBA{255, 0, 0, 255}, 0)
	g.AddStop(color.RGBA{0, 0, 255, 255}, 1)
	it.SetGradient(PaintFill, g)
	it.Bounds = math32.B2(center.X-radius, center.Y-radius, center.X+radius, center.Y+radius)
	return it
}

func meshItem(name string, rows, cols int, box math32.Box2) *Item {
	it := NewItem(name)
	it.SetGradient(PaintFill, gradient.NewMesh(rows, cols, box))
	it.Bounds = box
	return it
}

func newTestDrag(items ...*Item) *Drag {
	v := NewView()
	v.Selection.Items = items
	return NewDrag(v)
}

func draggerRoles(dr *Drag) []PointRoles {
	var roles []PointRoles
	for _, dg := range dr.Draggers {
		for _, d := range dg.Draggables {
			roles = append(roles, d.Role)
		}
	}
	return roles
}

func TestRebuildIdempotence(t *testing.T) {
	dr := newTestDrag(
		linearItem("a", math32.Vec2(10, 10), math32.Vec2(30, 10), 0, 0.5, 1),
		radialItem("b", math32.Vec2(50, 50), 10),
	)
	n := len(dr.Draggers)
	roles := draggerRoles(dr)
	var pts []math32.Vector2
	for _, dg := range dr.Draggers {
		pts = append(pts, dg.Point)
	}
	dr.UpdateDraggers()
	assert.Equal(t, n, len(dr.Draggers))
	assert.Equal(t, roles, draggerRoles(dr))
	for i, dg := range dr.Draggers {
		assert.Equal(t, pts[i], dg.Point)
	}
}

func TestLinearDraggers(t *testing.T) {
	dr := newTestDrag(linearItem("a", math32.Vec2(10, 10), math32.Vec2(30, 10), 0, 0.5, 1))
	assert.Equal(t, 3, len(dr.Draggers))
	assert.Equal(t, math32.Vec2(10, 10), dr.Draggers[0].Point)
	assert.Equal(t, math32.Vec2(20, 10), dr.Draggers[1].Point)
	assert.Equal(t, math32.Vec2(30, 10), dr.Draggers[2].Point)
	assert.True(t, dr.Draggers[1].IsMid())
	// one overlay segment for the axis
	assert.Equal(t, 1, len(dr.Curves))
	assert.False(t, dr.Curves[0].IsCurve)
}

func TestRadialDraggers(t *testing.T) {
	dr := newTestDrag(radialItem("a", math32.Vec2(50, 50), 10))
	// center+focus merged, R1, R2
	assert.Equal(t, 3, len(dr.Draggers))
	center := dr.GetDragger(dr.View.Selection.Items[0], RadialCenter, -1, PaintFill)
	assert.NotNil(t, center)
	assert.Equal(t, 2, len(center.Draggables))
	assert.NotNil(t, center.Has(dr.View.Selection.Items[0], RadialFocus, -1, PaintFill))
	r1 := dr.GetDragger(dr.View.Selection.Items[0], RadialR1, -1, PaintFill)
	assert.Equal(t, math32.Vec2(60, 50), r1.Point)
	r2 := dr.GetDragger(dr.View.Selection.Items[0], RadialR2, -1, PaintFill)
	assert.Equal(t, math32.Vec2(50, 40), r2.Point)
	assert.Equal(t, 2, len(dr.Curves))
}

func TestRadialDraggerOrder(t *testing.T) {
	it := NewItem("a")
	g := gradient.NewRadial()
	g.Center = math32.Vec2(50, 50)
	g.Focal = g.Center
	g.Radius = 10
	g.AddStop(color.RGBA{255, 0, 0, 255}, 0)
	g.AddStop(color.RGBA{0, 255, 0, 255}, 0.25)
	g.AddStop(color.RGBA{255, 255, 0, 255}, 0.75)
	g.AddStop(color.RGBA{0, 0, 255, 255}, 1)
	it.SetGradient(PaintFill, g)
	it.Bounds = math32.B2(40, 40, 60, 60)
	dr := newTestDrag(it)
	// center+focus share the first dragger; all first-axis mids precede
	// all second-axis mids, then the two radii
	assert.Equal(t, []PointRoles{
		RadialFocus, RadialCenter,
		RadialMid1, RadialMid1,
		RadialMid2, RadialMid2,
		RadialR1, RadialR2,
	}, draggerRoles(dr))
	m1 := dr.GetDragger(it, RadialMid1, 1, PaintFill)
	assert.Equal(t, math32.Vec2(52.5, 50), m1.Point)
	m2 := dr.GetDragger(it, RadialMid2, 2, PaintFill)
	assert.Equal(t, math32.Vec2(50, 42.5), m2.Point)
}

func TestMergeSymmetry(t *testing.T) {
	a := linearItem("a", math32.Vec2(10, 10), math32.Vec2(30, 10))
	b := linearItem("b", math32.Vec2(10, 10), math32.Vec2(10, 40))
	for _, items := range [][]*Item{{a, b}, {b, a}} {
		dr := newTestDrag(items...)
		// both begins share one dragger, both ends are distinct
		assert.Equal(t, 3, len(dr.Draggers))
		shared := dr.GetDragger(a, LinearBegin, -1, PaintFill)
		assert.NotNil(t, shared)
		assert.Equal(t, 2, len(shared.Draggables))
		assert.NotNil(t, shared.Has(b, LinearBegin, -1, PaintFill))
	}
}

func TestMidStopExclusion(t *testing.T) {
	a := linearItem("a", math32.Vec2(10, 10), math32.Vec2(30, 10), 0, 0.5, 1)
	// b's begin coincides with a's mid; they must not merge
	b := linearItem("b", math32.Vec2(20, 10), math32.Vec2(40, 10))
	// c's mid also coincides with a's mid; mids never merge either
	c := linearItem("c", math32.Vec2(0, 10), math32.Vec2(40, 10), 0, 0.5, 1)
	dr := newTestDrag(a, b, c)
	mid := dr.GetDragger(a, LinearMid, -1, PaintFill)
	assert.NotNil(t, mid)
	assert.Equal(t, 1, len(mid.Draggables))
	cmid := dr.GetDragger(c, LinearMid, -1, PaintFill)
	assert.NotNil(t, cmid)
	assert.NotEqual(t, mid, cmid)
	assert.Equal(t, 1, len(cmid.Draggables))
	assert.Equal(t, mid.Point, cmid.Point)
	begin := dr.GetDragger(b, LinearBegin, -1, PaintFill)
	assert.NotEqual(t, mid, begin)
	assert.Equal(t, mid.Point, begin.Point)
}

func TestRadialCascade(t *testing.T) {
	it := radialItem("a", math32.Vec2(50, 50), 10)
	dr := newTestDrag(it)
	center := dr.GetDragger(it, RadialCenter, -1, PaintFill)
	r1 := dr.GetDragger(it, RadialR1, -1, PaintFill)
	r2 := dr.GetDragger(it, RadialR2, -1, PaintFill)
	offR1 := r1.Point.Sub(center.Point)
	offR2 := r2.Point.Sub(center.Point)

	dr.SetSelected(center, false, false)
	dr.SelectedMove(5, -3, true, false)

	assert.Equal(t, math32.Vec2(55, 47), center.Point)
	assert.Equal(t, offR1, r1.Point.Sub(center.Point))
	assert.Equal(t, offR2, r2.Point.Sub(center.Point))
	g := it.Fill.Gradient.(*gradient.Radial)
	assert.Equal(t, math32.Vec2(55, 47), g.Center)
	assert.Equal(t, math32.Vec2(55, 47), g.Focal)
}

func TestSelectionToggle(t *testing.T) {
	dr := newTestDrag(linearItem("a", math32.Vec2(10, 10), math32.Vec2(30, 10)))
	dg := dr.Draggers[0]
	dr.SetSelected(dg, true, false)
	assert.True(t, dr.IsSelected(dg))
	assert.True(t, dg.Knot.Selected)
	dr.SetSelected(dg, true, false)
	assert.Empty(t, dr.Selected)
	assert.False(t, dg.Knot.Selected)
}

func TestSetSelectedSemantics(t *testing.T) {
	dr := newTestDrag(linearItem("a", math32.Vec2(10, 10), math32.Vec2(30, 10), 0, 0.5, 1))
	a, b := dr.Draggers[0], dr.Draggers[2]
	dr.SetSelected(a, true, true)
	dr.SetSelected(b, true, true)
	assert.Equal(t, 2, len(dr.Selected))
	// override add never toggles off
	dr.SetSelected(a, true, true)
	assert.Equal(t, 2, len(dr.Selected))
	// plain select clears the rest
	dr.SetSelected(b, false, false)
	assert.Equal(t, []*Dragger{b}, dr.Selected)
}

func TestMeshUnselectable(t *testing.T) {
	it := meshItem("m", 1, 1, math32.B2(0, 0, 30, 30))
	dr := newTestDrag(it)
	// 4 corners + 8 handles + 4 tensors
	assert.Equal(t, 16, len(dr.Draggers))
	h := dr.GetDragger(it, MeshHandle, 0, PaintFill)
	assert.NotNil(t, h)
	dr.SetSelected(h, false, false)
	assert.Empty(t, dr.Selected)
	dr.SelectAll()
	assert.Equal(t, 4, len(dr.Selected))
	for _, dg := range dr.Selected {
		assert.True(t, dg.IsRole(MeshCorner))
	}
}

func TestSelectNextPrevWraps(t *testing.T) {
	dr := newTestDrag(linearItem("a", math32.Vec2(10, 10), math32.Vec2(30, 10), 0, 0.5, 1))
	first := dr.SelectNext()
	assert.Equal(t, dr.Draggers[0], first)
	assert.Equal(t, dr.Draggers[1], dr.SelectNext())
	assert.Equal(t, dr.Draggers[2], dr.SelectNext())
	assert.Equal(t, dr.Draggers[0], dr.SelectNext())
	assert.Equal(t, dr.Draggers[2], dr.SelectPrev())
	assert.Equal(t, 1, len(dr.Selected))
}

func TestSelectRectAndByCoords(t *testing.T) {
	dr := newTestDrag(linearItem("a", math32.Vec2(10, 10), math32.Vec2(30, 10), 0, 0.5, 1))
	dr.SelectRect(math32.B2(5, 5, 25, 15))
	assert.Equal(t, 2, len(dr.Selected))
	dr.DeselectAll()
	dr.SelectByCoords(math32.Vec2(30, 10))
	assert.Equal(t, 1, len(dr.Selected))
	assert.Equal(t, math32.Vec2(30, 10), dr.Selected[0].Point)
}

func TestMidpointMoveFallback(t *testing.T) {
	it := linearItem("a", math32.Vec2(10, 10), math32.Vec2(30, 10), 0, 0.5, 1)
	dr := newTestDrag(it)
	mid := dr.GetDragger(it, LinearMid, -1, PaintFill)
	dr.SetSelected(mid, false, false)
	dr.SelectedMove(5, 2, true, false)
	// constrained to the axis
	assert.Equal(t, math32.Vec2(25, 10), mid.Point)
	g := it.Fill.Gradient.(*gradient.Linear)
	assert.InDelta(t, 0.75, g.Stops[1].Pos, 1e-6)

	// clamped at the end stop
	dr.SelectedMove(100, 0, true, false)
	assert.Equal(t, math32.Vec2(30, 10), mid.Point)
	assert.InDelta(t, 1, g.Stops[1].Pos, 1e-6)
}

func TestSelectedMoveSkipsRadiusWithCenter(t *testing.T) {
	it := radialItem("a", math32.Vec2(50, 50), 10)
	dr := newTestDrag(it)
	center := dr.GetDragger(it, RadialCenter, -1, PaintFill)
	r1 := dr.GetDragger(it, RadialR1, -1, PaintFill)
	dr.SetSelected(center, true, true)
	dr.SetSelected(r1, true, true)
	dr.SelectedMove(5, 0, true, false)
	g := it.Fill.Gradient.(*gradient.Radial)
	// radius unchanged: only the center move carried R1
	assert.InDelta(t, 10, g.Radius, 1e-5)
	assert.Equal(t, math32.Vec2(65, 50), r1.Point)
}

func TestAcyclicPropagation(t *testing.T) {
	it := radialItem("a", math32.Vec2(50, 50), 10)
	dr := newTestDrag(it)
	// firing dependencies from every dragger terminates and leaves the
	// frame self-consistent
	for _, dg := range dr.Draggers {
		dg.UpdateDependencies(false)
	}
	r1 := dr.GetDragger(it, RadialR1, -1, PaintFill)
	dr.SetSelected(r1, false, false)
	dr.SelectedMove(5, 0, true, false)
	g := it.Fill.Gradient.(*gradient.Radial)
	assert.Equal(t, math32.Vec2(50, 50), g.Center)
	p, ok := GradientCoords(it, RadialR1, 0, PaintFill)
	assert.True(t, ok)
	assert.InDelta(t, 65, p.X, 1e-4)
	assert.InDelta(t, 50, p.Y, 1e-4)
}

func TestDestroySavesSelectedIdentity(t *testing.T) {
	it := linearItem("a", math32.Vec2(10, 10), math32.Vec2(30, 10))
	v := NewView()
	v.Selection.Items = []*Item{it}
	dr := NewDrag(v)
	end := dr.GetDragger(it, LinearEnd, -1, PaintFill)
	dr.SetSelected(end, false, false)
	dr.Destroy()
	assert.Equal(t, it, v.GrItem)
	assert.Equal(t, LinearEnd, v.GrRole)

	// a new session restores the selection
	dr2 := NewDrag(v)
	assert.Equal(t, 1, len(dr2.Selected))
	assert.True(t, dr2.Selected[0].IsRole(LinearEnd))
}

func TestUpdateLevels(t *testing.T) {
	it := linearItem("a", math32.Vec2(10, 10), math32.Vec2(30, 10))
	it.Bounds = math32.B2(0, 0, 40, 20)
	dr := newTestDrag(it)
	assert.Equal(t, []float32{0, 10, 20}, dr.HorLevels)
	assert.Equal(t, []float32{0, 20, 40}, dr.VertLevels)
}

func TestMeshCornerMoveCarriesHandles(t *testing.T) {
	it := meshItem("m", 1, 1, math32.B2(0, 0, 30, 30))
	dr := newTestDrag(it)
	g := it.Fill.Gradient.(*gradient.Mesh)
	corner := dr.GetDragger(it, MeshCorner, 3, PaintFill) // node (3,3)
	assert.NotNil(t, corner)
	assert.Equal(t, math32.Vec2(30, 30), corner.Point)
	h := g.Nodes[2][3].Pos
	tn := g.Nodes[2][2].Pos
	dr.SetSelected(corner, false, false)
	dr.SelectedMove(2, 1, true, false)
	assert.Equal(t, h.Add(math32.Vec2(2, 1)), g.Nodes[2][3].Pos)
	assert.Equal(t, tn.Add(math32.Vec2(2, 1)), g.Nodes[2][2].Pos)
	// handle draggers repositioned to match
	hd := dr.GetDragger(it, MeshHandle, g.Nodes[2][3].Draggable, PaintFill)
	assert.Equal(t, g.Nodes[2][3].Pos, hd.Point)
}

func TestMeshCornerLookupFromHandle(t *testing.T) {
	it := meshItem("m", 1, 1, math32.B2(0, 0, 30, 30))
	dr := newTestDrag(it)
	g := it.Fill.Gradient.(*gradient.Mesh)
	hd := dr.GetDragger(it, MeshHandle, g.Nodes[0][1].Draggable, PaintFill)
	cd := hd.MeshCorner()
	assert.NotNil(t, cd)
	assert.NotNil(t, cd.Has(it, MeshCorner, g.Nodes[0][0].Draggable, PaintFill))
}

func TestKeepSelectionAcrossRebuild(t *testing.T) {
	it := linearItem("a", math32.Vec2(10, 10), math32.Vec2(30, 10), 0, 0.5, 1)
	dr := newTestDrag(it)
	end := dr.GetDragger(it, LinearEnd, -1, PaintFill)
	dr.SetSelected(end, false, false)
	dr.KeepSelection = true
	dr.UpdateDraggers()
	dr.KeepSelection = false
	assert.Equal(t, 1, len(dr.Selected))
	assert.True(t, dr.Selected[0].IsRole(LinearEnd))
}
