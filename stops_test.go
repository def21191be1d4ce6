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

func lastUndoAction(dr *Drag) string {
	recs := dr.View.Undo.Recs
	return recs[len(recs)-1].Action
}

func TestDeleteBeginRenormalizes(t *testing.T) {
	it := linearItem("a", math32.Vec2(10, 10), math32.Vec2(20, 10), 0, 0.3, 0.6, 1)
	dr := newTestDrag(it)
	begin := dr.GetDragger(it, LinearBegin, -1, PaintFill)
	dr.SetSelected(begin, false, false)
	dr.DeleteSelected(true)
	g := it.Fill.Gradient.(*gradient.Linear)
	assert.Equal(t, 3, len(g.Stops))
	assert.InDelta(t, 0, g.Stops[0].Pos, 1e-6)
	assert.InDelta(t, 0.42857143, g.Stops[1].Pos, 1e-6)
	assert.InDelta(t, 1, g.Stops[2].Pos, 1e-6)
	// the frame moves so surviving stops keep their positions
	assertVec2InDelta(t, math32.Vec2(13, 10), g.Start, 1e-5)
	assert.Equal(t, "Delete gradient stop", lastUndoAction(dr))
}

func TestDeleteEndRenormalizes(t *testing.T) {
	it := linearItem("a", math32.Vec2(10, 10), math32.Vec2(30, 10), 0, 0.5, 1)
	dr := newTestDrag(it)
	end := dr.GetDragger(it, LinearEnd, -1, PaintFill)
	dr.SetSelected(end, false, false)
	dr.DeleteSelected(true)
	g := it.Fill.Gradient.(*gradient.Linear)
	assert.Equal(t, 2, len(g.Stops))
	assert.InDelta(t, 0, g.Stops[0].Pos, 1e-6)
	assert.InDelta(t, 1, g.Stops[1].Pos, 1e-6)
	assertVec2InDelta(t, math32.Vec2(20, 10), g.End, 1e-5)
}

func TestDeleteRadialEndScalesRadius(t *testing.T) {
	it := radialItem("a", math32.Vec2(50, 50), 10)
	g := it.Fill.Gradient.(*gradient.Radial)
	g.Stops = nil
	g.AddStop(rgba(255, 0, 0), 0)
	g.AddStop(rgba(0, 255, 0), 0.5)
	g.AddStop(rgba(0, 0, 255), 1)
	dr := newTestDrag(it)
	r1 := dr.GetDragger(it, RadialR1, -1, PaintFill)
	dr.SetSelected(r1, false, false)
	dr.DeleteSelected(true)
	assert.Equal(t, 2, len(g.Stops))
	assert.InDelta(t, 5, g.Radius, 1e-5)
	assert.Equal(t, math32.Vec2(50, 50), g.Center)
}

func TestDeleteMidStop(t *testing.T) {
	it := linearItem("a", math32.Vec2(10, 10), math32.Vec2(30, 10), 0, 0.5, 1)
	dr := newTestDrag(it)
	mid := dr.GetDragger(it, LinearMid, -1, PaintFill)
	dr.SetSelected(mid, false, false)
	dr.DeleteSelected(false)
	g := it.Fill.Gradient.(*gradient.Linear)
	assert.Equal(t, 2, len(g.Stops))
	assert.Equal(t, math32.Vec2(10, 10), g.Start)
	assert.Equal(t, math32.Vec2(30, 10), g.End)
	assert.Equal(t, 2, len(dr.Draggers))
}

func TestDeleteUnsetsPaintAtTwoStops(t *testing.T) {
	it := linearItem("a", math32.Vec2(10, 10), math32.Vec2(30, 10))
	dr := newTestDrag(it)
	begin := dr.GetDragger(it, LinearBegin, -1, PaintFill)
	dr.SetSelected(begin, false, false)
	dr.DeleteSelected(true)
	assert.Nil(t, it.Fill.Gradient)
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, it.Fill.Color)
	assert.Empty(t, dr.Draggers)
}

func TestAddStopNearPointLinear(t *testing.T) {
	it := linearItem("a", math32.Vec2(10, 10), math32.Vec2(30, 10))
	dr := newTestDrag(it)
	dg := dr.AddStopNearPoint(it, math32.Vec2(20, 10.5), 1)
	assert.NotNil(t, dg)
	assert.True(t, dg.IsRole(LinearMid))
	assert.True(t, dr.IsSelected(dg))
	g := it.Fill.Gradient.(*gradient.Linear)
	assert.Equal(t, 3, len(g.Stops))
	assert.InDelta(t, 0.5, g.Stops[1].Pos, 1e-5)
	assert.Equal(t, "Add gradient stop", lastUndoAction(dr))
}

func TestAddStopNearPointMiss(t *testing.T) {
	it := linearItem("a", math32.Vec2(10, 10), math32.Vec2(30, 10))
	dr := newTestDrag(it)
	dg := dr.AddStopNearPoint(it, math32.Vec2(20, 20), 1)
	assert.Nil(t, dg)
	assert.Equal(t, 2, len(it.Fill.Gradient.AsBase().Stops))
}

func TestAddStopSplitsMesh(t *testing.T) {
	it := meshItem("m", 1, 1, math32.B2(0, 0, 30, 30))
	dr := newTestDrag(it)
	g := it.Fill.Gradient.(*gradient.Mesh)
	dg := dr.AddStopNearPoint(it, math32.Vec2(15, 0), 1)
	assert.Nil(t, dg)
	assert.Equal(t, 2, g.PatchColumns())
	assert.Equal(t, 6, len(g.Corners))
	assert.InDelta(t, 15, g.Nodes[0][3].Pos.X, 1e-4)
	assert.Equal(t, "Split gradient mesh", lastUndoAction(dr))
	// draggers rebuilt for the larger grid
	n := 0
	for _, d := range dr.Draggers {
		if d.IsRole(MeshCorner) {
			n++
		}
	}
	assert.Equal(t, 6, n)
}

func TestSelectedReverseVector(t *testing.T) {
	it := linearItem("a", math32.Vec2(10, 10), math32.Vec2(30, 10), 0, 0.25, 1)
	dr := newTestDrag(it)
	begin := dr.GetDragger(it, LinearBegin, -1, PaintFill)
	dr.SetSelected(begin, false, false)
	g := it.Fill.Gradient.(*gradient.Linear)
	first := g.Stops[0].Color
	last := g.Stops[2].Color
	dr.SelectedReverseVector()
	assert.Equal(t, []float32{0, 0.75, 1}, stopOffsets(g.Stops))
	assert.Equal(t, last, g.Stops[0].Color)
	assert.Equal(t, first, g.Stops[2].Color)
	assert.Equal(t, "Invert gradient", lastUndoAction(dr))
}

func stopOffsets(stops []gradient.Stop) []float32 {
	offs := make([]float32, len(stops))
	for i, s := range stops {
		offs[i] = s.Pos
	}
	return offs
}
