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

func rgba(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

func assertVec2InDelta(t *testing.T, want, got math32.Vector2, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta)
	assert.InDelta(t, want.Y, got.Y, delta)
}

func TestLinearCoords(t *testing.T) {
	it := linearItem("a", math32.Vec2(10, 10), math32.Vec2(30, 10), 0, 0.25, 1)
	p, ok := GradientCoords(it, LinearBegin, 0, PaintFill)
	assert.True(t, ok)
	assert.Equal(t, math32.Vec2(10, 10), p)
	p, ok = GradientCoords(it, LinearEnd, 2, PaintFill)
	assert.True(t, ok)
	assert.Equal(t, math32.Vec2(30, 10), p)
	p, ok = GradientCoords(it, LinearMid, 1, PaintFill)
	assert.True(t, ok)
	assert.Equal(t, math32.Vec2(15, 10), p)
}

func TestLinearSetCoords(t *testing.T) {
	it := linearItem("a", math32.Vec2(10, 10), math32.Vec2(30, 10), 0, 0.5, 1)
	g := it.Fill.Gradient.(*gradient.Linear)
	assert.True(t, SetGradientCoords(it, LinearEnd, 2, PaintFill, math32.Vec2(30, 30), false))
	assert.Equal(t, math32.Vec2(30, 30), g.End)

	// off-axis mid positions project onto the begin-end segment
	it = linearItem("b", math32.Vec2(10, 10), math32.Vec2(30, 10), 0, 0.5, 1)
	g = it.Fill.Gradient.(*gradient.Linear)
	assert.True(t, SetGradientCoords(it, LinearMid, 1, PaintFill, math32.Vec2(17.5, 13), false))
	assert.InDelta(t, 0.375, g.Stops[1].Pos, 1e-6)
}

func TestLinearCoordsItemTransform(t *testing.T) {
	it := linearItem("a", math32.Vec2(10, 10), math32.Vec2(30, 10))
	it.Transform = math32.Translate2D(5, 0)
	p, ok := GradientCoords(it, LinearBegin, 0, PaintFill)
	assert.True(t, ok)
	assert.Equal(t, math32.Vec2(15, 10), p)

	// set takes document coordinates back through the inverse transform
	g := it.Fill.Gradient.(*gradient.Linear)
	assert.True(t, SetGradientCoords(it, LinearBegin, 0, PaintFill, math32.Vec2(20, 10), false))
	assert.Equal(t, math32.Vec2(15, 10), g.Start)
}

func TestRadialCoords(t *testing.T) {
	it := radialItem("a", math32.Vec2(50, 50), 10)
	p, _ := GradientCoords(it, RadialCenter, 0, PaintFill)
	assert.Equal(t, math32.Vec2(50, 50), p)
	p, _ = GradientCoords(it, RadialR1, 0, PaintFill)
	assert.Equal(t, math32.Vec2(60, 50), p)
	p, _ = GradientCoords(it, RadialR2, 0, PaintFill)
	assert.Equal(t, math32.Vec2(50, 40), p)
	p, _ = GradientCoords(it, RadialFocus, 0, PaintFill)
	assert.Equal(t, math32.Vec2(50, 50), p)
}

func TestRadialCenterCarriesFocus(t *testing.T) {
	it := radialItem("a", math32.Vec2(50, 50), 10)
	g := it.Fill.Gradient.(*gradient.Radial)
	g.Focal = math32.Vec2(53, 50)
	assert.True(t, SetGradientCoords(it, RadialCenter, 0, PaintFill, math32.Vec2(60, 55), false))
	assert.Equal(t, math32.Vec2(60, 55), g.Center)
	assert.Equal(t, math32.Vec2(63, 55), g.Focal)
}

func TestRadialRotation(t *testing.T) {
	// dragging R1 straight up rotates the gradient a quarter turn,
	// carrying R2 along with it
	it := radialItem("a", math32.Vec2(50, 50), 10)
	assert.True(t, SetGradientCoords(it, RadialR1, 0, PaintFill, math32.Vec2(50, 60), true))
	g := it.Fill.Gradient.(*gradient.Radial)
	assert.InDelta(t, 10, g.Radius, 1e-5)
	p, _ := GradientCoords(it, RadialR1, 0, PaintFill)
	assertVec2InDelta(t, math32.Vec2(50, 60), p, 1e-4)
	p, _ = GradientCoords(it, RadialR2, 0, PaintFill)
	assertVec2InDelta(t, math32.Vec2(60, 50), p, 1e-4)
	p, _ = GradientCoords(it, RadialCenter, 0, PaintFill)
	assertVec2InDelta(t, math32.Vec2(50, 50), p, 1e-4)
}

func TestRadialScaleOneAxis(t *testing.T) {
	// without the symmetric-scale flag, dragging R1 outward stretches
	// only its own axis
	it := radialItem("a", math32.Vec2(50, 50), 10)
	assert.True(t, SetGradientCoords(it, RadialR1, 0, PaintFill, math32.Vec2(65, 50), false))
	g := it.Fill.Gradient.(*gradient.Radial)
	assert.InDelta(t, 10, g.Radius, 1e-5)
	p, _ := GradientCoords(it, RadialR1, 0, PaintFill)
	assertVec2InDelta(t, math32.Vec2(65, 50), p, 1e-4)
	p, _ = GradientCoords(it, RadialR2, 0, PaintFill)
	assertVec2InDelta(t, math32.Vec2(50, 40), p, 1e-4)
}

func TestRadialScaleSymmetric(t *testing.T) {
	it := radialItem("a", math32.Vec2(50, 50), 10)
	assert.True(t, SetGradientCoords(it, RadialR1, 0, PaintFill, math32.Vec2(65, 50), true))
	g := it.Fill.Gradient.(*gradient.Radial)
	assert.InDelta(t, 15, g.Radius, 1e-5)
	p, _ := GradientCoords(it, RadialR2, 0, PaintFill)
	assertVec2InDelta(t, math32.Vec2(50, 35), p, 1e-4)
}

func TestRadialMidCoords(t *testing.T) {
	it := radialItem("a", math32.Vec2(50, 50), 10)
	g := it.Fill.Gradient.(*gradient.Radial)
	g.Stops = nil
	g.AddStop(rgba(255, 0, 0), 0)
	g.AddStop(rgba(0, 255, 0), 0.4)
	g.AddStop(rgba(0, 0, 255), 1)
	p, ok := GradientCoords(it, RadialMid1, 1, PaintFill)
	assert.True(t, ok)
	assertVec2InDelta(t, math32.Vec2(54, 50), p, 1e-5)
	p, ok = GradientCoords(it, RadialMid2, 1, PaintFill)
	assert.True(t, ok)
	assertVec2InDelta(t, math32.Vec2(50, 46), p, 1e-5)

	assert.True(t, SetGradientCoords(it, RadialMid1, 1, PaintFill, math32.Vec2(57, 50), false))
	assert.InDelta(t, 0.7, g.Stops[1].Pos, 1e-5)
	assert.True(t, SetGradientCoords(it, RadialMid2, 1, PaintFill, math32.Vec2(50, 48), false))
	assert.InDelta(t, 0.2, g.Stops[1].Pos, 1e-5)
}

func TestMeshCoords(t *testing.T) {
	it := meshItem("m", 1, 1, math32.B2(0, 0, 30, 30))
	g := it.Fill.Gradient.(*gradient.Mesh)
	g.EnsureArray()
	p, ok := GradientCoords(it, MeshCorner, 3, PaintFill)
	assert.True(t, ok)
	assert.Equal(t, math32.Vec2(30, 30), p)
	assert.True(t, SetGradientCoords(it, MeshCorner, 3, PaintFill, math32.Vec2(28, 31), false))
	assert.Equal(t, math32.Vec2(28, 31), g.Nodes[3][3].Pos)
	assert.True(t, g.Nodes[3][3].Set)
}

func TestNearestBezierTime(t *testing.T) {
	p0 := math32.Vec2(0, 0)
	p1 := math32.Vec2(10, 0)
	p2 := math32.Vec2(20, 0)
	p3 := math32.Vec2(30, 0)
	tm, d := NearestBezierTime(math32.Vec2(15, 2), p0, p1, p2, p3)
	assert.InDelta(t, 0.5, tm, 1e-3)
	assert.InDelta(t, 2, d, 1e-3)
	tm, _ = NearestBezierTime(math32.Vec2(-5, 0), p0, p1, p2, p3)
	assert.InDelta(t, 0, tm, 1e-6)
}

func TestNearestSegmentTime(t *testing.T) {
	tm, d := NearestSegmentTime(math32.Vec2(5, 3), math32.Vec2(0, 0), math32.Vec2(10, 0))
	assert.InDelta(t, 0.5, tm, 1e-6)
	assert.InDelta(t, 3, d, 1e-6)
	tm, _ = NearestSegmentTime(math32.Vec2(20, 0), math32.Vec2(0, 0), math32.Vec2(10, 0))
	assert.InDelta(t, 1, tm, 1e-6)
}
