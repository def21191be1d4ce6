// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradedit

import "cogentcore.org/core/math32"

// SnapSources tag what kind of point is being snapped, so a snapping
// service can apply per-source rules.
type SnapSources int32 //enums:enum -trim-prefix Snap

const (
	// SnapGradientPoint is a gradient endpoint, center, radius,
	// or focus handle.
	SnapGradientPoint SnapSources = iota

	// SnapMidpoint is an intermediate gradient stop.
	SnapMidpoint

	// SnapMeshNode is a mesh gradient node.
	SnapMeshNode
)

// SnappedPoint is the result of a snap query.
type SnappedPoint struct {

	// Point is the snapped position, equal to the query point
	// when Snapped is false.
	Point math32.Vector2

	// Snapped is whether a snap target was found within range.
	Snapped bool

	// Dist is the distance from the query point to Point.
	Dist float32
}

// Snapper is the snapping service consulted while dragging handles.
type Snapper interface {

	// FreeSnap snaps p to nearby snap targets without constraints.
	FreeSnap(p math32.Vector2, src SnapSources) SnappedPoint

	// ConstrainedSnap snaps p along the given constraint line.
	ConstrainedSnap(p math32.Vector2, src SnapSources, line math32.Line2) SnappedPoint

	// AngularSnap snaps p to rays from center at angle increments of
	// pi/divisions. When origin is non-nil, the increments are offset
	// so that the center-origin direction is itself a snap angle.
	AngularSnap(p math32.Vector2, origin *math32.Vector2, center math32.Vector2, divisions int) SnappedPoint

	// BestSnap returns the best (nearest successful) of several
	// candidate snap results, or an unsnapped result if none snapped.
	BestSnap(p math32.Vector2, candidates []SnappedPoint) SnappedPoint
}

// SnapManager is the default [Snapper]: it free-snaps to the bounding
// box levels of the selected items and implements pure geometric
// angular snapping. A document-wide snapping system can be substituted
// through the [View.Snapper] field.
type SnapManager struct {

	// Drag is the controller whose levels are snapped to.
	Drag *Drag

	// Distance is the document-space snap engage distance.
	Distance float32
}

// NewSnapManager returns a [SnapManager] for the given controller,
// taking the engage distance from its view settings.
func NewSnapManager(dr *Drag) *SnapManager {
	return &SnapManager{Drag: dr, Distance: dr.View.Settings.SnapDistance}
}

// FreeSnap snaps each axis of p independently to the nearest item
// bounding box level within range.
func (sm *SnapManager) FreeSnap(p math32.Vector2, src SnapSources) SnappedPoint {
	sp := SnappedPoint{Point: p}
	if x, ok := nearestLevel(sm.Drag.VertLevels, p.X, sm.Distance); ok {
		sp.Point.X = x
		sp.Snapped = true
	}
	if y, ok := nearestLevel(sm.Drag.HorLevels, p.Y, sm.Distance); ok {
		sp.Point.Y = y
		sp.Snapped = true
	}
	sp.Dist = sp.Point.DistanceTo(p)
	return sp
}

func nearestLevel(levels []float32, v, dist float32) (float32, bool) {
	best := dist
	found := false
	out := v
	for _, l := range levels {
		if d := math32.Abs(l - v); d < best {
			best = d
			out = l
			found = true
		}
	}
	return out, found
}

// ConstrainedSnap projects p onto the constraint line and then snaps
// the projection to levels along that line.
func (sm *SnapManager) ConstrainedSnap(p math32.Vector2, src SnapSources, line math32.Line2) SnappedPoint {
	q := line.ClosestPointToPoint(p)
	sp := SnappedPoint{Point: q, Snapped: true, Dist: q.DistanceTo(p)}
	return sp
}

// AngularSnap snaps the center-p direction to the nearest multiple of
// pi/divisions (offset to include the center-origin direction when
// origin is given), preserving the center-p distance. A degenerate
// zero-length center-p or center-origin segment disables the snap.
func (sm *SnapManager) AngularSnap(p math32.Vector2, origin *math32.Vector2, center math32.Vector2, divisions int) SnappedPoint {
	v := p.Sub(center)
	vl := v.Length()
	if vl == 0 || divisions <= 0 {
		return SnappedPoint{Point: p}
	}
	base := float32(0)
	if origin != nil {
		ov := origin.Sub(center)
		if ov.Length() == 0 {
			return SnappedPoint{Point: p}
		}
		base = math32.Atan2(ov.Y, ov.X)
	}
	step := math32.Pi / float32(divisions)
	ang := math32.Atan2(v.Y, v.X) - base
	ang = math32.Round(ang/step) * step
	ang += base
	q := center.Add(math32.Vec2(math32.Cos(ang), math32.Sin(ang)).MulScalar(vl))
	return SnappedPoint{Point: q, Snapped: true, Dist: q.DistanceTo(p)}
}

// BestSnap returns the successful candidate nearest to p.
func (sm *SnapManager) BestSnap(p math32.Vector2, candidates []SnappedPoint) SnappedPoint {
	best := SnappedPoint{Point: p}
	found := false
	for _, c := range candidates {
		if !c.Snapped {
			continue
		}
		if !found || c.Dist < best.Dist {
			best = c
			found = true
		}
	}
	return best
}
