// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradedit

import "cogentcore.org/core/math32"

// ItemCurve is one overlay segment or curve drawn for a gradient of a
// selected item: the linear axis, a radial center-radius segment, or a
// mesh patch boundary curve. Overlay curves are derived data,
// regenerated by [Drag.UpdateLines]; they double as the hit targets for
// stop insertion and color dropping.
type ItemCurve struct {

	// Item is the item the gradient belongs to.
	Item *Item

	// Target is the paint slot of the gradient.
	Target PaintTargets

	// IsCurve is whether the overlay is a cubic Bezier (mesh patch
	// side); otherwise it is the straight P0-P3 segment and P1/P2 are
	// unused.
	IsCurve bool

	// P0, P1, P2, P3 are the document-space control points.
	P0, P1, P2, P3 math32.Vector2

	// Row, Col, and Side identify the mesh patch side the curve came
	// from; Side is -1 for non-mesh overlays.
	Row, Col, Side int
}

// NearestTime returns the 0-1 parameter on the curve nearest to p and
// the distance from p to that point.
func (c *ItemCurve) NearestTime(p math32.Vector2) (float32, float32) {
	if c.IsCurve {
		return NearestBezierTime(p, c.P0, c.P1, c.P2, c.P3)
	}
	return NearestSegmentTime(p, c.P0, c.P3)
}
