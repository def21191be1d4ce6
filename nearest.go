// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradedit

import "cogentcore.org/core/math32"

// NearestSegmentTime returns the clamped 0-1 parameter of the point on
// the a-b segment nearest to p, and the distance from p to that point.
func NearestSegmentTime(p, a, b math32.Vector2) (float32, float32) {
	t := segmentOffset(p, a, b)
	return t, a.Lerp(b, t).DistanceTo(p)
}

// BezierPoint evaluates the cubic Bezier with control points
// p0, p1, p2, p3 at parameter t.
func BezierPoint(p0, p1, p2, p3 math32.Vector2, t float32) math32.Vector2 {
	u := 1 - t
	a := p0.MulScalar(u * u * u)
	b := p1.MulScalar(3 * u * u * t)
	c := p2.MulScalar(3 * u * t * t)
	d := p3.MulScalar(t * t * t)
	return a.Add(b).Add(c).Add(d)
}

// bezierDeriv evaluates the derivative of the cubic Bezier at t.
func bezierDeriv(p0, p1, p2, p3 math32.Vector2, t float32) math32.Vector2 {
	u := 1 - t
	a := p1.Sub(p0).MulScalar(3 * u * u)
	b := p2.Sub(p1).MulScalar(6 * u * t)
	c := p3.Sub(p2).MulScalar(3 * t * t)
	return a.Add(b).Add(c)
}

// NearestBezierTime returns the 0-1 parameter of the point on the cubic
// Bezier nearest to p, and the distance from p to that point. It seeds
// with a coarse sampling and refines by Newton iteration on the
// distance derivative, which is ample for hit testing at drag-handle
// tolerances.
func NearestBezierTime(p, p0, p1, p2, p3 math32.Vector2) (float32, float32) {
	const samples = 16
	best := float32(0)
	bestD2 := p0.DistanceToSquared(p)
	for i := 1; i <= samples; i++ {
		t := float32(i) / samples
		d2 := BezierPoint(p0, p1, p2, p3, t).DistanceToSquared(p)
		if d2 < bestD2 {
			bestD2 = d2
			best = t
		}
	}
	t := best
	for i := 0; i < 8; i++ {
		q := BezierPoint(p0, p1, p2, p3, t)
		dq := bezierDeriv(p0, p1, p2, p3, t)
		// f(t) = (q - p) . q' ; zero where the connector is normal to the curve
		f := q.Sub(p).Dot(dq)
		df := dq.Dot(dq) + q.Sub(p).Dot(bezierSecond(p0, p1, p2, p3, t))
		if df == 0 {
			break
		}
		nt := math32.Clamp(t-f/df, 0, 1)
		if math32.Abs(nt-t) < 1e-5 {
			t = nt
			break
		}
		t = nt
	}
	d := BezierPoint(p0, p1, p2, p3, t).DistanceTo(p)
	if bd := math32.Sqrt(bestD2); bd < d {
		return best, bd
	}
	return t, d
}

// bezierSecond evaluates the second derivative of the cubic Bezier at t.
func bezierSecond(p0, p1, p2, p3 math32.Vector2, t float32) math32.Vector2 {
	u := 1 - t
	a := p2.Sub(p1.MulScalar(2)).Add(p0).MulScalar(6 * u)
	b := p3.Sub(p2.MulScalar(2)).Add(p1).MulScalar(6 * t)
	return a.Add(b)
}
