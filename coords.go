// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradedit

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/gradedit/gradient"
)

// MergeDist is the document-space distance within which coincident
// draggables are merged into one dragger during rebuild, and within
// which a dragged dragger snaps onto a compatible one.
const MergeDist = 0.1

// gradientToDoc returns the composed transform from gradient space to
// document space for the given item and gradient.
func gradientToDoc(it *Item, b *gradient.Base) math32.Matrix2 {
	return it.Transform.Mul(b.Transform)
}

// GradientCoords resolves the document-space position of the gradient
// parameter bound by (item, role, index, target), reading the server's
// raw parameters and applying the gradient and item transforms. It
// returns false if the binding does not resolve (no gradient, wrong
// kind for the role, or index out of range).
func GradientCoords(it *Item, role PointRoles, index int, target PaintTargets) (math32.Vector2, bool) {
	srv := it.Paint(target).Gradient
	if srv == nil {
		return math32.Vector2{}, false
	}
	var p math32.Vector2
	switch g := srv.(type) {
	case *gradient.Linear:
		switch role {
		case LinearBegin:
			p = g.Start
		case LinearEnd:
			p = g.End
		case LinearMid:
			if index < 0 || index >= len(g.Stops) {
				return math32.Vector2{}, false
			}
			p = g.Start.Lerp(g.End, g.Stops[index].Pos)
		default:
			return math32.Vector2{}, false
		}
	case *gradient.Radial:
		r1 := g.Center.Add(math32.Vec2(g.Radius, 0))
		r2 := g.Center.Add(math32.Vec2(0, -g.Radius))
		switch role {
		case RadialCenter:
			p = g.Center
		case RadialFocus:
			p = g.Focal
		case RadialR1:
			p = r1
		case RadialR2:
			p = r2
		case RadialMid1:
			if index < 0 || index >= len(g.Stops) {
				return math32.Vector2{}, false
			}
			p = g.Center.Lerp(r1, g.Stops[index].Pos)
		case RadialMid2:
			if index < 0 || index >= len(g.Stops) {
				return math32.Vector2{}, false
			}
			p = g.Center.Lerp(r2, g.Stops[index].Pos)
		default:
			return math32.Vector2{}, false
		}
	case *gradient.Mesh:
		g.EnsureArray()
		var nodes []*gradient.MeshNode
		switch role {
		case MeshCorner:
			nodes = g.Corners
		case MeshHandle:
			nodes = g.Handles
		case MeshTensor:
			nodes = g.Tensors
		default:
			return math32.Vector2{}, false
		}
		if index < 0 || index >= len(nodes) {
			return math32.Vector2{}, false
		}
		p = nodes[index].Pos
	default:
		return math32.Vector2{}, false
	}
	return gradientToDoc(it, srv.AsBase()).MulVector2AsPoint(p), true
}

// SetGradientCoords converts the desired document-space point into the
// server's native parameterization and mutates the server; the inverse
// of [GradientCoords]. For the radial radius roles, the angular change
// is carried by rotating the gradient transform about the center; the
// radial change either rescales that transform axis (keeping the raw
// radius, so the two radii stay independent) or, with scaleRadial, sets
// the raw radius itself, rescaling both radii symmetrically. It returns
// false if the binding does not resolve.
func SetGradientCoords(it *Item, role PointRoles, index int, target PaintTargets, p math32.Vector2, scaleRadial bool) bool {
	srv := it.Paint(target).Gradient
	if srv == nil {
		return false
	}
	b := srv.AsBase()
	pg := gradientToDoc(it, b).Inverse().MulVector2AsPoint(p)
	switch g := srv.(type) {
	case *gradient.Linear:
		switch role {
		case LinearBegin:
			g.Start = pg
		case LinearEnd:
			g.End = pg
		case LinearMid:
			if index < 0 || index >= len(g.Stops) {
				return false
			}
			g.Stops[index].Pos = segmentOffset(pg, g.Start, g.End)
		default:
			return false
		}
	case *gradient.Radial:
		switch role {
		case RadialCenter:
			delta := pg.Sub(g.Center)
			g.Center = pg
			g.Focal = g.Focal.Add(delta)
		case RadialFocus:
			g.Focal = pg
		case RadialR1:
			setRadialRadius(g, pg, 0, scaleRadial)
		case RadialR2:
			setRadialRadius(g, pg, 1, scaleRadial)
		case RadialMid1:
			if index < 0 || index >= len(g.Stops) || g.Radius == 0 {
				return false
			}
			g.Stops[index].Pos = math32.Clamp((pg.X-g.Center.X)/g.Radius, 0, 1)
		case RadialMid2:
			if index < 0 || index >= len(g.Stops) || g.Radius == 0 {
				return false
			}
			g.Stops[index].Pos = math32.Clamp(-(pg.Y-g.Center.Y)/g.Radius, 0, 1)
		default:
			return false
		}
	case *gradient.Mesh:
		g.EnsureArray()
		var nodes []*gradient.MeshNode
		switch role {
		case MeshCorner:
			nodes = g.Corners
		case MeshHandle:
			nodes = g.Handles
		case MeshTensor:
			nodes = g.Tensors
		default:
			return false
		}
		if index < 0 || index >= len(nodes) {
			return false
		}
		nodes[index].Pos = pg
		nodes[index].Set = true
	default:
		return false
	}
	return true
}

// setRadialRadius applies a dragged radius handle position pg (gradient
// space) to the radial gradient g. axis is 0 for the R1 handle (raw
// position center+(r,0)) and 1 for R2 (center+(0,-r)). The rotation
// away from the raw axis goes into the gradient transform; the length
// change either sets the raw radius (scaleRadial, symmetric) or scales
// the one axis in the transform.
func setRadialRadius(g *gradient.Radial, pg math32.Vector2, axis int, scaleRadial bool) {
	v := pg.Sub(g.Center)
	vl := v.Length()
	if vl == 0 || g.Radius == 0 {
		return
	}
	ang := math32.Atan2(v.Y, v.X)
	if axis == 1 {
		ang += math32.Pi / 2
	}
	if scaleRadial {
		g.Radius = vl
		g.Transform = g.Transform.Mul(rotateAbout(g.Center, ang))
		return
	}
	s := vl / g.Radius
	sx, sy := s, float32(1)
	if axis == 1 {
		sx, sy = 1, s
	}
	g.Transform = g.Transform.
		Mul(rotateAbout(g.Center, ang)).
		Mul(scaleAbout(g.Center, sx, sy))
}

// rotateAbout returns the matrix rotating by ang radians about c.
func rotateAbout(c math32.Vector2, ang float32) math32.Matrix2 {
	return math32.Translate2D(c.X, c.Y).
		Mul(math32.Rotate2D(ang)).
		Mul(math32.Translate2D(-c.X, -c.Y))
}

// scaleAbout returns the matrix scaling by (sx, sy) about c.
func scaleAbout(c math32.Vector2, sx, sy float32) math32.Matrix2 {
	return math32.Translate2D(c.X, c.Y).
		Mul(math32.Scale2D(sx, sy)).
		Mul(math32.Translate2D(-c.X, -c.Y))
}

// segmentOffset returns the clamped 0-1 parametric offset of the
// projection of p onto the a-b segment. Offsets along a line are
// affine invariant, so this may be computed in any space.
func segmentOffset(p, a, b math32.Vector2) float32 {
	d := b.Sub(a)
	l2 := d.LengthSquared()
	if l2 == 0 {
		return 0
	}
	return math32.Clamp(p.Sub(a).Dot(d)/l2, 0, 1)
}
