// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradedit

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/gradedit/gradient"
)

// AddStopNearPoint hit-tests the document point p against the item's
// fill gradient first and then its stroke gradient, stopping at the
// first whose overlay line or curve is within tolerance. For a linear
// or radial gradient it inserts a new stop at the interpolated offset
// between the straddling pair of existing stops and selects the new
// stop's dragger, which it returns. For a mesh gradient it splits the
// nearest patch row or column at the interpolated curve parameter and
// returns nil. It returns nil without effect when nothing is in range
// or the insertion cannot resolve a straddling pair.
func (dr *Drag) AddStopNearPoint(it *Item, p math32.Vector2, tolerance float32) *Dragger {
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
			a, _ := GradientCoords(it, LinearBegin, 0, target)
			b, _ := GradientCoords(it, LinearEnd, 0, target)
			t, d := NearestSegmentTime(p, a, b)
			if d >= tolerance {
				continue
			}
			return dr.insertStop(it, target, g.AsBase(), t)
		case *gradient.Radial:
			if g.IsSolid() {
				continue
			}
			c, _ := GradientCoords(it, RadialCenter, 0, target)
			r1, _ := GradientCoords(it, RadialR1, 0, target)
			r2, _ := GradientCoords(it, RadialR2, 0, target)
			t1, d1 := NearestSegmentTime(p, c, r1)
			t2, d2 := NearestSegmentTime(p, c, r2)
			t, d := t1, d1
			if d2 < d1 {
				t, d = t2, d2
			}
			if d >= tolerance {
				continue
			}
			return dr.insertStop(it, target, g.AsBase(), t)
		case *gradient.Mesh:
			if dr.splitMeshNear(it, target, g, p, tolerance) {
				return nil
			}
		}
	}
	return nil
}

// insertStop inserts a stop at offset t, rebuilds the draggers, and
// selects and returns the new stop's dragger.
func (dr *Drag) insertStop(it *Item, target PaintTargets, b *gradient.Base, t float32) *Dragger {
	i := b.InsertStopAt(t)
	if i < 0 {
		return nil
	}
	dr.WriteBackFull()
	dg := dr.SelectByStop(it, i, target)
	dr.Done("Add gradient stop")
	return dg
}

// splitMeshNear finds the mesh patch boundary curve nearest to p within
// tolerance and splits the corresponding patch row or column at the
// interpolated curve parameter. Horizontal sides split a column,
// vertical sides split a row; the parameter is flipped on the bottom
// and left sides, which run counter to the grid direction.
func (dr *Drag) splitMeshNear(it *Item, target PaintTargets, g *gradient.Mesh, p math32.Vector2, tolerance float32) bool {
	var best *ItemCurve
	bestT := float32(0)
	bestD := tolerance
	for _, c := range dr.Curves {
		if c.Item != it || c.Target != target || !c.IsCurve {
			continue
		}
		t, d := c.NearestTime(p)
		if d < bestD {
			best, bestT, bestD = c, t, d
		}
	}
	if best == nil {
		return false
	}
	switch best.Side {
	case 0:
		g.SplitColumn(best.Col, bestT)
	case 2:
		g.SplitColumn(best.Col, 1-bestT)
	case 1:
		g.SplitRow(best.Row, bestT)
	default:
		g.SplitRow(best.Row, 1-bestT)
	}
	g.EnsureArray()
	dr.WriteBackFull()
	dr.Done("Split gradient mesh")
	return true
}

// stopRef identifies one stop of one gradient for deletion.
type stopRef struct {
	it     *Item
	target PaintTargets
	index  int
	end    bool
}

// DeleteSelected deletes the gradient stops bound by the selected
// draggers, or only the first one found with justOne. A mid stop is
// simply removed. An end stop (begin, end, center, or radius) is
// removable only while more than 2 stops remain; the surviving offsets
// are then renormalized and the gradient frame moved so the surviving
// stops keep their on-canvas positions. When only 2 stops remain, the
// gradient is instead unset entirely, flattening the paint to the
// surviving stop's color. One undo transaction per invocation.
func (dr *Drag) DeleteSelected(justOne bool) {
	var refs []stopRef
	add := func(r stopRef) {
		for _, e := range refs {
			if e.it == r.it && e.target == r.target && e.index == r.index {
				return
			}
		}
		refs = append(refs, r)
	}
outer:
	for _, dg := range dr.Selected {
		for _, d := range dg.Draggables {
			srv := d.Server()
			if srv == nil {
				continue
			}
			n := len(srv.AsBase().Stops)
			switch d.Role {
			case LinearMid, RadialMid1, RadialMid2:
				add(stopRef{d.Item, d.Target, d.Index, false})
			case LinearBegin, RadialCenter:
				add(stopRef{d.Item, d.Target, 0, true})
			case LinearEnd, RadialR1, RadialR2:
				add(stopRef{d.Item, d.Target, n - 1, true})
			default:
				continue // focus and mesh roles have no stop to delete
			}
			if justOne {
				break outer
			}
		}
	}
	if len(refs) == 0 {
		return
	}
	// delete descending per gradient so earlier indices stay valid
	for i := 0; i < len(refs); i++ {
		for j := i + 1; j < len(refs); j++ {
			a, b := refs[i], refs[j]
			if a.it == b.it && a.target == b.target && b.index > a.index {
				refs[i], refs[j] = b, a
			}
		}
	}
	changed := false
	for _, r := range refs {
		if dr.deleteStop(r) {
			changed = true
		}
	}
	if !changed {
		return
	}
	dr.WriteBackFull()
	dr.Done("Delete gradient stop")
}

func (dr *Drag) deleteStop(r stopRef) bool {
	srv := r.it.Paint(r.target).Gradient
	if srv == nil {
		return false
	}
	b := srv.AsBase()
	n := len(b.Stops)
	if r.index < 0 || r.index >= n || n < 2 {
		return false
	}
	if !r.end {
		if n <= 2 {
			return false
		}
		return b.RemoveStop(r.index)
	}
	if n <= 2 {
		// unset the gradient, flattening to the surviving stop color
		surv := b.Stops[0]
		if r.index == 0 && n > 1 {
			surv = b.Stops[1]
		}
		paint := r.it.Paint(r.target)
		paint.Gradient = nil
		paint.Color = surv.Color
		paint.Opacity = surv.Opacity
		return true
	}
	if r.index == 0 {
		off := b.Stops[1].Pos
		b.RemoveStop(0)
		if off < 1 {
			for i := range b.Stops {
				b.Stops[i].Pos = (b.Stops[i].Pos - off) / (1 - off)
			}
		}
		switch g := srv.(type) {
		case *gradient.Linear:
			g.Start = g.Start.Lerp(g.End, off)
		}
		// a radial center stop deletion cannot preserve positions:
		// the center stays and only offsets renormalize
		return true
	}
	off := b.Stops[n-2].Pos
	b.RemoveStop(n - 1)
	if off > 0 {
		for i := range b.Stops {
			b.Stops[i].Pos = b.Stops[i].Pos / off
		}
	}
	switch g := srv.(type) {
	case *gradient.Linear:
		g.End = g.Start.Lerp(g.End, off)
	case *gradient.Radial:
		g.Radius *= off
	}
	return true
}

// SelectedReverseVector reverses the stop order of every gradient with
// a selected dragger, flipping the gradient direction while keeping the
// stops' on-canvas positions.
func (dr *Drag) SelectedReverseVector() {
	done := map[*gradient.Base]bool{}
	changed := false
	for _, dg := range dr.Selected {
		for _, d := range dg.Draggables {
			srv := d.Server()
			if srv == nil || d.Role.IsMesh() {
				continue
			}
			b := srv.AsBase()
			if done[b] {
				continue
			}
			done[b] = true
			b.ReverseStops()
			changed = true
		}
	}
	if !changed {
		return
	}
	dr.WriteBackFull()
	dr.Done("Invert gradient")
}
