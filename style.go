// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradedit

import (
	"image/color"
	"strconv"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/gradedit/gradient"
	"github.com/aymerick/douceur/parser"
)

// stopColorPriority ranks the CSS color properties that can carry a
// stop color, lowest first; when several appear in one declaration
// block, the highest-priority one wins.
var stopColorPriority = map[string]int{
	"flood-color":    1,
	"lighting-color": 2,
	"color":          3,
	"stroke":         4,
	"fill":           5,
	"stop-color":     6,
}

// StyleSet routes a CSS declaration block applied while gradient
// editing is active onto the selected gradient stops instead of the
// object style, returning whether it was handled. The stop color is
// taken from the highest-priority color property present; opacity
// properties multiply into the stop opacity; a color value of "none"
// zeroes the opacity without changing the color; a url(#id) value
// resolves to the first stop color of the referenced gradient. With
// switchStyle (the caller is swapping fill and stroke styles wholesale)
// only mesh node colors are routed; linear and radial gradients are
// left to object-style handling.
func (dr *Drag) StyleSet(cssText string, switchStyle bool) bool {
	if len(dr.Selected) == 0 {
		return false
	}
	decls, err := parser.ParseDeclarations(cssText)
	if err != nil {
		errors.Log(err)
		return false
	}
	pri := 0
	colorVal := ""
	opacity := float32(1)
	hasOpacity := false
	for _, d := range decls {
		prop := strings.ToLower(strings.TrimSpace(d.Property))
		val := strings.TrimSpace(d.Value)
		if p, ok := stopColorPriority[prop]; ok && p > pri {
			pri = p
			colorVal = val
		}
		switch prop {
		case "opacity", "fill-opacity", "stroke-opacity", "stop-opacity":
			if f, err := strconv.ParseFloat(val, 32); err == nil {
				opacity *= math32.Clamp(float32(f), 0, 1)
				hasOpacity = true
			}
		}
	}
	if pri == 0 && !hasOpacity {
		return false
	}
	var c color.RGBA
	hasColor := false
	if colorVal != "" {
		var ok bool
		c, opacity, hasColor, ok = dr.resolveStopColor(colorVal, opacity)
		if !ok {
			return false
		}
	}
	changed := false
	for _, dg := range dr.Selected {
		for _, d := range dg.Draggables {
			if dr.applyStopStyle(d, c, hasColor, opacity, switchStyle) {
				changed = true
			}
		}
	}
	if !changed {
		return false
	}
	dr.WriteBack()
	dr.Done("Change gradient stop color")
	return true
}

// resolveStopColor parses a CSS color value into a stop color and
// opacity: "none" keeps the color and zeroes the opacity, and url(#id)
// resolves to the first stop color of the referenced gradient. The
// third result reports whether the color itself should be applied.
func (dr *Drag) resolveStopColor(val string, opacity float32) (color.RGBA, float32, bool, bool) {
	if val == "none" {
		return color.RGBA{}, 0, false, true
	}
	if strings.HasPrefix(val, "url(#") {
		id := strings.TrimSuffix(strings.TrimPrefix(val, "url(#"), ")")
		ref, ok := dr.View.Gradients[id]
		if !ok {
			return color.RGBA{}, 0, false, false
		}
		stops := ref.AsBase().Stops
		if len(stops) == 0 {
			return color.RGBA{}, 0, false, false
		}
		return stops[0].Color, opacity * stops[0].Opacity, true, true
	}
	c, err := colors.FromString(val)
	if err != nil {
		errors.Log(err)
		return color.RGBA{}, 0, false, false
	}
	return c, opacity, true, true
}

// applyStopStyle applies a stop color and opacity to the stop or mesh
// node bound by d. The radial focus binds no stop of its own.
func (dr *Drag) applyStopStyle(d *Draggable, c color.RGBA, hasColor bool, opacity float32, switchStyle bool) bool {
	srv := d.Server()
	if srv == nil {
		return false
	}
	if g, ok := srv.(*gradient.Mesh); ok {
		if d.Role != MeshCorner {
			return false
		}
		g.EnsureArray()
		if d.Index >= len(g.Corners) {
			return false
		}
		n := g.Corners[d.Index]
		if hasColor {
			n.Color = c
		}
		n.Opacity = opacity
		n.Set = true
		return true
	}
	if switchStyle {
		return false
	}
	i, ok := stopIndexFor(d)
	if !ok {
		return false
	}
	b := srv.AsBase()
	if i >= len(b.Stops) {
		return false
	}
	if hasColor {
		b.Stops[i].Color = c
	}
	b.Stops[i].Opacity = opacity
	return true
}

// stopIndexFor maps a linear or radial draggable onto the index of the
// stop it carries the color of; false for the focus, which has none.
func stopIndexFor(d *Draggable) (int, bool) {
	switch d.Role {
	case LinearBegin, LinearEnd, LinearMid, RadialCenter, RadialR1, RadialR2, RadialMid1, RadialMid2:
		return d.Index, true
	}
	return 0, false
}

// GetColor returns the average color of all stops and mesh nodes bound
// by the selected draggers, with stop opacity premultiplied into alpha.
func (dr *Drag) GetColor() color.RGBA {
	var r, g, b, a, n float32
	acc := func(c color.RGBA, op float32) {
		r += float32(c.R)
		g += float32(c.G)
		b += float32(c.B)
		a += float32(c.A) * op
		n++
	}
	for _, dg := range dr.Selected {
		for _, d := range dg.Draggables {
			srv := d.Server()
			if srv == nil {
				continue
			}
			if mg, ok := srv.(*gradient.Mesh); ok {
				if d.Role != MeshCorner {
					continue
				}
				mg.EnsureArray()
				if d.Index < len(mg.Corners) {
					nd := mg.Corners[d.Index]
					acc(nd.Color, nd.Opacity)
				}
				continue
			}
			if i, ok := stopIndexFor(d); ok {
				stops := srv.AsBase().Stops
				if i < len(stops) {
					acc(stops[i].Color, stops[i].Opacity)
				}
			}
		}
	}
	if n == 0 {
		return color.RGBA{}
	}
	return color.RGBA{
		R: uint8(math32.Round(r / n)),
		G: uint8(math32.Round(g / n)),
		B: uint8(math32.Round(b / n)),
		A: uint8(math32.Round(a / n)),
	}
}

// DropColor applies a dropped color at the document point p: within a
// small screen-space distance of an existing dragger it recolors that
// dragger's stops at full opacity; otherwise, if p lies on an overlay
// line or curve, it inserts a new stop there and colors it. It returns
// whether any stop was created or modified.
func (dr *Drag) DropColor(it *Item, colorStr string, p math32.Vector2) bool {
	c, err := colors.FromString(colorStr)
	if err != nil {
		errors.Log(err)
		return false
	}
	tol := float32(5)
	if dr.View.Zoom > 0 {
		tol /= dr.View.Zoom
	}
	for _, dg := range dr.Draggers {
		if dg.Point.DistanceTo(p) >= tol {
			continue
		}
		changed := false
		for _, d := range dg.Draggables {
			if dr.applyStopStyle(d, c, true, 1, false) {
				changed = true
			}
		}
		if !changed {
			return false
		}
		dr.WriteBack()
		dr.Done("Change gradient stop color")
		return true
	}
	for _, cv := range dr.Curves {
		if _, d := cv.NearestTime(p); d < tol {
			dg := dr.AddStopNearPoint(it, p, tol)
			if dg == nil {
				return false
			}
			for _, d := range dg.Draggables {
				dr.applyStopStyle(d, c, true, 1, false)
			}
			dr.WriteBack()
			dr.Done("Change gradient stop color")
			return true
		}
	}
	return false
}
