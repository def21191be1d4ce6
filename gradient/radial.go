// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import "cogentcore.org/core/math32"

// Radial represents a radial gradient paint server. The raw gradient is
// always a circle of the given Radius around Center; ellipticity and
// rotation produced by editing the two radius handles independently are
// carried in the gradient Transform.
type Radial struct {
	Base

	// Center is the center point of the gradient (cx and cy in SVG).
	Center math32.Vector2

	// Focal is the focal point of the gradient (fx and fy in SVG).
	Focal math32.Vector2

	// Radius is the radius of the gradient (r in SVG).
	Radius float32
}

// NewRadial returns a new [Radial] gradient with default values.
func NewRadial() *Radial {
	return &Radial{
		Base: NewBase(),
		// default SVG radial gradient is a centered unit circle
		Center: math32.Vector2Scalar(0.5),
		Focal:  math32.Vector2Scalar(0.5),
		Radius: 0.5,
	}
}

// AsBase returns the [Base] of the gradient server.
func (r *Radial) AsBase() *Base {
	return &r.Base
}
