// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import "cogentcore.org/core/math32"

// Linear represents a linear gradient paint server, with gradient
// coordinates running from Start to End in gradient space.
type Linear struct {
	Base

	// Start is the starting point of the gradient (x1 and y1 in SVG).
	Start math32.Vector2

	// End is the ending point of the gradient (x2 and y2 in SVG).
	End math32.Vector2
}

// NewLinear returns a new [Linear] gradient with default values.
func NewLinear() *Linear {
	return &Linear{
		Base: NewBase(),
		// default SVG linear gradient is LTR
		End: math32.Vec2(1, 0),
	}
}

// AsBase returns the [Base] of the gradient server.
func (l *Linear) AsBase() *Base {
	return &l.Base
}
