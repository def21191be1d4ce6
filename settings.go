// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradedit

import "cogentcore.org/core/base/iox/tomlx"

// Settings are the user preferences consulted by the gradient editing
// engine. They are saved and loaded as TOML.
type Settings struct {

	// ShowMeshHandles is whether to create draggers for mesh gradient
	// edge handle and tensor nodes, in addition to corners.
	ShowMeshHandles bool

	// EditMeshFill is whether mesh gradients in the fill paint
	// are editable.
	EditMeshFill bool

	// EditMeshStroke is whether mesh gradients in the stroke paint
	// are editable.
	EditMeshStroke bool

	// NudgeDistance is the document-space distance moved per arrow-key
	// press; multiplied by 10 with Shift held.
	NudgeDistance float32

	// RotationSnapsPerPi is the number of angle-snap increments per
	// half turn used when dragging handles with Control held.
	RotationSnapsPerPi int

	// MoveRotated is whether keyboard nudges follow the rotated canvas
	// axes instead of document axes.
	MoveRotated bool

	// SnapDistance is the document-space distance within which free
	// snapping to item levels engages.
	SnapDistance float32
}

// Defaults sets default settings values.
func (s *Settings) Defaults() {
	s.ShowMeshHandles = true
	s.EditMeshFill = true
	s.EditMeshStroke = true
	s.NudgeDistance = 2
	s.RotationSnapsPerPi = 12
	s.MoveRotated = true
	s.SnapDistance = 3
}

// Open loads settings from the given TOML file.
func (s *Settings) Open(filename string) error {
	return tomlx.Open(s, filename)
}

// Save saves settings to the given TOML file.
func (s *Settings) Save(filename string) error {
	return tomlx.Save(s, filename)
}
