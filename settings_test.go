// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradedit

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettingsDefaults(t *testing.T) {
	s := &Settings{}
	s.Defaults()
	assert.True(t, s.ShowMeshHandles)
	assert.True(t, s.EditMeshFill)
	assert.True(t, s.EditMeshStroke)
	assert.Equal(t, float32(2), s.NudgeDistance)
	assert.Equal(t, 12, s.RotationSnapsPerPi)
	assert.True(t, s.MoveRotated)
	assert.Equal(t, float32(3), s.SnapDistance)
}

func TestSettingsSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "settings.toml")
	s := &Settings{}
	s.Defaults()
	s.ShowMeshHandles = false
	s.NudgeDistance = 5
	assert.NoError(t, s.Save(fn))

	var l Settings
	l.Defaults()
	assert.NoError(t, l.Open(fn))
	assert.False(t, l.ShowMeshHandles)
	assert.Equal(t, float32(5), l.NudgeDistance)
	assert.Equal(t, 12, l.RotationSnapsPerPi)
}
