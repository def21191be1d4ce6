// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package undo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoneUndoRedo(t *testing.T) {
	st := &Stack{}
	st.Reset([]string{"a"})
	assert.False(t, st.UndoAvailable())
	assert.Nil(t, st.Undo())

	st.Done("Move gradient", []string{"b"})
	st.Done("Add gradient stop", []string{"c"})
	assert.True(t, st.UndoAvailable())
	assert.False(t, st.RedoAvailable())

	r := st.Undo()
	assert.Equal(t, []string{"b"}, r.State)
	r = st.Undo()
	assert.Equal(t, []string{"a"}, r.State)
	assert.Nil(t, st.Undo())

	r = st.Redo()
	assert.Equal(t, []string{"b"}, r.State)
	r = st.Redo()
	assert.Equal(t, []string{"c"}, r.State)
	assert.Nil(t, st.Redo())
}

func TestDoneDropsRedoTail(t *testing.T) {
	st := &Stack{}
	st.Reset([]string{"a"})
	st.Done("Move gradient", []string{"b"})
	st.Done("Move gradient", []string{"c"})
	st.Undo()
	st.Undo()
	st.Done("Delete gradient stop", []string{"d"})
	assert.False(t, st.RedoAvailable())
	assert.Equal(t, []string{"a"}, st.Undo().State)
}

func TestMaybeDoneCollapses(t *testing.T) {
	st := &Stack{}
	st.Reset([]string{"a"})
	st.MaybeDone("grmove", "Move gradient", []string{"b"})
	st.MaybeDone("grmove", "Move gradient", []string{"c"})
	st.MaybeDone("grmove", "Move gradient", []string{"d"})
	assert.Equal(t, 2, len(st.Recs))

	// a different key breaks the run
	st.MaybeDone("grdrag", "Drag gradient", []string{"e"})
	assert.Equal(t, 3, len(st.Recs))

	r := st.Undo()
	assert.Equal(t, []string{"d"}, r.State)
	r = st.Undo()
	assert.Equal(t, []string{"a"}, r.State)
}

func TestMaybeDoneAfterUndo(t *testing.T) {
	st := &Stack{}
	st.Reset([]string{"a"})
	st.MaybeDone("grmove", "Move gradient", []string{"b"})
	st.Undo()
	// undoing ends the collapse run: the next same-key edit is new
	st.MaybeDone("grmove", "Move gradient", []string{"c"})
	assert.Equal(t, 2, len(st.Recs))
	assert.Equal(t, []string{"a"}, st.Undo().State)
}
