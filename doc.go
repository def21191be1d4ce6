// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gradedit implements on-canvas editing of gradient handles.
//
// A [Draggable] binds one gradient parameter (a [PointRoles] role, a stop
// or node index, and a fill or stroke [PaintTargets] target) on one [Item].
// A [Dragger] is an on-screen control point aggregating one or more
// Draggables that currently coincide; draggers merge when dragged within
// [MergeDist] of a compatible dragger and split again on Shift-drag.
// The [Drag] controller owns all draggers and overlay curves for the
// current selection, rebuilding them whenever the selection changes, and
// implements selection operations, stop insertion and deletion, color
// dropping, multi-dragger moves, and keyboard nudging.
//
// The engine is single threaded and event driven: all mutation happens in
// direct response to input events dispatched through
// [Drag.HandleDraggerEvent] or to selection notifications. Gradient edits
// are committed to the [undo] stack as labelled full-state snapshots.
package gradedit
