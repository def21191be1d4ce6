// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradedit

// Selection is the ordered set of currently selected document items,
// with change and modify notifications. Changed fires when the set of
// items changes; Modified fires when the items' content (here, their
// gradients) changes in place.
type Selection struct {

	// Items are the selected items, in selection order.
	Items []*Item

	changed    map[int]func()
	modified   map[int]func()
	nextHandle int
}

// NewSelection returns a new empty [Selection].
func NewSelection() *Selection {
	return &Selection{
		changed:  map[int]func(){},
		modified: map[int]func(){},
	}
}

// SetItems replaces the selected items and fires the Changed listeners.
func (s *Selection) SetItems(items ...*Item) {
	s.Items = items
	s.NotifyChanged()
}

// Contains returns whether the given item is in the selection.
func (s *Selection) Contains(it *Item) bool {
	for _, si := range s.Items {
		if si == it {
			return true
		}
	}
	return false
}

// OnChanged registers a listener for selection-set changes,
// returning a handle for [Selection.Disconnect].
func (s *Selection) OnChanged(f func()) int {
	s.nextHandle++
	s.changed[s.nextHandle] = f
	return s.nextHandle
}

// OnModified registers a listener for in-place item modifications,
// returning a handle for [Selection.Disconnect].
func (s *Selection) OnModified(f func()) int {
	s.nextHandle++
	s.modified[s.nextHandle] = f
	return s.nextHandle
}

// Disconnect removes the listener with the given handle.
func (s *Selection) Disconnect(handle int) {
	delete(s.changed, handle)
	delete(s.modified, handle)
}

// NotifyChanged fires all Changed listeners synchronously.
func (s *Selection) NotifyChanged() {
	for _, f := range s.changed {
		f()
	}
}

// NotifyModified fires all Modified listeners synchronously.
func (s *Selection) NotifyModified() {
	for _, f := range s.modified {
		f()
	}
}
