// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package undo provides a labelled snapshot undo stack for gradient
// editing. Each record captures the full serialized gradient state of
// the edited items as a list of strings, together with a user-visible
// action label and an optional collapse key, so that repeated
// incremental edits of the same kind (arrow-key nudges, drag steps)
// fold into a single undo step.
package undo

import "sync"

// Rec is one undo record.
type Rec struct {

	// Action is the user-visible description of the action.
	Action string

	// Key is the collapse key for the record: consecutive
	// [Stack.MaybeDone] calls with the same non-empty key update this
	// record in place instead of pushing a new one.
	Key string

	// State is the serialized state after the action.
	State []string
}

// Stack is an undo stack of full-state records. The zero value is
// ready to use once [Stack.Reset] has saved an initial state.
type Stack struct {

	// Mu protects all of the stack fields. The gradient engine itself
	// is single threaded, but tool palettes may inspect undo state
	// from other goroutines.
	Mu sync.Mutex

	// Recs are the undo records, oldest first. Recs[0] is the initial
	// state saved by [Stack.Reset].
	Recs []*Rec

	// Idx is the index of the record holding the current state.
	Idx int
}

// Reset clears the stack and saves the given state as the initial record.
func (st *Stack) Reset(state []string) {
	st.Mu.Lock()
	defer st.Mu.Unlock()
	st.Recs = []*Rec{{Action: "New", State: state}}
	st.Idx = 0
}

// Done pushes a new record with the given action label and state,
// discarding any redo records beyond the current index.
func (st *Stack) Done(action string, state []string) {
	st.Mu.Lock()
	defer st.Mu.Unlock()
	st.push(&Rec{Action: action, State: state})
}

// MaybeDone pushes a new record like [Stack.Done], except that if key
// is non-empty and matches the key of the current record, that record
// is updated in place instead, collapsing runs of incremental edits
// into one undo step. Any other intervening record breaks the run.
func (st *Stack) MaybeDone(key, action string, state []string) {
	st.Mu.Lock()
	defer st.Mu.Unlock()
	if key != "" && st.Idx >= 0 && st.Idx < len(st.Recs) {
		cur := st.Recs[st.Idx]
		if cur.Key == key {
			cur.Action = action
			cur.State = state
			st.Recs = st.Recs[:st.Idx+1] // drop any redo tail
			return
		}
	}
	st.push(&Rec{Action: action, Key: key, State: state})
}

func (st *Stack) push(r *Rec) {
	st.Recs = append(st.Recs[:st.Idx+1], r)
	st.Idx = len(st.Recs) - 1
}

// UndoAvailable returns whether there is a state to undo to.
func (st *Stack) UndoAvailable() bool {
	st.Mu.Lock()
	defer st.Mu.Unlock()
	return st.Idx > 0
}

// RedoAvailable returns whether there is a state to redo to.
func (st *Stack) RedoAvailable() bool {
	st.Mu.Lock()
	defer st.Mu.Unlock()
	return st.Idx < len(st.Recs)-1
}

// Undo moves back one record and returns it, or nil if at the initial
// state. The returned record holds the state to restore and the label
// of the action that was undone is that of the record just left.
func (st *Stack) Undo() *Rec {
	st.Mu.Lock()
	defer st.Mu.Unlock()
	if st.Idx <= 0 {
		return nil
	}
	// a collapse run ends once it has been undone past
	st.Recs[st.Idx].Key = ""
	st.Idx--
	return st.Recs[st.Idx]
}

// Redo moves forward one record and returns it,
// or nil if there is nothing to redo.
func (st *Stack) Redo() *Rec {
	st.Mu.Lock()
	defer st.Mu.Unlock()
	if st.Idx >= len(st.Recs)-1 {
		return nil
	}
	st.Idx++
	return st.Recs[st.Idx]
}
