// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package timeline

import (
	"fmt"

	"github.com/ultrabear/history-stack/common"
	"github.com/ultrabear/history-stack/common/result"
)

// Stack wraps a value of type T together with its undo/redo history.
type Stack[T any] struct {
	// history is never empty; history[cursor] is the current value.
	history []T
	cursor  int

	copier     common.Copier[T]
	maxEntries int // 0 if unbounded
}

var _ common.Transparent[int] = (*Stack[int])(nil)

// New creates a Stack with start as its only entry. By default Save
// deep-copies the current value, see common.DeepCopier.
func New[T any](start T, opts ...Option[T]) *Stack[T] {
	s := &Stack[T]{
		history: []T{start},
		copier:  common.DeepCopier[T](),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save commits a copy of the current value as a new entry and makes it the
// current value. All entries that could have been restored by Redo are
// discarded. The returned pointer provides access to the new entry so that it
// can be modified in place; it must not be used after the next mutating call
// on the Stack.
func (s *Stack[T]) Save() *T {
	s.checkInvariants()
	s.truncateFuture()
	s.commit(s.snapshot(s.history[s.cursor]))
	s.checkInvariants()
	return &s.history[s.cursor]
}

// Push commits value as a new entry and makes it the current value. Like
// Save, it discards all entries that could have been restored by Redo.
func (s *Stack[T]) Push(value T) {
	s.checkInvariants()
	s.truncateFuture()
	s.commit(value)
	s.checkInvariants()
}

// Undo moves the cursor to the previous entry. On success the result holds a
// pointer to the new current entry. If the cursor is already at the first
// entry it is not moved and the result reports ErrNothingToUndo together with
// a pointer to that first entry.
func (s *Stack[T]) Undo() result.Result[*T] {
	s.checkInvariants()
	if s.cursor == 0 {
		return result.Err(&s.history[0], ErrNothingToUndo)
	}
	s.cursor--
	return result.Ok(&s.history[s.cursor])
}

// Redo moves the cursor to the next entry. On success the result holds a
// pointer to the new current entry. If there is no later entry the cursor is
// not moved and the result reports ErrNothingToRedo together with a pointer to
// the unchanged current entry.
func (s *Stack[T]) Redo() result.Result[*T] {
	s.checkInvariants()
	if s.cursor+1 >= len(s.history) {
		return result.Err(&s.history[s.cursor], ErrNothingToRedo)
	}
	s.cursor++
	return result.Ok(&s.history[s.cursor])
}

// Get returns the current value.
func (s *Stack[T]) Get() T {
	return s.history[s.cursor]
}

// Ptr provides mutable access to the current entry. The pointer must not be
// used after the next mutating call on the Stack.
func (s *Stack[T]) Ptr() *T {
	return &s.history[s.cursor]
}

// Set replaces the current entry in place, without committing a new one.
func (s *Stack[T]) Set(value T) {
	s.history[s.cursor] = value
}

// Len returns the number of retained entries, including the current one.
func (s *Stack[T]) Len() int {
	return len(s.history)
}

// Cursor returns the index of the current entry.
func (s *Stack[T]) Cursor() int {
	return s.cursor
}

// UndoCount returns the number of entries before the current one.
func (s *Stack[T]) UndoCount() int {
	return s.cursor
}

// RedoCount returns the number of entries after the current one.
func (s *Stack[T]) RedoCount() int {
	return len(s.history) - s.cursor - 1
}

// CanUndo returns true if undo is available.
func (s *Stack[T]) CanUndo() bool {
	return s.cursor > 0
}

// CanRedo returns true if redo is available.
func (s *Stack[T]) CanRedo() bool {
	return s.cursor+1 < len(s.history)
}

// Clear drops all entries except the current one.
func (s *Stack[T]) Clear() {
	s.checkInvariants()
	current := s.history[s.cursor]
	clear(s.history)
	s.history = append(s.history[:0], current)
	s.cursor = 0
}

// Clone creates an independent Stack holding copies of all entries, with the
// same cursor position, copier and retention bound.
func (s *Stack[T]) Clone() *Stack[T] {
	s.checkInvariants()
	res := &Stack[T]{
		history:    make([]T, len(s.history), cap(s.history)),
		cursor:     s.cursor,
		copier:     s.copier,
		maxEntries: s.maxEntries,
	}
	for i, value := range s.history {
		res.history[i] = s.snapshot(value)
	}
	return res
}

// String formats the current value only, so a Stack prints like the value
// it stands in for.
func (s *Stack[T]) String() string {
	return fmt.Sprint(s.history[s.cursor])
}

// GoString shows the internal structure of the Stack, used by %#v.
func (s *Stack[T]) GoString() string {
	return fmt.Sprintf("timeline.Stack{cursor: %d, history: %#v}", s.cursor, s.history)
}

// truncateFuture drops all entries after the cursor. Dropped slots are
// zeroed to release the values they reference.
func (s *Stack[T]) truncateFuture() {
	clear(s.history[s.cursor+1:])
	s.history = s.history[:s.cursor+1]
}

// commit adds a new entry after the cursor, which must be at the last entry,
// and moves the cursor onto it.
func (s *Stack[T]) commit(value T) {
	s.history = append(s.history, value)
	s.cursor++

	if s.maxEntries == 0 || len(s.history) <= s.maxEntries {
		return
	}
	excess := len(s.history) - s.maxEntries
	clear(s.history[:excess])
	s.history = s.history[excess:]
	s.cursor -= excess
}

func (s *Stack[T]) snapshot(value T) T {
	if s.copier == nil {
		s.copier = common.DeepCopier[T]()
	}
	return s.copier.Copy(value)
}

func (s *Stack[T]) checkInvariants() {
	if !common.DebugChecks {
		return
	}
	common.Assert(len(s.history) > 0, "history is empty")
	common.Assert(s.cursor >= 0 && s.cursor < len(s.history),
		"cursor %d out of range, history has %d entries", s.cursor, len(s.history))
}
