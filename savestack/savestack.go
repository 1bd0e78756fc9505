// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package savestack

import (
	"fmt"

	"github.com/ultrabear/history-stack/common"
)

// Stack wraps a current value of type T together with a stack of previously
// saved values. The zero value is ready to use: it holds the zero T, no
// stored values and copies with common.DeepCopier.
type Stack[T any] struct {
	stack   []T
	current T
	copier  common.Copier[T]
}

var _ common.Transparent[int] = (*Stack[int])(nil)

// Option configures a Stack during creation.
type Option[T any] func(*Stack[T])

// WithCopier sets the strategy used by Push to copy the current value.
// A nil copier is ignored.
func WithCopier[T any](copier common.Copier[T]) Option[T] {
	return func(s *Stack[T]) {
		if copier != nil {
			s.copier = copier
		}
	}
}

// New creates a Stack with the given current value and no checkpoints.
// By default Push deep-copies the current value, see common.DeepCopier.
func New[T any](value T, opts ...Option[T]) *Stack[T] {
	s := &Stack[T]{
		current: value,
		copier:  common.DeepCopier[T](),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Push stores a copy of the current value on the stack. The current value is
// not modified.
func (s *Stack[T]) Push() {
	s.stack = append(s.stack, s.snapshot(s.current))
}

// PushValue moves the current value onto the stack and makes value the new
// current value.
func (s *Stack[T]) PushValue(value T) {
	s.stack = append(s.stack, s.current)
	s.current = value
}

// Pop restores the most recently stored value as the current value and
// returns the value it replaced. If there is nothing to restore, the zero
// value and false are returned and the current value is left untouched.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	n := len(s.stack)
	if n == 0 {
		return zero, false
	}
	prev := s.current
	s.current = s.stack[n-1]
	s.stack[n-1] = zero
	s.stack = s.stack[:n-1]
	return prev, true
}

// Get returns the current value.
func (s *Stack[T]) Get() T {
	return s.current
}

// Ptr provides mutable access to the current value. The pointer refers to the
// current slot of the Stack, after PushValue, Pop or Set it observes the new
// current value.
func (s *Stack[T]) Ptr() *T {
	return &s.current
}

// Set replaces the current value without touching the stored values.
func (s *Stack[T]) Set(value T) {
	s.current = value
}

// Len returns the number of stored values.
func (s *Stack[T]) Len() int {
	return len(s.stack)
}

// Clear drops all stored values, keeping the current value.
func (s *Stack[T]) Clear() {
	clear(s.stack)
	s.stack = s.stack[:0]
}

// Clone creates an independent Stack with copies of the current value and of
// all stored values. The clone uses the same copier.
func (s *Stack[T]) Clone() *Stack[T] {
	current := s.snapshot(s.current)
	res := &Stack[T]{
		current: current,
		copier:  s.copier,
	}
	if len(s.stack) > 0 {
		res.stack = make([]T, len(s.stack), cap(s.stack))
		for i, value := range s.stack {
			res.stack[i] = s.snapshot(value)
		}
	}
	return res
}

// String formats the current value only, so a Stack prints like the value
// it stands in for.
func (s *Stack[T]) String() string {
	return fmt.Sprint(s.current)
}

// GoString shows the internal structure of the Stack, used by %#v.
func (s *Stack[T]) GoString() string {
	return fmt.Sprintf("savestack.Stack{current: %#v, stack: %#v}", s.current, s.stack)
}

func (s *Stack[T]) snapshot(value T) T {
	if s.copier == nil {
		s.copier = common.DeepCopier[T]()
	}
	return s.copier.Copy(value)
}
