// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package result

// Result encapsulates a value along with an error. Unlike the usual Go
// convention of a (value, error) pair, the value of a Result stays meaningful
// if the error is set: a failed operation still reports the state it left
// behind. This is used for cursor moves which either succeed and yield the new
// position, or fail and yield the unchanged one.
type Result[T any] struct {
	value T
	err   error
}

// Ok creates a Result representing a successful outcome with the given value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err creates a Result representing a failed outcome. The given value is the
// one left in place by the failed operation.
func Err[T any](value T, err error) Result[T] {
	return Result[T]{value: value, err: err}
}

// Get returns the value and error contained in the Result. Using this function
// forces the caller to handle potential errors.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Value returns the contained value, regardless of the outcome.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the error of a failed outcome, nil otherwise.
func (r Result[T]) Err() error {
	return r.err
}

// IsOk reports whether the Result represents a successful outcome.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}
