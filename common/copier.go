// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

//go:generate mockgen -source copier.go -destination copier_mocks.go -package common

import (
	"github.com/huandu/go-clone"
)

// Cloner is implemented by values which know how to produce an independent
// copy of themselves. A copy must not share mutable state with the original.
type Cloner[T any] interface {
	Clone() T
}

// Copier is a strategy for creating independent copies of values of type T.
// It is used by the history wrappers whenever a snapshot of the current value
// has to be taken.
type Copier[T any] interface {
	Copy(T) T
}

// CopyFunc adapts an ordinary function to the Copier interface.
type CopyFunc[T any] func(T) T

// Copy returns f(value).
func (f CopyFunc[T]) Copy(value T) T {
	return f(value)
}

// DeepCopier returns the default Copier. Values implementing Cloner[T] are
// copied using their own Clone method; all other values are deep-copied
// reflectively, following pointers, slices and maps.
func DeepCopier[T any]() Copier[T] {
	return CopyFunc[T](deepCopy[T])
}

// ShallowCopier returns a Copier creating copies by plain assignment. Memory
// referenced through pointers, slices or maps is shared between the copies.
func ShallowCopier[T any]() Copier[T] {
	return CopyFunc[T](func(value T) T { return value })
}

func deepCopy[T any](value T) T {
	switch v := any(value).(type) {
	case nil:
		return value
	case Cloner[T]:
		return v.Clone()
	}
	return clone.Clone(value).(T)
}
