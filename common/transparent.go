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

import (
	"cmp"
	"hash/maphash"

	"golang.org/x/exp/constraints"
)

// Transparent is implemented by wrappers that stand in for a single current
// value of type T. The identity of such a wrapper is the identity of its
// current value; any retained history is not part of it.
//
// The helpers in this file provide equality, ordering and hashing for
// transparent wrappers. Each of them produces exactly the result the same
// operation would produce on the bare current value, so wrappers and values
// can be compared and hashed interchangeably.
type Transparent[T any] interface {
	Get() T
}

// Equal reports whether the current values of a and b are equal.
func Equal[T comparable](a, b Transparent[T]) bool {
	return a.Get() == b.Get()
}

// EqualValue reports whether the current value of w equals v.
func EqualValue[T comparable](w Transparent[T], v T) bool {
	return w.Get() == v
}

// EqualFunc reports whether the current values of a and b are equal
// according to eq. It is intended for types that are not comparable.
func EqualFunc[T any](a, b Transparent[T], eq func(T, T) bool) bool {
	return eq(a.Get(), b.Get())
}

// Compare orders the current values of a and b the way cmp.Compare does:
// -1 if a < b, 0 if a == b and +1 if a > b. NaNs order before other values.
func Compare[T constraints.Ordered](a, b Transparent[T]) int {
	return cmp.Compare(a.Get(), b.Get())
}

// CompareValue orders the current value of w relative to v.
func CompareValue[T constraints.Ordered](w Transparent[T], v T) int {
	return cmp.Compare(w.Get(), v)
}

// CompareFunc orders the current values of a and b using the given
// comparison function, which must follow the cmp.Compare conventions.
func CompareFunc[T any](a, b Transparent[T], compare func(T, T) int) int {
	return compare(a.Get(), b.Get())
}

// Hash computes the hash of the current value of w. The result is identical
// to maphash.Comparable(seed, w.Get()).
func Hash[T comparable](seed maphash.Seed, w Transparent[T]) uint64 {
	return maphash.Comparable(seed, w.Get())
}

// WriteHash adds the current value of w to h, like maphash.WriteComparable
// would for the bare value.
func WriteHash[T comparable](h *maphash.Hash, w Transparent[T]) {
	maphash.WriteComparable(h, w.Get())
}
