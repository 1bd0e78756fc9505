// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package savestack provides a value wrapper with LIFO checkpoints.
//
// A Stack stands in for a single current value. Push stores a copy of that
// value as a checkpoint; Pop restores the most recent checkpoint and hands
// back the value it replaces:
//
//	s := savestack.New(0)
//	s.PushValue(5)  // current is 5, 0 is retained
//	prev, ok := s.Pop() // prev == 5, ok == true, current is 0 again
//
// The stored checkpoints are not part of the identity of a Stack. Equality,
// ordering and hashing via the helpers of the common package only consider
// the current value.
//
// A Stack is not safe for concurrent use.
package savestack
