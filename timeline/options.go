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

import "github.com/ultrabear/history-stack/common"

// Option configures a Stack during creation.
type Option[T any] func(*Stack[T])

// WithCopier sets the strategy used by Save to copy the current entry.
// A nil copier is ignored.
func WithCopier[T any](copier common.Copier[T]) Option[T] {
	return func(s *Stack[T]) {
		if copier != nil {
			s.copier = copier
		}
	}
}

// WithMaxEntries limits the number of retained entries. Once a Save or Push
// grows the history beyond max, the oldest entries are dropped. Values below
// one are ignored, the history is unbounded by default.
func WithMaxEntries[T any](max int) Option[T] {
	return func(s *Stack[T]) {
		if max > 0 {
			s.maxEntries = max
		}
	}
}
