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

import "errors"

var (
	// ErrNothingToUndo is reported by Undo if the cursor is at the first entry.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNothingToRedo is reported by Redo if the cursor is at the last entry.
	ErrNothingToRedo = errors.New("nothing to redo")
)
