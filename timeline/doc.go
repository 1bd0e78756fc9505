// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package timeline provides a value wrapper with a linear undo/redo history.
//
// A Stack keeps all committed versions of a value in a single slice together
// with a cursor selecting the current version. Entries before the cursor can
// be restored with Undo, entries after it with Redo. Committing a new version
// through Save or Push discards every entry after the cursor, the usual
// behaviour of an editor where a fresh edit invalidates the abandoned future:
//
//	s := timeline.New(0)
//	*s.Save() += 1      // history [0 1], current 1
//	s.Undo()            // current 0
//	*s.Save() += 2      // history [0 2], the 1 is gone
//	s.Redo().IsOk()     // false, there is nothing to redo
//
// Undo and Redo return a result.Result holding a pointer to the current
// entry in both outcomes, so callers can keep working with the value even if
// the cursor could not be moved.
//
// Consistency of the history and the cursor is verified on every mutation if
// the module is built with the historydebug tag.
//
// A Stack is not safe for concurrent use.
package timeline
