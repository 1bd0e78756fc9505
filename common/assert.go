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

import "fmt"

// InvariantError is the panic value raised by Assert. It signals a defect in
// the bookkeeping of a data structure, never a misuse of its public API.
type InvariantError struct {
	msg string
}

func (e *InvariantError) Error() string {
	return "invariant violated: " + e.msg
}

// Assert panics with an *InvariantError if cond is false. The check is only
// performed if DebugChecks is set; otherwise Assert is a no-op. Callers must
// not rely on Assert for memory safety, regular bounds checks remain in place.
func Assert(cond bool, format string, args ...any) {
	if DebugChecks && !cond {
		panic(&InvariantError{msg: fmt.Sprintf(format, args...)})
	}
}
