// SPDX-FileCopyrightText: Copyright 2026 Logsieve Authors
// SPDX-License-Identifier: Apache-2.0

package recovery

import (
	"errors"
	"fmt"
)

// ErrPanic is the sentinel wrapped by errors returned from Guard when the
// guarded function panicked.
var ErrPanic = errors.New("panic recovered")

// Guard runs fn and converts a panic into an ordinary error wrapping
// ErrPanic. Errors returned by fn pass through unchanged.
//
// The engine evaluates user-supplied expressions against untrusted log text;
// nothing either of them does may take the embedding process down. Guard is
// the containment point: a panic degrades to a reported evaluation failure.
func Guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()
	return fn()
}
