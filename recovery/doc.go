// SPDX-FileCopyrightText: Copyright 2026 Logsieve Authors
// SPDX-License-Identifier: Apache-2.0

// Package recovery converts panics in guarded functions into ordinary errors.
//
// The parsing engine runs user-authored extraction expressions against
// arbitrary log text. Both are untrusted, and neither is allowed to crash the
// embedding process: a panic anywhere inside evaluation must degrade to a
// reported failure for that one match.
//
// # Basic Usage
//
//	err := recovery.Guard(func() error {
//		return evaluate(match)
//	})
//	if errors.Is(err, recovery.ErrPanic) {
//		// evaluation panicked; err carries the panic value
//	}
package recovery
