// SPDX-FileCopyrightText: Copyright 2026 Logsieve Authors
// SPDX-License-Identifier: Apache-2.0

// Package permissions models the host-side administrative control over
// user-scripted extraction expressions. The engine consults a Gate before
// compiling or running any expression during validation; embedders decide
// what the gate answers. A denial is reported as a validation warning, never
// a crash and never a silent skip.
package permissions

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=gate.go -destination=mocks/mock_gate.go -package=mocks Gate

// Gate answers whether the embedding host currently allows user-scripted
// extraction expressions to be compiled and executed. Implementations must be
// safe for concurrent use; the engine may consult the gate from multiple
// validation calls at once.
type Gate interface {
	CanExecuteExpressions() bool
}

// GateFunc adapts a plain function to the Gate interface.
type GateFunc func() bool

// CanExecuteExpressions implements Gate.
func (f GateFunc) CanExecuteExpressions() bool {
	return f()
}

// AllowAll returns a Gate that permits expression execution unconditionally.
// This is the right default for hosts without an administrative permission
// model.
func AllowAll() Gate {
	return GateFunc(func() bool { return true })
}

// DenyAll returns a Gate that refuses expression execution, as a locked-down
// host would.
func DenyAll() Gate {
	return GateFunc(func() bool { return false })
}
