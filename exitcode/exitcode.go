// SPDX-FileCopyrightText: Copyright 2026 Logsieve Authors
// SPDX-License-Identifier: Apache-2.0

// Package exitcode provides error types with process exit codes for CLI error handling.
package exitcode

import (
	"errors"
)

// Exit codes of the logsieve CLI.
const (
	// OK means the command succeeded and produced no findings.
	OK = 0
	// Findings means the command ran to completion but found issues:
	// a scan extracted issues, or validation rejected a definition.
	Findings = 1
	// Fatal means the command could not do its work at all, e.g. an
	// unreadable file or a malformed definitions file.
	Fatal = 2
)

// CodedError wraps an error with a process exit code.
// This allows errors to carry their intended exit code through the call
// stack, so the main function can map any error to the right process status.
type CodedError struct {
	err  error
	code int
}

// Error implements the error interface.
func (e *CodedError) Error() string {
	return e.err.Error()
}

// Unwrap returns the underlying error for errors.Is() and errors.As() compatibility.
func (e *CodedError) Unwrap() error {
	return e.err
}

// ExitCode returns the process exit code associated with this error.
func (e *CodedError) ExitCode() int {
	return e.code
}

// WithCode wraps an error with an exit code.
// The returned error implements Unwrap() for use with errors.Is() and errors.As().
// If err is nil, WithCode returns nil.
func WithCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &CodedError{err: err, code: code}
}

// Code extracts the exit code from an error.
// It unwraps the error chain looking for a CodedError.
// If no CodedError is found, it returns Fatal.
func Code(err error) int {
	if err == nil {
		return OK
	}

	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.code
	}

	return Fatal
}

// New creates a new error with the given message and exit code.
// This is a convenience function equivalent to WithCode(errors.New(message), code).
func New(message string, code int) error {
	return &CodedError{err: errors.New(message), code: code}
}
