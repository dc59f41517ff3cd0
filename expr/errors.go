// SPDX-FileCopyrightText: Copyright 2026 Logsieve Authors
// SPDX-License-Identifier: Apache-2.0

package expr

import (
	"errors"
	"fmt"

	"github.com/google/cel-go/cel"
)

// Sentinel errors for expression handling. Callers classify failures with
// errors.Is against these; the concrete error carries the diagnostic text.
var (
	// ErrCompile is returned when an extraction expression fails to parse
	// or type-check.
	ErrCompile = errors.New("expression compilation failed")

	// ErrEvaluation is returned when a compiled expression fails at
	// runtime, including recovered panics.
	ErrEvaluation = errors.New("expression evaluation failed")

	// ErrWrongResultType is returned when an expression executes but does
	// not produce a record of the expected shape.
	ErrWrongResultType = errors.New("expression returned an unexpected result type")
)

// Detail pinpoints one problem inside an expression's source text.
type Detail struct {
	Line int
	Col  int
	Msg  string
}

// String renders the detail as "line:col: message".
func (d Detail) String() string {
	return fmt.Sprintf("%d:%d: %s", d.Line, d.Col, d.Msg)
}

// detailsFromIssues flattens the compiler's issue list into Details.
func detailsFromIssues(issues *cel.Issues) []Detail {
	details := make([]Detail, 0, len(issues.Errors()))
	for _, err := range issues.Errors() {
		details = append(details, Detail{
			Line: err.Location.Line(),
			Col:  err.Location.Column(),
			Msg:  err.Message,
		})
	}
	return details
}

// ParseError reports a syntax error in an expression, with the positions of
// each problem in the source text.
type ParseError struct {
	Source  string
	Details []Detail
	err     error
}

// Error implements the error interface.
func (pe *ParseError) Error() string {
	return fmt.Sprintf("parse error in expression %q: %s", pe.Source, pe.err)
}

// Unwrap returns the underlying error; it wraps ErrCompile.
func (pe *ParseError) Unwrap() error {
	return pe.err
}

// CheckError reports a type-checking error in an expression, such as a
// reference to an undeclared variable.
type CheckError struct {
	Source  string
	Details []Detail
	err     error
}

// Error implements the error interface.
func (ce *CheckError) Error() string {
	return fmt.Sprintf("check error in expression %q: %s", ce.Source, ce.err)
}

// Unwrap returns the underlying error; it wraps ErrCompile.
func (ce *CheckError) Unwrap() error {
	return ce.err
}

func newParseError(source string, issues *cel.Issues) error {
	return &ParseError{
		Source:  source,
		Details: detailsFromIssues(issues),
		err:     fmt.Errorf("%w: %w", ErrCompile, issues.Err()),
	}
}

func newCheckError(source string, issues *cel.Issues) error {
	return &CheckError{
		Source:  source,
		Details: detailsFromIssues(issues),
		err:     fmt.Errorf("%w: %w", ErrCompile, issues.Err()),
	}
}
