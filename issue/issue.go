// SPDX-FileCopyrightText: Copyright 2026 Logsieve Authors
// SPDX-License-Identifier: Apache-2.0

// Package issue defines the structured diagnostic records produced by the
// log-parsing engine and the report collection that aggregates them.
package issue

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// UndefinedFileName marks an issue that could not be attributed to a file.
const UndefinedFileName = "-"

// Issue is one structured diagnostic extracted from a log: the file it refers
// to, the affected line range, a severity, free-form category and type labels,
// and the diagnostic message itself.
type Issue struct {
	// ID uniquely identifies this issue instance. It is assigned when the
	// issue is built and is not stable across scans of the same input.
	ID uuid.UUID `json:"id" yaml:"id"`

	// FileName is the forward-slash normalized path of the affected file,
	// or UndefinedFileName when unknown.
	FileName string `json:"file_name" yaml:"file_name"`

	// LineStart is the first affected line (1-based, 0 when unknown).
	LineStart int `json:"line_start" yaml:"line_start"`

	// LineEnd is the last affected line. It is never smaller than LineStart.
	LineEnd int `json:"line_end" yaml:"line_end"`

	// Severity classifies the issue's impact.
	Severity Severity `json:"severity" yaml:"severity"`

	// Category is a tool-specific grouping, e.g. a warning category.
	Category string `json:"category,omitempty" yaml:"category,omitempty"`

	// Type is a tool-specific type label, e.g. a rule or check name.
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	// Message is the human-readable diagnostic text.
	Message string `json:"message" yaml:"message"`

	// Origin is the id of the parser definition that produced this issue.
	Origin string `json:"origin,omitempty" yaml:"origin,omitempty"`
}

// String renders the issue in the classic file:line: severity: message form.
func (i Issue) String() string {
	var sb strings.Builder
	sb.WriteString(i.FileName)
	fmt.Fprintf(&sb, ":%d", i.LineStart)
	fmt.Fprintf(&sb, ": %s", i.Severity)
	if i.Category != "" {
		fmt.Fprintf(&sb, ": %s", i.Category)
	}
	fmt.Fprintf(&sb, ": %s", i.Message)
	return sb.String()
}

// normalizeFileName maps platform path separators to forward slashes and
// substitutes UndefinedFileName for blank input.
func normalizeFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return UndefinedFileName
	}
	return strings.ReplaceAll(name, "\\", "/")
}
