// SPDX-FileCopyrightText: Copyright 2026 Logsieve Authors
// SPDX-License-Identifier: Apache-2.0

package issue

import "github.com/google/uuid"

// Builder accumulates the fields of a single issue. It is a mutable scratch
// object: the scan driver hands one to the match evaluator, the evaluator
// populates it from the extraction expression's result, and Build produces
// the finished record. A Builder is not safe for concurrent use; reuse it
// across matches of one scan via Reset.
type Builder struct {
	fileName  string
	lineStart int
	lineEnd   int
	severity  Severity
	category  string
	issueType string
	message   string
	origin    string
}

// NewBuilder returns a Builder primed with defaults: an undefined file name,
// line zero, and normal severity.
func NewBuilder() *Builder {
	b := &Builder{}
	b.Reset()
	return b
}

// Reset restores all fields except the origin to their defaults so the
// builder can be reused for the next match.
func (b *Builder) Reset() *Builder {
	b.fileName = UndefinedFileName
	b.lineStart = 0
	b.lineEnd = 0
	b.severity = SeverityNormal
	b.category = ""
	b.issueType = ""
	b.message = ""
	return b
}

// SetFileName records the affected file, normalizing path separators.
func (b *Builder) SetFileName(name string) *Builder {
	b.fileName = normalizeFileName(name)
	return b
}

// SetLineStart records the first affected line. Negative values clamp to 0.
func (b *Builder) SetLineStart(line int) *Builder {
	b.lineStart = max(line, 0)
	return b
}

// SetLineEnd records the last affected line. Negative values clamp to 0.
func (b *Builder) SetLineEnd(line int) *Builder {
	b.lineEnd = max(line, 0)
	return b
}

// SetSeverity records the issue severity. Invalid severities are ignored.
func (b *Builder) SetSeverity(s Severity) *Builder {
	if s.IsValid() {
		b.severity = s
	}
	return b
}

// SetCategory records the tool-specific category label.
func (b *Builder) SetCategory(category string) *Builder {
	b.category = category
	return b
}

// SetType records the tool-specific type label.
func (b *Builder) SetType(issueType string) *Builder {
	b.issueType = issueType
	return b
}

// SetMessage records the diagnostic message.
func (b *Builder) SetMessage(message string) *Builder {
	b.message = message
	return b
}

// SetOrigin records the id of the parser definition producing the issue.
// The origin survives Reset so one builder serves a whole scan.
func (b *Builder) SetOrigin(origin string) *Builder {
	b.origin = origin
	return b
}

// Build assembles the issue, stamping a fresh ID. The line end is raised to
// the line start when it was left unset or inconsistent.
func (b *Builder) Build() Issue {
	lineEnd := b.lineEnd
	if lineEnd < b.lineStart {
		lineEnd = b.lineStart
	}
	return Issue{
		ID:        uuid.New(),
		FileName:  b.fileName,
		LineStart: b.lineStart,
		LineEnd:   lineEnd,
		Severity:  b.severity,
		Category:  b.category,
		Type:      b.issueType,
		Message:   b.message,
		Origin:    b.origin,
	}
}
