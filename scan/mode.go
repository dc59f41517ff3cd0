// SPDX-FileCopyrightText: Copyright 2026 Logsieve Authors
// SPDX-License-Identifier: Apache-2.0

package scan

import "strings"

// Mode selects how a pattern is applied to log text.
type Mode int

const (
	// ModeLine applies the pattern to one line of the log at a time.
	ModeLine Mode = iota

	// ModeDocument applies the pattern to the whole log in multi-line mode,
	// so anchors and explicit line-break escapes work across lines.
	ModeDocument
)

// String returns the mode's name.
func (m Mode) String() string {
	if m == ModeDocument {
		return "document"
	}
	return "line"
}

// DetectMode chooses a scan mode from the pattern source text. A pattern that
// spells out a line-break escape (the two characters `\n` or `\r`) is meant
// to span lines and runs in document mode; everything else runs line by line.
// The check is over the pattern text, not the compiled form, so an author
// opts into document mode simply by writing a line break into the pattern.
func DetectMode(patternText string) Mode {
	if strings.Contains(patternText, `\n`) || strings.Contains(patternText, `\r`) {
		return ModeDocument
	}
	return ModeLine
}
