// SPDX-FileCopyrightText: Copyright 2026 Logsieve Authors
// SPDX-License-Identifier: Apache-2.0

package issue

import (
	"fmt"
	"strings"
)

// Severity classifies the impact of an issue. The zero value is not a valid
// severity; use SeverityNormal as the default.
type Severity string

// Severities ordered from most to least severe.
const (
	// SeverityError marks diagnostics that broke the build or tool run.
	SeverityError Severity = "error"
	// SeverityHigh marks warnings of high priority.
	SeverityHigh Severity = "high"
	// SeverityNormal marks warnings of normal priority.
	SeverityNormal Severity = "normal"
	// SeverityLow marks warnings of low priority.
	SeverityLow Severity = "low"
)

// severityLevels orders severities for comparisons; higher is more severe.
var severityLevels = map[Severity]int{
	SeverityError:  4,
	SeverityHigh:   3,
	SeverityNormal: 2,
	SeverityLow:    1,
}

// ParseSeverity converts user-supplied text into a Severity. Matching is
// case-insensitive and ignores surrounding whitespace. Unknown values are
// rejected so that typos in extraction expressions surface during validation
// instead of silently downgrading issues.
func ParseSeverity(text string) (Severity, error) {
	s := Severity(strings.ToLower(strings.TrimSpace(text)))
	if _, ok := severityLevels[s]; !ok {
		return "", fmt.Errorf("unknown severity %q (expected one of: error, high, normal, low)", text)
	}
	return s, nil
}

// Level returns the numeric rank of the severity; higher means more severe.
// Unknown severities rank below SeverityLow.
func (s Severity) Level() int {
	return severityLevels[s]
}

// IsValid reports whether s is one of the defined severities.
func (s Severity) IsValid() bool {
	_, ok := severityLevels[s]
	return ok
}

// String returns the severity's canonical lowercase name.
func (s Severity) String() string {
	return string(s)
}
