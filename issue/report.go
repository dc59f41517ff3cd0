// SPDX-FileCopyrightText: Copyright 2026 Logsieve Authors
// SPDX-License-Identifier: Apache-2.0

package issue

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Report is the ordered collection of issues produced by one scan, in match
// discovery order, together with the informational and error messages the
// scan recorded along the way. A failed match evaluation is logged here and
// does not abort the scan.
//
// A Report belongs to the scan that produced it and is not safe for
// concurrent mutation.
type Report struct {
	issues []Issue
	infos  []string
	errors []string
}

// NewReport returns an empty report.
func NewReport() *Report {
	return &Report{}
}

// Add appends issues in the given order.
func (r *Report) Add(issues ...Issue) {
	r.issues = append(r.issues, issues...)
}

// Issues returns the collected issues in discovery order. The returned slice
// is a copy; mutating it does not affect the report.
func (r *Report) Issues() []Issue {
	out := make([]Issue, len(r.issues))
	copy(out, r.issues)
	return out
}

// Len returns the number of collected issues.
func (r *Report) Len() int {
	return len(r.issues)
}

// IsEmpty reports whether the scan produced no issues.
func (r *Report) IsEmpty() bool {
	return len(r.issues) == 0
}

// LogInfo records an informational message about the scan.
func (r *Report) LogInfo(format string, args ...any) {
	r.infos = append(r.infos, fmt.Sprintf(format, args...))
}

// LogError records a non-fatal error encountered during the scan, such as a
// match whose extraction expression failed.
func (r *Report) LogError(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

// Infos returns the recorded informational messages in order.
func (r *Report) Infos() []string {
	out := make([]string, len(r.infos))
	copy(out, r.infos)
	return out
}

// Errors returns the recorded error messages in order.
func (r *Report) Errors() []string {
	out := make([]string, len(r.errors))
	copy(out, r.errors)
	return out
}

// HasErrors reports whether any scan errors were recorded.
func (r *Report) HasErrors() bool {
	return len(r.errors) > 0
}

// Files returns the distinct file names referenced by the issues, sorted.
// The UndefinedFileName placeholder is included when present; consumers such
// as the affected-files collector skip it themselves.
func (r *Report) Files() []string {
	seen := make(map[string]struct{}, len(r.issues))
	for _, is := range r.issues {
		seen[is.FileName] = struct{}{}
	}
	files := make([]string, 0, len(seen))
	for f := range seen {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}

// reportJSON is the serialized shape of a Report.
type reportJSON struct {
	Issues []Issue  `json:"issues"`
	Infos  []string `json:"infos,omitempty"`
	Errors []string `json:"errors,omitempty"`
}

// MarshalJSON serializes the report with its issues and scan messages.
func (r *Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(reportJSON{
		Issues: r.Issues(),
		Infos:  r.Infos(),
		Errors: r.Errors(),
	})
}

// UnmarshalJSON restores a report serialized by MarshalJSON.
func (r *Report) UnmarshalJSON(data []byte) error {
	var rj reportJSON
	if err := json.Unmarshal(data, &rj); err != nil {
		return err
	}
	r.issues = rj.Issues
	r.infos = rj.Infos
	r.errors = rj.Errors
	return nil
}
