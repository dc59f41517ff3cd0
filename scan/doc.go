// SPDX-FileCopyrightText: Copyright 2026 Logsieve Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package scan turns log text into issues by applying a parser definition's
pattern and extraction expression.

A Scanner runs in one of two modes, chosen once per pattern by [DetectMode]:

  - Line mode: the pattern is searched against each line separately, and only
    the first match per line produces an issue. This is the common case for
    compiler-style one-line diagnostics.
  - Document mode: selected when the pattern text spells out a `\n` or `\r`
    escape. The pattern is compiled with the multi-line flag and every match
    across the whole buffer produces an issue, so a single diagnostic may span
    lines.

# Usage

	eng := expr.NewEngine()
	sc, err := scan.New(`(\d+):\s*(.*)`,
		`{"line_start": int(groups[1]), "message": groups[2]}`,
		eng, scan.WithOrigin("gcc"))
	if err != nil {
	    // pattern or expression rejected
	}

	report := sc.Scan(logText)
	for _, iss := range report.Issues() {
	    fmt.Println(iss)
	}

# Resilience

Scan never fails as a whole: an expression that errors on one match records
the failure in the report's error log and the scan moves on. Callers inspect
[issue.Report.Errors] to surface per-match problems.
*/
package scan
