// SPDX-FileCopyrightText: Copyright 2026 Logsieve Authors
// SPDX-License-Identifier: Apache-2.0

package definition

// Builtins returns the parser definitions that ship with the engine. They
// cover common toolchains and double as living documentation: every one of
// them validates OK and its example yields an issue.
func Builtins() []Definition {
	return []Definition{
		New(
			"gcc",
			"GNU C Compiler",
			`^(.+?):(\d+):(?:\d+:)? (warning|error): (.*)$`,
			`{"file_name": groups[1], "line_start": int(groups[2]), "severity": groups[3] == "error" ? "error" : "normal", "category": groups[3], "message": groups[4]}`,
			"main.c:9:14: warning: unused variable 'x'",
		),
		New(
			"metrowerks-cw",
			"Metrowerks CodeWarrior Compiler",
			`^(.+?)\((\d+)\): (INFORMATION|WARNING|ERROR) (\S+): (.*)$`,
			`{"file_name": groups[1], "line_start": int(groups[2]), "severity": groups[3] == "ERROR" ? "error" : (groups[3] == "WARNING" ? "normal" : "low"), "type": groups[4], "message": groups[5]}`,
			"Source/module/add.c(25): WARNING C4100: unreferenced parameter 'count'",
		),
		New(
			"maven",
			"Maven Build Log",
			`^\[(WARNING|ERROR)\] (.*)$`,
			`{"severity": groups[1] == "ERROR" ? "error" : "normal", "category": "Maven", "message": groups[2]}`,
			"[WARNING] The POM for org.acme:lib:jar:1.0 is missing",
		),
		New(
			"rust-multiline",
			"Rust Compiler (multi-line)",
			`(error|warning)(\[E\d+\])?: (.*)\n\s+--> (.+?):(\d+):(\d+)`,
			`{"file_name": groups[4], "line_start": int(groups[5]), "severity": groups[1] == "error" ? "error" : "normal", "category": groups[1], "type": groups[2], "message": groups[3]}`,
			"error[E0425]: cannot find value `x` in this scope\n  --> src/main.rs:4:5",
		),
	}
}
