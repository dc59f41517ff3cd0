// SPDX-FileCopyrightText: Copyright 2026 Logsieve Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package definition holds parser definitions and the validator that checks
them field by field.

A Definition pairs a Go regular expression with a CEL extraction expression
under a stable id. Its example text is what authors validate the pair
against; it is capped at MaxExampleSize and silently truncated beyond that.

# Definitions Files

Definitions ship in YAML files with a format version and a parsers list:

	version: 1
	parsers:
	  - id: gcc
	    name: GNU C Compiler
	    regexp: '^(.+?):(\d+):(?:\d+:)? (warning|error): (.*)$'
	    expression: '{"file_name": groups[1], "line_start": int(groups[2]), "message": groups[4]}'
	    example: "main.c:9:14: warning: unused variable 'x'"

Load validates the raw document against an embedded JSON schema before
decoding, so typoed or missing keys surface with schema diagnostics rather
than as zero values. The default file location follows XDG conventions, see
DefaultPath.

# Validation

Validator checks one field at a time and always returns a
[validation.Result], never an error: malformed input becomes a structured
outcome the caller can render, and a denied permission gate becomes a
Warning. The example check runs the real scan pipeline against the example
text and reports the first extracted issue as a human-readable summary.

	v := definition.NewValidator(engine, gate)
	cs := v.Validate(def)
	if !cs.IsValid() {
		fmt.Println(cs.Aggregate().Message)
	}

Builtins returns definitions for common toolchains; every builtin validates
OK against its own example.
*/
package definition
