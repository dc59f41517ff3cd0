// SPDX-FileCopyrightText: Copyright 2026 Logsieve Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package expr compiles and evaluates the extraction expressions that turn a
regular-expression match into a structured issue.

Expressions are written in CEL. Each one runs against a fixed scope holding a
single match and must return a map of issue fields; the evaluator applies the
map onto an issue builder. The engine caches compiled programs by source text,
reports parse and type-check failures with per-position detail, and bounds
expression length and evaluation cost so a hostile definition cannot stall a
scan.

# Expression Contract

Every expression sees exactly three variables:

	groups  list(string)        captured groups, groups[0] is the whole match
	named   map(string, string) named capture groups
	index   int                 0-based count of matches seen in this scan

and must evaluate to a map using only these keys:

	file_name   string  path of the affected file
	line_start  int     first affected line
	line_end    int     last affected line (defaults to line_start)
	severity    string  one of "error", "high", "normal", "low"
	category    string  free-form grouping, e.g. a warning class
	type        string  free-form sub-grouping, e.g. a compiler flag
	message     string  human-readable description

Omitted keys keep the builder's defaults. Any other key, a non-map result, or
a wrongly-typed value fails the evaluation with ErrWrongResultType.

# Basic Usage

	eng := expr.NewEngine()
	ce, err := eng.Compile(`{"file_name": groups[1], "line_start": int(groups[2]), "message": groups[3]}`)
	if err != nil {
	    // handle compilation error
	}

	mc := expr.MatchContext{Groups: []string{"main.c:7: oops", "main.c", "7", "oops"}}
	iss, err := ce.EvaluateIssue(mc, issue.NewBuilder())

# Error Handling

Compilation failures are structured and wrap ErrCompile:

	_, err := eng.Compile(`{"message": groups[1]`)
	var parseErr *expr.ParseError
	if errors.As(err, &parseErr) {
	    fmt.Println(parseErr.Source)  // the original expression
	    fmt.Println(parseErr.Details) // line/column/message details
	}

Runtime failures (including recovered panics) wrap ErrEvaluation, and
malformed results wrap ErrWrongResultType; both carry enough text to show a
definition author what went wrong.

# Concurrency

Engine and CompiledExpression are safe for concurrent use. A compiled
expression can be evaluated from multiple goroutines at once.
*/
package expr
