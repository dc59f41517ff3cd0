// SPDX-FileCopyrightText: Copyright 2026 Logsieve Authors
// SPDX-License-Identifier: Apache-2.0

package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logsieve/logsieve-core/expr"
	"github.com/logsieve/logsieve-core/issue"
)

func TestCompiledExpression_EvaluateIssue(t *testing.T) {
	t.Parallel()

	engine := expr.NewEngine()

	tests := []struct {
		name string
		expr string
		mc   expr.MatchContext
		want issue.Issue
	}{
		{
			name: "all fields",
			expr: `{"file_name": groups[1], "line_start": int(groups[2]), "line_end": int(groups[2]) + 2, "severity": "error", "category": "Syntax", "type": "E100", "message": groups[3]}`,
			mc: expr.MatchContext{
				Groups: []string{"main.c:7: bad token", "main.c", "7", "bad token"},
			},
			want: issue.Issue{
				FileName:  "main.c",
				LineStart: 7,
				LineEnd:   9,
				Severity:  issue.SeverityError,
				Category:  "Syntax",
				Type:      "E100",
				Message:   "bad token",
			},
		},
		{
			name: "omitted fields keep defaults",
			expr: `{"message": groups[1]}`,
			mc: expr.MatchContext{
				Groups: []string{"oops", "oops"},
			},
			want: issue.Issue{
				FileName: issue.UndefinedFileName,
				Severity: issue.SeverityNormal,
				Message:  "oops",
			},
		},
		{
			name: "named capture groups",
			expr: `{"file_name": named["file"], "line_start": int(named["line"]), "message": named["msg"]}`,
			mc: expr.MatchContext{
				Groups: []string{"lib.rs:40: unused import"},
				Named:  map[string]string{"file": "lib.rs", "line": "40", "msg": "unused import"},
			},
			want: issue.Issue{
				FileName:  "lib.rs",
				LineStart: 40,
				LineEnd:   40,
				Severity:  issue.SeverityNormal,
				Message:   "unused import",
			},
		},
		{
			name: "match index available",
			expr: `{"message": "match #" + string(index), "category": index % 2 == 0 ? "even" : "odd"}`,
			mc: expr.MatchContext{
				Groups: []string{"x"},
				Index:  3,
			},
			want: issue.Issue{
				FileName: issue.UndefinedFileName,
				Severity: issue.SeverityNormal,
				Category: "odd",
				Message:  "match #3",
			},
		},
		{
			name: "severity from captured text",
			expr: `{"severity": groups[1] == "WARNING" ? "normal" : "error", "message": groups[2]}`,
			mc: expr.MatchContext{
				Groups: []string{"WARNING: shadowed var", "WARNING", "shadowed var"},
			},
			want: issue.Issue{
				FileName: issue.UndefinedFileName,
				Severity: issue.SeverityNormal,
				Message:  "shadowed var",
			},
		},
		{
			name: "windows path normalized",
			expr: `{"file_name": groups[1], "message": groups[2]}`,
			mc: expr.MatchContext{
				Groups: []string{`C:\src\main.c: oops`, `C:\src\main.c`, "oops"},
			},
			want: issue.Issue{
				FileName: "C:/src/main.c",
				Severity: issue.SeverityNormal,
				Message:  "oops",
			},
		},
		{
			name: "empty map yields default issue",
			expr: `{}`,
			mc: expr.MatchContext{
				Groups: []string{"anything"},
			},
			want: issue.Issue{
				FileName: issue.UndefinedFileName,
				Severity: issue.SeverityNormal,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ce, err := engine.Compile(tt.expr)
			require.NoError(t, err)

			got, err := ce.EvaluateIssue(tt.mc, issue.NewBuilder())
			require.NoError(t, err)

			assert.NotEqual(t, [16]byte{}, [16]byte(got.ID), "issues must get a fresh id")
			got.ID = tt.want.ID
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateIssue_WrongResultType(t *testing.T) {
	t.Parallel()

	engine := expr.NewEngine()

	tests := []struct {
		name       string
		expr       string
		wantInText string
	}{
		{
			name:       "plain string result",
			expr:       `"this is not a map"`,
			wantInText: "this is not a map",
		},
		{
			name:       "integer result",
			expr:       `42`,
			wantInText: "42",
		},
		{
			name:       "list result",
			expr:       `[groups[0]]`,
			wantInText: "map",
		},
		{
			name:       "unknown field key",
			expr:       `{"filename": groups[0]}`,
			wantInText: "filename",
		},
		{
			name:       "string where int expected",
			expr:       `{"line_start": groups[0]}`,
			wantInText: "line_start",
		},
		{
			name:       "int where string expected",
			expr:       `{"message": 42}`,
			wantInText: "message",
		},
		{
			name:       "unknown severity value",
			expr:       `{"severity": "catastrophic"}`,
			wantInText: "catastrophic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ce, err := engine.Compile(tt.expr)
			require.NoError(t, err)

			mc := expr.MatchContext{Groups: []string{"raw match"}}
			_, err = ce.EvaluateIssue(mc, issue.NewBuilder())
			require.Error(t, err)
			assert.ErrorIs(t, err, expr.ErrWrongResultType)

			// The diagnostic names the offending value or key
			assert.Contains(t, err.Error(), tt.wantInText)
		})
	}
}

func TestEvaluateIssue_EvaluationErrors(t *testing.T) {
	t.Parallel()

	engine := expr.NewEngine()

	tests := []struct {
		name string
		expr string
		mc   expr.MatchContext
	}{
		{
			name: "group index out of range",
			expr: `{"message": groups[5]}`,
			mc:   expr.MatchContext{Groups: []string{"only one"}},
		},
		{
			name: "missing named group",
			expr: `{"message": named["nope"]}`,
			mc:   expr.MatchContext{Groups: []string{"x"}},
		},
		{
			name: "unparseable int conversion",
			expr: `{"line_start": int(groups[1])}`,
			mc:   expr.MatchContext{Groups: []string{"a: b", "not-a-number"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ce, err := engine.Compile(tt.expr)
			require.NoError(t, err)

			_, err = ce.EvaluateIssue(tt.mc, issue.NewBuilder())
			require.Error(t, err)
			assert.ErrorIs(t, err, expr.ErrEvaluation)
		})
	}
}

func TestEvaluateIssue_EmptyContext(t *testing.T) {
	t.Parallel()

	engine := expr.NewEngine()

	// Nil groups and named still evaluate; expressions see empty containers.
	ce, err := engine.Compile(`{"message": "groups: " + string(size(groups)) + " named: " + string(size(named))}`)
	require.NoError(t, err)

	got, err := ce.EvaluateIssue(expr.MatchContext{}, issue.NewBuilder())
	require.NoError(t, err)
	assert.Equal(t, "groups: 0 named: 0", got.Message)
}

func TestEvaluateIssue_Deterministic(t *testing.T) {
	t.Parallel()

	engine := expr.NewEngine()

	ce, err := engine.Compile(`{"file_name": groups[1], "line_start": int(groups[2]), "message": groups[3]}`)
	require.NoError(t, err)

	mc := expr.MatchContext{
		Groups: []string{"main.c:7: oops", "main.c", "7", "oops"},
	}

	first, err := ce.EvaluateIssue(mc, issue.NewBuilder())
	require.NoError(t, err)
	second, err := ce.EvaluateIssue(mc, issue.NewBuilder())
	require.NoError(t, err)

	// Same match, same fields; only the stamped id differs
	assert.NotEqual(t, first.ID, second.ID)
	first.ID = second.ID
	assert.Equal(t, first, second)
}

func TestEvaluateIssue_Concurrency(t *testing.T) {
	t.Parallel()

	engine := expr.NewEngine()

	ce, err := engine.Compile(`{"line_start": index, "message": groups[1]}`)
	require.NoError(t, err)

	const numGoroutines = 100
	results := make(chan issue.Issue, numGoroutines)
	errs := make(chan error, numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(i int) {
			mc := expr.MatchContext{
				Groups: []string{"raw", "msg"},
				Index:  i,
			}
			iss, err := ce.EvaluateIssue(mc, issue.NewBuilder())
			if err != nil {
				errs <- err
				return
			}
			results <- iss
		}(i)
	}

	seen := make(map[int]bool, numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		select {
		case err := <-errs:
			t.Fatalf("unexpected error: %v", err)
		case iss := <-results:
			assert.Equal(t, "msg", iss.Message)
			seen[iss.LineStart] = true
		}
	}
	assert.Len(t, seen, numGoroutines)
}
