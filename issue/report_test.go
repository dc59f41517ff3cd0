// SPDX-FileCopyrightText: Copyright 2026 Logsieve Authors
// SPDX-License-Identifier: Apache-2.0

package issue_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logsieve/logsieve-core/issue"
)

func TestReport_AddPreservesOrder(t *testing.T) {
	t.Parallel()

	r := issue.NewReport()
	first := issue.NewBuilder().SetMessage("first").Build()
	second := issue.NewBuilder().SetMessage("second").Build()
	third := issue.NewBuilder().SetMessage("third").Build()

	r.Add(first, second)
	r.Add(third)

	require.Equal(t, 3, r.Len())
	got := r.Issues()
	assert.Equal(t, "first", got[0].Message)
	assert.Equal(t, "second", got[1].Message)
	assert.Equal(t, "third", got[2].Message)
}

func TestReport_IssuesReturnsCopy(t *testing.T) {
	t.Parallel()

	r := issue.NewReport()
	r.Add(issue.NewBuilder().SetMessage("original").Build())

	got := r.Issues()
	got[0].Message = "mutated"

	assert.Equal(t, "original", r.Issues()[0].Message)
}

func TestReport_Logging(t *testing.T) {
	t.Parallel()

	r := issue.NewReport()
	assert.False(t, r.HasErrors())

	r.LogInfo("scanned %d lines", 120)
	r.LogError("line %d: evaluation failed: %s", 7, "boom")

	assert.Equal(t, []string{"scanned 120 lines"}, r.Infos())
	assert.Equal(t, []string{"line 7: evaluation failed: boom"}, r.Errors())
	assert.True(t, r.HasErrors())
}

func TestReport_Files(t *testing.T) {
	t.Parallel()

	r := issue.NewReport()
	r.Add(
		issue.NewBuilder().SetFileName("b.c").Build(),
		issue.NewBuilder().SetFileName("a.c").Build(),
		issue.NewBuilder().SetFileName("b.c").Build(),
		issue.NewBuilder().Build(), // undefined file name
	)

	assert.Equal(t, []string{issue.UndefinedFileName, "a.c", "b.c"}, r.Files())
}

func TestReport_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	r := issue.NewReport()
	r.Add(issue.NewBuilder().
		SetFileName("main.c").
		SetLineStart(3).
		SetSeverity(issue.SeverityError).
		SetMessage("undefined reference").
		Build())
	r.LogInfo("one match")
	r.LogError("one failure")

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var restored issue.Report
	require.NoError(t, json.Unmarshal(data, &restored))

	require.Equal(t, 1, restored.Len())
	got := restored.Issues()[0]
	assert.Equal(t, "main.c", got.FileName)
	assert.Equal(t, 3, got.LineStart)
	assert.Equal(t, issue.SeverityError, got.Severity)
	assert.Equal(t, "undefined reference", got.Message)
	assert.Equal(t, []string{"one match"}, restored.Infos())
	assert.Equal(t, []string{"one failure"}, restored.Errors())
}
