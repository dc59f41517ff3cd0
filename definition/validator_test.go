// SPDX-FileCopyrightText: Copyright 2026 Logsieve Authors
// SPDX-License-Identifier: Apache-2.0

package definition_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logsieve/logsieve-core/definition"
	"github.com/logsieve/logsieve-core/expr"
	"github.com/logsieve/logsieve-core/permissions"
)

// catalogStub satisfies definition.Catalog for collision tests without
// pulling in the registry package.
type catalogStub map[string]definition.Definition

func (c catalogStub) Lookup(id string) (definition.Definition, error) {
	def, ok := c[id]
	if !ok {
		return definition.Definition{}, errors.New("not found")
	}
	return def, nil
}

func newValidator(t *testing.T) *definition.Validator {
	t.Helper()
	return definition.NewValidator(expr.NewEngine(), permissions.AllowAll())
}

func TestNewValidator_NilGatePermitsEverything(t *testing.T) {
	t.Parallel()

	v := definition.NewValidator(expr.NewEngine(), nil)

	assert.True(t, v.CheckExpression(`{"message": groups[1]}`).IsOK())
}

func TestValidator_CheckName(t *testing.T) {
	t.Parallel()

	v := newValidator(t)

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "non-empty name", input: "GNU C Compiler"},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: "  \t ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := v.CheckName(tt.input)

			if tt.wantErr {
				require.True(t, got.IsError())
				assert.Contains(t, got.Message, "name must not be empty")
				return
			}
			assert.True(t, got.IsOK())
		})
	}
}

func TestValidator_CheckID(t *testing.T) {
	t.Parallel()

	v := newValidator(t)
	cat := catalogStub{
		"gcc": definition.New("gcc", "GNU C Compiler", `x`, `{}`, ""),
	}

	t.Run("fresh id", func(t *testing.T) {
		t.Parallel()
		assert.True(t, v.CheckID(cat, "clang").IsOK())
	})

	t.Run("nil catalog skips collision check", func(t *testing.T) {
		t.Parallel()
		assert.True(t, v.CheckID(nil, "gcc").IsOK())
	})

	t.Run("blank id", func(t *testing.T) {
		t.Parallel()
		got := v.CheckID(cat, "  ")
		require.True(t, got.IsError())
		assert.Contains(t, got.Message, "id must not be empty")
	})

	t.Run("malformed id", func(t *testing.T) {
		t.Parallel()
		got := v.CheckID(cat, "My Parser")
		require.True(t, got.IsError())
		assert.Contains(t, got.Message, "invalid id")
	})

	t.Run("collision names the existing definition", func(t *testing.T) {
		t.Parallel()
		got := v.CheckID(cat, "gcc")
		require.True(t, got.IsError())
		assert.Contains(t, got.Message, `id "gcc" is already used by the parser "GNU C Compiler"`)
	})
}

func TestValidator_CheckRegexp(t *testing.T) {
	t.Parallel()

	v := newValidator(t)

	tests := []struct {
		name    string
		pattern string
		wantMsg string
	}{
		{
			name:    "valid pattern",
			pattern: `^(.+?):(\d+): (.*)$`,
		},
		{
			name:    "blank rejected before compiling",
			pattern: "",
			wantMsg: "regular expression must not be empty",
		},
		{
			name:    "whitespace only rejected before compiling",
			pattern: "   ",
			wantMsg: "regular expression must not be empty",
		},
		{
			name:    "unclosed group",
			pattern: `(\d+`,
			wantMsg: "invalid regular expression",
		},
		{
			name:    "bad repetition",
			pattern: `*`,
			wantMsg: "invalid regular expression",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := v.CheckRegexp(tt.pattern)

			if tt.wantMsg == "" {
				assert.True(t, got.IsOK())
				return
			}
			require.True(t, got.IsError())
			assert.Contains(t, got.Message, tt.wantMsg)
		})
	}
}

func TestValidator_CheckExpression(t *testing.T) {
	t.Parallel()

	t.Run("valid expression", func(t *testing.T) {
		t.Parallel()
		v := newValidator(t)
		assert.True(t, v.CheckExpression(`{"message": groups[1]}`).IsOK())
	})

	t.Run("blank expression", func(t *testing.T) {
		t.Parallel()
		v := newValidator(t)
		got := v.CheckExpression("  ")
		require.True(t, got.IsError())
		assert.Contains(t, got.Message, "expression must not be empty")
	})

	t.Run("uncompilable expression", func(t *testing.T) {
		t.Parallel()
		v := newValidator(t)
		got := v.CheckExpression(`{"message": `)
		require.True(t, got.IsError())
		assert.Contains(t, got.Message, "invalid expression")
	})

	t.Run("undeclared variable", func(t *testing.T) {
		t.Parallel()
		v := newValidator(t)
		got := v.CheckExpression(`{"message": matcher}`)
		require.True(t, got.IsError())
		assert.Contains(t, got.Message, "invalid expression")
	})

	t.Run("denied gate degrades to warning without compiling", func(t *testing.T) {
		t.Parallel()
		v := definition.NewValidator(expr.NewEngine(), permissions.DenyAll())
		got := v.CheckExpression(`{"message": `)
		require.True(t, got.IsWarning())
		assert.Contains(t, got.Message, "not permitted")
	})
}

func TestValidator_CheckExample(t *testing.T) {
	t.Parallel()

	v := newValidator(t)

	t.Run("skipped unless all three fields are set", func(t *testing.T) {
		t.Parallel()
		for _, args := range [][3]string{
			{"", `(\d+)`, `{"message": groups[1]}`},
			{"42", "", `{"message": groups[1]}`},
			{"42", `(\d+)`, ""},
		} {
			got := v.CheckExample(args[0], args[1], args[2])
			assert.True(t, got.IsOK())
			assert.Empty(t, got.Message)
		}
	})

	t.Run("extracts line number and message", func(t *testing.T) {
		t.Parallel()
		got := v.CheckExample(
			"42: unexpected token",
			`(\d+):\s*(.*)`,
			`{"line_start": int(groups[1]), "message": groups[2]}`,
		)
		require.True(t, got.IsOK())
		assert.Contains(t, got.Message, "one issue found:")
		assert.Contains(t, got.Message, "line: 42")
		assert.Contains(t, got.Message, "message: unexpected token")
	})

	t.Run("renders every issue field", func(t *testing.T) {
		t.Parallel()
		got := v.CheckExample(
			"main.go:7: unreachable code",
			`^(\S+\.go):(\d+): (.*)$`,
			`{"file_name": groups[1], "line_start": int(groups[2]), "severity": "high", "category": "lint", "type": "SA1000", "message": groups[3]}`,
		)
		require.True(t, got.IsOK())
		want := strings.Join([]string{
			"one issue found:",
			"file name: main.go",
			"line: 7",
			"severity: high",
			"category: lint",
			"type: SA1000",
			"message: unreachable code",
		}, "\n")
		assert.Equal(t, want, got.Message)
	})

	t.Run("no match is an error, not an exception", func(t *testing.T) {
		t.Parallel()
		got := v.CheckExample(
			"all quiet on this line",
			`^ERROR: (.*)$`,
			`{"message": groups[1]}`,
		)
		require.True(t, got.IsError())
		assert.Contains(t, got.Message, "does not match")
	})

	t.Run("wrong result type reports the returned value", func(t *testing.T) {
		t.Parallel()
		got := v.CheckExample(
			"42: boom",
			`(\d+): (.*)`,
			`"a plain string"`,
		)
		require.True(t, got.IsError())
		assert.Contains(t, got.Message, "evaluating the expression on the example failed")
		assert.Contains(t, got.Message, "a plain string")
	})

	t.Run("evaluation failure reports the cause", func(t *testing.T) {
		t.Parallel()
		got := v.CheckExample(
			"answer: forty-two",
			`answer: (\S+)`,
			`{"line_start": int(groups[1])}`,
		)
		require.True(t, got.IsError())
		assert.Contains(t, got.Message, "evaluating the expression on the example failed")
	})

	t.Run("uncompilable pattern", func(t *testing.T) {
		t.Parallel()
		got := v.CheckExample("42", `(\d+`, `{"message": "x"}`)
		require.True(t, got.IsError())
		assert.Contains(t, got.Message, "compiling the definition failed")
	})

	t.Run("denied gate degrades to warning", func(t *testing.T) {
		t.Parallel()
		denied := definition.NewValidator(expr.NewEngine(), permissions.DenyAll())
		got := denied.CheckExample("42", `(\d+)`, `{"message": groups[1]}`)
		require.True(t, got.IsWarning())
		assert.Contains(t, got.Message, "not permitted")
	})
}

func TestValidator_CheckExample_Truncation(t *testing.T) {
	t.Parallel()

	v := newValidator(t)

	t.Run("warning dominates a matching example", func(t *testing.T) {
		t.Parallel()
		long := strings.Repeat("x", definition.MaxExampleSize+100)
		got := v.CheckExample(long, `x+`, `{"message": "all filler"}`)
		require.True(t, got.IsWarning())
		assert.Contains(t, got.Message, "truncated")
		assert.Contains(t, got.Message, "one issue found")
	})

	t.Run("error still dominates the truncation warning", func(t *testing.T) {
		t.Parallel()
		long := strings.Repeat("x", definition.MaxExampleSize+100)
		got := v.CheckExample(long, `^ERROR`, `{"message": "never reached"}`)
		require.True(t, got.IsError())
		assert.Contains(t, got.Message, "truncated")
		assert.Contains(t, got.Message, "does not match")
	})

	t.Run("match beyond the cap is not seen", func(t *testing.T) {
		t.Parallel()
		long := strings.Repeat("x", definition.MaxExampleSize) + "\nERROR: too late"
		got := v.CheckExample(long, `ERROR: (.*)`, `{"message": groups[1]}`)
		require.True(t, got.IsError())
		assert.Contains(t, got.Message, "does not match")
	})
}

func TestValidator_CheckExample_DisplayTruncation(t *testing.T) {
	t.Parallel()

	v := newValidator(t)
	long := strings.Repeat("m", 80)

	got := v.CheckExample(long, `(m+)`, `{"message": groups[1]}`)

	require.True(t, got.IsOK())
	lines := strings.Split(got.Message, "\n")
	rendered := lines[len(lines)-1]

	// "message: " plus 80 characters exceeds the 60-character ceiling, so the
	// line keeps 29 leading and 29 trailing characters around the marker.
	want := "message: " + strings.Repeat("m", 20) + "[...]" + strings.Repeat("m", 29)
	assert.Equal(t, want, rendered)
	assert.Len(t, rendered, 63)
}

func TestValidator_Validate(t *testing.T) {
	t.Parallel()

	valid := definition.New(
		"gcc",
		"GNU C Compiler",
		`^(.+?):(\d+): (warning|error): (.*)$`,
		`{"file_name": groups[1], "line_start": int(groups[2]), "message": groups[4]}`,
		"main.c:9: warning: unused variable 'x'",
	)

	t.Run("valid definition", func(t *testing.T) {
		t.Parallel()
		v := newValidator(t)

		cs := v.Validate(valid)

		assert.True(t, cs.Name.IsOK())
		assert.True(t, cs.Regexp.IsOK())
		assert.True(t, cs.Expression.IsOK())
		assert.True(t, cs.Example.IsOK())
		assert.True(t, cs.IsValid())
		assert.True(t, cs.Aggregate().IsOK())
	})

	t.Run("blank name invalidates", func(t *testing.T) {
		t.Parallel()
		v := newValidator(t)
		def := valid
		def.Name = ""

		cs := v.Validate(def)

		assert.True(t, cs.Name.IsError())
		assert.False(t, cs.IsValid())
		assert.True(t, cs.Aggregate().IsError())
	})

	t.Run("broken example does not gate validity", func(t *testing.T) {
		t.Parallel()
		v := newValidator(t)
		def := valid
		def.Example = "this example matches nothing"

		cs := v.Validate(def)

		assert.True(t, cs.Example.IsError())
		assert.True(t, cs.IsValid())
		assert.True(t, cs.Aggregate().IsError())
	})

	t.Run("denied gate leaves the definition invalid", func(t *testing.T) {
		t.Parallel()
		v := definition.NewValidator(expr.NewEngine(), permissions.DenyAll())

		cs := v.Validate(valid)

		assert.True(t, cs.Name.IsOK())
		assert.True(t, cs.Regexp.IsOK())
		assert.True(t, cs.Expression.IsWarning())
		assert.True(t, cs.Example.IsWarning())
		assert.False(t, cs.IsValid())
		assert.True(t, cs.Aggregate().IsWarning())
	})
}
