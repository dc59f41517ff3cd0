// SPDX-FileCopyrightText: Copyright 2026 Logsieve Authors
// SPDX-License-Identifier: Apache-2.0

package expr

import (
	"fmt"
	"reflect"

	"github.com/google/cel-go/common/types/ref"

	"github.com/logsieve/logsieve-core/issue"
	"github.com/logsieve/logsieve-core/recovery"
)

// Field keys an expression result map may carry. Anything else is rejected.
const (
	FieldFileName  = "file_name"
	FieldLineStart = "line_start"
	FieldLineEnd   = "line_end"
	FieldSeverity  = "severity"
	FieldCategory  = "category"
	FieldType      = "type"
	FieldMessage   = "message"
)

var nativeMapType = reflect.TypeOf(map[string]any(nil))

// EvaluateIssue runs the expression against one match, applies the resulting
// field map onto b, and builds the issue. The builder is only modified when
// evaluation succeeds and the result is a well-formed field map; on any error
// b may be partially populated and should be Reset before reuse.
func (ce *CompiledExpression) EvaluateIssue(mc MatchContext, b *issue.Builder) (issue.Issue, error) {
	var out ref.Val
	err := recovery.Guard(func() error {
		var evalErr error
		out, _, evalErr = ce.program.Eval(mc.activation())
		return evalErr
	})
	if err != nil {
		return issue.Issue{}, fmt.Errorf("%w: %w", ErrEvaluation, err)
	}

	native, err := out.ConvertToNative(nativeMapType)
	if err != nil {
		return issue.Issue{}, fmt.Errorf("%w: expression returned %v, want a map of issue fields",
			ErrWrongResultType, out.Value())
	}
	fields, ok := native.(map[string]any)
	if !ok {
		return issue.Issue{}, fmt.Errorf("%w: expression returned %v, want a map of issue fields",
			ErrWrongResultType, native)
	}
	if err := applyFields(b, fields); err != nil {
		return issue.Issue{}, err
	}
	return b.Build(), nil
}

// applyFields copies a validated result map onto the builder. Keys outside
// the documented field set and values of the wrong type are rejected rather
// than ignored, so a typo in an expression surfaces during validation instead
// of silently producing empty issues.
func applyFields(b *issue.Builder, fields map[string]any) error {
	for key, val := range fields {
		switch key {
		case FieldFileName:
			s, err := stringField(key, val)
			if err != nil {
				return err
			}
			b.SetFileName(s)
		case FieldLineStart:
			n, err := intField(key, val)
			if err != nil {
				return err
			}
			b.SetLineStart(n)
		case FieldLineEnd:
			n, err := intField(key, val)
			if err != nil {
				return err
			}
			b.SetLineEnd(n)
		case FieldSeverity:
			s, err := stringField(key, val)
			if err != nil {
				return err
			}
			sev, perr := issue.ParseSeverity(s)
			if perr != nil {
				return fmt.Errorf("%w: field %q: %v", ErrWrongResultType, key, perr)
			}
			b.SetSeverity(sev)
		case FieldCategory:
			s, err := stringField(key, val)
			if err != nil {
				return err
			}
			b.SetCategory(s)
		case FieldType:
			s, err := stringField(key, val)
			if err != nil {
				return err
			}
			b.SetType(s)
		case FieldMessage:
			s, err := stringField(key, val)
			if err != nil {
				return err
			}
			b.SetMessage(s)
		default:
			return fmt.Errorf("%w: unknown issue field %q", ErrWrongResultType, key)
		}
	}
	return nil
}

func stringField(key string, val any) (string, error) {
	s, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%w: field %q is %v, want string", ErrWrongResultType, key, val)
	}
	return s, nil
}

// intField accepts the integer shapes CEL produces for int and uint values.
func intField(key string, val any) (int, error) {
	switch n := val.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	}
	return 0, fmt.Errorf("%w: field %q is %v, want int", ErrWrongResultType, key, val)
}
