// SPDX-FileCopyrightText: Copyright 2026 Logsieve Authors
// SPDX-License-Identifier: Apache-2.0

package validation

import (
	"fmt"
	"strings"
)

// Kind is the outcome class of a validation check.
type Kind int

const (
	// KindOK means the check passed.
	KindOK Kind = iota
	// KindWarning means the check could not pass but does not reject the
	// input, e.g. validation was impossible because a capability is disabled.
	KindWarning
	// KindError means the check failed and the input is invalid.
	KindError
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindWarning:
		return "warning"
	case KindError:
		return "error"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Result is the outcome of one validation check: a kind plus an optional
// human-readable message. Results are values; they are returned synchronously
// and never persisted.
type Result struct {
	Kind    Kind
	Message string
}

// OK returns a passing result without a message.
func OK() Result {
	return Result{Kind: KindOK}
}

// OKf returns a passing result with a formatted message, used to surface a
// success summary such as the parsed example issue.
func OKf(format string, args ...any) Result {
	return Result{Kind: KindOK, Message: fmt.Sprintf(format, args...)}
}

// Warningf returns a warning result with a formatted message.
func Warningf(format string, args ...any) Result {
	return Result{Kind: KindWarning, Message: fmt.Sprintf(format, args...)}
}

// Errorf returns an error result with a formatted message.
func Errorf(format string, args ...any) Result {
	return Result{Kind: KindError, Message: fmt.Sprintf(format, args...)}
}

// IsOK reports whether the result passed.
func (r Result) IsOK() bool {
	return r.Kind == KindOK
}

// IsWarning reports whether the result is a warning.
func (r Result) IsWarning() bool {
	return r.Kind == KindWarning
}

// IsError reports whether the result is an error.
func (r Result) IsError() bool {
	return r.Kind == KindError
}

// String renders the result as "kind" or "kind: message".
func (r Result) String() string {
	if r.Message == "" {
		return r.Kind.String()
	}
	return r.Kind.String() + ": " + r.Message
}

// Aggregate combines several check results into one composite result. Any
// error dominates, else any warning dominates, else the aggregate is ok. The
// messages of all constituent results are preserved in order, joined by
// newlines, so a dominating warning does not hide the primary result's text.
func Aggregate(results ...Result) Result {
	worst := KindOK
	var messages []string
	for _, r := range results {
		if r.Kind > worst {
			worst = r.Kind
		}
		if r.Message != "" {
			messages = append(messages, r.Message)
		}
	}
	return Result{Kind: worst, Message: strings.Join(messages, "\n")}
}
