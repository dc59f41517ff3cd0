// SPDX-FileCopyrightText: Copyright 2026 Logsieve Authors
// SPDX-License-Identifier: Apache-2.0

package definition

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/logsieve/logsieve-core/expr"
	"github.com/logsieve/logsieve-core/issue"
	"github.com/logsieve/logsieve-core/permissions"
	"github.com/logsieve/logsieve-core/scan"
	"github.com/logsieve/logsieve-core/validation"
)

// MaxMessageLength is the display ceiling for one line of an example-check
// summary. Longer lines are middle-ellipsized.
const MaxMessageLength = 60

const permissionDeniedMessage = "cannot verify the expression: executing scripted expressions is not permitted"

// Validator checks the fields of a parser definition one by one and never
// lets a malformed field escape as anything but a structured result. The
// permission gate is consulted before any expression is compiled or run.
type Validator struct {
	engine *expr.Engine
	gate   permissions.Gate
}

// NewValidator builds a validator on the given engine. A nil gate permits
// everything.
func NewValidator(engine *expr.Engine, gate permissions.Gate) *Validator {
	if gate == nil {
		gate = permissions.AllowAll()
	}
	return &Validator{engine: engine, gate: gate}
}

// CheckName verifies the display name is set.
func (*Validator) CheckName(name string) validation.Result {
	if strings.TrimSpace(name) == "" {
		return validation.Errorf("name must not be empty")
	}
	return validation.OK()
}

// CheckID verifies the id is well-formed and, when a catalog is given, not
// already taken. The collision message names the existing definition.
func (*Validator) CheckID(cat Catalog, id string) validation.Result {
	if strings.TrimSpace(id) == "" {
		return validation.Errorf("id must not be empty")
	}
	if err := ValidateID(id); err != nil {
		return validation.Errorf("invalid id: %v", err)
	}
	if cat != nil {
		if existing, err := cat.Lookup(id); err == nil {
			return validation.Errorf("id %q is already used by the parser %q", id, existing.Name)
		}
	}
	return validation.OK()
}

// CheckRegexp verifies the pattern text. A blank pattern is rejected before
// any compilation is attempted.
func (*Validator) CheckRegexp(pattern string) validation.Result {
	if strings.TrimSpace(pattern) == "" {
		return validation.Errorf("regular expression must not be empty")
	}
	if _, err := regexp.Compile(pattern); err != nil {
		return validation.Errorf("invalid regular expression: %v", err)
	}
	return validation.OK()
}

// CheckExpression verifies the extraction expression compiles. When the gate
// denies scripted expressions the check degrades to a warning and the text is
// not even compiled.
func (v *Validator) CheckExpression(text string) validation.Result {
	if !v.gate.CanExecuteExpressions() {
		return validation.Warningf(permissionDeniedMessage)
	}
	if strings.TrimSpace(text) == "" {
		return validation.Errorf("expression must not be empty")
	}
	if err := v.engine.Check(text); err != nil {
		return validation.Errorf("invalid expression: %v", err)
	}
	return validation.OK()
}

// CheckExample runs the full pipeline against the example text: pattern
// match, then expression evaluation on the first match. The check is skipped
// (OK) unless example, pattern and expression are all non-blank. Examples
// over MaxExampleSize are matched truncated and the result carries a warning
// alongside the primary outcome.
func (v *Validator) CheckExample(example, pattern, exprText string) validation.Result {
	if !v.gate.CanExecuteExpressions() {
		return validation.Warningf(permissionDeniedMessage)
	}
	if strings.TrimSpace(example) == "" ||
		strings.TrimSpace(pattern) == "" ||
		strings.TrimSpace(exprText) == "" {
		return validation.OK()
	}

	result := v.parseExample(Truncate(example), pattern, exprText)
	if len(example) <= MaxExampleSize {
		return result
	}
	return validation.Aggregate(
		validation.Warningf("example is longer than %d characters and was truncated before matching", MaxExampleSize),
		result,
	)
}

// parseExample scans the example and renders the first extracted issue.
func (v *Validator) parseExample(example, pattern, exprText string) validation.Result {
	sc, err := scan.New(pattern, exprText, v.engine)
	if err != nil {
		return validation.Errorf("compiling the definition failed: %v", err)
	}

	iss, found, err := sc.First(example)
	if err != nil {
		return validation.Errorf("evaluating the expression on the example failed: %v", err)
	}
	if !found {
		return validation.Errorf("the regular expression does not match the example text")
	}
	return validation.OKf("%s", exampleSummary(iss))
}

// CheckSet holds the per-field results of validating one definition.
type CheckSet struct {
	Name       validation.Result
	Regexp     validation.Result
	Expression validation.Result
	Example    validation.Result
}

// Validate runs every field check of the definition.
func (v *Validator) Validate(def Definition) CheckSet {
	return CheckSet{
		Name:       v.CheckName(def.Name),
		Regexp:     v.CheckRegexp(def.Regexp),
		Expression: v.CheckExpression(def.Expression),
		Example:    v.CheckExample(def.Example, def.Regexp, def.Expression),
	}
}

// Aggregate combines the field results into one: any error dominates, else
// any warning, else OK.
func (cs CheckSet) Aggregate() validation.Result {
	return validation.Aggregate(cs.Name, cs.Regexp, cs.Expression, cs.Example)
}

// IsValid reports whether the definition can be used for scanning: name,
// pattern and expression all resolved to OK. The example check never gates
// validity.
func (cs CheckSet) IsValid() bool {
	return cs.Name.IsOK() && cs.Regexp.IsOK() && cs.Expression.IsOK()
}

// exampleSummary renders the issue extracted from an example, one field per
// line, each line capped for display.
func exampleSummary(iss issue.Issue) string {
	var b strings.Builder
	b.WriteString("one issue found:")
	for _, line := range []string{
		"file name: " + iss.FileName,
		"line: " + strconv.Itoa(iss.LineStart),
		"severity: " + iss.Severity.String(),
		"category: " + iss.Category,
		"type: " + iss.Type,
		"message: " + iss.Message,
	} {
		b.WriteByte('\n')
		b.WriteString(truncateMiddle(line))
	}
	return b.String()
}

// truncateMiddle shortens text over MaxMessageLength characters, keeping the
// head and tail and marking the removed middle.
func truncateMiddle(text string) string {
	runes := []rune(text)
	if len(runes) <= MaxMessageLength {
		return text
	}
	keep := MaxMessageLength/2 - 1
	return string(runes[:keep]) + "[...]" + string(runes[len(runes)-keep:])
}
