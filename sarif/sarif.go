// SPDX-FileCopyrightText: Copyright 2026 Logsieve Authors
// SPDX-License-Identifier: Apache-2.0

// Package sarif exports scan reports as SARIF 2.1.0 documents so findings
// can be ingested by code-scanning UIs and CI annotators.
//
// One reporting rule is emitted per distinct issue origin (the producing
// definition's id). Issues without a file name are exported without a
// location; line regions are only attached when the issue carries a positive
// start line.
package sarif

import (
	"fmt"
	"io"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/logsieve/logsieve-core/definition"
	"github.com/logsieve/logsieve-core/issue"
)

const (
	toolName       = "logsieve"
	informationURI = "https://github.com/logsieve/logsieve-core"

	// defaultRuleID keys results whose issue has no origin.
	defaultRuleID = "logsieve"
)

// Level maps an issue severity to the SARIF result level.
func Level(s issue.Severity) string {
	switch s {
	case issue.SeverityError, issue.SeverityHigh:
		return "error"
	case issue.SeverityNormal:
		return "warning"
	case issue.SeverityLow:
		return "note"
	default:
		return "none"
	}
}

// FromReport converts a scan report into a SARIF document. When a catalog is
// given, every rule carries its definition's display name as description; a
// nil catalog skips descriptions.
func FromReport(rep *issue.Report, cat definition.Catalog) (*sarif.Report, error) {
	doc, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, fmt.Errorf("creating SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI(toolName, informationURI)
	for _, iss := range rep.Issues() {
		ruleID := iss.Origin
		if ruleID == "" {
			ruleID = defaultRuleID
		}

		rule := run.AddRule(ruleID).
			WithDefaultConfiguration(&sarif.ReportingConfiguration{
				Level: Level(iss.Severity),
			})
		if cat != nil {
			if def, lookupErr := cat.Lookup(ruleID); lookupErr == nil {
				rule.WithDescription(def.Name)
			}
		}

		result := sarif.NewRuleResult(ruleID).
			WithMessage(sarif.NewTextMessage(messageText(iss))).
			WithLevel(Level(iss.Severity))
		if loc := location(iss); loc != nil {
			result.WithLocations([]*sarif.Location{loc})
		}
		run.AddResult(result)
	}
	doc.AddRun(run)

	return doc, nil
}

// Write converts the report and writes it as indented JSON.
func Write(w io.Writer, rep *issue.Report, cat definition.Catalog) error {
	doc, err := FromReport(rep, cat)
	if err != nil {
		return err
	}
	return doc.PrettyWrite(w)
}

// messageText picks the result message. SARIF requires one, so issues that
// carry no message fall back to their category or a fixed text.
func messageText(iss issue.Issue) string {
	if iss.Message != "" {
		return iss.Message
	}
	if iss.Category != "" {
		return iss.Category
	}
	return "issue detected"
}

// location builds the physical location of an issue, or nil when the issue
// names no file.
func location(iss issue.Issue) *sarif.Location {
	if iss.FileName == "" || iss.FileName == issue.UndefinedFileName {
		return nil
	}

	phys := sarif.NewPhysicalLocation().
		WithArtifactLocation(sarif.NewArtifactLocation().WithUri(iss.FileName))
	if iss.LineStart > 0 {
		region := sarif.NewRegion().WithStartLine(iss.LineStart)
		if iss.LineEnd > iss.LineStart {
			region.WithEndLine(iss.LineEnd)
		}
		phys.WithRegion(region)
	}

	return sarif.NewLocation().WithPhysicalLocation(phys)
}
