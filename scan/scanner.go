// SPDX-FileCopyrightText: Copyright 2026 Logsieve Authors
// SPDX-License-Identifier: Apache-2.0

package scan

import (
	"bufio"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/logsieve/logsieve-core/expr"
	"github.com/logsieve/logsieve-core/issue"
	"github.com/logsieve/logsieve-core/logging"
)

// maxLineLength caps a single log line in line mode. Lines beyond this stop
// the scan; the error is recorded in the report.
const maxLineLength = 1 << 20 // 1 MiB

// Scanner applies one parser definition's pattern and expression to log text.
// It is immutable after New and safe for concurrent Scan calls; each call
// works on its own report and builder.
type Scanner struct {
	mode   Mode
	re     *regexp.Regexp
	expr   *expr.CompiledExpression
	origin string
	logger *slog.Logger
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithOrigin stamps every produced issue with the id of the definition that
// produced it.
func WithOrigin(id string) Option {
	return func(s *Scanner) {
		s.origin = id
	}
}

// WithLogger sets the logger for per-match diagnostics. The default drops
// them; the report still records every failure.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scanner) {
		s.logger = logger
	}
}

// New compiles the pattern and the extraction expression into a Scanner. The
// scan mode is chosen by DetectMode; document-mode patterns are compiled with
// the multi-line flag so `^` and `$` anchor to lines inside the buffer.
// Expressions are compiled through eng, so scanners built from the same
// engine share its program cache.
func New(patternText, exprText string, eng *expr.Engine, opts ...Option) (*Scanner, error) {
	mode := DetectMode(patternText)

	compileText := patternText
	if mode == ModeDocument {
		compileText = "(?m)" + patternText
	}
	re, err := regexp.Compile(compileText)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern %q: %w", patternText, err)
	}

	ce, err := eng.Compile(exprText)
	if err != nil {
		return nil, err
	}

	s := &Scanner{
		mode:   mode,
		re:     re,
		expr:   ce,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Mode returns the scan mode selected for the pattern.
func (s *Scanner) Mode() Mode {
	return s.mode
}

// Scan runs the pattern over the log text and returns the issues in match
// discovery order. A failing evaluation is recorded in the report's error log
// and scanning continues with the remaining matches; one malformed diagnostic
// line never aborts the whole log.
func (s *Scanner) Scan(text string) *issue.Report {
	report := issue.NewReport()
	builder := issue.NewBuilder().SetOrigin(s.origin)

	if s.mode == ModeDocument {
		s.scanDocument(text, report, builder)
	} else {
		s.scanLines(text, report, builder)
	}
	return report
}

// First applies the pattern and evaluates only the first match in the text.
// It reports found=false when the pattern does not match at all. Unlike Scan,
// an evaluation failure is returned to the caller instead of being recorded;
// validation paths use this to show a definition author the exact failure for
// their example.
func (s *Scanner) First(text string) (issue.Issue, bool, error) {
	var m []string
	if s.mode == ModeDocument {
		m = s.re.FindStringSubmatch(text)
	} else {
		sc := bufio.NewScanner(strings.NewReader(text))
		sc.Buffer(make([]byte, 0, 64*1024), maxLineLength)
		for sc.Scan() {
			if m = s.re.FindStringSubmatch(sc.Text()); m != nil {
				break
			}
		}
	}
	if m == nil {
		return issue.Issue{}, false, nil
	}

	mc := expr.MatchContext{
		Groups: m,
		Named:  s.namedGroups(m),
		Index:  0,
	}
	iss, err := s.expr.EvaluateIssue(mc, issue.NewBuilder().SetOrigin(s.origin))
	if err != nil {
		return issue.Issue{}, true, err
	}
	return iss, true, nil
}

// scanLines searches each line for the pattern and evaluates the first match
// per line. Lines without a match are skipped silently.
func (s *Scanner) scanLines(text string, report *issue.Report, b *issue.Builder) {
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	matches := 0
	lines := 0
	for sc.Scan() {
		lines++
		m := s.re.FindStringSubmatch(sc.Text())
		if m == nil {
			continue
		}
		s.evaluate(m, matches, report, b)
		matches++
	}
	if err := sc.Err(); err != nil {
		report.LogError("reading log text stopped after line %d: %v", lines, err)
		s.logger.Error("log text read failed", "lines", lines, "error", err)
	}
}

// scanDocument evaluates every match of the pattern over the whole buffer.
func (s *Scanner) scanDocument(text string, report *issue.Report, b *issue.Builder) {
	for i, m := range s.re.FindAllStringSubmatch(text, -1) {
		s.evaluate(m, i, report, b)
	}
}

func (s *Scanner) evaluate(m []string, index int, report *issue.Report, b *issue.Builder) {
	mc := expr.MatchContext{
		Groups: m,
		Named:  s.namedGroups(m),
		Index:  index,
	}
	iss, err := s.expr.EvaluateIssue(mc, b.Reset())
	if err != nil {
		report.LogError("expression failed on match %d: %v", index, err)
		s.logger.Error("expression evaluation failed",
			"match", index, "mode", s.mode.String(), "error", err)
		return
	}
	report.Add(iss)
	s.logger.Debug("issue extracted",
		"match", index, "file", iss.FileName, "line", iss.LineStart)
}

// namedGroups maps named capture groups to their captured text. Unnamed
// groups are skipped; the map stays nil when the pattern names none.
func (s *Scanner) namedGroups(m []string) map[string]string {
	var named map[string]string
	for i, name := range s.re.SubexpNames() {
		if name == "" || i >= len(m) {
			continue
		}
		if named == nil {
			named = make(map[string]string, 4)
		}
		named[name] = m[i]
	}
	return named
}
