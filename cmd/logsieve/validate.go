// SPDX-FileCopyrightText: Copyright 2026 Logsieve Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/logsieve/logsieve-core/definition"
	"github.com/logsieve/logsieve-core/exitcode"
	"github.com/logsieve/logsieve-core/expr"
	"github.com/logsieve/logsieve-core/permissions"
	"github.com/logsieve/logsieve-core/registry"
	"github.com/logsieve/logsieve-core/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate every parser definition in a file",
	Long: `Validate checks each definition in a definitions file: the id, the display
name, the regular expression, the CEL expression, and the example text when
one is present. The example is run through the real scan pipeline and the
extracted issue is shown.

Definitions with errors fail validation; warnings only fail it with --strict.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringP("file", "f", "", "definitions file (default: the XDG config location)")
	validateCmd.Flags().Bool("strict", false, "treat warnings as failures")
}

func runValidate(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("file")
	if err != nil {
		return fmt.Errorf("failed to get file flag: %w", err)
	}
	strict, err := cmd.Flags().GetBool("strict")
	if err != nil {
		return fmt.Errorf("failed to get strict flag: %w", err)
	}
	if path == "" {
		path = definition.DefaultPath()
	}

	file, err := definition.LoadFile(path)
	if err != nil {
		return exitcode.WithCode(err, exitcode.Fatal)
	}
	logger.Debug("loaded definitions", "path", path, "count", len(file.Parsers))

	out := cmd.OutOrStdout()
	v := definition.NewValidator(expr.NewEngine(), permissions.AllowAll())
	reg := registry.NewRegistry()

	var invalid, flagged int
	for _, def := range file.Parsers {
		idResult := v.CheckID(reg, def.ID)
		cs := v.Validate(def)

		fmt.Fprintf(out, "--- %s (%s)\n", def.ID, def.Name)
		renderResult(out, "id", idResult)
		renderResult(out, "name", cs.Name)
		renderResult(out, "regexp", cs.Regexp)
		renderResult(out, "expression", cs.Expression)
		if def.Example != "" {
			renderResult(out, "example", cs.Example)
		}

		// A broken example flags a definition but never invalidates it.
		switch {
		case idResult.IsError() || !cs.IsValid():
			invalid++
		case !validation.Aggregate(idResult, cs.Aggregate()).IsOK():
			flagged++
		}

		if idResult.IsOK() {
			// Later definitions in the same file must not reuse the id.
			_ = reg.Register(def)
		}
	}

	total := len(file.Parsers)
	fmt.Fprintf(out, "%d definitions checked: %d invalid, %d flagged\n", total, invalid, flagged)

	if invalid > 0 || (strict && flagged > 0) {
		return exitcode.New("validation failed", exitcode.Findings)
	}
	return nil
}

// renderResult prints one field's validation outcome, indenting multi-line
// messages such as the example summary.
func renderResult(w io.Writer, label string, r validation.Result) {
	fmt.Fprintf(w, "  %-11s %s\n", label+":", r.Kind)
	if r.Message == "" {
		return
	}
	for _, line := range strings.Split(r.Message, "\n") {
		fmt.Fprintf(w, "      %s\n", line)
	}
}
