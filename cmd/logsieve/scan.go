// SPDX-FileCopyrightText: Copyright 2026 Logsieve Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/logsieve/logsieve-core/affected"
	"github.com/logsieve/logsieve-core/definition"
	"github.com/logsieve/logsieve-core/exitcode"
	"github.com/logsieve/logsieve-core/expr"
	"github.com/logsieve/logsieve-core/issue"
	"github.com/logsieve/logsieve-core/registry"
	"github.com/logsieve/logsieve-core/sarif"
	"github.com/logsieve/logsieve-core/scan"
)

var scanCmd = &cobra.Command{
	Use:   "scan [flags] <logfile>",
	Short: "Scan a log file with a parser definition",
	Long: `Scan runs one parser definition against a log file and reports every
extracted issue. Builtin definitions are always available; definitions from
the file given with --file are added on top and may shadow builtins.

With --output the report is written to a file, as SARIF when the name ends
in .sarif and as JSON otherwise. Without it, issues are printed one per
line.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringP("file", "f", "", "definitions file (default: the XDG config location, if present)")
	scanCmd.Flags().StringP("parser", "p", "", "id of the parser definition to scan with")
	scanCmd.Flags().StringP("output", "o", "", "write the report to this file instead of stdout")
	scanCmd.Flags().String("affected-dir", "", "copy files referenced by issues into this directory")
	scanCmd.Flags().String("workspace", ".", "root directory that issue file names are resolved against")
	_ = scanCmd.MarkFlagRequired("parser")
}

func runScan(cmd *cobra.Command, args []string) error {
	logFile := args[0]
	flags := cmd.Flags()

	parserID, err := flags.GetString("parser")
	if err != nil {
		return fmt.Errorf("failed to get parser flag: %w", err)
	}
	defsFile, err := flags.GetString("file")
	if err != nil {
		return fmt.Errorf("failed to get file flag: %w", err)
	}
	output, err := flags.GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	affectedDir, err := flags.GetString("affected-dir")
	if err != nil {
		return fmt.Errorf("failed to get affected-dir flag: %w", err)
	}
	workspace, err := flags.GetString("workspace")
	if err != nil {
		return fmt.Errorf("failed to get workspace flag: %w", err)
	}

	reg, err := buildRegistry(defsFile)
	if err != nil {
		return exitcode.WithCode(err, exitcode.Fatal)
	}

	def, err := reg.Lookup(parserID)
	if err != nil {
		return exitcode.WithCode(err, exitcode.Fatal)
	}

	// #nosec G304 - the path is the user-specified log file
	data, err := os.ReadFile(logFile)
	if err != nil {
		return exitcode.WithCode(fmt.Errorf("reading log file: %w", err), exitcode.Fatal)
	}

	sc, err := scan.New(def.Regexp, def.Expression, expr.NewEngine(),
		scan.WithOrigin(def.ID), scan.WithLogger(logger))
	if err != nil {
		return exitcode.WithCode(fmt.Errorf("compiling parser %q: %w", def.ID, err), exitcode.Fatal)
	}

	logger.Info("scanning", "file", logFile, "parser", def.ID, "mode", sc.Mode())
	rep := sc.Scan(string(data))
	rep.LogInfo("scanned %s with parser %q: %d issues", logFile, def.ID, rep.Len())

	if affectedDir != "" {
		collector, cerr := affected.NewCollector(workspace)
		if cerr != nil {
			return exitcode.WithCode(cerr, exitcode.Fatal)
		}
		stats, cerr := collector.Copy(rep, affectedDir)
		if cerr != nil {
			return exitcode.WithCode(cerr, exitcode.Fatal)
		}
		logger.Info("copied affected files", "dir", affectedDir,
			"copied", stats.Copied, "notFound", stats.NotFound,
			"notInWorkspace", stats.NotInWorkspace, "errors", stats.Errors)
	}

	if err := writeReport(cmd, rep, reg, output); err != nil {
		return exitcode.WithCode(err, exitcode.Fatal)
	}

	if rep.Len() > 0 || rep.HasErrors() {
		return exitcode.New(
			fmt.Sprintf("%d issues, %d scan errors", rep.Len(), len(rep.Errors())),
			exitcode.Findings,
		)
	}
	return nil
}

// buildRegistry assembles the definitions available to a scan: builtins
// first, then the definitions file, which may shadow builtin ids. An
// explicitly given file must exist; the default XDG file is optional.
func buildRegistry(defsFile string) (*registry.Registry, error) {
	reg := registry.NewRegistry()
	if err := registry.RegisterBuiltins(reg); err != nil {
		return nil, err
	}

	if defsFile == "" {
		defsFile = definition.DefaultPath()
		if _, err := os.Stat(defsFile); err != nil {
			return reg, nil
		}
	}

	file, err := definition.LoadFile(defsFile)
	if err != nil {
		return nil, err
	}
	for _, def := range file.Parsers {
		if err := reg.Replace(def); err != nil {
			return nil, fmt.Errorf("registering %q from %s: %w", def.ID, defsFile, err)
		}
	}
	logger.Debug("loaded definitions", "path", defsFile, "count", len(file.Parsers))
	return reg, nil
}

// writeReport renders the scan report: SARIF or JSON into a file when an
// output path is given, plain text on stdout otherwise.
func writeReport(cmd *cobra.Command, rep *issue.Report, reg *registry.Registry, output string) error {
	if output == "" {
		out := cmd.OutOrStdout()
		for _, iss := range rep.Issues() {
			fmt.Fprintln(out, iss.String())
		}
		for _, msg := range rep.Errors() {
			fmt.Fprintf(cmd.ErrOrStderr(), "scan error: %s\n", msg)
		}
		return nil
	}

	f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600) // #nosec G304
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if strings.EqualFold(filepath.Ext(output), ".sarif") {
		if err := sarif.Write(f, rep, reg); err != nil {
			return fmt.Errorf("writing SARIF report: %w", err)
		}
		return nil
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("writing JSON report: %w", err)
	}
	return nil
}
