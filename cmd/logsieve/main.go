// SPDX-FileCopyrightText: Copyright 2026 Logsieve Authors
// SPDX-License-Identifier: Apache-2.0

// Command logsieve validates parser definitions and scans log files with
// them. Exit codes: 0 on success, 1 when findings were produced, 2 when a
// command could not run.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/logsieve/logsieve-core/env"
	"github.com/logsieve/logsieve-core/exitcode"
	"github.com/logsieve/logsieve-core/logging"
)

var rootCmd = &cobra.Command{
	Use:   "logsieve",
	Short: "Scan log files with user-defined parsers",
	Long: `Logsieve turns log files into structured issue reports.

A parser definition pairs a regular expression with a CEL expression that
maps every match to issue fields. Definitions live in a YAML file and are
validated with the same engine that scans production logs, so a definition
that validates cleanly behaves identically during a real scan.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// logger is shared by all subcommands. Format and level come from
// LOGSIEVE_LOG_FORMAT and LOGSIEVE_LOG_LEVEL.
var logger *slog.Logger

func main() {
	logger = logging.NewFromEnv(&env.OSReader{})
	slog.SetDefault(logger)

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(scanCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "logsieve: %v\n", err)
		os.Exit(exitcode.Code(err))
	}
}
