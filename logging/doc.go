// SPDX-FileCopyrightText: Copyright 2026 Logsieve Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package logging provides a pre-configured [log/slog.Logger] factory with
consistent defaults for the logsieve components.

All components share the same timestamp format, output destination, and
handler configuration. This package encapsulates those choices so that each
component does not need to replicate them.

# Defaults

  - Format: JSON ([FormatJSON]) via [log/slog.JSONHandler]
  - Level: INFO ([log/slog.LevelInfo])
  - Output: [os.Stderr]
  - Timestamps: [time.RFC3339]

# Basic Usage

Create a logger with default settings:

	logger := logging.New()
	logger.Info("scan finished", "issues", 12)

# Configuration

Use functional options to customize the logger:

	logger := logging.New(
		logging.WithFormat(logging.FormatText),
		logging.WithLevel(slog.LevelDebug),
	)

Or bootstrap from the environment (LOGSIEVE_LOG_FORMAT, LOGSIEVE_LOG_LEVEL):

	logger := logging.NewFromEnv(&env.OSReader{})

# Library Components

Packages in this module take an injected *slog.Logger and default to
[Discard], so embedders stay in control of the process's log output:

	sc, err := scan.New(pattern, expression, engine,
		scan.WithLogger(logging.New()))

# Dynamic Level Changes

Pass a [log/slog.LevelVar] to change the level at runtime:

	var lvl slog.LevelVar
	logger := logging.New(logging.WithLevel(&lvl))
	lvl.Set(slog.LevelDebug) // takes effect immediately

# Testing

Inject a buffer to capture log output in tests:

	var buf bytes.Buffer
	logger := logging.New(logging.WithOutput(&buf))
	logger.Info("test message")
	// inspect buf.String()
*/
package logging
