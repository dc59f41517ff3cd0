// SPDX-FileCopyrightText: Copyright 2026 Logsieve Authors
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"log/slog"
	"strings"

	"github.com/logsieve/logsieve-core/env"
)

// Environment variables consulted by NewFromEnv.
const (
	// FormatEnvVar selects the output format: "json" (default) or "text".
	FormatEnvVar = "LOGSIEVE_LOG_FORMAT"

	// LevelEnvVar selects the minimum level: "debug", "info" (default),
	// "warn" or "error".
	LevelEnvVar = "LOGSIEVE_LOG_LEVEL"
)

// NewFromEnv creates a logger configured from the environment. Unknown or
// empty values fall back to the defaults; misconfiguration must never leave a
// process without logging.
func NewFromEnv(r env.Reader, opts ...Option) *slog.Logger {
	fromEnv := make([]Option, 0, 2)

	switch strings.ToLower(strings.TrimSpace(r.Getenv(FormatEnvVar))) {
	case "text":
		fromEnv = append(fromEnv, WithFormat(FormatText))
	case "json", "":
	}

	switch strings.ToLower(strings.TrimSpace(r.Getenv(LevelEnvVar))) {
	case "debug":
		fromEnv = append(fromEnv, WithLevel(slog.LevelDebug))
	case "warn":
		fromEnv = append(fromEnv, WithLevel(slog.LevelWarn))
	case "error":
		fromEnv = append(fromEnv, WithLevel(slog.LevelError))
	case "info", "":
	}

	// Explicit options win over the environment.
	return New(append(fromEnv, opts...)...)
}
