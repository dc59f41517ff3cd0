// SPDX-FileCopyrightText: Copyright 2026 Logsieve Authors
// SPDX-License-Identifier: Apache-2.0

package env

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=env.go -destination=mocks/mock_reader.go -package=mocks Reader

import "os"

// Reader abstracts environment variable access so that configuration
// bootstrap code can be tested without touching the process environment.
type Reader interface {
	Getenv(key string) string
}

// OSReader reads from the real process environment.
type OSReader struct{}

// Getenv returns the value of the environment variable named by the key.
func (*OSReader) Getenv(key string) string {
	return os.Getenv(key)
}
