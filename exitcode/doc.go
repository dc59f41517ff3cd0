// SPDX-FileCopyrightText: Copyright 2026 Logsieve Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package exitcode provides error types with process exit codes for CLI error handling.

This package allows errors to carry their intended exit code through the
call stack, so command implementations stay free of os.Exit calls and the
main function decides the process status in one place. The CodedError type
implements the standard error interface and supports error wrapping via
errors.Is() and errors.As().

The logsieve CLI uses three codes: OK (0) for success, Findings (1) when a
command completed but surfaced issues, and Fatal (2) when a command could
not run at all.

# Basic Usage

Create errors with exit codes:

	// Create a new error with an exit code
	err := exitcode.New("scan found 3 issues", exitcode.Findings)

	// Wrap an existing error with an exit code
	err := exitcode.WithCode(err, exitcode.Fatal)

# Extracting Exit Codes

Extract the exit code from an error chain:

	code := exitcode.Code(err)
	// Returns the code if err contains a CodedError
	// Returns Fatal (2) if no CodedError is found
	// Returns OK (0) if err is nil

# Error Wrapping

CodedError supports the standard Go error wrapping pattern:

	sentinel := errors.New("definitions file is malformed")
	err := exitcode.WithCode(sentinel, exitcode.Fatal)

	// errors.Is works through the wrapper
	if errors.Is(err, sentinel) {
		// handle specific error
	}

	// errors.As can extract the CodedError
	var coded *exitcode.CodedError
	if errors.As(err, &coded) {
		log.Printf("exit %d: %s", coded.ExitCode(), coded.Error())
	}

# Main Function Example

Use at the top of a CLI for centralized status handling:

	func main() {
		if err := rootCmd.Execute(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitcode.Code(err))
		}
	}
*/
package exitcode
