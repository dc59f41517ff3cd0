// SPDX-FileCopyrightText: Copyright 2026 Logsieve Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package env abstracts environment variable access behind a small interface.

Configuration bootstrap code, such as logging.NewFromEnv, takes an env.Reader
instead of calling os.Getenv directly, so tests can supply canned values
without mutating the process environment:

	logger := logging.NewFromEnv(&env.OSReader{})

A generated mock lives in the mocks sub-package:

	ctrl := gomock.NewController(t)
	reader := mocks.NewMockReader(ctrl)
	reader.EXPECT().Getenv("LOGSIEVE_LOG_FORMAT").Return("text")
*/
package env
