// SPDX-FileCopyrightText: Copyright 2026 Logsieve Authors
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOSReader_Getenv(t *testing.T) {
	// t.Setenv forbids parallel execution, which is exactly right here.
	t.Setenv("LOGSIEVE_TEST_VARIABLE", "from-the-environment")

	reader := &OSReader{}

	assert.Equal(t, "from-the-environment", reader.Getenv("LOGSIEVE_TEST_VARIABLE"))
	assert.Empty(t, reader.Getenv("LOGSIEVE_TEST_VARIABLE_THAT_IS_NOT_SET"))
	assert.Empty(t, reader.Getenv(""))
}

func TestOSReader_ImplementsReader(t *testing.T) {
	t.Parallel()
	var _ Reader = &OSReader{}
}
