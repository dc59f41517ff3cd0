// SPDX-FileCopyrightText: Copyright 2026 Logsieve Authors
// SPDX-License-Identifier: Apache-2.0

package permissions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/logsieve/logsieve-core/permissions"
	"github.com/logsieve/logsieve-core/permissions/mocks"
)

func TestAllowAll(t *testing.T) {
	t.Parallel()
	assert.True(t, permissions.AllowAll().CanExecuteExpressions())
}

func TestDenyAll(t *testing.T) {
	t.Parallel()
	assert.False(t, permissions.DenyAll().CanExecuteExpressions())
}

func TestGateFunc(t *testing.T) {
	t.Parallel()

	calls := 0
	gate := permissions.GateFunc(func() bool {
		calls++
		return calls > 1
	})

	assert.False(t, gate.CanExecuteExpressions())
	assert.True(t, gate.CanExecuteExpressions())
	assert.Equal(t, 2, calls)
}

// TestMockGate ensures the generated mock satisfies the interface and records
// expectations, since other packages rely on it for their gate tests.
func TestMockGate(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	mock := mocks.NewMockGate(ctrl)
	mock.EXPECT().CanExecuteExpressions().Return(false)

	var gate permissions.Gate = mock
	assert.False(t, gate.CanExecuteExpressions())
}
