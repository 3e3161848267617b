// Zaparoo RLGym
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Zaparoo RLGym.
//
// Zaparoo RLGym is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zaparoo RLGym is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zaparoo RLGym.  If not, see <http://www.gnu.org/licenses/>.

package helpers

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shortLivedCommand(ctx context.Context) *exec.Cmd {
	if runtime.GOOS == "windows" {
		return exec.CommandContext(ctx, "cmd", "/c", "exit", "0")
	}
	return exec.CommandContext(ctx, "true")
}

func longRunningCommand(ctx context.Context) *exec.Cmd {
	if runtime.GOOS == "windows" {
		return exec.CommandContext(ctx, "ping", "-n", "11", "127.0.0.1")
	}
	return exec.CommandContext(ctx, "sleep", "10")
}

func TestIsProcessRunning(t *testing.T) {
	t.Parallel()

	t.Run("nil process", func(t *testing.T) {
		t.Parallel()
		assert.False(t, IsProcessRunning(nil))
	})

	t.Run("current process", func(t *testing.T) {
		t.Parallel()
		self, err := os.FindProcess(os.Getpid())
		require.NoError(t, err)
		assert.True(t, IsProcessRunning(self))
	})

	t.Run("exited process", func(t *testing.T) {
		t.Parallel()
		cmd := shortLivedCommand(context.Background())
		require.NoError(t, cmd.Start())
		require.NoError(t, cmd.Wait())
		time.Sleep(10 * time.Millisecond)

		assert.False(t, IsProcessRunning(cmd.Process))
	})

	t.Run("running process", func(t *testing.T) {
		t.Parallel()
		cmd := longRunningCommand(context.Background())
		require.NoError(t, cmd.Start())
		t.Cleanup(func() {
			_ = cmd.Process.Kill()
			_, _ = cmd.Process.Wait()
		})

		assert.True(t, IsProcessRunning(cmd.Process))
	})
}

func TestWaitForExit(t *testing.T) {
	t.Parallel()

	t.Run("nil process returns immediately", func(t *testing.T) {
		t.Parallel()
		state, err := WaitForExit(context.Background(), nil)
		require.NoError(t, err)
		assert.Nil(t, state)
	})

	t.Run("returns exit state of an unreaped child", func(t *testing.T) {
		t.Parallel()
		cmd := shortLivedCommand(context.Background())
		require.NoError(t, cmd.Start())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		state, err := WaitForExit(ctx, cmd.Process)

		require.NoError(t, err)
		require.NotNil(t, state)
		assert.True(t, state.Success())
		assert.False(t, IsProcessRunning(cmd.Process))
	})

	t.Run("fails for a child reaped elsewhere", func(t *testing.T) {
		t.Parallel()
		cmd := shortLivedCommand(context.Background())
		require.NoError(t, cmd.Start())
		require.NoError(t, cmd.Wait())

		_, err := WaitForExit(context.Background(), cmd.Process)
		require.Error(t, err)
	})

	t.Run("cancelled context stops waiting", func(t *testing.T) {
		t.Parallel()
		cmd := longRunningCommand(context.Background())
		require.NoError(t, cmd.Start())
		t.Cleanup(func() { _ = cmd.Process.Kill() })

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		state, err := WaitForExit(ctx, cmd.Process)

		require.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, state)
	})
}
