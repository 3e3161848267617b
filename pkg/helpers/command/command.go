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

package command

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// StartOptions configures how a process is spawned.
type StartOptions struct {
	// HideWindow prevents a console window from appearing (Windows-only).
	// On non-Windows platforms, this field is ignored.
	HideWindow bool

	// Detach starts the process in its own session or process group so it
	// keeps running after the parent exits.
	Detach bool
}

// Executor is the seam between launch logic and the OS process table.
type Executor interface {
	// Run executes a command and waits for it to complete.
	// Returns an error if the command fails to start or exits with non-zero status.
	Run(ctx context.Context, name string, args ...string) error

	// Start starts a command without waiting for it to complete (fire-and-forget).
	// Returns an error if the command fails to start.
	Start(ctx context.Context, name string, args ...string) error

	// StartWithOptions starts a command with platform-specific options.
	// Returns an error if the command fails to start.
	StartWithOptions(ctx context.Context, opts StartOptions, name string, args ...string) error

	// StartProcess starts a command and hands back the spawned process. The
	// caller must Wait on it; nothing else collects its exit status.
	StartProcess(ctx context.Context, opts StartOptions, name string, args ...string) (*os.Process, error)
}

type RealExecutor struct{}

func (*RealExecutor) Run(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

func (*RealExecutor) Start(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Start()
}

func (e *RealExecutor) StartWithOptions(
	ctx context.Context,
	opts StartOptions,
	name string,
	args ...string,
) error {
	cmd, err := e.start(ctx, opts, name, args...)
	if err != nil {
		return err
	}
	// the handle is dropped, so reap the child here
	go func() { _ = cmd.Wait() }()
	return nil
}

// StartProcess leaves the child unreaped: the caller owns the handle and
// must Wait on it, or exit, to release it.
func (e *RealExecutor) StartProcess(
	ctx context.Context,
	opts StartOptions,
	name string,
	args ...string,
) (*os.Process, error) {
	cmd, err := e.start(ctx, opts, name, args...)
	if err != nil {
		return nil, err
	}
	return cmd.Process, nil
}

func (*RealExecutor) start(ctx context.Context, opts StartOptions, name string, args ...string) (*exec.Cmd, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	applyOptions(cmd, opts)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", name, err)
	}
	return cmd, nil
}
