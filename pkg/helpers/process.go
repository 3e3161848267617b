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
	"fmt"
	"os"
)

// WaitForExit waits on a child started by this process and returns its
// exit state. If ctx ends first the wait continues in the background and
// the context error is returned.
func WaitForExit(ctx context.Context, proc *os.Process) (*os.ProcessState, error) {
	if proc == nil {
		return nil, nil
	}

	type result struct {
		state *os.ProcessState
		err   error
	}
	done := make(chan result, 1)
	go func() {
		state, err := proc.Wait()
		done <- result{state: state, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("stopped waiting for pid %d: %w", proc.Pid, ctx.Err())
	case r := <-done:
		if r.err != nil {
			return nil, fmt.Errorf("failed to wait for pid %d: %w", proc.Pid, r.err)
		}
		return r.state, nil
	}
}
