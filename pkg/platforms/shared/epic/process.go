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

package epic

import (
	"context"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// GameProcess is a running game found in the process table.
type GameProcess struct {
	kill    func() error
	Cmdline []string
	PID     int32
}

func NewGameProcess(pid int32, cmdline []string, kill func() error) *GameProcess {
	return &GameProcess{PID: pid, Cmdline: cmdline, kill: kill}
}

func (p *GameProcess) Kill() error {
	if p.kill == nil {
		return fmt.Errorf("process %d cannot be killed", p.PID)
	}
	return p.kill()
}

// ProcessFinder looks up a running process by executable name. A nil process
// with a nil error means nothing matched.
type ProcessFinder interface {
	FindByName(ctx context.Context, name string) (*GameProcess, error)
}

type psutilFinder struct{}

func NewProcessFinder() ProcessFinder {
	return psutilFinder{}
}

func (psutilFinder) FindByName(ctx context.Context, name string) (*GameProcess, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}

	for _, p := range procs {
		procName, err := p.NameWithContext(ctx)
		if err != nil || !strings.EqualFold(procName, name) {
			continue
		}
		cmdline, err := p.CmdlineSliceWithContext(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to read command line of %d: %w", p.Pid, err)
		}
		return NewGameProcess(p.Pid, cmdline, p.Kill), nil
	}

	return nil, nil //nolint:nilnil // no matching process
}
