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

// Package epic launches Rocket League through the Epic Games Launcher.
package epic

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/ZaparooProject/zaparoo-rlgym/pkg/helpers"
	"github.com/ZaparooProject/zaparoo-rlgym/pkg/helpers/command"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	// AppName is the Epic catalog name of Rocket League.
	AppName     = "Sugar"
	ProgramName = "RocketLeague.exe"
	LauncherURI = "com.epicgames.launcher://apps/" + AppName + "?action=launch&silent=true"
	PortalArg   = "-EpicPortal"

	DefaultTimeout = 10 * time.Second
	pollInterval   = time.Second
)

var ErrProcessNotFound = errors.New("game process did not appear")

type Options struct {
	Fs           afero.Fs
	Executor     command.Executor
	Finder       ProcessFinder
	Clock        clockwork.Clock
	OpenURI      func(ctx context.Context, uri string) error
	ManifestPath string
	Timeout      time.Duration
}

type Launcher struct {
	fs           afero.Fs
	cmd          command.Executor
	finder       ProcessFinder
	clock        clockwork.Clock
	openURI      func(ctx context.Context, uri string) error
	manifestPath string
	timeout      time.Duration
}

//nolint:gocritic // options struct passed by value
func NewLauncher(opts Options) *Launcher {
	l := &Launcher{
		fs:           opts.Fs,
		cmd:          opts.Executor,
		finder:       opts.Finder,
		clock:        opts.Clock,
		openURI:      opts.OpenURI,
		manifestPath: opts.ManifestPath,
		timeout:      opts.Timeout,
	}
	if l.fs == nil {
		l.fs = afero.NewOsFs()
	}
	if l.cmd == nil {
		l.cmd = &command.RealExecutor{}
	}
	if l.finder == nil {
		l.finder = NewProcessFinder()
	}
	if l.clock == nil {
		l.clock = clockwork.NewRealClock()
	}
	if l.openURI == nil {
		l.openURI = func(ctx context.Context, uri string) error {
			return helpers.OpenURI(ctx, l.cmd, uri)
		}
	}
	if l.manifestPath == "" {
		l.manifestPath = DefaultManifestPath()
	}
	if l.timeout <= 0 {
		l.timeout = DefaultTimeout
	}
	return l
}

// LaunchSimple starts the Epic install of the game directly, which only
// works while the Epic launcher holds a valid login.
func (l *Launcher) LaunchSimple(ctx context.Context, args []string) error {
	exe, err := FindGameBinary(l.fs, l.manifestPath)
	if err != nil {
		return err
	}

	fullArgs := append(slices.Clone(args), PortalArg)
	log.Info().Str("exe", exe).Strs("args", fullArgs).Msg("launching through Epic install")
	err = l.cmd.StartWithOptions(context.WithoutCancel(ctx), command.StartOptions{Detach: true}, exe, fullArgs...)
	if err != nil {
		return fmt.Errorf("failed to start Epic game binary: %w", err)
	}
	return nil
}

// LaunchLoginTrick lets the Epic launcher start the game with fresh auth
// arguments, then kills it and restarts the same command line with args
// appended. ctx only bounds the wait for the Epic-started process.
func (l *Launcher) LaunchLoginTrick(ctx context.Context, args []string) error {
	spawnCtx := context.WithoutCancel(ctx)
	if err := l.openURI(spawnCtx, LauncherURI); err != nil {
		return fmt.Errorf("failed to ask Epic launcher to start game: %w", err)
	}

	proc, err := l.waitForGame(ctx)
	if err != nil {
		return err
	}
	if len(proc.Cmdline) == 0 {
		return fmt.Errorf("game process %d has an empty command line", proc.PID)
	}

	log.Debug().Int32("pid", proc.PID).Msg("killing Epic-started game to relaunch with args")
	if err := proc.Kill(); err != nil {
		return fmt.Errorf("failed to kill Epic-started game: %w", err)
	}

	exe := proc.Cmdline[0]
	relaunchArgs := append(stripLaunchArgs(proc.Cmdline[1:]), args...)
	err = l.cmd.StartWithOptions(spawnCtx, command.StartOptions{Detach: true}, exe, relaunchArgs...)
	if err != nil {
		return fmt.Errorf("failed to relaunch game: %w", err)
	}
	log.Info().Str("exe", exe).Msg("relaunched game with Epic login arguments")
	return nil
}

func (l *Launcher) waitForGame(ctx context.Context) (*GameProcess, error) {
	deadline := l.clock.Now().Add(l.timeout)
	for {
		proc, err := l.finder.FindByName(ctx, ProgramName)
		if err != nil {
			log.Debug().Err(err).Msg("process lookup failed")
		}
		if proc != nil {
			return proc, nil
		}
		if !l.clock.Now().Before(deadline) {
			return nil, fmt.Errorf("%w after %s", ErrProcessNotFound, l.timeout)
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for game process: %w", ctx.Err())
		case <-l.clock.After(pollInterval):
		}
	}
}

// stripLaunchArgs drops pipe and movie arguments left over from an earlier
// launch so they are not passed twice.
func stripLaunchArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-pipe":
			i++
		case "-nomovie":
		default:
			out = append(out, args[i])
		}
	}
	return out
}
