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

// Package gamelaunch starts Rocket League with a controller pipe, trying
// each available store and launch method in a fixed order until one works.
package gamelaunch

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/ZaparooProject/zaparoo-rlgym/pkg/helpers"
	"github.com/ZaparooProject/zaparoo-rlgym/pkg/helpers/command"
	"github.com/ZaparooProject/zaparoo-rlgym/pkg/platforms/shared/epic"
	"github.com/ZaparooProject/zaparoo-rlgym/pkg/platforms/shared/steam"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// EpicLauncher is the Epic Games side of the launch chain.
// Implementations must not tie spawned games to ctx.
type EpicLauncher interface {
	// LaunchLoginTrick reuses the auth arguments of an Epic-started game.
	LaunchLoginTrick(ctx context.Context, args []string) error
	// LaunchSimple starts the Epic install directly.
	LaunchSimple(ctx context.Context, args []string) error
}

type Options struct {
	Fs            afero.Fs
	Executor      command.Executor
	Epic          EpicLauncher
	SteamResolver func() (string, bool)
	OpenURI       func(ctx context.Context, uri string) error
	GOOS          string
	InjectorPath  string
}

type Launcher struct {
	fs           afero.Fs
	cmd          command.Executor
	epic         EpicLauncher
	findSteamExe func() (string, bool)
	openURI      func(ctx context.Context, uri string) error
	goos         string
	injectorPath string
}

// New fills any unset option with the host implementation.
//
//nolint:gocritic // options struct passed by value
func New(opts Options) *Launcher {
	l := &Launcher{
		fs:           opts.Fs,
		cmd:          opts.Executor,
		epic:         opts.Epic,
		findSteamExe: opts.SteamResolver,
		openURI:      opts.OpenURI,
		goos:         opts.GOOS,
		injectorPath: opts.InjectorPath,
	}
	if l.fs == nil {
		l.fs = afero.NewOsFs()
	}
	if l.cmd == nil {
		l.cmd = &command.RealExecutor{}
	}
	if l.epic == nil {
		l.epic = epic.NewLauncher(epic.Options{Fs: l.fs, Executor: l.cmd})
	}
	if l.findSteamExe == nil {
		l.findSteamExe = steam.NewResolver("").FindSteamExe
	}
	if l.openURI == nil {
		l.openURI = func(ctx context.Context, uri string) error {
			return helpers.OpenURI(ctx, l.cmd, uri)
		}
	}
	if l.goos == "" {
		l.goos = runtime.GOOS
	}
	if l.injectorPath == "" {
		l.injectorPath = DefaultInjectorPath()
	}
	return l
}

// Launch starts the game so it accepts a controller on pipeID. It does not
// connect to the game and never fails: the report records which methods were
// tried and which one, if any, launched the game.
//
// A game spawned from gamePath is returned in Report.Process. Every other
// method leaves the game owned by its store client.
func (l *Launcher) Launch(
	ctx context.Context,
	pipeID int,
	gamePath string,
	useInjector bool,
	pref Preference,
) *Report {
	report := newReport(pipeID)
	args := IdealArgs(pipeID)
	// Games must outlive whatever context asked for them.
	spawnCtx := context.WithoutCancel(ctx)

	log.Info().
		Str("launch", report.ID.String()).
		Int("pipe", pipeID).
		Str("launcher", string(pref.Launcher)).
		Bool("loginTricks", pref.UseLoginTricks).
		Msg("launching Rocket League")

	if gamePath != "" {
		if l.launchDirect(spawnCtx, report, gamePath, args, useInjector) {
			return report
		}
	}

	if pref.Launcher == LauncherEpic {
		if pref.UseLoginTricks {
			if err := l.epic.LaunchLoginTrick(ctx, args); err != nil {
				log.Warn().Err(err).Msg("Epic login trick seems to have failed, falling back to simple Epic launch")
				report.fail(StepEpicLoginTrick, err)
			} else {
				report.succeed(StepEpicLoginTrick)
				return report
			}
		}
		if err := l.epic.LaunchSimple(ctx, args); err != nil {
			log.Warn().Err(err).Msg("simple Epic launch failed, falling back to Steam")
			report.fail(StepEpicSimple, err)
		} else {
			report.succeed(StepEpicSimple)
			return report
		}
	}

	if l.launchSteamExe(spawnCtx, report, args) {
		return report
	}

	uri := SteamRunGameURI(pipeID)
	log.Info().Strs("args", args).Msg("launching Rocket League using Steam-only fall-back launch method")
	log.Info().Msg("you should see a confirmation pop-up, if you don't see it then click on Steam")

	if l.goos == "linux" {
		if err := l.cmd.Start(spawnCtx, "steam", uri); err != nil {
			log.Warn().Err(err).Msg("could not launch Steam executable on Linux")
			report.fail(StepSteamCLI, err)
		} else {
			report.succeed(StepSteamCLI)
			return report
		}
	}

	log.Info().Str("uri", uri).Msg("launching Rocket League via Steam URI as a last resort")
	if err := l.openURI(spawnCtx, uri); err != nil {
		report.fail(StepSteamURI, err)
		report.ManualInstructions = fmt.Sprintf(
			"Unable to launch Rocket League. Please launch Rocket League manually "+
				"using the -pipe %d option to continue.",
			pipeID,
		)
		log.Error().Err(err).Msg(report.ManualInstructions)
		return report
	}
	report.succeed(StepSteamURI)
	return report
}

func (l *Launcher) launchDirect(
	ctx context.Context,
	report *Report,
	gamePath string,
	args []string,
	useInjector bool,
) bool {
	info, err := l.fs.Stat(gamePath)
	if err != nil || !info.Mode().IsRegular() {
		log.Warn().Str("path", gamePath).Msgf("game path doesn't point to %s", ProgramName)
		report.fail(StepDirectPath, fmt.Errorf("%w: %s", ErrGamePathNotFound, gamePath))
		return false
	}

	proc, err := l.cmd.StartProcess(ctx, command.StartOptions{}, gamePath, args...)
	if err != nil {
		log.Warn().Err(err).Str("path", gamePath).Msg("failed to start game from path")
		report.fail(StepDirectPath, err)
		return false
	}
	report.Process = proc
	report.succeed(StepDirectPath)

	if useInjector {
		log.Info().Str("injector", l.injectorPath).Msg("executing injector")
		err := l.cmd.StartWithOptions(
			ctx,
			command.StartOptions{HideWindow: true},
			l.injectorPath,
			filepath.Base(gamePath),
		)
		if err != nil {
			log.Error().Err(err).Msg("failed to start injector")
		}
	}
	return true
}

func (l *Launcher) launchSteamExe(ctx context.Context, report *Report, args []string) bool {
	exe, ok := l.findSteamExe()
	if !ok {
		report.fail(StepSteamExe, ErrSteamNotFound)
		return false
	}

	steamArgs := append([]string{"-applaunch", strconv.Itoa(GameID)}, args...)
	log.Debug().Str("exe", exe).Strs("args", steamArgs).Msg("launching through Steam executable")
	err := l.cmd.StartWithOptions(ctx, command.StartOptions{Detach: true}, exe, steamArgs...)
	if err != nil {
		log.Warn().Err(err).Str("exe", exe).Msg("failed to start Steam executable")
		report.fail(StepSteamExe, err)
		return false
	}
	report.succeed(StepSteamExe)
	return true
}
