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

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ZaparooProject/zaparoo-rlgym/internal/telemetry"
	"github.com/ZaparooProject/zaparoo-rlgym/pkg/cli"
	"github.com/ZaparooProject/zaparoo-rlgym/pkg/config"
	"github.com/ZaparooProject/zaparoo-rlgym/pkg/gamelaunch"
	"github.com/ZaparooProject/zaparoo-rlgym/pkg/helpers"
	"github.com/ZaparooProject/zaparoo-rlgym/pkg/helpers/command"
	"github.com/ZaparooProject/zaparoo-rlgym/pkg/platforms/shared/epic"
	"github.com/ZaparooProject/zaparoo-rlgym/pkg/platforms/shared/steam"
	"github.com/ZaparooProject/zaparoo-rlgym/pkg/rewards"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags := cli.SetupFlags(flag.CommandLine)
	exit, err := flags.Pre(os.Args[1:], os.Stdout)
	if err != nil {
		return err
	} else if exit {
		return nil
	}

	fs := afero.NewOsFs()
	cfg, err := flags.Setup(
		fs,
		config.BaseDefaults,
		[]io.Writer{zerolog.ConsoleWriter{Out: os.Stderr}},
	)
	if err != nil {
		return err
	}

	err = telemetry.Init(cfg.ErrorReporting(), cfg.ReportingDSN(), config.AppVersion, uuid.NewString())
	if err != nil {
		log.Warn().Err(err).Msg("error reporting unavailable")
	}
	defer telemetry.Close()

	defer func() {
		if err := recover(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Panic: %s\n", err)
			log.Fatal().Msgf("panic: %v", err)
		}
	}()

	// fail early on a bad reward name, before a game is started for nothing
	if _, err := rewards.NewFromConfig(rewards.DefaultRegistry(), cfg); err != nil {
		log.Error().Err(err).Strs("available", rewards.DefaultRegistry().Names()).Msg("invalid reward config")
		return err
	}

	pref, err := flags.Preference(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	resolver := steam.NewResolver(cfg.SteamExeOverride())

	gamePath := flags.GamePath(cfg)
	if gamePath == "" && cfg.DiscoverGamePath() {
		if p, ok := gamelaunch.DiscoverGamePath(fs, resolver.FindAppInstallDir); ok {
			log.Info().Str("path", p).Msg("using game found in Steam library")
			gamePath = p
		}
	}

	exec := &command.RealExecutor{}
	launcher := gamelaunch.New(gamelaunch.Options{
		Fs:       fs,
		Executor: exec,
		Epic: epic.NewLauncher(epic.Options{
			Fs:           fs,
			Executor:     exec,
			ManifestPath: cfg.EpicManifestPath(),
			Timeout:      cfg.EpicTimeout(),
		}),
		SteamResolver: resolver.FindSteamExe,
		InjectorPath:  cfg.InjectorPath(),
	})

	report := launcher.Launch(ctx, *flags.Pipe, gamePath, flags.UseInjector(cfg), pref)
	log.Info().Object("report", report).Msg("launch finished")

	if !report.Launched {
		_, _ = fmt.Println(report.ManualInstructions)
		return nil
	}
	_, _ = fmt.Printf("Rocket League launched via %s (pipe %d)\n", report.Method, report.PipeID)

	if *flags.Wait && report.Process != nil {
		log.Info().Int("pid", report.Process.Pid).Msg("waiting for game to exit")
		state, err := helpers.WaitForExit(ctx, report.Process)
		switch {
		case errors.Is(err, context.Canceled):
			log.Info().Bool("running", helpers.IsProcessRunning(report.Process)).Msg("stopped waiting for game")
		case err != nil:
			return fmt.Errorf("error waiting for game: %w", err)
		default:
			log.Info().Int("exitCode", state.ExitCode()).Msg("game exited")
		}
	}

	return nil
}
