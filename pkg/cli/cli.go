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

package cli

import (
	"flag"
	"fmt"
	"io"

	"github.com/ZaparooProject/zaparoo-rlgym/pkg/config"
	"github.com/ZaparooProject/zaparoo-rlgym/pkg/gamelaunch"
	"github.com/ZaparooProject/zaparoo-rlgym/pkg/helpers"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

type Flags struct {
	set         *flag.FlagSet
	Pipe        *int
	Path        *string
	Injector    *bool
	Launcher    *string
	LoginTricks *bool
	ConfigDir   *string
	Wait        *bool
	Version     *bool
}

// SetupFlags defines the launcher flags on set. Values given on the command
// line win over the config file.
func SetupFlags(set *flag.FlagSet) *Flags {
	return &Flags{
		set: set,
		Pipe: set.Int(
			"pipe",
			0,
			"pipe id the game listens on for the environment",
		),
		Path: set.String(
			"path",
			"",
			"path to "+gamelaunch.ProgramName+", tried before any store",
		),
		Injector: set.Bool(
			"injector",
			false,
			"run the multi-instance injector after a direct launch",
		),
		Launcher: set.String(
			"launcher",
			"",
			"preferred store: steam or epic",
		),
		LoginTricks: set.Bool(
			"login-tricks",
			false,
			"relaunch through the Epic launcher to pick up a login session",
		),
		ConfigDir: set.String(
			"config-dir",
			"",
			"directory holding "+config.CfgFile+" and logs",
		),
		Wait: set.Bool(
			"wait",
			false,
			"stay running until a directly launched game exits",
		),
		Version: set.Bool(
			"version",
			false,
			"print version and exit",
		),
	}
}

func (f *Flags) isFlagPassed(name string) bool {
	found := false
	f.set.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			found = true
		}
	})
	return found
}

// Pre parses args and handles flags which need no config. It returns true
// if the program should exit.
func (f *Flags) Pre(args []string, out io.Writer) (bool, error) {
	if err := f.set.Parse(args); err != nil {
		return true, fmt.Errorf("failed to parse flags: %w", err)
	}

	if *f.Version {
		_, _ = fmt.Fprintf(out, "RLGym launcher v%s\n", config.AppVersion)
		return true, nil
	}

	if *f.Pipe <= 0 {
		return true, fmt.Errorf("pipe id must be positive, got %d", *f.Pipe)
	}
	return false, nil
}

func (f *Flags) configDir() string {
	if *f.ConfigDir != "" {
		return *f.ConfigDir
	}
	return helpers.ConfigDir()
}

// Setup loads the config and starts logging into the config directory.
//
//nolint:gocritic // config struct copied for immutability
func (f *Flags) Setup(fs afero.Fs, defaults config.Values, writers []io.Writer) (*config.Instance, error) {
	dir := f.configDir()

	cfg, err := config.NewConfig(fs, dir, defaults)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	if err := helpers.InitLogging(dir, cfg.DebugLogging(), writers); err != nil {
		return nil, fmt.Errorf("error initializing logging: %w", err)
	}

	log.Info().Msgf("version: %s", config.AppVersion)
	log.Info().Msgf("config path: %s", cfg.Path())

	return cfg, nil
}

// Preference merges the configured store preference with any flags given.
func (f *Flags) Preference(cfg *config.Instance) (gamelaunch.Preference, error) {
	pref, err := gamelaunch.PreferenceFromConfig(cfg)
	if err != nil {
		return gamelaunch.Preference{}, fmt.Errorf("invalid launcher in config: %w", err)
	}

	if f.isFlagPassed("launcher") {
		kind, err := gamelaunch.ParseLauncherKind(*f.Launcher)
		if err != nil {
			return gamelaunch.Preference{}, err
		}
		pref.Launcher = kind
	}
	if f.isFlagPassed("login-tricks") {
		pref.UseLoginTricks = *f.LoginTricks
	}
	return pref, nil
}

func (f *Flags) GamePath(cfg *config.Instance) string {
	if f.isFlagPassed("path") {
		return *f.Path
	}
	return cfg.GamePath()
}

func (f *Flags) UseInjector(cfg *config.Instance) bool {
	if f.isFlagPassed("injector") {
		return *f.Injector
	}
	return cfg.UseInjector()
}
