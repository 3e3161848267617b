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

package gamelaunch

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ZaparooProject/zaparoo-rlgym/pkg/config"
	"github.com/ZaparooProject/zaparoo-rlgym/pkg/helpers"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	GameID       = 252950
	ProgramName  = "RocketLeague.exe"
	InjectorName = "RLMultiInjector.exe"
)

// IdealArgs are the command line arguments the game needs to open the
// controller pipe.
func IdealArgs(pipeID int) []string {
	return []string{"-pipe", strconv.Itoa(pipeID), "-nomovie"}
}

// SteamRunGameURI builds the steam:// URI which starts the game with
// IdealArgs, spaces encoded as %20.
func SteamRunGameURI(pipeID int) string {
	return fmt.Sprintf("steam://rungameid/%d//%s", GameID, strings.Join(IdealArgs(pipeID), "%20"))
}

// DefaultInjectorPath is the injector shipped in the plugin directory next
// to the running binary.
func DefaultInjectorPath() string {
	return filepath.Join(helpers.ExeDir(), "plugin", InjectorName)
}

// GameBinaryPath is the game executable inside an install directory.
func GameBinaryPath(installDir string) string {
	return filepath.Join(installDir, "Binaries", "Win64", ProgramName)
}

// DiscoverGamePath finds the game executable through findInstall, which
// maps a Steam app id to its install directory.
func DiscoverGamePath(fs afero.Fs, findInstall func(appID int) (string, bool)) (string, bool) {
	dir, ok := findInstall(GameID)
	if !ok {
		return "", false
	}
	exe := GameBinaryPath(dir)
	if exists, _ := afero.Exists(fs, exe); !exists {
		log.Debug().Str("path", exe).Msg("Steam install found but game binary is missing")
		return "", false
	}
	return exe, true
}

type LauncherKind string

const (
	LauncherSteam LauncherKind = config.LauncherSteam
	LauncherEpic  LauncherKind = config.LauncherEpic
)

func ParseLauncherKind(s string) (LauncherKind, error) {
	switch k := LauncherKind(strings.ToLower(strings.TrimSpace(s))); k {
	case LauncherSteam, LauncherEpic:
		return k, nil
	default:
		return "", fmt.Errorf("unknown launcher %q, expected %q or %q", s, LauncherSteam, LauncherEpic)
	}
}

// Preference picks the store tried first and whether Epic login tricks are
// allowed. Values are compared and copied, never mutated.
type Preference struct {
	Launcher       LauncherKind
	UseLoginTricks bool
}

// DefaultPreference tries Epic without login tricks, then falls back to Steam.
var DefaultPreference = Preference{Launcher: LauncherEpic}

func PreferenceFromConfig(cfg *config.Instance) (Preference, error) {
	kind, err := ParseLauncherKind(cfg.PreferredLauncher())
	if err != nil {
		return Preference{}, err
	}
	return Preference{Launcher: kind, UseLoginTricks: cfg.LoginTricks()}, nil
}
