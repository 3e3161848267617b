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
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

var ErrNotInstalled = errors.New("game not installed through Epic Games Launcher")

// installedManifest is the layout of LauncherInstalled.dat.
type installedManifest struct {
	InstallationList []installation `json:"InstallationList"` //nolint:tagliatelle // Epic's format
}

type installation struct {
	InstallLocation string `json:"InstallLocation"` //nolint:tagliatelle // Epic's format
	AppName         string `json:"AppName"`         //nolint:tagliatelle // Epic's format
	AppVersion      string `json:"AppVersion"`      //nolint:tagliatelle // Epic's format
}

// DefaultManifestPath is where the Epic Games Launcher records installed apps.
func DefaultManifestPath() string {
	programData := os.Getenv("PROGRAMDATA")
	if programData == "" {
		programData = `C:\ProgramData`
	}
	return filepath.Join(programData, "Epic", "UnrealEngineLauncher", "LauncherInstalled.dat")
}

// FindGameBinary returns the path of the game executable recorded in the
// manifest, if it exists on disk.
func FindGameBinary(fs afero.Fs, manifestPath string) (string, error) {
	data, err := afero.ReadFile(fs, manifestPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: no manifest at %s", ErrNotInstalled, manifestPath)
		}
		return "", fmt.Errorf("failed to read Epic manifest: %w", err)
	}

	var manifest installedManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return "", fmt.Errorf("failed to parse Epic manifest: %w", err)
	}

	for _, inst := range manifest.InstallationList {
		if inst.AppName != AppName {
			continue
		}
		exe := filepath.Join(inst.InstallLocation, "Binaries", "Win64", ProgramName)
		if ok, _ := afero.Exists(fs, exe); !ok {
			log.Debug().Str("path", exe).Msg("Epic manifest lists game but binary is missing")
			return "", fmt.Errorf("%w: %s missing", ErrNotInstalled, exe)
		}
		log.Debug().Str("path", exe).Str("version", inst.AppVersion).Msg("found Epic game binary")
		return exe, nil
	}

	return "", fmt.Errorf("%w: %s not in manifest", ErrNotInstalled, AppName)
}
