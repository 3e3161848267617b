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

package steam

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/andygrunwald/vdf"
	"github.com/rs/zerolog/log"
)

// AppManifest is the part of an appmanifest_<id>.acf file used to find an
// installed game.
type AppManifest struct {
	Name       string
	InstallDir string
	AppID      int
}

// normalizeVDFKeys lowercases keys at every level. VDF keys are case
// insensitive and Steam writes both "AppState" and "appstate".
func normalizeVDFKeys(m map[string]any) map[string]any {
	result := make(map[string]any, len(m))
	for k, v := range m {
		if nested, ok := v.(map[string]any); ok {
			v = normalizeVDFKeys(nested)
		}
		result[strings.ToLower(k)] = v
	}
	return result
}

func (r *Resolver) parseVDF(path string) (map[string]any, error) {
	f, err := r.fs().Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Str("path", path).Msg("error closing vdf file")
		}
	}()

	m, err := vdf.NewParser(f).Parse()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return normalizeVDFKeys(m), nil
}

// ReadAppManifest reads the manifest of appID from a steamapps directory.
func (r *Resolver) ReadAppManifest(steamAppsDir string, appID int) (AppManifest, bool) {
	m, err := r.parseVDF(filepath.Join(steamAppsDir, fmt.Sprintf("appmanifest_%d.acf", appID)))
	if err != nil {
		log.Debug().Err(err).Int("appID", appID).Msg("no app manifest")
		return AppManifest{}, false
	}

	appState, ok := m["appstate"].(map[string]any)
	if !ok {
		log.Warn().Int("appID", appID).Msg("AppState not found in manifest")
		return AppManifest{}, false
	}
	installDir, ok := appState["installdir"].(string)
	if !ok || installDir == "" {
		log.Warn().Int("appID", appID).Msg("installdir not found in manifest")
		return AppManifest{}, false
	}
	name, _ := appState["name"].(string)

	return AppManifest{AppID: appID, Name: name, InstallDir: installDir}, true
}

// libraryDirs lists the steamapps directory of every library which may hold
// appID, starting with mainSteamAppsDir.
func (r *Resolver) libraryDirs(mainSteamAppsDir string, appID int) []string {
	dirs := []string{mainSteamAppsDir}

	m, err := r.parseVDF(filepath.Join(mainSteamAppsDir, "libraryfolders.vdf"))
	if err != nil {
		log.Debug().Err(err).Msg("no extra Steam libraries")
		return dirs
	}
	folders, ok := m["libraryfolders"].(map[string]any)
	if !ok {
		return dirs
	}

	appIDStr := strconv.Itoa(appID)
	for _, v := range folders {
		lib, ok := v.(map[string]any)
		if !ok {
			continue
		}
		if apps, ok := lib["apps"].(map[string]any); ok {
			if _, has := apps[appIDStr]; !has {
				continue
			}
		}
		if path, ok := lib["path"].(string); ok {
			dir := filepath.Join(path, "steamapps")
			if dir != mainSteamAppsDir {
				dirs = append(dirs, dir)
			}
		}
	}
	return dirs
}

// SteamAppsDirs are the main steamapps directories to search: the one next
// to the resolved Steam executable first, then the usual Linux locations.
func (r *Resolver) SteamAppsDirs() []string {
	var dirs []string
	if exe, ok := r.FindSteamExe(); ok {
		dirs = append(dirs, filepath.Join(filepath.Dir(exe), "steamapps"))
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return dirs
	}
	return append(dirs,
		filepath.Join(home, ".steam", "steam", "steamapps"),
		filepath.Join(home, ".local", "share", "Steam", "steamapps"),
		filepath.Join(home, ".var", "app", "com.valvesoftware.Steam", ".steam", "steam", "steamapps"),
	)
}

// FindAppInstallDir returns steamapps/common/<installdir> of appID from the
// first library that has a manifest for it.
func (r *Resolver) FindAppInstallDir(appID int) (string, bool) {
	for _, main := range r.SteamAppsDirs() {
		for _, dir := range r.libraryDirs(main, appID) {
			if m, ok := r.ReadAppManifest(dir, appID); ok {
				path := filepath.Join(dir, "common", m.InstallDir)
				log.Debug().Str("path", path).Int("appID", appID).Msg("found Steam install")
				return path, true
			}
		}
	}
	return "", false
}
