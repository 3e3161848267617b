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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZaparooProject/zaparoo-rlgym/pkg/config"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

// FSHelper lays out config files, game binaries and store manifests on an
// afero filesystem for tests.
type FSHelper struct {
	Fs afero.Fs
}

func NewMemoryFS() *FSHelper {
	return &FSHelper{
		Fs: afero.NewMemMapFs(),
	}
}

// NewOSFS uses the real filesystem, for tests that also spawn processes.
func NewOSFS() *FSHelper {
	return &FSHelper{
		Fs: afero.NewOsFs(),
	}
}

func (h *FSHelper) writeFile(path string, data []byte, perm os.FileMode) error {
	if err := h.Fs.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := afero.WriteFile(h.Fs, path, data, perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// CreateConfigFile writes vals as a TOML config file at path.
//
//nolint:gocritic // test helper takes values by copy
func (h *FSHelper) CreateConfigFile(path string, vals config.Values) error {
	data, err := toml.Marshal(&vals)
	if err != nil {
		return fmt.Errorf("failed to marshal config to TOML: %w", err)
	}
	return h.writeFile(path, data, 0o600)
}

// CreateExecutable writes an empty file with the executable bit set.
func (h *FSHelper) CreateExecutable(path string) error {
	return h.writeFile(path, []byte{}, 0o755)
}

// CreateEpicManifest writes a LauncherInstalled.dat listing each app name
// against its install location.
func (h *FSHelper) CreateEpicManifest(path string, installs map[string]string) error {
	type installation struct {
		InstallLocation string `json:"InstallLocation"` //nolint:tagliatelle // Epic's format
		AppName         string `json:"AppName"`         //nolint:tagliatelle // Epic's format
	}
	list := make([]installation, 0, len(installs))
	for app, loc := range installs {
		list = append(list, installation{InstallLocation: loc, AppName: app})
	}

	data, err := json.MarshalIndent(map[string]any{"InstallationList": list}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal Epic manifest: %w", err)
	}
	return h.writeFile(path, data, 0o600)
}
