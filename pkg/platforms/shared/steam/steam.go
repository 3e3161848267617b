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

// Package steam finds the Steam client executable on the host.
package steam

import (
	"errors"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	// RegistryKeyPath is relative to HKEY_CURRENT_USER.
	RegistryKeyPath = `Software\Valve\Steam`
	ExeValueName    = "SteamExe"
)

var (
	ErrRegistryUnavailable = errors.New("registry not available on this platform")
	ErrValueNotFound       = errors.New("registry value not found")
	ErrUnexpectedType      = errors.New("registry value is not a string")
)

// RegistryReader reads string values from the current user's registry hive.
type RegistryReader interface {
	ReadString(keyPath, valueName string) (string, error)
}

// Resolver locates steam.exe. A configured override wins when it exists,
// otherwise the registry is consulted.
type Resolver struct {
	Registry RegistryReader
	Fs       afero.Fs
	Override string
}

// NewResolver leaves Registry nil on platforms without a registry.
func NewResolver(override string) *Resolver {
	r := &Resolver{
		Fs:       afero.NewOsFs(),
		Override: override,
	}
	if RegistryAvailable() {
		r.Registry = NewRegistryReader()
	}
	return r
}

// FindSteamExe never fails: every lookup problem is reported as not found.
func (r *Resolver) FindSteamExe() (string, bool) {
	if r.Override != "" {
		if ok, _ := afero.Exists(r.fs(), r.Override); ok {
			log.Debug().Str("path", r.Override).Msg("using configured Steam executable")
			return r.Override, true
		}
		log.Warn().Str("path", r.Override).Msg("configured Steam executable not found")
	}

	if r.Registry == nil {
		log.Debug().Msg("no registry on this platform, skipping Steam executable lookup")
		return "", false
	}

	val, err := r.Registry.ReadString(RegistryKeyPath, ExeValueName)
	switch {
	case err != nil:
		log.Debug().Err(err).Msg("Steam executable not found in registry")
		return "", false
	case val == "":
		return "", false
	}

	return filepath.Clean(val), true
}

func (r *Resolver) fs() afero.Fs {
	if r.Fs == nil {
		return afero.NewOsFs()
	}
	return r.Fs
}
