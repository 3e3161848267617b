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

package config

import "time"

const (
	LauncherSteam = "steam"
	LauncherEpic  = "epic"

	// DefaultEpicTimeout is in seconds.
	DefaultEpicTimeout = 10
)

type Launcher struct {
	Preferred    string `toml:"preferred" validate:"oneof=steam epic"`
	GamePath     string `toml:"game_path,omitempty"`
	InjectorPath string `toml:"injector_path,omitempty"`
	SteamExe     string `toml:"steam_exe,omitempty"`
	EpicManifest string `toml:"epic_manifest,omitempty"`
	EpicTimeout  int    `toml:"epic_timeout" validate:"min=1,max=300"`
	LoginTricks  bool   `toml:"login_tricks"`
	UseInjector  bool   `toml:"use_injector"`
	DiscoverPath bool   `toml:"discover_game_path"`
}

func (c *Instance) PreferredLauncher() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Launcher.Preferred
}

func (c *Instance) LoginTricks() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Launcher.LoginTricks
}

func (c *Instance) GamePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Launcher.GamePath
}

func (c *Instance) UseInjector() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Launcher.UseInjector
}

// DiscoverGamePath allows looking up the game in Steam libraries when no
// game path is set, so it can be started directly.
func (c *Instance) DiscoverGamePath() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Launcher.DiscoverPath
}

func (c *Instance) InjectorPath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Launcher.InjectorPath
}

// SteamExeOverride is a user-set Steam executable, checked before the registry.
func (c *Instance) SteamExeOverride() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Launcher.SteamExe
}

func (c *Instance) EpicManifestPath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Launcher.EpicManifest
}

func (c *Instance) EpicTimeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return time.Duration(c.vals.Launcher.EpicTimeout) * time.Second
}
