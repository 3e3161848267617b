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

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, fs afero.Fs, dir, body string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(dir, 0o750))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, CfgFile), []byte(body), 0o600))
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	t.Run("writes_defaults_when_missing", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		dir := "/cfg/rlgym"

		cfg, err := NewConfig(fs, dir, BaseDefaults)
		require.NoError(t, err)

		exists, err := afero.Exists(fs, filepath.Join(dir, CfgFile))
		require.NoError(t, err)
		assert.True(t, exists)

		assert.Equal(t, LauncherEpic, cfg.PreferredLauncher())
		assert.False(t, cfg.LoginTricks())
		assert.Equal(t, 10*time.Second, cfg.EpicTimeout())
		assert.Equal(t, DefaultRewardFunction, cfg.RewardFunction())
		assert.Equal(t, filepath.Join(dir, CfgFile), cfg.Path())
	})

	t.Run("file_values_override_defaults", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		dir := "/cfg"
		writeConfig(t, fs, dir, `
config_schema = 1
debug_logging = true

[launcher]
preferred = "steam"
login_tricks = true
game_path = "C:\\Games\\rocketleague\\Binaries\\Win64\\RocketLeague.exe"
use_injector = true
steam_exe = "C:\\Steam\\steam.exe"

[rewards]
function = "goal_scored"
`)

		cfg, err := NewConfig(fs, dir, BaseDefaults)
		require.NoError(t, err)

		assert.True(t, cfg.DebugLogging())
		assert.Equal(t, LauncherSteam, cfg.PreferredLauncher())
		assert.True(t, cfg.LoginTricks())
		assert.True(t, cfg.UseInjector())
		assert.Equal(t, `C:\Games\rocketleague\Binaries\Win64\RocketLeague.exe`, cfg.GamePath())
		assert.Equal(t, `C:\Steam\steam.exe`, cfg.SteamExeOverride())
		assert.Equal(t, "goal_scored", cfg.RewardFunction())
		// not in file, default retained
		assert.Equal(t, 10*time.Second, cfg.EpicTimeout())
	})

	t.Run("rejects_unknown_launcher", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		writeConfig(t, fs, "/cfg", "config_schema = 1\n[launcher]\npreferred = \"origin\"\n")

		_, err := NewConfig(fs, "/cfg", BaseDefaults)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Preferred")
	})

	t.Run("error_reporting_needs_dsn", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		writeConfig(t, fs, "/cfg", "config_schema = 1\n[telemetry]\nerror_reporting = true\n")

		cfg, err := NewConfig(fs, "/cfg", BaseDefaults)
		require.NoError(t, err)
		assert.False(t, cfg.ErrorReporting())

		writeConfig(t, fs, "/cfg", `
config_schema = 1
[telemetry]
error_reporting = true
dsn = "https://key@sentry.example.com/1"
`)
		require.NoError(t, cfg.Load())
		assert.True(t, cfg.ErrorReporting())
		assert.Equal(t, "https://key@sentry.example.com/1", cfg.ReportingDSN())
	})

	t.Run("rejects_invalid_dsn", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		writeConfig(t, fs, "/cfg", "config_schema = 1\n[telemetry]\ndsn = \"not a url\"\n")

		_, err := NewConfig(fs, "/cfg", BaseDefaults)
		require.Error(t, err)
	})

	t.Run("rejects_schema_mismatch", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		writeConfig(t, fs, "/cfg", "config_schema = 7\n")

		_, err := NewConfig(fs, "/cfg", BaseDefaults)

		require.ErrorIs(t, err, ErrSchemaMismatch)
	})

	t.Run("rejects_malformed_toml", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		writeConfig(t, fs, "/cfg", "config_schema = [\n")

		_, err := NewConfig(fs, "/cfg", BaseDefaults)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to unmarshal config")
	})
}

func TestNewConfig_EnvPath(t *testing.T) {
	fs := afero.NewMemMapFs()
	custom := "/elsewhere/custom.toml"
	t.Setenv(CfgEnv, custom)

	cfg, err := NewConfig(fs, "/ignored", BaseDefaults)
	require.NoError(t, err)

	assert.Equal(t, custom, cfg.Path())
	exists, err := afero.Exists(fs, custom)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestInstance_PreferredLauncherFromFile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeConfig(t, fs, "/cfg", "config_schema = 1\n[launcher]\npreferred = \"steam\"\nlogin_tricks = true\n")

	cfg, err := NewConfig(fs, "/cfg", BaseDefaults)
	require.NoError(t, err)

	assert.Equal(t, LauncherSteam, cfg.PreferredLauncher())
	assert.True(t, cfg.LoginTricks())
	assert.Equal(t, DefaultEpicTimeout*time.Second, cfg.EpicTimeout())
}

func TestInstance_SaveRoundTrip(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	defaults := BaseDefaults
	defaults.DebugLogging = true
	defaults.Launcher.LoginTricks = true
	_, err := NewConfig(fs, "/cfg", defaults)
	require.NoError(t, err)

	reloaded, err := NewConfig(fs, "/cfg", BaseDefaults)
	require.NoError(t, err)

	assert.True(t, reloaded.LoginTricks())
	assert.True(t, reloaded.DebugLogging())
}
