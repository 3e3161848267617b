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
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testManifest = "/ProgramData/Epic/UnrealEngineLauncher/LauncherInstalled.dat"

func writeManifest(t *testing.T, fs afero.Fs, body string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, testManifest, []byte(body), 0o600))
}

func TestFindGameBinary(t *testing.T) {
	t.Parallel()

	t.Run("finds_installed_game", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		writeManifest(t, fs, `{"InstallationList":[
			{"InstallLocation":"/games/Fortnite","AppName":"Fortnite","AppVersion":"1"},
			{"InstallLocation":"/games/rocketleague","AppName":"Sugar","AppVersion":"2.41"}
		]}`)
		exe := filepath.Join("/games/rocketleague", "Binaries", "Win64", ProgramName)
		require.NoError(t, afero.WriteFile(fs, exe, []byte{}, 0o755))

		got, err := FindGameBinary(fs, testManifest)

		require.NoError(t, err)
		assert.Equal(t, exe, got)
	})

	t.Run("missing_manifest", func(t *testing.T) {
		t.Parallel()

		_, err := FindGameBinary(afero.NewMemMapFs(), testManifest)

		require.ErrorIs(t, err, ErrNotInstalled)
	})

	t.Run("game_not_listed", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		writeManifest(t, fs, `{"InstallationList":[{"InstallLocation":"/games/x","AppName":"Fortnite"}]}`)

		_, err := FindGameBinary(fs, testManifest)

		require.ErrorIs(t, err, ErrNotInstalled)
	})

	t.Run("listed_but_binary_missing", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		writeManifest(t, fs, `{"InstallationList":[{"InstallLocation":"/games/rl","AppName":"Sugar"}]}`)

		_, err := FindGameBinary(fs, testManifest)

		require.ErrorIs(t, err, ErrNotInstalled)
	})

	t.Run("malformed_manifest", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		writeManifest(t, fs, `{"InstallationList":`)

		_, err := FindGameBinary(fs, testManifest)

		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotInstalled)
	})
}
