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
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ZaparooProject/zaparoo-rlgym/pkg/helpers/command"
	"github.com/ZaparooProject/zaparoo-rlgym/pkg/testing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const steamURI = "steam://rungameid/252950//-pipe%2012345%20-nomovie"

func TestValidateLaunchURI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		uri     string
		wantErr bool
	}{
		{name: "steam_rungameid", uri: steamURI},
		{name: "epic_launcher", uri: "com.epicgames.launcher://apps/Sugar?action=launch&silent=true"},
		{name: "uppercase_scheme", uri: "STEAM://rungameid/252950"},
		{name: "https", uri: "https://example.com/"},
		{name: "file_scheme", uri: "file:///etc/passwd", wantErr: true},
		{name: "javascript", uri: "javascript:alert(1)", wantErr: true},
		{name: "no_scheme", uri: "rungameid/252950", wantErr: true},
		{name: "too_long", uri: "steam://" + strings.Repeat("a", MaxURILength), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateLaunchURI(tt.uri)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateLaunchURI_AcceptsEveryLaunchScheme(t *testing.T) {
	t.Parallel()

	for _, scheme := range LaunchSchemes {
		require.NoError(t, ValidateLaunchURI(scheme+"://x"), scheme)
	}
	require.ErrorIs(t, ValidateLaunchURI("steamx://x"), ErrURIScheme)
}

func TestURIHandlerCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
	}{
		{goos: "windows", wantName: "rundll32", wantArgs: []string{"url.dll,FileProtocolHandler", steamURI}},
		{goos: "darwin", wantName: "open", wantArgs: []string{steamURI}},
		{goos: "linux", wantName: "xdg-open", wantArgs: []string{steamURI}},
		{goos: "freebsd", wantName: "xdg-open", wantArgs: []string{steamURI}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			t.Parallel()

			name, args := URIHandlerCommand(tt.goos, steamURI)

			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestOpenURI(t *testing.T) {
	t.Parallel()

	t.Run("starts_platform_handler", func(t *testing.T) {
		t.Parallel()

		cmd := &mocks.MockCommandExecutor{}
		cmd.On("StartWithOptions", mock.Anything, command.StartOptions{HideWindow: true},
			"xdg-open", []string{steamURI}).Return(nil).Once()

		err := openURI(context.Background(), cmd, "linux", steamURI)

		require.NoError(t, err)
		cmd.AssertExpectations(t)
	})

	t.Run("rejects_disallowed_scheme_without_spawning", func(t *testing.T) {
		t.Parallel()

		cmd := &mocks.MockCommandExecutor{}

		err := openURI(context.Background(), cmd, "linux", "file:///etc/passwd")

		require.ErrorIs(t, err, ErrURIScheme)
		cmd.AssertNotCalled(t, "StartWithOptions", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("wraps_handler_failure", func(t *testing.T) {
		t.Parallel()

		cmd := &mocks.MockCommandExecutor{}
		cmd.On("StartWithOptions", mock.Anything, mock.Anything, "open", mock.Anything).
			Return(errors.New("exec: not found")).Once()

		err := openURI(context.Background(), cmd, "darwin", steamURI)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open URI with open")
	})
}
