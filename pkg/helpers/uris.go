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
	"fmt"
	"runtime"
	"slices"
	"strings"

	"github.com/ZaparooProject/zaparoo-rlgym/pkg/helpers/command"
)

const MaxURILength = 8192

// LaunchSchemes are the URI schemes which may be handed to the OS handler.
var LaunchSchemes = []string{"steam", "com.epicgames.launcher", "http", "https"}

var ErrURIScheme = errors.New("URI scheme not allowed")

func ValidateLaunchURI(uri string) error {
	if len(uri) > MaxURILength {
		return fmt.Errorf("URI too long: %d bytes (max %d)", len(uri), MaxURILength)
	}
	scheme, _, found := strings.Cut(uri, "://")
	if !found {
		return fmt.Errorf("%w: missing scheme in %q", ErrURIScheme, uri)
	}
	scheme = strings.ToLower(scheme)
	if slices.Contains(LaunchSchemes, scheme) {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrURIScheme, scheme)
}

// URIHandlerCommand returns the command which asks the desktop environment
// of goos to open uri with its registered handler.
func URIHandlerCommand(goos, uri string) (name string, args []string) {
	switch goos {
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", uri}
	case "darwin":
		return "open", []string{uri}
	default:
		return "xdg-open", []string{uri}
	}
}

// OpenURI opens uri with the host's default handler. The handler process
// is not waited on.
func OpenURI(ctx context.Context, cmd command.Executor, uri string) error {
	return openURI(ctx, cmd, runtime.GOOS, uri)
}

func openURI(ctx context.Context, cmd command.Executor, goos, uri string) error {
	if err := ValidateLaunchURI(uri); err != nil {
		return err
	}
	name, args := URIHandlerCommand(goos, uri)
	opts := command.StartOptions{HideWindow: true}
	if err := cmd.StartWithOptions(ctx, opts, name, args...); err != nil {
		return fmt.Errorf("failed to open URI with %s: %w", name, err)
	}
	return nil
}
