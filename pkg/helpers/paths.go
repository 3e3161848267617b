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
	"os"
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"
)

const (
	// AppDir is the folder name used under the OS config directory.
	AppDir = "rlgym"
	// UserDir next to the binary turns the install portable.
	UserDir = "user"
	// ExeEnv overrides the executable path used to locate UserDir.
	ExeEnv = "RLGYM_EXE"
)

func ExeDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}

	return filepath.Dir(exe)
}

var (
	userDirCache       string
	userDirCacheExists bool
	userDirOnce        sync.Once
)

// HasUserDir reports whether a "user" directory exists next to the binary and
// returns its path. The result is cached after the first call.
func HasUserDir() (string, bool) {
	userDirOnce.Do(func() {
		userDirCache, userDirCacheExists = findUserDir(os.Getenv(ExeEnv))
	})
	return userDirCache, userDirCacheExists
}

func findUserDir(exePath string) (string, bool) {
	if exePath == "" {
		var err error
		exePath, err = os.Executable()
		if err != nil {
			return "", false
		}
	}

	userDir := filepath.Join(filepath.Dir(exePath), UserDir)
	info, err := os.Stat(userDir)
	if err != nil || !info.IsDir() {
		return "", false
	}
	return userDir, true
}

// ConfigDir is where the config file and logs live: the portable user
// directory if present, otherwise rlgym under the XDG config home.
func ConfigDir() string {
	if v, ok := HasUserDir(); ok {
		return v
	}
	return filepath.Join(xdg.ConfigHome, AppDir)
}
