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
	"github.com/ZaparooProject/zaparoo-rlgym/pkg/config"
	"github.com/spf13/afero"
)

// NewTestConfig creates a config instance with base defaults backed by fs,
// or by a fresh in-memory filesystem when fs is nil.
func NewTestConfig(fs afero.Fs, configDir string) (*config.Instance, error) {
	if fs == nil {
		fs = afero.NewMemMapFs()
	}
	//nolint:wrapcheck // test helper
	return config.NewConfig(fs, configDir, config.BaseDefaults)
}
