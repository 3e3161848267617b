//go:build windows

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
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sys/windows/registry"
)

func RegistryAvailable() bool {
	return true
}

func NewRegistryReader() RegistryReader {
	return windowsRegistry{}
}

type windowsRegistry struct{}

// ReadString only accepts REG_SZ values, REG_EXPAND_SZ is rejected.
func (windowsRegistry) ReadString(keyPath, valueName string) (string, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, keyPath, registry.QUERY_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrValueNotFound, keyPath)
		}
		return "", fmt.Errorf("open registry key %s: %w", keyPath, err)
	}
	defer func() {
		if closeErr := key.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing registry key")
		}
	}()

	val, valType, err := key.GetStringValue(valueName)
	switch {
	case errors.Is(err, registry.ErrNotExist):
		return "", fmt.Errorf("%w: %s\\%s", ErrValueNotFound, keyPath, valueName)
	case errors.Is(err, registry.ErrUnexpectedType):
		return "", fmt.Errorf("%w: %s\\%s", ErrUnexpectedType, keyPath, valueName)
	case err != nil:
		return "", fmt.Errorf("read registry value %s: %w", valueName, err)
	case valType != registry.SZ:
		return "", fmt.Errorf("%w: %s\\%s has type %d", ErrUnexpectedType, keyPath, valueName, valType)
	}
	return val, nil
}
