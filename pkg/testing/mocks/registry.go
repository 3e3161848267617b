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

package mocks

import "github.com/stretchr/testify/mock"

// MockRegistryReader is a testify mock for steam.RegistryReader.
type MockRegistryReader struct {
	mock.Mock
}

func (m *MockRegistryReader) ReadString(keyPath, valueName string) (string, error) {
	args := m.Called(keyPath, valueName)
	//nolint:wrapcheck // Mock returns are already wrapped by caller
	return args.String(0), args.Error(1)
}
