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

package gamestates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameStateScore(t *testing.T) {
	t.Parallel()

	state := &GameState{BlueScore: 2, OrangeScore: 5}

	assert.Equal(t, 2, state.Score(TeamBlue))
	assert.Equal(t, 5, state.Score(TeamOrange))
}

func TestGameStatePlayer(t *testing.T) {
	t.Parallel()

	state := &GameState{
		LastTouch: 2,
		Players: []PlayerData{
			{CarID: 1, TeamNum: TeamBlue},
			{CarID: 2, TeamNum: TeamOrange, BallTouched: true},
		},
	}

	t.Run("finds_by_car_id", func(t *testing.T) {
		t.Parallel()

		p, ok := state.Player(state.LastTouch)

		assert.True(t, ok)
		assert.Equal(t, TeamOrange, p.TeamNum)
		assert.True(t, p.BallTouched)
	})

	t.Run("missing_car_id", func(t *testing.T) {
		t.Parallel()

		_, ok := state.Player(9)

		assert.False(t, ok)
	})
}
