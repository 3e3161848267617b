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

package rewards

import (
	"testing"

	"github.com/ZaparooProject/zaparoo-rlgym/pkg/gamestates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstantReward(t *testing.T) {
	t.Parallel()

	r := NewConstantReward(0.25)
	r.Reset()
	state := &gamestates.GameState{}

	assert.InDelta(t, 0.25, r.GetReward(state), 0)
	assert.InDelta(t, 0.25, r.GetFinalReward(state), 0)
}

func TestGoalScoredReward(t *testing.T) {
	t.Parallel()

	r := NewGoalScoredReward(gamestates.TeamOrange)

	// first call sets the baseline
	assert.InDelta(t, 0.0, r.GetReward(&gamestates.GameState{OrangeScore: 3}), 0)
	assert.InDelta(t, 0.0, r.GetReward(&gamestates.GameState{OrangeScore: 3, BlueScore: 1}), 0)
	assert.InDelta(t, 1.0, r.GetReward(&gamestates.GameState{OrangeScore: 4, BlueScore: 1}), 0)
	assert.InDelta(t, 0.0, r.GetFinalReward(&gamestates.GameState{OrangeScore: 4, BlueScore: 2}), 0)

	r.Reset()
	assert.InDelta(t, 0.0, r.GetReward(&gamestates.GameState{}), 0)
	assert.InDelta(t, 2.0, r.GetFinalReward(&gamestates.GameState{OrangeScore: 2}), 0)
}

func TestCombinedReward(t *testing.T) {
	t.Parallel()

	t.Run("weighted_sum", func(t *testing.T) {
		t.Parallel()

		p := &pointerReward{}
		c, err := NewCombinedReward(
			[]RewardFunction{NewConstantReward(1), p},
			[]float64{2, 4},
		)
		require.NoError(t, err)

		state := &gamestates.GameState{}
		assert.InDelta(t, 4.0, c.GetReward(state), 1e-9)
		assert.InDelta(t, 10.0, c.GetFinalReward(state), 1e-9)

		c.Reset()
		assert.Equal(t, 1, p.resets)
	})

	t.Run("nil_weights_default_to_one", func(t *testing.T) {
		t.Parallel()

		c, err := NewCombinedReward(
			[]RewardFunction{NewConstantReward(1), NewConstantReward(3)},
			nil,
		)
		require.NoError(t, err)

		assert.InDelta(t, 4.0, c.GetReward(&gamestates.GameState{}), 1e-9)
	})

	t.Run("mismatched_weights", func(t *testing.T) {
		t.Parallel()

		_, err := NewCombinedReward([]RewardFunction{NewConstantReward(1)}, []float64{1, 2})

		require.ErrorIs(t, err, ErrWeightCount)
	})
}
