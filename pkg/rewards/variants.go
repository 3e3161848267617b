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
	"errors"

	"github.com/ZaparooProject/zaparoo-rlgym/pkg/gamestates"
)

// ConstantReward pays the same value every step and at episode end.
type ConstantReward struct {
	Value float64
}

func NewConstantReward(value float64) *ConstantReward {
	return &ConstantReward{Value: value}
}

func (*ConstantReward) Reset() {}

func (c *ConstantReward) GetReward(_ *gamestates.GameState) float64 {
	return c.Value
}

func (c *ConstantReward) GetFinalReward(_ *gamestates.GameState) float64 {
	return c.Value
}

// GoalScoredReward pays the number of goals a team scored since the previous
// call. The first state after Reset only records the baseline.
type GoalScoredReward struct {
	Team      int
	lastScore int
	primed    bool
}

func NewGoalScoredReward(team int) *GoalScoredReward {
	return &GoalScoredReward{Team: team}
}

func (g *GoalScoredReward) Reset() {
	g.lastScore = 0
	g.primed = false
}

func (g *GoalScoredReward) GetReward(state *gamestates.GameState) float64 {
	score := state.Score(g.Team)
	if !g.primed {
		g.primed = true
		g.lastScore = score
		return 0
	}
	delta := score - g.lastScore
	g.lastScore = score
	return float64(delta)
}

func (g *GoalScoredReward) GetFinalReward(state *gamestates.GameState) float64 {
	return g.GetReward(state)
}

var ErrWeightCount = errors.New("reward weight count does not match function count")

// CombinedReward is a weighted sum of other reward functions.
type CombinedReward struct {
	functions []RewardFunction
	weights   []float64
}

// NewCombinedReward weights every function by 1 when weights is nil.
func NewCombinedReward(functions []RewardFunction, weights []float64) (*CombinedReward, error) {
	if weights == nil {
		weights = make([]float64, len(functions))
		for i := range weights {
			weights[i] = 1
		}
	}
	if len(weights) != len(functions) {
		return nil, ErrWeightCount
	}
	return &CombinedReward{functions: functions, weights: weights}, nil
}

func (c *CombinedReward) Reset() {
	for _, f := range c.functions {
		f.Reset()
	}
}

func (c *CombinedReward) GetReward(state *gamestates.GameState) float64 {
	var total float64
	for i, f := range c.functions {
		total += c.weights[i] * f.GetReward(state)
	}
	return total
}

func (c *CombinedReward) GetFinalReward(state *gamestates.GameState) float64 {
	var total float64
	for i, f := range c.functions {
		total += c.weights[i] * f.GetFinalReward(state)
	}
	return total
}

var (
	_ RewardFunction = (*ConstantReward)(nil)
	_ RewardFunction = (*GoalScoredReward)(nil)
	_ RewardFunction = (*CombinedReward)(nil)
)
