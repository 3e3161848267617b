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

// Package gamestates defines the snapshot of a match that the environment
// hands to reward functions each step.
package gamestates

const (
	TeamBlue   = 0
	TeamOrange = 1
)

// PhysicsObject is the position and motion of the ball or a car in
// uu (Unreal units) and uu/s.
type PhysicsObject struct {
	Position        [3]float64
	LinearVelocity  [3]float64
	AngularVelocity [3]float64
}

type PlayerData struct {
	CarData      PhysicsObject
	CarID        int
	TeamNum      int
	MatchGoals   int
	MatchSaves   int
	MatchShots   int
	MatchDemos   int
	BoostAmount  float64
	OnGround     bool
	BallTouched  bool
	IsDemoed     bool
	HasFlip      bool
	BoostPickups int
}

type GameState struct {
	Players     []PlayerData
	Ball        PhysicsObject
	BlueScore   int
	OrangeScore int
	// LastTouch is the CarID of the last player to touch the ball, -1 if none.
	LastTouch int
}

// Score returns the goals scored by team.
func (s *GameState) Score(team int) int {
	if team == TeamOrange {
		return s.OrangeScore
	}
	return s.BlueScore
}

// Player returns the player with the given car id.
func (s *GameState) Player(carID int) (PlayerData, bool) {
	for _, p := range s.Players {
		if p.CarID == carID {
			return p, true
		}
	}
	return PlayerData{}, false
}
