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

// Package rewards declares the reward function contract used by the RL
// environment and a registry for selecting variants by name at
// configuration time.
package rewards

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/ZaparooProject/zaparoo-rlgym/pkg/gamestates"
)

var (
	ErrIncompleteRewardFunction = errors.New("incomplete reward function")
	ErrDuplicateRewardFunction  = errors.New("reward function already registered")
	ErrUnknownRewardFunction    = errors.New("unknown reward function")
	ErrInvalidRegistration      = errors.New("invalid reward function registration")
)

// RewardFunction scores environment states. Implementations carry their own
// per-episode state and must support all three methods.
type RewardFunction interface {
	// Reset reinitializes internal state at the start of an episode.
	Reset()

	// GetReward returns the reward for the current step.
	GetReward(state *gamestates.GameState) float64

	// GetFinalReward returns the reward for the terminal state of an episode.
	GetFinalReward(state *gamestates.GameState) float64
}

var rewardFunctionType = reflect.TypeFor[RewardFunction]()

// AsRewardFunction checks that v implements every RewardFunction method and
// returns it as one. The error names each missing or mistyped method.
func AsRewardFunction(v any) (RewardFunction, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil value", ErrIncompleteRewardFunction)
	}
	if rf, ok := v.(RewardFunction); ok {
		return rf, nil
	}
	missing := missingMethods(reflect.TypeOf(v))
	return nil, fmt.Errorf(
		"%w: %T lacks %s",
		ErrIncompleteRewardFunction,
		v,
		strings.Join(missing, ", "),
	)
}

func missingMethods(t reflect.Type) []string {
	var missing []string
	for i := range rewardFunctionType.NumMethod() {
		want := rewardFunctionType.Method(i)
		got, ok := t.MethodByName(want.Name)
		if !ok {
			missing = append(missing, want.Name)
			continue
		}
		if !sameSignature(got.Type, want.Type) {
			missing = append(missing, want.Name+" (signature mismatch)")
		}
	}
	return missing
}

// sameSignature compares a concrete method type, which carries the receiver
// as its first input, against an interface method type.
func sameSignature(concrete, iface reflect.Type) bool {
	if concrete.NumIn() != iface.NumIn()+1 || concrete.NumOut() != iface.NumOut() {
		return false
	}
	for i := range iface.NumIn() {
		if concrete.In(i+1) != iface.In(i) {
			return false
		}
	}
	for i := range iface.NumOut() {
		if concrete.Out(i) != iface.Out(i) {
			return false
		}
	}
	return true
}
