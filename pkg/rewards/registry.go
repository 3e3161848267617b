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
	"fmt"
	"maps"
	"slices"

	"github.com/ZaparooProject/zaparoo-rlgym/pkg/config"
	"github.com/ZaparooProject/zaparoo-rlgym/pkg/gamestates"
	"github.com/ZaparooProject/zaparoo-rlgym/pkg/helpers/syncutil"
	"github.com/rs/zerolog/log"
)

// Factory builds a fresh reward function value. It returns any so variants
// from outside this module are checked at registration instead of trusted.
type Factory func() any

type Registry struct {
	factories map[string]Factory
	mu        syncutil.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// DefaultRegistry returns a registry holding the built-in variants.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	builtins := map[string]Factory{
		"constant":      func() any { return NewConstantReward(1) },
		"goal_scored":   func() any { return NewGoalScoredReward(gamestates.TeamBlue) },
		"goal_conceded": func() any { return NewGoalScoredReward(gamestates.TeamOrange) },
	}
	for name, f := range builtins {
		if err := reg.Register(name, f); err != nil {
			// built-ins are complete, this can only be a programming error
			panic(err)
		}
	}
	return reg
}

// Register validates a value produced by f and adds it under name.
// Empty names, nil factories, incomplete variants and duplicate names are
// rejected.
func (r *Registry) Register(name string, f Factory) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidRegistration)
	}
	if f == nil {
		return fmt.Errorf("%w: nil factory for %s", ErrInvalidRegistration, name)
	}
	if _, err := AsRewardFunction(f()); err != nil {
		return fmt.Errorf("cannot register %s: %w", name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateRewardFunction, name)
	}
	r.factories[name] = f
	log.Debug().Str("reward", name).Msg("registered reward function")
	return nil
}

func (r *Registry) New(name string) (RewardFunction, error) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRewardFunction, name)
	}
	rf, err := AsRewardFunction(f())
	if err != nil {
		return nil, fmt.Errorf("failed to build %s: %w", name, err)
	}
	return rf, nil
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.factories))
}

// NewFromConfig builds the reward function named in the config.
func NewFromConfig(reg *Registry, cfg *config.Instance) (RewardFunction, error) {
	name := cfg.RewardFunction()
	rf, err := reg.New(name)
	if err != nil {
		return nil, fmt.Errorf("configured reward function: %w", err)
	}
	log.Info().Str("reward", name).Msg("using reward function")
	return rf, nil
}
