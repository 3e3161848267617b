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

package gamelaunch

import (
	"errors"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Step names one launch method in fallback order.
type Step string

const (
	StepDirectPath     Step = "direct_path"
	StepEpicLoginTrick Step = "epic_login_trick"
	StepEpicSimple     Step = "epic_simple"
	StepSteamExe       Step = "steam_exe"
	StepSteamCLI       Step = "steam_cli"
	StepSteamURI       Step = "steam_uri"
)

// Steps lists every step in the order they are tried.
var Steps = []Step{
	StepDirectPath,
	StepEpicLoginTrick,
	StepEpicSimple,
	StepSteamExe,
	StepSteamCLI,
	StepSteamURI,
}

var (
	ErrGamePathNotFound = errors.New("game path is not an existing file")
	ErrSteamNotFound    = errors.New("steam executable not found")
)

type Attempt struct {
	Err       error
	Step      Step
	Succeeded bool
}

// Report describes one Launch call. Process is only set for direct path
// launches; every other method hands the game off to a store client.
type Report struct {
	Process            *os.Process
	ManualInstructions string
	Method             Step
	Attempts           []Attempt
	PipeID             int
	ID                 uuid.UUID
	Launched           bool
}

func newReport(pipeID int) *Report {
	return &Report{ID: uuid.New(), PipeID: pipeID}
}

func (r *Report) fail(step Step, err error) {
	r.Attempts = append(r.Attempts, Attempt{Step: step, Err: err})
}

func (r *Report) succeed(step Step) {
	r.Attempts = append(r.Attempts, Attempt{Step: step, Succeeded: true})
	r.Method = step
	r.Launched = true
}

// AttemptedSteps returns the steps tried, in order.
func (r *Report) AttemptedSteps() []Step {
	steps := make([]Step, 0, len(r.Attempts))
	for _, a := range r.Attempts {
		steps = append(steps, a.Step)
	}
	return steps
}

func (r *Report) MarshalZerologObject(e *zerolog.Event) {
	e.Str("id", r.ID.String()).
		Int("pipe", r.PipeID).
		Bool("launched", r.Launched)
	if r.Launched {
		e.Str("method", string(r.Method))
	}
	arr := zerolog.Arr()
	for _, a := range r.Attempts {
		arr.Dict(zerolog.Dict().
			Str("step", string(a.Step)).
			Bool("ok", a.Succeeded).
			AnErr("error", a.Err))
	}
	e.Array("attempts", arr)
}
