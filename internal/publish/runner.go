// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package publish models the publish pipeline's data layer.
package publish

import (
	"context"
	"time"
)

// Result reports the outcome of one executed plan step.
type Result struct {
	StepID     string        `json:"step_id"`
	ExitCode   int           `json:"exit_code"`
	Stdout     string        `json:"stdout"`
	Stderr     string        `json:"stderr"`
	Duration   time.Duration `json:"duration"`
	FinishedAt time.Time     `json:"finished_at"`
}

// Succeeded reports whether the step exited cleanly.
func (r Result) Succeeded() bool {
	return r.ExitCode == 0
}

// Runner executes compiled plans. Process execution lives in the backend;
// this repository only defines the seam the UI talks through.
type Runner interface {
	// Run executes the plan's steps in order, stopping at the first
	// failure. The context cancels the in-flight step.
	Run(ctx context.Context, plan Plan) ([]Result, error)
}
