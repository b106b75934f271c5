// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package overlay implements the floating highlight engine for the project list.
package overlay

import (
	"math"
	"time"
)

// SelectionGlowController runs the time-limited glow pulse shown when the
// tracked target becomes the selected row. The level is a pure function of
// the injected clock, so no timer or frame callback is owned here; the
// coordinator simply keeps frames flowing while a pulse is live.
type SelectionGlowController struct {
	tuning  Tuning
	reduced bool
	clock   Clock

	triggeredAt time.Time
}

// NewSelectionGlowController creates a controller with no pulse in flight.
func NewSelectionGlowController(tuning Tuning, motion ReducedMotionSignal, clock Clock) *SelectionGlowController {
	if clock == nil {
		clock = SystemClock
	}
	return &SelectionGlowController{
		tuning:  tuning,
		reduced: motion.Enabled(),
		clock:   clock,
	}
}

// Trigger starts the decay from full level, cancelling any pulse already in
// flight.
func (g *SelectionGlowController) Trigger() {
	g.triggeredAt = g.clock.Now()
}

// Cancel drops any in-flight pulse. Idempotent.
func (g *SelectionGlowController) Cancel() {
	g.triggeredAt = time.Time{}
}

// Level returns the current glow level in [0,1]. Full motion decays with a
// power-law ease-out over the configured duration; reduced motion holds the
// full level briefly and then cuts to zero.
func (g *SelectionGlowController) Level() float64 {
	if g.triggeredAt.IsZero() {
		return 0
	}
	elapsed := float64(g.clock.Now().Sub(g.triggeredAt)) / float64(time.Millisecond)

	if g.reduced {
		if elapsed < g.tuning.GlowReducedHoldMs {
			return 1
		}
		return 0
	}

	p := elapsed / g.tuning.GlowDurationMs
	if p >= 1 {
		return 0
	}
	return math.Pow(1-p, g.tuning.GlowExponent)
}

// Active reports whether a pulse is still decaying.
func (g *SelectionGlowController) Active() bool {
	return g.Level() > 0
}
