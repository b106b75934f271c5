// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package overlay implements the floating highlight engine for the project list.
package overlay

import (
	"math"
	"time"
)

// =============================================================================
// DYNAMICS STATE
// =============================================================================

// DynamicsState holds the secondary visual parameters derived from overlay
// motion. Tilt is in degrees, offsets in pixels, TrailOpacity and
// MorphStretch in [0,1], TrailScale a multiplier around 1, and HighlightX/Y
// in percent of the overlay surface.
type DynamicsState struct {
	TiltX         float64
	TiltY         float64
	TrailOpacity  float64
	TrailOffsetX  float64
	TrailOffsetY  float64
	TrailScale    float64
	HighlightX    float64
	HighlightY    float64
	MorphStretch  float64
	ShadowOffsetX float64
	ShadowOffsetY float64
}

// NeutralDynamics returns the at-rest baseline. The specular highlight sits
// centered until motion moves it; decay retains its last position instead of
// recentering.
func NeutralDynamics() DynamicsState {
	return DynamicsState{
		TrailScale: 1,
		HighlightX: 50,
		HighlightY: 50,
	}
}

// neutralized returns s with every motion parameter back at baseline while
// retaining the highlight position.
func (s DynamicsState) neutralized() DynamicsState {
	n := NeutralDynamics()
	n.HighlightX = s.HighlightX
	n.HighlightY = s.HighlightY
	return n
}

// =============================================================================
// DYNAMICS DERIVER
// =============================================================================

// DynamicsDeriver turns the sequence of committed target rectangles into
// decaying motion effects. Refreshes are rate-limited so per-pixel pointer
// jitter does not retrigger the full effect set, and every refresh schedules
// a decay back to baseline that a newer commit supersedes.
type DynamicsDeriver struct {
	tuning  Tuning
	reduced bool
	clock   Clock

	state         DynamicsState
	lastRefresh   time.Time
	decayDeadline time.Time
}

// NewDynamicsDeriver creates a deriver at the neutral baseline.
func NewDynamicsDeriver(tuning Tuning, motion ReducedMotionSignal, clock Clock) *DynamicsDeriver {
	if clock == nil {
		clock = SystemClock
	}
	return &DynamicsDeriver{
		tuning:  tuning,
		reduced: motion.Enabled(),
		clock:   clock,
		state:   NeutralDynamics(),
	}
}

// OnTargetCommitted derives motion effects from a target commit. prev is the
// previously committed rectangle, nil on the first commit. First commits and
// reduced motion leave the dynamics neutral.
func (d *DynamicsDeriver) OnTargetCommitted(next Rect, prev *Rect) {
	if prev == nil || d.reduced {
		return
	}

	dx := next.Left - prev.Left
	dy := next.Top - prev.Top
	dist := math.Hypot(dx, dy)
	if dist < d.tuning.DynamicsMinDistance {
		return
	}

	now := d.clock.Now()
	if !d.lastRefresh.IsZero() && dist < d.tuning.DynamicsLargeDistance {
		elapsed := float64(now.Sub(d.lastRefresh)) / float64(time.Millisecond)
		if elapsed < d.tuning.DynamicsRefreshMs {
			return
		}
	}

	t := d.tuning
	d.state = DynamicsState{
		// Lean into the motion: vertical travel tips the card on X, and
		// horizontal travel on Y.
		TiltX:         clamp(-dy*t.TiltPerPixel, -t.MaxTiltDeg, t.MaxTiltDeg),
		TiltY:         clamp(dx*t.TiltPerPixel, -t.MaxTiltDeg, t.MaxTiltDeg),
		TrailOpacity:  math.Min(dist*t.TrailOpacityPerPx, t.MaxTrailOpacity),
		TrailOffsetX:  clamp(-dx*t.TrailOffsetPerPx, -t.MaxTrailOffset, t.MaxTrailOffset),
		TrailOffsetY:  clamp(-dy*t.TrailOffsetPerPx, -t.MaxTrailOffset, t.MaxTrailOffset),
		TrailScale:    1 + math.Min(dist*t.TrailScalePerPx, t.MaxTrailScaleBoost),
		HighlightX:    clamp(50+dx*t.HighlightPerPixel, 0, 100),
		HighlightY:    clamp(50+dy*t.HighlightPerPixel, 0, 100),
		MorphStretch:  math.Min(dist/t.MorphFullDistance, 1),
		ShadowOffsetX: clamp(-dx*t.ShadowPerPixel, -t.MaxShadowOffset, t.MaxShadowOffset),
		ShadowOffsetY: clamp(-dy*t.ShadowPerPixel, -t.MaxShadowOffset, t.MaxShadowOffset),
	}
	d.lastRefresh = now
	d.decayDeadline = now.Add(time.Duration(t.DynamicsDecayMs) * time.Millisecond)
}

// Step applies the pending decay once its deadline passes.
func (d *DynamicsDeriver) Step() {
	if d.decayDeadline.IsZero() {
		return
	}
	if d.clock.Now().Before(d.decayDeadline) {
		return
	}
	d.state = d.state.neutralized()
	d.decayDeadline = time.Time{}
}

// Reset returns the dynamics to the full neutral baseline and cancels any
// pending decay. Idempotent; used on target loss and teardown.
func (d *DynamicsDeriver) Reset() {
	d.state = NeutralDynamics()
	d.lastRefresh = time.Time{}
	d.decayDeadline = time.Time{}
}

// State returns the current dynamics values.
func (d *DynamicsDeriver) State() DynamicsState {
	return d.state
}

// Pending reports whether a decay is still scheduled, which keeps the frame
// loop alive until the baseline is restored.
func (d *DynamicsDeriver) Pending() bool {
	return !d.decayDeadline.IsZero()
}
