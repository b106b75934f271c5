// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package overlay implements the floating highlight engine for the project list.
package overlay

import "math"

// =============================================================================
// STATE MACHINE
// =============================================================================

// followState is the interpolator's lifecycle state.
type followState int

const (
	// followIdle means no target; the rectangle is hidden.
	followIdle followState = iota
	// followConverging means the rectangle is visible and animating.
	followConverging
	// followConverged means the rectangle sits exactly on the target and no
	// further frames are scheduled until a new target is committed.
	followConverged
)

func (s followState) String() string {
	switch s {
	case followIdle:
		return "idle"
	case followConverging:
		return "converging"
	case followConverged:
		return "converged"
	default:
		return "unknown"
	}
}

// =============================================================================
// FOLLOW INTERPOLATOR
// =============================================================================

// FollowInterpolator animates the rendered rectangle toward a committed
// target, one frame at a time. Position and size are smoothed independently
// with adaptive exponential rates: the farther the rectangle still has to
// travel, the larger the fraction of the remaining distance covered per
// frame. Smoothing is frame-time compensated, so feel is stable across
// variable frame rates.
//
// In pointer-follow mode the top/left are written through directly (the
// pointer is the authority), while width and height keep smoothing through
// the same frame loop.
type FollowInterpolator struct {
	tuning  Tuning
	reduced bool

	state     followState
	current   Rect
	target    Rect
	hasTarget bool

	// pinned marks pointer-follow mode: position writes bypass smoothing.
	pinned bool
}

// NewFollowInterpolator creates an interpolator in the idle (hidden) state.
func NewFollowInterpolator(tuning Tuning, motion ReducedMotionSignal) *FollowInterpolator {
	return &FollowInterpolator{
		tuning:  tuning,
		reduced: motion.Enabled(),
		state:   followIdle,
	}
}

// SetTarget commits a new target rectangle and enters the converging state.
// From idle the rectangle materializes at the target (there is nothing to
// animate from); from converged or mid-flight it animates from where it is.
func (f *FollowInterpolator) SetTarget(r Rect) {
	if f.state == followIdle {
		f.current = r
	}
	f.target = r
	f.hasTarget = true
	f.pinned = false
	f.state = followConverging
}

// FollowPointer commits a pointer-derived rectangle: position is applied
// immediately, size still converges through the frame loop.
func (f *FollowInterpolator) FollowPointer(r Rect) {
	if f.state == followIdle {
		f.current = r
	}
	f.target = r
	f.hasTarget = true
	f.pinned = true
	f.current.Top = r.Top
	f.current.Left = r.Left
	f.state = followConverging
}

// ClearTarget drops the target and hides the rectangle. Safe to call in any
// state, any number of times.
func (f *FollowInterpolator) ClearTarget() {
	f.hasTarget = false
	f.pinned = false
	f.state = followIdle
}

// Step advances the animation by elapsedMs of frame time. It returns true
// while more frames are needed, false once converged (or idle).
func (f *FollowInterpolator) Step(elapsedMs float64) bool {
	if !f.hasTarget {
		f.state = followIdle
		return false
	}
	if elapsedMs <= 0 {
		elapsedMs = f.tuning.BaseFrameMs
	}

	// Reduced motion: converge in a single tick.
	if f.reduced {
		f.current = f.target
		f.state = followConverged
		return false
	}

	frames := elapsedMs / f.tuning.BaseFrameMs

	if !f.pinned {
		dist := math.Hypot(f.target.Left-f.current.Left, f.target.Top-f.current.Top)
		blend := 1 - math.Pow(1-f.tuning.posRate(dist), frames)
		f.current.Left += (f.target.Left - f.current.Left) * blend
		f.current.Top += (f.target.Top - f.current.Top) * blend
	}

	sizeDelta := math.Max(
		math.Abs(f.target.Width-f.current.Width),
		math.Abs(f.target.Height-f.current.Height),
	)
	sizeBlend := 1 - math.Pow(1-f.tuning.sizeRate(sizeDelta), frames)
	f.current.Width += (f.target.Width - f.current.Width) * sizeBlend
	f.current.Height += (f.target.Height - f.current.Height) * sizeBlend

	if f.converged() {
		// Snap exactly; stop scheduling until the next commit.
		f.current = f.target
		f.state = followConverged
		return false
	}
	f.state = followConverging
	return true
}

// converged reports whether all four dimensions are within epsilon of the
// target.
func (f *FollowInterpolator) converged() bool {
	eps := f.tuning.ConvergeEpsilon
	return math.Abs(f.target.Top-f.current.Top) <= eps &&
		math.Abs(f.target.Left-f.current.Left) <= eps &&
		math.Abs(f.target.Width-f.current.Width) <= eps &&
		math.Abs(f.target.Height-f.current.Height) <= eps
}

// Render returns the rectangle to draw this frame.
func (f *FollowInterpolator) Render() RenderRect {
	if f.state == followIdle {
		return RenderRect{}
	}
	return RenderRect{Rect: f.current, Visible: true}
}

// Target returns the committed target rectangle, if any.
func (f *FollowInterpolator) Target() (Rect, bool) {
	return f.target, f.hasTarget
}

// Animating reports whether more frames are needed.
func (f *FollowInterpolator) Animating() bool {
	return f.state == followConverging
}
