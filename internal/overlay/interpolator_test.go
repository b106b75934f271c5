// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package overlay implements the floating highlight engine for the project list.
package overlay

import (
	"math"
	"testing"
)

const frameMs = 1000.0 / 60.0

func newTestInterpolator(reduced bool) *FollowInterpolator {
	return NewFollowInterpolator(DefaultTuning(), NewReducedMotionSignal(reduced))
}

func rectDistance(a, b Rect) float64 {
	return math.Hypot(a.Left-b.Left, a.Top-b.Top)
}

func TestInterpolatorStartsHidden(t *testing.T) {
	f := newTestInterpolator(false)

	if rr := f.Render(); rr.Visible {
		t.Error("new interpolator should render hidden")
	}
	if f.Animating() {
		t.Error("new interpolator should not be animating")
	}
}

func TestInterpolatorFirstTargetMaterializesInPlace(t *testing.T) {
	f := newTestInterpolator(false)
	target := Rect{Top: 10, Left: 0, Width: 100, Height: 10}
	f.SetTarget(target)

	rr := f.Render()
	if !rr.Visible {
		t.Fatal("rect should be visible after SetTarget")
	}
	if rr.Rect != target {
		t.Errorf("first target should materialize at the target, got %+v", rr.Rect)
	}

	// Zero distance converges on the first step and stops scheduling.
	if more := f.Step(frameMs); more {
		t.Error("Step() = true, want false once converged")
	}
	if f.state != followConverged {
		t.Errorf("state = %v, want converged", f.state)
	}
}

func TestInterpolatorConvergesMonotonically(t *testing.T) {
	f := newTestInterpolator(false)
	f.SetTarget(Rect{Top: 0, Left: 0, Width: 100, Height: 10})
	f.Step(frameMs)

	target := Rect{Top: 400, Left: 30, Width: 120, Height: 14}
	f.SetTarget(target)

	prev := rectDistance(f.Render().Rect, target)
	steps := 0
	for f.Animating() {
		steps++
		if steps > 300 {
			t.Fatal("did not converge within 300 steps")
		}
		f.Step(frameMs)
		d := rectDistance(f.Render().Rect, target)
		if d > prev {
			t.Fatalf("distance increased at step %d: %v -> %v", steps, prev, d)
		}
		prev = d
	}

	if got := f.Render().Rect; got != target {
		t.Errorf("converged rect = %+v, want exact target %+v", got, target)
	}
}

func TestInterpolatorFastCatchUpOnLargeDeltas(t *testing.T) {
	tuning := DefaultTuning()
	motion := NewReducedMotionSignal(false)

	// The far rectangle must close a larger fraction of its distance in one
	// frame than the near one.
	near := NewFollowInterpolator(tuning, motion)
	near.SetTarget(Rect{})
	near.Step(frameMs)
	near.SetTarget(Rect{Top: 10})
	near.Step(frameMs)
	nearFrac := 1 - rectDistance(near.Render().Rect, Rect{Top: 10})/10

	far := NewFollowInterpolator(tuning, motion)
	far.SetTarget(Rect{})
	far.Step(frameMs)
	far.SetTarget(Rect{Top: 400})
	far.Step(frameMs)
	farFrac := 1 - rectDistance(far.Render().Rect, Rect{Top: 400})/400

	if farFrac <= nearFrac {
		t.Errorf("large delta fraction %v should exceed small delta fraction %v", farFrac, nearFrac)
	}
}

func TestInterpolatorFrameTimeCompensation(t *testing.T) {
	tuning := DefaultTuning()
	motion := NewReducedMotionSignal(false)

	// Ten pixels of travel stays within one rate band, so two 16.67ms steps
	// must land exactly where one 33.33ms step does.
	twoSteps := NewFollowInterpolator(tuning, motion)
	twoSteps.SetTarget(Rect{Width: 50, Height: 10})
	twoSteps.Step(frameMs)
	twoSteps.SetTarget(Rect{Top: 10, Width: 50, Height: 10})
	twoSteps.Step(frameMs)
	twoSteps.Step(frameMs)

	oneStep := NewFollowInterpolator(tuning, motion)
	oneStep.SetTarget(Rect{Width: 50, Height: 10})
	oneStep.Step(frameMs)
	oneStep.SetTarget(Rect{Top: 10, Width: 50, Height: 10})
	oneStep.Step(2 * frameMs)

	a, b := twoSteps.Render().Rect, oneStep.Render().Rect
	if math.Abs(a.Top-b.Top) > 1e-9 {
		t.Errorf("frame-time compensation mismatch: two steps %.12f, one step %.12f", a.Top, b.Top)
	}
}

func TestInterpolatorSizeSmoothedIndependently(t *testing.T) {
	f := newTestInterpolator(false)
	f.SetTarget(Rect{Width: 100, Height: 10})
	f.Step(frameMs)

	// Pure resize: position is already at target, size converges over
	// multiple frames.
	f.SetTarget(Rect{Width: 200, Height: 30})
	f.Step(frameMs)

	rr := f.Render().Rect
	if rr.Width <= 100 || rr.Width >= 200 {
		t.Errorf("width = %v, want strictly between 100 and 200 mid-flight", rr.Width)
	}
	if rr.Height <= 10 || rr.Height >= 30 {
		t.Errorf("height = %v, want strictly between 10 and 30 mid-flight", rr.Height)
	}
}

func TestInterpolatorReducedMotionSnapsInOneTick(t *testing.T) {
	f := newTestInterpolator(true)
	f.SetTarget(Rect{Width: 100, Height: 10})
	f.Step(frameMs)

	target := Rect{Top: 300, Left: 40, Width: 200, Height: 30}
	f.SetTarget(target)
	if more := f.Step(frameMs); more {
		t.Error("reduced motion Step() = true, want false")
	}
	if got := f.Render().Rect; got != target {
		t.Errorf("reduced motion rect = %+v, want %+v", got, target)
	}
}

func TestInterpolatorClearTargetHides(t *testing.T) {
	f := newTestInterpolator(false)
	f.SetTarget(Rect{Width: 100, Height: 10})
	f.Step(frameMs)

	f.ClearTarget()
	f.ClearTarget() // idempotent

	if rr := f.Render(); rr.Visible {
		t.Error("rect should be hidden after ClearTarget")
	}
	if f.Step(frameMs) {
		t.Error("Step after ClearTarget should not request more frames")
	}
}

func TestInterpolatorFollowPointerWritesPositionThrough(t *testing.T) {
	f := newTestInterpolator(false)
	f.SetTarget(Rect{Top: 0, Width: 100, Height: 10})
	f.Step(frameMs)

	f.FollowPointer(Rect{Top: 55, Width: 100, Height: 10})
	if got := f.Render().Rect.Top; got != 55 {
		t.Errorf("pointer-follow top = %v, want immediate 55", got)
	}

	// Size changes still converge through the frame loop.
	f.FollowPointer(Rect{Top: 60, Width: 100, Height: 40})
	if got := f.Render().Rect.Top; got != 60 {
		t.Errorf("pointer-follow top = %v, want immediate 60", got)
	}
	f.Step(frameMs)
	h := f.Render().Rect.Height
	if h <= 10 || h >= 40 {
		t.Errorf("height = %v, want strictly between 10 and 40 mid-flight", h)
	}
}
