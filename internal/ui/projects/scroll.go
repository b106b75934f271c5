// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package projects

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// =============================================================================
// SMOOTH SCROLLING
// =============================================================================

// scrollSettleEpsilon is the position/velocity threshold below which the
// spring is considered at rest.
const scrollSettleEpsilon = 0.01

// scroller animates the list's scroll offset toward a target with a
// damped spring, so wheel input glides instead of jumping.
type scroller struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
	max    float64
}

func newScroller() *scroller {
	return &scroller{
		spring: harmonica.NewSpring(harmonica.FPS(60), 8.0, 0.9),
	}
}

// SetMax updates the maximum scroll offset and re-clamps both the target
// and the current position.
func (s *scroller) SetMax(max float64) {
	if max < 0 {
		max = 0
	}
	s.max = max
	s.target = clampScroll(s.target, max)
	s.pos = clampScroll(s.pos, max)
}

// ScrollBy moves the target by delta rows.
func (s *scroller) ScrollBy(delta float64) {
	s.target = clampScroll(s.target+delta, s.max)
}

// ScrollTo moves the target to an absolute offset.
func (s *scroller) ScrollTo(offset float64) {
	s.target = clampScroll(offset, s.max)
}

// EnsureVisible adjusts the target so the row band [rowTop, rowTop+h)
// lies inside a viewport of the given height.
func (s *scroller) EnsureVisible(rowTop, h, viewportHeight float64) {
	if viewportHeight <= 0 {
		return
	}
	if rowTop < s.target {
		s.ScrollTo(rowTop)
	} else if rowTop+h > s.target+viewportHeight {
		s.ScrollTo(rowTop + h - viewportHeight)
	}
}

// Step advances the spring one frame. It reports whether the offset moved.
func (s *scroller) Step() bool {
	before := s.pos
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if math.Abs(s.pos-s.target) < scrollSettleEpsilon && math.Abs(s.vel) < scrollSettleEpsilon {
		s.pos = s.target
		s.vel = 0
	}
	return s.pos != before
}

// Active reports whether the spring is still moving toward its target.
func (s *scroller) Active() bool {
	return s.pos != s.target || s.vel != 0
}

// ProgressPercent reports how far the offset sits through the scrollable
// extent, as a 0-100 percentage. Zero when nothing scrolls.
func (s *scroller) ProgressPercent() float64 {
	if s.max <= 0 {
		return 0
	}
	return s.pos / s.max * 100
}

// Offset returns the current scroll offset in content rows.
func (s *scroller) Offset() float64 {
	return s.pos
}

func clampScroll(v, max float64) float64 {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
