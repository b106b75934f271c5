// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package overlay implements the floating highlight engine for the project list.
package overlay

import "time"

// Clock supplies the engine's notion of now. Production code uses
// SystemClock; tests inject a ManualClock so every timeline is deterministic
// and no real timers are involved.
type Clock interface {
	Now() time.Time
}

// =============================================================================
// SYSTEM CLOCK
// =============================================================================

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock is the wall-clock implementation of Clock.
var SystemClock Clock = systemClock{}

// =============================================================================
// MANUAL CLOCK
// =============================================================================

// ManualClock is a Clock advanced explicitly by the caller. It only moves
// when Advance is called, which makes frame-by-frame assertions exact.
type ManualClock struct {
	now time.Time
}

// NewManualClock creates a manual clock at an arbitrary fixed epoch.
func NewManualClock() *ManualClock {
	return &ManualClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the clock's current instant.
func (c *ManualClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d. Negative durations are ignored.
func (c *ManualClock) Advance(d time.Duration) {
	if d <= 0 {
		return
	}
	c.now = c.now.Add(d)
}
