// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package overlay implements the floating highlight engine for the project list.
package overlay

import "strings"

// ReducedMotionSignal mirrors the user's reduce-motion preference. It is
// resolved once at startup and injected into every component that animates,
// rather than read as ambient global state.
type ReducedMotionSignal struct {
	enabled bool
}

// NewReducedMotionSignal creates a signal with an explicit value.
func NewReducedMotionSignal(enabled bool) ReducedMotionSignal {
	return ReducedMotionSignal{enabled: enabled}
}

// Enabled reports whether animations should collapse to instant snaps.
func (s ReducedMotionSignal) Enabled() bool {
	return s.enabled
}

// DetectReducedMotion resolves the reduce-motion preference from the
// environment, falling back to the configured default. The terminal has no
// platform preference API, so the ONEPUBLISH_REDUCE_MOTION variable stands
// in for it ("1", "true", "yes", "on" enable).
func DetectReducedMotion(getenv func(string) string, fallback bool) ReducedMotionSignal {
	if getenv == nil {
		return ReducedMotionSignal{enabled: fallback}
	}
	switch strings.ToLower(strings.TrimSpace(getenv("ONEPUBLISH_REDUCE_MOTION"))) {
	case "1", "true", "yes", "on":
		return ReducedMotionSignal{enabled: true}
	case "0", "false", "no", "off":
		return ReducedMotionSignal{enabled: false}
	}
	return ReducedMotionSignal{enabled: fallback}
}
