// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"
	"time"
)

// =============================================================================
// SPINNER CONFIG TESTS
// =============================================================================

func TestLineSpinnerConfig(t *testing.T) {
	if len(LineSpinner.Frames) == 0 {
		t.Error("LineSpinner should have frames")
	}
	if LineSpinner.FPS <= 0 {
		t.Errorf("LineSpinner FPS = %d, want positive", LineSpinner.FPS)
	}
}

func TestSpinnerConfigDuration(t *testing.T) {
	config := SpinnerConfig{FPS: 10}
	if got := config.Duration(); got != time.Second/10 {
		t.Errorf("Duration() = %v, want %v", got, time.Second/10)
	}
}

// =============================================================================
// PROGRESS BAR TESTS
// =============================================================================

func TestRenderProgressBar(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		percent float64
	}{
		{"empty", 10, 0},
		{"half", 10, 50},
		{"full", 10, 100},
		{"over 100 clamps", 10, 150},
		{"negative clamps", 10, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := RenderProgressBar(tt.width, tt.percent)
			if len(bar) != tt.width {
				t.Errorf("bar width = %d, want %d", len(bar), tt.width)
			}
		})
	}
}

func TestRenderProgressBarZeroWidth(t *testing.T) {
	if got := RenderProgressBar(0, 50); got != "" {
		t.Errorf("zero width should render empty, got %q", got)
	}
}

func TestRenderProgressBarFullIsAllFilled(t *testing.T) {
	bar := RenderProgressBar(8, 100)
	if strings.Contains(bar, ProgressEmpty) {
		t.Errorf("100%% bar should contain no empty cells, got %q", bar)
	}
}

// =============================================================================
// EASING TESTS
// =============================================================================

func TestEasingEndpoints(t *testing.T) {
	funcs := []struct {
		name string
		f    EasingFunc
	}{
		{"EaseOutQuad", EaseOutQuad},
		{"EaseOutCubic", EaseOutCubic},
		{"GlowEase", GlowEase},
		{"TrailEase", TrailEase},
	}

	for _, tc := range funcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.f(0); got < -1e-9 || got > 1e-9 {
				t.Errorf("%s(0) = %v, want 0", tc.name, got)
			}
			if got := tc.f(1); got < 1-1e-9 || got > 1+1e-9 {
				t.Errorf("%s(1) = %v, want 1", tc.name, got)
			}
		})
	}
}

func TestEaseOutQuadDecelerates(t *testing.T) {
	// First half covers more than half the distance.
	if EaseOutQuad(0.5) <= 0.5 {
		t.Errorf("EaseOutQuad(0.5) = %v, want > 0.5", EaseOutQuad(0.5))
	}
}

// =============================================================================
// TRAIL SHADE TESTS
// =============================================================================

func TestTrailShade(t *testing.T) {
	tests := []struct {
		name    string
		opacity float64
		want    string
	}{
		{"zero is blank", 0, " "},
		{"negative is blank", -1, " "},
		{"full is densest", 1, "#"},
		{"over full clamps", 2, "#"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrailShade(tt.opacity); got != tt.want {
				t.Errorf("TrailShade(%v) = %q, want %q", tt.opacity, got, tt.want)
			}
		})
	}
}

func TestTrailShadeMonotone(t *testing.T) {
	prev := -1
	for _, op := range []float64{0, 0.1, 0.3, 0.5, 0.7, 0.9, 1.0} {
		shade := TrailShade(op)
		idx := strings.Index(strings.Join(TrailShades, ""), shade)
		if idx < prev {
			t.Fatalf("shade ramp not monotone at opacity %v", op)
		}
		prev = idx
	}
}
