// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// THEME TESTS
// =============================================================================

func TestNewTheme(t *testing.T) {
	theme := NewTheme()
	if theme == nil {
		t.Fatal("NewTheme() returned nil")
	}
}

func TestThemeSetSize(t *testing.T) {
	theme := NewTheme()
	theme.SetSize(120, 40)

	if theme.Width != 120 {
		t.Errorf("Width = %d, want 120", theme.Width)
	}
	if theme.Height != 40 {
		t.Errorf("Height = %d, want 40", theme.Height)
	}
}

func TestGetLayoutMode(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  LayoutMode
	}{
		{"narrow terminal", 50, LayoutNarrow},
		{"boundary at 60", 60, LayoutMedium},
		{"medium terminal", 80, LayoutMedium},
		{"boundary at 100", 100, LayoutWide},
		{"wide terminal", 150, LayoutWide},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme := NewTheme()
			theme.SetSize(tt.width, 30)
			if got := theme.GetLayoutMode(); got != tt.want {
				t.Errorf("GetLayoutMode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCardStyleAtZeroIsResting(t *testing.T) {
	theme := NewTheme()
	resting := theme.Card.Render("x")
	at := theme.CardStyleAt(0).Render("x")
	if resting != at {
		t.Error("CardStyleAt(0) should match the resting card style")
	}
}

func TestCardStyleAtPositiveGlow(t *testing.T) {
	theme := NewTheme()
	// A glowing card must still render its content.
	out := theme.CardStyleAt(0.8).Render("repo")
	if out == "" {
		t.Error("CardStyleAt(0.8) rendered empty output")
	}
}

func TestCardStyleAtBlendsEasedGlow(t *testing.T) {
	theme := NewTheme()
	got := theme.CardStyleAt(0.5).GetBorderTopForeground()
	want := lipgloss.Color(BlendGlow(GlowEase(0.5), theme.IsDark))
	if got != want {
		t.Errorf("border foreground = %v, want eased blend %v", got, want)
	}
}
