// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the onepublish TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header        lipgloss.Style
	HeaderTitle   lipgloss.Style
	HeaderVersion lipgloss.Style

	// ==========================================================================
	// REPOSITORY LIST STYLES
	// ==========================================================================

	List        lipgloss.Style
	Row         lipgloss.Style
	RowSelected lipgloss.Style
	RowHovered  lipgloss.Style
	RowName     lipgloss.Style
	RowProvider lipgloss.Style
	RowPath     lipgloss.Style

	// ==========================================================================
	// HIGHLIGHT CARD STYLES
	// ==========================================================================

	Card      lipgloss.Style
	CardGhost lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	EnvHealthy   lipgloss.Style
	EnvWarning   lipgloss.Style
	EnvBlocking  lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// PUBLISH PANEL STYLES
	// ==========================================================================

	PublishPanel  lipgloss.Style
	PublishTitle  lipgloss.Style
	StepPending   lipgloss.Style
	StepRunning   lipgloss.Style
	StepSucceeded lipgloss.Style
	StepFailed    lipgloss.Style

	// ==========================================================================
	// STATUS INDICATOR STYLES
	// ==========================================================================

	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	colorProfile := termenv.ColorProfile()
	hasTrueColor := colorProfile == termenv.TrueColor
	isDark := termenv.HasDarkBackground()

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: hasTrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// App container
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan).
		Background(SurfaceDim).
		Padding(0, 2)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.HeaderVersion = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Repository list
	t.List = lipgloss.NewStyle().
		Padding(0, 1)

	t.Row = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Padding(0, 1)

	t.RowSelected = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Purple).
		Bold(true).
		Padding(0, 1)

	t.RowHovered = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(SurfaceBright).
		Padding(0, 1)

	t.RowName = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Bold(true)

	t.RowProvider = lipgloss.NewStyle().
		Foreground(Cyan)

	t.RowPath = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Highlight card
	t.Card = lipgloss.NewStyle().
		Background(CardBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(CardBorder).
		Padding(0, 1)

	t.CardGhost = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.EnvHealthy = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.EnvWarning = lipgloss.NewStyle().
		Foreground(Amber).
		Bold(true)

	t.EnvBlocking = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Publish panel
	t.PublishPanel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)

	t.PublishTitle = lipgloss.NewStyle().
		Foreground(Purple).
		Bold(true)

	t.StepPending = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.StepRunning = lipgloss.NewStyle().
		Foreground(Cyan)

	t.StepSucceeded = lipgloss.NewStyle().
		Foreground(Emerald)

	t.StepFailed = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	// Status indicators
	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(SuccessHighContrast).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(ErrorHighContrast).
		Bold(true)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(WarningHighContrast).
		Bold(true)
}

// CardStyleAt returns the highlight card style with its border blended
// toward the glow peak at glow level. Level zero returns the resting style.
func (t *Theme) CardStyleAt(glow float64) lipgloss.Style {
	if glow <= 0 {
		return t.Card
	}
	return t.Card.Copy().BorderForeground(lipgloss.Color(BlendGlow(GlowEase(glow), t.IsDark)))
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)
