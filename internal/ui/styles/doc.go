// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the onepublish TUI.

This package defines the color palette, theme, and animation helpers used
throughout the application. All colors use Lip Gloss AdaptiveColor for
automatic light/dark terminal detection.

# Color System (colors.go)

## Primary Accent Colors

  - Purple - Primary accent for the selection highlight and card border
  - Cyan - Brand color for info and keyboard hints
  - Emerald - Success states and healthy environment indicator
  - Amber - Warnings and outdated tool versions
  - Rose - Errors and blocking environment issues

## Highlight Card Colors

The floating highlight card behind the repository list has its own
tokens, plus a glow blend:

	CardBg     - Resting card background
	CardBorder - Resting card border
	BlendGlow  - Border color at a given glow level (0..1)

## Text Colors

Hierarchical text color system:

	TextPrimary   - Main content text
	TextSecondary - Supporting text
	TextMuted     - De-emphasized text
	TextInverse   - Text on colored backgrounds

# Theme System (theme.go)

The Theme struct provides runtime color adaptation:

	theme := styles.NewTheme()
	if theme.IsDark {
		// Dark terminal detected
	}
	card := theme.CardStyleAt(glow) // glow-blended card border

# Animation System (animations.go)

Spinner configurations, a progress bar renderer, easing functions used by
view-level transitions, and the trail shade ramp for the overlay's motion
afterimage.

# Usage Example

	import "github.com/jeranaias/onepublish-tui/internal/ui/styles"

	headerStyle := lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		Foreground(styles.TextPrimary)
*/
package styles
