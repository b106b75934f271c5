// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package projects provides the repository list view for the onepublish TUI.

The view is a scrollable list of configured projects with a floating
highlight card rendered behind the rows. Row geometry is registered with
the overlay coordinator as live accessors in content-space cell units;
the coordinator decides where the card sits and whether another animation
frame is needed.

# Frame loop

The model keeps at most one frame tick outstanding. Any event that can
start an animation asks the coordinator (and the scroll spring) whether a
frame is needed; the frame handler steps both and re-arms only while
motion remains.

# Coordinate spaces

Mouse events arrive in screen cells. The list band converts them to
content-space (scroll offset applied) before handing them to the overlay
coordinator, so row accessors never need to know about scrolling.
*/
package projects
