// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package overlay implements the floating highlight engine behind the project
list: a single animated surface that tracks either the pointer-hovered row or
the selected row and exposes its geometry plus derived motion effects to the
rendering layer.

The engine is a pure visual state machine. It never decides what is hovered
or selected; the host supplies the ordered visible row ids and the selected
id, registers a live geometry accessor per row, and forwards pointer, scroll
and resize notifications. Everything the engine holds is re-derivable from
current geometry plus recent history.

# Components

  - GeometryRegistry: row id -> live bounding-box accessor.
  - PointerTargetResolver: pointer position -> nearest tracked row id.
  - FollowInterpolator: frame loop animating the rendered rectangle toward
    the committed target with adaptive exponential smoothing.
  - DynamicsDeriver: secondary decaying effects (tilt, trail, shadow, morph,
    specular highlight) derived from consecutive target commits.
  - SelectionGlowController: eased 1->0 pulse on qualifying selection hover.
  - Coordinator: composition root owning one frame loop and all timelines.

# Scheduling

Single-threaded and cooperative. The coordinator exposes NeedsFrame/Step;
the host keeps at most one tick outstanding and stops scheduling as soon as
IsAnimating reports false. Time comes from an injected Clock so tests drive
the engine with a manual clock and no real timers.

# Reduced motion

When the reduce-motion signal is set, every animated transition collapses to
a single-tick snap, dynamics stay neutral, and the glow pulse becomes a
short constant hold followed by an instant fade.
*/
package overlay
