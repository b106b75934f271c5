// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package overlay implements the floating highlight engine for the project list.
package overlay

import (
	"math"
	"slices"
	"time"
)

// =============================================================================
// TRACKING MODE
// =============================================================================

// TrackingMode selects how the overlay follows its target.
type TrackingMode int

const (
	// SnapToTarget tracks whole row rectangles.
	SnapToTarget TrackingMode = iota
	// PointerFollow tracks the live pointer Y inside the hovered row's
	// horizontal bounds.
	PointerFollow
)

func (m TrackingMode) String() string {
	if m == PointerFollow {
		return "pointer-follow"
	}
	return "snap-to-target"
}

// =============================================================================
// COORDINATOR
// =============================================================================

// Coordinator wires the registry, resolver, interpolator, dynamics and glow
// into the single engine the list UI talks to. It owns one frame-loop handle
// and all decay timelines; external code reads its outputs and never mutates
// them.
//
// All methods must be called from the UI goroutine. The engine is
// cooperative and single-threaded: geometry reads, target resolution and
// rectangle commits happen synchronously within a call, so readers never see
// a partially updated state.
type Coordinator struct {
	tuning Tuning
	motion ReducedMotionSignal
	clock  Clock

	registry *GeometryRegistry
	resolver *PointerTargetResolver
	interp   *FollowInterpolator
	dynamics *DynamicsDeriver
	glow     *SelectionGlowController

	mode       TrackingMode
	visible    []string
	selectedID string
	hoveredID  string
	trackedID  string

	lastCommitted Rect
	hasCommitted  bool

	containerWidth  float64
	containerHeight float64
	contentHeight   float64

	lastPointerX float64
	lastPointerY float64
	hasPointer   bool

	framePending bool
	lastStep     time.Time
	closed       bool
}

// NewCoordinator creates an engine in the hidden/neutral state. One engine
// is constructed per mounted list; there are no process-wide singletons.
func NewCoordinator(tuning Tuning, motion ReducedMotionSignal, clock Clock) *Coordinator {
	if clock == nil {
		clock = SystemClock
	}
	registry := NewGeometryRegistry()
	return &Coordinator{
		tuning:   tuning,
		motion:   motion,
		clock:    clock,
		registry: registry,
		resolver: NewPointerTargetResolver(registry),
		interp:   NewFollowInterpolator(tuning, motion),
		dynamics: NewDynamicsDeriver(tuning, motion, clock),
		glow:     NewSelectionGlowController(tuning, motion, clock),
		mode:     SnapToTarget,
	}
}

// =============================================================================
// ROW LIFECYCLE
// =============================================================================

// RegisterRow installs the live geometry accessor for a row id.
func (c *Coordinator) RegisterRow(id string, fn GeometryFunc) {
	if c.closed {
		return
	}
	c.registry.Register(id, fn)
}

// UnregisterRow removes a row's accessor. A row removed mid-track degrades
// the current animation to hidden (or to the selection fallback).
func (c *Coordinator) UnregisterRow(id string) {
	if c.closed {
		return
	}
	c.registry.Unregister(id)
	if c.trackedID == id {
		c.retarget()
	}
}

// SetRows supplies the engine's two inputs: the ordered visible row ids and
// the selected id. A selection change forces snap-to-target mode; a hovered
// id that is no longer visible is cleared.
func (c *Coordinator) SetRows(visible []string, selectedID string) {
	if c.closed {
		return
	}
	selectionChanged := selectedID != c.selectedID
	c.visible = slices.Clone(visible)
	c.selectedID = selectedID

	if c.hoveredID != "" && !c.isVisible(c.hoveredID) {
		c.hoveredID = ""
	}
	if selectionChanged {
		c.mode = SnapToTarget
	}
	c.retarget()
}

// =============================================================================
// POINTER AND LAYOUT EVENTS
// =============================================================================

// PointerMove tracks the pointer in list-local coordinates. Continuous
// movement while hovering enables pointer-follow mode.
func (c *Coordinator) PointerMove(x, y float64) {
	if c.closed || !c.measurable() {
		return
	}
	c.lastPointerX, c.lastPointerY = x, y
	c.hasPointer = true

	id := c.resolver.ResolveAt(x, y, c.visible)
	if id == "" {
		return
	}
	if id == c.selectedID && c.hoveredID != id {
		c.glow.Trigger()
	}
	c.hoveredID = id
	c.mode = PointerFollow
	c.commitPointer(id, y)
}

// PointerEnterRow records a direct hover onto a row. While pointer-follow is
// active the tracked id updates without interrupting the follow animation.
func (c *Coordinator) PointerEnterRow(id string) {
	if c.closed || id == "" || !c.isVisible(id) {
		return
	}
	// Entering the selected row from no hover or a different row fires the
	// glow pulse, even when the selection fallback already targeted it.
	if id == c.selectedID && c.hoveredID != id {
		c.glow.Trigger()
	}
	c.hoveredID = id
	if c.mode == PointerFollow {
		c.trackedID = id
		return
	}
	c.retarget()
}

// PointerLeaveList clears the hover and cancels pointer-follow; the target
// falls back to the selected row, or hides when there is none.
func (c *Coordinator) PointerLeaveList() {
	if c.closed {
		return
	}
	prevTracked := c.trackedID
	c.hoveredID = ""
	c.hasPointer = false
	c.mode = SnapToTarget
	c.retarget()
	if c.selectedID != "" && c.trackedID == c.selectedID && prevTracked != c.selectedID {
		c.glow.Trigger()
	}
}

// ListScrolled re-samples the tracked geometry after a scroll, which shifts
// rows without any pointer event.
func (c *Coordinator) ListScrolled() {
	if c.closed {
		return
	}
	c.refreshGeometry()
}

// ContainerResized records the container's new dimensions and re-samples
// the tracked geometry. contentHeight is the full scrollable extent used to
// clamp pointer-follow targets.
func (c *Coordinator) ContainerResized(width, height, contentHeight float64) {
	if c.closed {
		return
	}
	c.containerWidth = width
	c.containerHeight = height
	c.contentHeight = contentHeight
	c.refreshGeometry()
}

// =============================================================================
// FRAME LOOP
// =============================================================================

// NeedsFrame reports whether the host should schedule a frame callback. It
// claims the engine's single frame-loop handle: while a frame is pending,
// further requests are a no-op.
func (c *Coordinator) NeedsFrame() bool {
	if c.closed || c.framePending || !c.animating() {
		return false
	}
	c.framePending = true
	return true
}

// Step advances every timeline by the time elapsed since the previous step
// and releases the frame handle. It returns true while more frames are
// needed.
func (c *Coordinator) Step() bool {
	if c.closed {
		return false
	}
	c.framePending = false

	now := c.clock.Now()
	elapsed := c.tuning.BaseFrameMs
	if !c.lastStep.IsZero() {
		elapsed = clamp(float64(now.Sub(c.lastStep))/float64(time.Millisecond), 1, 100)
	}
	c.lastStep = now

	c.interp.Step(elapsed)
	c.dynamics.Step()

	if !c.animating() {
		// Loop stops; forget the step timestamp so an idle gap does not
		// inflate the next frame's elapsed time.
		c.lastStep = time.Time{}
		return false
	}
	return true
}

// IsAnimating reports whether any timeline still needs frames.
func (c *Coordinator) IsAnimating() bool {
	return !c.closed && c.animating()
}

// Close tears the engine down: the rectangle hides, dynamics return to
// baseline, any glow pulse is cancelled and the frame handle is released.
// Safe to call any number of times.
func (c *Coordinator) Close() {
	c.interp.ClearTarget()
	c.dynamics.Reset()
	c.glow.Cancel()
	c.framePending = false
	c.lastStep = time.Time{}
	c.trackedID = ""
	c.hasCommitted = false
	c.closed = true
}

// =============================================================================
// OUTPUTS
// =============================================================================

// RenderRect returns the overlay geometry to draw this frame.
func (c *Coordinator) RenderRect() RenderRect {
	return c.interp.Render()
}

// Dynamics returns the current secondary visual parameters.
func (c *Coordinator) Dynamics() DynamicsState {
	return c.dynamics.State()
}

// GlowLevel returns the current selection glow level in [0,1].
func (c *Coordinator) GlowLevel() float64 {
	return c.glow.Level()
}

// Mode returns the active tracking mode.
func (c *Coordinator) Mode() TrackingMode {
	return c.mode
}

// HoveredID returns the currently hovered row id, if any.
func (c *Coordinator) HoveredID() string {
	return c.hoveredID
}

// =============================================================================
// INTERNALS
// =============================================================================

func (c *Coordinator) animating() bool {
	return c.interp.Animating() || c.dynamics.Pending() || c.glow.Active()
}

func (c *Coordinator) measurable() bool {
	return c.containerWidth > 0 && c.containerHeight > 0
}

func (c *Coordinator) isVisible(id string) bool {
	return slices.Contains(c.visible, id)
}

// retarget resolves the id to track (hover first, selection as fallback) and
// commits its whole-row rectangle. Missing geometry degrades to hidden.
func (c *Coordinator) retarget() {
	id := c.hoveredID
	if id == "" {
		id = c.selectedID
	}
	if id == "" || !c.isVisible(id) {
		c.clearTarget()
		return
	}
	rect, ok := c.registry.Lookup(id)
	if !ok {
		c.clearTarget()
		return
	}
	c.commit(id, rect, false)
}

// refreshGeometry recommits the tracked rectangle after layout movement.
// Pointer-follow re-clamps against the stored pointer position. When
// nothing is tracked yet, the layout change may have made the fallback
// target measurable, so resolve it from scratch.
func (c *Coordinator) refreshGeometry() {
	if c.trackedID == "" {
		if c.hoveredID != "" || c.selectedID != "" {
			c.retarget()
		}
		return
	}
	if c.mode == PointerFollow && c.hasPointer {
		c.commitPointer(c.trackedID, c.lastPointerY)
		return
	}
	c.retarget()
}

// commitPointer commits a pointer-derived rectangle: the hovered row's
// horizontal bounds with the vertical position centered on the pointer and
// clamped to the scroll extents.
func (c *Coordinator) commitPointer(id string, pointerY float64) {
	rowRect, ok := c.registry.Lookup(id)
	if !ok {
		c.clearTarget()
		return
	}
	maxTop := math.Max(0, c.contentHeight-rowRect.Height)
	rect := Rect{
		Top:    clamp(pointerY-rowRect.Height/2, 0, maxTop),
		Left:   rowRect.Left,
		Width:  rowRect.Width,
		Height: rowRect.Height,
	}
	c.commit(id, rect, true)
}

// commit records a target commit: dynamics first, then the interpolator, so
// a reader never observes the new rectangle without its motion parameters.
func (c *Coordinator) commit(id string, rect Rect, pointer bool) {
	var prev *Rect
	if c.hasCommitted {
		prevRect := c.lastCommitted
		prev = &prevRect
	}
	c.dynamics.OnTargetCommitted(rect, prev)
	if pointer {
		c.interp.FollowPointer(rect)
	} else {
		c.interp.SetTarget(rect)
	}
	c.lastCommitted = rect
	c.hasCommitted = true
	c.trackedID = id
}

// clearTarget hides the rectangle and resets the motion state. The next
// commit counts as a first commit again.
func (c *Coordinator) clearTarget() {
	c.interp.ClearTarget()
	c.dynamics.Reset()
	c.trackedID = ""
	c.hasCommitted = false
}
