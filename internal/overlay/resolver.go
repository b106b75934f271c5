// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package overlay implements the floating highlight engine for the project list.
package overlay

import "math"

// PointerTargetResolver maps a pointer position to the row it should track.
// It is a pure query; callers own all target-change side effects.
type PointerTargetResolver struct {
	registry *GeometryRegistry
}

// NewPointerTargetResolver creates a resolver reading row geometry from the
// given registry.
func NewPointerTargetResolver(registry *GeometryRegistry) *PointerTargetResolver {
	return &PointerTargetResolver{registry: registry}
}

// ResolveAt resolves a pointer position in list-local coordinates to a row
// id. Direct hit-testing against row bounds wins; otherwise the row whose
// vertical center is nearest the pointer's Y is chosen, ties broken by list
// order. The empty id is returned only when the visible list is empty or no
// visible row is currently measurable.
func (r *PointerTargetResolver) ResolveAt(x, y float64, visible []string) string {
	if len(visible) == 0 {
		return ""
	}

	// Direct hit first.
	for _, id := range visible {
		rect, ok := r.registry.Lookup(id)
		if ok && rect.Contains(x, y) {
			return id
		}
	}

	// Nearest vertical center fallback. Strict less keeps the first match
	// on ties.
	best := ""
	bestDist := math.Inf(1)
	for _, id := range visible {
		rect, ok := r.registry.Lookup(id)
		if !ok {
			continue
		}
		d := math.Abs(rect.VCenter() - y)
		if d < bestDist {
			best = id
			bestDist = d
		}
	}
	return best
}
