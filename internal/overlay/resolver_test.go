// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package overlay implements the floating highlight engine for the project list.
package overlay

import "testing"

func rowAccessor(r Rect) GeometryFunc {
	return func() (Rect, bool) { return r, true }
}

// threeRowRegistry builds the canonical A/B/C stack used across the engine
// tests: three 10px rows at tops 0, 10 and 20.
func threeRowRegistry() *GeometryRegistry {
	reg := NewGeometryRegistry()
	reg.Register("a", rowAccessor(Rect{Top: 0, Left: 0, Width: 100, Height: 10}))
	reg.Register("b", rowAccessor(Rect{Top: 10, Left: 0, Width: 100, Height: 10}))
	reg.Register("c", rowAccessor(Rect{Top: 20, Left: 0, Width: 100, Height: 10}))
	return reg
}

func TestResolveAtDirectHit(t *testing.T) {
	r := NewPointerTargetResolver(threeRowRegistry())
	visible := []string{"a", "b", "c"}

	tests := []struct {
		name string
		x, y float64
		want string
	}{
		{"first row", 5, 5, "a"},
		{"second row", 50, 15, "b"},
		{"third row", 99, 25, "c"},
		{"row boundary belongs to lower row", 5, 10, "b"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.ResolveAt(tc.x, tc.y, visible); got != tc.want {
				t.Errorf("ResolveAt(%v, %v) = %q, want %q", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestResolveAtNearestCenterFallback(t *testing.T) {
	r := NewPointerTargetResolver(threeRowRegistry())
	visible := []string{"a", "b", "c"}

	// Outside every row horizontally: falls back to vertical-center
	// distance.
	if got := r.ResolveAt(500, 4, visible); got != "a" {
		t.Errorf("ResolveAt(500, 4) = %q, want %q", got, "a")
	}
	// Below the whole list: nearest center is the last row.
	if got := r.ResolveAt(50, 200, visible); got != "c" {
		t.Errorf("ResolveAt(50, 200) = %q, want %q", got, "c")
	}
	// Above the whole list.
	if got := r.ResolveAt(50, -50, visible); got != "a" {
		t.Errorf("ResolveAt(50, -50) = %q, want %q", got, "a")
	}
}

func TestResolveAtTieBreaksByListOrder(t *testing.T) {
	reg := NewGeometryRegistry()
	// Two rows with a gap; y=15 is equidistant from both centers (5, 25).
	reg.Register("a", rowAccessor(Rect{Top: 0, Left: 0, Width: 100, Height: 10}))
	reg.Register("b", rowAccessor(Rect{Top: 20, Left: 0, Width: 100, Height: 10}))
	r := NewPointerTargetResolver(reg)

	if got := r.ResolveAt(150, 15, []string{"a", "b"}); got != "a" {
		t.Errorf("equidistant tie resolved to %q, want first row %q", got, "a")
	}
	// The tie break is list order, not registration order.
	if got := r.ResolveAt(150, 15, []string{"b", "a"}); got != "b" {
		t.Errorf("equidistant tie resolved to %q, want first row %q", got, "b")
	}
}

func TestResolveAtEmptyList(t *testing.T) {
	r := NewPointerTargetResolver(threeRowRegistry())
	if got := r.ResolveAt(5, 5, nil); got != "" {
		t.Errorf("ResolveAt with empty list = %q, want empty", got)
	}
}

func TestResolveAtSkipsUnmeasurableRows(t *testing.T) {
	reg := NewGeometryRegistry()
	reg.Register("gone", func() (Rect, bool) { return Rect{}, false })
	reg.Register("b", rowAccessor(Rect{Top: 10, Left: 0, Width: 100, Height: 10}))
	r := NewPointerTargetResolver(reg)

	if got := r.ResolveAt(5, 0, []string{"gone", "b"}); got != "b" {
		t.Errorf("ResolveAt = %q, want %q", got, "b")
	}
}

func TestResolveAtNothingMeasurable(t *testing.T) {
	reg := NewGeometryRegistry()
	reg.Register("gone", func() (Rect, bool) { return Rect{}, false })
	r := NewPointerTargetResolver(reg)

	if got := r.ResolveAt(5, 5, []string{"gone", "unregistered"}); got != "" {
		t.Errorf("ResolveAt = %q, want empty when nothing is measurable", got)
	}
}
