// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package overlay implements the floating highlight engine for the project list.
package overlay

// =============================================================================
// RECTANGLES
// =============================================================================

// Rect is an axis-aligned bounding box in container-local coordinates.
// The engine never sees global or screen coordinates.
type Rect struct {
	Top    float64
	Left   float64
	Width  float64
	Height float64
}

// VCenter returns the vertical center of the rectangle.
func (r Rect) VCenter() float64 {
	return r.Top + r.Height/2
}

// Contains reports whether the point lies within the rectangle bounds.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x < r.Left+r.Width && y >= r.Top && y < r.Top+r.Height
}

// RenderRect is the geometry actually drawn this frame. When Visible is
// false the coordinates are meaningless and must not be rendered.
type RenderRect struct {
	Rect
	Visible bool
}

// =============================================================================
// GEOMETRY REGISTRY
// =============================================================================

// GeometryFunc is a live accessor for a row's current bounding box. It is
// sampled fresh every time geometry is needed, never cached. The second
// return value is false when the row can no longer be measured.
type GeometryFunc func() (Rect, bool)

// GeometryRegistry maps row ids to live geometry accessors. Rows register on
// mount and unregister on teardown. Lookups for unknown or stale ids report
// "no geometry" instead of failing.
type GeometryRegistry struct {
	accessors map[string]GeometryFunc
}

// NewGeometryRegistry creates an empty registry.
func NewGeometryRegistry() *GeometryRegistry {
	return &GeometryRegistry{
		accessors: make(map[string]GeometryFunc),
	}
}

// Register installs the accessor for a row id, replacing any previous one.
// A nil accessor is ignored.
func (g *GeometryRegistry) Register(id string, fn GeometryFunc) {
	if id == "" || fn == nil {
		return
	}
	g.accessors[id] = fn
}

// Unregister removes the accessor for a row id. Unknown ids are a no-op.
func (g *GeometryRegistry) Unregister(id string) {
	delete(g.accessors, id)
}

// Has reports whether an accessor is registered for the id.
func (g *GeometryRegistry) Has(id string) bool {
	_, ok := g.accessors[id]
	return ok
}

// Lookup samples the current geometry for a row id. It returns false for
// unknown ids and for rows whose accessor reports them unmeasurable.
func (g *GeometryRegistry) Lookup(id string) (Rect, bool) {
	fn, ok := g.accessors[id]
	if !ok {
		return Rect{}, false
	}
	return fn()
}

// Len returns the number of registered rows.
func (g *GeometryRegistry) Len() int {
	return len(g.accessors)
}
