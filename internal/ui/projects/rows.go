// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package projects

import (
	"github.com/jeranaias/onepublish-tui/internal/overlay"
)

// rowHeight is the height of one list row in cells. The overlay engine
// works in fractional cells, so this stays a float.
const rowHeight = 1.0

// =============================================================================
// ROW LAYOUT
// =============================================================================

// rowLayout is the shared geometry source behind the overlay's row
// accessors. The bubbletea model is copied on every update, so accessors
// must close over this pointer rather than over the model itself.
type rowLayout struct {
	order []string
	index map[string]int
	width float64
}

func newRowLayout() *rowLayout {
	return &rowLayout{index: make(map[string]int)}
}

// setOrder replaces the row order, rebuilding the id index.
func (l *rowLayout) setOrder(ids []string) {
	l.order = append(l.order[:0], ids...)
	l.index = make(map[string]int, len(ids))
	for i, id := range ids {
		l.index[id] = i
	}
}

// rectFor reports the content-space rectangle of a row, or false when the
// row is not laid out or the list has no width yet.
func (l *rowLayout) rectFor(id string) (overlay.Rect, bool) {
	i, ok := l.index[id]
	if !ok || l.width <= 0 {
		return overlay.Rect{}, false
	}
	return overlay.Rect{
		Top:    float64(i) * rowHeight,
		Left:   0,
		Width:  l.width,
		Height: rowHeight,
	}, true
}

// contentHeight is the total height of all rows in cells.
func (l *rowLayout) contentHeight() float64 {
	return float64(len(l.order)) * rowHeight
}

// accessorFor returns a live geometry accessor for one row id.
func (l *rowLayout) accessorFor(id string) overlay.GeometryFunc {
	return func() (overlay.Rect, bool) {
		return l.rectFor(id)
	}
}
