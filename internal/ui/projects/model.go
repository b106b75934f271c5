// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package projects

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/onepublish-tui/internal/config"
	"github.com/jeranaias/onepublish-tui/internal/environment"
	"github.com/jeranaias/onepublish-tui/internal/overlay"
	"github.com/jeranaias/onepublish-tui/internal/publish"
	"github.com/jeranaias/onepublish-tui/internal/ui/styles"
)

// =============================================================================
// LIST ITEMS
// =============================================================================

// Item is one row in the repository list.
type Item struct {
	ID       string
	Name     string
	Path     string
	Provider string
	Profile  string
}

// ItemsFromConfig converts configured projects into list items. The
// project name doubles as the row id since config validation enforces
// uniqueness.
func ItemsFromConfig(projects []config.Project) []Item {
	items := make([]Item, 0, len(projects))
	for _, p := range projects {
		items = append(items, Item{
			ID:       p.Name,
			Name:     p.Name,
			Path:     p.Path,
			Provider: p.Provider,
			Profile:  p.Profile,
		})
	}
	return items
}

// =============================================================================
// PUBLISH PANEL STATE
// =============================================================================

// publishPanel holds a compiled plan shown over the list.
type publishPanel struct {
	item Item
	plan publish.Plan
	err  error
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model for the repository list view.
type Model struct {
	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// List state
	items    []Item
	selected int
	layout   *rowLayout
	scroll   *scroller

	// Overlay engine
	coord *overlay.Coordinator

	// Pointer tracking (screen cells)
	mouseX      int
	mouseY      int
	mouseInList bool

	// Frame scheduling: at most one tick outstanding
	framePending bool

	// Publish
	registry *publish.Registry
	panel    *publishPanel
	spinner  spinner.Model

	// Environment
	env environment.Snapshot

	// Key bindings
	keyMap KeyMap
}

// New creates the repository list model. The coordinator is owned by the
// model and closed when the program quits.
func New(theme *styles.Theme, items []Item, coord *overlay.Coordinator, registry *publish.Registry, env environment.Snapshot) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Spinner{
		Frames: styles.LineSpinner.Frames,
		FPS:    styles.LineSpinner.Duration(),
	}
	sp.Style = theme.StepRunning

	m := Model{
		theme:    theme,
		items:    items,
		layout:   newRowLayout(),
		scroll:   newScroller(),
		coord:    coord,
		registry: registry,
		env:      env,
		spinner:  sp,
		keyMap:   DefaultKeyMap(),
	}
	m.syncRows()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Items returns the current list items.
func (m Model) Items() []Item {
	return m.items
}

// SelectedItem returns the currently selected item, if any.
func (m Model) SelectedItem() (Item, bool) {
	if m.selected < 0 || m.selected >= len(m.items) {
		return Item{}, false
	}
	return m.items[m.selected], true
}

// SetEnvironment replaces the environment snapshot shown in the status bar.
func (m *Model) SetEnvironment(env environment.Snapshot) {
	m.env = env
}

// SetItems replaces the list contents, keeping the selection on the same
// id when it survives.
func (m *Model) SetItems(items []Item) {
	selectedID := ""
	if it, ok := m.SelectedItem(); ok {
		selectedID = it.ID
	}

	m.items = items
	m.selected = 0
	for i, it := range items {
		if it.ID == selectedID {
			m.selected = i
			break
		}
	}
	m.syncRows()
}

// syncRows pushes the current row order into the layout and the overlay
// registry, then hands the coordinator the new visible set.
func (m *Model) syncRows() {
	prev := append([]string(nil), m.layout.order...)

	ids := make([]string, len(m.items))
	for i, it := range m.items {
		ids[i] = it.ID
	}
	m.layout.setOrder(ids)
	m.layout.width = float64(m.listWidth())

	inOrder := make(map[string]bool, len(ids))
	for _, id := range ids {
		inOrder[id] = true
	}
	for _, id := range prev {
		if !inOrder[id] {
			m.coord.UnregisterRow(id)
		}
	}
	for _, id := range ids {
		m.coord.RegisterRow(id, m.layout.accessorFor(id))
	}

	m.scroll.SetMax(m.layout.contentHeight() - float64(m.listHeight()))
	m.coord.ContainerResized(float64(m.listWidth()), float64(m.listHeight()), m.layout.contentHeight())
	m.coord.SetRows(ids, m.selectedID())
}

func (m Model) selectedID() string {
	if it, ok := m.SelectedItem(); ok {
		return it.ID
	}
	return ""
}

// listWidth is the width of the list band in cells.
func (m Model) listWidth() int {
	if m.width <= 0 {
		return 0
	}
	return m.width
}

// listHeight is the height of the list band in cells: total height minus
// header, separator, and status bar.
func (m Model) listHeight() int {
	h := m.height - chromeHeight
	if h < 0 {
		return 0
	}
	return h
}

// listTop is the screen row where the list band starts.
const listTop = 2

// chromeHeight is the number of screen rows taken by non-list chrome.
const chromeHeight = 3
