// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package projects

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/onepublish-tui/internal/config"
	"github.com/jeranaias/onepublish-tui/internal/publish"
)

// frameInterval targets 60fps while anything is animating.
const frameInterval = time.Second / 60

// FrameMsg drives one animation frame.
type FrameMsg time.Time

// ConfigReloadedMsg carries a freshly reloaded configuration into the
// list, typically sent from the config file watcher.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case FrameMsg:
		return m.handleFrame()

	case ConfigReloadedMsg:
		if msg.Config != nil {
			m.SetItems(ItemsFromConfig(msg.Config.Projects))
		}
		return m, m.scheduleFrame()

	case spinner.TickMsg:
		if m.panel != nil {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.theme.SetSize(msg.Width, msg.Height)

	m.layout.width = float64(m.listWidth())
	m.scroll.SetMax(m.layout.contentHeight() - float64(m.listHeight()))
	m.coord.ContainerResized(float64(m.listWidth()), float64(m.listHeight()), m.layout.contentHeight())

	return m, m.scheduleFrame()
}

// =============================================================================
// KEYBOARD
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.coord.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Close):
		m.panel = nil
		return m, nil

	case key.Matches(msg, m.keyMap.Up):
		return m.moveSelection(m.selected - 1)

	case key.Matches(msg, m.keyMap.Down):
		return m.moveSelection(m.selected + 1)

	case key.Matches(msg, m.keyMap.Home):
		return m.moveSelection(0)

	case key.Matches(msg, m.keyMap.End):
		return m.moveSelection(len(m.items) - 1)

	case key.Matches(msg, m.keyMap.Publish):
		return m.openPanel()
	}

	return m, nil
}

func (m Model) moveSelection(idx int) (tea.Model, tea.Cmd) {
	if len(m.items) == 0 {
		return m, nil
	}
	if idx < 0 {
		idx = 0
	}
	if idx > len(m.items)-1 {
		idx = len(m.items) - 1
	}
	if idx == m.selected {
		return m, nil
	}
	m.selected = idx

	if rect, ok := m.layout.rectFor(m.items[idx].ID); ok {
		m.scroll.EnsureVisible(rect.Top, rect.Height, float64(m.listHeight()))
	}
	m.commitSelection()
	return m, m.scheduleFrame()
}

// commitSelection re-sends the visible set so the coordinator retargets
// onto the new selection.
func (m *Model) commitSelection() {
	ids := make([]string, len(m.items))
	for i, it := range m.items {
		ids[i] = it.ID
	}
	m.coord.SetRows(ids, m.selectedID())
}

func (m Model) openPanel() (tea.Model, tea.Cmd) {
	item, ok := m.SelectedItem()
	if !ok {
		return m, nil
	}

	spec := publish.NewSpec(item.Provider, item.Path)
	if item.Provider == "dotnet" && item.Profile != "" {
		spec.Parameters["profile"] = item.Profile
	}

	panel := &publishPanel{item: item}
	provider, err := m.registry.Get(item.Provider)
	if err != nil {
		panel.err = err
	} else {
		panel.plan, panel.err = provider.Compile(spec)
	}
	m.panel = panel

	return m, m.spinner.Tick
}

// =============================================================================
// MOUSE
// =============================================================================

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.mouseX = msg.X
	m.mouseY = msg.Y

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.scroll.ScrollBy(-3)
		return m, m.scheduleFrame()

	case msg.Button == tea.MouseButtonWheelDown:
		m.scroll.ScrollBy(3)
		return m, m.scheduleFrame()

	case msg.Action == tea.MouseActionMotion:
		m.mouseInList = m.inListBand(msg.Y)
		m.forwardPointer()
		return m, m.scheduleFrame()

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if m.inListBand(msg.Y) {
			if idx, ok := m.rowIndexAt(msg.Y); ok {
				return m.moveSelection(idx)
			}
		}
		return m, nil
	}

	return m, nil
}

// inListBand reports whether a screen row falls inside the list area.
func (m Model) inListBand(y int) bool {
	return y >= listTop && y < listTop+m.listHeight()
}

// contentY converts a screen row to a content-space coordinate.
func (m Model) contentY(y int) float64 {
	return float64(y-listTop) + m.scroll.Offset()
}

// rowIndexAt returns the item index under a screen row.
func (m Model) rowIndexAt(y int) (int, bool) {
	idx := int(m.contentY(y) / rowHeight)
	if idx < 0 || idx >= len(m.items) {
		return 0, false
	}
	return idx, true
}

// forwardPointer sends the stored mouse position to the coordinator in
// content-space, or a leave event when the pointer left the list band.
func (m *Model) forwardPointer() {
	if m.mouseInList {
		m.coord.PointerMove(float64(m.mouseX), m.contentY(m.mouseY))
	} else {
		m.coord.PointerLeaveList()
	}
}

// =============================================================================
// FRAME LOOP
// =============================================================================

func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	m.framePending = false

	m.coord.Step()
	if m.scroll.Step() {
		// The content under a stationary pointer shifted.
		m.forwardPointer()
		m.coord.ListScrolled()
	}

	return m, m.scheduleFrame()
}

// scheduleFrame arms the next frame tick when the overlay or the scroll
// spring still has motion, keeping at most one tick outstanding.
func (m *Model) scheduleFrame() tea.Cmd {
	if m.framePending {
		return nil
	}
	need := m.coord.NeedsFrame()
	if m.scroll.Active() {
		need = true
	}
	if !need {
		return nil
	}
	m.framePending = true
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
