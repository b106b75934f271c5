// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package projects

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/onepublish-tui/internal/overlay"
	"github.com/jeranaias/onepublish-tui/internal/ui/styles"
	"github.com/jeranaias/onepublish-tui/internal/util"
)

// gutterWidth is the column band on the left of each row where the
// highlight card edge and its motion trail are drawn.
const gutterWidth = 2

// scrollBarWidth is the width of the status bar's scroll position indicator.
const scrollBarWidth = 8

// =============================================================================
// VIEW
// =============================================================================

// View renders the repository list.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.viewHeader())
	sb.WriteString("\n\n")
	if m.panel != nil {
		sb.WriteString(m.viewPanel())
	} else {
		sb.WriteString(m.viewList())
	}
	sb.WriteString(m.viewStatusBar())
	return sb.String()
}

func (m Model) viewHeader() string {
	title := m.theme.HeaderTitle.Render("onepublish")
	hint := m.theme.HeaderVersion.Render("publish console")
	return m.theme.Header.Width(m.width).Render(title + " " + hint)
}

// =============================================================================
// LIST RENDERING
// =============================================================================

func (m Model) viewList() string {
	height := m.listHeight()
	if height <= 0 {
		return ""
	}

	card := m.coord.RenderRect()
	dyn := m.coord.Dynamics()
	glow := m.coord.GlowLevel()
	hovered := m.coord.HoveredID()

	offset := int(math.Round(m.scroll.Offset()))
	var sb strings.Builder
	for r := 0; r < height; r++ {
		i := offset + r
		sb.WriteString(m.renderLine(i, card, dyn, glow, hovered))
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderLine renders one screen line of the list band: the gutter (card
// edge and trail) followed by the row content.
func (m Model) renderLine(i int, card overlay.RenderRect, dyn overlay.DynamicsState, glow float64, hovered string) string {
	gutter := m.renderGutter(i, card, dyn, glow)

	if i < 0 || i >= len(m.items) {
		return gutter
	}

	it := m.items[i]
	covered := card.Visible && rowCovered(i, card.Rect)

	textWidth := m.listWidth() - gutterWidth
	if textWidth <= 0 {
		return gutter
	}
	text := m.rowText(it, textWidth)

	style := m.theme.Row
	switch {
	case i == m.selected:
		style = m.theme.RowSelected
	case covered:
		style = m.theme.RowHovered.Copy().Background(styles.CardBg)
	case it.ID == hovered:
		style = m.theme.RowHovered
	}
	return gutter + style.Render(text)
}

// renderGutter draws the card's left edge at its current position, glow
// blended into the edge color, plus the trail afterimage offset behind
// the direction of motion.
func (m Model) renderGutter(i int, card overlay.RenderRect, dyn overlay.DynamicsState, glow float64) string {
	edge := " "
	if card.Visible && rowCovered(i, card.Rect) {
		color := styles.BlendGlow(styles.GlowEase(glow), m.theme.IsDark)
		edge = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("|")
	} else if card.Visible && dyn.TrailOpacity > 0 {
		trailRow := int(math.Round(card.Top + dyn.TrailOffsetY))
		if rowCovered(i, overlay.Rect{Top: float64(trailRow), Height: card.Height}) {
			edge = m.theme.CardGhost.Render(styles.TrailShade(styles.TrailEase(dyn.TrailOpacity)))
		}
	}
	return edge + " "
}

// rowCovered reports whether content row i overlaps the card rectangle.
// The card position is fractional; a row counts as covered when its
// center lies inside the card band.
func rowCovered(i int, rect overlay.Rect) bool {
	center := float64(i)*rowHeight + rowHeight/2
	return center >= rect.Top && center < rect.Top+rect.Height
}

// rowText lays out "name  provider  path" within width cells.
func (m Model) rowText(it Item, width int) string {
	provider := "[" + it.Provider + "]"
	providerWidth := runewidth.StringWidth(provider)

	nameWidth := width / 3
	if nameWidth < 8 {
		nameWidth = min(8, width)
	}
	name := runewidth.FillRight(util.TruncateRunes(it.Name, nameWidth), nameWidth)

	pathWidth := width - nameWidth - providerWidth - 2
	path := ""
	if pathWidth > 3 {
		path = util.TruncateRunes(it.Path, pathWidth)
	}

	line := m.theme.RowName.Render(name) + " " + m.theme.RowProvider.Render(provider)
	if path != "" {
		line += " " + m.theme.RowPath.Render(path)
	}
	pad := width - nameWidth - providerWidth - 1 - runewidth.StringWidth(path)
	if path != "" {
		pad--
	}
	if pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return line
}

// =============================================================================
// PUBLISH PANEL
// =============================================================================

func (m Model) viewPanel() string {
	p := m.panel
	var body strings.Builder

	body.WriteString(m.theme.PublishTitle.Render("Publish plan: " + p.item.Name))
	body.WriteString("\n\n")

	if p.err != nil {
		body.WriteString(styles.RenderError(p.err.Error()))
	} else {
		for i, step := range p.plan.Steps {
			body.WriteString(fmt.Sprintf("%s %s %s. %s\n",
				m.theme.StepPending.Render(styles.StatusIndicators.Pending),
				m.spinner.View(),
				util.IntToString(i+1),
				step.Title))
		}
		body.WriteString("\n")
		body.WriteString(m.theme.StepPending.Render("awaiting runner"))
	}
	body.WriteString("\n\n")
	body.WriteString(m.theme.ShortcutDesc.Render("Esc to close"))

	panel := m.theme.PublishPanel.Render(body.String())
	return lipgloss.Place(m.listWidth(), m.listHeight(), lipgloss.Center, lipgloss.Center, panel) + "\n"
}

// =============================================================================
// STATUS BAR
// =============================================================================

func (m Model) viewStatusBar() string {
	env := m.envSummary()
	pos := ""
	if m.panel == nil && m.scroll.max > 0 {
		bar := styles.RenderProgressBar(scrollBarWidth, m.scroll.ProgressPercent())
		pos = m.theme.ShortcutDesc.Render("[" + bar + "]")
	}
	hints := m.theme.ShortcutKey.Render("j/k") + m.theme.ShortcutDesc.Render(" move  ") +
		m.theme.ShortcutKey.Render("Enter") + m.theme.ShortcutDesc.Render(" plan  ") +
		m.theme.ShortcutKey.Render("q") + m.theme.ShortcutDesc.Render(" quit")
	if pos != "" {
		hints = pos + "  " + hints
	}

	gap := m.width - lipgloss.Width(env) - lipgloss.Width(hints) - 2
	if gap < 1 {
		gap = 1
	}
	return m.theme.StatusBar.Width(m.width).Render(env + strings.Repeat(" ", gap) + hints)
}

func (m Model) envSummary() string {
	if m.env.Blocking() {
		return m.theme.EnvBlocking.Render(styles.StatusIndicators.Error + " environment blocked")
	}
	if len(m.env.Issues) > 0 {
		return m.theme.EnvWarning.Render(fmt.Sprintf("%s %d issue(s)", styles.StatusIndicators.Warning, len(m.env.Issues)))
	}
	return m.theme.EnvHealthy.Render(fmt.Sprintf("%s %d/%d tools", styles.StatusIndicators.Success, m.env.InstalledCount(), len(m.env.Tools)))
}
