// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/codegen-tui/internal/prompt"
	"github.com/jeranaias/codegen-tui/internal/ui/styles"
)

// =============================================================================
// MODE CARDS COMPONENT
// =============================================================================

// ModeCards renders the row of selectable assistant modes. Only the
// modes for the user's role are shown.
type ModeCards struct {
	Modes    []prompt.Mode
	Selected prompt.Mode
	Width    int
}

// NewModeCards builds the card row for a role.
func NewModeCards(role string, selected prompt.Mode) *ModeCards {
	return &ModeCards{
		Modes:    prompt.ModesForRole(role),
		Selected: selected,
		Width:    80,
	}
}

// SetWidth sets the render width.
func (m *ModeCards) SetWidth(width int) {
	m.Width = width
}

// Select marks a mode as current. Unknown modes are ignored.
func (m *ModeCards) Select(mode prompt.Mode) {
	for _, candidate := range m.Modes {
		if candidate == mode {
			m.Selected = mode
			return
		}
	}
}

// Next cycles the selection forward.
func (m *ModeCards) Next() prompt.Mode {
	for i, candidate := range m.Modes {
		if candidate == m.Selected {
			m.Selected = m.Modes[(i+1)%len(m.Modes)]
			return m.Selected
		}
	}
	if len(m.Modes) > 0 {
		m.Selected = m.Modes[0]
	}
	return m.Selected
}

// View renders the cards in one horizontal row.
func (m *ModeCards) View(theme *styles.Theme) string {
	cards := make([]string, 0, len(m.Modes))
	for _, mode := range m.Modes {
		style := theme.ModeCard
		if mode == m.Selected {
			style = theme.ModeCardSelected
		}
		cards = append(cards, style.Render(string(mode)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}
