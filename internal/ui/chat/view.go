// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/codegen-tui/internal/ui/components"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the current screen.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case viewSetup:
		return m.viewSetupScreen()
	case viewAttach:
		return m.viewAttachScreen()
	default:
		return m.viewChatScreen()
	}
}

// =============================================================================
// SETUP SCREEN
// =============================================================================

func (m *Model) viewSetupScreen() string {
	t := m.theme

	var cards []string
	for i, role := range setupRoles {
		style := t.ModeCard
		if i == m.roleIdx {
			style = t.ModeCardSelected
		}
		cards = append(cards, style.Render(role))
	}

	var b strings.Builder
	b.WriteString(t.SetupTitle.Render("Welcome to " + m.cfg.UI.AIName))
	b.WriteString("\n\n")
	b.WriteString(t.SetupLabel.Render("Your name"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(t.SetupLabel.Render("I am a... (tab to change)"))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	b.WriteString("\n\n")
	b.WriteString(t.ShortcutDesc.Render("enter to start · ctrl+q to quit"))
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(t.Notice.Render(m.notice))
	}

	box := t.SetupBox.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// =============================================================================
// ATTACH SCREEN
// =============================================================================

func (m *Model) viewAttachScreen() string {
	t := m.theme

	var b strings.Builder
	b.WriteString(t.SetupTitle.Render("Attach a file"))
	b.WriteString("\n\n")
	b.WriteString(t.SetupLabel.Render("Images and text are read directly; PDFs need pdftoppm."))
	b.WriteString("\n")
	b.WriteString(m.pathInput.View())
	b.WriteString("\n\n")
	b.WriteString(t.ShortcutDesc.Render("enter to attach · esc to cancel"))
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(t.Notice.Render(m.notice))
	}

	box := t.SetupBox.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// =============================================================================
// CHAT SCREEN
// =============================================================================

func (m *Model) viewChatScreen() string {
	t := m.theme

	header := m.header.View(t)

	m.syncSidebar()
	sidebar := m.sidebar.View(t)

	conversation := m.viewport.View()

	m.modes.Select(m.session.Mode)
	modeRow := m.modes.View(t)

	badge := components.NewAttachmentBadge(m.session.OCRContext())
	badge.Width = m.contentWidth()
	badgeRow := badge.View(t)

	inputRow := t.InputContainer.Width(m.contentWidth() - 2).Render(
		t.InputPrompt.Render("> ") + m.input.View(),
	)

	var thinking string
	if m.session.Processing() {
		thinking = t.Spinner.Render(m.spin.View()) + " " + t.ThinkingText.Render("thinking...")
	}

	rows := []string{conversation, modeRow}
	if badgeRow != "" {
		rows = append(rows, badgeRow)
	}
	if thinking != "" {
		rows = append(rows, thinking)
	}
	rows = append(rows, inputRow)
	content := lipgloss.JoinVertical(lipgloss.Left, rows...)

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", content)

	m.status.ModelName = m.session.Model
	m.status.Mode = m.session.Mode
	m.status.Processing = m.session.Processing()
	m.status.Notice = m.notice
	statusBar := m.status.View(t)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, statusBar)
}

// renderMessages renders the active thread's messages for the viewport.
func (m *Model) renderMessages() string {
	th := m.session.ActiveThread()
	if th == nil || th.IsEmpty() {
		return m.theme.SidebarMeta.Render("No messages yet. Ask away.")
	}

	width := m.contentWidth()
	var parts []string
	for _, msg := range th.Messages {
		bubble := components.NewMessageBubble(msg, m.markdown)
		bubble.AIName = m.cfg.UI.AIName
		bubble.SetWidth(width)
		parts = append(parts, bubble.View(m.theme))
	}
	return strings.Join(parts, "\n\n")
}
