// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/codegen-tui/internal/model"
	"github.com/jeranaias/codegen-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGE BUBBLE COMPONENT
// =============================================================================

// MessageBubble renders one chat message. User messages sit right-aligned
// in the accent bubble; assistant messages sit left-aligned and go
// through the markdown renderer.
type MessageBubble struct {
	Message       model.Message
	Width         int
	ShowTimestamp bool
	AIName        string
	Markdown      *Markdown
}

// NewMessageBubble creates a bubble with standard defaults.
func NewMessageBubble(msg model.Message, md *Markdown) *MessageBubble {
	return &MessageBubble{
		Message:       msg,
		Width:         80,
		ShowTimestamp: true,
		AIName:        "Code Gen AI",
		Markdown:      md,
	}
}

// SetWidth sets the bubble width.
func (b *MessageBubble) SetWidth(width int) {
	b.Width = width
}

// View renders the message bubble.
func (b *MessageBubble) View(theme *styles.Theme) string {
	if b.Message.Role == model.RoleUser {
		return b.renderUser(theme)
	}
	return b.renderAssistant(theme)
}

func (b *MessageBubble) renderUser(theme *styles.Theme) string {
	content := b.Message.Content
	if content == "" {
		content = "..."
	}

	maxContentWidth := b.Width - 12
	if maxContentWidth < 20 {
		maxContentWidth = 20
	}
	wrapped := wordWrap(content, maxContentWidth)
	contentWidth := minInt(maxLineWidth(wrapped)+4, b.Width-8)

	bubble := theme.UserBubble.Width(contentWidth).Render(wrapped)

	header := theme.SenderName.Render(b.Message.Role.DisplayName())
	if b.ShowTimestamp {
		header += " " + theme.Timestamp.Render(b.Message.ClockTime())
	}

	leftMargin := b.Width - contentWidth - 6
	if leftMargin < 0 {
		leftMargin = 0
	}
	margin := lipgloss.NewStyle().MarginLeft(leftMargin)

	return lipgloss.JoinVertical(lipgloss.Right, margin.Render(header), margin.Render(bubble))
}

func (b *MessageBubble) renderAssistant(theme *styles.Theme) string {
	content := b.Message.Content
	if b.Markdown != nil && content != "" {
		content = b.Markdown.Render(content)
	}
	if content == "" {
		content = "..."
	}

	maxContentWidth := b.Width - 12
	if maxContentWidth < 20 {
		maxContentWidth = 20
	}
	contentWidth := minInt(maxLineWidth(content)+4, b.Width-8)
	if contentWidth < 20 {
		contentWidth = minInt(20, b.Width)
	}

	bubble := theme.AssistantBubble.Width(contentWidth).Render(content)

	name := b.AIName
	if name == "" {
		name = b.Message.Role.DisplayName()
	}
	header := theme.SenderName.Render(name)
	if b.ShowTimestamp {
		header += " " + theme.Timestamp.Render(b.Message.ClockTime())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, bubble)
}
