// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/codegen-tui/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// Header is the top bar: brand on the left, greeting on the right.
type Header struct {
	AIName   string
	Tagline  string
	UserName string
	Width    int
}

// NewHeader creates the header for a named user.
func NewHeader(aiName, userName string) *Header {
	return &Header{
		AIName:   aiName,
		Tagline:  "Coding copilot",
		UserName: userName,
		Width:    80,
	}
}

// SetWidth sets the render width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// View renders the header line.
func (h *Header) View(theme *styles.Theme) string {
	brand := theme.HeaderBrand.Render(h.AIName)
	tagline := theme.HeaderTagline.Render(h.Tagline)
	left := brand + "  " + tagline

	right := ""
	if h.UserName != "" {
		right = theme.HeaderGreeting.Render("Hi, " + h.UserName)
	}

	gap := h.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	line := left + lipgloss.NewStyle().Width(gap).Render("") + right

	return theme.Header.Width(h.Width - 2).Render(line)
}
