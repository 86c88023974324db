// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/codegen-tui/internal/model"
	"github.com/jeranaias/codegen-tui/internal/ui/styles"
)

// =============================================================================
// SIDEBAR COMPONENT
// =============================================================================

// Sidebar lists chat threads and the current preferences. Cursor is the
// keyboard selection, which may differ from the active thread while the
// user browses.
type Sidebar struct {
	Threads  []*model.Thread
	ActiveID string
	Cursor   int
	Width    int
	Height   int

	ModelName string
	ThemeName string
	FontSize  string
}

// NewSidebar creates an empty sidebar with standard width.
func NewSidebar() *Sidebar {
	return &Sidebar{Width: 28, Height: 24}
}

// SetSize sets the render dimensions.
func (s *Sidebar) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// ClampCursor keeps the selection inside the thread list after deletes.
func (s *Sidebar) ClampCursor() {
	if s.Cursor >= len(s.Threads) {
		s.Cursor = len(s.Threads) - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}

// View renders the sidebar column.
func (s *Sidebar) View(theme *styles.Theme) string {
	var b strings.Builder
	inner := s.Width - 4
	if inner < 8 {
		inner = 8
	}

	b.WriteString(theme.SidebarSection.Render("Chats"))
	b.WriteString("\n")

	for i, thread := range s.Threads {
		title := fitWidth(thread.Title, inner-2)
		meta := theme.SidebarMeta.Render(" " + strconv.Itoa(thread.MessageCount()))

		style := theme.SidebarItem
		prefix := "  "
		if thread.ID == s.ActiveID {
			prefix = "* "
		}
		if i == s.Cursor {
			style = theme.SidebarItemSelected
		}
		b.WriteString(style.Render(prefix+title) + meta)
		b.WriteString("\n")
	}

	b.WriteString(theme.SidebarSection.Render("Preferences"))
	b.WriteString("\n")
	b.WriteString(theme.SidebarMeta.Render("Model  " + fitWidth(s.ModelName, inner-7)))
	b.WriteString("\n")
	b.WriteString(theme.SidebarMeta.Render("Theme  " + s.ThemeName))
	b.WriteString("\n")
	b.WriteString(theme.SidebarMeta.Render("Font   " + s.FontSize))

	column := lipgloss.NewStyle().Width(s.Width - 2).Height(s.Height).Render(b.String())
	return theme.Sidebar.Render(column)
}
