// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/codegen-tui/internal/prompt"
	"github.com/jeranaias/codegen-tui/internal/ui/styles"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// Shortcut is one key hint shown in the status bar.
type Shortcut struct {
	Key  string
	Desc string
}

// DefaultShortcuts are the hints shown when nothing is in flight.
var DefaultShortcuts = []Shortcut{
	{"enter", "send"},
	{"ctrl+n", "new chat"},
	{"ctrl+o", "attach"},
	{"ctrl+s", "speak"},
	{"tab", "mode"},
	{"ctrl+t", "theme"},
	{"ctrl+q", "quit"},
}

// StatusBar shows the current model, mode, and key hints. While a
// completion is in flight it shows a thinking notice instead of hints.
type StatusBar struct {
	ModelName  string
	Mode       prompt.Mode
	Processing bool
	Notice     string
	Width      int
}

// NewStatusBar creates the bar with standard width.
func NewStatusBar() *StatusBar {
	return &StatusBar{Width: 80}
}

// SetWidth sets the render width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// View renders the status line.
func (s *StatusBar) View(theme *styles.Theme) string {
	left := theme.ShortcutKey.Render(s.ModelName)
	if s.Mode != "" {
		left += theme.ShortcutDesc.Render(" · ") + theme.ShortcutDesc.Render(string(s.Mode))
	}

	var right string
	switch {
	case s.Processing:
		right = theme.ThinkingText.Render("thinking...")
	case s.Notice != "":
		right = theme.Notice.Render(fitWidth(s.Notice, s.Width/2))
	default:
		hints := make([]string, 0, len(DefaultShortcuts))
		for _, sc := range DefaultShortcuts {
			hints = append(hints, theme.ShortcutKey.Render(sc.Key)+theme.ShortcutDesc.Render(" "+sc.Desc))
		}
		right = strings.Join(hints, theme.ShortcutDesc.Render("  "))
	}

	gap := s.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}

	return theme.StatusBar.Render(left + strings.Repeat(" ", gap) + right)
}
