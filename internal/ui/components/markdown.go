// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/codegen-tui/internal/ui/styles"
)

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// Markdown renders assistant replies with glamour, matched to the active
// theme. Rebuilt on theme toggle and on resize.
type Markdown struct {
	renderer *glamour.TermRenderer
}

// NewMarkdown builds a renderer for the given theme and wrap width. A
// nil renderer (init failure) degrades to plain text.
func NewMarkdown(theme string, width int) *Markdown {
	style := "dark"
	if theme == styles.ThemeLight {
		style = "light"
	}
	if width < 20 {
		width = 20
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		renderer = nil
	}
	return &Markdown{renderer: renderer}
}

// Render renders markdown for terminal display. Returns the original
// content if rendering fails.
func (m *Markdown) Render(content string) string {
	if m == nil || m.renderer == nil {
		return content
	}
	rendered, err := m.renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n")
}
