// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application, built from
// one palette. Rebuilt whenever the user toggles Dark/Light.
type Theme struct {
	// Name is the theme this was built from: "Dark" or "Light".
	Name    string
	Palette Palette

	// Terminal capabilities
	HasTrueColor bool
	ColorProfile termenv.Profile

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderBrand    lipgloss.Style
	HeaderGreeting lipgloss.Style
	HeaderTagline  lipgloss.Style

	// ==========================================================================
	// SIDEBAR STYLES
	// ==========================================================================

	Sidebar             lipgloss.Style
	SidebarSection      lipgloss.Style
	SidebarItem         lipgloss.Style
	SidebarItemSelected lipgloss.Style
	SidebarMeta         lipgloss.Style

	// ==========================================================================
	// MODE CARD STYLES
	// ==========================================================================

	ModeCard         lipgloss.Style
	ModeCardSelected lipgloss.Style

	// ==========================================================================
	// MESSAGE BUBBLE STYLES
	// ==========================================================================

	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	SenderName      lipgloss.Style
	Timestamp       lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer lipgloss.Style
	InputPrompt    lipgloss.Style
	InputText      lipgloss.Style

	// ==========================================================================
	// STATUS BAR AND NOTICES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
	Notice       lipgloss.Style
	ErrorText    lipgloss.Style
	SuccessText  lipgloss.Style

	// ==========================================================================
	// ATTACHMENT AND SPINNER STYLES
	// ==========================================================================

	AttachmentBadge lipgloss.Style
	Spinner         lipgloss.Style
	ThinkingText    lipgloss.Style

	// ==========================================================================
	// SETUP SCREEN STYLES
	// ==========================================================================

	SetupBox   lipgloss.Style
	SetupTitle lipgloss.Style
	SetupLabel lipgloss.Style
}

// NewTheme builds the full style set for the named theme.
func NewTheme(name string) *Theme {
	p := PaletteFor(name)
	profile := termenv.ColorProfile()

	t := &Theme{
		Name:         name,
		Palette:      p,
		HasTrueColor: profile == termenv.TrueColor,
		ColorProfile: profile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles from the palette.
func (t *Theme) initStyles() {
	p := t.Palette

	// App container
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 2)

	t.HeaderBrand = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent)

	t.HeaderGreeting = lipgloss.NewStyle().
		Foreground(p.TextPrimary).
		Bold(true)

	t.HeaderTagline = lipgloss.NewStyle().
		Foreground(p.TextSecondary).
		Italic(true)

	// Sidebar
	t.Sidebar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(p.BorderDim).
		Padding(0, 1)

	t.SidebarSection = lipgloss.NewStyle().
		Foreground(p.TextSecondary).
		Bold(true).
		MarginTop(1)

	t.SidebarItem = lipgloss.NewStyle().
		Foreground(p.TextPrimary).
		Padding(0, 1)

	t.SidebarItemSelected = lipgloss.NewStyle().
		Background(p.SelectionBg).
		Foreground(p.TextPrimary).
		Bold(true).
		Padding(0, 1)

	t.SidebarMeta = lipgloss.NewStyle().
		Foreground(p.TextMuted)

	// Mode cards
	t.ModeCard = lipgloss.NewStyle().
		Foreground(p.TextSecondary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.BorderDim).
		Padding(0, 1)

	t.ModeCardSelected = lipgloss.NewStyle().
		Foreground(p.TextInverse).
		Background(p.Accent).
		Bold(true).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Padding(0, 1)

	// Message bubbles
	t.UserBubble = lipgloss.NewStyle().
		Foreground(p.UserBubbleFg).
		Background(p.UserBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Padding(0, 2).
		MarginLeft(4)

	t.AssistantBubble = lipgloss.NewStyle().
		Foreground(p.AssistantBubbleFg).
		Background(p.AssistantBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.BorderDim).
		Padding(0, 2).
		MarginRight(4)

	t.SenderName = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)

	t.Timestamp = lipgloss.NewStyle().
		Foreground(p.TextMuted)

	// Input area
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(p.BorderDim).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)

	t.InputText = lipgloss.NewStyle().
		Foreground(p.TextPrimary)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Foreground(p.TextSecondary).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(p.TextMuted)

	t.Notice = lipgloss.NewStyle().
		Foreground(p.Warning).
		Italic(true)

	t.ErrorText = lipgloss.NewStyle().
		Foreground(p.Error).
		Bold(true)

	t.SuccessText = lipgloss.NewStyle().
		Foreground(p.Success)

	// Attachment badge
	t.AttachmentBadge = lipgloss.NewStyle().
		Foreground(p.TextInverse).
		Background(p.Accent).
		Padding(0, 1)

	// Spinner
	t.Spinner = lipgloss.NewStyle().
		Foreground(p.Accent)

	t.ThinkingText = lipgloss.NewStyle().
		Foreground(p.TextSecondary).
		Italic(true)

	// First-launch setup screen
	t.SetupBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Padding(1, 4)

	t.SetupTitle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)

	t.SetupLabel = lipgloss.NewStyle().
		Foreground(p.TextSecondary)
}
