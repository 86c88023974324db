// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// THEME NAMES
// =============================================================================

const (
	ThemeDark  = "Dark"
	ThemeLight = "Light"
)

// =============================================================================
// PALETTES
// =============================================================================

// Palette is the full color set for one theme.
type Palette struct {
	// Backgrounds
	Background    lipgloss.Color
	Surface       lipgloss.Color
	SurfaceBright lipgloss.Color

	// Text
	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	TextMuted     lipgloss.Color
	TextInverse   lipgloss.Color

	// Accent (blue family throughout)
	Accent     lipgloss.Color
	AccentDeep lipgloss.Color

	// Message bubbles
	UserBubbleBg      lipgloss.Color
	UserBubbleFg      lipgloss.Color
	AssistantBubbleBg lipgloss.Color
	AssistantBubbleFg lipgloss.Color

	// Semantic
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	// Chrome
	Border      lipgloss.Color
	BorderDim   lipgloss.Color
	CodeBg      lipgloss.Color
	CodeFg      lipgloss.Color
	SelectionBg lipgloss.Color
}

// DarkPalette mirrors the dark slate scheme.
var DarkPalette = Palette{
	Background:    lipgloss.Color("#0f172a"),
	Surface:       lipgloss.Color("#1e293b"),
	SurfaceBright: lipgloss.Color("#334155"),

	TextPrimary:   lipgloss.Color("#f8fafc"),
	TextSecondary: lipgloss.Color("#94a3b8"),
	TextMuted:     lipgloss.Color("#64748b"),
	TextInverse:   lipgloss.Color("#0f172a"),

	Accent:     lipgloss.Color("#3b82f6"),
	AccentDeep: lipgloss.Color("#2563eb"),

	UserBubbleBg:      lipgloss.Color("#2563eb"),
	UserBubbleFg:      lipgloss.Color("#ffffff"),
	AssistantBubbleBg: lipgloss.Color("#1e293b"),
	AssistantBubbleFg: lipgloss.Color("#f1f5f9"),

	Success: lipgloss.Color("#34d399"),
	Warning: lipgloss.Color("#fbbf24"),
	Error:   lipgloss.Color("#fb7185"),

	Border:      lipgloss.Color("#475569"),
	BorderDim:   lipgloss.Color("#334155"),
	CodeBg:      lipgloss.Color("#0f172a"),
	CodeFg:      lipgloss.Color("#e2e8f0"),
	SelectionBg: lipgloss.Color("#1e3a5f"),
}

// LightPalette mirrors the light scheme.
var LightPalette = Palette{
	Background:    lipgloss.Color("#f8fafc"),
	Surface:       lipgloss.Color("#ffffff"),
	SurfaceBright: lipgloss.Color("#f1f5f9"),

	TextPrimary:   lipgloss.Color("#000000"),
	TextSecondary: lipgloss.Color("#333333"),
	TextMuted:     lipgloss.Color("#9ca3af"),
	TextInverse:   lipgloss.Color("#ffffff"),

	Accent:     lipgloss.Color("#2563eb"),
	AccentDeep: lipgloss.Color("#1d4ed8"),

	UserBubbleBg:      lipgloss.Color("#2563eb"),
	UserBubbleFg:      lipgloss.Color("#ffffff"),
	AssistantBubbleBg: lipgloss.Color("#ffffff"),
	AssistantBubbleFg: lipgloss.Color("#1e293b"),

	Success: lipgloss.Color("#059669"),
	Warning: lipgloss.Color("#d97706"),
	Error:   lipgloss.Color("#e11d48"),

	Border:      lipgloss.Color("#cbd5e1"),
	BorderDim:   lipgloss.Color("#e2e8f0"),
	CodeBg:      lipgloss.Color("#f1f5f9"),
	CodeFg:      lipgloss.Color("#334155"),
	SelectionBg: lipgloss.Color("#bfdbfe"),
}

// PaletteFor returns the palette for a theme name, defaulting to dark.
func PaletteFor(theme string) Palette {
	if theme == ThemeLight {
		return LightPalette
	}
	return DarkPalette
}

// ToggleTheme returns the other theme name.
func ToggleTheme(theme string) string {
	if theme == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// =============================================================================
// STATUS INDICATORS
// =============================================================================

// StatusIndicators are ASCII shape cues used alongside color so states
// stay distinguishable on monochrome terminals.
var StatusIndicators = struct {
	Success string
	Error   string
	Warning string
	Info    string
	Pending string
}{
	Success: "[OK]",
	Error:   "[X]",
	Warning: "[!]",
	Info:    "[i]",
	Pending: "[ ]",
}
