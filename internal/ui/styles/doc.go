// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the codegen TUI.
//
// Unlike terminal-adaptive schemes, the theme here is an explicit user
// setting (Dark or Light) toggled at runtime from the sidebar, so colors
// are organized as per-theme palettes rather than adaptive pairs. The
// palette is the blue-on-slate scheme the assistant has always used.
package styles
