// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the codegen
// TUI: header, sidebar, mode cards, message bubbles, attachment badge,
// and status bar. Components are pure render helpers; state lives in the
// chat model.
package components
