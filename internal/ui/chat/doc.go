// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat is the main TUI view: thread sidebar, message viewport,
// mode cards, input line, and status bar, driven by a Bubble Tea model.
//
// All session state mutation happens in Update, on the single Bubble Tea
// event loop. Blocking work (completion, OCR, voice capture) runs as
// commands that report back with typed messages; while one completion is
// in flight, further sends are refused without side effects.
package chat
