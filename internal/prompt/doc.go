// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package prompt builds the final instruction string sent to the
// completion service.
//
// A prompt is assembled from three parts: the fixed system prompt for the
// active mode, the pending OCR context from the most recently attached
// file (if any), and the user's question. Modes are a fixed enumeration
// gated by the user's declared role.
package prompt
