// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the per-process chat session state: the thread
// list, the active thread pointer, settings, the pending OCR context,
// and the in-flight completion guard.
//
// One Session exists per running program. Nothing is persisted; all chat
// history and settings are lost on exit. State is mutated only from the
// UI event loop, so the Session carries no locking.
package session
