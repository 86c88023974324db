// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/jeranaias/codegen-tui/internal/prompt"
)

// =============================================================================
// TYPED MESSAGES
// =============================================================================
// One message type per asynchronous outcome. Every blocking action is a
// command that finishes by delivering exactly one of these.

// completionResultMsg carries the assistant's reply. ThreadID pins the
// reply to the thread that asked, in case the user switched threads
// while waiting.
type completionResultMsg struct {
	threadID string
	content  string
}

// completionErrorMsg carries a failed completion. The failure text is
// embedded into the thread as an assistant message, matching the
// always-get-a-reply contract.
type completionErrorMsg struct {
	threadID string
	err      error
}

// attachResultMsg carries extracted text from a successful ingestion.
type attachResultMsg struct {
	ctx prompt.OCRContext
}

// attachErrorMsg reports a failed ingestion; the pending OCR context is
// left untouched.
type attachErrorMsg struct {
	filename string
	err      error
}

// speechResultMsg carries a voice transcript to be sent as user input.
type speechResultMsg struct {
	text string
}

// speechErrorMsg reports a failed capture or transcription. No message
// is appended; the status bar shows a quiet notice.
type speechErrorMsg struct {
	err error
}

// exportResultMsg reports where a thread export landed.
type exportResultMsg struct {
	path string
}

// exportErrorMsg reports a failed export.
type exportErrorMsg struct {
	err error
}
