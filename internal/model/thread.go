// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/codegen-tui/internal/util"
)

// DefaultTitle is the title given to a thread before any user message
// has arrived to derive one from.
const DefaultTitle = "New Chat"

// deriveTitleMax is the rune budget for titles derived from a user
// message: 33 content runes plus the three-rune ellipsis marker.
const deriveTitleMax = 36

// =============================================================================
// THREAD TYPE
// =============================================================================

// Thread holds one independent chat conversation with its own message
// history and title.
type Thread struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Messages []Message `json:"messages"`
	Created  time.Time `json:"created"`
}

// NewThread creates an empty thread with a generated unique ID.
func NewThread() *Thread {
	return &Thread{
		ID:       uuid.NewString(),
		Title:    DefaultTitle,
		Messages: make([]Message, 0),
		Created:  time.Now(),
	}
}

// =============================================================================
// MESSAGE MANAGEMENT
// =============================================================================

// Append adds a message with the current timestamp and returns it.
// No length cap, no deduplication.
func (t *Thread) Append(role Role, content string) Message {
	msg := NewMessage(role, content)
	t.Messages = append(t.Messages, msg)
	return msg
}

// LastUserMessage returns the most recent user message, or nil.
func (t *Thread) LastUserMessage() *Message {
	for i := len(t.Messages) - 1; i >= 0; i-- {
		if t.Messages[i].Role == RoleUser {
			return &t.Messages[i]
		}
	}
	return nil
}

// MessageCount returns the number of messages.
func (t *Thread) MessageCount() int {
	return len(t.Messages)
}

// IsEmpty returns true if there are no messages.
func (t *Thread) IsEmpty() bool {
	return len(t.Messages) == 0
}

// =============================================================================
// TITLE MANAGEMENT
// =============================================================================

// DeriveTitle scans messages newest-first for a user message and replaces
// the title with its first line, truncated to 36 runes. With no user
// message the existing title is left untouched. Calling it twice without
// new messages yields the same title.
func (t *Thread) DeriveTitle() string {
	existing := t.Title
	if existing == "" {
		existing = DefaultTitle
	}

	for i := len(t.Messages) - 1; i >= 0; i-- {
		msg := t.Messages[i]
		if msg.Role != RoleUser || msg.Content == "" {
			continue
		}
		snippet := util.TruncateRunes(util.FirstLine(msg.Content), deriveTitleMax)
		if snippet == "" {
			snippet = existing
		}
		t.Title = snippet
		return t.Title
	}
	return existing
}
