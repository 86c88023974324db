// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"github.com/jeranaias/codegen-tui/internal/model"
	"github.com/jeranaias/codegen-tui/internal/prompt"
	"github.com/jeranaias/codegen-tui/internal/util"
)

// autoTitleMax is the rune budget for titles generated from the first
// user turn; longer inputs keep 40 runes plus an ellipsis marker.
const autoTitleMax = 40

// =============================================================================
// SETTINGS
// =============================================================================

// Settings holds the per-session user preferences.
type Settings struct {
	Model       string
	Temperature float64
	Theme       string
	FontSize    string
	UserName    string
	Role        string
	Mode        prompt.Mode
}

// =============================================================================
// SESSION
// =============================================================================

// Session is the process-wide chat state. It always contains at least
// one thread; deleting the last thread creates a fresh empty one.
type Session struct {
	Settings

	threads  []*model.Thread
	activeID string

	// Pending one-shot OCR context from the last attached file.
	ocrContext prompt.OCRContext

	// Guard against overlapping completion calls. Set when a prompt is
	// dispatched, cleared when the reply (or error) lands.
	processing bool

	// LastPrompt is the most recently composed prompt, kept for display.
	lastPrompt string
}

// New creates a session with the given settings and one empty thread.
func New(settings Settings) *Session {
	if settings.Mode == "" {
		settings.Mode = prompt.DefaultModeForRole(settings.Role)
	}
	s := &Session{Settings: settings}
	s.CreateThread()
	return s
}

// =============================================================================
// THREAD STORE OPERATIONS
// =============================================================================

// CreateThread prepends a new empty thread titled "New Chat" and makes
// it active. It never fails.
func (s *Session) CreateThread() *model.Thread {
	th := model.NewThread()
	s.threads = append([]*model.Thread{th}, s.threads...)
	s.activeID = th.ID
	return th
}

// DeleteThread removes the thread with the given id. If the store would
// become empty a fresh thread is created; if the deleted thread was
// active, the first remaining thread becomes active.
func (s *Session) DeleteThread(id string) {
	kept := s.threads[:0]
	for _, th := range s.threads {
		if th.ID != id {
			kept = append(kept, th)
		}
	}
	s.threads = kept

	if len(s.threads) == 0 {
		s.CreateThread()
		return
	}
	if s.activeID == id {
		s.activeID = s.threads[0].ID
	}
}

// ClearThreads removes every thread and starts over with one empty one.
func (s *Session) ClearThreads() {
	s.threads = nil
	s.CreateThread()
}

// RenameThread updates a thread's title in place; unknown ids are a
// no-op.
func (s *Session) RenameThread(id, title string) {
	for _, th := range s.threads {
		if th.ID == id {
			th.Title = title
			return
		}
	}
}

// Threads returns the thread list, newest first.
func (s *Session) Threads() []*model.Thread {
	return s.threads
}

// ThreadCount returns the number of threads in the store.
func (s *Session) ThreadCount() int {
	return len(s.threads)
}

// ActiveThread returns the active thread. If the active pointer is
// somehow stale the first thread is returned; the store is never empty.
func (s *Session) ActiveThread() *model.Thread {
	for _, th := range s.threads {
		if th.ID == s.activeID {
			return th
		}
	}
	return s.threads[0]
}

// SetActive switches the active thread pointer; unknown ids are a no-op.
func (s *Session) SetActive(id string) {
	for _, th := range s.threads {
		if th.ID == id {
			s.activeID = id
			return
		}
	}
}

// ActiveID returns the id of the active thread.
func (s *Session) ActiveID() string {
	return s.activeID
}

// =============================================================================
// MESSAGE APPENDS
// =============================================================================

// AppendUserMessage appends a user message to the active thread and
// auto-titles young threads: the first time a thread has accumulated at
// most two messages after a user turn, its title is regenerated from
// that input.
func (s *Session) AppendUserMessage(content string) model.Message {
	th := s.ActiveThread()
	msg := th.Append(model.RoleUser, content)
	if th.MessageCount() <= 2 {
		s.RenameThread(th.ID, GenerateTitle(content))
	}
	return msg
}

// AppendAssistantMessage appends an assistant reply to the active thread.
func (s *Session) AppendAssistantMessage(content string) model.Message {
	return s.ActiveThread().Append(model.RoleAssistant, content)
}

// GenerateTitle builds a thread title from raw user input: whitespace
// collapsed, first rune upper-cased, truncated to 40 runes with an
// ellipsis marker appended when longer.
func GenerateTitle(text string) string {
	title := util.CollapseWhitespace(text)
	if title == "" {
		return model.DefaultTitle
	}
	title = util.CapitalizeFirst(title)
	if util.RuneLen(title) > autoTitleMax {
		return util.TruncateRunesNoEllipsis(title, autoTitleMax) + "..."
	}
	return title
}

// =============================================================================
// OCR CONTEXT
// =============================================================================

// SetOCRContext stores extracted text pending use in the next prompt,
// replacing any earlier attachment.
func (s *Session) SetOCRContext(ctx prompt.OCRContext) {
	s.ocrContext = ctx
}

// OCRContext returns the pending context without consuming it.
func (s *Session) OCRContext() prompt.OCRContext {
	return s.ocrContext
}

// ConsumeOCRContext returns the pending context and clears it. The
// context is one-shot: a second send without a new attachment must not
// re-embed the old extracted text.
func (s *Session) ConsumeOCRContext() prompt.OCRContext {
	ctx := s.ocrContext
	s.ocrContext = prompt.OCRContext{}
	return ctx
}

// ClearOCRContext discards the pending attachment.
func (s *Session) ClearOCRContext() {
	s.ocrContext = prompt.OCRContext{}
}

// =============================================================================
// PROCESSING GUARD
// =============================================================================

// BeginProcessing marks a completion call as in flight and records the
// composed prompt. It returns false, without side effects, when a call
// is already in flight; triggers during that window are a logical no-op
// observed by the guard.
func (s *Session) BeginProcessing(composedPrompt string) bool {
	if s.processing {
		return false
	}
	s.processing = true
	s.lastPrompt = composedPrompt
	return true
}

// EndProcessing clears the in-flight flag and the stored prompt.
func (s *Session) EndProcessing() {
	s.processing = false
	s.lastPrompt = ""
}

// Processing reports whether a completion call is in flight.
func (s *Session) Processing() bool {
	return s.processing
}

// LastPrompt returns the most recently composed prompt, or "" when idle.
func (s *Session) LastPrompt() string {
	return s.lastPrompt
}
