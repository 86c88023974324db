// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/jeranaias/codegen-tui/internal/prompt"
)

func newTestSession() *Session {
	return New(Settings{
		Model:       "llama-3.1-8b-instant",
		Temperature: 0.7,
		UserName:    "Coder",
		Role:        "student",
	})
}

// =============================================================================
// THREAD STORE TESTS
// =============================================================================

func TestNew_StartsWithOneThread(t *testing.T) {
	s := newTestSession()
	if s.ThreadCount() != 1 {
		t.Fatalf("ThreadCount() = %d, want 1", s.ThreadCount())
	}
	if s.ActiveThread() == nil {
		t.Fatal("active thread missing")
	}
	if s.Settings.Mode != prompt.ModeDebug {
		t.Errorf("default mode = %q, want %q", s.Settings.Mode, prompt.ModeDebug)
	}
}

func TestSettings_PromotedOnSession(t *testing.T) {
	s := newTestSession()

	// Settings fields read and write directly on the session.
	if s.UserName != "Coder" || s.Role != "student" {
		t.Errorf("promoted fields = %q/%q, want Coder/student", s.UserName, s.Role)
	}
	s.Theme = "Light"
	s.Model = "llama-3.3-70b-versatile"
	if s.Settings.Theme != "Light" || s.Settings.Model != "llama-3.3-70b-versatile" {
		t.Error("writes through promoted fields must land in Settings")
	}
}

func TestCreateThread_PrependsAndActivates(t *testing.T) {
	s := newTestSession()
	first := s.ActiveThread()

	second := s.CreateThread()
	if s.Threads()[0] != second {
		t.Error("new thread should be first in the list")
	}
	if s.ActiveID() != second.ID {
		t.Error("new thread should be active")
	}
	if s.Threads()[1] != first {
		t.Error("older thread should remain")
	}
}

func TestDeleteThread_LastThreadRecreates(t *testing.T) {
	s := newTestSession()
	id := s.ActiveThread().ID

	s.DeleteThread(id)

	if s.ThreadCount() != 1 {
		t.Fatalf("ThreadCount() = %d, want 1 after deleting last thread", s.ThreadCount())
	}
	if s.ActiveThread().ID == id {
		t.Error("recreated thread should have a fresh id")
	}
}

func TestDeleteThread_ActiveMovesToFirst(t *testing.T) {
	s := newTestSession()
	old := s.ActiveThread()
	newer := s.CreateThread()

	// Delete the active (newest) thread; the first remaining becomes active.
	s.DeleteThread(newer.ID)
	if s.ActiveID() != old.ID {
		t.Errorf("active = %q, want %q", s.ActiveID(), old.ID)
	}

	// Deleting an inactive thread leaves the pointer alone.
	s.CreateThread()
	active := s.ActiveID()
	s.DeleteThread(old.ID)
	if s.ActiveID() != active {
		t.Error("deleting inactive thread moved the active pointer")
	}
}

func TestThreadStore_NeverEmptyUnderRandomOps(t *testing.T) {
	s := newTestSession()
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		if rng.Intn(2) == 0 {
			s.CreateThread()
		} else {
			threads := s.Threads()
			victim := threads[rng.Intn(len(threads))]
			s.DeleteThread(victim.ID)
		}

		if s.ThreadCount() == 0 {
			t.Fatalf("store empty after operation %d", i)
		}
		// The active pointer always names a stored thread.
		found := false
		for _, th := range s.Threads() {
			if th.ID == s.ActiveID() {
				found = true
			}
		}
		if !found {
			t.Fatalf("active id %q not in store after operation %d", s.ActiveID(), i)
		}
	}
}

func TestRenameThread(t *testing.T) {
	s := newTestSession()
	id := s.ActiveThread().ID

	s.RenameThread(id, "My debugging session")
	if s.ActiveThread().Title != "My debugging session" {
		t.Errorf("title = %q", s.ActiveThread().Title)
	}

	// Unknown id is a no-op.
	s.RenameThread("nope", "other")
	if s.ActiveThread().Title != "My debugging session" {
		t.Error("rename with unknown id mutated something")
	}
}

func TestClearThreads(t *testing.T) {
	s := newTestSession()
	s.CreateThread()
	s.CreateThread()

	s.ClearThreads()
	if s.ThreadCount() != 1 {
		t.Errorf("ThreadCount() = %d, want 1", s.ThreadCount())
	}
	if !s.ActiveThread().IsEmpty() {
		t.Error("fresh thread should be empty")
	}
}

// =============================================================================
// AUTO-TITLE TESTS
// =============================================================================

func TestAppendUserMessage_AutoTitlesYoungThread(t *testing.T) {
	s := newTestSession()

	s.AppendUserMessage("fix this loop")
	if got := s.ActiveThread().Title; got != "Fix this loop" {
		t.Errorf("title = %q, want %q", got, "Fix this loop")
	}

	// Older threads keep their title.
	s.AppendAssistantMessage("done")
	s.AppendUserMessage("and now something else entirely")
	if got := s.ActiveThread().Title; got != "Fix this loop" {
		t.Errorf("title rewritten on mature thread: %q", got)
	}
}

func TestGenerateTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"capitalized", "hello world", "Hello world"},
		{"whitespace collapsed", "fix\n\tthis   loop", "Fix this loop"},
		{"empty falls back", "   ", "New Chat"},
		{
			"long input truncated to 40 plus ellipsis",
			strings.Repeat("a", 60),
			"A" + strings.Repeat("a", 39) + "...",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := GenerateTitle(tc.input)
			if got != tc.want {
				t.Errorf("GenerateTitle(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

// =============================================================================
// OCR CONTEXT TESTS
// =============================================================================

func TestConsumeOCRContext_OneShot(t *testing.T) {
	s := newTestSession()
	s.SetOCRContext(prompt.OCRContext{Text: "extracted", Filename: "shot.png"})

	first := s.ConsumeOCRContext()
	if first.Text != "extracted" || first.Filename != "shot.png" {
		t.Errorf("first consume = %+v", first)
	}

	second := s.ConsumeOCRContext()
	if !second.IsZero() {
		t.Errorf("second consume should be empty, got %+v", second)
	}
}

func TestSetOCRContext_ReplacesPrevious(t *testing.T) {
	s := newTestSession()
	s.SetOCRContext(prompt.OCRContext{Text: "old", Filename: "a.png"})
	s.SetOCRContext(prompt.OCRContext{Text: "new", Filename: "b.png"})

	got := s.ConsumeOCRContext()
	if got.Text != "new" || got.Filename != "b.png" {
		t.Errorf("got %+v, want replacement attachment", got)
	}
}

// =============================================================================
// PROCESSING GUARD TESTS
// =============================================================================

func TestProcessingGuard(t *testing.T) {
	s := newTestSession()

	if !s.BeginProcessing("prompt one") {
		t.Fatal("first BeginProcessing should succeed")
	}
	if s.BeginProcessing("prompt two") {
		t.Error("second BeginProcessing should be refused while in flight")
	}
	if s.LastPrompt() != "prompt one" {
		t.Errorf("LastPrompt() = %q, refused call must not overwrite", s.LastPrompt())
	}

	s.EndProcessing()
	if s.Processing() {
		t.Error("Processing() should be false after EndProcessing")
	}
	if s.LastPrompt() != "" {
		t.Error("LastPrompt() should clear with the flag")
	}
	if !s.BeginProcessing("prompt three") {
		t.Error("guard should reopen after EndProcessing")
	}
}
