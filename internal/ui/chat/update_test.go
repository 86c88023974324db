// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/codegen-tui/internal/config"
	"github.com/jeranaias/codegen-tui/internal/groq"
	"github.com/jeranaias/codegen-tui/internal/ingest"
	"github.com/jeranaias/codegen-tui/internal/logging"
	"github.com/jeranaias/codegen-tui/internal/model"
	"github.com/jeranaias/codegen-tui/internal/prompt"
	"github.com/jeranaias/codegen-tui/internal/session"
)

// newTestModel builds a ready model on the mock pseudo-model so that
// completion commands never touch the network.
func newTestModel(t *testing.T) *Model {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cfg := config.Default()
	cfg.User.Name = "Ada"
	cfg.User.Role = "student"

	sess := session.New(session.Settings{
		Model:       model.MockModel,
		Temperature: 0.7,
		Theme:       "Dark",
		FontSize:    "Medium",
		UserName:    "Ada",
		Role:        "student",
		Mode:        prompt.DefaultModeForRole("student"),
	})

	m := New(sess, groq.NewClient(""), ingest.NewAdapter(ingest.Detect()), nil, cfg, logging.Nop())
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func sendKey(m *Model, k tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(k)
	return cmd
}

func enterKey() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }

func TestSend_AppendsUserMessageAndStartsProcessing(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("why does this panic?")

	cmd := sendKey(m, enterKey())
	require.NotNil(t, cmd)

	th := m.session.ActiveThread()
	require.Equal(t, 1, th.MessageCount())
	assert.Equal(t, model.RoleUser, th.Messages[0].Role)
	assert.Equal(t, "why does this panic?", th.Messages[0].Content)
	assert.True(t, m.session.Processing())
	assert.Empty(t, m.input.Value())
}

func TestSend_RefusedWhileProcessing(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("first")
	sendKey(m, enterKey())

	m.input.SetValue("second")
	cmd := sendKey(m, enterKey())

	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.session.ActiveThread().MessageCount())
	assert.Equal(t, "second", m.input.Value(), "refused input must survive")
}

func TestSend_EmptyInputIsNoop(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("   ")

	cmd := sendKey(m, enterKey())

	assert.Nil(t, cmd)
	assert.False(t, m.session.Processing())
	assert.Equal(t, 0, m.session.ActiveThread().MessageCount())
}

func TestSend_ConsumesPendingAttachmentOnce(t *testing.T) {
	m := newTestModel(t)
	m.session.SetOCRContext(prompt.OCRContext{Text: "IndexError: list index out of range", Filename: "trace.txt"})

	m.input.SetValue("what happened here?")
	sendKey(m, enterKey())

	assert.True(t, m.session.OCRContext().IsZero(), "typed send consumes the attachment")
	assert.Contains(t, m.session.LastPrompt(), "IndexError")

	// The next send composes without it.
	m.session.EndProcessing()
	m.input.SetValue("and now?")
	sendKey(m, enterKey())
	assert.NotContains(t, m.session.LastPrompt(), "IndexError")
}

func TestSend_MockModelRoundTrip(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("hello")

	cmd := sendKey(m, enterKey())
	require.NotNil(t, cmd)

	msg := cmd()
	result, ok := msg.(completionResultMsg)
	require.True(t, ok, "mock completions resolve synchronously, got %T", msg)
	assert.Equal(t, groq.MockResponse, result.content)

	m.Update(result)
	th := m.session.ActiveThread()
	require.Equal(t, 2, th.MessageCount())
	assert.Equal(t, model.RoleAssistant, th.Messages[1].Role)
	assert.Equal(t, groq.MockResponse, th.Messages[1].Content)
	assert.False(t, m.session.Processing())
}

func TestSidebarTitle_TracksNewestUserMessage(t *testing.T) {
	m := newTestModel(t)

	m.input.SetValue("first question about loops")
	cmd := sendKey(m, enterKey())
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Equal(t, "first question about loops", m.session.ActiveThread().Title)

	m.input.SetValue("explain goroutine leaks")
	cmd = sendKey(m, enterKey())
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, "explain goroutine leaks", m.session.ActiveThread().Title,
		"title must follow the latest user turn, not freeze on the first")
}

func TestCompletionResult_LandsInOriginThread(t *testing.T) {
	m := newTestModel(t)
	origin := m.session.ActiveThread()
	m.input.SetValue("slow question")
	sendKey(m, enterKey())

	// User switches away before the reply arrives.
	m.session.CreateThread()
	m.Update(completionResultMsg{threadID: origin.ID, content: "late answer"})

	assert.Equal(t, 2, origin.MessageCount())
	assert.Equal(t, "late answer", origin.Messages[1].Content)
	assert.Equal(t, 0, m.session.ActiveThread().MessageCount())
}

func TestCompletionResult_DeletedThreadDropsReply(t *testing.T) {
	m := newTestModel(t)
	origin := m.session.ActiveThread()
	m.input.SetValue("question")
	sendKey(m, enterKey())

	m.session.CreateThread()
	m.session.DeleteThread(origin.ID)
	m.Update(completionResultMsg{threadID: origin.ID, content: "orphan"})

	for _, th := range m.session.Threads() {
		for _, msg := range th.Messages {
			assert.NotEqual(t, "orphan", msg.Content)
		}
	}
	assert.False(t, m.session.Processing())
}

func TestCompletionError_EmbeddedAsAssistantText(t *testing.T) {
	m := newTestModel(t)
	th := m.session.ActiveThread()
	m.input.SetValue("question")
	sendKey(m, enterKey())

	m.Update(completionErrorMsg{threadID: th.ID, err: assert.AnError})

	require.Equal(t, 2, th.MessageCount())
	assert.Equal(t, model.RoleAssistant, th.Messages[1].Role)
	assert.True(t, strings.HasPrefix(th.Messages[1].Content, "Groq Error: "))
	assert.False(t, m.session.Processing())
}

func TestAttachResult_AutoPromptWithoutUserMessage(t *testing.T) {
	m := newTestModel(t)
	ctx := prompt.OCRContext{Text: "def broken(): return 1/0", Filename: "shot.png"}

	_, cmd := m.Update(attachResultMsg{ctx: ctx})

	require.NotNil(t, cmd, "attachment fires an immediate analysis pass")
	assert.Equal(t, 0, m.session.ActiveThread().MessageCount(), "no user message for auto-analysis")
	assert.True(t, m.session.Processing())
	assert.Contains(t, m.session.LastPrompt(), "def broken()")
	assert.False(t, m.session.OCRContext().IsZero(), "context stays pending for the next typed question")
}

func TestAttachResult_EmptyExtractionIsNotice(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(attachResultMsg{ctx: prompt.OCRContext{Filename: "blank.png"}})

	assert.Nil(t, cmd)
	assert.False(t, m.session.Processing())
	assert.True(t, m.session.OCRContext().IsZero())
	assert.Contains(t, m.notice, "blank.png")
}

func TestSpeechResult_IgnoresPendingAttachment(t *testing.T) {
	m := newTestModel(t)
	m.session.SetOCRContext(prompt.OCRContext{Text: "stack trace text", Filename: "err.png"})

	_, cmd := m.Update(speechResultMsg{text: "explain recursion"})

	require.NotNil(t, cmd)
	th := m.session.ActiveThread()
	require.Equal(t, 1, th.MessageCount())
	assert.Equal(t, "explain recursion", th.Messages[0].Content)
	assert.NotContains(t, m.session.LastPrompt(), "stack trace", "voice never folds the attachment")
	assert.False(t, m.session.OCRContext().IsZero(), "attachment survives a voice turn")
}

func TestSpeechError_QuietNotice(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(speechErrorMsg{err: assert.AnError})

	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.session.ActiveThread().MessageCount())
	assert.NotEmpty(t, m.notice)
}

func TestSpeak_UnavailableWithoutRecorder(t *testing.T) {
	m := newTestModel(t) // speech adapter is nil

	cmd := sendKey(m, tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Nil(t, cmd)
	assert.Contains(t, m.notice, "unavailable")
}

func TestEsc_ClearsPendingAttachment(t *testing.T) {
	m := newTestModel(t)
	m.session.SetOCRContext(prompt.OCRContext{Text: "text", Filename: "f.png"})

	sendKey(m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, m.session.OCRContext().IsZero())
}

func TestThemeToggle_FlipsSessionAndConfig(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, "Dark", m.session.Theme)

	sendKey(m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, "Light", m.session.Theme)
	assert.Equal(t, "Light", m.cfg.UI.Theme)

	sendKey(m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, "Dark", m.session.Theme)
}

func TestModeCycle_UpdatesSession(t *testing.T) {
	m := newTestModel(t)
	start := m.session.Mode

	sendKey(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.NotEqual(t, start, m.session.Mode)

	// Cycling through the full set returns to the start.
	for i := 0; i < len(prompt.ModesForRole("student"))-1; i++ {
		sendKey(m, tea.KeyMsg{Type: tea.KeyTab})
	}
	assert.Equal(t, start, m.session.Mode)
}

func TestModelCycle_WalksRegistry(t *testing.T) {
	m := newTestModel(t)
	seen := map[string]bool{m.session.Model: true}

	for i := 0; i < len(model.ModelIDs())-1; i++ {
		sendKey(m, tea.KeyMsg{Type: tea.KeyCtrlP})
		seen[m.session.Model] = true
	}

	assert.Len(t, seen, len(model.ModelIDs()))
}

func TestThreadLifecycleKeys(t *testing.T) {
	m := newTestModel(t)
	first := m.session.ActiveID()

	sendKey(m, tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.NotEqual(t, first, m.session.ActiveID())
	assert.Equal(t, 2, m.session.ThreadCount())

	sendKey(m, tea.KeyMsg{Type: tea.KeyCtrlX})
	assert.Equal(t, first, m.session.ActiveID())

	sendKey(m, tea.KeyMsg{Type: tea.KeyCtrlN})
	sendKey(m, tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Equal(t, 1, m.session.ThreadCount())
}

func TestSetupFlow_SavesNameAndRole(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := config.Default()
	sess := session.New(session.Settings{
		Model: model.MockModel,
		Theme: "Dark",
	})
	m := New(sess, groq.NewClient(""), ingest.NewAdapter(ingest.Detect()), nil, cfg, logging.Nop())
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	require.Equal(t, viewSetup, m.state)

	// Empty name is refused.
	sendKey(m, enterKey())
	assert.Equal(t, viewSetup, m.state)

	m.input.SetValue("Grace")
	sendKey(m, tea.KeyMsg{Type: tea.KeyTab}) // Student -> Teacher
	sendKey(m, enterKey())

	assert.Equal(t, viewChat, m.state)
	assert.Equal(t, "Grace", m.session.UserName)
	assert.Equal(t, "teacher", m.session.Role)
	assert.Equal(t, prompt.DefaultModeForRole("teacher"), m.session.Mode)
	assert.Equal(t, "Grace", m.cfg.User.Name)
}

func TestView_RendersWithoutPanicInEachState(t *testing.T) {
	m := newTestModel(t)

	out := m.View()
	assert.NotEmpty(t, out)

	sendKey(m, tea.KeyMsg{Type: tea.KeyCtrlO})
	require.Equal(t, viewAttach, m.state)
	assert.NotEmpty(t, m.View())

	sendKey(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, viewChat, m.state)
}
