// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/codegen-tui/internal/config"
	"github.com/jeranaias/codegen-tui/internal/model"
	"github.com/jeranaias/codegen-tui/internal/prompt"
	"github.com/jeranaias/codegen-tui/internal/ui/components"
	"github.com/jeranaias/codegen-tui/internal/ui/styles"
)

// =============================================================================
// UPDATE DISPATCH
// =============================================================================

// Update is the single event handler: every user action and every
// asynchronous result flows through here as one state transition.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		switch m.state {
		case viewSetup:
			return m.handleSetupKey(msg)
		case viewAttach:
			return m.handleAttachKey(msg)
		default:
			return m.handleChatKey(msg)
		}

	case spinner.TickMsg:
		if m.session.Processing() {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case completionResultMsg:
		return m.handleCompletionResult(msg)

	case completionErrorMsg:
		// Callers always receive a reply; failures arrive as embedded
		// error text in the thread.
		m.logger.Error("completion failed", "error", msg.err)
		return m.handleCompletionResult(completionResultMsg{
			threadID: msg.threadID,
			content:  "Groq Error: " + msg.err.Error(),
		})

	case attachResultMsg:
		return m.handleAttachResult(msg)

	case attachErrorMsg:
		m.logger.Error("ingestion failed", "file", msg.filename, "error", msg.err)
		m.notice = "Could not read " + msg.filename
		return m, nil

	case speechResultMsg:
		return m.handleSpeechResult(msg)

	case speechErrorMsg:
		// All voice failures collapse to a quiet notice; no message is
		// appended and the user may immediately retry.
		m.logger.Warn("voice input failed", "error", msg.err)
		m.notice = "Didn't catch that"
		return m, nil

	case exportResultMsg:
		m.notice = "Exported to " + msg.path
		return m, nil

	case exportErrorMsg:
		m.logger.Error("export failed", "error", msg.err)
		m.notice = "Export failed"
		return m, nil
	}

	return m, nil
}

// =============================================================================
// WINDOW AND VIEWPORT
// =============================================================================

func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	contentWidth := m.contentWidth()
	viewportHeight := m.height - 9
	if viewportHeight < 5 {
		viewportHeight = 5
	}

	if !m.ready {
		m.viewport = viewport.New(contentWidth, viewportHeight)
		m.ready = true
	} else {
		m.viewport.Width = contentWidth
		m.viewport.Height = viewportHeight
	}

	m.header.SetWidth(m.width)
	m.status.SetWidth(m.width)
	m.modes.SetWidth(contentWidth)
	m.sidebar.SetSize(m.sidebarWidth(), viewportHeight+4)
	m.input.Width = contentWidth - 6
	m.pathInput.Width = contentWidth - 6

	m.rebuildTheme()
	return m, nil
}

// =============================================================================
// FIRST-LAUNCH SETUP
// =============================================================================

func (m *Model) handleSetupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case msg.String() == "left", msg.String() == "shift+tab":
		m.roleIdx = (m.roleIdx + len(setupRoles) - 1) % len(setupRoles)
		return m, nil

	case msg.String() == "right", msg.String() == "tab":
		m.roleIdx = (m.roleIdx + 1) % len(setupRoles)
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		name := strings.TrimSpace(m.input.Value())
		if name == "" {
			m.notice = "Enter your name to continue"
			return m, nil
		}
		role := strings.ToLower(setupRoles[m.roleIdx])

		m.session.UserName = name
		m.session.Role = role
		m.session.Mode = m.defaultMode()
		m.currentModeSet()
		m.modes.SetWidth(m.contentWidth())
		m.header = components.NewHeader(m.cfg.UI.AIName, name)
		m.header.SetWidth(m.width)

		m.cfg.User.Name = name
		m.cfg.User.Role = role
		if err := config.Save(m.cfg); err != nil {
			m.logger.Warn("could not persist user details", "error", err)
		}

		m.input.SetValue("")
		m.input.Placeholder = "Ask about code, errors, or attach screenshots..."
		m.state = viewChat
		m.notice = ""
		m.refreshViewport()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// =============================================================================
// ATTACH PROMPT
// =============================================================================

func (m *Model) handleAttachKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.state = viewChat
		m.pathInput.SetValue("")
		m.pathInput.Blur()
		m.input.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		path := strings.TrimSpace(m.pathInput.Value())
		if path == "" {
			return m, nil
		}
		if !m.ingest.Supported(path) {
			m.notice = "PDF ingestion requires tesseract and pdftoppm on PATH"
			return m, nil
		}
		m.state = viewChat
		m.pathInput.SetValue("")
		m.pathInput.Blur()
		m.input.Focus()
		m.notice = "Reading " + filepath.Base(path) + "..."
		return m, attachCmd(m.ingest, path)

	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd
}

// =============================================================================
// MAIN CHAT KEYS
// =============================================================================

func (m *Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		return m.handleSend()

	case key.Matches(msg, m.keys.NewChat):
		m.session.CreateThread()
		m.sidebar.Cursor = 0
		m.syncSidebar()
		m.refreshViewport()
		return m, nil

	case key.Matches(msg, m.keys.DeleteChat):
		m.session.DeleteThread(m.session.ActiveID())
		m.syncSidebar()
		m.refreshViewport()
		return m, nil

	case key.Matches(msg, m.keys.ClearChats):
		m.session.ClearThreads()
		m.sidebar.Cursor = 0
		m.syncSidebar()
		m.refreshViewport()
		return m, nil

	case key.Matches(msg, m.keys.PrevThread):
		return m.moveThread(-1)

	case key.Matches(msg, m.keys.NextThread):
		return m.moveThread(1)

	case key.Matches(msg, m.keys.Attach):
		m.state = viewAttach
		m.input.Blur()
		m.pathInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Speak):
		return m.handleSpeak()

	case key.Matches(msg, m.keys.CycleMode):
		m.session.Mode = m.modes.Next()
		return m, nil

	case key.Matches(msg, m.keys.CycleModel):
		m.session.Model = nextModel(m.session.Model)
		m.syncSidebar()
		return m, nil

	case key.Matches(msg, m.keys.ToggleTheme):
		m.session.Theme = styles.ToggleTheme(m.session.Theme)
		m.cfg.UI.Theme = m.session.Theme
		m.rebuildTheme()
		m.syncSidebar()
		return m, nil

	case key.Matches(msg, m.keys.Export):
		dir, err := config.ConfigDir()
		if err != nil {
			m.notice = "Export failed"
			return m, nil
		}
		return m, exportCmd(m.session.ActiveThread(), filepath.Join(dir, "exports"))

	case key.Matches(msg, m.keys.ScrollUp):
		m.viewport.ViewUp()
		return m, nil

	case key.Matches(msg, m.keys.ScrollDown):
		m.viewport.ViewDown()
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		// Esc discards a pending attachment, mirroring the preview's
		// close button.
		if !m.session.OCRContext().IsZero() {
			m.session.ClearOCRContext()
			m.notice = ""
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// moveThread shifts the active thread by delta within the list.
func (m *Model) moveThread(delta int) (tea.Model, tea.Cmd) {
	threads := m.session.Threads()
	if len(threads) == 0 {
		return m, nil
	}
	idx := 0
	for i, th := range threads {
		if th.ID == m.session.ActiveID() {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(threads)) % len(threads)
	m.session.SetActive(threads[idx].ID)
	m.sidebar.Cursor = idx
	m.syncSidebar()
	m.refreshViewport()
	return m, nil
}

// =============================================================================
// SEND / SPEAK / ASYNC RESULTS
// =============================================================================

// handleSend turns the typed input into a composed prompt and fires the
// completion. Refused without side effects while one is in flight.
func (m *Model) handleSend() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}

	composed := prompt.Compose(m.session.Mode, text, m.session.OCRContext())
	if !m.session.BeginProcessing(composed) {
		m.notice = "Still thinking, hold on"
		return m, nil
	}

	// Pending attachment folds into exactly this prompt and no later one.
	m.session.ConsumeOCRContext()
	m.session.AppendUserMessage(text)
	m.input.SetValue("")
	m.notice = ""
	m.syncSidebar()
	m.refreshViewport()

	m.logger.Info("prompt sent", "model", m.session.Model, "mode", m.session.Mode, "chars", len(composed))
	return m, completeCmd(m.client, m.session.Model, composed, m.session.ActiveID())
}

// handleSpeak runs the bounded voice capture. The transcript is treated
// exactly like typed input except that a pending attachment is left
// alone.
func (m *Model) handleSpeak() (tea.Model, tea.Cmd) {
	if m.speech == nil {
		m.notice = "Voice input unavailable (no recorder found)"
		return m, nil
	}
	if m.session.Processing() {
		m.notice = "Still thinking, hold on"
		return m, nil
	}
	m.notice = "Listening..."
	return m, speakCmd(m.speech)
}

func (m *Model) handleSpeechResult(msg speechResultMsg) (tea.Model, tea.Cmd) {
	composed := prompt.Compose(m.session.Mode, msg.text, prompt.OCRContext{})
	if !m.session.BeginProcessing(composed) {
		return m, nil
	}

	m.session.AppendUserMessage(msg.text)
	m.notice = ""
	m.syncSidebar()
	m.refreshViewport()

	m.logger.Info("voice prompt sent", "model", m.session.Model, "chars", len(msg.text))
	return m, completeCmd(m.client, m.session.Model, composed, m.session.ActiveID())
}

func (m *Model) handleAttachResult(msg attachResultMsg) (tea.Model, tea.Cmd) {
	if msg.ctx.Text == "" {
		m.notice = "No text extracted from " + msg.ctx.Filename
		return m, nil
	}

	m.session.SetOCRContext(msg.ctx)
	m.notice = "Attached " + msg.ctx.Filename + ". Type your question."
	m.logger.Info("file attached", "file", msg.ctx.Filename, "chars", msg.ctx.CharCount())

	// A fresh attachment immediately asks for an analysis pass. The
	// context stays pending so the user's next question still carries it.
	composed := prompt.ComposeAutoAttach(m.session.Mode, msg.ctx)
	if !m.session.BeginProcessing(composed) {
		return m, nil
	}
	m.refreshViewport()
	return m, completeCmd(m.client, m.session.Model, composed, m.session.ActiveID())
}

func (m *Model) handleCompletionResult(msg completionResultMsg) (tea.Model, tea.Cmd) {
	m.appendAssistantTo(msg.threadID, msg.content)
	m.session.EndProcessing()
	m.syncSidebar()
	m.refreshViewport()
	return m, nil
}

// nextModel cycles through the model registry in order.
func nextModel(current string) string {
	ids := model.ModelIDs()
	for i, id := range ids {
		if id == current {
			return ids[(i+1)%len(ids)]
		}
	}
	if len(ids) > 0 {
		return ids[0]
	}
	return current
}
