// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/jeranaias/codegen-tui/internal/config"
	"github.com/jeranaias/codegen-tui/internal/groq"
	"github.com/jeranaias/codegen-tui/internal/ingest"
	"github.com/jeranaias/codegen-tui/internal/model"
	"github.com/jeranaias/codegen-tui/internal/prompt"
	"github.com/jeranaias/codegen-tui/internal/session"
	"github.com/jeranaias/codegen-tui/internal/speech"
	"github.com/jeranaias/codegen-tui/internal/ui/components"
	"github.com/jeranaias/codegen-tui/internal/ui/styles"
)

// =============================================================================
// VIEW STATES
// =============================================================================

// viewState selects which screen the model renders.
type viewState int

const (
	// viewSetup asks for name and role on first launch.
	viewSetup viewState = iota
	// viewChat is the main conversation screen.
	viewChat
	// viewAttach prompts for a file path to ingest.
	viewAttach
)

// setupRoles are offered during first-launch setup, in display order.
var setupRoles = []string{"Student", "Teacher", "Coder", "Employee", "Business"}

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the whole application.
type Model struct {
	// Collaborators
	session *session.Session
	client  *groq.Client
	ingest  *ingest.Adapter
	speech  *speech.Adapter // nil when no recorder was detected
	cfg     *config.Config
	logger  *log.Logger

	// Rendering
	theme    *styles.Theme
	markdown *components.Markdown
	header   *components.Header
	sidebar  *components.Sidebar
	status   *components.StatusBar
	modes    *components.ModeCards

	// Bubbles
	input     textinput.Model
	pathInput textinput.Model
	viewport  viewport.Model
	spin      spinner.Model

	// State
	state     viewState
	keys      KeyMap
	width     int
	height    int
	ready     bool
	roleIdx   int
	notice    string
	lastError string
	quitting  bool
}

// New builds the application model. The session may start empty (first
// launch) or carry settings restored from config.
func New(sess *session.Session, client *groq.Client, ingestAdapter *ingest.Adapter, speechAdapter *speech.Adapter, cfg *config.Config, logger *log.Logger) *Model {
	input := textinput.New()
	input.Placeholder = "Ask about code, errors, or attach screenshots..."
	input.CharLimit = 4000
	input.Focus()

	pathInput := textinput.New()
	pathInput.Placeholder = "Path to file (.py .txt .png .jpg .pdf)..."

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	m := &Model{
		session:   sess,
		client:    client,
		ingest:    ingestAdapter,
		speech:    speechAdapter,
		cfg:       cfg,
		logger:    logger,
		theme:     styles.NewTheme(sess.Theme),
		header:    components.NewHeader(cfg.UI.AIName, sess.UserName),
		sidebar:   components.NewSidebar(),
		status:    components.NewStatusBar(),
		modes:     components.NewModeCards(sess.Role, sess.Mode),
		input:     input,
		pathInput: pathInput,
		spin:      spin,
		state:     viewChat,
		keys:      DefaultKeyMap(),
		width:     100,
		height:    30,
	}

	if sess.UserName == "" || sess.Role == "" {
		m.state = viewSetup
	}

	m.markdown = components.NewMarkdown(m.theme.Name, m.contentWidth())
	return m
}

// Init starts the cursor blink and spinner.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spin.Tick)
}

// =============================================================================
// LAYOUT HELPERS
// =============================================================================

func (m *Model) sidebarWidth() int {
	w := m.width / 4
	if w < 24 {
		w = 24
	}
	if w > 36 {
		w = 36
	}
	return w
}

func (m *Model) contentWidth() int {
	w := m.width - m.sidebarWidth() - 2
	if w < 40 {
		w = 40
	}
	return w
}

// rebuildTheme re-creates theme-bound renderers after a toggle or
// resize.
func (m *Model) rebuildTheme() {
	m.theme = styles.NewTheme(m.session.Theme)
	m.markdown = components.NewMarkdown(m.theme.Name, m.contentWidth()-8)
	m.refreshViewport()
}

// refreshViewport re-renders the active thread into the viewport and
// keeps it pinned to the bottom.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderMessages())
	m.viewport.GotoBottom()
}

// syncSidebar mirrors session state into the sidebar component. Titles
// are re-derived first so they track each thread's newest user message.
func (m *Model) syncSidebar() {
	for _, th := range m.session.Threads() {
		th.DeriveTitle()
	}
	m.sidebar.Threads = m.session.Threads()
	m.sidebar.ActiveID = m.session.ActiveID()
	m.sidebar.ModelName = m.session.Model
	m.sidebar.ThemeName = m.session.Theme
	m.sidebar.FontSize = m.session.FontSize
	m.sidebar.ClampCursor()
}

// appendAssistantTo adds a reply to the thread that asked for it, which
// is not necessarily the active one.
func (m *Model) appendAssistantTo(threadID, content string) {
	for _, th := range m.session.Threads() {
		if th.ID == threadID {
			th.Append(model.RoleAssistant, content)
			return
		}
	}
	// Thread was deleted while waiting; drop the reply.
	m.logger.Warn("reply for deleted thread discarded", "thread", threadID)
}

// currentModeSet refreshes the mode cards after a role change.
func (m *Model) currentModeSet() {
	m.modes = components.NewModeCards(m.session.Role, m.session.Mode)
}

// defaultMode returns the first mode for the session's role.
func (m *Model) defaultMode() prompt.Mode {
	return prompt.DefaultModeForRole(m.session.Role)
}
