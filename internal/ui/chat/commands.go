// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/codegen-tui/internal/export"
	"github.com/jeranaias/codegen-tui/internal/groq"
	"github.com/jeranaias/codegen-tui/internal/ingest"
	"github.com/jeranaias/codegen-tui/internal/model"
	"github.com/jeranaias/codegen-tui/internal/prompt"
	"github.com/jeranaias/codegen-tui/internal/speech"
)

// =============================================================================
// COMMAND FACTORIES
// =============================================================================
// Each factory returns a tea.Cmd that does the blocking work off the
// event loop and reports back with exactly one typed message.

const completionTimeout = 90 * time.Second

// completeCmd issues one completion request for a composed prompt.
func completeCmd(client *groq.Client, modelID, composedPrompt, threadID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), completionTimeout)
		defer cancel()

		content, err := client.Complete(ctx, modelID, composedPrompt)
		if err != nil {
			return completionErrorMsg{threadID: threadID, err: err}
		}
		return completionResultMsg{threadID: threadID, content: content}
	}
}

// attachCmd reads and extracts text from a local file.
func attachCmd(adapter *ingest.Adapter, path string) tea.Cmd {
	return func() tea.Msg {
		filename := filepath.Base(path)

		file, err := os.Open(path)
		if err != nil {
			return attachErrorMsg{filename: filename, err: err}
		}
		defer file.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		text, err := adapter.Extract(ctx, file, filename)
		if err != nil {
			return attachErrorMsg{filename: filename, err: err}
		}
		return attachResultMsg{ctx: prompt.OCRContext{Text: text, Filename: filename}}
	}
}

// speakCmd records a clip and transcribes it. Blocks for the capture
// window plus transcription latency.
func speakCmd(adapter *speech.Adapter) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), speech.CaptureDuration+45*time.Second)
		defer cancel()

		text, err := adapter.Capture(ctx)
		if err != nil {
			return speechErrorMsg{err: err}
		}
		return speechResultMsg{text: text}
	}
}

// exportCmd writes the thread to the export directory.
func exportCmd(th *model.Thread, dir string) tea.Cmd {
	return func() tea.Msg {
		path, err := export.WriteThread(th, dir)
		if err != nil {
			return exportErrorMsg{err: err}
		}
		return exportResultMsg{path: path}
	}
}
