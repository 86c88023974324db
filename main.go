// codegen TUI - a terminal coding assistant over the Groq API.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/codegen-tui/internal/config"
	"github.com/jeranaias/codegen-tui/internal/groq"
	"github.com/jeranaias/codegen-tui/internal/ingest"
	"github.com/jeranaias/codegen-tui/internal/logging"
	"github.com/jeranaias/codegen-tui/internal/prompt"
	"github.com/jeranaias/codegen-tui/internal/session"
	"github.com/jeranaias/codegen-tui/internal/speech"
	"github.com/jeranaias/codegen-tui/internal/ui/chat"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	for _, arg := range os.Args[1:] {
		if arg == "--version" || arg == "-v" {
			fmt.Printf("codegen %s (%s, built %s)\n", Version, GitCommit, BuildDate)
			return
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "codegen: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// The API key is the one hard requirement; everything else degrades.
	if err := cfg.RequireAPIKey(); err != nil {
		if errors.Is(err, config.ErrMissingAPIKey) {
			fmt.Fprintln(os.Stderr, "codegen: no API key found.")
			fmt.Fprintln(os.Stderr, "Set CODEGEN_API_KEY or GROQ_API_KEY (or api.key in ~/.codegen/config.toml).")
		} else {
			fmt.Fprintf(os.Stderr, "codegen: %v\n", err)
		}
		os.Exit(1)
	}

	logPath, err := cfg.LogPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "codegen: %v\n", err)
		os.Exit(1)
	}
	logger, closeLog, err := logging.Setup(logPath, cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "codegen: cannot open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	client := groq.NewClient(cfg.API.Key)
	if cfg.API.BaseURL != "" && cfg.API.BaseURL != groq.DefaultBaseURL {
		client = client.WithBaseURL(cfg.API.BaseURL)
	}

	backend := ingest.Detect()
	ingestAdapter := ingest.NewAdapter(backend)
	logger.Info("ocr backend detected",
		"tesseract", backend.OCRAvailable(),
		"pdf", backend.PDFSupported())

	var speechAdapter *speech.Adapter
	if cfg.Speech.Enabled {
		var recorder *speech.Recorder
		var err error
		if cfg.Speech.RecorderBinary != "" {
			recorder = speech.NewRecorder(cfg.Speech.RecorderBinary)
		} else {
			recorder, err = speech.DetectRecorder()
		}
		if err != nil {
			logger.Warn("voice input disabled", "error", err)
		} else {
			transcriber := speech.NewTranscriber(cfg.API.Key)
			if cfg.API.BaseURL != "" && cfg.API.BaseURL != speech.DefaultBaseURL {
				transcriber = transcriber.WithBaseURL(cfg.API.BaseURL)
			}
			speechAdapter = speech.NewAdapter(recorder, transcriber)
		}
	}

	sess := session.New(session.Settings{
		Model:       cfg.DefaultModel,
		Temperature: 0.7,
		Theme:       cfg.UI.Theme,
		FontSize:    cfg.UI.FontSize,
		UserName:    cfg.User.Name,
		Role:        cfg.User.Role,
		Mode:        prompt.DefaultModeForRole(cfg.User.Role),
	})

	logger.Info("starting", "version", Version, "model", cfg.DefaultModel)

	app := chat.New(sess, client, ingestAdapter, speechAdapter, cfg, logger)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited with error", "error", err)
		fmt.Fprintf(os.Stderr, "codegen: %v\n", err)
		os.Exit(1)
	}
}
