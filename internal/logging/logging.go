// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging configures the session log file. The TUI owns the
// terminal, so everything goes to ~/.codegen/codegen.log instead of
// stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// =============================================================================
// LOGGER SETUP
// =============================================================================

// Setup opens the log file and returns a configured logger plus a close
// func for shutdown. An unknown level falls back to info.
func Setup(path, level string) (*log.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}

	logger := log.NewWithOptions(file, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05",
		Level:           lvl,
		Prefix:          "codegen",
	})

	return logger, func() { file.Close() }, nil
}

// Nop returns a logger that discards everything, for tests and for
// running before config is loaded.
func Nop() *log.Logger {
	return log.New(io.Discard)
}
