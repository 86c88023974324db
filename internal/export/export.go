// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes chat threads to Markdown files.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jeranaias/codegen-tui/internal/model"
	"github.com/jeranaias/codegen-tui/internal/util"
)

// =============================================================================
// MARKDOWN EXPORT
// =============================================================================

// MarkdownThread renders a thread as a Markdown document.
func MarkdownThread(th *model.Thread) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", th.Title)
	fmt.Fprintf(&b, "_Exported %s · %d messages_\n\n", time.Now().Format("2006-01-02 15:04"), th.MessageCount())

	for _, msg := range th.Messages {
		fmt.Fprintf(&b, "## %s (%s)\n\n", msg.Role.DisplayName(), msg.ClockTime())
		b.WriteString(strings.TrimSpace(msg.Content))
		b.WriteString("\n\n")
	}

	return []byte(b.String())
}

// WriteThread saves a thread under dir and returns the file path. The
// filename is derived from the title; re-exporting the same chat
// overwrites the previous export.
func WriteThread(th *model.Thread, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(dir, filenameFor(th.Title))
	if err := util.AtomicWriteFile(path, MarkdownThread(th), 0644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return path, nil
}

// filenameFor turns a chat title into a safe Markdown filename.
func filenameFor(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune('-')
		}
	}
	name := strings.Trim(b.String(), "-")
	if name == "" {
		name = "chat"
	}
	if len(name) > 48 {
		name = name[:48]
	}
	return name + ".md"
}
