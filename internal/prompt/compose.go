// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package prompt

import (
	"fmt"

	"github.com/jeranaias/codegen-tui/internal/util"
)

// OCRContext is extracted text from the most recently attached file,
// pending one-shot use in the next composed prompt.
type OCRContext struct {
	Text     string
	Filename string
}

// IsZero reports whether no attachment is pending.
func (c OCRContext) IsZero() bool {
	return c.Text == ""
}

// CharCount returns the number of extracted runes, for display.
func (c OCRContext) CharCount() int {
	return util.RuneLen(c.Text)
}

// =============================================================================
// COMPOSITION
// =============================================================================

// Compose builds the final prompt for a typed or spoken user message.
// With a pending OCR context the filename and extracted text block are
// embedded before the user's question; otherwise the user query follows
// the system prompt directly. Output goes verbatim to the completion
// client.
func Compose(mode Mode, userText string, ctx OCRContext) string {
	system := SystemPrompt(mode)

	if !ctx.IsZero() {
		return fmt.Sprintf(
			"%s\n\n**Screenshot/File:** %s\n**OCR Extracted Code/UI:**\n%s\n\n**User Question:** %s",
			system, ctx.Filename, ctx.Text, userText,
		)
	}

	return fmt.Sprintf("%s\n\nUser query:\n%s", system, userText)
}

// ComposeAutoAttach builds the prompt for the attach-only flow, where no
// user text accompanies the file. A synthetic instruction substitutes for
// the user question.
func ComposeAutoAttach(mode Mode, ctx OCRContext) string {
	return fmt.Sprintf(
		"%s\n\n**Screenshot/File:** %s (%d chars extracted):\n%s\n\n**TASK:** Analyze this screenshot/code.",
		SystemPrompt(mode), ctx.Filename, ctx.CharCount(), ctx.Text,
	)
}
