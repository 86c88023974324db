// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"

	"github.com/jeranaias/codegen-tui/internal/prompt"
	"github.com/jeranaias/codegen-tui/internal/ui/styles"
)

// =============================================================================
// ATTACHMENT BADGE COMPONENT
// =============================================================================

// AttachmentBadge shows the pending OCR context above the input: the
// source filename and how much text was extracted. It disappears once
// the context is consumed by the next send.
type AttachmentBadge struct {
	Context prompt.OCRContext
	Width   int
}

// NewAttachmentBadge wraps a pending OCR context.
func NewAttachmentBadge(ctx prompt.OCRContext) *AttachmentBadge {
	return &AttachmentBadge{Context: ctx, Width: 80}
}

// View renders the badge, or nothing when no attachment is pending.
func (a *AttachmentBadge) View(theme *styles.Theme) string {
	if a.Context.IsZero() {
		return ""
	}
	label := "📎 " + a.Context.Filename + " (" + strconv.Itoa(a.Context.CharCount()) + " chars)"
	return theme.AttachmentBadge.Render(fitWidth(label, a.Width-4))
}
