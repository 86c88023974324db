// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ingest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/jeranaias/codegen-tui/internal/util"
)

// =============================================================================
// CONSTANTS
// =============================================================================

const (
	// MaxExtractedRunes caps OCR output from a single image attachment.
	MaxExtractedRunes = 4000

	// pdfRasterDPI is the resolution pdftoppm renders pages at. 150 keeps
	// text legible for OCR without producing huge intermediates.
	pdfRasterDPI = "150"
)

// imageExts are the attachment extensions routed through the OCR path.
var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
}

// =============================================================================
// ADAPTER
// =============================================================================

// Adapter turns an attached file into extracted text. Routing is by
// filename extension: images are OCRed, PDFs are rasterized then OCRed
// page by page, and everything else is read as permissive UTF-8 text.
type Adapter struct {
	backend Backend
}

// NewAdapter returns an adapter bound to the given backend probe result.
func NewAdapter(backend Backend) *Adapter {
	return &Adapter{backend: backend}
}

// Backend returns the probe result the adapter was built with.
func (a *Adapter) Backend() Backend {
	return a.backend
}

// Supported reports whether the named file can be ingested in the
// current environment. Only PDFs are ever unsupported.
func (a *Adapter) Supported(filename string) bool {
	if strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return a.backend.PDFSupported()
	}
	return true
}

// Extract reads the source and returns collapsed extracted text. A nil
// error with an empty string means the file genuinely contained no text.
// Failures come back as *IngestError; the caller reports them and leaves
// any pending attachment state untouched.
func (a *Adapter) Extract(ctx context.Context, src io.Reader, filename string) (string, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return "", newError(KindRead, filename, err)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch {
	case imageExts[ext]:
		return a.extractImage(ctx, data, filename)
	case ext == ".pdf":
		return a.extractPDF(ctx, data, filename)
	default:
		return extractText(data), nil
	}
}

// =============================================================================
// IMAGE PATH
// =============================================================================

func (a *Adapter) extractImage(ctx context.Context, data []byte, filename string) (string, error) {
	if !a.backend.OCRAvailable() {
		return "", newError(KindOCR, filename, errors.New("tesseract not found on PATH"))
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return "", newError(KindDecode, filename, err)
	}

	// Grayscale before OCR; tesseract handles screenshots of dark UIs
	// noticeably better without color noise.
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, imaging.Grayscale(img), imaging.PNG); err != nil {
		return "", newError(KindDecode, filename, err)
	}

	text, err := a.runTesseract(ctx, &buf, "stdin")
	if err != nil {
		return "", newError(KindOCR, filename, err)
	}
	return util.TruncateRunesNoEllipsis(util.CollapseWhitespace(text), MaxExtractedRunes), nil
}

// =============================================================================
// PDF PATH
// =============================================================================

func (a *Adapter) extractPDF(ctx context.Context, data []byte, filename string) (string, error) {
	if !a.backend.PDFSupported() {
		return "", newError(KindUnsupported, filename, errors.New("PDF ingestion requires tesseract and pdftoppm"))
	}

	dir, err := os.MkdirTemp("", "codegen-pdf-*")
	if err != nil {
		return "", newError(KindRead, filename, err)
	}
	defer os.RemoveAll(dir)

	pdfPath := filepath.Join(dir, "input.pdf")
	if err := os.WriteFile(pdfPath, data, 0o600); err != nil {
		return "", newError(KindRead, filename, err)
	}

	prefix := filepath.Join(dir, "page")
	cmd := exec.CommandContext(ctx, a.backend.PDFToPPMPath, "-png", "-r", pdfRasterDPI, pdfPath, prefix)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", newError(KindDecode, filename, fmt.Errorf("pdftoppm: %w: %s", err, strings.TrimSpace(string(out))))
	}

	// pdftoppm zero-pads page numbers, so lexical glob order is page order.
	pages, err := filepath.Glob(prefix + "-*.png")
	if err != nil || len(pages) == 0 {
		return "", newError(KindDecode, filename, errors.New("no pages rasterized"))
	}

	var parts []string
	for _, page := range pages {
		f, err := os.Open(page)
		if err != nil {
			return "", newError(KindRead, filename, err)
		}
		text, err := a.runTesseract(ctx, f, "stdin")
		f.Close()
		if err != nil {
			return "", newError(KindOCR, filename, err)
		}
		if text = strings.TrimSpace(text); text != "" {
			parts = append(parts, text)
		}
	}
	return util.CollapseWhitespace(strings.Join(parts, "\n")), nil
}

// =============================================================================
// HELPERS
// =============================================================================

// runTesseract feeds image bytes to tesseract and returns raw stdout.
func (a *Adapter) runTesseract(ctx context.Context, stdin io.Reader, input string) (string, error) {
	cmd := exec.CommandContext(ctx, a.backend.TesseractPath, input, "stdout", "--psm", "6")
	cmd.Stdin = stdin
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("tesseract: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

// extractText decodes arbitrary bytes as permissive UTF-8, dropping
// invalid sequences rather than failing.
func extractText(data []byte) string {
	return util.CollapseWhitespace(strings.ToValidUTF8(string(data), ""))
}
