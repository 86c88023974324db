// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ingest

import "os/exec"

// =============================================================================
// BACKEND DETECTION
// =============================================================================

// Backend records which OCR helper binaries were found on PATH. It is
// probed once at startup and passed to the adapter; the result gates
// per-format support for the rest of the session.
type Backend struct {
	// TesseractPath is the resolved tesseract binary, or "" if absent.
	TesseractPath string

	// PDFToPPMPath is the resolved pdftoppm binary, or "" if absent.
	PDFToPPMPath string
}

// Detect probes PATH for the OCR helper binaries.
func Detect() Backend {
	var b Backend
	if path, err := exec.LookPath("tesseract"); err == nil {
		b.TesseractPath = path
	}
	if path, err := exec.LookPath("pdftoppm"); err == nil {
		b.PDFToPPMPath = path
	}
	return b
}

// OCRAvailable reports whether image OCR can run at all.
func (b Backend) OCRAvailable() bool {
	return b.TesseractPath != ""
}

// PDFSupported reports whether PDF ingestion is enabled. PDFs need both
// the rasterizer and the OCR engine; missing either disables the path
// entirely.
func (b Backend) PDFSupported() bool {
	return b.TesseractPath != "" && b.PDFToPPMPath != ""
}
