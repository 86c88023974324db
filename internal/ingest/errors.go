// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ingest

import "fmt"

// =============================================================================
// ERROR TYPES
// =============================================================================

// ErrorKind classifies what stage of ingestion failed.
type ErrorKind string

const (
	// KindRead means the file bytes could not be read.
	KindRead ErrorKind = "read"

	// KindDecode means the bytes could not be decoded as the expected format.
	KindDecode ErrorKind = "decode"

	// KindOCR means the OCR engine failed or produced no usable output.
	KindOCR ErrorKind = "ocr"

	// KindUnsupported means the file type cannot be ingested in the current
	// environment (PDF with no OCR backend detected).
	KindUnsupported ErrorKind = "unsupported"
)

// IngestError is returned when a file cannot be turned into text. The
// caller reports it to the user; it never terminates the session.
type IngestError struct {
	Kind     ErrorKind
	Filename string
	Err      error
}

func (e *IngestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ingest %s: %s failed: %v", e.Filename, e.Kind, e.Err)
	}
	return fmt.Sprintf("ingest %s: %s failed", e.Filename, e.Kind)
}

func (e *IngestError) Unwrap() error {
	return e.Err
}

// newError wraps err with file and stage context.
func newError(kind ErrorKind, filename string, err error) *IngestError {
	return &IngestError{Kind: kind, Filename: filename, Err: err}
}
