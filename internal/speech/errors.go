// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package speech

import "fmt"

// =============================================================================
// ERROR TYPES
// =============================================================================

// ErrorKind classifies what stage of voice input failed.
type ErrorKind string

const (
	// KindCapture means the microphone clip could not be recorded.
	KindCapture ErrorKind = "capture"

	// KindNoSpeech means capture succeeded but transcription heard nothing.
	KindNoSpeech ErrorKind = "no-speech"

	// KindTranscribe means the remote transcription call failed.
	KindTranscribe ErrorKind = "transcribe"
)

// SpeechError is returned when voice input fails. The chat layer treats
// every kind the same way (no message appended, quiet notice), but the
// kind is preserved for logging.
type SpeechError struct {
	Kind ErrorKind
	Err  error
}

func (e *SpeechError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("speech %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("speech %s", e.Kind)
}

func (e *SpeechError) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, err error) *SpeechError {
	return &SpeechError{Kind: kind, Err: err}
}
