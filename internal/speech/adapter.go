// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package speech

import "context"

// =============================================================================
// VOICE ADAPTER
// =============================================================================

// Adapter chains capture and transcription into a single blocking call.
// A nil Adapter (no recorder detected) means voice input is disabled for
// the session.
type Adapter struct {
	recorder    *Recorder
	transcriber *Transcriber
}

// NewAdapter wires a recorder and transcriber together.
func NewAdapter(recorder *Recorder, transcriber *Transcriber) *Adapter {
	return &Adapter{recorder: recorder, transcriber: transcriber}
}

// Capture records a fixed-length clip and returns its transcript. Any
// failure comes back as *SpeechError; the caller appends no message.
func (a *Adapter) Capture(ctx context.Context) (string, error) {
	wav, err := a.recorder.Record(ctx)
	if err != nil {
		return "", err
	}
	return a.transcriber.Transcribe(ctx, wav)
}
