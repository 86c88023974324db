// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// =============================================================================
// REMOTE TRANSCRIPTION
// =============================================================================

const (
	// DefaultBaseURL is the OpenAI-compatible audio API root.
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// TranscribeModel is the speech-to-text model used for every clip.
	TranscribeModel = "whisper-large-v3"

	transcribeTimeout = 30 * time.Second
)

// Transcriber sends captured audio to the remote transcription endpoint.
type Transcriber struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewTranscriber builds a transcriber sharing the completion API key.
func NewTranscriber(apiKey string) *Transcriber {
	return &Transcriber{
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: transcribeTimeout,
		},
	}
}

// WithBaseURL points the transcriber at a different API root. Used by
// tests.
func (t *Transcriber) WithBaseURL(url string) *Transcriber {
	t.baseURL = strings.TrimRight(url, "/")
	return t
}

type transcribeResponse struct {
	Text string `json:"text"`
}

// Transcribe uploads a WAV clip and returns the recognized text. An
// empty transcript comes back as a KindNoSpeech error so the caller can
// skip appending a message.
func (t *Transcriber) Transcribe(ctx context.Context, wav []byte) (string, error) {
	if t.apiKey == "" {
		return "", newError(KindTranscribe, errors.New("no API key configured"))
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", "clip.wav")
	if err != nil {
		return "", newError(KindTranscribe, err)
	}
	if _, err := part.Write(wav); err != nil {
		return "", newError(KindTranscribe, err)
	}
	if err := form.WriteField("model", TranscribeModel); err != nil {
		return "", newError(KindTranscribe, err)
	}
	if err := form.Close(); err != nil {
		return "", newError(KindTranscribe, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/audio/transcriptions", &body)
	if err != nil {
		return "", newError(KindTranscribe, err)
	}
	req.Header.Set("Authorization", "Bearer "+t.apiKey)
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", newError(KindTranscribe, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", newError(KindTranscribe, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", newError(KindTranscribe, fmt.Errorf("transcription failed (HTTP %d): %s", resp.StatusCode, strings.TrimSpace(string(data))))
	}

	var decoded transcribeResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		return "", newError(KindTranscribe, err)
	}

	text := strings.TrimSpace(decoded.Text)
	if text == "" {
		return "", newError(KindNoSpeech, nil)
	}
	return text, nil
}
