// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package speech

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRecorderBinary writes a script that mimics arecord by writing fixed
// bytes to the output path (last argument).
func fakeRecorderBinary(t *testing.T, payload string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake binary helper is a shell script")
	}
	path := filepath.Join(t.TempDir(), "arecord")
	script := "#!/bin/sh\nfor out; do :; done\nprintf '%s' \"" + payload + "\" > \"$out\"\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestRecord_FakeBinary(t *testing.T) {
	rec := NewRecorder(fakeRecorderBinary(t, "RIFFfakewav"))

	data, err := rec.Record(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("RIFFfakewav"), data)
}

func TestRecord_EmptyClip(t *testing.T) {
	rec := NewRecorder(fakeRecorderBinary(t, ""))

	_, err := rec.Record(context.Background())
	var speechErr *SpeechError
	require.True(t, errors.As(err, &speechErr))
	assert.Equal(t, KindCapture, speechErr.Kind)
}

func TestRecord_MissingBinary(t *testing.T) {
	rec := NewRecorder("/nonexistent/arecord")

	_, err := rec.Record(context.Background())
	var speechErr *SpeechError
	require.True(t, errors.As(err, &speechErr))
	assert.Equal(t, KindCapture, speechErr.Kind)
}

func TestTranscribe_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/audio/transcriptions", r.URL.Path)
		require.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, TranscribeModel, r.FormValue("model"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "clip.wav", header.Filename)

		w.Write([]byte(`{"text": "  explain this function  "}`))
	}))
	defer server.Close()

	trans := NewTranscriber("sk-test").WithBaseURL(server.URL)

	got, err := trans.Transcribe(context.Background(), []byte("RIFFfakewav"))
	require.NoError(t, err)
	assert.Equal(t, "explain this function", got)
}

func TestTranscribe_EmptyTranscriptIsNoSpeech(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"text": "   "}`))
	}))
	defer server.Close()

	trans := NewTranscriber("sk-test").WithBaseURL(server.URL)

	_, err := trans.Transcribe(context.Background(), []byte("RIFFfakewav"))
	var speechErr *SpeechError
	require.True(t, errors.As(err, &speechErr))
	assert.Equal(t, KindNoSpeech, speechErr.Kind)
}

func TestTranscribe_ServiceFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	trans := NewTranscriber("sk-test").WithBaseURL(server.URL)

	_, err := trans.Transcribe(context.Background(), []byte("RIFFfakewav"))
	var speechErr *SpeechError
	require.True(t, errors.As(err, &speechErr))
	assert.Equal(t, KindTranscribe, speechErr.Kind)
}

func TestTranscribe_NoAPIKey(t *testing.T) {
	trans := NewTranscriber("  ")

	_, err := trans.Transcribe(context.Background(), []byte("RIFFfakewav"))
	var speechErr *SpeechError
	require.True(t, errors.As(err, &speechErr))
	assert.Equal(t, KindTranscribe, speechErr.Kind)
}

func TestAdapter_CapturePipesRecorderIntoTranscriber(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"text": "hello"}`))
	}))
	defer server.Close()

	adapter := NewAdapter(
		NewRecorder(fakeRecorderBinary(t, "RIFFfakewav")),
		NewTranscriber("sk-test").WithBaseURL(server.URL),
	)

	got, err := adapter.Capture(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}
