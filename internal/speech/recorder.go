// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package speech

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// =============================================================================
// MICROPHONE CAPTURE
// =============================================================================

// CaptureDuration is the fixed microphone window. Every capture records
// exactly this long; there is no early stop on silence.
const CaptureDuration = 5 * time.Second

// Recorder drives a local command-line audio capture binary. arecord is
// preferred, sox's rec accepted as a fallback.
type Recorder struct {
	binary string
}

// DetectRecorder probes PATH for a usable capture binary. A nil recorder
// with a non-nil error means voice input is unavailable this session.
func DetectRecorder() (*Recorder, error) {
	for _, name := range []string{"arecord", "rec"} {
		if path, err := exec.LookPath(name); err == nil {
			return &Recorder{binary: path}, nil
		}
	}
	return nil, errors.New("no audio capture binary found (need arecord or rec)")
}

// NewRecorder wraps an explicit binary path, used by tests and config
// overrides.
func NewRecorder(binary string) *Recorder {
	return &Recorder{binary: binary}
}

// Record captures a CaptureDuration WAV clip and returns its bytes. The
// context bounds the subprocess; cancellation kills the capture.
func (r *Recorder) Record(ctx context.Context) ([]byte, error) {
	dir, err := os.MkdirTemp("", "codegen-voice-*")
	if err != nil {
		return nil, newError(KindCapture, err)
	}
	defer os.RemoveAll(dir)

	wavPath := filepath.Join(dir, "clip.wav")
	seconds := strconv.Itoa(int(CaptureDuration / time.Second))

	var args []string
	if strings.HasSuffix(r.binary, "rec") {
		args = []string{wavPath, "trim", "0", seconds}
	} else {
		args = []string{"-d", seconds, "-f", "cd", "-t", "wav", wavPath}
	}

	ctx, cancel := context.WithTimeout(ctx, CaptureDuration+5*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.binary, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, newError(KindCapture, fmt.Errorf("%s: %w: %s", filepath.Base(r.binary), err, strings.TrimSpace(stderr.String())))
	}

	data, err := os.ReadFile(wavPath)
	if err != nil {
		return nil, newError(KindCapture, err)
	}
	if len(data) == 0 {
		return nil, newError(KindCapture, errors.New("recorder produced an empty clip"))
	}
	return data, nil
}
