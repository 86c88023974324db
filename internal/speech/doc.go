// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package speech captures a short microphone clip with a local recorder
// binary and transcribes it through the remote audio endpoint. Capture is
// hard-capped at five seconds; the caller blocks for the capture window
// plus transcription latency. Failures are typed so the chat layer can
// tell "nothing was said" from "the service broke", even though both
// currently render as the same quiet notice.
package speech
