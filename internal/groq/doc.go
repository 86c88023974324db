// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package groq provides the HTTP client for the Groq chat-completions
// API.
//
// The client issues a single non-streaming request per completion with a
// fixed sampling temperature and output cap. There is no retry and no
// backoff; a failed call surfaces one typed error and the user may retry
// the action. The mock pseudo-model short-circuits before any network
// I/O and returns a fixed demo string.
package groq
