// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for chat threads and messages.
//
// This package defines the core domain types used throughout the application
// for representing threaded conversations and the Groq model registry.
//
// # Key Types
//
//   - Thread: One independent chat conversation with messages and a title
//   - Message: Single message with role, content, and timestamp
//   - ModelInfo: Information about a selectable completion model
//   - Role: Message role enumeration (user, assistant)
//
// # Usage
//
// Create a thread and append to it:
//
//	th := model.NewThread()
//	th.Append(model.RoleUser, "Hello!")
package model
