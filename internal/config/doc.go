// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads and persists the codegen configuration.
//
// Supports both TOML and JSON formats, with built-in defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.codegen/config.toml
//   - ~/.codegen/config.json
//   - Built-in defaults
//
// The API key is the one setting with no default: it comes from the
// config file, a .env file, or the CODEGEN_API_KEY / GROQ_API_KEY
// environment variables, and startup fails without it.
package config
