// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ingest extracts text from attached files so it can be folded
// into a prompt. Images go through the local tesseract binary, PDFs are
// rasterized with pdftoppm first, and everything else is read as
// permissive UTF-8 text. Backend availability is probed once at startup;
// a missing backend disables PDF ingestion but leaves the image and text
// paths functional.
package ingest
