// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "strings"

// MockModel is the pseudo-model that bypasses the remote completion
// service and always returns a fixed demo response.
const MockModel = "Mock Mode (Demo)"

// DefaultModel is the completion model used when none is configured.
const DefaultModel = "llama-3.1-8b-instant"

// =============================================================================
// MODEL INFO TYPE
// =============================================================================

// ModelInfo describes a selectable completion model.
type ModelInfo struct {
	// ID is the model identifier sent in API calls
	ID string `json:"id"`

	// Name is the human-readable display name
	Name string `json:"name"`

	// Tier categorizes the model's capability level
	Tier string `json:"tier"`

	// Description is a brief explanation of the model's strengths
	Description string `json:"description"`
}

// =============================================================================
// MODEL REGISTRY
// =============================================================================

// Models is the registry of selectable models, in sidebar display order.
// The mock entry is always last.
var Models = []ModelInfo{
	{
		ID:          "llama-3.1-8b-instant",
		Name:        "Llama 3.1 8B Instant",
		Tier:        "Fast",
		Description: "Low-latency default for quick coding questions",
	},
	{
		ID:          "llama-3.3-70b-versatile",
		Name:        "Llama 3.3 70B Versatile",
		Tier:        "Powerful",
		Description: "Strongest reasoning for hard debugging sessions",
	},
	{
		ID:          "qwen/qwen3-32b",
		Name:        "Qwen 3 32B",
		Tier:        "Balanced",
		Description: "Good balance of speed and code understanding",
	},
	{
		ID:          "meta-llama/llama-4-scout-17b-16e-instruct",
		Name:        "Llama 4 Scout 17B",
		Tier:        "Balanced",
		Description: "Multimodal-era model tuned for instructions",
	},
	{
		ID:          MockModel,
		Name:        "Mock Mode",
		Tier:        "Demo",
		Description: "Fixed offline demo response, no network calls",
	},
}

// IsMock reports whether a model identifier denotes the demo mode.
func IsMock(id string) bool {
	return id == MockModel
}

// GetModelInfo looks up a model by ID or display name.
func GetModelInfo(nameOrID string) (ModelInfo, bool) {
	for _, info := range Models {
		if info.ID == nameOrID || info.Name == nameOrID {
			return info, true
		}
	}

	lower := strings.ToLower(nameOrID)
	for _, info := range Models {
		if strings.Contains(strings.ToLower(info.ID), lower) ||
			strings.Contains(strings.ToLower(info.Name), lower) {
			return info, true
		}
	}

	return ModelInfo{}, false
}

// ModelIDs returns the IDs of all registry entries in display order.
func ModelIDs() []string {
	ids := make([]string, 0, len(Models))
	for _, info := range Models {
		ids = append(ids, info.ID)
	}
	return ids
}
