// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package prompt

import "strings"

// =============================================================================
// MODE TYPE
// =============================================================================

// Mode is a selectable behavior profile that determines the system
// instruction prepended to every prompt.
type Mode string

const (
	ModeDebug    Mode = "Debug code"
	ModeSolve    Mode = "Solve problem"
	ModeExplain  Mode = "Explain code"
	ModePractise Mode = "Practise code"
	ModeLearn    Mode = "Learn new technology"
)

// String returns the display name of the mode.
func (m Mode) String() string {
	return string(m)
}

// systemPrompts maps each mode to its fixed system-prompt string.
// Lookup of an unknown mode yields an empty string, a silent degradation
// rather than an error.
var systemPrompts = map[Mode]string{
	ModeDebug:    "You are a senior debugging assistant. Find and fix bugs in this code.",
	ModeSolve:    "You are a competitive programming expert. Solve the following problem with explanation and code.",
	ModeExplain:  "You are a teacher. Explain what this code does step by step in simple language.",
	ModePractise: "You are a coding coach. Give small practice tasks and solutions based on the topic.",
	ModeLearn:    "You are a technology mentor. Explain and guide the user to learn new tools, frameworks, or technologies with practical examples.",
}

// SystemPrompt returns the fixed system prompt for a mode, or the empty
// string for unknown modes.
func SystemPrompt(m Mode) string {
	return systemPrompts[m]
}

// =============================================================================
// ROLE → MODE MAPPING
// =============================================================================

// studentModes is the default mode set, also used for unknown roles.
var studentModes = []Mode{ModeDebug, ModeSolve, ModeExplain, ModePractise}

// employeeModes swaps problem solving for technology learning.
var employeeModes = []Mode{ModeDebug, ModeLearn, ModeExplain, ModePractise}

// ModesForRole returns the ordered list of modes allowed for a declared
// role. The first entry is the role's default mode.
func ModesForRole(role string) []Mode {
	switch strings.ToLower(role) {
	case "student", "teacher", "coder":
		return studentModes
	case "employee", "business":
		return employeeModes
	default:
		return studentModes
	}
}

// DefaultModeForRole returns the first allowed mode for a role.
func DefaultModeForRole(role string) Mode {
	return ModesForRole(role)[0]
}
