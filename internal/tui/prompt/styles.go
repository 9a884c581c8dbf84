// ============================================================================
// imstr - Immutable Strings
// ============================================================================
//
// Package:     prompt
// Description: Styles for the input prompt
// Author:      Mike Stoffels
// Created:     2025-12-07
// License:     MIT
// ============================================================================

package prompt

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	ColorPrimary = lipgloss.Color("#8B5CF6") // Violet
	ColorMuted   = lipgloss.Color("#6B7280") // Gray

	PromptStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)
)
