// ============================================================================
// imstr - Immutable Strings
// ============================================================================
//
// Package:     render
// Description: Terminal rendering of string values and operation results
// Author:      Mike Stoffels
// Created:     2025-12-07
// License:     MIT
// ============================================================================

package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/imstr/foundation/utils/imstr"
)

// Color Palette
var (
	ColorPrimary = lipgloss.Color("#8B5CF6") // Violet
	ColorAccent  = lipgloss.Color("#F59E0B") // Amber
	ColorSuccess = lipgloss.Color("#10B981") // Emerald
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
)

// Renderer formats output lines, optionally with colors
type Renderer struct {
	color bool

	titleStyle   lipgloss.Style
	contentStyle lipgloss.Style
	numberStyle  lipgloss.Style
	labelStyle   lipgloss.Style
	errorStyle   lipgloss.Style
}

// New creates a renderer; color=false produces plain text
func New(color bool) *Renderer {
	return &Renderer{
		color: color,
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),
		contentStyle: lipgloss.NewStyle().
			Foreground(ColorSuccess),
		numberStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent),
		labelStyle: lipgloss.NewStyle().
			Foreground(ColorMuted),
		errorStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError),
	}
}

func (r *Renderer) style(style lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return style.Render(text)
}

// Pair renders a value with its length:
// "content" has N characters length
func (r *Renderer) Pair(s imstr.String) string {
	return fmt.Sprintf("%s %s %s",
		r.style(r.contentStyle, `"`+s.String()+`"`),
		r.style(r.labelStyle, "has"),
		r.style(r.labelStyle, fmt.Sprintf("%s characters length", r.style(r.numberStyle, fmt.Sprint(s.Len())))),
	)
}

// Result renders a labelled scalar result such as an index or a boolean
func (r *Renderer) Result(label string, value interface{}) string {
	return fmt.Sprintf("%s %s", r.style(r.labelStyle, label+":"), r.style(r.numberStyle, fmt.Sprint(value)))
}

// Title renders a section heading
func (r *Renderer) Title(text string) string {
	return r.style(r.titleStyle, text)
}

// Error renders an error message
func (r *Renderer) Error(err error) string {
	return r.style(r.errorStyle, "Error: "+err.Error())
}
