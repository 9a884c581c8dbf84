// ============================================================================
// imstr - Immutable Strings
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and its tools
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

// Version constants for all imstr components
const (
	// Release version of the repository
	Platform = "0.2.0"

	// Component versions
	Library = "0.2.0"
	CLI     = "0.2.0"
	Prompt  = "0.1.0"
)

// Build metadata, set via -ldflags "-X github.com/msto63/imstr/pkg/core/version.GitCommit=..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "library", "imstr":
		return Library
	case "cli":
		return CLI
	case "prompt":
		return Prompt
	default:
		return Platform
	}
}
