// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package environment models the build-tool environment checks surfaced in
// the status bar: which provider toolchains are installed, and the issues
// standing between the user and a clean publish.
//
// Probing the system (running `dotnet --version` and friends) happens in
// the backend; this package defines the data it produces and the Checker
// seam the UI reads it through.
package environment

// =============================================================================
// SEVERITY AND ISSUE KINDS
// =============================================================================

// Severity ranks how much an issue interferes with publishing.
type Severity int

const (
	// SeverityInfo is a suggestion.
	SeverityInfo Severity = iota
	// SeverityWarning may cause problems.
	SeverityWarning
	// SeverityCritical blocks publishing.
	SeverityCritical
)

// String returns the display string for the severity.
func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "critical"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// IssueKind classifies an environment issue.
type IssueKind int

const (
	IssueMissingTool IssueKind = iota
	IssueOutdatedVersion
	IssueMissingDependency
	IssueIncompatibleVersion
)

// String returns the display string for the issue kind.
func (k IssueKind) String() string {
	switch k {
	case IssueMissingTool:
		return "missing tool"
	case IssueOutdatedVersion:
		return "outdated version"
	case IssueMissingDependency:
		return "missing dependency"
	case IssueIncompatibleVersion:
		return "incompatible version"
	default:
		return "unknown"
	}
}

// =============================================================================
// SNAPSHOT DATA
// =============================================================================

// ToolStatus describes one provider toolchain as last probed.
type ToolStatus struct {
	ProviderID string `json:"provider_id"`
	Installed  bool   `json:"installed"`
	Version    string `json:"version,omitempty"`
	Path       string `json:"path,omitempty"`
}

// Issue is one detected environment problem, attributed to a provider.
type Issue struct {
	ProviderID string    `json:"provider_id"`
	Severity   Severity  `json:"severity"`
	Kind       IssueKind `json:"kind"`
	Message    string    `json:"message"`
}

// Snapshot aggregates the environment state for every provider.
type Snapshot struct {
	Tools  []ToolStatus `json:"tools"`
	Issues []Issue      `json:"issues"`
}

// Tool returns the status for a provider id, if present.
func (s Snapshot) Tool(providerID string) (ToolStatus, bool) {
	for _, t := range s.Tools {
		if t.ProviderID == providerID {
			return t, true
		}
	}
	return ToolStatus{}, false
}

// Blocking reports whether any critical issue is present.
func (s Snapshot) Blocking() bool {
	for _, issue := range s.Issues {
		if issue.Severity == SeverityCritical {
			return true
		}
	}
	return false
}

// InstalledCount returns how many probed toolchains are installed.
func (s Snapshot) InstalledCount() int {
	n := 0
	for _, t := range s.Tools {
		if t.Installed {
			n++
		}
	}
	return n
}

// =============================================================================
// CHECKER SEAM
// =============================================================================

// Checker supplies environment snapshots to the UI.
type Checker interface {
	Snapshot() Snapshot
}

// StaticChecker is a Checker returning a fixed snapshot. It backs the UI
// until a live backend is attached, and the tests.
type StaticChecker struct {
	Current Snapshot
}

// Snapshot returns the fixed snapshot.
func (c StaticChecker) Snapshot() Snapshot {
	return c.Current
}

// UnprobedSnapshot builds a snapshot marking every given provider as not
// yet probed.
func UnprobedSnapshot(providerIDs []string) Snapshot {
	tools := make([]ToolStatus, 0, len(providerIDs))
	for _, id := range providerIDs {
		tools = append(tools, ToolStatus{ProviderID: id})
	}
	return Snapshot{Tools: tools}
}
