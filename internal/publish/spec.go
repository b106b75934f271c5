// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package publish models the publish pipeline's data layer.
package publish

// SpecVersion is the current publish spec format version.
const SpecVersion = 1

// PlanVersion is the current execution plan format version.
const PlanVersion = 1

// =============================================================================
// PUBLISH SPEC
// =============================================================================

// Spec is a versioned, provider-agnostic description of one publish
// operation: which provider, which project, and the provider-specific
// parameters to apply.
type Spec struct {
	Version     int            `toml:"version" json:"version"`
	ProviderID  string         `toml:"provider_id" json:"provider_id"`
	ProjectPath string         `toml:"project_path" json:"project_path"`
	Parameters  map[string]any `toml:"parameters" json:"parameters"`
}

// NewSpec creates a spec at the current format version.
func NewSpec(providerID, projectPath string) Spec {
	return Spec{
		Version:     SpecVersion,
		ProviderID:  providerID,
		ProjectPath: projectPath,
		Parameters:  make(map[string]any),
	}
}

// =============================================================================
// EXECUTION PLAN
// =============================================================================

// Plan is the compiled form of a spec: the ordered steps a backend runner
// would execute.
type Plan struct {
	Version int    `json:"version"`
	Spec    Spec   `json:"spec"`
	Steps   []Step `json:"steps"`
}

// Step is one unit of work in a plan. Kind identifies the step family
// ("process" for command invocations); Payload carries kind-specific data.
type Step struct {
	ID      string         `json:"id"`
	Title   string         `json:"title"`
	Kind    string         `json:"kind"`
	Payload map[string]any `json:"payload"`
}
