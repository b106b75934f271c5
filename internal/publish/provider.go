// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package publish models the publish pipeline's data layer.
package publish

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// =============================================================================
// PROVIDER CONTRACT
// =============================================================================

// Manifest identifies a build-tool provider.
type Manifest struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Version     string `json:"version"`
}

// Provider compiles publish specs for one build tool.
type Provider interface {
	Manifest() Manifest
	Compile(spec Spec) (Plan, error)
}

// Sentinel errors consumers branch on.
var (
	ErrUnknownProvider        = errors.New("unknown provider")
	ErrUnsupportedSpecVersion = errors.New("unsupported spec version")
)

// =============================================================================
// REGISTRY
// =============================================================================

// Registry holds the built-in providers in a stable order.
type Registry struct {
	providers []Provider
}

// NewRegistry creates a registry with the four built-in providers.
func NewRegistry() *Registry {
	return &Registry{
		providers: []Provider{
			newSingleStepProvider("dotnet", "dotnet", "dotnet.publish", "dotnet publish"),
			newSingleStepProvider("cargo", "cargo", "cargo.build", "cargo build"),
			newSingleStepProvider("go", "go", "go.build", "go build"),
			// Java builds run through the Gradle wrapper.
			newSingleStepProvider("java", "java", "gradle.build", "./gradlew build"),
		},
	}
}

// Get returns the provider with the given id.
func (r *Registry) Get(id string) (Provider, error) {
	for _, p := range r.providers {
		if p.Manifest().ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, id)
}

// Manifests returns the manifests of all registered providers, in registry
// order.
func (r *Registry) Manifests() []Manifest {
	out := make([]Manifest, 0, len(r.providers))
	for _, p := range r.providers {
		out = append(out, p.Manifest())
	}
	return out
}

// =============================================================================
// SINGLE-STEP PROVIDERS
// =============================================================================

// singleStepProvider compiles every spec into one process step. All four
// built-in tools fit this shape; multi-step pipelines would implement
// Provider directly.
type singleStepProvider struct {
	manifest  Manifest
	stepKind  string
	stepTitle string
}

func newSingleStepProvider(id, displayName, stepKind, stepTitle string) *singleStepProvider {
	return &singleStepProvider{
		manifest: Manifest{
			ID:          id,
			DisplayName: displayName,
			Version:     "1",
		},
		stepKind:  stepKind,
		stepTitle: stepTitle,
	}
}

func (p *singleStepProvider) Manifest() Manifest {
	return p.manifest
}

func (p *singleStepProvider) Compile(spec Spec) (Plan, error) {
	if spec.Version != SpecVersion {
		return Plan{}, fmt.Errorf("%w: %d", ErrUnsupportedSpecVersion, spec.Version)
	}

	step := Step{
		ID:    uuid.NewString(),
		Title: p.stepTitle,
		Kind:  "process",
		Payload: map[string]any{
			"step":         p.stepKind,
			"project_path": spec.ProjectPath,
			"parameters":   spec.Parameters,
		},
	}

	return Plan{
		Version: PlanVersion,
		Spec:    spec,
		Steps:   []Step{step},
	}, nil
}
