// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package publish models the publish pipeline's data layer.
package publish

import "fmt"

// DotnetOptions are the flags the dotnet provider understands. When
// UseProfile is set the .pubxml profile wins and the individual flags are
// ignored, matching dotnet's own precedence.
type DotnetOptions struct {
	Configuration string `toml:"configuration" json:"configuration"`
	Runtime       string `toml:"runtime" json:"runtime"`
	SelfContained bool   `toml:"self_contained" json:"self_contained"`
	OutputDir     string `toml:"output_dir" json:"output_dir"`
	UseProfile    bool   `toml:"use_profile" json:"use_profile"`
	ProfileName   string `toml:"profile_name" json:"profile_name"`
}

// CommandLine is a fully assembled process invocation.
type CommandLine struct {
	Program string
	Args    []string
}

// BuildDotnetArgs assembles the `dotnet publish` invocation for a project.
func BuildDotnetArgs(projectPath string, opts DotnetOptions) CommandLine {
	args := []string{"publish", projectPath}

	if opts.UseProfile && opts.ProfileName != "" {
		args = append(args, fmt.Sprintf("/p:PublishProfile=%s", opts.ProfileName))
		return CommandLine{Program: "dotnet", Args: args}
	}

	args = append(args, "-c", opts.Configuration)
	if opts.Runtime != "" {
		args = append(args, "--runtime", opts.Runtime)
	}
	if opts.SelfContained {
		args = append(args, "--self-contained")
	}
	if opts.OutputDir != "" {
		args = append(args, "-o", opts.OutputDir)
	}
	return CommandLine{Program: "dotnet", Args: args}
}
