// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package publish models the publish pipeline's data layer: provider
manifests, versioned publish specs, and the execution plans compiled from
them.

The package deliberately stops at data. Compiling a spec yields a Plan
describing the process invocations a backend would run; actually running
them is behind the Runner interface and lives outside this repository. The
TUI consumes manifests and plans to label rows and preview publish
commands.

# Providers

Four built-in providers mirror the supported build tools:

  - dotnet: dotnet publish (profile or flag driven, see BuildDotnetArgs)
  - cargo:  cargo build
  - go:     go build
  - java:   gradle wrapper build

# Versioning

Specs and plans carry explicit format versions. Compiling rejects spec
versions it does not understand rather than guessing.
*/
package publish
