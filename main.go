// onepublish TUI - A terminal publish console for multi-project repos.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/onepublish-tui/internal/config"
	"github.com/jeranaias/onepublish-tui/internal/environment"
	"github.com/jeranaias/onepublish-tui/internal/overlay"
	"github.com/jeranaias/onepublish-tui/internal/publish"
	"github.com/jeranaias/onepublish-tui/internal/ui/projects"
	"github.com/jeranaias/onepublish-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--version", "-v":
			fmt.Printf("onepublish %s (%s, %s)\n", Version, GitCommit, BuildDate)
			return
		case "--help", "-h":
			printUsage()
			return
		}
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	motion := overlay.DetectReducedMotion(os.Getenv, cfg.UI.ReduceMotion)
	coord := overlay.NewCoordinator(tuningFrom(cfg), motion, overlay.SystemClock)

	registry := publish.NewRegistry()
	env := environment.UnprobedSnapshot(config.KnownProviders)

	theme := styles.NewTheme()
	model := projects.New(theme, projects.ItemsFromConfig(cfg.Projects), coord, registry, env)

	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
	}
	if cfg.UI.MouseEnabled {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(model, opts...)

	// Live-reload the project list when the config file changes.
	if path, ok := config.ResolvePath(); ok {
		watcher, werr := config.Watch(path,
			func(next *config.Config) {
				p.Send(projects.ConfigReloadedMsg{Config: next})
			},
			nil)
		if werr == nil {
			defer watcher.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}
	return nil
}

// tuningFrom applies the configured overlay overrides on top of the
// built-in defaults.
func tuningFrom(cfg *config.Config) overlay.Tuning {
	t := overlay.DefaultTuning()
	if cfg.Overlay.GlowDurationMs > 0 {
		t.GlowDurationMs = cfg.Overlay.GlowDurationMs
	}
	if cfg.Overlay.DynamicsDecayMs > 0 {
		t.DynamicsDecayMs = cfg.Overlay.DynamicsDecayMs
	}
	if cfg.Overlay.ConvergeEpsilon > 0 {
		t.ConvergeEpsilon = cfg.Overlay.ConvergeEpsilon
	}
	return t
}

func printUsage() {
	fmt.Println(`onepublish - terminal publish console

Usage:
  onepublish            Start the TUI
  onepublish --version  Print version information

Configuration:
  ~/.onepublish/config.toml   Projects, UI, and overlay settings
  ONEPUBLISH_CONFIG           Explicit config file path
  ONEPUBLISH_REDUCE_MOTION    Disable animations (1/true/yes/on)
  ONEPUBLISH_NO_MOUSE         Disable mouse tracking`)
}
