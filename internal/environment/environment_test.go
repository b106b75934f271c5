// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package environment

import "testing"

func TestSnapshotTool(t *testing.T) {
	snap := Snapshot{
		Tools: []ToolStatus{
			{ProviderID: "dotnet", Installed: true, Version: "8.0.100"},
			{ProviderID: "go", Installed: false},
		},
	}

	got, ok := snap.Tool("dotnet")
	if !ok {
		t.Fatal("Tool(dotnet) not found")
	}
	if got.Version != "8.0.100" {
		t.Errorf("Tool(dotnet).Version = %q, want %q", got.Version, "8.0.100")
	}

	if _, ok := snap.Tool("cargo"); ok {
		t.Error("Tool(cargo) should not be found")
	}
}

func TestSnapshotBlocking(t *testing.T) {
	snap := Snapshot{
		Issues: []Issue{
			{ProviderID: "go", Severity: SeverityWarning, Kind: IssueOutdatedVersion},
		},
	}
	if snap.Blocking() {
		t.Error("warnings should not block")
	}

	snap.Issues = append(snap.Issues, Issue{
		ProviderID: "dotnet",
		Severity:   SeverityCritical,
		Kind:       IssueMissingTool,
	})
	if !snap.Blocking() {
		t.Error("critical issues should block")
	}
}

func TestSnapshotInstalledCount(t *testing.T) {
	snap := Snapshot{
		Tools: []ToolStatus{
			{ProviderID: "dotnet", Installed: true},
			{ProviderID: "go", Installed: true},
			{ProviderID: "cargo"},
		},
	}
	if got := snap.InstalledCount(); got != 2 {
		t.Errorf("InstalledCount() = %d, want 2", got)
	}
}

func TestUnprobedSnapshot(t *testing.T) {
	snap := UnprobedSnapshot([]string{"dotnet", "cargo"})

	if len(snap.Tools) != 2 {
		t.Fatalf("len(Tools) = %d, want 2", len(snap.Tools))
	}
	for _, tool := range snap.Tools {
		if tool.Installed {
			t.Errorf("unprobed tool %q should not be installed", tool.ProviderID)
		}
	}
	if snap.Blocking() {
		t.Error("unprobed snapshot should not block")
	}
}

func TestSeverityStrings(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityCritical, "critical"},
		{SeverityWarning, "warning"},
		{SeverityInfo, "info"},
		{Severity(99), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.severity.String(); got != tc.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tc.severity, got, tc.want)
		}
	}
}

func TestIssueKindStrings(t *testing.T) {
	if got := IssueMissingTool.String(); got != "missing tool" {
		t.Errorf("IssueMissingTool.String() = %q", got)
	}
	if got := IssueKind(99).String(); got != "unknown" {
		t.Errorf("IssueKind(99).String() = %q, want unknown", got)
	}
}
